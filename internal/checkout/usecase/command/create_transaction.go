package command

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	cart "github.com/tair/storefront/internal/cart/domain"
	catalogcmd "github.com/tair/storefront/internal/catalog/usecase/command"
	"github.com/tair/storefront/internal/checkout/domain"
	"github.com/tair/storefront/pkg/apperror"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/metrics"
)

var tracer = otel.Tracer("checkout")

// CreateTransactionCommand checks out the buyer's cart
type CreateTransactionCommand struct {
	BuyerID uint
}

// CreateTransactionHandler runs the checkout workflow. Stock reduction and
// the transaction insert commit together; the cart is cleared afterwards and
// a failure to clear it does not undo the purchase.
type CreateTransactionHandler struct {
	carts  cart.CartRepository
	uow    domain.UnitOfWork
	events domain.EventPublisher
}

// NewCreateTransactionHandler creates a new checkout handler
func NewCreateTransactionHandler(carts cart.CartRepository, uow domain.UnitOfWork, events domain.EventPublisher) *CreateTransactionHandler {
	return &CreateTransactionHandler{carts: carts, uow: uow, events: events}
}

// run tracks one checkout through its states
type run struct {
	span  trace.Span
	state domain.State
}

func (r *run) advance(next domain.State) {
	if !r.state.CanTransition(next) {
		// Programming error; surface it in the trace rather than panic mid-request
		r.span.RecordError(fmt.Errorf("%w: %s -> %s", domain.ErrIllegalTransition, r.state, next))
	}
	r.span.AddEvent("checkout.state", trace.WithAttributes(
		attribute.String("from", string(r.state)),
		attribute.String("to", string(next)),
	))
	r.state = next
}

func (r *run) abort(err error, outcome string) error {
	r.advance(domain.StateAborted)
	r.span.RecordError(err)
	r.span.SetStatus(codes.Error, apperror.MessageOf(err))
	metrics.CheckoutsTotal.WithLabelValues(outcome).Inc()
	return err
}

// Handle executes the checkout
func (h *CreateTransactionHandler) Handle(ctx context.Context, cmd CreateTransactionCommand) (*domain.Transaction, error) {
	ctx, span := tracer.Start(ctx, "checkout.create_transaction",
		trace.WithAttributes(attribute.Int64("buyer.id", int64(cmd.BuyerID))),
	)
	defer span.End()

	r := &run{span: span, state: domain.StateValidating}

	// Validating
	if cmd.BuyerID == 0 {
		return nil, r.abort(apperror.Unauthorized(), metrics.OutcomeError)
	}
	items, err := h.carts.FindByBuyer(ctx, cmd.BuyerID)
	if err != nil {
		return nil, r.abort(err, metrics.OutcomeError)
	}
	if len(items) == 0 {
		return nil, r.abort(apperror.InvalidValue(domain.MsgInvalidCart), metrics.OutcomeEmptyCart)
	}

	// The snapshot is fixed here; prices are taken from it, not re-read
	lines := make(domain.LineItems, 0, len(items))
	for _, item := range items {
		lines = append(lines, domain.NewLineItem(item.Product, item.Quantity))
	}
	txn := &domain.Transaction{
		BuyerID: cmd.BuyerID,
		Items:   lines,
		Total:   lines.Total(),
	}
	r.advance(domain.StateReducingStock)

	err = h.uow.Execute(ctx, func(ctx context.Context, repos domain.TxRepositories) error {
		reduce := catalogcmd.NewReduceStockHandler(repos.Products)
		for i := range items {
			_, err := reduce.Handle(ctx, catalogcmd.ReduceStockCommand{
				Product:  &items[i].Product,
				Quantity: items[i].Quantity,
			})
			if err != nil {
				span.SetAttributes(attribute.Int64("checkout.failed_product_id", int64(items[i].ProductID)))
				return err
			}
		}

		r.advance(domain.StateRecordingTransaction)
		return repos.Transactions.Create(ctx, txn)
	})
	if err != nil {
		outcome := metrics.OutcomeError
		if apperror.KindOf(err) == apperror.KindInvalidValue {
			outcome = metrics.OutcomeInsufficient
		}
		return nil, r.abort(err, outcome)
	}

	metrics.CheckoutsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	metrics.CheckoutRevenue.Add(txn.Total.InexactFloat64())

	r.advance(domain.StateClearingCart)
	h.clearCart(ctx, cmd.BuyerID, txn.ID)
	h.publish(ctx, txn)

	r.advance(domain.StateDone)
	span.SetAttributes(
		attribute.Int64("transaction.id", int64(txn.ID)),
		attribute.String("transaction.total", txn.Total.StringFixed(2)),
	)
	span.SetStatus(codes.Ok, "checkout completed")

	logger.Info(ctx).
		Uint("buyer_id", cmd.BuyerID).
		Uint("transaction_id", txn.ID).
		Int("lines", len(txn.Items)).
		Str("total", txn.Total.StringFixed(2)).
		Msg("Checkout completed")

	return txn, nil
}

func (h *CreateTransactionHandler) clearCart(ctx context.Context, buyerID, transactionID uint) {
	ctx, span := tracer.Start(ctx, "checkout.clear_cart")
	defer span.End()

	if _, err := h.carts.DeleteByBuyer(ctx, buyerID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "cart clear failed")
		metrics.CartClearFailures.Inc()
		logger.Error(ctx).
			Err(err).
			Uint("buyer_id", buyerID).
			Uint("transaction_id", transactionID).
			Msg("Cart clear failed after checkout")
	}
}

func (h *CreateTransactionHandler) publish(ctx context.Context, txn *domain.Transaction) {
	if h.events == nil {
		return
	}
	if err := h.events.PublishTransactionCreated(ctx, txn); err != nil {
		logger.Warn(ctx).
			Err(err).
			Uint("transaction_id", txn.ID).
			Msg("Transaction created event not published")
	}
}
