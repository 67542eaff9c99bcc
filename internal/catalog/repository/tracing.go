package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/storefront/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// TracingProductRepository wraps a ProductRepository with spans
type TracingProductRepository struct {
	next domain.ProductRepository
}

// NewTracingProductRepository creates a new repository with tracing
func NewTracingProductRepository(next domain.ProductRepository) *TracingProductRepository {
	return &TracingProductRepository{next: next}
}

func (r *TracingProductRepository) Create(ctx context.Context, product *domain.Product) error {
	ctx, span := tracer.Start(ctx, "repository.Product.Create",
		trace.WithAttributes(attribute.String("product.name", product.Name)),
	)
	defer span.End()

	err := r.next.Create(ctx, product)
	recordError(span, err)
	if err == nil {
		span.SetAttributes(attribute.Int("product.id", int(product.ID)))
	}
	return err
}

func (r *TracingProductRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.Product.FindByID",
		trace.WithAttributes(attribute.Int("product.id", int(id))),
	)
	defer span.End()

	product, err := r.next.FindByID(ctx, id)
	recordError(span, err)
	return product, err
}

func (r *TracingProductRepository) UpdateLocked(ctx context.Context, id uint, mutate func(*domain.Product) error) (*domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.Product.UpdateLocked",
		trace.WithAttributes(attribute.Int("product.id", int(id))),
	)
	defer span.End()

	product, err := r.next.UpdateLocked(ctx, id, mutate)
	recordError(span, err)
	return product, err
}

func (r *TracingProductRepository) ReduceStock(ctx context.Context, id uint, quantity int) (bool, error) {
	ctx, span := tracer.Start(ctx, "repository.Product.ReduceStock",
		trace.WithAttributes(
			attribute.Int("product.id", int(id)),
			attribute.Int("stock.quantity", quantity),
		),
	)
	defer span.End()

	ok, err := r.next.ReduceStock(ctx, id, quantity)
	recordError(span, err)
	span.SetAttributes(attribute.Bool("stock.reduced", ok))
	return ok, err
}

func (r *TracingProductRepository) Search(ctx context.Context, query string, limit, offset int) ([]domain.Product, int64, error) {
	ctx, span := tracer.Start(ctx, "repository.Product.Search",
		trace.WithAttributes(
			attribute.String("query.text", query),
			attribute.Int("query.limit", limit),
			attribute.Int("query.offset", offset),
		),
	)
	defer span.End()

	products, total, err := r.next.Search(ctx, query, limit, offset)
	recordError(span, err)
	span.SetAttributes(attribute.Int64("result.total", total))
	return products, total, err
}

func recordError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}
