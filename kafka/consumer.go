package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/IBM/sarama"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/metrics"
)

// Consume results reported by handleMessage
const (
	resultHandled   = "handled"
	resultFailed    = "failed"
	resultMalformed = "malformed"
	resultSkipped   = "skipped"
)

const rejoinDelay = 2 * time.Second

var errNoEventType = errors.New("message has no event_type header")

// EventHandler reacts to a decoded transaction event
type EventHandler func(ctx context.Context, event TransactionCreatedEvent) error

// Consumer dispatches messages from a consumer group to handlers keyed by the
// event_type header
type Consumer struct {
	group  sarama.ConsumerGroup
	topics []string

	mu       sync.RWMutex
	handlers map[string]EventHandler
}

// NewConsumer joins groupID on brokers. Offsets start at the newest message,
// so a fresh group does not replay history.
func NewConsumer(brokers []string, groupID string, topics []string) (*Consumer, error) {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V2_6_0_0
	cfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	cfg.Consumer.Offsets.Initial = sarama.OffsetNewest
	cfg.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(brokers, groupID, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka consumer group %q: %w", groupID, err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Str("group_id", groupID).
		Strs("topics", topics).
		Msg("Kafka consumer group joined")

	return &Consumer{group: group, topics: topics, handlers: make(map[string]EventHandler)}, nil
}

// RegisterHandler replaces any handler already bound to eventType
func (c *Consumer) RegisterHandler(eventType string, handler EventHandler) {
	c.mu.Lock()
	c.handlers[eventType] = handler
	c.mu.Unlock()
}

func (c *Consumer) handlerFor(eventType string) (EventHandler, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	h, ok := c.handlers[eventType]
	return h, ok
}

// Start consumes in the background until ctx is cancelled. Consume returns on
// every rebalance, so the loop rejoins; a broker error waits before retrying.
func (c *Consumer) Start(ctx context.Context) error {
	gh := &consumerGroupHandler{consumer: c}

	go func() {
		for ctx.Err() == nil {
			if err := c.group.Consume(ctx, c.topics, gh); err != nil {
				if errors.Is(err, sarama.ErrClosedConsumerGroup) {
					return
				}
				logger.Logger.Error().Err(err).Msg("Kafka consume failed, rejoining")
				select {
				case <-ctx.Done():
				case <-time.After(rejoinDelay):
				}
			}
		}
		logger.Logger.Info().Msg("Kafka consumer stopped")
	}()

	go func() {
		for err := range c.group.Errors() {
			logger.Logger.Error().Err(err).Msg("Kafka consumer group error")
		}
	}()

	return nil
}

// Close leaves the consumer group
func (c *Consumer) Close() error {
	if c.group == nil {
		return nil
	}
	return c.group.Close()
}

type consumerGroupHandler struct {
	consumer *Consumer
}

func (*consumerGroupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (*consumerGroupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

// ConsumeClaim marks every message, including ones that failed: stock cache
// invalidation is best effort and must not wedge the partition
func (h *consumerGroupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		h.handleMessage(session.Context(), msg)
		session.MarkMessage(msg, "")
	}
	return nil
}

func headerMap(msg *sarama.ConsumerMessage) map[string]string {
	headers := make(map[string]string, len(msg.Headers))
	for _, hdr := range msg.Headers {
		if hdr != nil {
			headers[string(hdr.Key)] = string(hdr.Value)
		}
	}
	return headers
}

// handleMessage returns the consume result recorded in metrics
func (h *consumerGroupHandler) handleMessage(ctx context.Context, msg *sarama.ConsumerMessage) string {
	headers := headerMap(msg)
	ctx = otel.GetTextMapPropagator().Extract(ctx, propagation.MapCarrier(headers))

	eventType := headers[headerEventType]
	ctx, span := otel.Tracer("kafka-consumer").Start(ctx, "kafka.consume."+msg.Topic,
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.source", msg.Topic),
			attribute.Int("messaging.kafka.partition", int(msg.Partition)),
			attribute.Int64("messaging.kafka.offset", msg.Offset),
			attribute.String("event.type", eventType),
			attribute.String("event.id", headers[headerEventID]),
		),
	)
	defer span.End()

	result, err := h.dispatch(ctx, eventType, msg.Value)
	metrics.EventsConsumed.WithLabelValues(eventType, result).Inc()

	log := logger.WithContext(ctx)
	switch result {
	case resultHandled:
		span.SetStatus(codes.Ok, "")
		log.Debug().Str("event_type", eventType).Int64("offset", msg.Offset).Msg("Event handled")
	case resultSkipped:
		log.Debug().Str("event_type", eventType).Msg("No handler for event type")
	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, result)
		log.Error().Err(err).
			Str("topic", msg.Topic).
			Str("event_type", eventType).
			Str("result", result).
			Msg("Failed to process event")
	}
	return result
}

func (h *consumerGroupHandler) dispatch(ctx context.Context, eventType string, body []byte) (string, error) {
	if eventType == "" {
		return resultMalformed, errNoEventType
	}
	handler, ok := h.consumer.handlerFor(eventType)
	if !ok {
		return resultSkipped, nil
	}

	switch eventType {
	case EventTypeTransactionCreated:
		var event TransactionCreatedEvent
		if err := json.Unmarshal(body, &event); err != nil {
			return resultMalformed, fmt.Errorf("decode %s: %w", eventType, err)
		}
		trace.SpanFromContext(ctx).SetAttributes(
			attribute.Int64("transaction.id", int64(event.TransactionID)),
			attribute.Int("transaction.lines", len(event.Lines)),
		)
		if err := handler(ctx, event); err != nil {
			return resultFailed, err
		}
		return resultHandled, nil
	default:
		return resultSkipped, nil
	}
}
