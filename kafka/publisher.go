package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/metrics"
)

// Producer is the subset of sarama.SyncProducer the publisher needs
type Producer interface {
	SendMessage(msg *sarama.ProducerMessage) (partition int32, offset int64, err error)
	Close() error
}

// Publisher sends storefront events synchronously
type Publisher struct {
	producer Producer
}

// NewPublisher connects a synchronous producer that waits for all in-sync
// replicas before a send returns
func NewPublisher(brokers []string) (*Publisher, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Idempotent = true
	cfg.Net.MaxOpenRequests = 1
	cfg.Producer.Compression = sarama.CompressionSnappy
	cfg.Version = sarama.V2_6_0_0

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}
	logger.Logger.Info().Strs("brokers", brokers).Msg("Kafka publisher connected")

	return NewPublisherWithProducer(producer), nil
}

// NewPublisherWithProducer wraps an existing producer
func NewPublisherWithProducer(producer Producer) *Publisher {
	return &Publisher{producer: producer}
}

// PublishTransactionCreated fills in the envelope fields that are unset and
// sends the event with the caller's trace context in the record headers
func (p *Publisher) PublishTransactionCreated(ctx context.Context, event TransactionCreatedEvent) error {
	if event.EventID == "" {
		event.EventID = "evt_" + uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	event.EventType = EventTypeTransactionCreated

	ctx, span := otel.Tracer("kafka-publisher").Start(ctx, "kafka.publish."+EventTypeTransactionCreated,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", TopicTransactionCreated),
			attribute.String("event.id", event.EventID),
			attribute.Int64("transaction.id", int64(event.TransactionID)),
			attribute.Int("transaction.lines", len(event.Lines)),
		),
	)
	defer span.End()

	fail := func(stage string, err error) error {
		span.RecordError(err)
		span.SetStatus(codes.Error, stage)
		metrics.EventsPublished.WithLabelValues(EventTypeTransactionCreated, "error").Inc()
		logger.WithContext(ctx).Error().Err(err).
			Str("event_id", event.EventID).
			Uint("transaction_id", event.TransactionID).
			Msg("Failed to publish event")
		return fmt.Errorf("%s: %w", stage, err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fail("failed to encode event", err)
	}

	msg := &sarama.ProducerMessage{
		Topic:   TopicTransactionCreated,
		Key:     sarama.StringEncoder("buyer_" + strconv.FormatUint(uint64(event.BuyerID), 10)),
		Value:   sarama.ByteEncoder(body),
		Headers: recordHeaders(ctx, EventTypeTransactionCreated, event.EventID),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fail("failed to send message to Kafka", err)
	}

	span.SetAttributes(
		attribute.Int("messaging.kafka.partition", int(partition)),
		attribute.Int64("messaging.kafka.offset", offset),
	)
	metrics.EventsPublished.WithLabelValues(EventTypeTransactionCreated, "ok").Inc()
	logger.WithContext(ctx).Info().
		Str("event_id", event.EventID).
		Int32("partition", partition).
		Int64("offset", offset).
		Uint("transaction_id", event.TransactionID).
		Msg("Transaction event published")
	return nil
}

func recordHeaders(ctx context.Context, eventType, eventID string) []sarama.RecordHeader {
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := make([]sarama.RecordHeader, 0, len(carrier)+2)
	headers = append(headers,
		sarama.RecordHeader{Key: []byte(headerEventType), Value: []byte(eventType)},
		sarama.RecordHeader{Key: []byte(headerEventID), Value: []byte(eventID)},
	)
	for k, v := range carrier {
		headers = append(headers, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
	}
	return headers
}

// Close closes the underlying producer
func (p *Publisher) Close() error {
	if p.producer == nil {
		return nil
	}
	return p.producer.Close()
}
