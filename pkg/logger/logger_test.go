package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestWithContextAddsTraceIDs(t *testing.T) {
	var buf bytes.Buffer
	Logger = zerolog.New(&buf)
	t.Cleanup(func() { Logger = zerolog.Nop() })

	tp := sdktrace.NewTracerProvider()
	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	Info(ctx).Msg("hello")

	assert.Contains(t, buf.String(), span.SpanContext().TraceID().String())
	assert.Contains(t, buf.String(), `"span_id"`)
}

func TestWithContextWithoutSpan(t *testing.T) {
	var buf bytes.Buffer
	Logger = zerolog.New(&buf)
	t.Cleanup(func() { Logger = zerolog.Nop() })

	Warn(context.Background()).Msg("plain")

	assert.Contains(t, buf.String(), "plain")
	assert.NotContains(t, buf.String(), "trace_id")
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	SetLevel("warn")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	SetLevel("bogus")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestWithContextAddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	Logger = zerolog.New(&buf)
	t.Cleanup(func() { Logger = zerolog.Nop() })

	ctx := WithRequestID(context.Background(), "req-42")
	Error(ctx).Msg("boom")

	assert.Equal(t, "req-42", RequestIDFrom(ctx))
	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
	assert.Empty(t, RequestIDFrom(context.Background()))
}
