package otel

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/hanpama/sdlcheck/internal/eventbus"
	"github.com/hanpama/sdlcheck/internal/events"
	language "github.com/hanpama/sdlcheck/internal/language"
	"github.com/hanpama/sdlcheck/internal/schema"
	"github.com/hanpama/sdlcheck/internal/validate"
)

func newRecorder(t *testing.T, bus *eventbus.Bus) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	unsub := Register(bus, tp.Tracer("test"))
	t.Cleanup(unsub)
	return sr
}

func attrs(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := map[attribute.Key]attribute.Value{}
	for _, kv := range span.Attributes() {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestValidationSpans(t *testing.T) {
	bus := eventbus.New()
	sr := newRecorder(t, bus)

	s, err := schema.BuildFromSDL([]*language.Source{{Name: "schema.graphql", Input: `type Foo { a: String }`}})
	require.NoError(t, err)
	v := validate.New(validate.WithEventBus(bus))
	v.Validate(s)
	v.Validate(s)

	spans := sr.Ended()
	require.Len(t, spans, 2)
	for _, span := range spans {
		require.Equal(t, "schema.validate", span.Name())
	}
	first, second := attrs(spans[0]), attrs(spans[1])
	require.Equal(t, int64(1), first["graphql.schema.diagnostic_count"].AsInt64())
	require.False(t, first["sdlcheck.cached"].AsBool())
	require.True(t, second["sdlcheck.cached"].AsBool())
	require.NotEqual(t, first["sdlcheck.run_id"].AsString(), second["sdlcheck.run_id"].AsString())
}

func TestFinishWithoutStartIsIgnored(t *testing.T) {
	bus := eventbus.New()
	sr := newRecorder(t, bus)
	eventbus.Publish(context.Background(), bus, events.ValidationFinish{})
	require.Empty(t, sr.Ended())
}

func TestSchemaLoadSpan(t *testing.T) {
	bus := eventbus.New()
	sr := newRecorder(t, bus)
	eventbus.Publish(context.Background(), bus, events.SchemaLoaded{Files: 3, Err: errors.New("parse failed")})

	spans := sr.Ended()
	require.Len(t, spans, 1)
	require.Equal(t, "schema.load", spans[0].Name())
	require.Equal(t, int64(3), attrs(spans[0])["sdlcheck.file_count"].AsInt64())
	require.Equal(t, codes.Error, spans[0].Status().Code)
}

func TestSetupWithoutEndpoint(t *testing.T) {
	shutdown, err := Setup("", "sdlcheck", eventbus.New())
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}
