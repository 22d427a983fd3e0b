package otel

import (
	"context"
	"sync"
	"time"

	"github.com/hanpama/sdlcheck/internal/eventbus"
	"github.com/hanpama/sdlcheck/internal/events"
	"github.com/hanpama/sdlcheck/internal/runid"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Setup configures OpenTelemetry and attaches eventbus subscribers.
// If endpoint is empty, no telemetry is configured.
func Setup(endpoint, service string, bus *eventbus.Bus) (func(context.Context) error, error) {
	if endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}
	exp, err := otlptracegrpc.New(context.Background(),
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(service),
		)),
	)
	otel.SetTracerProvider(tp)

	unsubscribe := Register(bus, tp.Tracer("sdlcheck"))

	return func(ctx context.Context) error {
		unsubscribe()
		return tp.Shutdown(ctx)
	}, nil
}

// Register turns validation and schema loading events on bus into spans
// created by tracer.
func Register(bus *eventbus.Bus, tracer trace.Tracer) (unsubscribe func()) {
	s := &subscriber{tracer: tracer}
	return s.register(bus)
}

type subscriber struct {
	tracer trace.Tracer
	spans  sync.Map // run id -> trace.Span
}

func (s *subscriber) register(bus *eventbus.Bus) func() {
	unsubs := []func(){
		eventbus.Subscribe(bus, func(ctx context.Context, e events.ValidationStart) {
			rid, _ := runid.FromContext(ctx)
			_, span := s.tracer.Start(ctx, "schema.validate")
			span.SetAttributes(
				attribute.String("sdlcheck.run_id", rid),
				attribute.Int("graphql.schema.type_count", e.Types),
				attribute.Int("graphql.schema.directive_count", e.Directives),
			)
			s.spans.Store(rid, span)
		}),

		eventbus.Subscribe(bus, func(ctx context.Context, e events.ValidationFinish) {
			rid, _ := runid.FromContext(ctx)
			v, ok := s.spans.LoadAndDelete(rid)
			if !ok {
				return
			}
			span := v.(trace.Span)
			span.SetAttributes(
				attribute.Int("graphql.schema.diagnostic_count", e.Diagnostics),
				attribute.Bool("sdlcheck.cached", e.Cached),
			)
			span.End()
		}),

		eventbus.Subscribe(bus, func(ctx context.Context, e events.SchemaLoaded) {
			_, span := s.tracer.Start(ctx, "schema.load", trace.WithTimestamp(time.Now().Add(-e.Duration)))
			span.SetAttributes(attribute.Int("sdlcheck.file_count", e.Files))
			if e.Err != nil {
				span.RecordError(e.Err)
				span.SetStatus(codes.Error, e.Err.Error())
			}
			span.End()
		}),
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}
