// Package telemetry records view transitions as OpenTelemetry spans.
package telemetry

import (
	"context"
	"os"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	oteltrace "go.opentelemetry.io/otel/trace"

	"coffeeflavours/internal/viewstate"
)

// EndpointEnv enables export when set.
const EndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"

// Tracer turns transitions into spans. A nil *Tracer is a valid, disabled
// tracer.
type Tracer struct {
	provider  *sdktrace.TracerProvider
	tracer    oteltrace.Tracer
	sessionID string
}

// Ensure Tracer implements viewstate.Observer.
var _ viewstate.Observer = (*Tracer)(nil)

// New creates an OTLP/HTTP tracer if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Returns nil if the endpoint is not configured (disabled).
func New(ctx context.Context, serviceName string) (*Tracer, error) {
	endpoint := os.Getenv(EndpointEnv)
	if endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}
	return newTracer(sdktrace.WithBatcher(exporter), serviceName), nil
}

// NewWithExporter creates a tracer that hands every span to exp
// synchronously.
func NewWithExporter(exp sdktrace.SpanExporter, serviceName string) *Tracer {
	return newTracer(sdktrace.WithSyncer(exp), serviceName)
}

func newTracer(export sdktrace.TracerProviderOption, serviceName string) *Tracer {
	if serviceName == "" {
		serviceName = "coffeeflavours"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
	)
	provider := sdktrace.NewTracerProvider(
		export,
		sdktrace.WithResource(res),
	)
	return &Tracer{
		provider:  provider,
		tracer:    provider.Tracer("coffeeflavours/viewstate"),
		sessionID: uuid.NewString(),
	}
}

// SessionID identifies this run; every span carries it.
func (t *Tracer) SessionID() string {
	if t == nil {
		return ""
	}
	return t.sessionID
}

// OnTransition implements viewstate.Observer. Each transition becomes a
// zero-length span named after the operation.
func (t *Tracer) OnTransition(tr viewstate.Transition) {
	if t == nil {
		return
	}
	_, span := t.tracer.Start(context.Background(), "view."+string(tr.Op),
		oteltrace.WithTimestamp(tr.At),
	)
	span.SetAttributes(
		attribute.String("coffeeflavours.session.id", t.sessionID),
		attribute.String("coffeeflavours.op", string(tr.Op)),
		attribute.String("coffeeflavours.screen.from", tr.From.Screen().String()),
		attribute.String("coffeeflavours.screen.to", tr.To.Screen().String()),
		attribute.String("coffeeflavours.page", tr.To.ActivePage.String()),
		attribute.Int("coffeeflavours.coffee.index", tr.To.SelectedIndex),
		attribute.Int("coffeeflavours.overlays.open", tr.To.OpenOverlays()),
	)
	span.End(oteltrace.WithTimestamp(tr.At))
}

// Shutdown flushes and closes the exporter.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
