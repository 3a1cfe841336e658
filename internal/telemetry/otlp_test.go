package telemetry

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"coffeeflavours/internal/catalog"
	"coffeeflavours/internal/viewstate"
)

func TestNew_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv(EndpointEnv, "")
	tr, err := New(context.Background(), "test")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if tr != nil {
		t.Fatal("expected nil tracer when endpoint unset")
	}
	// nil tracer is usable
	tr.OnTransition(viewstate.Transition{Op: viewstate.OpOpenMenu})
	if err := tr.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown nil: %v", err)
	}
	if tr.SessionID() != "" {
		t.Error("nil tracer should have empty session id")
	}
}

func TestTracer_SpanPerTransition(t *testing.T) {
	exp := tracetest.NewInMemoryExporter()
	tr := NewWithExporter(exp, "test")
	defer tr.Shutdown(context.Background())

	at := time.Date(2026, 2, 28, 9, 0, 0, 0, time.UTC)
	c := viewstate.NewController(catalog.Default(),
		viewstate.WithObserver(tr),
		viewstate.WithClock(func() time.Time { return at }),
	)
	c.OpenMenu()
	if err := c.NavigateFromMenu(viewstate.PageStory); err != nil {
		t.Fatalf("NavigateFromMenu: %v", err)
	}
	c.OpenMenu() // menu flag flips again under the story page

	spans := exp.GetSpans()
	if len(spans) != 3 {
		t.Fatalf("expected 3 spans, got %d", len(spans))
	}
	nav := spans[1]
	if nav.Name != "view.navigate_from_menu" {
		t.Errorf("expected span name view.navigate_from_menu, got %q", nav.Name)
	}
	if !nav.StartTime.Equal(at) {
		t.Errorf("expected start %v, got %v", at, nav.StartTime)
	}

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range nav.Attributes {
		attrs[kv.Key] = kv.Value
	}
	if got := attrs["coffeeflavours.screen.from"].AsString(); got != "nav-menu" {
		t.Errorf("screen.from: expected nav-menu, got %q", got)
	}
	if got := attrs["coffeeflavours.screen.to"].AsString(); got != "story" {
		t.Errorf("screen.to: expected story, got %q", got)
	}
	if got := attrs["coffeeflavours.session.id"].AsString(); got != tr.SessionID() {
		t.Errorf("session.id: expected %q, got %q", tr.SessionID(), got)
	}
}
