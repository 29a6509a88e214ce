package click

import (
	"testing"
	"time"

	"github.com/bethropolis/tidecalc/internal/event"
	"github.com/bethropolis/tidecalc/internal/plugin/plugintest"
)

func TestBeepsOnKeyPress(t *testing.T) {
	api := plugintest.New()
	p := New().(*Click)
	now := time.Unix(0, 0)
	p.now = func() time.Time { return now }

	if err := p.Initialize(api); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	api.DispatchEvent(event.TypeKeyPressed, event.KeyPressedData{Label: "7"})
	api.DispatchEvent(event.TypeKeyPressed, event.KeyPressedData{Label: "8"}) // Throttled
	now = now.Add(DefaultMinInterval)
	api.DispatchEvent(event.TypeKeyPressed, event.KeyPressedData{Label: "9"})

	if got := api.BeepCount(); got != 2 {
		t.Errorf("beeps = %d, want 2", got)
	}

	if err := p.Shutdown(); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if n := api.Events.HandlerCount(event.TypeKeyPressed); n != 0 {
		t.Errorf("handlers after shutdown = %d, want 0", n)
	}
}

func TestMinIntervalOption(t *testing.T) {
	api := plugintest.New()
	api.Options["click"] = map[string]interface{}{"min_interval_ms": int64(0)}
	p := New().(*Click)
	if err := p.Initialize(api); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	for i := 0; i < 3; i++ {
		api.DispatchEvent(event.TypeKeyPressed, event.KeyPressedData{})
	}
	if got := api.BeepCount(); got != 3 {
		t.Errorf("beeps = %d, want 3 with no throttle", got)
	}
}

func TestInvalidOption(t *testing.T) {
	api := plugintest.New()
	api.Options["click"] = map[string]interface{}{"min_interval_ms": "fast"}
	if err := New().Initialize(api); err == nil {
		t.Error("string interval should be rejected")
	}
}
