// plugins/click/click.go
package click

import (
	"fmt"
	"sync"
	"time"

	"github.com/bethropolis/tidecalc/internal/event"
	"github.com/bethropolis/tidecalc/internal/logger"
	"github.com/bethropolis/tidecalc/internal/plugin"
)

// Ensure Click implements plugin.Plugin
var _ plugin.Plugin = (*Click)(nil)

// DefaultMinInterval throttles the bell when keys repeat quickly.
const DefaultMinInterval = 30 * time.Millisecond

// Click rings the terminal bell on every key press or keypad click.
type Click struct {
	api         plugin.CalculatorAPI
	sub         event.Subscription
	subscribed  bool
	minInterval time.Duration
	now         func() time.Time

	mu   sync.Mutex
	last time.Time
}

// New creates a new instance of the Click plugin.
func New() plugin.Plugin {
	return &Click{minInterval: DefaultMinInterval, now: time.Now}
}

// Name returns the unique name of the plugin.
func (p *Click) Name() string {
	return "click"
}

// Initialize subscribes to key presses. The optional min_interval_ms option
// overrides the throttle.
func (p *Click) Initialize(api plugin.CalculatorAPI) error {
	p.api = api

	if opts := api.PluginOptions(p.Name()); opts != nil {
		if v, ok := opts["min_interval_ms"]; ok {
			ms, ok := v.(int64) // TOML integers decode as int64
			if !ok || ms < 0 {
				return fmt.Errorf("min_interval_ms must be a non-negative integer, got %v", v)
			}
			p.minInterval = time.Duration(ms) * time.Millisecond
		}
	}

	p.sub = api.SubscribeEvent(event.TypeKeyPressed, p.handleKeyPressed)
	p.subscribed = true
	logger.Debugf("Click: Subscribed to key presses (min interval %v)", p.minInterval)
	return nil
}

// Shutdown removes the subscription.
func (p *Click) Shutdown() error {
	if p.subscribed {
		p.api.UnsubscribeEvent(p.sub)
		p.subscribed = false
	}
	return nil
}

func (p *Click) handleKeyPressed(e event.Event) bool {
	p.mu.Lock()
	now := p.now()
	if !p.last.IsZero() && now.Sub(p.last) < p.minInterval {
		p.mu.Unlock()
		return false
	}
	p.last = now
	p.mu.Unlock()

	if err := p.api.Beep(); err != nil {
		logger.DebugTagf("click", "Click: Beep failed: %v", err)
	}
	return false // Never consume key presses
}
