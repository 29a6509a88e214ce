// Package plugintest provides an in-memory plugin.CalculatorAPI for plugin
// tests.
package plugintest

import (
	"fmt"
	"sync"

	"github.com/bethropolis/tidecalc/internal/event"
	"github.com/bethropolis/tidecalc/internal/history"
	"github.com/bethropolis/tidecalc/internal/plugin"
	"github.com/bethropolis/tidecalc/internal/theme"
	"github.com/gdamore/tcell/v2"
)

var _ plugin.CalculatorAPI = (*API)(nil)

// API records what plugins do through the calculator API.
type API struct {
	Events   *event.Manager
	Display  string
	Expr     string
	History  []history.Entry
	Options  map[string]map[string]interface{}
	Commands map[string]plugin.CommandFunc
	CopyErr  error // Returned by CopyToClipboard when set

	mu        sync.Mutex
	Status    string
	Beeps     int
	Clipboard string
	theme     *theme.Theme
}

// New returns an API with an empty event bus and the dark theme active.
func New() *API {
	return &API{
		Events:   event.NewManager(),
		Display:  "0",
		Options:  make(map[string]map[string]interface{}),
		Commands: make(map[string]plugin.CommandFunc),
		theme:    &theme.CalcDark,
	}
}

// Run executes a registered command.
func (a *API) Run(name string, args ...string) error {
	fn, ok := a.Commands[name]
	if !ok {
		return fmt.Errorf("command %q not registered", name)
	}
	return fn(args)
}

// BeepCount returns the number of Beep calls.
func (a *API) BeepCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.Beeps
}

func (a *API) GetDisplay() string          { return a.Display }
func (a *API) GetExpression() string       { return a.Expr }
func (a *API) GetHistory() []history.Entry { return a.History }

func (a *API) DispatchEvent(eventType event.Type, data interface{}) {
	a.Events.Dispatch(eventType, data)
}

func (a *API) SubscribeEvent(eventType event.Type, handler event.Handler) event.Subscription {
	return a.Events.Subscribe(eventType, handler)
}

func (a *API) UnsubscribeEvent(sub event.Subscription) {
	a.Events.Unsubscribe(sub)
}

func (a *API) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	if _, ok := a.Commands[name]; ok {
		return fmt.Errorf("command '%s' already registered", name)
	}
	a.Commands[name] = cmdFunc
	return nil
}

func (a *API) SetStatusMessage(format string, args ...interface{}) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Status = fmt.Sprintf(format, args...)
}

func (a *API) GetThemeStyle(styleName string) tcell.Style { return a.theme.GetStyle(styleName) }
func (a *API) GetTheme() *theme.Theme                     { return a.theme }
func (a *API) ListThemes() []string                       { return []string{theme.CalcDark.Name, theme.CalcLight.Name} }

func (a *API) SetTheme(name string) error {
	for _, th := range theme.Builtin() {
		if th.Name == name {
			a.theme = th
			return nil
		}
	}
	return fmt.Errorf("%w: '%s'", theme.ErrNotFound, name)
}

func (a *API) Beep() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Beeps++
	return nil
}

func (a *API) CopyToClipboard(text string) error {
	if a.CopyErr != nil {
		return a.CopyErr
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Clipboard = text
	return nil
}

func (a *API) PluginOptions(name string) map[string]interface{} {
	return a.Options[name]
}
