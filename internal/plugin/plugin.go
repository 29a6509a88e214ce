// internal/plugin/plugin.go
package plugin

import (
	"github.com/bethropolis/tidecalc/internal/event"
	"github.com/bethropolis/tidecalc/internal/history"
	"github.com/bethropolis/tidecalc/internal/theme"
	"github.com/gdamore/tcell/v2"
)

// CommandFunc defines the signature for commands registered by plugins.
// It takes the words typed after the command name and returns an error.
type CommandFunc func(args []string) error

// CalculatorAPI defines the methods plugins can use to interact with the
// calculator. Plugins never touch the calculator state directly.
type CalculatorAPI interface {
	// --- Calculator (Read-Only) ---
	GetDisplay() string
	GetExpression() string
	GetHistory() []history.Entry // Newest first

	// --- Event Bus Interaction ---
	DispatchEvent(eventType event.Type, data interface{})
	SubscribeEvent(eventType event.Type, handler event.Handler) event.Subscription
	UnsubscribeEvent(sub event.Subscription)

	// --- Command Registration ---
	RegisterCommand(name string, cmdFunc CommandFunc) error

	// --- Status Bar ---
	SetStatusMessage(format string, args ...interface{}) // Show temporary messages

	// --- Theme Access ---
	GetThemeStyle(styleName string) tcell.Style
	SetTheme(name string) error
	GetTheme() *theme.Theme
	ListThemes() []string

	// --- Terminal & Clipboard ---
	Beep() error
	CopyToClipboard(text string) error

	// --- Configuration ---
	// PluginOptions returns the [plugins.<name>.options] table, or nil.
	PluginOptions(name string) map[string]interface{}
}

// Plugin defines the interface that all plugins must implement.
type Plugin interface {
	// Name returns the unique identifier name of the plugin.
	Name() string

	// Initialize is called once when the plugin is loaded. Plugins subscribe
	// to events and register commands here.
	Initialize(api CalculatorAPI) error

	// Shutdown is called once when the calculator is closing.
	Shutdown() error
}
