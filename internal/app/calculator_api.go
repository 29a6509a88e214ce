// internal/app/calculator_api.go
package app

import (
	"fmt"
	"strings"

	"github.com/bethropolis/tidecalc/internal/calc"
	"github.com/bethropolis/tidecalc/internal/commands"
	"github.com/bethropolis/tidecalc/internal/event"
	"github.com/bethropolis/tidecalc/internal/history"
	"github.com/bethropolis/tidecalc/internal/logger"
	"github.com/bethropolis/tidecalc/internal/plugin"
	"github.com/bethropolis/tidecalc/internal/theme"
	"github.com/gdamore/tcell/v2"
)

// Ensure calculatorAPI implements the plugin and command interfaces.
var (
	_ plugin.CalculatorAPI = (*calculatorAPI)(nil)
	_ commands.AppAPI      = (*calculatorAPI)(nil)
)

// calculatorAPI is the adapter plugins and built-in commands use to reach
// the app.
type calculatorAPI struct {
	app *App // Reference back to the main application
}

func newCalculatorAPI(app *App) *calculatorAPI {
	return &calculatorAPI{app: app}
}

// --- Calculator (Read-Only) ---

func (api *calculatorAPI) GetDisplay() string {
	return api.app.modeHandler.Display()
}

func (api *calculatorAPI) GetExpression() string {
	return api.app.modeHandler.Expression()
}

func (api *calculatorAPI) GetHistory() []history.Entry {
	return api.app.history.Entries()
}

// --- Event Bus Interaction ---

func (api *calculatorAPI) DispatchEvent(eventType event.Type, data interface{}) {
	api.app.eventManager.Dispatch(eventType, data)
}

func (api *calculatorAPI) SubscribeEvent(eventType event.Type, handler event.Handler) event.Subscription {
	return api.app.eventManager.Subscribe(eventType, handler)
}

func (api *calculatorAPI) UnsubscribeEvent(sub event.Subscription) {
	api.app.eventManager.Unsubscribe(sub)
}

// --- Command Registration ---

func (api *calculatorAPI) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	if api.app == nil || api.app.GetModeHandler() == nil {
		// This would be a programming error during setup
		logger.Errorf("calculatorAPI cannot register command '%s', app or modeHandler is nil", name)
		return fmt.Errorf("internal error: API cannot access command registration")
	}
	return api.app.GetModeHandler().RegisterCommand(name, cmdFunc)
}

// --- Status Bar ---

func (api *calculatorAPI) SetStatusMessage(format string, args ...interface{}) {
	api.app.statusBar.SetTemporaryMessage(format, args...)
	api.app.requestRedraw() // Ensure redraw to show message
}

// --- Theme Access ---

func (api *calculatorAPI) GetThemeStyle(styleName string) tcell.Style {
	return api.app.themeManager.Current().GetStyle(styleName)
}

// SetTheme sets the active theme by name and announces the change.
func (api *calculatorAPI) SetTheme(name string) error {
	if err := api.app.GetThemeManager().SetTheme(name); err != nil {
		return err
	}
	current := api.app.themeManager.Current()
	api.app.eventManager.Dispatch(event.TypeThemeChanged, event.ThemeChangedData{Name: current.Name})
	return nil
}

func (api *calculatorAPI) GetTheme() *theme.Theme {
	return api.app.themeManager.Current()
}

func (api *calculatorAPI) ListThemes() []string {
	return api.app.GetThemeManager().ListThemes()
}

// --- Terminal & Clipboard ---

func (api *calculatorAPI) Beep() error {
	return api.app.tuiManager.Beep()
}

func (api *calculatorAPI) CopyToClipboard(text string) error {
	return api.app.clipboard.Copy(text)
}

// --- Configuration ---

func (api *calculatorAPI) PluginOptions(name string) map[string]interface{} {
	return api.app.cfg.Plugins[strings.ToLower(name)].Options
}

// --- Calculator control (built-in commands) ---

func (api *calculatorAPI) ToggleMode() string {
	return api.app.modeHandler.ToggleMode().String()
}

func (api *calculatorAPI) ApplyFunction(fn calc.Function) bool {
	return api.app.modeHandler.ApplyFunction(fn)
}

func (api *calculatorAPI) ClearHistory() {
	api.app.modeHandler.ClearHistory()
}

// Quit signals the application to quit.
func (api *calculatorAPI) Quit() {
	api.app.modeHandler.Quit()
}
