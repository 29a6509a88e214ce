package app

import (
	"github.com/bethropolis/tidecalc/internal/event"
	"github.com/bethropolis/tidecalc/internal/logger"
)

// handleHistoryChanged updates the history count and redraws the list.
func (a *App) handleHistoryChanged(e event.Event) bool {
	if data, ok := e.Data.(event.HistoryChangedData); ok {
		a.statusBar.SetHistoryLen(data.Len)
	}
	a.requestRedraw()
	return false // Not consumed
}

// handleThemeChanged restyles the screen for the new theme.
func (a *App) handleThemeChanged(e event.Event) bool {
	if data, ok := e.Data.(event.ThemeChangedData); ok {
		logger.Debugf("App: Theme changed to '%s', redraw requested", data.Name)
	}
	a.applyThemeStyle()
	a.requestRedraw()
	return false // Not consumed
}

// handleModeChanged redraws since the keypad layout depends on the mode.
func (a *App) handleModeChanged(e event.Event) bool {
	if data, ok := e.Data.(event.ModeChangedData); ok {
		logger.DebugTagf("mode", "App: Mode %s -> %s", data.From, data.To)
	}
	a.requestRedraw()
	return false // Not consumed
}
