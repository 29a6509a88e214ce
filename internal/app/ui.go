package app

import (
	"time"

	"github.com/bethropolis/tidecalc/internal/config"
	"github.com/bethropolis/tidecalc/internal/input"
	"github.com/bethropolis/tidecalc/internal/logger"
	"github.com/bethropolis/tidecalc/internal/modehandler"
	"github.com/bethropolis/tidecalc/internal/theme"
	"github.com/bethropolis/tidecalc/internal/tui"
)

// draw clears the screen and redraws all components.
func (a *App) draw() {
	a.updateStatusBarContent()

	activeTheme := a.themeManager.Current()
	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()

	view := tui.View{
		Display:    a.modeHandler.Display(),
		Expression: a.modeHandler.Expression(),
		Scientific: a.modeHandler.IsScientific(),
		History:    a.history.Entries(),
		Pressed:    a.pressedAction(),
	}

	a.tuiManager.Clear()
	layout := tui.DrawCalculator(a.tuiManager, view, activeTheme)
	a.statusBar.Draw(screen, width, height, activeTheme)
	a.tuiManager.Show()

	logger.DebugTagf("draw", "draw: Screen Size (%d x %d), too small: %v", width, height, layout.TooSmall)
}

// pressedAction returns the action whose button should be highlighted, or
// nil once the flash has expired.
func (a *App) pressedAction() *input.ActionEvent {
	ae, at := a.modeHandler.LastAction()
	if at.IsZero() || time.Since(at) >= config.FlashDuration {
		return nil
	}
	return &ae
}

// updateStatusBarContent pushes current calculator state to the status bar component.
func (a *App) updateStatusBarContent() {
	a.statusBar.SetThemeName(a.themeManager.Current().Name)
	a.statusBar.SetHistoryLen(a.history.Len())

	mode := a.modeHandler.GetCurrentMode()
	if mode == modehandler.ModeCommand {
		// Show the calculator mode underneath the command line
		if a.modeHandler.IsScientific() {
			mode = modehandler.ModeScientific
		} else {
			mode = modehandler.ModeBasic
		}
	}
	a.statusBar.SetMode(mode.String())
}

// applyThemeStyle sets the screen background to the active theme.
func (a *App) applyThemeStyle() {
	a.tuiManager.SetStyle(a.themeManager.Current().GetStyle(theme.StyleDefault))
}
