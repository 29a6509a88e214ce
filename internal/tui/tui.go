// internal/tui/tui.go
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// TUI manages the terminal screen using tcell.
type TUI struct {
	screen tcell.Screen
}

// New creates and initializes a TUI on the real terminal.
func New() (*TUI, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	return NewWithScreen(s)
}

// NewWithScreen initializes the given screen, which may be a
// tcell.SimulationScreen in tests. Mouse reporting is enabled for keypad
// clicks.
func NewWithScreen(s tcell.Screen) (*TUI, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize tcell screen: %w", err)
	}
	s.EnableMouse(tcell.MouseButtonEvents)
	s.HideCursor()
	return &TUI{screen: s}, nil
}

// Close finalizes the tcell screen.
func (t *TUI) Close() {
	if t.screen != nil {
		t.screen.Fini()
	}
}

// PollEvent retrieves the next event. It returns nil once the screen is
// finalized.
func (t *TUI) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// SetStyle sets the style used to clear the screen, normally the theme's
// Default style.
func (t *TUI) SetStyle(style tcell.Style) {
	t.screen.SetStyle(style)
}

// Beep rings the terminal bell.
func (t *TUI) Beep() error {
	return t.screen.Beep()
}

// Clear clears the entire screen.
func (t *TUI) Clear() {
	t.screen.Clear()
}

// Show makes the changes visible.
func (t *TUI) Show() {
	t.screen.Show()
}

// Sync redraws the whole terminal, used after a resize.
func (t *TUI) Sync() {
	t.screen.Sync()
}

// Size returns the width and height of the terminal screen.
func (t *TUI) Size() (int, int) {
	return t.screen.Size()
}

// GetScreen provides direct access (use with caution).
func (t *TUI) GetScreen() tcell.Screen {
	return t.screen
}
