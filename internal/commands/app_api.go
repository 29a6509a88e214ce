package commands

import (
	"github.com/bethropolis/tidecalc/internal/calc"
	"github.com/bethropolis/tidecalc/internal/theme"
)

// AppAPI is what the built-in commands need beyond the plugin API.
type AppAPI interface {
	SetTheme(name string) error
	GetTheme() *theme.Theme
	ListThemes() []string
	SetStatusMessage(format string, args ...interface{})

	ToggleMode() string                  // Returns the new mode name
	ApplyFunction(fn calc.Function) bool // False when scientific mode is off
	ClearHistory()
	Quit()
}
