package commands

import (
	"fmt"
	"strings"

	"github.com/bethropolis/tidecalc/internal/calc"
	"github.com/bethropolis/tidecalc/internal/logger"
	"github.com/bethropolis/tidecalc/internal/plugin"
)

// Registrar registers a command; plugin.CalculatorAPI satisfies it.
type Registrar interface {
	RegisterCommand(name string, cmdFunc plugin.CommandFunc) error
}

// RegisterAppCommands registers built-in commands like :theme and :sin.
func RegisterAppCommands(reg Registrar, app AppAPI) {
	RegisterThemeCommands(reg, app)
	RegisterCalculatorCommands(reg, app)
}

// RegisterThemeCommands registers only theme-related commands
func RegisterThemeCommands(reg Registrar, app AppAPI) {
	// --- Theme Command ---
	themeCmdFunc := func(args []string) error {
		if len(args) == 0 {
			app.SetStatusMessage("Current theme: %s", app.GetTheme().Name)
			return nil
		}

		themeName := strings.Join(args, " ") // Allow theme names with spaces
		if err := app.SetTheme(themeName); err != nil {
			themeList := strings.Join(app.ListThemes(), ", ")
			return fmt.Errorf("theme '%s' not found. Available: %s", themeName, themeList)
		}
		app.SetStatusMessage("Theme set to: %s", app.GetTheme().Name)
		return nil
	}

	// --- Theme List Command ---
	themeListCmdFunc := func(args []string) error {
		app.SetStatusMessage("Available themes: %s", strings.Join(app.ListThemes(), ", "))
		return nil
	}

	register(reg, "theme", themeCmdFunc)
	register(reg, "themes", themeListCmdFunc)
}

// RegisterCalculatorCommands registers :mode, :clear, :q and one command per
// scientific function (:sin, :sqrt, ...).
func RegisterCalculatorCommands(reg Registrar, app AppAPI) {
	register(reg, "mode", func(args []string) error {
		app.ToggleMode()
		return nil
	})
	register(reg, "clear", func(args []string) error {
		app.ClearHistory()
		return nil
	})
	quit := func(args []string) error {
		app.Quit()
		return nil
	}
	register(reg, "q", quit)
	register(reg, "quit", quit)

	for _, fn := range calc.Functions() {
		fn := fn
		register(reg, fn.String(), func(args []string) error {
			if !app.ApplyFunction(fn) {
				return fmt.Errorf("%s needs scientific mode (press s)", fn)
			}
			return nil
		})
	}
}

func register(reg Registrar, name string, fn plugin.CommandFunc) {
	if err := reg.RegisterCommand(name, fn); err != nil {
		logger.Warnf("Failed to register ':%s' command: %v", name, err)
	}
}
