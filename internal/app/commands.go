package app

import (
	"github.com/bethropolis/tidecalc/internal/commands"
)

// registerAppCommands registers built-in commands like :theme and :mode.
func registerAppCommands(app *App) {
	commands.RegisterAppCommands(app.modeHandler, app.api)
}
