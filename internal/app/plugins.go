package app

import (
	"fmt" // For error wrapping

	"github.com/bethropolis/tidecalc/internal/config"
	"github.com/bethropolis/tidecalc/internal/logger"
	"github.com/bethropolis/tidecalc/internal/plugin"

	"github.com/bethropolis/tidecalc/plugins/click"
	"github.com/bethropolis/tidecalc/plugins/clipcopy"
)

// builtinPlugin pairs a constructor with whether the plugin runs when the
// config says nothing about it.
type builtinPlugin struct {
	newPlugin func() plugin.Plugin
	enabled   bool
}

// Adding a new plugin means adding its constructor here.
var builtinPlugins = []builtinPlugin{
	{newPlugin: clipcopy.New, enabled: true},
	{newPlugin: click.New, enabled: false}, // Enabled by [calculator] sound or [plugins.click]
}

// registerPlugins registers every enabled built-in plugin with the manager.
func registerPlugins(pm *plugin.Manager, cfg *config.Config) error {
	if pm == nil {
		return fmt.Errorf("plugin manager is nil")
	}

	var finalErr error
	for _, bp := range builtinPlugins {
		p := bp.newPlugin()
		pluginName := p.Name()

		if !cfg.PluginEnabled(pluginName, bp.enabled) {
			logger.Debugf("Plugin '%s' disabled by config", pluginName)
			continue
		}

		logger.Debugf("Registering plugin: %s", pluginName)
		if err := pm.Register(p); err != nil {
			// Log the error but continue registering others
			wrappedErr := fmt.Errorf("failed to register plugin '%s': %w", pluginName, err)
			logger.Errorf("%v", wrappedErr)
			if finalErr == nil {
				finalErr = wrappedErr // Store the first error encountered
			}
		}
	}

	return finalErr
}
