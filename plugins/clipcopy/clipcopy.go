// plugins/clipcopy/clipcopy.go
package clipcopy

import (
	"fmt"
	"strings"

	"github.com/bethropolis/tidecalc/internal/plugin"
)

// Ensure Copy implements plugin.Plugin
var _ plugin.Plugin = (*Copy)(nil)

// Copy adds clipboard commands: :copy copies the display and :copyhist
// copies the history, newest first, one entry per line.
type Copy struct {
	api plugin.CalculatorAPI
}

// New creates a new instance of the Copy plugin.
func New() plugin.Plugin {
	return &Copy{}
}

// Name returns the unique name of the plugin.
func (p *Copy) Name() string {
	return "copy"
}

// Initialize registers the commands.
func (p *Copy) Initialize(api plugin.CalculatorAPI) error {
	p.api = api
	if err := api.RegisterCommand("copy", p.copyDisplay); err != nil {
		return fmt.Errorf("failed to register 'copy' command: %w", err)
	}
	if err := api.RegisterCommand("copyhist", p.copyHistory); err != nil {
		return fmt.Errorf("failed to register 'copyhist' command: %w", err)
	}
	return nil
}

// Shutdown performs cleanup (nothing needed for this plugin).
func (p *Copy) Shutdown() error {
	return nil
}

func (p *Copy) copyDisplay(args []string) error {
	display := p.api.GetDisplay()
	if err := p.api.CopyToClipboard(display); err != nil {
		return err
	}
	p.api.SetStatusMessage("Copied %s", display)
	return nil
}

func (p *Copy) copyHistory(args []string) error {
	entries := p.api.GetHistory()
	if len(entries) == 0 {
		p.api.SetStatusMessage("History is empty")
		return nil
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.String()
	}
	if err := p.api.CopyToClipboard(strings.Join(lines, "\n")); err != nil {
		return err
	}
	p.api.SetStatusMessage("Copied %d history entries", len(entries))
	return nil
}
