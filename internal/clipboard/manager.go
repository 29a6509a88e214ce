// Package clipboard copies calculator text to the system clipboard, keeping
// an internal copy so the last value is available even without one.
package clipboard

import (
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/bethropolis/tidecalc/internal/logger"
)

// Manager handles clipboard operations.
type Manager struct {
	mu        sync.Mutex
	useSystem bool
	internal  string

	writeAll func(string) error
	readAll  func() (string, error)
}

// NewManager creates a clipboard manager. useSystem is ignored when the
// platform has no clipboard utility available.
func NewManager(useSystem bool) *Manager {
	if useSystem && clipboard.Unsupported {
		logger.Warnf("ClipboardManager: System clipboard unsupported, using internal clipboard")
		useSystem = false
	}
	return &Manager{
		useSystem: useSystem,
		writeAll:  clipboard.WriteAll,
		readAll:   clipboard.ReadAll,
	}
}

// UsingSystem reports whether copies reach the system clipboard.
func (m *Manager) UsingSystem() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.useSystem
}

// Copy stores text. The internal copy is always updated; an error means only
// the system clipboard write failed.
func (m *Manager) Copy(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.internal = text
	logger.Debugf("ClipboardManager: Copied %d bytes", len(text))
	if !m.useSystem {
		return nil
	}
	if err := m.writeAll(text); err != nil {
		return fmt.Errorf("system clipboard write failed: %w", err)
	}
	return nil
}

// Text returns the clipboard contents, preferring the system clipboard.
func (m *Manager) Text() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.useSystem {
		return m.internal, nil
	}
	text, err := m.readAll()
	if err != nil {
		return m.internal, fmt.Errorf("system clipboard read failed: %w", err)
	}
	return text, nil
}
