// internal/theme/manager.go
package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bethropolis/tidecalc/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// ErrNotFound is returned when a theme name is not loaded.
var ErrNotFound = errors.New("theme not found")

// Manager holds loaded themes and manages the active theme.
type Manager struct {
	themes      map[string]*Theme // Map theme name (lowercase) -> Theme object
	activeTheme *Theme
	themesDir   string
	darkName    string // Target of Toggle from a light theme
	lightName   string // Target of Toggle from a dark theme
	mutex       sync.RWMutex
}

// Options configures a Manager.
type Options struct {
	ThemesDir string // Directory of *.toml themes; empty skips loading
	Initial   string // Name of the initial theme; empty means the dark pair
	Dark      string // Dark half of the toggle pair
	Light     string // Light half of the toggle pair
}

// NewManager creates and initializes a theme manager. Problems loading
// custom themes are logged; the built-in themes are always available.
func NewManager(opts Options) *Manager {
	mgr := &Manager{
		themes:    make(map[string]*Theme),
		themesDir: opts.ThemesDir,
		darkName:  CalcDark.Name,
		lightName: CalcLight.Name,
	}

	mgr.loadBuiltinThemes()

	if mgr.themesDir != "" {
		if err := mgr.LoadThemesFromDir(); err != nil {
			logger.Errorf("Error loading themes from '%s': %v", mgr.themesDir, err)
		}
	}

	if opts.Dark != "" {
		if _, ok := mgr.GetTheme(opts.Dark); ok {
			mgr.darkName = opts.Dark
		} else {
			logger.Warnf("Dark theme '%s' not found, keeping '%s'", opts.Dark, mgr.darkName)
		}
	}
	if opts.Light != "" {
		if _, ok := mgr.GetTheme(opts.Light); ok {
			mgr.lightName = opts.Light
		} else {
			logger.Warnf("Light theme '%s' not found, keeping '%s'", opts.Light, mgr.lightName)
		}
	}

	initial := opts.Initial
	if initial == "" {
		initial = mgr.darkName
	}
	if err := mgr.SetTheme(initial); err != nil {
		logger.Warnf("Initial theme '%s' unavailable (%v), using '%s'", initial, err, mgr.darkName)
		_ = mgr.SetTheme(mgr.darkName)
	}

	logger.Infof("Initial active theme set to: %s", mgr.Current().Name)
	return mgr
}

// loadBuiltinThemes adds themes compiled into the binary.
func (m *Manager) loadBuiltinThemes() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, t := range Builtin() {
		m.themes[strings.ToLower(t.Name)] = t
		logger.Debugf("Loaded built-in theme: %s", t.Name)
	}
}

// LoadThemesFromDir scans the themes directory and loads .toml files.
// A missing directory is not an error.
func (m *Manager) LoadThemesFromDir() error {
	if m.themesDir == "" {
		return errors.New("theme directory path is not set")
	}

	files, err := os.ReadDir(m.themesDir)
	if errors.Is(err, os.ErrNotExist) {
		logger.Infof("Theme directory '%s' does not exist. No custom themes loaded.", m.themesDir)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read theme directory '%s': %w", m.themesDir, err)
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	loadedCount := 0
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(strings.ToLower(file.Name()), ".toml") {
			continue
		}
		filePath := filepath.Join(m.themesDir, file.Name())
		theme, err := LoadThemeFromFile(filePath)
		if err != nil {
			logger.Warnf("Failed to load theme from '%s': %v", filePath, err)
			continue // Skip problematic file
		}

		key := strings.ToLower(theme.Name)
		if existing, ok := m.themes[key]; ok {
			logger.Warnf("Theme '%s' from '%s' overrides existing theme '%s'", theme.Name, filePath, existing.Name)
		}
		m.themes[key] = theme
		loadedCount++
	}
	logger.Infof("Loaded %d custom themes from %s.", loadedCount, m.themesDir)
	return nil
}

// Current returns the currently active theme.
func (m *Manager) Current() *Theme {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	if m.activeTheme == nil {
		return &Theme{Name: "NilFallback", Styles: map[string]tcell.Style{StyleDefault: tcell.StyleDefault}}
	}
	return m.activeTheme
}

// SetTheme sets the active theme by name (case-insensitive).
func (m *Manager) SetTheme(name string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	theme, ok := m.themes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return fmt.Errorf("%w: '%s'", ErrNotFound, name)
	}

	if m.activeTheme != theme {
		m.activeTheme = theme
		logger.Infof("Active theme set to: %s", theme.Name)
	}
	return nil
}

// Toggle switches between the dark and light theme of the toggle pair and
// returns the newly active theme.
func (m *Manager) Toggle() (*Theme, error) {
	target := m.darkName
	if m.Current().IsDark {
		target = m.lightName
	}
	if err := m.SetTheme(target); err != nil {
		return m.Current(), err
	}
	return m.Current(), nil
}

// ListThemes returns the names of all loaded themes, sorted.
func (m *Manager) ListThemes() []string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	names := make([]string, 0, len(m.themes))
	for _, theme := range m.themes {
		names = append(names, theme.Name) // Return original case name
	}
	sort.Strings(names)
	return names
}

// GetTheme returns a specific theme by name (case-insensitive).
func (m *Manager) GetTheme(name string) (*Theme, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	theme, ok := m.themes[strings.ToLower(name)]
	return theme, ok
}
