// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/tidecalc/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger     logger.Config           `toml:"logger"`     // Embed logger config under [logger] table
	Calculator CalculatorConfig        `toml:"calculator"` // Calculator behaviour
	Theme      ThemeConfig             `toml:"theme"`      // Active theme and toggle pair
	Plugins    map[string]PluginConfig `toml:"plugins"`    // [plugins.<name>] tables

	undecoded []string
}

// CalculatorConfig holds calculator settings.
type CalculatorConfig struct {
	HistorySize     int  `toml:"history_size"`
	Scientific      bool `toml:"scientific"`       // Start in scientific mode
	Sound           bool `toml:"sound"`            // Shorthand for [plugins.click] enabled
	SystemClipboard bool `toml:"system_clipboard"` // Copy to the system clipboard, not just the internal one
}

// ThemeConfig selects themes. Names are case-insensitive.
type ThemeConfig struct {
	Name  string `toml:"name"`
	Dark  string `toml:"dark"`
	Light string `toml:"light"`
	Dir   string `toml:"dir"` // Custom theme directory; empty means the default location
}

// PluginConfig holds per-plugin settings. Options carries any extra keys of
// the table for the plugin to interpret.
type PluginConfig struct {
	Enabled *bool                  `toml:"enabled"`
	Options map[string]interface{} `toml:"options"`
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			LogLevel:    "info",
			LogFilePath: "", // Empty means DefaultLogPath
		},
		Calculator: CalculatorConfig{
			HistorySize:     DefaultHistorySize,
			SystemClipboard: SystemClipboard,
		},
		Plugins: make(map[string]PluginConfig),
	}
}

// DefaultConfigPath returns ~/.config/tidecalc/config.toml, or "" when the
// user config directory is unknown.
func DefaultConfigPath() string {
	dir := configDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, DefaultConfigFileName)
}

// DefaultThemesDir returns ~/.config/tidecalc/themes, or "".
func DefaultThemesDir() string {
	dir := configDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, ThemesDirName)
}

// DefaultLogPath returns the log file location inside the user cache
// directory, falling back to the temp directory.
func DefaultLogPath() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, ConfigDirName, DefaultLogFileName)
}

func configDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, ConfigDirName)
}

// loadFromFile decodes the TOML file over cfg. A missing file is not an
// error; cfg is left untouched.
func loadFromFile(filePath string, cfg *Config) error {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		// Logged once the logger exists; see Load.
		cfg.undecoded = append(cfg.undecoded, fmt.Sprint(undecoded))
	}
	return nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Calculator.HistorySize <= 0 || c.Calculator.HistorySize > MaxHistorySize {
		c.Calculator.HistorySize = defaults.Calculator.HistorySize
	}
	if _, ok := logger.ParseLevel(c.Logger.LogLevel); !ok {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if c.Plugins == nil {
		c.Plugins = make(map[string]PluginConfig)
	}

	// Normalise plugin keys so lookups are case-insensitive.
	for name, pc := range c.Plugins {
		lower := strings.ToLower(name)
		if lower != name {
			delete(c.Plugins, name)
			c.Plugins[lower] = pc
		}
	}
}

// PluginEnabled reports whether the named plugin should be initialized.
// Plugins without an explicit setting use def.
func (c *Config) PluginEnabled(name string, def bool) bool {
	pc, ok := c.Plugins[strings.ToLower(name)]
	if !ok || pc.Enabled == nil {
		return def
	}
	return *pc.Enabled
}

// Undecoded returns the unrecognized keys found while loading the file.
func (c *Config) Undecoded() []string {
	return c.undecoded
}

// Load merges defaults, the TOML file and flag overrides, then validates.
// A file error is returned alongside a usable config built from defaults
// and flags.
func Load(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	effectivePath := configFilePath
	if effectivePath == "" {
		effectivePath = DefaultConfigPath()
	}

	var fileErr error
	if effectivePath != "" {
		if err := loadFromFile(effectivePath, cfg); err != nil {
			fileErr = err
			// Start again from defaults; a half-decoded file is not trusted.
			cfg = NewDefaultConfig()
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}

	// -sound and [calculator] sound turn on the click plugin unless its
	// table says otherwise.
	if cfg.Calculator.Sound {
		pc := cfg.Plugins["click"]
		if pc.Enabled == nil {
			enabled := true
			pc.Enabled = &enabled
			cfg.Plugins["click"] = pc
		}
	}

	cfg.validate()
	return cfg, fileErr
}

// LoadConfig runs Load once and stores the result for Get.
// It should be called only once, typically from main.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		loadedConfig, loadErr = Load(configFilePath, flags)
	})
	return loadedConfig, loadErr
}

// Get returns the loaded application configuration. Panics if LoadConfig wasn't called.
func Get() *Config {
	if loadedConfig == nil {
		panic("config.Get() called before config.LoadConfig()")
	}
	return loadedConfig
}
