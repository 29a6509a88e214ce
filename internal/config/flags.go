// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
	"strings"
)

// Flags holds values parsed from command-line flags.
// Use pointers to distinguish between unset flags and zero-value flags.
type Flags struct {
	fs *flag.FlagSet

	ConfigFilePath *string
	Version        *bool
	LogLevel       *string
	LogFilePath    *string
	Theme          *string
	Scientific     *bool
	HistorySize    *int
	Sound          *bool
	Clipboard      *bool
	// Logger filters
	EnableTags   *string
	DisableTags  *string
	EnablePkgs   *string
	DisablePkgs  *string
	EnableFiles  *string
	DisableFiles *string
	DebugLog     *bool
}

// NewFlags defines the command-line flags on fs. A nil fs uses
// flag.CommandLine.
func NewFlags(fs *flag.FlagSet) *Flags {
	if fs == nil {
		fs = flag.CommandLine
	}
	f := &Flags{fs: fs}
	f.DefineFlags()
	return f
}

// DefineFlags sets up the command-line flags and associates them with the Flags struct fields.
func (f *Flags) DefineFlags() {
	fs := f.fs
	f.ConfigFilePath = fs.String("config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", ConfigDirName, DefaultConfigFileName))
	f.Version = fs.Bool("version", false, "Show version information and exit")
	f.LogLevel = fs.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.LogFilePath = fs.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	f.Theme = fs.String("theme", "", "Initial theme name - Overrides config file")
	f.Scientific = fs.Bool("scientific", false, "Start in scientific mode - Overrides config file")
	f.HistorySize = fs.Int("history-size", 0, fmt.Sprintf("Number of evaluations kept in history (1-%d) - Overrides config file", MaxHistorySize))
	f.Sound = fs.Bool("sound", false, "Ring the terminal bell on every key press - Overrides config file")
	f.Clipboard = fs.Bool("system-clipboard", true, "Copy to the system clipboard - Overrides config file")
	f.EnableTags = fs.String("log-tags", "", "Comma-separated list of tags to enable - Overrides config file")
	f.DisableTags = fs.String("log-disable-tags", "", "Comma-separated list of tags to disable - Overrides config file")
	f.EnablePkgs = fs.String("log-packages", "", "Comma-separated list of packages to enable - Overrides config file")
	f.DisablePkgs = fs.String("log-disable-packages", "", "Comma-separated list of packages to disable - Overrides config file")
	f.EnableFiles = fs.String("log-files", "", "Comma-separated list of files to enable - Overrides config file")
	f.DisableFiles = fs.String("log-disable-files", "", "Comma-separated list of files to disable - Overrides config file")
	f.DebugLog = fs.Bool("debug-log", false, "Enable verbose debug logging for the logger filtering system")
}

// Parse parses args (normally os.Args[1:]) and returns the remaining
// non-flag arguments.
func (f *Flags) Parse(args []string) ([]string, error) {
	if err := f.fs.Parse(args); err != nil {
		return nil, err
	}
	return f.fs.Args(), nil
}

// ApplyOverrides updates the Config struct with values from flags *if* they were set.
func (f *Flags) ApplyOverrides(cfg *Config) {
	// Visit only processes flags that were actually set
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "loglevel":
			if *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath // Empty string is valid
		case "theme":
			if *f.Theme != "" {
				cfg.Theme.Name = *f.Theme
			}
		case "scientific":
			cfg.Calculator.Scientific = *f.Scientific
		case "history-size":
			if *f.HistorySize > 0 {
				cfg.Calculator.HistorySize = *f.HistorySize
			}
		case "sound":
			cfg.Calculator.Sound = *f.Sound
			if !*f.Sound {
				disabled := false
				pc := cfg.Plugins["click"]
				pc.Enabled = &disabled
				if cfg.Plugins == nil {
					cfg.Plugins = make(map[string]PluginConfig)
				}
				cfg.Plugins["click"] = pc
			}
		case "system-clipboard":
			cfg.Calculator.SystemClipboard = *f.Clipboard
		case "log-tags":
			cfg.Logger.EnabledTags = splitCommaList(*f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = splitCommaList(*f.DisableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = splitCommaList(*f.EnablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = splitCommaList(*f.DisablePkgs)
		case "log-files":
			cfg.Logger.EnabledFiles = splitCommaList(*f.EnableFiles)
		case "log-disable-files":
			cfg.Logger.DisabledFiles = splitCommaList(*f.DisableFiles)
		}
	})
}

// splitCommaList splits "a, b,,c" into [a b c].
func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
