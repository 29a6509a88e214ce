package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := flag.NewFlagSet("tidecalc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := NewFlags(fs)
	if _, err := f.Parse(args); err != nil {
		t.Fatalf("Parse(%v): %v", args, err)
	}
	return f
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Calculator.HistorySize != DefaultHistorySize {
		t.Errorf("HistorySize = %d, want %d", cfg.Calculator.HistorySize, DefaultHistorySize)
	}
	if cfg.Logger.LogLevel != "info" {
		t.Errorf("LogLevel = %q", cfg.Logger.LogLevel)
	}
	if cfg.PluginEnabled("click", false) {
		t.Error("click plugin should default to disabled")
	}
	if !cfg.PluginEnabled("copy", true) {
		t.Error("copy plugin should default to enabled")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
[logger]
level = "debug"
enabled_tags = ["keys"]

[calculator]
history_size = 5
scientific = true

[theme]
name = "Calc Light"
dark = "midnight"

[plugins.Click]
enabled = true

[plugins.copy]
enabled = false

[unknown]
key = 1
`)
	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Logger.LogLevel != "debug" || !reflect.DeepEqual(cfg.Logger.EnabledTags, []string{"keys"}) {
		t.Errorf("Logger = %+v", cfg.Logger)
	}
	if cfg.Calculator.HistorySize != 5 || !cfg.Calculator.Scientific {
		t.Errorf("Calculator = %+v", cfg.Calculator)
	}
	if cfg.Theme.Name != "Calc Light" || cfg.Theme.Dark != "midnight" {
		t.Errorf("Theme = %+v", cfg.Theme)
	}
	if !cfg.PluginEnabled("click", false) {
		t.Error("click plugin should be enabled (keys are case-insensitive)")
	}
	if cfg.PluginEnabled("copy", true) {
		t.Error("copy plugin should be disabled")
	}
	if len(cfg.Undecoded()) == 0 {
		t.Error("expected the [unknown] table to be reported as undecoded")
	}
}

func TestLoadInvalidFileFallsBackToDefaults(t *testing.T) {
	path := writeConfig(t, "[calculator\nhistory_size = 3")
	cfg, err := Load(path, newTestFlags(t, "-scientific"))
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if cfg == nil {
		t.Fatal("config should still be returned")
	}
	if cfg.Calculator.HistorySize != DefaultHistorySize {
		t.Errorf("HistorySize = %d, want default", cfg.Calculator.HistorySize)
	}
	if !cfg.Calculator.Scientific {
		t.Error("flags should still apply after a file error")
	}
}

func TestValidateResetsOutOfRangeValues(t *testing.T) {
	path := writeConfig(t, `
[logger]
level = "chatty"

[calculator]
history_size = 1000
`)
	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Calculator.HistorySize != DefaultHistorySize {
		t.Errorf("HistorySize = %d, want %d", cfg.Calculator.HistorySize, DefaultHistorySize)
	}
	if cfg.Logger.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.Logger.LogLevel)
	}
}

func TestFlagOverrides(t *testing.T) {
	path := writeConfig(t, `
[calculator]
history_size = 5

[theme]
name = "Calc Light"
`)
	flags := newTestFlags(t,
		"-history-size", "7",
		"-theme", "calc dark",
		"-loglevel", "warn",
		"-logfile", "-",
		"-log-disable-packages", "theme, ,app",
		"-sound",
	)
	cfg, err := Load(path, flags)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Calculator.HistorySize != 7 {
		t.Errorf("HistorySize = %d, want 7", cfg.Calculator.HistorySize)
	}
	if cfg.Theme.Name != "calc dark" {
		t.Errorf("Theme.Name = %q", cfg.Theme.Name)
	}
	if cfg.Logger.LogLevel != "warn" || cfg.Logger.LogFilePath != "-" {
		t.Errorf("Logger = %+v", cfg.Logger)
	}
	if !reflect.DeepEqual(cfg.Logger.DisabledPackages, []string{"theme", "app"}) {
		t.Errorf("DisabledPackages = %v", cfg.Logger.DisabledPackages)
	}
	if !cfg.PluginEnabled("click", false) {
		t.Error("-sound should enable the click plugin")
	}
}

func TestSoundFlagOffOverridesPluginTable(t *testing.T) {
	path := writeConfig(t, `
[plugins.click]
enabled = true
`)
	cfg, err := Load(path, newTestFlags(t, "-sound=false"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PluginEnabled("click", true) {
		t.Error("-sound=false should disable the click plugin")
	}
}

func TestUnsetFlagsDoNotOverride(t *testing.T) {
	path := writeConfig(t, `
[calculator]
scientific = true
`)
	cfg, err := Load(path, newTestFlags(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Calculator.Scientific {
		t.Error("unset -scientific flag must not reset the file value")
	}
}

func TestSplitCommaList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{" a , b ,,c ", []string{"a", "b", "c"}},
		{",", []string{}},
	}
	for _, tt := range tests {
		if got := splitCommaList(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitCommaList(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}
