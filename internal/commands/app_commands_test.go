package commands

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/bethropolis/tidecalc/internal/calc"
	"github.com/bethropolis/tidecalc/internal/plugin"
	"github.com/bethropolis/tidecalc/internal/theme"
)

type registry map[string]plugin.CommandFunc

func (r registry) RegisterCommand(name string, fn plugin.CommandFunc) error {
	if _, ok := r[name]; ok {
		return errors.New("duplicate")
	}
	r[name] = fn
	return nil
}

type fakeApp struct {
	current    *theme.Theme
	status     string
	scientific bool
	applied    []calc.Function
	cleared    bool
	quit       bool
}

func (f *fakeApp) SetTheme(name string) error {
	for _, th := range theme.Builtin() {
		if strings.EqualFold(th.Name, name) {
			f.current = th
			return nil
		}
	}
	return theme.ErrNotFound
}
func (f *fakeApp) GetTheme() *theme.Theme { return f.current }
func (f *fakeApp) ListThemes() []string   { return []string{"Calc Dark", "Calc Light"} }
func (f *fakeApp) SetStatusMessage(format string, args ...interface{}) {
	f.status = strings.TrimSpace(fmt.Sprintf(format, args...))
}
func (f *fakeApp) ToggleMode() string {
	f.scientific = !f.scientific
	return "toggled"
}
func (f *fakeApp) ApplyFunction(fn calc.Function) bool {
	if !f.scientific {
		return false
	}
	f.applied = append(f.applied, fn)
	return true
}
func (f *fakeApp) ClearHistory() { f.cleared = true }
func (f *fakeApp) Quit()         { f.quit = true }

func setup() (registry, *fakeApp) {
	reg := registry{}
	app := &fakeApp{current: &theme.CalcDark}
	RegisterAppCommands(reg, app)
	return reg, app
}

func TestRegistersEveryCommand(t *testing.T) {
	reg, _ := setup()
	want := []string{"theme", "themes", "mode", "clear", "q", "quit"}
	for _, fn := range calc.Functions() {
		want = append(want, fn.String())
	}
	for _, name := range want {
		if _, ok := reg[name]; !ok {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestThemeCommand(t *testing.T) {
	reg, app := setup()
	if err := reg["theme"]([]string{"calc", "light"}); err != nil {
		t.Fatalf(":theme calc light: %v", err)
	}
	if app.current != &theme.CalcLight {
		t.Errorf("theme = %q", app.current.Name)
	}
	if app.status != "Theme set to: Calc Light" {
		t.Errorf("status = %q", app.status)
	}

	err := reg["theme"]([]string{"nope"})
	if err == nil || !strings.Contains(err.Error(), "Available: Calc Dark, Calc Light") {
		t.Errorf(":theme nope error = %v", err)
	}

	if err := reg["theme"](nil); err != nil || app.status != "Current theme: Calc Light" {
		t.Errorf(":theme = %v, status %q", err, app.status)
	}
	if err := reg["themes"](nil); err != nil || app.status != "Available themes: Calc Dark, Calc Light" {
		t.Errorf(":themes = %v, status %q", err, app.status)
	}
}

func TestFunctionCommandsNeedScientificMode(t *testing.T) {
	reg, app := setup()
	if err := reg["sqrt"](nil); err == nil {
		t.Error(":sqrt in basic mode should fail")
	}
	if err := reg["mode"](nil); err != nil || !app.scientific {
		t.Fatalf(":mode = %v, scientific %v", err, app.scientific)
	}
	if err := reg["sqrt"](nil); err != nil {
		t.Errorf(":sqrt in scientific mode: %v", err)
	}
	if len(app.applied) != 1 || app.applied[0] != calc.FnSqrt {
		t.Errorf("applied = %v", app.applied)
	}
}

func TestClearAndQuit(t *testing.T) {
	reg, app := setup()
	_ = reg["clear"](nil)
	_ = reg["q"](nil)
	if !app.cleared || !app.quit {
		t.Errorf("cleared=%v quit=%v", app.cleared, app.quit)
	}
}
