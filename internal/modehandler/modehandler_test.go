package modehandler

import (
	"strings"
	"testing"

	"github.com/bethropolis/tidecalc/internal/calc"
	"github.com/bethropolis/tidecalc/internal/clipboard"
	"github.com/bethropolis/tidecalc/internal/event"
	"github.com/bethropolis/tidecalc/internal/history"
	"github.com/bethropolis/tidecalc/internal/input"
	"github.com/bethropolis/tidecalc/internal/statusbar"
	"github.com/bethropolis/tidecalc/internal/theme"
	"github.com/gdamore/tcell/v2"
)

type harness struct {
	mh      *ModeHandler
	events  *event.Manager
	history *history.Manager
	themes  *theme.Manager
	status  *statusbar.StatusBar
	clip    *clipboard.Manager
	quit    chan struct{}
	seen    map[event.Type]int
}

func newHarness(t *testing.T, scientific bool) *harness {
	t.Helper()
	h := &harness{
		events: event.NewManager(),
		themes: theme.NewManager(theme.Options{}),
		status: statusbar.New(statusbar.DefaultConfig()),
		clip:   clipboard.NewManager(false),
		quit:   make(chan struct{}),
		seen:   make(map[event.Type]int),
	}
	h.history = history.NewManager(history.DefaultCapacity, h.events)
	h.history.Attach(h.events)
	for _, typ := range []event.Type{event.TypeKeyPressed, event.TypeEvaluated, event.TypeDisplayChanged, event.TypeModeChanged, event.TypeThemeChanged} {
		typ := typ
		h.events.Subscribe(typ, func(event.Event) bool {
			h.seen[typ]++
			return false
		})
	}
	h.mh = New(Config{
		State:          calc.NewState(),
		InputProcessor: input.NewInputProcessor(),
		EventManager:   h.events,
		StatusBar:      h.status,
		Themes:         h.themes,
		History:        h.history,
		Clipboard:      h.clip,
		QuitSignal:     h.quit,
		Scientific:     scientific,
	})
	return h
}

func (h *harness) typeKeys(keys string) {
	for _, r := range keys {
		h.mh.HandleKeyEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
}

func (h *harness) press(k tcell.Key) bool {
	return h.mh.HandleKeyEvent(tcell.NewEventKey(k, 0, tcell.ModNone))
}

func TestKeyboardEvaluationRecordsHistory(t *testing.T) {
	h := newHarness(t, false)
	h.typeKeys("5+3")
	h.press(tcell.KeyEnter)

	if got := h.mh.Display(); got != "8" {
		t.Fatalf("display = %q, want 8", got)
	}
	if h.seen[event.TypeEvaluated] != 1 {
		t.Errorf("Evaluated dispatched %d times, want 1", h.seen[event.TypeEvaluated])
	}
	if h.seen[event.TypeKeyPressed] != 4 {
		t.Errorf("KeyPressed dispatched %d times, want 4", h.seen[event.TypeKeyPressed])
	}
	latest, ok := h.history.Latest()
	if !ok || latest.String() != "5 + 3 = 8" {
		t.Errorf("history latest = %q, %v", latest.String(), ok)
	}

	// Equals with nothing pending is a no-op and records nothing.
	h.press(tcell.KeyEnter)
	if h.history.Len() != 1 {
		t.Errorf("history len = %d, want 1", h.history.Len())
	}
}

func TestExpressionAndOperatorAliases(t *testing.T) {
	h := newHarness(t, false)
	h.typeKeys("12x")
	if got := h.mh.Expression(); got != "12 ×" {
		t.Errorf("expression = %q, want %q", got, "12 ×")
	}
	h.typeKeys("-") // Most recent operator wins
	if got := h.mh.Expression(); got != "12 −" {
		t.Errorf("expression = %q, want %q", got, "12 −")
	}
}

func TestScientificIgnoredInBasicMode(t *testing.T) {
	h := newHarness(t, false)
	h.typeKeys("9")
	sqrt := input.ActionEvent{Action: input.ActionScientific, Function: calc.FnSqrt}

	if h.mh.HandleAction(sqrt, "√") {
		t.Error("sqrt in basic mode should not be processed")
	}
	if got := h.mh.Display(); got != "9" {
		t.Errorf("display = %q, want 9", got)
	}

	h.typeKeys("s")
	if !h.mh.IsScientific() || h.seen[event.TypeModeChanged] != 1 {
		t.Fatalf("s should switch to scientific mode")
	}
	if !h.mh.HandleAction(sqrt, "√") {
		t.Error("sqrt in scientific mode should be processed")
	}
	if got := h.mh.Display(); got != "3" {
		t.Errorf("display = %q, want 3", got)
	}
}

func TestToggleModeKeepsPendingState(t *testing.T) {
	h := newHarness(t, true)
	h.typeKeys("4+")
	if h.mh.ToggleMode() != ModeBasic {
		t.Fatal("toggle from scientific should go to basic")
	}
	h.typeKeys("2=")
	if got := h.mh.Display(); got != "6" {
		t.Errorf("display = %q, want 6", got)
	}
}

func TestControls(t *testing.T) {
	h := newHarness(t, false)
	h.typeKeys("2*3=")

	h.typeKeys("t")
	if h.themes.Current().Name != theme.CalcLight.Name || h.seen[event.TypeThemeChanged] != 1 {
		t.Errorf("t should toggle to Calc Light, got %q", h.themes.Current().Name)
	}

	h.typeKeys("y")
	if got, _ := h.clip.Text(); got != "6" {
		t.Errorf("clipboard = %q, want 6", got)
	}
	if msg := h.status.Message(); msg != "Copied 6" {
		t.Errorf("status = %q", msg)
	}

	h.typeKeys("h")
	if h.history.Len() != 0 {
		t.Errorf("history len = %d after clear", h.history.Len())
	}
}

func TestLastAction(t *testing.T) {
	h := newHarness(t, false)
	if _, at := h.mh.LastAction(); !at.IsZero() {
		t.Error("no action yet")
	}
	h.typeKeys("7")
	ae, at := h.mh.LastAction()
	if at.IsZero() || ae != (input.ActionEvent{Action: input.ActionDigit, Rune: '7'}) {
		t.Errorf("LastAction() = %+v, %v", ae, at)
	}
}

func TestCommandMode(t *testing.T) {
	h := newHarness(t, true)
	var got []string
	if err := h.mh.RegisterCommand("Echo", func(args []string) error {
		got = args
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if err := h.mh.RegisterCommand("echo", func([]string) error { return nil }); err == nil {
		t.Error("duplicate registration should fail")
	}

	h.typeKeys(":")
	if h.mh.GetCurrentMode() != ModeCommand || !h.mh.IsScientific() {
		t.Fatalf("mode = %v, scientific = %v", h.mh.GetCurrentMode(), h.mh.IsScientific())
	}
	h.typeKeys("echo q s")
	if buf := h.mh.GetCommandBuffer(); buf != "echo q s" {
		t.Fatalf("command buffer = %q", buf)
	}
	h.press(tcell.KeyEnter)

	if h.mh.GetCurrentMode() != ModeScientific {
		t.Errorf("mode after command = %v, want SCI", h.mh.GetCurrentMode())
	}
	if strings.Join(got, ",") != "q,s" {
		t.Errorf("command args = %v", got)
	}
	select {
	case <-h.quit:
		t.Error("typing q in command mode must not quit")
	default:
	}
}

func TestCommandModeCancelAndErrors(t *testing.T) {
	h := newHarness(t, false)

	h.typeKeys(":ab")
	h.press(tcell.KeyEscape)
	if h.mh.GetCurrentMode() != ModeBasic || h.mh.GetCommandBuffer() != "" {
		t.Errorf("escape should cancel command mode")
	}

	h.typeKeys(":x")
	h.press(tcell.KeyBackspace2)
	if h.mh.GetCurrentMode() != ModeCommand {
		t.Fatal("backspace with text should stay in command mode")
	}
	h.press(tcell.KeyBackspace2)
	if h.mh.GetCurrentMode() != ModeBasic {
		t.Error("backspace on empty buffer should leave command mode")
	}

	h.typeKeys(":bogus")
	h.press(tcell.KeyEnter)
	if msg := h.status.Message(); msg != "Unknown command: bogus" {
		t.Errorf("status = %q", msg)
	}
}

func TestQuit(t *testing.T) {
	h := newHarness(t, false)
	h.typeKeys("q")
	select {
	case <-h.quit:
	default:
		t.Fatal("q should close the quit channel")
	}
	h.press(tcell.KeyCtrlC) // Must not panic on a closed channel
}
