package input

import (
	"testing"

	"github.com/bethropolis/tidecalc/internal/calc"
	"github.com/gdamore/tcell/v2"
)

func TestProcessEventRunes(t *testing.T) {
	p := NewInputProcessor()
	tests := []struct {
		r    rune
		want ActionEvent
	}{
		{'0', ActionEvent{Action: ActionDigit, Rune: '0'}},
		{'7', ActionEvent{Action: ActionDigit, Rune: '7'}},
		{'.', ActionEvent{Action: ActionDecimal}},
		{'+', ActionEvent{Action: ActionOperator, Operator: calc.OpAdd}},
		{'-', ActionEvent{Action: ActionOperator, Operator: calc.OpSubtract}},
		{'−', ActionEvent{Action: ActionOperator, Operator: calc.OpSubtract}},
		{'*', ActionEvent{Action: ActionOperator, Operator: calc.OpMultiply}},
		{'x', ActionEvent{Action: ActionOperator, Operator: calc.OpMultiply}},
		{'X', ActionEvent{Action: ActionOperator, Operator: calc.OpMultiply}},
		{'×', ActionEvent{Action: ActionOperator, Operator: calc.OpMultiply}},
		{'/', ActionEvent{Action: ActionOperator, Operator: calc.OpDivide}},
		{'÷', ActionEvent{Action: ActionOperator, Operator: calc.OpDivide}},
		{'=', ActionEvent{Action: ActionEquals}},
		{'%', ActionEvent{Action: ActionPercent}},
		{'n', ActionEvent{Action: ActionToggleSign}},
		{'s', ActionEvent{Action: ActionToggleMode}},
		{'t', ActionEvent{Action: ActionToggleTheme}},
		{'h', ActionEvent{Action: ActionClearHistory}},
		{'y', ActionEvent{Action: ActionCopyDisplay}},
		{':', ActionEvent{Action: ActionEnterCommandMode}},
		{'q', ActionEvent{Action: ActionQuit}},
		{'z', ActionEvent{Action: ActionUnknown, Rune: 'z'}},
	}
	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			got := p.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, tt.r, tcell.ModNone))
			if got != tt.want {
				t.Errorf("ProcessEvent(%q) = %+v, want %+v", tt.r, got, tt.want)
			}
		})
	}
}

func TestProcessEventShiftedRune(t *testing.T) {
	p := NewInputProcessor()
	got := p.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModShift))
	if got.Action != ActionOperator || got.Operator != calc.OpAdd {
		t.Errorf("shift+'+' = %+v", got)
	}
	got = p.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, '5', tcell.ModAlt))
	if got.Action != ActionUnknown {
		t.Errorf("alt+'5' = %+v, want unknown", got)
	}
}

func TestProcessEventKeys(t *testing.T) {
	p := NewInputProcessor()
	tests := []struct {
		name string
		key  tcell.Key
		want Action
	}{
		{"enter", tcell.KeyEnter, ActionEquals},
		{"escape", tcell.KeyEscape, ActionClear},
		{"backspace", tcell.KeyBackspace, ActionBackspace},
		{"backspace2", tcell.KeyBackspace2, ActionBackspace},
		{"ctrl-c", tcell.KeyCtrlC, ActionQuit},
		{"up", tcell.KeyUp, ActionUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.ProcessEvent(tcell.NewEventKey(tt.key, 0, tcell.ModNone))
			if got.Action != tt.want {
				t.Errorf("ProcessEvent(%v) = %v, want %v", tt.key, got.Action, tt.want)
			}
		})
	}
}

func TestBindRune(t *testing.T) {
	p := NewInputProcessor()
	p.BindRune('c', ActionEvent{Action: ActionClear})
	if got := p.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone)); got.Action != ActionClear {
		t.Errorf("rebound 'c' = %v", got.Action)
	}
}

func TestIsCalculatorInput(t *testing.T) {
	if !(ActionEvent{Action: ActionScientific}).IsCalculatorInput() {
		t.Error("scientific should be calculator input")
	}
	if (ActionEvent{Action: ActionToggleTheme}).IsCalculatorInput() {
		t.Error("theme toggle should not be calculator input")
	}
}
