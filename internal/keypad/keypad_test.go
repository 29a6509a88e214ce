package keypad

import (
	"testing"

	"github.com/bethropolis/tidecalc/internal/calc"
	"github.com/bethropolis/tidecalc/internal/input"
)

func TestRowsCoverAllColumns(t *testing.T) {
	for _, scientific := range []bool{false, true} {
		for i, row := range Rows(scientific) {
			cols := 0
			for _, b := range row {
				cols += b.Span
			}
			if cols != Columns {
				t.Errorf("scientific=%v row %d spans %d columns, want %d", scientific, i, cols, Columns)
			}
		}
	}
}

func TestScientificRowsOnlyInScientificMode(t *testing.T) {
	basic := Layout(0, 0, 40, false)
	if _, ok := basic.Find(input.ActionEvent{Action: input.ActionScientific, Function: calc.FnSin}); ok {
		t.Error("basic keypad should not contain sin")
	}
	sci := Layout(0, 0, 40, true)
	for _, fn := range calc.Functions() {
		if _, ok := sci.Find(input.ActionEvent{Action: input.ActionScientific, Function: fn}); !ok {
			t.Errorf("scientific keypad missing %v", fn)
		}
	}
	if sci.Height <= basic.Height {
		t.Errorf("scientific height %d should exceed basic height %d", sci.Height, basic.Height)
	}
}

func TestLayoutGeometry(t *testing.T) {
	kp := Layout(2, 5, 27, false)
	bw := ButtonWidth(27) // (27-3)/4 = 6
	if bw != 6 {
		t.Fatalf("ButtonWidth(27) = %d, want 6", bw)
	}
	first := kp.Buttons[0]
	if first.Label != "AC" || first.X != 2 || first.Y != 5 || first.W != 6 || first.H != 1 {
		t.Errorf("first button = %+v", first)
	}
	wide, ok := kp.Find(input.ActionEvent{Action: input.ActionClearHistory})
	if !ok {
		t.Fatal("clear history button missing")
	}
	if wide.W != 2*bw+1 {
		t.Errorf("spanning button width = %d, want %d", wide.W, 2*bw+1)
	}
	if kp.Width != 4*bw+3 {
		t.Errorf("Width = %d", kp.Width)
	}
	if got, want := kp.Height, Height(false); got != want {
		t.Errorf("Height = %d, want %d", got, want)
	}
}

func TestLayoutNarrowWidthKeepsMinimum(t *testing.T) {
	if got := ButtonWidth(5); got != MinButtonWidth {
		t.Errorf("ButtonWidth(5) = %d, want %d", got, MinButtonWidth)
	}
}

func TestHitTest(t *testing.T) {
	kp := Layout(0, 0, 27, false)
	// Rows are two lines apart; row 1 holds 7 8 9 ×.
	tests := []struct {
		name   string
		x, y   int
		want   input.ActionEvent
		wantOK bool
	}{
		{"seven", 0, 2, input.ActionEvent{Action: input.ActionDigit, Rune: '7'}, true},
		{"nine right edge", 19, 2, input.ActionEvent{Action: input.ActionDigit, Rune: '9'}, true},
		{"multiply", 21, 2, input.ActionEvent{Action: input.ActionOperator, Operator: calc.OpMultiply}, true},
		{"equals", 26, 8, input.ActionEvent{Action: input.ActionEquals}, true},
		{"gap between columns", 6, 2, input.ActionEvent{}, false},
		{"gap between rows", 0, 1, input.ActionEvent{}, false},
		{"outside", 100, 100, input.ActionEvent{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok := kp.HitTest(tt.x, tt.y)
			if ok != tt.wantOK {
				t.Fatalf("HitTest(%d,%d) ok = %v, want %v (got %+v)", tt.x, tt.y, ok, tt.wantOK, b)
			}
			if ok && b.Action != tt.want {
				t.Errorf("HitTest(%d,%d) action = %+v, want %+v", tt.x, tt.y, b.Action, tt.want)
			}
		})
	}
}

func TestNilKeypad(t *testing.T) {
	var kp *Keypad
	if _, ok := kp.HitTest(0, 0); ok {
		t.Error("nil keypad should not hit")
	}
}
