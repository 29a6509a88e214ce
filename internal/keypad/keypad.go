// Package keypad lays out the clickable calculator buttons and maps pointer
// positions back to the action a button produces.
package keypad

import (
	"github.com/bethropolis/tidecalc/internal/calc"
	"github.com/bethropolis/tidecalc/internal/input"
)

// Kind groups buttons for styling.
type Kind int

const (
	KindDigit Kind = iota
	KindOperator
	KindFunction
	KindControl
	KindEquals
)

// Columns is the width of the grid in buttons.
const Columns = 4

const (
	colGap = 1 // Blank cells between buttons in a row
	rowGap = 1 // Blank lines between rows
)

// MinButtonWidth is the narrowest a button is laid out, even if that
// overflows the requested width.
const MinButtonWidth = 3

// Button is a single key cap. X, Y, W and H are screen cells and are only
// set on buttons returned by Layout.
type Button struct {
	Label  string
	Kind   Kind
	Action input.ActionEvent
	Span   int // Columns covered, at least 1

	X, Y, W, H int
}

// Contains reports whether the cell (x, y) is on the button.
func (b Button) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

func digit(r rune) Button {
	return Button{Label: string(r), Kind: KindDigit, Action: input.ActionEvent{Action: input.ActionDigit, Rune: r}, Span: 1}
}

func operator(op calc.Operator) Button {
	return Button{Label: op.Symbol(), Kind: KindOperator, Action: input.ActionEvent{Action: input.ActionOperator, Operator: op}, Span: 1}
}

func function(fn calc.Function) Button {
	return Button{Label: fn.Label(), Kind: KindFunction, Action: input.ActionEvent{Action: input.ActionScientific, Function: fn}, Span: 1}
}

func control(label string, action input.Action, span int) Button {
	return Button{Label: label, Kind: KindControl, Action: input.ActionEvent{Action: action}, Span: span}
}

// scientificRows precede the basic rows in scientific mode.
func scientificRows() [][]Button {
	return [][]Button{
		{function(calc.FnSin), function(calc.FnCos), function(calc.FnTan), function(calc.FnSqrt)},
		{function(calc.FnSquare), function(calc.FnLog), function(calc.FnLn), function(calc.FnPi)},
	}
}

func basicRows() [][]Button {
	return [][]Button{
		{control("AC", input.ActionClear, 1), control("⌫", input.ActionBackspace, 1), control("%", input.ActionPercent, 1), operator(calc.OpDivide)},
		{digit('7'), digit('8'), digit('9'), operator(calc.OpMultiply)},
		{digit('4'), digit('5'), digit('6'), operator(calc.OpSubtract)},
		{digit('1'), digit('2'), digit('3'), operator(calc.OpAdd)},
		{control("±", input.ActionToggleSign, 1), digit('0'), {Label: ".", Kind: KindDigit, Action: input.ActionEvent{Action: input.ActionDecimal}, Span: 1},
			{Label: "=", Kind: KindEquals, Action: input.ActionEvent{Action: input.ActionEquals}, Span: 1}},
	}
}

func controlRow(scientific bool) []Button {
	mode := "SCI"
	if scientific {
		mode = "BASIC"
	}
	return []Button{
		control(mode, input.ActionToggleMode, 1),
		control("THEME", input.ActionToggleTheme, 1),
		control("CLEAR HIST", input.ActionClearHistory, 2),
	}
}

// Rows returns the button grid for a mode, top to bottom.
func Rows(scientific bool) [][]Button {
	var rows [][]Button
	if scientific {
		rows = append(rows, scientificRows()...)
	}
	rows = append(rows, basicRows()...)
	return append(rows, controlRow(scientific))
}

// Keypad is a laid-out grid.
type Keypad struct {
	X, Y          int
	Width, Height int
	Scientific    bool
	Buttons       []Button
}

// ButtonWidth returns the cell width of a single-column button when the grid
// is given width cells.
func ButtonWidth(width int) int {
	w := (width - (Columns-1)*colGap) / Columns
	if w < MinButtonWidth {
		w = MinButtonWidth
	}
	return w
}

// Height returns the number of lines the grid occupies in a mode.
func Height(scientific bool) int {
	n := len(Rows(scientific))
	return n + (n-1)*rowGap
}

// Layout places the grid with its top-left corner at (x, y) inside width
// cells.
func Layout(x, y, width int, scientific bool) *Keypad {
	bw := ButtonWidth(width)
	rows := Rows(scientific)
	kp := &Keypad{
		X:          x,
		Y:          y,
		Width:      Columns*bw + (Columns-1)*colGap,
		Height:     Height(scientific),
		Scientific: scientific,
	}

	for r, row := range rows {
		col := 0
		for _, b := range row {
			span := b.Span
			if span < 1 {
				span = 1
			}
			b.X = x + col*(bw+colGap)
			b.Y = y + r*(1+rowGap)
			b.W = span*bw + (span-1)*colGap
			b.H = 1
			kp.Buttons = append(kp.Buttons, b)
			col += span
		}
	}
	return kp
}

// HitTest returns the button under the cell (x, y).
func (k *Keypad) HitTest(x, y int) (Button, bool) {
	if k == nil {
		return Button{}, false
	}
	for _, b := range k.Buttons {
		if b.Contains(x, y) {
			return b, true
		}
	}
	return Button{}, false
}

// Find returns the button producing the given action, used to flash the key
// that matches keyboard input.
func (k *Keypad) Find(ev input.ActionEvent) (Button, bool) {
	if k == nil {
		return Button{}, false
	}
	for _, b := range k.Buttons {
		if b.Action == ev {
			return b, true
		}
	}
	return Button{}, false
}
