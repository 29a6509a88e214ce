package calc

import (
	"strings"
	"unicode/utf8"
)

const defaultDisplay = "0"

// State is the calculator's input state. The zero value is not ready for use;
// create one with NewState.
type State struct {
	Display           string   // Text shown on the display
	PendingOperand    float64  // Left operand, valid when HasPendingOperand
	HasPendingOperand bool     // Whether PendingOperand is set
	PendingOperator   Operator // OpNone when absent
	AwaitingOperand   bool     // Next digit starts a fresh operand
}

// Evaluation describes one completed Equals.
type Evaluation struct {
	Left     float64
	Operator Operator
	Right    float64
	Result   float64
}

// NewState returns a cleared calculator state.
func NewState() *State {
	s := &State{}
	s.Clear()
	return s
}

// Value returns the numeric value of the display.
func (s *State) Value() float64 {
	return ParseNumber(s.Display)
}

// showsSentinel reports whether the display holds a non-finite result,
// which digits and Backspace replace rather than edit.
func (s *State) showsSentinel() bool {
	switch s.Display {
	case textInf, textNegInf, textNaN:
		return true
	}
	return false
}

// inExponentForm reports whether the display shows a value like "1e-7".
// Such text is replaced rather than edited character by character.
func (s *State) inExponentForm() bool {
	return strings.ContainsAny(s.Display, "eE")
}

// Pending reports whether an operator is waiting for its right operand.
func (s *State) Pending() bool {
	return s.HasPendingOperand && s.PendingOperator != OpNone
}

// Digit appends d (0-9) to the current operand.
func (s *State) Digit(d rune) {
	if d < '0' || d > '9' {
		return
	}
	if s.AwaitingOperand || s.showsSentinel() {
		s.Display = string(d)
		s.AwaitingOperand = false
		return
	}
	switch s.Display {
	case "0":
		s.Display = string(d)
	case "-0":
		s.Display = "-" + string(d)
	default:
		s.Display += string(d)
	}
}

// Decimal adds a decimal point to the current operand. A second point in the
// same operand, or a point after an exponent, is ignored.
func (s *State) Decimal() {
	if s.AwaitingOperand || s.showsSentinel() {
		s.Display = "0."
		s.AwaitingOperand = false
		return
	}
	if !s.inExponentForm() && !strings.Contains(s.Display, ".") {
		s.Display += "."
	}
}

// Operator selects op as the pending operator. A pending computation is
// folded first, so "2 + 3 ×" shows 5. Pressing operators back to back keeps
// only the last one.
func (s *State) Operator(op Operator) {
	if op == OpNone {
		return
	}
	if s.AwaitingOperand && s.Pending() {
		s.PendingOperator = op
		return
	}

	current := s.Value()
	switch {
	case !s.HasPendingOperand:
		s.PendingOperand = current
		s.HasPendingOperand = true
	case s.PendingOperator != OpNone:
		result := Evaluate(s.PendingOperand, current, s.PendingOperator)
		s.Display = FormatNumber(result)
		s.PendingOperand = result
	}
	s.PendingOperator = op
	s.AwaitingOperand = true
}

// Equals evaluates the pending operation. It returns false and leaves the
// state untouched when nothing is pending.
func (s *State) Equals() (Evaluation, bool) {
	if !s.Pending() {
		return Evaluation{}, false
	}
	right := s.Value()
	ev := Evaluation{
		Left:     s.PendingOperand,
		Operator: s.PendingOperator,
		Right:    right,
		Result:   Evaluate(s.PendingOperand, right, s.PendingOperator),
	}
	s.Display = FormatNumber(ev.Result)
	s.PendingOperand = 0
	s.HasPendingOperand = false
	s.PendingOperator = OpNone
	s.AwaitingOperand = true
	return ev, true
}

// Percent divides the display value by 100.
func (s *State) Percent() {
	s.Display = FormatNumber(s.Value() / 100)
}

// ToggleSign negates the display value.
func (s *State) ToggleSign() {
	s.Display = FormatNumber(-s.Value())
}

// Backspace removes the last character of the display. Non-finite and
// exponent-form displays reset to "0".
func (s *State) Backspace() {
	if s.showsSentinel() || s.inExponentForm() {
		s.Display = defaultDisplay
		return
	}
	_, size := utf8.DecodeLastRuneInString(s.Display)
	s.Display = s.Display[:len(s.Display)-size]
	if s.Display == "" || s.Display == "-" {
		s.Display = defaultDisplay
	}
}

// Clear resets the display and drops any pending operation.
func (s *State) Clear() {
	s.Display = defaultDisplay
	s.PendingOperand = 0
	s.HasPendingOperand = false
	s.PendingOperator = OpNone
	s.AwaitingOperand = false
}

// Scientific replaces the display with fn applied to its value. Pending
// operations are left as they are.
func (s *State) Scientific(fn Function) {
	s.Display = FormatNumber(EvaluateScientific(s.Value(), fn))
}

// Expression renders the pending part of the calculation, e.g. "12 +".
func (s *State) Expression() string {
	if !s.Pending() {
		return ""
	}
	return FormatNumber(s.PendingOperand) + " " + s.PendingOperator.Symbol()
}

// String renders a completed evaluation as "5 + 3 = 8".
func (e Evaluation) String() string {
	return FormatNumber(e.Left) + " " + e.Operator.Symbol() + " " +
		FormatNumber(e.Right) + " = " + FormatNumber(e.Result)
}
