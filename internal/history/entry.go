// Package history keeps the bounded log of completed calculations.
package history

import (
	"time"

	"github.com/bethropolis/tidecalc/internal/calc"
)

// Entry is one completed evaluation. Entries are values and are never
// modified after they are recorded.
type Entry struct {
	Left     float64
	Operator calc.Operator
	Right    float64
	Result   float64
	Time     time.Time // When the evaluation was recorded
}

// NewEntry builds an Entry from a calculator evaluation.
func NewEntry(ev calc.Evaluation, at time.Time) Entry {
	return Entry{
		Left:     ev.Left,
		Operator: ev.Operator,
		Right:    ev.Right,
		Result:   ev.Result,
		Time:     at,
	}
}

// Evaluation returns the evaluation the entry records.
func (e Entry) Evaluation() calc.Evaluation {
	return calc.Evaluation{Left: e.Left, Operator: e.Operator, Right: e.Right, Result: e.Result}
}

// String renders the entry as "5 + 3 = 8".
func (e Entry) String() string {
	return e.Evaluation().String()
}
