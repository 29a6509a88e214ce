// internal/input/action.go
package input

import "github.com/bethropolis/tidecalc/internal/calc"

// Action represents an operation requested by keyboard or pointer input.
type Action int

// Define the set of possible calculator actions.
const (
	// --- Meta Actions ---
	ActionUnknown Action = iota // Default/invalid action
	ActionQuit

	// --- Calculator Input ---
	ActionDigit // Requires Rune argument
	ActionDecimal
	ActionOperator // Requires Operator argument
	ActionEquals
	ActionClear
	ActionBackspace
	ActionPercent
	ActionToggleSign
	ActionScientific // Requires Function argument

	// --- Widget Controls ---
	ActionToggleMode
	ActionToggleTheme
	ActionClearHistory
	ActionCopyDisplay

	// --- Command Mode ---
	ActionEnterCommandMode // ':'
	ActionAppendCommand    // Rune typed while in command mode
)

var actionNames = map[Action]string{
	ActionUnknown:          "Unknown",
	ActionQuit:             "Quit",
	ActionDigit:            "Digit",
	ActionDecimal:          "Decimal",
	ActionOperator:         "Operator",
	ActionEquals:           "Equals",
	ActionClear:            "Clear",
	ActionBackspace:        "Backspace",
	ActionPercent:          "Percent",
	ActionToggleSign:       "ToggleSign",
	ActionScientific:       "Scientific",
	ActionToggleMode:       "ToggleMode",
	ActionToggleTheme:      "ToggleTheme",
	ActionClearHistory:     "ClearHistory",
	ActionCopyDisplay:      "CopyDisplay",
	ActionEnterCommandMode: "EnterCommandMode",
	ActionAppendCommand:    "AppendCommand",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// ActionEvent represents a decoded input event resulting in an action.
// It carries the payload the action needs.
type ActionEvent struct {
	Action   Action
	Rune     rune          // ActionDigit, ActionAppendCommand
	Operator calc.Operator // ActionOperator
	Function calc.Function // ActionScientific
}

// IsCalculatorInput reports whether the action edits the calculator state.
func (e ActionEvent) IsCalculatorInput() bool {
	return e.Action >= ActionDigit && e.Action <= ActionScientific
}
