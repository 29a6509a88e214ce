// internal/event/event.go
package event

import (
	"github.com/bethropolis/tidecalc/internal/calc"
	"github.com/gdamore/tcell/v2"
)

// Type identifies the kind of event.
type Type int

// Define specific event types.
const (
	TypeUnknown Type = iota

	// Calculator Events
	TypeEvaluated      // Fired after Equals completes an evaluation
	TypeDisplayChanged // Fired when the display text changes
	TypeHistoryChanged // Fired after the history log is appended to or cleared
	TypeModeChanged    // Fired when switching basic/scientific/command mode

	// Input Events (useful for plugins reacting to raw input, e.g. click feedback)
	TypeKeyPressed

	// Application Lifecycle Events
	TypeAppReady // Fired when the application is fully initialized
	TypeAppQuit  // Fired just before application termination begins

	TypeThemeChanged // Fired when the theme is changed
)

var typeNames = map[Type]string{
	TypeUnknown:        "Unknown",
	TypeEvaluated:      "Evaluated",
	TypeDisplayChanged: "DisplayChanged",
	TypeHistoryChanged: "HistoryChanged",
	TypeModeChanged:    "ModeChanged",
	TypeKeyPressed:     "KeyPressed",
	TypeAppReady:       "AppReady",
	TypeAppQuit:        "AppQuit",
	TypeThemeChanged:   "ThemeChanged",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type        // The kind of event
	Data interface{} // Payload carrying event-specific data
}

// --- Specific Event Data Structures ---

// EvaluatedData carries the evaluation produced by Equals.
type EvaluatedData struct {
	Evaluation calc.Evaluation
}

// DisplayChangedData carries the new display text.
type DisplayChangedData struct {
	Display    string
	Expression string // Pending expression, e.g. "12 +"
}

// HistoryChangedData reports the size of the history after a change.
type HistoryChangedData struct {
	Len     int
	Cleared bool
}

// ModeChangedData contains the previous and new mode names.
type ModeChangedData struct {
	From string
	To   string
}

// KeyPressedData contains the raw tcell key event. KeyEvent is nil for
// pointer input on the keypad.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
	Label    string // Keypad label for pointer input
}

// ThemeChangedData contains the name of the newly active theme.
type ThemeChangedData struct {
	Name string
}

// AppQuitData could contain exit code or reason later.
type AppQuitData struct{}

// AppReadyData could contain initial config or state later.
type AppReadyData struct{}
