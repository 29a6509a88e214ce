package modehandler

import (
	"github.com/bethropolis/tidecalc/internal/calc"
	"github.com/bethropolis/tidecalc/internal/event"
	"github.com/bethropolis/tidecalc/internal/input"
	"github.com/bethropolis/tidecalc/internal/logger"
)

// executeAction handles actions in basic and scientific mode.
func (mh *ModeHandler) executeAction(actionEvent input.ActionEvent) bool {
	if actionEvent.IsCalculatorInput() {
		return mh.applyCalculator(actionEvent)
	}

	switch actionEvent.Action {
	case input.ActionToggleMode:
		mh.ToggleMode()

	case input.ActionToggleTheme:
		th, err := mh.themes.Toggle()
		if err != nil {
			mh.statusBar.SetTemporaryMessage("Theme toggle failed: %v", err)
			return true
		}
		mh.eventManager.Dispatch(event.TypeThemeChanged, event.ThemeChangedData{Name: th.Name})
		mh.statusBar.SetTemporaryMessage("Theme: %s", th.Name)

	case input.ActionClearHistory:
		mh.ClearHistory()

	case input.ActionCopyDisplay:
		display := mh.Display()
		if err := mh.clipboard.Copy(display); err != nil {
			logger.Warnf("ModeHandler: Copy failed: %v", err)
			mh.statusBar.SetTemporaryMessage("Copy failed: %v", err)
		} else {
			mh.statusBar.SetTemporaryMessage("Copied %s", display)
		}

	case input.ActionEnterCommandMode:
		mh.enterCommandMode()

	case input.ActionQuit:
		mh.Quit()
		return false

	default:
		return false
	}
	return true
}

// applyCalculator runs one state machine transition. Scientific functions
// are ignored outside scientific mode.
func (mh *ModeHandler) applyCalculator(ae input.ActionEvent) bool {
	mh.mu.Lock()
	if ae.Action == input.ActionScientific && mh.calculatorMode() != ModeScientific {
		mh.mu.Unlock()
		logger.DebugTagf("keys", "ModeHandler: Ignoring %v outside scientific mode", ae.Function)
		return false
	}

	beforeDisplay, beforeExpr := mh.state.Display, mh.state.Expression()
	var ev calc.Evaluation
	var evaluated bool

	switch ae.Action {
	case input.ActionDigit:
		mh.state.Digit(ae.Rune)
	case input.ActionDecimal:
		mh.state.Decimal()
	case input.ActionOperator:
		mh.state.Operator(ae.Operator)
	case input.ActionEquals:
		ev, evaluated = mh.state.Equals()
	case input.ActionClear:
		mh.state.Clear()
	case input.ActionBackspace:
		mh.state.Backspace()
	case input.ActionPercent:
		mh.state.Percent()
	case input.ActionToggleSign:
		mh.state.ToggleSign()
	case input.ActionScientific:
		mh.state.Scientific(ae.Function)
	}

	display, expr := mh.state.Display, mh.state.Expression()
	mh.lastAction = ae
	mh.lastActionAt = mh.now()
	mh.mu.Unlock()

	logger.DebugTagf("keys", "ModeHandler: %v -> display=%q expr=%q", ae.Action, display, expr)

	if evaluated {
		mh.eventManager.Dispatch(event.TypeEvaluated, event.EvaluatedData{Evaluation: ev})
	}
	if display != beforeDisplay || expr != beforeExpr {
		mh.eventManager.Dispatch(event.TypeDisplayChanged, event.DisplayChangedData{Display: display, Expression: expr})
	}
	return true
}

// ToggleMode switches between basic and scientific mode and returns the new
// mode. Pending calculator state is kept.
func (mh *ModeHandler) ToggleMode() InputMode {
	mh.mu.Lock()
	from := mh.calculatorMode()
	to := ModeScientific
	if from == ModeScientific {
		to = ModeBasic
	}
	mh.currentMode = to
	mh.previousMode = to
	mh.mu.Unlock()

	mh.eventManager.Dispatch(event.TypeModeChanged, event.ModeChangedData{From: from.String(), To: to.String()})
	if to == ModeScientific {
		mh.statusBar.SetTemporaryMessage("Scientific mode")
	} else {
		mh.statusBar.SetTemporaryMessage("Basic mode")
	}
	return to
}

// ClearHistory empties the history log.
func (mh *ModeHandler) ClearHistory() {
	mh.history.Clear()
	mh.statusBar.SetTemporaryMessage("History cleared")
}

// ApplyFunction applies a scientific function as if its key was pressed.
// It reports false when scientific mode is off.
func (mh *ModeHandler) ApplyFunction(fn calc.Function) bool {
	return mh.applyCalculator(input.ActionEvent{Action: input.ActionScientific, Function: fn})
}
