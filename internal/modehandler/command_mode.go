package modehandler

import (
	"strings"

	"github.com/bethropolis/tidecalc/internal/event"
	"github.com/bethropolis/tidecalc/internal/input"
	"github.com/bethropolis/tidecalc/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// commandAction maps keys while typing a command. The normal keymap is
// bypassed so letters such as 'q' and 's' reach the buffer.
func commandAction(ev *tcell.EventKey) input.ActionEvent {
	switch ev.Key() {
	case tcell.KeyEnter:
		return input.ActionEvent{Action: input.ActionEquals}
	case tcell.KeyEscape:
		return input.ActionEvent{Action: input.ActionClear}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return input.ActionEvent{Action: input.ActionBackspace}
	case tcell.KeyCtrlC:
		return input.ActionEvent{Action: input.ActionQuit}
	case tcell.KeyRune:
		return input.ActionEvent{Action: input.ActionAppendCommand, Rune: ev.Rune()}
	}
	return input.ActionEvent{Action: input.ActionUnknown}
}

// handleActionCommand handles actions when in ModeCommand.
func (mh *ModeHandler) handleActionCommand(actionEvent input.ActionEvent) bool {
	switch actionEvent.Action {
	case input.ActionAppendCommand:
		mh.mu.Lock()
		mh.cmdBuffer = append(mh.cmdBuffer, actionEvent.Rune)
		cmd := string(mh.cmdBuffer)
		mh.mu.Unlock()
		mh.statusBar.SetCommandLine(cmd, true)

	case input.ActionBackspace:
		mh.mu.Lock()
		empty := len(mh.cmdBuffer) == 0
		if !empty {
			mh.cmdBuffer = mh.cmdBuffer[:len(mh.cmdBuffer)-1]
		}
		cmd := string(mh.cmdBuffer)
		mh.mu.Unlock()
		if empty {
			logger.Debugf("ModeHandler: Exiting Command Mode via Backspace")
			mh.exitCommandMode()
		} else {
			mh.statusBar.SetCommandLine(cmd, true)
		}

	case input.ActionEquals: // Enter: execute
		cmd := mh.exitCommandMode()
		mh.executeCommand(cmd)

	case input.ActionClear: // Escape: cancel
		logger.Debugf("ModeHandler: Canceled Command Mode via Escape")
		mh.exitCommandMode()

	case input.ActionQuit:
		mh.exitCommandMode()
		mh.Quit()
		return false

	default:
		return false
	}
	return true
}

func (mh *ModeHandler) enterCommandMode() {
	mh.mu.Lock()
	if mh.currentMode == ModeCommand {
		mh.mu.Unlock()
		return
	}
	from := mh.currentMode
	mh.previousMode = from
	mh.currentMode = ModeCommand
	mh.cmdBuffer = mh.cmdBuffer[:0]
	mh.mu.Unlock()

	logger.Debugf("ModeHandler: Entering Command Mode")
	mh.statusBar.SetCommandLine("", true)
	mh.eventManager.Dispatch(event.TypeModeChanged, event.ModeChangedData{From: from.String(), To: ModeCommand.String()})
}

// exitCommandMode restores the previous mode and returns the typed command.
func (mh *ModeHandler) exitCommandMode() string {
	mh.mu.Lock()
	if mh.currentMode != ModeCommand {
		mh.mu.Unlock()
		return ""
	}
	cmd := string(mh.cmdBuffer)
	mh.cmdBuffer = mh.cmdBuffer[:0]
	mh.currentMode = mh.previousMode
	to := mh.currentMode
	mh.mu.Unlock()

	mh.statusBar.SetCommandLine("", false)
	mh.eventManager.Dispatch(event.TypeModeChanged, event.ModeChangedData{From: ModeCommand.String(), To: to.String()})
	return cmd
}

// executeCommand parses and runs a command line such as "theme calc light".
func (mh *ModeHandler) executeCommand(cmdStr string) {
	parts := strings.Fields(cmdStr)
	if len(parts) == 0 {
		return
	}
	cmdName := strings.ToLower(parts[0])
	args := parts[1:]

	mh.cmdMu.RLock()
	cmdFunc, exists := mh.commands[cmdName]
	mh.cmdMu.RUnlock()

	if !exists {
		mh.statusBar.SetTemporaryMessage("Unknown command: %s", cmdName)
		return
	}

	logger.Debugf("ModeHandler: Executing command ':%s' with args %v", cmdName, args)
	if err := cmdFunc(args); err != nil {
		mh.statusBar.SetTemporaryMessage("Error executing command '%s': %v", cmdName, err)
	}
	// Success messages are set by the command itself
}
