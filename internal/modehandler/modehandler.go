// internal/modehandler/modehandler.go
package modehandler

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bethropolis/tidecalc/internal/calc"
	"github.com/bethropolis/tidecalc/internal/clipboard"
	"github.com/bethropolis/tidecalc/internal/event"
	"github.com/bethropolis/tidecalc/internal/history"
	"github.com/bethropolis/tidecalc/internal/input"
	"github.com/bethropolis/tidecalc/internal/logger"
	"github.com/bethropolis/tidecalc/internal/plugin" // For CommandFunc type
	"github.com/bethropolis/tidecalc/internal/statusbar"
	"github.com/bethropolis/tidecalc/internal/theme"
	"github.com/gdamore/tcell/v2"
)

// InputMode defines the different states for user input.
type InputMode int

const (
	ModeBasic InputMode = iota
	ModeScientific
	ModeCommand
)

func (m InputMode) String() string {
	switch m {
	case ModeBasic:
		return "BASIC"
	case ModeScientific:
		return "SCI"
	case ModeCommand:
		return "COMMAND"
	default:
		return "UNKNOWN"
	}
}

// ModeHandler manages input modes, applies actions to the calculator state
// and runs commands. Input arrives on the event goroutine while the draw
// loop reads snapshots, so state access goes through mu. Events are always
// dispatched with mu released so handlers may call back in.
type ModeHandler struct {
	// Dependencies (references to components managed by App)
	state          *calc.State
	inputProcessor *input.InputProcessor
	eventManager   *event.Manager
	statusBar      *statusbar.StatusBar
	themes         *theme.Manager
	history        *history.Manager
	clipboard      *clipboard.Manager
	quitSignal     chan<- struct{}
	quitOnce       sync.Once
	now            func() time.Time

	mu           sync.Mutex
	currentMode  InputMode
	previousMode InputMode // Mode restored when command mode ends
	cmdBuffer    []rune
	lastAction   input.ActionEvent
	lastActionAt time.Time

	cmdMu    sync.RWMutex
	commands map[string]plugin.CommandFunc // Command registry
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	State          *calc.State
	InputProcessor *input.InputProcessor
	EventManager   *event.Manager
	StatusBar      *statusbar.StatusBar
	Themes         *theme.Manager
	History        *history.Manager
	Clipboard      *clipboard.Manager
	QuitSignal     chan<- struct{} // Write-only channel to signal quit
	Scientific     bool            // Start in scientific mode
}

// New creates a new ModeHandler.
func New(cfg Config) *ModeHandler {
	if cfg.State == nil || cfg.InputProcessor == nil || cfg.EventManager == nil || cfg.StatusBar == nil ||
		cfg.Themes == nil || cfg.History == nil || cfg.Clipboard == nil || cfg.QuitSignal == nil {
		// Programming error during setup
		panic("modehandler.New: Missing required dependencies in Config")
	}
	mode := ModeBasic
	if cfg.Scientific {
		mode = ModeScientific
	}
	return &ModeHandler{
		state:          cfg.State,
		inputProcessor: cfg.InputProcessor,
		eventManager:   cfg.EventManager,
		statusBar:      cfg.StatusBar,
		themes:         cfg.Themes,
		history:        cfg.History,
		clipboard:      cfg.Clipboard,
		quitSignal:     cfg.QuitSignal,
		now:            time.Now,
		currentMode:    mode,
		previousMode:   mode,
		commands:       make(map[string]plugin.CommandFunc),
	}
}

// HandleKeyEvent decides what to do based on current mode and key event.
// Returns true if the event resulted in an action requiring redraw.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	mh.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev})

	if mh.GetCurrentMode() == ModeCommand {
		return mh.handleActionCommand(commandAction(ev))
	}
	return mh.executeAction(mh.inputProcessor.ProcessEvent(ev))
}

// HandleAction applies an action that did not come from the keyboard, such
// as a keypad click. label identifies the source for KeyPressed listeners.
func (mh *ModeHandler) HandleAction(ae input.ActionEvent, label string) bool {
	mh.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{Label: label})

	if mh.GetCurrentMode() == ModeCommand {
		// A click ends command entry, like Escape.
		mh.exitCommandMode()
	}
	return mh.executeAction(ae)
}

// RegisterCommand adds a command to the registry. Names are case-insensitive.
func (mh *ModeHandler) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if cmdFunc == nil {
		return fmt.Errorf("command '%s' has no function", name)
	}

	mh.cmdMu.Lock()
	defer mh.cmdMu.Unlock()
	if _, exists := mh.commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	mh.commands[name] = cmdFunc
	logger.Debugf("ModeHandler: Registered command ':%s'", name)
	return nil
}

// Commands returns the registered command names.
func (mh *ModeHandler) Commands() []string {
	mh.cmdMu.RLock()
	defer mh.cmdMu.RUnlock()
	names := make([]string, 0, len(mh.commands))
	for name := range mh.commands {
		names = append(names, name)
	}
	return names
}

// Quit signals the app to stop. Safe to call more than once.
func (mh *ModeHandler) Quit() {
	mh.quitOnce.Do(func() {
		logger.Infof("ModeHandler: Quit requested")
		close(mh.quitSignal)
	})
}

// GetCurrentMode returns the current input mode.
func (mh *ModeHandler) GetCurrentMode() InputMode {
	mh.mu.Lock()
	defer mh.mu.Unlock()
	return mh.currentMode
}

// GetCurrentModeString returns the mode name shown in the status bar.
func (mh *ModeHandler) GetCurrentModeString() string {
	return mh.GetCurrentMode().String()
}

// IsScientific reports whether the scientific keypad is active, including
// while a command is being typed from scientific mode.
func (mh *ModeHandler) IsScientific() bool {
	mh.mu.Lock()
	defer mh.mu.Unlock()
	return mh.calculatorMode() == ModeScientific
}

// calculatorMode assumes mu is held.
func (mh *ModeHandler) calculatorMode() InputMode {
	if mh.currentMode == ModeCommand {
		return mh.previousMode
	}
	return mh.currentMode
}

// GetCommandBuffer returns the command being typed, or "" outside command mode.
func (mh *ModeHandler) GetCommandBuffer() string {
	mh.mu.Lock()
	defer mh.mu.Unlock()
	if mh.currentMode == ModeCommand {
		return string(mh.cmdBuffer)
	}
	return ""
}

// Display returns the current display string.
func (mh *ModeHandler) Display() string {
	mh.mu.Lock()
	defer mh.mu.Unlock()
	return mh.state.Display
}

// Expression returns the pending expression, e.g. "12 +".
func (mh *ModeHandler) Expression() string {
	mh.mu.Lock()
	defer mh.mu.Unlock()
	return mh.state.Expression()
}

// LastAction returns the most recent calculator action and when it ran.
// The zero time means no action has run yet.
func (mh *ModeHandler) LastAction() (input.ActionEvent, time.Time) {
	mh.mu.Lock()
	defer mh.mu.Unlock()
	return mh.lastAction, mh.lastActionAt
}
