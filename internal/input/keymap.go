// internal/input/keymap.go
package input

import (
	"github.com/bethropolis/tidecalc/internal/calc"
	"github.com/gdamore/tcell/v2"
)

// Keymap maps special keys (Enter, Escape, Backspace, ...) to actions.
type Keymap map[tcell.Key]ActionEvent

// RuneKeymap maps printable runes to actions.
type RuneKeymap map[rune]ActionEvent

// InputProcessor translates tcell key events into ActionEvents.
type InputProcessor struct {
	keymap     Keymap
	runeKeymap RuneKeymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:     make(Keymap),
		runeKeymap: make(RuneKeymap),
	}
	p.loadDefaultBindings()
	return p
}

// loadDefaultBindings sets up the initial key mappings.
func (p *InputProcessor) loadDefaultBindings() {
	// --- Special Keys ---
	p.keymap[tcell.KeyEnter] = ActionEvent{Action: ActionEquals}
	p.keymap[tcell.KeyEscape] = ActionEvent{Action: ActionClear}
	p.keymap[tcell.KeyBackspace] = ActionEvent{Action: ActionBackspace}
	p.keymap[tcell.KeyBackspace2] = ActionEvent{Action: ActionBackspace} // Often used for Backspace
	p.keymap[tcell.KeyCtrlC] = ActionEvent{Action: ActionQuit}

	// --- Digits ---
	for r := '0'; r <= '9'; r++ {
		p.runeKeymap[r] = ActionEvent{Action: ActionDigit, Rune: r}
	}

	// --- Operators, including glyph and letter aliases ---
	for _, r := range "+-−*xX×/÷" {
		op, _ := calc.ParseOperator(string(r))
		p.runeKeymap[r] = ActionEvent{Action: ActionOperator, Operator: op}
	}

	p.runeKeymap['.'] = ActionEvent{Action: ActionDecimal}
	p.runeKeymap['='] = ActionEvent{Action: ActionEquals}
	p.runeKeymap['%'] = ActionEvent{Action: ActionPercent}
	p.runeKeymap['n'] = ActionEvent{Action: ActionToggleSign}

	// --- Widget Controls ---
	p.runeKeymap['s'] = ActionEvent{Action: ActionToggleMode}
	p.runeKeymap['t'] = ActionEvent{Action: ActionToggleTheme}
	p.runeKeymap['h'] = ActionEvent{Action: ActionClearHistory}
	p.runeKeymap['y'] = ActionEvent{Action: ActionCopyDisplay}
	p.runeKeymap[':'] = ActionEvent{Action: ActionEnterCommandMode}
	p.runeKeymap['q'] = ActionEvent{Action: ActionQuit}
}

// BindRune replaces the action bound to r.
func (p *InputProcessor) BindRune(r rune, ev ActionEvent) {
	p.runeKeymap[r] = ev
}

// ProcessEvent takes a tcell key event and returns the corresponding ActionEvent.
// Command-mode text entry is not handled here; the mode handler reads the
// raw rune itself while in that mode.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()

	// Ctrl+letter arrives as its own Key value; drop the redundant modifier.
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		mod &^= tcell.ModCtrl
	}

	if key == tcell.KeyRune {
		// Shift is needed for '+', '*', '%' on most layouts.
		if mod != tcell.ModNone && mod != tcell.ModShift {
			return ActionEvent{Action: ActionUnknown}
		}
		if action, ok := p.runeKeymap[ev.Rune()]; ok {
			return action
		}
		return ActionEvent{Action: ActionUnknown, Rune: ev.Rune()}
	}

	if mod == tcell.ModNone || mod == tcell.ModShift {
		if action, ok := p.keymap[key]; ok {
			return action
		}
	}

	return ActionEvent{Action: ActionUnknown}
}
