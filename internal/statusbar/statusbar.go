// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bethropolis/tidecalc/internal/theme"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg" // For proper Unicode width calculation
)

// Config defines the behavior of the status bar.
type Config struct {
	MessageTimeout time.Duration
	Help           string // Right-aligned hint shown when there is room
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		MessageTimeout: 4 * time.Second,
		Help:           "s mode · t theme · : command · q quit",
	}
}

// StatusBar represents the UI component for the status line.
type StatusBar struct {
	config Config
	mu     sync.RWMutex // Protect access to text fields
	now    func() time.Time

	// Content fields (updated by the app)
	mode        string
	themeName   string
	historyLen  int
	commandLine string // Non-empty while command mode is active
	inCommand   bool

	// Temporary message state
	tempMessage     string
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{
		config: config,
		now:    time.Now,
	}
}

// SetMode updates the displayed calculator mode.
func (sb *StatusBar) SetMode(mode string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.mode = mode
}

// SetThemeName updates the displayed theme name.
func (sb *StatusBar) SetThemeName(name string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.themeName = name
}

// SetHistoryLen updates the history entry count.
func (sb *StatusBar) SetHistoryLen(n int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.historyLen = n
}

// SetCommandLine shows the command being typed. active=false hides it.
func (sb *StatusBar) SetCommandLine(cmd string, active bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.commandLine = cmd
	sb.inCommand = active
}

// SetTemporaryMessage displays a message for a configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.now()
}

// ResetTemporaryMessage clears any temporary message being displayed
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// Message returns the active temporary message, or "" once it has expired.
func (sb *StatusBar) Message() string {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	if sb.messageActive() {
		return sb.tempMessage
	}
	return ""
}

// messageActive assumes the lock is held.
func (sb *StatusBar) messageActive() bool {
	return !sb.tempMessageTime.IsZero() && sb.now().Sub(sb.tempMessageTime) <= sb.config.MessageTimeout
}

// Text returns the left-hand status text: "SCI · Calc Dark · 3 in history".
func (sb *StatusBar) Text() string {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.defaultText()
}

func (sb *StatusBar) defaultText() string {
	parts := make([]string, 0, 3)
	if sb.mode != "" {
		parts = append(parts, sb.mode)
	}
	if sb.themeName != "" {
		parts = append(parts, sb.themeName)
	}
	parts = append(parts, fmt.Sprintf("%d in history", sb.historyLen))
	return " " + strings.Join(parts, " · ")
}

// Draw renders the status bar on the last screen line.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int, activeTheme *theme.Theme) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1 // Status bar is always the last line

	sb.mu.Lock()
	// Clear expired temporary message before choosing the text
	active := sb.messageActive()
	if !sb.tempMessageTime.IsZero() && !active {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}

	var style tcell.Style
	var text, right string
	switch {
	case sb.inCommand:
		text = ":" + sb.commandLine
		style = activeTheme.GetStyle(theme.StyleStatusBarCommand)
	case active:
		text = " " + sb.tempMessage
		style = activeTheme.GetStyle(theme.StyleStatusBarMessage)
	default:
		text = sb.defaultText()
		right = sb.config.Help + " "
		style = activeTheme.GetStyle(theme.StyleStatusBar)
	}
	sb.mu.Unlock()

	// Fill background first
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	used := DrawText(screen, 0, y, width, text, style)
	if right != "" {
		rw := uniseg.StringWidth(right)
		if used+rw+1 <= width {
			DrawText(screen, width-rw, y, rw, right, activeTheme.GetStyle(theme.StyleStatusBar))
		}
	}
}

// DrawText draws text starting at (x, y), clipped to maxWidth cells, using
// grapheme cluster widths. It returns the number of cells used.
func DrawText(screen tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(text)
	used := 0
	for gr.Next() {
		clusterWidth := gr.Width()
		if used+clusterWidth > maxWidth {
			break // Stop if cluster doesn't fit
		}

		runes := gr.Runes()
		if len(runes) > 0 {
			var combining []rune
			if len(runes) > 1 {
				combining = runes[1:]
			}
			screen.SetContent(x+used, y, runes[0], combining, style)
		}
		used += clusterWidth
	}
	return used
}
