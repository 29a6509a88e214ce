// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/tidecalc/internal/logger" // For logging missing styles
	"github.com/gdamore/tcell/v2"
)

// Style names used by the renderer.
const (
	StyleDefault          = "Default"
	StyleDisplay          = "Display"
	StyleExpression       = "Expression"
	StyleButton           = "Button"
	StyleButtonOperator   = "Button.operator"
	StyleButtonFunction   = "Button.function"
	StyleButtonControl    = "Button.control"
	StyleButtonEquals     = "Button.equals"
	StyleButtonActive     = "Button.active"
	StyleHistory          = "History"
	StyleHistoryTitle     = "History.title"
	StyleStatusBar        = "StatusBar"
	StyleStatusBarMessage = "StatusBarMessage"
	StyleStatusBarCommand = "StatusBarCommand"
)

// Theme is a named set of styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the named style, falling back to the base name (the part
// before the first dot) and then to "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		baseName := name[:dotIndex]
		if style, ok := t.Styles[baseName]; ok {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, using base '%s'", t.Name, name, baseName)
			return style
		}
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// --- Built-in Themes ---

var (
	CalcDark  Theme
	CalcLight Theme
)

func init() {
	// --- Palette for Calc Dark ---
	dkBackground := tcell.NewHexColor(0x2a2f38) // Muted dark blue/grey (panels)
	dkKey := tcell.NewHexColor(0x3b4252)        // Key caps
	dkForeground := tcell.NewHexColor(0xc5cdd9) // Soft off-white
	dkMuted := tcell.NewHexColor(0x5c6370)      // Grey (expression, history)
	dkOrange := tcell.NewHexColor(0xd19a66)     // Operators
	dkCyan := tcell.NewHexColor(0x56b6c2)       // Scientific functions
	dkGreen := tcell.NewHexColor(0x98c379)      // Equals
	dkYellow := tcell.NewHexColor(0xe5c07b)     // Status messages

	dkBase := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(dkForeground)
	dkKeyStyle := tcell.StyleDefault.Background(dkKey).Foreground(dkForeground)

	CalcDark = Theme{
		Name:   "Calc Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:          dkBase,
			StyleDisplay:          tcell.StyleDefault.Background(dkBackground).Foreground(dkForeground).Bold(true),
			StyleExpression:       tcell.StyleDefault.Background(dkBackground).Foreground(dkMuted),
			StyleButton:           dkKeyStyle,
			StyleButtonOperator:   dkKeyStyle.Foreground(dkOrange).Bold(true),
			StyleButtonFunction:   dkKeyStyle.Foreground(dkCyan),
			StyleButtonControl:    dkKeyStyle.Foreground(dkMuted),
			StyleButtonEquals:     tcell.StyleDefault.Background(dkGreen).Foreground(tcell.ColorBlack).Bold(true),
			StyleButtonActive:     dkKeyStyle.Reverse(true),
			StyleHistory:          dkBase.Foreground(dkMuted),
			StyleHistoryTitle:     dkBase.Bold(true),
			StyleStatusBar:        tcell.StyleDefault.Background(dkBackground).Foreground(dkForeground),
			StyleStatusBarMessage: tcell.StyleDefault.Background(dkBackground).Foreground(dkYellow).Bold(true),
			StyleStatusBarCommand: tcell.StyleDefault.Background(dkBackground).Foreground(dkGreen).Bold(true),
		},
	}

	// --- Palette for Calc Light ---
	ltBackground := tcell.NewHexColor(0xf5f5f0)
	ltPanel := tcell.NewHexColor(0xe3e6ea)
	ltKey := tcell.NewHexColor(0xffffff)
	ltForeground := tcell.NewHexColor(0x2e3440)
	ltMuted := tcell.NewHexColor(0x7b8494)
	ltOrange := tcell.NewHexColor(0xc2571a)
	ltBlue := tcell.NewHexColor(0x1f6feb)
	ltGreen := tcell.NewHexColor(0x2e7d32)

	ltBase := tcell.StyleDefault.Background(ltBackground).Foreground(ltForeground)
	ltKeyStyle := tcell.StyleDefault.Background(ltKey).Foreground(ltForeground)

	CalcLight = Theme{
		Name:   "Calc Light",
		IsDark: false,
		Styles: map[string]tcell.Style{
			StyleDefault:          ltBase,
			StyleDisplay:          tcell.StyleDefault.Background(ltPanel).Foreground(ltForeground).Bold(true),
			StyleExpression:       tcell.StyleDefault.Background(ltPanel).Foreground(ltMuted),
			StyleButton:           ltKeyStyle,
			StyleButtonOperator:   ltKeyStyle.Foreground(ltOrange).Bold(true),
			StyleButtonFunction:   ltKeyStyle.Foreground(ltBlue),
			StyleButtonControl:    ltKeyStyle.Foreground(ltMuted),
			StyleButtonEquals:     tcell.StyleDefault.Background(ltGreen).Foreground(tcell.ColorWhite).Bold(true),
			StyleButtonActive:     ltKeyStyle.Reverse(true),
			StyleHistory:          ltBase.Foreground(ltMuted),
			StyleHistoryTitle:     ltBase.Bold(true),
			StyleStatusBar:        tcell.StyleDefault.Background(ltPanel).Foreground(ltForeground),
			StyleStatusBarMessage: tcell.StyleDefault.Background(ltPanel).Foreground(ltOrange).Bold(true),
			StyleStatusBarCommand: tcell.StyleDefault.Background(ltPanel).Foreground(ltGreen).Bold(true),
		},
	}
}

// Builtin returns the themes compiled into the binary.
func Builtin() []*Theme {
	return []*Theme{&CalcDark, &CalcLight}
}
