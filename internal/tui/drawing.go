// internal/tui/drawing.go
package tui

import (
	"github.com/bethropolis/tidecalc/internal/history"
	"github.com/bethropolis/tidecalc/internal/input"
	"github.com/bethropolis/tidecalc/internal/keypad"
	"github.com/bethropolis/tidecalc/internal/statusbar"
	"github.com/bethropolis/tidecalc/internal/theme"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

const (
	margin        = 1
	displayHeight = 4 // Padding, expression, value, padding
	maxCalcWidth  = 39
	minHistory    = 20
	maxHistory    = 40
	historyTitle  = "History"
	historyEmpty  = "No calculations yet"
)

// Rect is a screen region.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether the region has no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Layout places the calculator panels for a screen size. The status bar
// owns the last line and is not part of the layout.
type Layout struct {
	Display  Rect
	Keypad   *keypad.Keypad
	History  Rect // Empty when there is no room
	TooSmall bool
}

// ComputeLayout is deterministic, so the draw loop and the mouse handler
// agree on where buttons are without sharing state.
func ComputeLayout(width, height int, scientific bool) Layout {
	minCalc := keypad.Columns*keypad.MinButtonWidth + keypad.Columns - 1
	usable := height - 1 // Status bar
	kpTop := margin + displayHeight + 1

	if width < minCalc+2*margin || usable < kpTop+keypad.Height(scientific) {
		return Layout{TooSmall: true}
	}

	calcW := width - 2*margin
	if calcW > maxCalcWidth {
		calcW = maxCalcWidth
	}
	kp := keypad.Layout(margin, kpTop, calcW, scientific)

	l := Layout{
		Display: Rect{X: margin, Y: margin, W: kp.Width, H: displayHeight},
		Keypad:  kp,
	}

	sideX := margin + kp.Width + 2
	if width-sideX-margin >= minHistory {
		w := width - sideX - margin
		if w > maxHistory {
			w = maxHistory
		}
		l.History = Rect{X: sideX, Y: margin, W: w, H: usable - margin}
		return l
	}

	belowY := kpTop + kp.Height + 1
	if usable-belowY >= 2 {
		l.History = Rect{X: margin, Y: belowY, W: kp.Width, H: usable - belowY}
	}
	return l
}

// View is everything the calculator screen shows, captured by the app
// before drawing.
type View struct {
	Display    string
	Expression string
	Scientific bool
	History    []history.Entry // Newest first
	Pressed    *input.ActionEvent
}

// DrawCalculator renders the display panel, keypad and history. The caller
// clears the screen first and draws the status bar after.
func DrawCalculator(t *TUI, v View, activeTheme *theme.Theme) Layout {
	screen := t.GetScreen()
	width, height := t.Size()
	l := ComputeLayout(width, height, v.Scientific)

	if l.TooSmall {
		statusbar.DrawText(screen, 0, 0, width, "Terminal too small", activeTheme.GetStyle(theme.StyleDefault))
		return l
	}

	drawDisplay(screen, l.Display, v, activeTheme)
	drawKeypad(screen, l.Keypad, v.Pressed, activeTheme)
	if !l.History.Empty() {
		drawHistory(screen, l.History, v.History, activeTheme)
	}
	return l
}

func drawDisplay(screen tcell.Screen, r Rect, v View, th *theme.Theme) {
	panel := th.GetStyle(theme.StyleDisplay)
	fill(screen, r, panel)

	inner := r.W - 2
	expr := FitRight(v.Expression, inner)
	drawRightAligned(screen, r.X+1, r.Y+1, inner, expr, th.GetStyle(theme.StyleExpression))

	display := FitRight(v.Display, inner)
	drawRightAligned(screen, r.X+1, r.Y+2, inner, display, panel)
}

func drawKeypad(screen tcell.Screen, kp *keypad.Keypad, pressed *input.ActionEvent, th *theme.Theme) {
	for _, b := range kp.Buttons {
		style := th.GetStyle(buttonStyleName(b.Kind))
		if pressed != nil && b.Action == *pressed {
			style = th.GetStyle(theme.StyleButtonActive)
		}
		fill(screen, Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}, style)

		label := b.Label
		lw := uniseg.StringWidth(label)
		if lw > b.W {
			label = FitRight(label, b.W)
			lw = uniseg.StringWidth(label)
		}
		statusbar.DrawText(screen, b.X+(b.W-lw)/2, b.Y, lw, label, style)
	}
}

func buttonStyleName(k keypad.Kind) string {
	switch k {
	case keypad.KindOperator:
		return theme.StyleButtonOperator
	case keypad.KindFunction:
		return theme.StyleButtonFunction
	case keypad.KindControl:
		return theme.StyleButtonControl
	case keypad.KindEquals:
		return theme.StyleButtonEquals
	default:
		return theme.StyleButton
	}
}

func drawHistory(screen tcell.Screen, r Rect, entries []history.Entry, th *theme.Theme) {
	statusbar.DrawText(screen, r.X, r.Y, r.W, historyTitle, th.GetStyle(theme.StyleHistoryTitle))

	style := th.GetStyle(theme.StyleHistory)
	if len(entries) == 0 {
		if r.H > 1 {
			statusbar.DrawText(screen, r.X, r.Y+1, r.W, historyEmpty, style)
		}
		return
	}
	for i, e := range entries {
		y := r.Y + 1 + i
		if y >= r.Y+r.H {
			break
		}
		statusbar.DrawText(screen, r.X, y, r.W, FitRight(e.String(), r.W), style)
	}
}

func drawRightAligned(screen tcell.Screen, x, y, width int, text string, style tcell.Style) {
	tw := uniseg.StringWidth(text)
	if tw > width {
		tw = width
	}
	statusbar.DrawText(screen, x+width-tw, y, tw, text, style)
}

func fill(screen tcell.Screen, r Rect, style tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// FitRight keeps the tail of s that fits in width cells, marking the cut
// with "…". Long results keep their least significant digits visible.
func FitRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= width {
		return s
	}

	var clusters []string
	var widths []int
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
		widths = append(widths, gr.Width())
	}

	budget := width - 1 // Room for the ellipsis
	used := 0
	start := len(clusters)
	for start > 0 && used+widths[start-1] <= budget {
		start--
		used += widths[start]
	}

	out := "…"
	for _, c := range clusters[start:] {
		out += c
	}
	return out
}
