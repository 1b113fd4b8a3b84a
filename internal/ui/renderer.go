package ui

import "github.com/gdamore/tcell/v2"

// Renderer handles drawing the narration log to the screen.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the newest log lines that fit, the prompt, and the status bar
// on the bottom row.
func (r *Renderer) Render(log []logLine, prompt, status string) {
	r.screen.Clear()
	width, height := r.screen.Size()

	// Bottom row is the status bar, the one above it the prompt.
	logRows := height - 2
	if logRows < 0 {
		logRows = 0
	}
	start := 0
	if len(log) > logRows {
		start = len(log) - logRows
	}
	for i, line := range log[start:] {
		r.drawText(0, i, width, line.text, line.style)
	}

	promptStyle := tcell.StyleDefault.Foreground(tcell.ColorAqua)
	r.drawText(0, height-2, width, prompt, promptStyle)

	statusStyle := tcell.StyleDefault.
		Foreground(tcell.ColorBlack).
		Background(tcell.ColorYellow)
	r.drawText(0, height-1, width, status, statusStyle)

	r.screen.Show()
}

// drawText writes text at row y, truncated to width.
func (r *Renderer) drawText(x, y, width int, text string, style tcell.Style) {
	if y < 0 {
		return
	}
	for _, ch := range text {
		if x >= width {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
