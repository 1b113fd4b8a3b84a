package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/samdwyer/dungeonseeker/internal/combat"
	"github.com/samdwyer/dungeonseeker/internal/event"
	"github.com/samdwyer/dungeonseeker/internal/i18n"
)

// Console narrates events as lines of text. Colours are applied only when
// out is a terminal that supports them.
type Console struct {
	out     io.Writer
	printer *message.Printer
	styles  map[event.Kind]lipgloss.Style
}

// NewConsole creates a console narrator writing to out in the given language.
func NewConsole(out io.Writer, tag language.Tag) *Console {
	r := lipgloss.NewRenderer(out)

	damage := r.NewStyle().Foreground(lipgloss.Color("9"))
	good := r.NewStyle().Foreground(lipgloss.Color("10"))
	gold := r.NewStyle().Foreground(lipgloss.Color("11"))
	title := r.NewStyle().Bold(true)

	return &Console{
		out:     out,
		printer: i18n.Printer(tag),
		styles: map[event.Kind]lipgloss.Style{
			event.KindWelcome:         title,
			event.KindRoomEntered:     title,
			event.KindMonsterAppeared: damage.Bold(true),
			event.KindMonsterHit:      damage,
			event.KindHealed:          good,
			event.KindMonsterDefeated: good,
			event.KindTreasureFound:   gold,
			event.KindLevelUp:         gold.Bold(true),
			event.KindDefeat:          damage.Bold(true),
			event.KindVictory:         good.Bold(true),
		},
	}
}

// Narrate writes ev as a line. Room entries are preceded by a blank line.
func (c *Console) Narrate(_ context.Context, ev event.Event) {
	line := Format(c.printer, ev)
	if line == "" {
		return
	}
	if style, ok := c.styles[ev.Kind]; ok {
		line = style.Render(line)
	}
	if ev.Kind == event.KindRoomEntered {
		fmt.Fprintln(c.out)
	}
	fmt.Fprintln(c.out, line)
}

// Prompt reads the player's combat choices one line at a time.
type Prompt struct {
	in      io.Reader
	out     io.Writer
	printer *message.Printer

	once  sync.Once
	lines chan promptLine
}

type promptLine struct {
	text string
	err  error
}

// NewPrompt creates a prompt reading from in and asking on out.
func NewPrompt(in io.Reader, out io.Writer, tag language.Tag) *Prompt {
	return &Prompt{
		in:      in,
		out:     out,
		printer: i18n.Printer(tag),
		lines:   make(chan promptLine),
	}
}

// NextAction asks once and parses the answer. Unrecognised answers come
// back as combat.ActionUnknown; closed input returns io.EOF. Cancelling
// ctx returns at once, even while waiting for a line.
func (p *Prompt) NextAction(ctx context.Context) (combat.Action, error) {
	if err := ctx.Err(); err != nil {
		return combat.ActionUnknown, err
	}
	p.once.Do(func() { go p.read() })

	fmt.Fprint(p.out, p.printer.Sprintf("combat.prompt"))
	select {
	case <-ctx.Done():
		return combat.ActionUnknown, ctx.Err()
	case line, ok := <-p.lines:
		if !ok {
			return combat.ActionUnknown, io.EOF
		}
		if line.err != nil {
			return combat.ActionUnknown, line.err
		}
		return combat.ParseAction(line.text), nil
	}
}

// read feeds lines from in until it is exhausted. A blocked Read cannot be
// interrupted, so the goroutine outlives a cancelled NextAction.
func (p *Prompt) read() {
	defer close(p.lines)
	scanner := bufio.NewScanner(p.in)
	for scanner.Scan() {
		p.lines <- promptLine{text: scanner.Text()}
	}
	if err := scanner.Err(); err != nil {
		p.lines <- promptLine{err: err}
	}
}

var (
	_ event.Narrator        = (*Console)(nil)
	_ combat.ActionProvider = (*Prompt)(nil)
)
