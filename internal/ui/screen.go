package ui

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/samdwyer/dungeonseeker/internal/combat"
	"github.com/samdwyer/dungeonseeker/internal/entity"
	"github.com/samdwyer/dungeonseeker/internal/event"
	"github.com/samdwyer/dungeonseeker/internal/gamedata"
	"github.com/samdwyer/dungeonseeker/internal/i18n"
)

// ErrQuit is returned when the player closes the full-screen front end.
var ErrQuit = errors.New("player quit")

// maxLogLines bounds the narration history kept for redraws.
const maxLogLines = 200

// Screen is the full-screen front end. It narrates into a scrolling log
// and reads combat choices from single key presses.
type Screen struct {
	screen   tcell.Screen
	renderer *Renderer
	printer  *message.Printer
	colors   map[string]tcell.Color // monster display name -> template colour
	glyphs   map[string]rune
	player   *entity.Player
	log      []logLine
	prompt   string
}

type logLine struct {
	text  string
	style tcell.Style
}

// NewScreen creates and initializes a terminal screen.
func NewScreen(tag language.Tag, monsters []gamedata.MonsterDef) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return newScreen(s, tag, monsters), nil
}

func newScreen(s tcell.Screen, tag language.Tag, monsters []gamedata.MonsterDef) *Screen {
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.Clear()

	code := i18n.Code(tag)
	colors := make(map[string]tcell.Color, len(monsters))
	glyphs := make(map[string]rune, len(monsters))
	for _, def := range monsters {
		name := def.Names.For(code)
		colors[name] = def.TCellColor()
		glyphs[name] = def.GlyphRune()
	}

	return &Screen{
		screen:   s,
		renderer: NewRenderer(s),
		printer:  i18n.Printer(tag),
		colors:   colors,
		glyphs:   glyphs,
	}
}

// SetPlayer attaches the player whose stats fill the status bar.
func (s *Screen) SetPlayer(p *entity.Player) {
	s.player = p
}

// Narrate appends ev to the log and redraws.
func (s *Screen) Narrate(_ context.Context, ev event.Event) {
	text := Format(s.printer, ev)
	if text == "" {
		return
	}
	if g, ok := s.glyphs[ev.Subject]; ok && ev.Kind == event.KindMonsterAppeared {
		text = string(g) + " " + text
	}
	if ev.Kind == event.KindRoomEntered && len(s.log) > 0 {
		s.log = append(s.log, logLine{})
	}
	s.log = append(s.log, logLine{text: text, style: s.styleFor(ev)})
	if len(s.log) > maxLogLines {
		s.log = s.log[len(s.log)-maxLogLines:]
	}
	s.draw()
}

// NextAction waits for a key press and maps it to an action.
// Esc and Ctrl-C return ErrQuit; cancelling ctx returns ctx.Err().
func (s *Screen) NextAction(ctx context.Context) (combat.Action, error) {
	if err := ctx.Err(); err != nil {
		return combat.ActionUnknown, err
	}

	s.prompt = s.printer.Sprintf("combat.prompt")
	defer func() { s.prompt = "" }()
	s.draw()

	// Wake PollEvent when ctx is cancelled.
	stop := context.AfterFunc(ctx, func() {
		_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return combat.ActionUnknown, ErrQuit
		case *tcell.EventInterrupt:
			if err := ctx.Err(); err != nil {
				return combat.ActionUnknown, err
			}
		case *tcell.EventResize:
			s.screen.Sync()
			s.draw()
		case *tcell.EventKey:
			action, quit := ActionForKey(ev.Key(), ev.Rune())
			if quit {
				return combat.ActionUnknown, ErrQuit
			}
			return action, nil
		}
	}
}

// WaitForKey blocks until any key is pressed, so the final narration stays
// visible before the screen closes.
func (s *Screen) WaitForKey() {
	for {
		switch s.screen.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return
		case *tcell.EventResize:
			s.screen.Sync()
			s.draw()
		}
	}
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.screen.Fini()
}

// ActionForKey maps a key press to a combat action. quit is true for Esc
// and Ctrl-C.
func ActionForKey(key tcell.Key, r rune) (action combat.Action, quit bool) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return combat.ActionUnknown, true
	case tcell.KeyRune:
		return combat.ParseAction(string(r)), false
	default:
		return combat.ActionUnknown, false
	}
}

func (s *Screen) styleFor(ev event.Event) tcell.Style {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	switch ev.Kind {
	case event.KindMonsterAppeared:
		if color, ok := s.colors[ev.Subject]; ok {
			return style.Foreground(color).Bold(true)
		}
		return style.Foreground(tcell.ColorRed).Bold(true)
	case event.KindMonsterHit, event.KindDefeat:
		return style.Foreground(tcell.ColorRed)
	case event.KindHealed, event.KindMonsterDefeated, event.KindVictory:
		return style.Foreground(tcell.ColorGreen)
	case event.KindTreasureFound, event.KindLevelUp:
		return style.Foreground(tcell.ColorYellow)
	case event.KindRoomEntered, event.KindWelcome:
		return style.Bold(true)
	}
	return style
}

func (s *Screen) statusLine() string {
	if s.player == nil {
		return ""
	}
	p := s.player
	return s.printer.Sprintf("status.bar", p.Health, p.Level, p.AttackPower, p.Magic, p.Heals, p.TotalTreasureValue())
}

func (s *Screen) draw() {
	s.renderer.Render(s.log, s.prompt, s.statusLine())
}

var (
	_ event.Narrator        = (*Screen)(nil)
	_ combat.ActionProvider = (*Screen)(nil)
)
