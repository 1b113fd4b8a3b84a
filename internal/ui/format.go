// Package ui provides the console and full-screen front ends.
package ui

import (
	"golang.org/x/text/message"

	"github.com/samdwyer/dungeonseeker/internal/event"
)

// Format renders ev as one line of narration in the printer's language.
func Format(p *message.Printer, ev event.Event) string {
	switch ev.Kind {
	case event.KindWelcome:
		return p.Sprintf("game.welcome")
	case event.KindRoomEntered:
		return p.Sprintf("room.entered", ev.Subject)
	case event.KindMonsterAppeared:
		return p.Sprintf("combat.appeared", ev.Subject)
	case event.KindPlayerHit:
		return p.Sprintf("combat.player_hit", ev.Amount, ev.Subject, ev.Remaining)
	case event.KindMonsterHit:
		return p.Sprintf("combat.monster_hit", ev.Subject, ev.Amount, ev.Remaining)
	case event.KindHealed:
		return p.Sprintf("combat.healed", ev.Amount, ev.Remaining)
	case event.KindHealsExhausted:
		return p.Sprintf("combat.heals_exhausted")
	case event.KindMagicCast:
		return p.Sprintf("combat.magic_cast", ev.Subject, ev.Amount, ev.Remaining)
	case event.KindMagicDepleted:
		return p.Sprintf("combat.magic_depleted")
	case event.KindFled:
		return p.Sprintf("combat.fled")
	case event.KindMonsterDefeated:
		return p.Sprintf("combat.monster_defeated", ev.Subject)
	case event.KindTreasureFound:
		return p.Sprintf("treasure.found", ev.Subject, ev.Amount)
	case event.KindTreasureTotal:
		return p.Sprintf("treasure.total", ev.Remaining)
	case event.KindLevelUp:
		return p.Sprintf("player.level_up", ev.Remaining)
	case event.KindMoving:
		return p.Sprintf("room.moving")
	case event.KindDefeat:
		return p.Sprintf("game.defeat")
	case event.KindVictory:
		return p.Sprintf("game.victory")
	default:
		return ""
	}
}
