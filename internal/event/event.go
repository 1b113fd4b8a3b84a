// Package event defines the narration events the game emits.
//
// Game logic never writes text. It reports what happened as an Event and a
// Narrator decides how to present it (a line console, a full-screen log, a
// test recorder).
package event

import "context"

// Kind identifies what happened.
type Kind int

const (
	KindWelcome Kind = iota
	KindRoomEntered
	KindMonsterAppeared
	KindPlayerHit      // player damaged the monster with a weapon
	KindMonsterHit     // monster damaged the player
	KindHealed         // a heal succeeded
	KindHealsExhausted // no heals left
	KindMagicCast      // a spell damaged the monster
	KindMagicDepleted  // not enough magic for a spell
	KindFled
	KindMonsterDefeated
	KindTreasureFound
	KindTreasureTotal
	KindLevelUp
	KindMoving
	KindDefeat
	KindVictory
)

var kindNames = map[Kind]string{
	KindWelcome:         "welcome",
	KindRoomEntered:     "room_entered",
	KindMonsterAppeared: "monster_appeared",
	KindPlayerHit:       "player_hit",
	KindMonsterHit:      "monster_hit",
	KindHealed:          "healed",
	KindHealsExhausted:  "heals_exhausted",
	KindMagicCast:       "magic_cast",
	KindMagicDepleted:   "magic_depleted",
	KindFled:            "fled",
	KindMonsterDefeated: "monster_defeated",
	KindTreasureFound:   "treasure_found",
	KindTreasureTotal:   "treasure_total",
	KindLevelUp:         "level_up",
	KindMoving:          "moving",
	KindDefeat:          "defeat",
	KindVictory:         "victory",
}

// String returns a stable machine name for the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is a single narrated occurrence.
// Fields that do not apply to a Kind are left zero.
type Event struct {
	Kind Kind
	// Subject names the room, monster or treasure involved.
	Subject string
	// Amount is damage dealt, health restored, or treasure value.
	Amount int
	// Remaining is the health left on the damaged side, the heals left,
	// the treasure total, or the new level, depending on Kind.
	Remaining int
}

// Narrator presents events to the player.
type Narrator interface {
	Narrate(ctx context.Context, ev Event)
}

// NarratorFunc adapts a function to the Narrator interface.
type NarratorFunc func(ctx context.Context, ev Event)

// Narrate calls f(ctx, ev).
func (f NarratorFunc) Narrate(ctx context.Context, ev Event) {
	f(ctx, ev)
}

// Recorder is a Narrator that keeps every event, for tests and replays.
type Recorder struct {
	Events []Event
}

// Narrate appends ev.
func (r *Recorder) Narrate(_ context.Context, ev Event) {
	r.Events = append(r.Events, ev)
}

// Kinds returns the recorded kinds in order.
func (r *Recorder) Kinds() []Kind {
	kinds := make([]Kind, len(r.Events))
	for i, ev := range r.Events {
		kinds[i] = ev.Kind
	}
	return kinds
}

// Count returns how many events of kind k were recorded.
func (r *Recorder) Count(k Kind) int {
	n := 0
	for _, ev := range r.Events {
		if ev.Kind == k {
			n++
		}
	}
	return n
}

// Multi fans an event out to several narrators in order.
type Multi []Narrator

// Narrate forwards ev to every narrator.
func (m Multi) Narrate(ctx context.Context, ev Event) {
	for _, n := range m {
		n.Narrate(ctx, ev)
	}
}
