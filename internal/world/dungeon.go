package world

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonseeker/internal/dice"
	"github.com/samdwyer/dungeonseeker/internal/telemetry"
)

// Dungeon tracks the room pool and the room the player is in.
type Dungeon struct {
	Rooms   []Room
	current *Room
	visits  int
	rng     dice.Source
}

// NewDungeon creates a dungeon over rooms and places the player in a
// randomly chosen one. With no rooms there is no current room.
func NewDungeon(rooms []Room, rng dice.Source) *Dungeon {
	d := &Dungeon{
		Rooms: rooms,
		rng:   rng,
	}
	d.current = d.pick()
	return d
}

// Current returns the room the player is in, or nil when the pool is empty.
func (d *Dungeon) Current() *Room {
	return d.current
}

// HasRoom reports whether there is a current room to explore.
func (d *Dungeon) HasRoom() bool {
	return d.current != nil
}

// Visits returns how many times Advance has moved the player.
func (d *Dungeon) Visits() int {
	return d.visits
}

// Advance moves the player to a uniformly chosen room. The same room may
// come up again immediately; the pool never shrinks.
func (d *Dungeon) Advance(ctx context.Context) *Room {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.advance")
	defer span.End()

	from := d.current
	d.current = d.pick()
	d.visits++

	if from != nil {
		span.SetAttributes(attribute.String("room.from", from.ID))
	}
	if d.current != nil {
		span.SetAttributes(attribute.String("room.to", d.current.ID))
	}
	span.SetAttributes(attribute.Int("room.visits", d.visits))
	return d.current
}

func (d *Dungeon) pick() *Room {
	if len(d.Rooms) == 0 {
		return nil
	}
	return &d.Rooms[d.rng.Pick(len(d.Rooms))]
}
