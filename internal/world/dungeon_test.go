package world

import (
	"context"
	"testing"

	"github.com/samdwyer/dungeonseeker/internal/dice"
	"github.com/samdwyer/dungeonseeker/internal/gamedata"
)

func testRooms() []Room {
	return RoomsFromDefs(gamedata.MustLoadTables().Rooms, "en")
}

func TestDungeonReproducibility(t *testing.T) {
	seed := int64(12345)
	ctx := context.Background()

	d1 := NewDungeon(testRooms(), dice.NewRand(seed))
	d2 := NewDungeon(testRooms(), dice.NewRand(seed))

	for i := 0; i < 50; i++ {
		if d1.Current().ID != d2.Current().ID {
			t.Fatalf("step %d: room mismatch %s != %s", i, d1.Current().ID, d2.Current().ID)
		}
		d1.Advance(ctx)
		d2.Advance(ctx)
	}
}

func TestDungeonAdvanceAllowsRevisits(t *testing.T) {
	src := &dice.Script{Picks: []int{2, 2, 0, 4}}
	d := NewDungeon(testRooms(), src)
	ctx := context.Background()

	if got := d.Current().Name; got != "Room 3" {
		t.Fatalf("start room = %q, want Room 3", got)
	}

	want := []string{"Room 3", "Room 1", "Room 5", "Room 5"}
	for i, name := range want {
		if got := d.Advance(ctx).Name; got != name {
			t.Errorf("advance %d = %q, want %q", i, got, name)
		}
	}
	if d.Visits() != 4 {
		t.Errorf("Visits() = %d, want 4", d.Visits())
	}
	if len(d.Rooms) != 5 {
		t.Errorf("room pool shrank to %d", len(d.Rooms))
	}
}

func TestEmptyDungeonHasNoRoom(t *testing.T) {
	d := NewDungeon(nil, &dice.Script{})

	if d.HasRoom() || d.Current() != nil {
		t.Error("empty dungeon should have no current room")
	}
	if d.Advance(context.Background()) != nil {
		t.Error("Advance() on empty dungeon should return nil")
	}
}

func TestRoomsFromDefsLocalized(t *testing.T) {
	rooms := RoomsFromDefs(gamedata.MustLoadTables().Rooms, "ru")
	if rooms[0].Name != "Комната 1" || rooms[0].ID != "room_1" {
		t.Errorf("rooms[0] = %+v", rooms[0])
	}
}
