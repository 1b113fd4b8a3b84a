package game

import (
	"context"
	"errors"
	"testing"

	"github.com/samdwyer/dungeonseeker/internal/combat"
	"github.com/samdwyer/dungeonseeker/internal/dice"
	"github.com/samdwyer/dungeonseeker/internal/event"
	"github.com/samdwyer/dungeonseeker/internal/gamedata"
)

// killAfterMoves returns a narrator that sets the player's health to 0 once
// n room transitions have been narrated.
func killAfterMoves(g **Game, n int) event.Narrator {
	moves := 0
	return event.NarratorFunc(func(_ context.Context, ev event.Event) {
		if ev.Kind != event.KindMoving {
			return
		}
		moves++
		if moves == n {
			(*g).Player().Health = 0
		}
	})
}

func newTestGame(src *dice.Script, actions combat.Actions, narrators ...event.Narrator) (*Game, *event.Recorder) {
	rec := &event.Recorder{}
	queue := actions
	g := New(Config{}, gamedata.MustLoadTables(), src, &queue, append(event.Multi{rec}, narrators...))
	return g, rec
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateExploring, "exploring"},
		{StateDefeat, "defeat"},
		{StateVictory, "victory"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}

func TestQuietDungeonLoopsUntilPlayerDies(t *testing.T) {
	// Pick 1 everywhere: coin flips come up false, rooms keep changing.
	src := &dice.Script{Picks: []int{1}}
	var g *Game
	g, rec := newTestGame(src, nil, killAfterMoves(&g, 25))

	state, err := g.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if state != StateDefeat || g.State() != StateDefeat {
		t.Errorf("state = %v, want StateDefeat", state)
	}
	if got := rec.Count(event.KindRoomEntered); got != 25 {
		t.Errorf("rooms entered = %d, want 25", got)
	}
	if rec.Count(event.KindMonsterAppeared) != 0 || rec.Count(event.KindTreasureFound) != 0 {
		t.Errorf("unexpected encounter or treasure: %v", rec.Kinds())
	}
	if last := rec.Events[len(rec.Events)-1].Kind; last != event.KindDefeat {
		t.Errorf("last event = %v, want defeat", last)
	}
	if rec.Count(event.KindVictory) != 0 {
		t.Error("victory should not be announced")
	}
}

func TestStepThenForcedDeath(t *testing.T) {
	src := &dice.Script{Picks: []int{1}}
	g, rec := newTestGame(src, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := g.Step(ctx); err != nil {
			t.Fatalf("Step() error: %v", err)
		}
	}
	if g.Player().Health != 100 {
		t.Fatalf("health after quiet rooms = %d, want 100", g.Player().Health)
	}

	g.Player().Health = -5
	state, err := g.Run(ctx)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if state != StateDefeat {
		t.Errorf("state = %v, want StateDefeat", state)
	}
	if got := rec.Count(event.KindRoomEntered); got != 3 {
		t.Errorf("rooms entered = %d, want 3", got)
	}
}

func TestEmptyRoomPoolIsVictory(t *testing.T) {
	tables := gamedata.MustLoadTables()
	tables.Rooms = nil
	rec := &event.Recorder{}
	queue := combat.Actions{}

	g := New(Config{}, tables, &dice.Script{}, &queue, rec)
	state, err := g.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if state != StateVictory {
		t.Errorf("state = %v, want StateVictory", state)
	}
	want := []event.Kind{event.KindWelcome, event.KindVictory}
	got := rec.Kinds()
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestRoomWithMonsterAndTreasure(t *testing.T) {
	src := &dice.Script{
		// start room, monster coin, goblin, treasure coin, artifact, next room
		Picks: []int{0, 0, 0, 0, 2, 3},
		// player hits 15, goblin hits 3, player hits 15
		Rolls: []int{15, 3, 15},
	}
	var g *Game
	g, rec := newTestGame(src, combat.Actions{combat.ActionAttack, combat.ActionAttack}, killAfterMoves(&g, 1))

	if got := g.Dungeon().Current().Name; got != "Room 1" {
		t.Fatalf("start room = %q, want Room 1", got)
	}

	state, err := g.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if state != StateDefeat {
		t.Errorf("state = %v, want StateDefeat", state)
	}

	want := []event.Kind{
		event.KindWelcome,
		event.KindRoomEntered,
		event.KindMonsterAppeared,
		event.KindPlayerHit,
		event.KindMonsterHit,
		event.KindPlayerHit,
		event.KindMonsterDefeated,
		event.KindTreasureFound,
		event.KindTreasureTotal,
		event.KindMoving,
		event.KindDefeat,
	}
	got := rec.Kinds()
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}

	if rec.Events[2].Subject != "Goblin" {
		t.Errorf("monster = %q, want Goblin", rec.Events[2].Subject)
	}
	if rec.Events[4].Remaining != 97 {
		t.Errorf("health after goblin hit = %d, want 97", rec.Events[4].Remaining)
	}
	if rec.Events[7].Subject != "Ancient Artifact" || rec.Events[7].Amount != 50 {
		t.Errorf("treasure event = %+v", rec.Events[7])
	}
	if g.Player().TotalTreasureValue() != 50 {
		t.Errorf("treasure total = %d, want 50", g.Player().TotalTreasureValue())
	}
	if got := g.Dungeon().Current().Name; got != "Room 4" {
		t.Errorf("current room = %q, want Room 4", got)
	}
}

func TestThreeTreasuresLevelUp(t *testing.T) {
	src := &dice.Script{
		Picks: []int{
			0,          // start room
			1, 0, 0, 0, // no monster, treasure, gold coin, room 1
			1, 0, 1, 0, // no monster, treasure, silver necklace, room 1
			1, 0, 2, 0, // no monster, treasure, ancient artifact, room 1
		},
	}
	g, rec := newTestGame(src, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := g.Step(ctx); err != nil {
			t.Fatalf("Step() error: %v", err)
		}
	}

	p := g.Player()
	if p.Level != 2 || p.AttackPower != 15 || p.Magic != 40 {
		t.Errorf("after 3 treasures: level %d attack %d magic %d, want 2 15 40", p.Level, p.AttackPower, p.Magic)
	}
	if p.TotalTreasureValue() != 85 {
		t.Errorf("treasure total = %d, want 85", p.TotalTreasureValue())
	}
	if rec.Count(event.KindLevelUp) != 1 {
		t.Errorf("level-ups narrated = %d, want 1", rec.Count(event.KindLevelUp))
	}
}

func TestPlayerKilledInCombat(t *testing.T) {
	src := &dice.Script{
		// start room, monster coin, dragon, no treasure, next room
		Picks: []int{0, 0, 2, 1, 0},
		// player hits 5, dragon hits 100
		Rolls: []int{5, 100},
	}
	g, rec := newTestGame(src, combat.Actions{combat.ActionAttack})

	state, err := g.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if state != StateDefeat {
		t.Errorf("state = %v, want StateDefeat", state)
	}
	if g.Player().IsAlive() {
		t.Error("player should be dead")
	}
	if rec.Count(event.KindRoomEntered) != 1 {
		t.Errorf("rooms entered = %d, want 1", rec.Count(event.KindRoomEntered))
	}
}

func TestActionProviderErrorStopsRun(t *testing.T) {
	src := &dice.Script{Picks: []int{0}}
	g, _ := newTestGame(src, nil)

	_, err := g.Run(context.Background())
	if !errors.Is(err, combat.ErrNoMoreActions) {
		t.Errorf("Run() error = %v, want ErrNoMoreActions", err)
	}
	if g.State() != StateExploring {
		t.Errorf("state = %v, want StateExploring", g.State())
	}
}

func TestRunHonoursCancellation(t *testing.T) {
	g, rec := newTestGame(&dice.Script{Picks: []int{1}}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if rec.Count(event.KindRoomEntered) != 0 {
		t.Error("no room should be entered after cancellation")
	}
}

func TestLocalizedGame(t *testing.T) {
	src := &dice.Script{Picks: []int{1}}
	queue := combat.Actions{}
	rec := &event.Recorder{}
	g := New(Config{Lang: "ru"}, gamedata.MustLoadTables(), src, &queue, rec)

	if err := g.Step(context.Background()); err != nil {
		t.Fatalf("Step() error: %v", err)
	}
	if rec.Events[0].Subject != "Комната 2" {
		t.Errorf("room name = %q, want Комната 2", rec.Events[0].Subject)
	}
	if g.Player().Name != DefaultPlayerName {
		t.Errorf("player name = %q", g.Player().Name)
	}
}
