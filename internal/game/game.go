package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dungeonseeker/internal/combat"
	"github.com/samdwyer/dungeonseeker/internal/dice"
	"github.com/samdwyer/dungeonseeker/internal/entity"
	"github.com/samdwyer/dungeonseeker/internal/event"
	"github.com/samdwyer/dungeonseeker/internal/gamedata"
	"github.com/samdwyer/dungeonseeker/internal/telemetry"
	"github.com/samdwyer/dungeonseeker/internal/world"
)

// Game holds the entire game state.
type Game struct {
	player   *entity.Player
	tables   *gamedata.Tables
	dungeon  *world.Dungeon
	resolver *combat.Resolver
	narrator event.Narrator
	rng      dice.Source
	lang     string
	state    State
	tracer   trace.Tracer
}

// New creates a game over the given tables. All randomness comes from rng,
// player choices from actions, and every event goes to narrator.
func New(cfg Config, tables *gamedata.Tables, rng dice.Source, actions combat.ActionProvider, narrator event.Narrator) *Game {
	if cfg.Lang == "" {
		cfg.Lang = gamedata.DefaultLang
	}
	if cfg.PlayerName == "" {
		cfg.PlayerName = DefaultPlayerName
	}

	return &Game{
		player:   entity.NewPlayer(cfg.PlayerName, rng),
		tables:   tables,
		dungeon:  world.NewDungeon(world.RoomsFromDefs(tables.Rooms, cfg.Lang), rng),
		resolver: combat.NewResolver(actions, narrator),
		narrator: narrator,
		rng:      rng,
		lang:     cfg.Lang,
		state:    StateExploring,
		tracer:   telemetry.Tracer("game"),
	}
}

// Player returns the player.
func (g *Game) Player() *entity.Player { return g.player }

// Dungeon returns the room pool and current room.
func (g *Game) Dungeon() *world.Dungeon { return g.dungeon }

// State returns the current game state.
func (g *Game) State() State { return g.state }

// Run greets the player and explores room after room until the player
// dies or no room is left, then announces the outcome.
func (g *Game) Run(ctx context.Context) (State, error) {
	_, initSpan := g.tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.String("player", g.player.Name),
		attribute.Int("dungeon.rooms", len(g.dungeon.Rooms)),
		attribute.Int("pool.monsters", g.tables.Monsters.Count()),
		attribute.Int("pool.treasures", g.tables.Treasures.Count()),
	)
	if room := g.dungeon.Current(); room != nil {
		initSpan.SetAttributes(attribute.String("room.start", room.ID))
	}
	initSpan.End()

	g.narrate(ctx, event.Event{Kind: event.KindWelcome})

	for g.player.IsAlive() && g.dungeon.HasRoom() {
		if err := ctx.Err(); err != nil {
			return g.state, err
		}
		if err := g.Step(ctx); err != nil {
			return g.state, err
		}
	}

	g.finish(ctx)
	return g.state, nil
}

// Step plays one room: entry, a possible encounter, a possible treasure,
// and the move to the next room. Treasure and the move happen even when the
// encounter killed the player; Run checks health before the next room.
func (g *Game) Step(ctx context.Context) error {
	room := g.dungeon.Current()
	if room == nil {
		return nil
	}

	ctx, span := g.tracer.Start(ctx, "room.enter")
	span.SetAttributes(
		attribute.String("room", room.ID),
		attribute.Int("player_hp", g.player.Health),
	)
	defer span.End()

	g.narrate(ctx, event.Event{Kind: event.KindRoomEntered, Subject: room.Name})

	if err := g.encounter(ctx); err != nil {
		span.RecordError(err)
		return fmt.Errorf("encounter in %s: %w", room.Name, err)
	}
	g.collectTreasure(ctx)

	g.dungeon.Advance(ctx)
	g.narrate(ctx, event.Event{Kind: event.KindMoving})
	return nil
}

// encounter spawns a monster on a coin flip and fights it out.
func (g *Game) encounter(ctx context.Context) error {
	if !dice.Coin(g.rng) {
		return nil
	}

	def := g.tables.Monsters.Spawn(g.rng)
	monster := entity.NewMonsterFromDef(def, g.lang, g.rng)

	result, err := g.resolver.Resolve(ctx, g.player, monster)
	if err != nil {
		return err
	}
	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("monster", def.ID),
		attribute.String("combat.outcome", result.Phase.String()),
	)
	return nil
}

// collectTreasure awards a random treasure on a coin flip.
func (g *Game) collectTreasure(ctx context.Context) {
	if !dice.Coin(g.rng) {
		return
	}

	treasure := entity.NewTreasureFromDef(g.tables.Treasures.Spawn(g.rng), g.lang)
	g.narrate(ctx, event.Event{Kind: event.KindTreasureFound, Subject: treasure.Name, Amount: treasure.Value})

	leveledUp := g.player.CollectTreasure(treasure)
	g.narrate(ctx, event.Event{Kind: event.KindTreasureTotal, Remaining: g.player.TotalTreasureValue()})
	if leveledUp {
		g.narrate(ctx, event.Event{Kind: event.KindLevelUp, Remaining: g.player.Level})
	}

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("treasure", treasure.Name),
		attribute.Bool("level_up", leveledUp),
	)
}

// finish records the outcome once the loop has stopped.
func (g *Game) finish(ctx context.Context) {
	_, span := g.tracer.Start(ctx, "game.end")
	defer span.End()

	if g.player.IsAlive() {
		g.state = StateVictory
		g.narrate(ctx, event.Event{Kind: event.KindVictory})
	} else {
		g.state = StateDefeat
		g.narrate(ctx, event.Event{Kind: event.KindDefeat})
	}

	span.SetAttributes(
		attribute.String("outcome", g.state.String()),
		attribute.Int("rooms_visited", g.dungeon.Visits()),
		attribute.Int("player.level", g.player.Level),
		attribute.Int("treasure.total", g.player.TotalTreasureValue()),
	)
}

func (g *Game) narrate(ctx context.Context, ev event.Event) {
	if g.narrator != nil {
		g.narrator.Narrate(ctx, ev)
	}
}
