// Package main is the entry point for DungeonSeeker.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/samdwyer/dungeonseeker/internal/combat"
	"github.com/samdwyer/dungeonseeker/internal/config"
	"github.com/samdwyer/dungeonseeker/internal/dice"
	"github.com/samdwyer/dungeonseeker/internal/event"
	"github.com/samdwyer/dungeonseeker/internal/game"
	"github.com/samdwyer/dungeonseeker/internal/gamedata"
	"github.com/samdwyer/dungeonseeker/internal/i18n"
	"github.com/samdwyer/dungeonseeker/internal/telemetry"
	"github.com/samdwyer/dungeonseeker/internal/ui"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	setupOTelEnv(cfg.Telemetry)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, telemetry.Options{Enabled: cfg.Telemetry.Enabled})
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	tables, err := gamedata.LoadTables()
	if err != nil {
		log.Fatalf("Failed to load game data: %v", err)
	}

	if err := run(ctx, cfg, tables); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config, tables *gamedata.Tables) error {
	tag := i18n.Resolve(cfg.Lang)
	rng := dice.NewRand(cfg.Seed)
	gameCfg := game.Config{Lang: i18n.Code(tag), PlayerName: cfg.PlayerName}

	var (
		actions  combat.ActionProvider
		narrator event.Narrator
		screen   *ui.Screen
	)
	switch cfg.UI {
	case config.UIScreen:
		s, err := ui.NewScreen(tag, tables.Monsters.All())
		if err != nil {
			return fmt.Errorf("open screen: %w", err)
		}
		defer s.Close()
		screen, actions, narrator = s, s, s
	default:
		actions = ui.NewPrompt(os.Stdin, os.Stdout, tag)
		narrator = ui.NewConsole(os.Stdout, tag)
	}

	g := game.New(gameCfg, tables, rng, actions, narrator)
	if screen != nil {
		screen.SetPlayer(g.Player())
	}

	_, err := g.Run(ctx)
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, ui.ErrQuit), errors.Is(err, context.Canceled):
		return nil
	case err != nil:
		return err
	}
	if screen != nil {
		screen.WaitForKey()
	}
	return nil
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv(t config.Telemetry) {
	if !t.Enabled {
		return
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", t.Endpoint)

	// The .env file may hold an unexpanded variable reference, so the
	// header is built here from the parts.
	if t.HoneycombAPIKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", t.HoneycombAPIKey, t.HoneycombSet))
	}
}
