package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/Eldorabotpy/eldora-engine/internal/config"
	"github.com/Eldorabotpy/eldora-engine/internal/db"
	"github.com/Eldorabotpy/eldora-engine/internal/game/action"
	"github.com/Eldorabotpy/eldora-engine/internal/game/itemgen"
	"github.com/Eldorabotpy/eldora-engine/internal/model"
	"github.com/Eldorabotpy/eldora-engine/internal/rng"
)

const GameConfigPath = "config/game.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Load config FIRST to determine log level
	cfgPath := GameConfigPath
	if p := os.Getenv("ELDORA_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadGame(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Info("eldora engine starting", "log_level", cfg.LogLevel)

	if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("migrations applied")

	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()
	slog.Info("database connected")

	store := db.NewPlayerRepository(database.Pool())
	manager := action.NewManager(
		store,
		action.SystemClock{},
		rng.NewSource(),
		itemgen.New(),
		cfg.Combat,
		cfg.Rates,
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return demoEncounter(ctx, store, manager)
	})
	return g.Wait()
}

// demoEncounter seeds a player and drives one full hunt to resolution,
// exercising the whole engine end to end: state machine, combat turns,
// durability wear, rewards and persistence.
func demoEncounter(ctx context.Context, store *db.PlayerRepository, manager *action.Manager) error {
	const demoID int64 = 1

	p, err := store.Load(ctx, demoID)
	if err != nil {
		return fmt.Errorf("loading demo player: %w", err)
	}
	if p == nil {
		p = &model.Player{
			ID: demoID, Name: "Aldric", Class: "guerreiro", Level: 10,
			CurrentHP: 120, MaxHP: 120, CurrentMP: 50, MaxMP: 50,
			BaseAttack: 45, BaseDefense: 14, BaseInitiative: 12, BaseLuck: 8,
			Equipment: make(map[string]*model.Item),
			Inventory: make(map[string]int32),
			Skills:    []string{"golpe_poderoso"},
			State:     model.StateIdle,
		}
		if err := store.Save(ctx, p); err != nil {
			return fmt.Errorf("seeding demo player: %w", err)
		}
		slog.Info("demo player seeded", "name", p.Name)

		if _, err := manager.GrantItem(ctx, demoID, "espada_ferro", model.RarityRaro); err != nil {
			return fmt.Errorf("granting starter weapon: %w", err)
		}
	}

	if err := manager.StartHunt(ctx, demoID, "lobo_cinzento"); err != nil {
		return fmt.Errorf("starting hunt: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		turn, err := manager.UseSkill(ctx, demoID, "golpe_poderoso")
		if err != nil {
			turn, err = manager.Attack(ctx, demoID)
			if err != nil {
				return fmt.Errorf("resolving turn: %w", err)
			}
		}

		for _, line := range turn.Log {
			slog.Info(line)
		}
		if turn.Victory || turn.Defeat {
			return nil
		}
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
