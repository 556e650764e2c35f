package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/talgya/stardrift/internal/api"
	"github.com/talgya/stardrift/internal/config"
	"github.com/talgya/stardrift/internal/content"
	"github.com/talgya/stardrift/internal/engine"
	"github.com/talgya/stardrift/internal/events"
	"github.com/talgya/stardrift/internal/persistence"
	"github.com/talgya/stardrift/internal/session"
)

func newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the simulation until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}
}

func run() error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// ── Content ───────────────────────────────────────────────────────
	reg := content.Default()
	if cfg.Content.Path != "" {
		reg, err = content.Load(cfg.Content.Path)
		if err != nil {
			return err
		}
		slog.Info("content loaded", "path", cfg.Content.Path)
	}

	// ── Save store ────────────────────────────────────────────────────
	if dir := filepath.Dir(cfg.Database.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}
	store, err := persistence.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer store.Close()
	slog.Info("save store opened", "path", cfg.Database.Path)

	playerID := cfg.Player.ID
	if playerID == "" {
		playerID = uuid.NewString()
		slog.Info("new player identity generated", "player_id", playerID,
			"hint", "set STARDRIFT_PLAYER_ID to keep this save")
	}

	// ── Session ───────────────────────────────────────────────────────
	feed := events.NewFeed(100)
	sess := session.New(reg, events.Multi{events.SlogSink{}, feed})

	if data, ok, err := store.Load(playerID); err != nil {
		// A broken save is logged and skipped; the session starts
		// fresh rather than refusing to boot.
		slog.Error("load save failed, starting fresh", "error", err)
	} else if ok {
		sess.RestoreSave(data)
		slog.Info("save restored", "player_id", playerID,
			"credits", events.FormatCredits(sess.Ledger().Credits()),
			"cargo", sess.Ledger().Cargo())
	} else {
		slog.Info("no save found, starting new game", "player_id", playerID)
	}

	// ── Engine ────────────────────────────────────────────────────────
	eng := engine.New()
	eng.Interval = time.Duration(cfg.Sim.TickMillis) * time.Millisecond
	eng.SaveEvery = time.Duration(cfg.Sim.AutosaveSeconds) * time.Second
	eng.OnTick = sess.Advance
	eng.OnSave = func() {
		// Best-effort: a failed autosave is logged and the next
		// cadence retries naturally.
		if err := store.Save(playerID, sess.Snapshot()); err != nil {
			slog.Error("autosave failed", "error", err)
		}
	}
	eng.OnSummary = func() {
		sess.LogSummary(slog.Info)
	}

	if cfg.API.Enabled {
		srv := &api.Server{Session: sess, Feed: feed, Port: cfg.API.Port}
		srv.Start()
	}

	go eng.Run()

	// ── Shutdown ──────────────────────────────────────────────────────
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	slog.Info("shutting down")
	eng.Stop()
	if err := store.Save(playerID, sess.Snapshot()); err != nil {
		slog.Error("final save failed", "error", err)
	} else {
		slog.Info("final save written", "player_id", playerID)
	}
	return nil
}
