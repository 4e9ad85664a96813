package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/safetypro/internal/app"
	"github.com/abhisek/safetypro/internal/llm"
	"github.com/abhisek/safetypro/internal/logger"
	"github.com/abhisek/safetypro/internal/session"
	"github.com/abhisek/safetypro/internal/store"
	"github.com/abhisek/safetypro/internal/tutor"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dataDir, err := store.DataDir()
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}
	logPath := cfg.LogPath(dataDir)
	if err := store.EnsureDir(logPath); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	log, err := logger.New(cfg.LogMode, logPath)
	if err != nil {
		return err
	}
	defer log.Sync()

	cat, err := loadCatalog(cmd)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()
	eventRepo := st.EventRepo()

	// Without a provider the tutor answers with its fallback texts.
	provider, err := llm.NewProviderFromEnv(ctx, eventRepo, log)
	if err != nil {
		log.Warn("llm provider not configured, AI tutor disabled", "error", err)
		provider = nil
	}

	return app.Run(app.Options{
		Controller: session.NewController(),
		Catalog:    cat,
		Tutor:      tutor.New(provider, tutor.DefaultConfig(), log),
		EventRepo:  eventRepo,
		Logger:     log,
		Rand:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	})
}
