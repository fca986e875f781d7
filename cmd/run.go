package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/zenquiz/internal/app"
	"github.com/abhisek/zenquiz/internal/catalog"
	"github.com/abhisek/zenquiz/internal/game"
	"github.com/abhisek/zenquiz/internal/logging"
	"github.com/abhisek/zenquiz/internal/store"
)

// runApp loads config and catalog, opens the journal, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer closeLog()

	cat, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	logger.Info("catalog loaded",
		zap.String("path", cfg.Catalog),
		zap.String("version", cat.Version()),
		zap.Int("levels", cat.Len()),
	)

	st, err := store.OpenMemory(logger)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer st.Close()

	g := game.New(game.Options{
		Catalog:     cat,
		Journal:     st.EventRepo(),
		Logger:      logger,
		AutoAdvance: cfg.AutoAdvance,
	})

	return app.Run(app.Options{
		Game:        g,
		DefaultName: cfg.DefaultName,
		Logger:      logger,
	})
}
