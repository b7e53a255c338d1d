// Package app wires the catalog core from configuration.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"gamecatalog/backend/internal/catalog"
	"gamecatalog/backend/internal/config"
	"gamecatalog/backend/internal/hub"
	"gamecatalog/backend/internal/ids"
	"gamecatalog/backend/internal/models"
	"gamecatalog/backend/internal/preferences"
	"gamecatalog/backend/internal/seed"
	"gamecatalog/backend/internal/store"
)

// App owns the session state shared by the server and the CLI.
type App struct {
	KV          store.KV
	Hub         *hub.Hub
	Catalog     *catalog.Catalog
	Preferences *preferences.Preferences
}

// New opens storage and initializes the catalog. A seed that could not be
// persisted is logged and does not fail startup.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	gen, err := ids.ForStrategy(cfg.IDStrategy)
	if err != nil {
		return nil, err
	}

	seedGames, err := loadSeed(cfg.SeedFile)
	if err != nil {
		return nil, err
	}

	kv, err := store.Open(cfg.StoreDSN)
	if err != nil {
		return nil, err
	}

	h := hub.NewHub()
	cat := catalog.New(store.NewGames(kv), seedGames,
		catalog.WithIDGenerator(gen),
		catalog.WithPublisher(h),
		catalog.WithLogger(logger),
	)
	if err := cat.Initialize(ctx); err != nil {
		logger.Warn("catalog running without persisted seed", "err", err)
	}

	return &App{
		KV:          kv,
		Hub:         h,
		Catalog:     cat,
		Preferences: preferences.New(kv, h, logger),
	}, nil
}

// Close releases storage.
func (a *App) Close() error {
	return a.KV.Close()
}

func loadSeed(path string) ([]models.Game, error) {
	games := seed.Games()
	if path != "" {
		var err error
		if games, err = seed.FromFile(path); err != nil {
			return nil, fmt.Errorf("load seed override: %w", err)
		}
	}
	games, err := catalog.NormalizeSeed(games)
	if err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}
	return games, nil
}
