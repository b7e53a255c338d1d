// Package catalog holds the authoritative in-memory list of games for a
// session and keeps it in step with durable storage.
//
// A Catalog must be initialized once before use. Every successful Add is
// persisted before it returns, so a completed add survives a restart.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"gamecatalog/backend/internal/hub"
	"gamecatalog/backend/internal/ids"
	"gamecatalog/backend/internal/models"
	"gamecatalog/backend/internal/store"
)

var (
	// ErrNotInitialized is returned by operations used before Initialize.
	ErrNotInitialized = errors.New("catalog is not initialized")
	// ErrAlreadyInitialized is returned by a second call to Initialize.
	ErrAlreadyInitialized = errors.New("catalog is already initialized")
)

// GameStore loads and saves the full list of games.
type GameStore interface {
	Load(ctx context.Context) (games []models.Game, found bool, err error)
	Save(ctx context.Context, games []models.Game) error
}

// Catalog is the ordered, append-only collection of games.
type Catalog struct {
	mu          sync.RWMutex
	store       GameStore
	seed        []models.Game
	ids         ids.Generator
	events      hub.Publisher
	logger      *slog.Logger
	games       []models.Game
	initialized bool
}

// Option customizes a Catalog.
type Option func(*Catalog)

// WithIDGenerator replaces the default sequential id scheme.
func WithIDGenerator(g ids.Generator) Option {
	return func(c *Catalog) { c.ids = g }
}

// WithPublisher sends a game.added event for every add.
func WithPublisher(p hub.Publisher) Option {
	return func(c *Catalog) { c.events = p }
}

// WithLogger sets the logger used for degraded paths.
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) { c.logger = l }
}

// New creates an uninitialized catalog backed by s. seed is used when s
// holds no catalog yet.
func New(s GameStore, seed []models.Game, opts ...Option) *Catalog {
	c := &Catalog{
		store:  s,
		seed:   cloneGames(seed),
		ids:    ids.Sequential{},
		events: hub.Discard,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Initialize loads the persisted catalog, or seeds and persists it when
// none exists. Unreadable or corrupt data is treated as absent. An error
// is returned only when the seed could not be persisted; the catalog is
// usable either way.
func (c *Catalog) Initialize(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return ErrAlreadyInitialized
	}

	games, found, err := c.store.Load(ctx)
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, store.ErrCorrupt) {
			level = slog.LevelError
		}
		c.logger.Log(ctx, level, "catalog: stored games unusable, reseeding", "err", err)
		found = false
	}

	c.initialized = true
	if found {
		c.games = cloneGames(games)
		c.logger.Debug("catalog: loaded", "games", len(games))
		return nil
	}

	c.games = cloneGames(c.seed)
	c.logger.Info("catalog: seeded", "games", len(c.games))
	if err := c.store.Save(ctx, c.games); err != nil {
		c.logger.Warn("catalog: persist seed", "err", err)
		return fmt.Errorf("persist seed: %w", err)
	}
	return nil
}

// Add validates draft, assigns it an id, appends it and persists the whole
// list. On any failure the catalog is left unchanged.
func (c *Catalog) Add(ctx context.Context, draft models.Draft) (models.Game, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return models.Game{}, ErrNotInitialized
	}

	normalized, err := NormalizeDraft(draft)
	if err != nil {
		return models.Game{}, err
	}

	id := c.ids.Next(len(c.games), c.hasID)
	game := normalized.WithID(id)

	next := make([]models.Game, len(c.games), len(c.games)+1)
	copy(next, c.games)
	next = append(next, game)

	if err := c.store.Save(ctx, next); err != nil {
		return models.Game{}, fmt.Errorf("persist catalog: %w", err)
	}
	c.games = next

	c.logger.Info("catalog: game added", "id", game.ID, "title", game.Title)
	c.events.Broadcast(hub.Event{Type: hub.EventGameAdded, Payload: game.Clone()})
	return game.Clone(), nil
}

// List returns a copy of the games in insertion order.
func (c *Catalog) List() []models.Game {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneGames(c.games)
}

// Get returns the game with the given id.
func (c *Catalog) Get(id string) (models.Game, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, g := range c.games {
		if g.ID == id {
			return g.Clone(), true
		}
	}
	return models.Game{}, false
}

// Len returns the number of games.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.games)
}

// hasID must be called with c.mu held.
func (c *Catalog) hasID(id string) bool {
	for _, g := range c.games {
		if g.ID == id {
			return true
		}
	}
	return false
}

func cloneGames(games []models.Game) []models.Game {
	out := make([]models.Game, len(games))
	for i, g := range games {
		out[i] = g.Clone()
	}
	return out
}
