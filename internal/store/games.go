package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gamecatalog/backend/internal/models"
)

// Games loads and saves the full catalog as one JSON array.
type Games struct {
	kv KV
}

// NewGames creates a catalog store over kv.
func NewGames(kv KV) *Games {
	return &Games{kv: kv}
}

// Load reads the persisted catalog. found is false when nothing has ever
// been saved. A value that cannot be decoded yields ErrCorrupt.
func (s *Games) Load(ctx context.Context) (games []models.Game, found bool, err error) {
	payload, err := s.kv.Get(ctx, KeyGames)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	if err := json.Unmarshal(payload, &games); err != nil {
		return nil, false, fmt.Errorf("%w: unmarshal games: %v", ErrCorrupt, err)
	}
	if games == nil {
		// A stored null is not a saved list.
		return nil, false, fmt.Errorf("%w: games is null", ErrCorrupt)
	}
	return games, true, nil
}

// Save replaces the persisted catalog with games.
func (s *Games) Save(ctx context.Context, games []models.Game) error {
	if games == nil {
		games = []models.Game{}
	}
	payload, err := json.Marshal(games)
	if err != nil {
		return fmt.Errorf("marshal games: %w", err)
	}
	return s.kv.Put(ctx, KeyGames, payload)
}
