// Package seed bundles the default catalog used on first run.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"gamecatalog/backend/internal/models"
)

//go:embed seed.json
var bundled []byte

type document struct {
	Games []models.Game `json:"games"`
}

// Games returns a fresh copy of the bundled seed list.
func Games() []models.Game {
	games, err := Parse(bundled)
	if err != nil {
		// The bundled file is validated by tests.
		panic(fmt.Sprintf("seed: bundled data: %v", err))
	}
	return games
}

// FromFile reads a seed document from path.
func FromFile(path string) ([]models.Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a {"games": [...]} seed document.
func Parse(data []byte) ([]models.Game, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	if doc.Games == nil {
		doc.Games = []models.Game{}
	}
	return doc.Games, nil
}
