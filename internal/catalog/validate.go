package catalog

import (
	"fmt"
	"strings"

	"gamecatalog/backend/internal/apperr"
	"gamecatalog/backend/internal/models"
)

// NormalizeDraft checks the fields required to create a game and returns
// the draft with platforms deduplicated in first-seen order. Title and genre
// are stored as given; whitespace-only values count as empty.
func NormalizeDraft(d models.Draft) (models.Draft, error) {
	if strings.TrimSpace(d.Title) == "" {
		return models.Draft{}, apperr.Required("title")
	}
	if strings.TrimSpace(d.Genre) == "" {
		return models.Draft{}, apperr.Required("genre")
	}

	platforms := make([]string, 0, len(d.Platforms))
	seen := make(map[string]bool, len(d.Platforms))
	for _, p := range d.Platforms {
		if !models.IsPlatform(p) {
			return models.Draft{}, apperr.Invalid("platforms", "unknown platform %q", p)
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		platforms = append(platforms, p)
	}
	d.Platforms = platforms
	return d, nil
}

// NormalizeSeed applies NormalizeDraft to every seed game and rejects
// missing or repeated ids.
func NormalizeSeed(games []models.Game) ([]models.Game, error) {
	out := make([]models.Game, 0, len(games))
	seen := make(map[string]bool, len(games))
	for i, g := range games {
		if strings.TrimSpace(g.ID) == "" {
			return nil, fmt.Errorf("seed game %d: %w", i, apperr.Required("id"))
		}
		if seen[g.ID] {
			return nil, fmt.Errorf("seed game %d: %w", i, apperr.Invalid("id", "duplicate id %q", g.ID))
		}
		seen[g.ID] = true

		d, err := NormalizeDraft(models.Draft{
			Title:         g.Title,
			Genre:         g.Genre,
			Platforms:     g.Platforms,
			Accessibility: g.Accessibility,
			Description:   g.Description,
		})
		if err != nil {
			return nil, fmt.Errorf("seed game %q: %w", g.ID, err)
		}
		out = append(out, d.WithID(g.ID))
	}
	return out, nil
}
