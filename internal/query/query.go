// Package query derives views of the catalog. Every function is a pure
// function of its inputs and is recomputed on each call.
package query

import (
	"strings"

	"gamecatalog/backend/internal/models"
)

// Genres returns the distinct genres of games in first-seen order.
func Genres(games []models.Game) []string {
	genres := make([]string, 0)
	seen := make(map[string]bool)
	for _, g := range games {
		if seen[g.Genre] {
			continue
		}
		seen[g.Genre] = true
		genres = append(genres, g.Genre)
	}
	return genres
}

// Filter returns the games whose title contains searchText, ignoring case,
// and whose genre equals selectedGenre exactly. Empty searchText or empty
// selectedGenre disables that condition. Catalog order is preserved.
func Filter(games []models.Game, searchText, selectedGenre string) []models.Game {
	needle := strings.ToLower(searchText)
	out := make([]models.Game, 0, len(games))
	for _, g := range games {
		if !strings.Contains(strings.ToLower(g.Title), needle) {
			continue
		}
		if selectedGenre != "" && g.Genre != selectedGenre {
			continue
		}
		out = append(out, g)
	}
	return out
}
