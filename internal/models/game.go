package models

// Accessibility lists the accessibility features a game supports.
type Accessibility struct {
	Subtitles       bool `json:"subtitles"`
	Colorblind      bool `json:"colorblind"`
	ControllerRemap bool `json:"controllerRemap"`
}

// Game represents a game in the catalog.
type Game struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Genre         string        `json:"genre"`
	Platforms     []string      `json:"platforms"`
	Accessibility Accessibility `json:"accessibility"`
	Description   string        `json:"description"`
}

// Draft is a game that has not been assigned an id yet.
type Draft struct {
	Title         string        `json:"title"`
	Genre         string        `json:"genre"`
	Platforms     []string      `json:"platforms"`
	Accessibility Accessibility `json:"accessibility"`
	Description   string        `json:"description"`
}

// WithID builds the Game for this draft under the given id.
func (d Draft) WithID(id string) Game {
	platforms := make([]string, len(d.Platforms))
	copy(platforms, d.Platforms)
	return Game{
		ID:            id,
		Title:         d.Title,
		Genre:         d.Genre,
		Platforms:     platforms,
		Accessibility: d.Accessibility,
		Description:   d.Description,
	}
}

// Clone returns a deep copy of the game.
func (g Game) Clone() Game {
	if g.Platforms != nil {
		platforms := make([]string, len(g.Platforms))
		copy(platforms, g.Platforms)
		g.Platforms = platforms
	}
	return g
}
