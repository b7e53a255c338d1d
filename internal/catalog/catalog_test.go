package catalog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"reflect"
	"testing"

	"gamecatalog/backend/internal/apperr"
	"gamecatalog/backend/internal/hub"
	"gamecatalog/backend/internal/ids"
	"gamecatalog/backend/internal/models"
	"gamecatalog/backend/internal/store"
)

// fakeStore is an in-memory GameStore with switchable failures.
type fakeStore struct {
	games   []models.Game
	found   bool
	loadErr error
	saveErr error
	saves   int
}

func (f *fakeStore) Load(context.Context) ([]models.Game, bool, error) {
	if f.loadErr != nil {
		return nil, false, f.loadErr
	}
	return f.games, f.found, nil
}

func (f *fakeStore) Save(_ context.Context, games []models.Game) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.games = append([]models.Game(nil), games...)
	f.found = true
	return nil
}

var quiet = WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

func seedGames() []models.Game {
	return []models.Game{
		{ID: "g1", Title: "Celeste", Genre: "Platformer", Platforms: []string{"PC", "Switch"}},
		{ID: "g2", Title: "Hades", Genre: "Roguelike", Platforms: []string{"PC"}},
	}
}

func boltGames(t *testing.T) *store.Games {
	t.Helper()
	kv, err := store.OpenBolt(filepath.Join(t.TempDir(), "catalog.bolt"))
	if err != nil {
		t.Fatalf("open bolt: %v", err)
	}
	t.Cleanup(func() { _ = kv.Close() })
	return store.NewGames(kv)
}

func newInitialized(t *testing.T, s GameStore, seed []models.Game, opts ...Option) *Catalog {
	t.Helper()
	c := New(s, seed, append([]Option{quiet}, opts...)...)
	if err := c.Initialize(context.Background()); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return c
}

func TestInitializeSeedsOnce(t *testing.T) {
	ctx := context.Background()
	s := boltGames(t)

	first := newInitialized(t, s, seedGames())
	if !reflect.DeepEqual(first.List(), seedGames()) {
		t.Fatalf("expected seed list, got %#v", first.List())
	}
	persisted, found, err := s.Load(ctx)
	if err != nil || !found {
		t.Fatalf("expected persisted seed, found=%v err=%v", found, err)
	}
	if !reflect.DeepEqual(persisted, seedGames()) {
		t.Fatalf("persisted seed mismatch: %#v", persisted)
	}

	// A fresh session with a different seed must not reseed.
	second := newInitialized(t, s, []models.Game{{ID: "x", Title: "Other", Genre: "Other"}})
	if !reflect.DeepEqual(second.List(), seedGames()) {
		t.Fatalf("expected stored list on second session, got %#v", second.List())
	}
}

func TestInitializeKeepsIntentionallyEmptyCatalog(t *testing.T) {
	s := &fakeStore{games: []models.Game{}, found: true}
	c := newInitialized(t, s, seedGames())
	if c.Len() != 0 {
		t.Fatalf("expected empty catalog, got %d games", c.Len())
	}
	if s.saves != 0 {
		t.Fatalf("expected no save, got %d", s.saves)
	}
}

func TestInitializeReseedsOnLoadFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"corrupt", store.ErrCorrupt},
		{"unavailable", errors.New("disk gone")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := &fakeStore{loadErr: tc.err}
			c := newInitialized(t, s, seedGames())
			if !reflect.DeepEqual(c.List(), seedGames()) {
				t.Fatalf("expected reseed, got %#v", c.List())
			}
			if s.saves != 1 {
				t.Fatalf("expected seed to be saved once, got %d", s.saves)
			}
		})
	}
}

func TestInitializeSeedSaveFailureIsNotFatal(t *testing.T) {
	s := &fakeStore{saveErr: errors.New("read-only")}
	c := New(s, seedGames(), quiet)
	if err := c.Initialize(context.Background()); err == nil {
		t.Fatal("expected persist error to be reported")
	}
	if c.Len() != len(seedGames()) {
		t.Fatalf("expected usable seeded catalog, got %d games", c.Len())
	}
}

func TestInitializeTwice(t *testing.T) {
	c := newInitialized(t, &fakeStore{}, seedGames())
	if err := c.Initialize(context.Background()); !errors.Is(err, ErrAlreadyInitialized) {
		t.Fatalf("expected ErrAlreadyInitialized, got %v", err)
	}
}

func TestAddBeforeInitialize(t *testing.T) {
	c := New(&fakeStore{}, nil, quiet)
	_, err := c.Add(context.Background(), models.Draft{Title: "Foo", Genre: "RPG"})
	if !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
}

func TestAddValidation(t *testing.T) {
	tests := []struct {
		name  string
		draft models.Draft
		field string
	}{
		{"empty title", models.Draft{Title: "", Genre: "RPG"}, "title"},
		{"blank title", models.Draft{Title: "   ", Genre: "RPG"}, "title"},
		{"empty genre", models.Draft{Title: "Foo"}, "genre"},
		{"unknown platform", models.Draft{Title: "Foo", Genre: "RPG", Platforms: []string{"Dreamcast"}}, "platforms"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := &fakeStore{}
			c := newInitialized(t, s, seedGames())
			before := c.List()
			savesBefore := s.saves

			_, err := c.Add(context.Background(), tc.draft)
			if !apperr.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
			var verr *apperr.ValidationError
			if !errors.As(err, &verr) || verr.Field != tc.field {
				t.Fatalf("expected field %q, got %v", tc.field, err)
			}
			if !reflect.DeepEqual(c.List(), before) {
				t.Fatal("catalog changed after rejected add")
			}
			if s.saves != savesBefore {
				t.Fatal("rejected add must not persist")
			}
		})
	}
}

func TestAddStoresTitleAndGenreAsGiven(t *testing.T) {
	c := newInitialized(t, &fakeStore{}, seedGames())
	game, err := c.Add(context.Background(), models.Draft{Title: "  Foo ", Genre: "RPG "})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if game.Title != "  Foo " || game.Genre != "RPG " {
		t.Fatalf("expected title and genre unchanged, got %q/%q", game.Title, game.Genre)
	}
}

func TestNormalizeSeed(t *testing.T) {
	games, err := NormalizeSeed([]models.Game{
		{ID: "g1", Title: "Halo", Genre: "Shooter", Platforms: []string{"PC", "Xbox", "PC"}},
		{ID: "g2", Title: "Tetris", Genre: "Puzzle"},
	})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if !reflect.DeepEqual(games[0].Platforms, []string{"PC", "Xbox"}) {
		t.Fatalf("expected deduplicated platforms, got %v", games[0].Platforms)
	}
	if games[1].Platforms == nil {
		t.Fatal("expected non-nil platforms")
	}

	bad := []struct {
		name  string
		games []models.Game
		field string
	}{
		{"missing id", []models.Game{{Title: "Halo", Genre: "Shooter"}}, "id"},
		{"duplicate id", []models.Game{
			{ID: "g1", Title: "Halo", Genre: "Shooter"},
			{ID: "g1", Title: "Tetris", Genre: "Puzzle"},
		}, "id"},
		{"empty title", []models.Game{{ID: "g1", Genre: "Shooter"}}, "title"},
		{"empty genre", []models.Game{{ID: "g1", Title: "Halo"}}, "genre"},
		{"unknown platform", []models.Game{{ID: "g1", Title: "Halo", Genre: "Shooter", Platforms: []string{"Dreamcast"}}}, "platforms"},
	}
	for _, tc := range bad {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NormalizeSeed(tc.games)
			var verr *apperr.ValidationError
			if !errors.As(err, &verr) || verr.Field != tc.field {
				t.Fatalf("expected %q validation error, got %v", tc.field, err)
			}
		})
	}
}

func TestAddAppendsAndPersists(t *testing.T) {
	ctx := context.Background()
	s := boltGames(t)
	c := newInitialized(t, s, seedGames())
	before := c.List()

	game, err := c.Add(ctx, models.Draft{
		Title:         "Foo",
		Genre:         "RPG",
		Platforms:     []string{"PC", "Switch", "PC"},
		Accessibility: models.Accessibility{Subtitles: true},
		Description:   "A test game.",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if game.ID == "" {
		t.Fatal("expected an id")
	}
	if !reflect.DeepEqual(game.Platforms, []string{"PC", "Switch"}) {
		t.Fatalf("expected deduplicated platforms, got %v", game.Platforms)
	}

	after := c.List()
	if len(after) != len(before)+1 {
		t.Fatalf("expected %d games, got %d", len(before)+1, len(after))
	}
	if !reflect.DeepEqual(after[len(after)-1], game) {
		t.Fatalf("expected last game %#v, got %#v", game, after[len(after)-1])
	}
	if !reflect.DeepEqual(after[:len(before)], before) {
		t.Fatal("existing games were reordered")
	}

	persisted, _, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(persisted, after) {
		t.Fatalf("persisted catalog diverged:\n got %#v\nwant %#v", persisted, after)
	}
}

func TestSequentialAddsGetDistinctIDs(t *testing.T) {
	c := newInitialized(t, &fakeStore{games: []models.Game{}, found: true}, nil)
	seen := make(map[string]bool)
	for i, title := range []string{"A", "B", "C"} {
		g, err := c.Add(context.Background(), models.Draft{Title: title, Genre: "RPG"})
		if err != nil {
			t.Fatalf("add %s: %v", title, err)
		}
		if seen[g.ID] {
			t.Fatalf("duplicate id %q", g.ID)
		}
		seen[g.ID] = true
		if want := ids.NextID(i); g.ID != want {
			t.Fatalf("expected id %q, got %q", want, g.ID)
		}
	}
}

func TestAddAvoidsCollisionWithStoredIDs(t *testing.T) {
	stored := []models.Game{{ID: "g2", Title: "Hand edited", Genre: "RPG"}}
	c := newInitialized(t, &fakeStore{games: stored, found: true}, nil)
	g, err := c.Add(context.Background(), models.Draft{Title: "New", Genre: "RPG"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if g.ID == "g2" {
		t.Fatal("assigned an id already in use")
	}
}

func TestAddRollsBackOnSaveFailure(t *testing.T) {
	s := &fakeStore{}
	c := newInitialized(t, s, seedGames())
	s.saveErr = errors.New("disk full")

	if _, err := c.Add(context.Background(), models.Draft{Title: "Foo", Genre: "RPG"}); err == nil {
		t.Fatal("expected persist error")
	}
	if c.Len() != len(seedGames()) {
		t.Fatalf("expected catalog unchanged, got %d games", c.Len())
	}
}

func TestAddPublishesEvent(t *testing.T) {
	h := hub.NewHub()
	client := make(hub.Client, 1)
	h.Subscribe(client)
	c := newInitialized(t, &fakeStore{}, nil, WithPublisher(h))

	if _, err := c.Add(context.Background(), models.Draft{Title: "Foo", Genre: "RPG"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	select {
	case <-client:
	default:
		t.Fatal("expected game.added event")
	}
}

func TestListIsReadOnlyCopy(t *testing.T) {
	c := newInitialized(t, &fakeStore{}, seedGames())
	list := c.List()
	list[0].Title = "mutated"
	list[0].Platforms[0] = "Mobile"

	again := c.List()
	if again[0].Title != "Celeste" || again[0].Platforms[0] != "PC" {
		t.Fatalf("catalog state leaked through List: %#v", again[0])
	}
}

func TestGet(t *testing.T) {
	c := newInitialized(t, &fakeStore{}, seedGames())
	g, ok := c.Get("g2")
	if !ok || g.Title != "Hades" {
		t.Fatalf("expected Hades, got %#v ok=%v", g, ok)
	}
	if _, ok := c.Get("nope"); ok {
		t.Fatal("expected missing game")
	}
}

func TestWithUUIDGenerator(t *testing.T) {
	c := newInitialized(t, &fakeStore{}, nil, WithIDGenerator(ids.UUID{}))
	g, err := c.Add(context.Background(), models.Draft{Title: "Foo", Genre: "RPG"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(g.ID) != 36 {
		t.Fatalf("expected uuid id, got %q", g.ID)
	}
}
