// Package preferences persists the display toggles of the catalog UI.
package preferences

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"gamecatalog/backend/internal/hub"
	"gamecatalog/backend/internal/store"
)

// Name identifies a flag; it is also the storage key.
type Name string

const (
	LargeText    Name = store.KeyLargeText
	HighContrast Name = store.KeyHighContrast
)

// Names lists every flag.
var Names = []Name{LargeText, HighContrast}

// ErrUnknownFlag is returned for names outside Names.
var ErrUnknownFlag = errors.New("unknown preference")

// ParseName validates a flag name.
func ParseName(s string) (Name, error) {
	for _, n := range Names {
		if string(n) == s {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFlag, s)
}

// Change is the payload of a preference.changed event.
type Change struct {
	Name  Name `json:"name"`
	Value bool `json:"value"`
}

// Preferences reads and writes flags in a KV store.
type Preferences struct {
	mu     sync.Mutex
	kv     store.KV
	events hub.Publisher
	logger *slog.Logger
}

// New creates preferences over kv. events may be nil.
func New(kv store.KV, events hub.Publisher, logger *slog.Logger) *Preferences {
	if events == nil {
		events = hub.Discard
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Preferences{kv: kv, events: events, logger: logger}
}

// GetFlag returns the stored value of name, or false when it is absent,
// unreadable or not a JSON boolean.
func (p *Preferences) GetFlag(ctx context.Context, name Name) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.get(ctx, name)
}

// SetFlag persists value for name. Writing the value already stored is
// observably a no-op; a change is broadcast as preference.changed.
func (p *Preferences) SetFlag(ctx context.Context, name Name, value bool) error {
	if _, err := ParseName(string(name)); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	previous := p.get(ctx, name)
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	if err := p.kv.Put(ctx, string(name), payload); err != nil {
		return fmt.Errorf("persist %s: %w", name, err)
	}
	if previous != value {
		p.logger.Info("preferences: changed", "name", name, "value", value)
		p.events.Broadcast(hub.Event{Type: hub.EventPreferenceChanged, Payload: Change{Name: name, Value: value}})
	}
	return nil
}

// All returns every flag keyed by name.
func (p *Preferences) All(ctx context.Context) map[Name]bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[Name]bool, len(Names))
	for _, n := range Names {
		out[n] = p.get(ctx, n)
	}
	return out
}

// get must be called with p.mu held.
func (p *Preferences) get(ctx context.Context, name Name) bool {
	payload, err := p.kv.Get(ctx, string(name))
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			p.logger.Warn("preferences: read failed, using default", "name", name, "err", err)
		}
		return false
	}
	var value bool
	if err := json.Unmarshal(payload, &value); err != nil {
		p.logger.Warn("preferences: unparseable value, using default", "name", name, "err", err)
		return false
	}
	return value
}
