// Package ids assigns identifiers to games added to the catalog.
//
// The sequential scheme derives the id from the catalog size at the moment
// of assignment: "g" followed by the 1-based ordinal of the new game. It is
// only collision free while games are never removed and there is a single
// writer. The uuid scheme does not depend on catalog contents.
package ids

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Prefix starts every sequential id.
const Prefix = "g"

// NextID returns the sequential id for a catalog holding currentCount games.
func NextID(currentCount int) string {
	return Prefix + strconv.Itoa(currentCount+1)
}

// Generator assigns a new id given the current catalog size. taken reports
// whether a candidate is already in use.
type Generator interface {
	Next(currentCount int, taken func(id string) bool) string
}

// Sequential assigns NextID(currentCount), moving to the following ordinal
// while the candidate is taken.
type Sequential struct{}

// Next implements Generator.
func (Sequential) Next(currentCount int, taken func(string) bool) string {
	n := currentCount
	id := NextID(n)
	for taken != nil && taken(id) {
		n++
		id = NextID(n)
	}
	return id
}

// UUID assigns random version 4 uuids.
type UUID struct{}

// Next implements Generator.
func (UUID) Next(_ int, taken func(string) bool) string {
	for {
		id := uuid.NewString()
		if taken == nil || !taken(id) {
			return id
		}
	}
}

// ForStrategy returns the generator configured by name.
func ForStrategy(name string) (Generator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "sequential":
		return Sequential{}, nil
	case "uuid":
		return UUID{}, nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", name)
	}
}
