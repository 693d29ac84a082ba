// Package store persists generated maps.
package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"mapgen/internal/terrain"
)

// ErrNotFound is returned when no map is stored under an id.
var ErrNotFound = errors.New("store: map not found")

// Record is one stored map with the parameters it was generated from.
type Record struct {
	ID        string
	Seed      string
	Size      int
	Walkers   int
	Steps     int
	Snapshot  terrain.Snapshot
	CreatedAt time.Time
}

// Store saves and loads map records.
type Store interface {
	Save(ctx context.Context, rec Record) error
	Get(ctx context.Context, id string) (Record, error)
	// List returns up to limit records, newest first. limit <= 0 means all.
	List(ctx context.Context, limit int) ([]Record, error)
}

// NewRecord builds a record for a map generated with cfg.
func NewRecord(id string, cfg terrain.Config, m *terrain.Map) Record {
	return Record{
		ID:        id,
		Seed:      cfg.Seed,
		Size:      cfg.MapSize,
		Walkers:   cfg.Walkers,
		Steps:     cfg.Steps,
		Snapshot:  m.Snapshot(),
		CreatedAt: time.Now().UTC(),
	}
}

// MapID derives a stable id from the parameters that shape a map, so equal
// requests address the same record.
func MapID(cfg terrain.Config) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s\x00%d\x00%d\x00%d", cfg.Seed, cfg.MapSize, cfg.Walkers, cfg.Steps)))
	return hex.EncodeToString(sum[:8])
}
