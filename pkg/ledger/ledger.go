// Package ledger implements the uniqueness ledger: a hash-indexed store
// recording every logo ever accepted, so no duplicate mark is emitted twice.
//
// The ledger is an injected dependency (the orchestrator takes any Ledger),
// with backends for different deployments:
//   - memory: mutex-guarded map for tests and single runs
//   - file: sharded JSON files for CLI usage
//   - redis: SETNX-based store for multi-instance deployments
//   - mongo: unique-index collection for durable global scope
//
// Insert is atomic insert-if-absent on every backend; ErrDuplicate signals
// the losing side of a race or a genuine collision.
package ledger

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrDuplicate is returned by Insert when the hash is already recorded.
var ErrDuplicate = errors.New("hash already in ledger")

// Entry records one accepted logo.
type Entry struct {
	Hash         string    `json:"hash" bson:"hash"`
	BrandName    string    `json:"brand_name" bson:"brand_name"`
	Algorithm    string    `json:"algorithm" bson:"algorithm"`
	Variant      int       `json:"variant" bson:"variant"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	QualityScore float64   `json:"quality_score" bson:"quality_score"`
}

// Ledger is the uniqueness contract consumed by the orchestrator.
type Ledger interface {
	// Contains reports whether hash was ever accepted.
	Contains(ctx context.Context, hash string) (bool, error)

	// Insert records an entry, failing with ErrDuplicate if the hash exists.
	// The check-and-set must be atomic per backend.
	Insert(ctx context.Context, e Entry) error

	// Close releases backend resources.
	Close() error
}

// Memory is the in-process ledger backend.
type Memory struct {
	mu      sync.Mutex
	entries map[string]Entry
}

// NewMemory creates an empty in-memory ledger.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]Entry)}
}

// Contains reports whether hash is recorded.
func (m *Memory) Contains(_ context.Context, hash string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.entries[hash]
	return ok, nil
}

// Insert records e if its hash is new.
func (m *Memory) Insert(_ context.Context, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[e.Hash]; ok {
		return ErrDuplicate
	}
	m.entries[e.Hash] = e
	return nil
}

// Len returns the number of recorded entries.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Close does nothing for the memory backend.
func (m *Memory) Close() error {
	return nil
}

// Ensure Memory implements Ledger.
var _ Ledger = (*Memory)(nil)
