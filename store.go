package secureownable

import (
	"maps"
	"sync"

	"github.com/particlecs/secureownable/types"
)

// EntryMetadata tags a stored signed payload with the operation type and
// action it executes, and whether it has been broadcast.
type EntryMetadata struct {
	Type        types.OperationType `json:"type"`
	Action      types.TxAction      `json:"action"`
	Broadcasted bool                `json:"broadcasted"`
}

// StoreEntry is a signed-but-possibly-unbroadcast meta-transaction held for
// a later actor (the broadcaster) to retrieve and submit.
type StoreEntry struct {
	TxID          string        `json:"txId"`
	SignedPayload string        `json:"signedPayload"`
	Metadata      EntryMetadata `json:"metadata"`
}

// PendingStore persists signed meta-transactions keyed by operation id.
// Semantics are last-write-wins per key, except that the Broadcasted flag is
// monotonic: once true it never reverts to false. Entries are never deleted.
type PendingStore interface {
	Store(txID string, signedPayload string, meta EntryMetadata) error
	List() (map[string]StoreEntry, error)
}

var _ PendingStore = (*InMemoryStore)(nil)

// InMemoryStore is a PendingStore backed by a map. Suitable for tests and
// single-process use; production deployments plug in their own key-value
// backed implementation.
type InMemoryStore struct {
	mu      sync.RWMutex
	entries map[string]StoreEntry
}

// NewInMemoryStore creates an empty InMemoryStore.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{entries: make(map[string]StoreEntry)}
}

// Store upserts the entry for txID. The Broadcasted flag only ever moves
// from false to true.
func (s *InMemoryStore) Store(txID string, signedPayload string, meta EntryMetadata) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.entries[txID]; ok && prev.Metadata.Broadcasted {
		meta.Broadcasted = true
	}

	s.entries[txID] = StoreEntry{
		TxID:          txID,
		SignedPayload: signedPayload,
		Metadata:      meta,
	}

	return nil
}

// List returns a copy of all entries keyed by operation id.
func (s *InMemoryStore) List() (map[string]StoreEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return maps.Clone(s.entries), nil
}
