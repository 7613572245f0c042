package configuration

import (
	"fmt"
	"time"

	"github.com/cabinetry/backend/internal/domain/shared"
)

// DefaultHistoryLimit bounds a History created without an explicit limit
const DefaultHistoryLimit = 50

// Snapshot is an immutable past state of a configuration
type Snapshot struct {
	Label         string
	RecordedAt    time.Time
	configuration *CabinetConfiguration
}

// Configuration returns a copy of the recorded configuration
func (s Snapshot) Configuration() *CabinetConfiguration {
	return s.configuration.Copy()
}

// History keeps the most recent configuration snapshots, oldest first.
// It belongs to the editing session that records it; the server keeps no history.
// It is not safe for concurrent use.
type History struct {
	limit   int
	entries []Snapshot
}

// NewHistory creates a history holding at most limit snapshots
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit}
}

// Record stores a copy of cfg; the oldest snapshot is dropped once the limit is reached
func (h *History) Record(cfg *CabinetConfiguration, label string) {
	if cfg == nil {
		return
	}
	h.entries = append(h.entries, Snapshot{
		Label:         label,
		RecordedAt:    now(),
		configuration: cfg.Copy(),
	})
	if over := len(h.entries) - h.limit; over > 0 {
		h.entries = append([]Snapshot(nil), h.entries[over:]...)
	}
}

// Len returns the number of snapshots
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns the snapshots, oldest first
func (h *History) Entries() []Snapshot {
	out := make([]Snapshot, len(h.entries))
	copy(out, h.entries)
	return out
}

// Restore returns a new configuration copied from snapshot i with UpdatedAt refreshed
func (h *History) Restore(i int) (*CabinetConfiguration, error) {
	if i < 0 || i >= len(h.entries) {
		return nil, fmt.Errorf("history entry %d: %w", i, shared.ErrNotFound)
	}
	cfg := h.entries[i].configuration.Copy()
	cfg.touch()
	return cfg, nil
}
