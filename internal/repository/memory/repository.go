package memory

import (
	"sync"
	"time"

	"github.com/omarshaarawi/gridiron/internal/models"
)

type Repository struct {
	snapshot *models.Snapshot
	mu       sync.RWMutex
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) SaveSnapshot(snapshot *models.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshot = snapshot
}

func (r *Repository) GetSnapshot() *models.Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot
}

// Stale reports whether there is no snapshot or it is older than ttl.
func (r *Repository) Stale(ttl time.Duration) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot == nil || time.Since(r.snapshot.LastUpdated) > ttl
}
