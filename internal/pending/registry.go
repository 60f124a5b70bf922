// Package pending tracks transactions awaiting manual tag review. The
// registry is an explicit object handed to whoever needs it, keyed by
// transaction ID with a TTL expiry policy: entries silently lapse once
// their review window passes.
package pending

import (
	"sync"
	"time"

	"github.com/yog-singh/expense-tracker/internal/logging"
)

// Registry holds the set of transaction IDs currently open for review.
// Expired entries are swept lazily on access and eagerly via Sweep.
type Registry struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]time.Time
	logger  logging.Logger
	now     func() time.Time
}

// NewRegistry creates a Registry whose entries expire after ttl. A
// non-positive ttl falls back to one minute, the review window the tagging
// flow was built around.
func NewRegistry(ttl time.Duration, logger logging.Logger) *Registry {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Registry{
		ttl:     ttl,
		entries: make(map[string]time.Time),
		logger:  logger,
		now:     time.Now,
	}
}

// Add opens a review window for the given transaction ID. Re-adding an
// active ID restarts its window.
func (r *Registry) Add(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[id] = r.now().Add(r.ttl)
}

// Active reports whether the given transaction ID still has an open review
// window. An expired entry is removed on the way out.
func (r *Registry) Active(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	deadline, ok := r.entries[id]
	if !ok {
		return false
	}
	if r.now().After(deadline) {
		delete(r.entries, id)
		return false
	}
	return true
}

// Remove closes the review window for the given transaction ID.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
}

// Sweep drops all expired entries and returns how many were removed.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for id, deadline := range r.entries {
		if now.After(deadline) {
			delete(r.entries, id)
			removed++
		}
	}
	if removed > 0 {
		r.logger.Debug("Swept expired review entries",
			logging.Field{Key: "removed", Value: removed})
	}
	return removed
}

// CloseAll force-closes every open review window and returns how many
// there were.
func (r *Registry) CloseAll() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := len(r.entries)
	if count > 0 {
		r.logger.Debug("Force closing active review entries",
			logging.Field{Key: "count", Value: count})
	}
	r.entries = make(map[string]time.Time)
	return count
}

// Len returns the number of entries, including any not yet swept.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
