// Package session holds the live trip draft of each planning session.
package session

import (
	"sync"
	"trip-planner-service/internal/domain"

	"github.com/google/uuid"
)

// Registry maps session ids to their single live draft.
type Registry struct {
	mu     sync.RWMutex
	drafts map[string]*domain.TripDraft
}

func NewRegistry() *Registry {
	return &Registry{drafts: make(map[string]*domain.TripDraft)}
}

// Start opens a session with an empty draft.
func (r *Registry) Start() (string, *domain.TripDraft) {
	id := uuid.NewString()
	d := domain.NewTripDraft()

	r.mu.Lock()
	r.drafts[id] = d
	r.mu.Unlock()

	return id, d
}

func (r *Registry) Get(id string) (*domain.TripDraft, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.drafts[id]
	return d, ok
}

// End resets the session's draft and forgets the session.
// It reports whether the session existed.
func (r *Registry) End(id string) bool {
	r.mu.Lock()
	d, ok := r.drafts[id]
	delete(r.drafts, id)
	r.mu.Unlock()

	if ok {
		d.Reset()
	}
	return ok
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.drafts)
}
