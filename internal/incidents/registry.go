package incidents

import (
	"errors"
	"sync"

	"modbot/internal/models"
)

// ErrIncidentNotFound is returned by Handle when no open incident matches the
// given key. A resolver seeing this error must treat the case as already closed.
var ErrIncidentNotFound = errors.New("incident not found")

// Registry holds the open moderation cases, keyed by (chat_id, message_id).
// All methods are safe for concurrent use; Handle is the sole mutation point of
// a resolution and claims an incident atomically, so of two racing decision
// events exactly one wins the claim.
type Registry struct {
	mu   sync.Mutex
	open map[models.IncidentKey]models.Incident
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		open: make(map[models.IncidentKey]models.Incident),
	}
}

// Append adds an incident to the registry. If an incident with the same key is
// already open the stored one is kept untouched and Append reports false.
func (r *Registry) Append(incident models.Incident) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := incident.Key()
	if _, exists := r.open[key]; exists {
		return false
	}
	r.open[key] = incident
	return true
}

// Contains reports whether an open incident matches the key of the given
// incident. The admin channel message id takes no part in the match.
func (r *Registry) Contains(incident models.Incident) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.open[incident.Key()]
	return exists
}

// Handle removes and returns the open incident matching the key of the given
// incident. The returned value carries the stored admin_channel_message_id,
// which a bare lookup key lacks. Check and removal happen under one lock.
func (r *Registry) Handle(incident models.Incident) (models.Incident, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := incident.Key()
	stored, exists := r.open[key]
	if !exists {
		return models.Incident{}, ErrIncidentNotFound
	}
	delete(r.open, key)
	return stored, nil
}

// Len returns the number of open incidents.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.open)
}

// Snapshot returns a copy of the open incidents in no particular order.
func (r *Registry) Snapshot() []models.Incident {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Incident, 0, len(r.open))
	for _, incident := range r.open {
		out = append(out, incident)
	}
	return out
}
