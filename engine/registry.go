package engine

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// ErrViewOwned is returned when a second view claims a dataset already being simulated
var ErrViewOwned = errors.New("dataset already owned by another view")

// Registry enforces exclusive ownership of node sets: one running simulation per dataset
type Registry struct {
	mu     sync.Mutex
	owners map[string]uuid.UUID
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{owners: make(map[string]uuid.UUID)}
}

// Claim records id as the owner of key; re-claiming by the same id succeeds
func (r *Registry) Claim(key string, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if owner, ok := r.owners[key]; ok && owner != id {
		return fmt.Errorf("claim %q by view %s: %w (owner %s)", key, id, ErrViewOwned, owner)
	}
	r.owners[key] = id
	return nil
}

// Release drops the claim if id still owns key
func (r *Registry) Release(key string, id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if owner, ok := r.owners[key]; ok && owner == id {
		delete(r.owners, key)
	}
}

// Owner returns the view owning key
func (r *Registry) Owner(key string) (uuid.UUID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.owners[key]
	return id, ok
}
