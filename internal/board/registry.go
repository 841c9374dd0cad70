package board

import (
	"fmt"
	"sync"
)

// Registry holds all registered maps.
type Registry struct {
	mu   sync.RWMutex
	maps map[string]*Map
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{maps: make(map[string]*Map)}
}

// Register adds a map. Panics on duplicate ids.
func (r *Registry) Register(m *Map) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.maps[m.ID]; exists {
		panic(fmt.Sprintf("map %q already registered", m.ID))
	}
	r.maps[m.ID] = m
}

// Get returns a map by id.
func (r *Registry) Get(id string) (*Map, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.maps[id]
	return m, ok
}

// IDs returns the ids of all registered maps.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.maps))
	for id := range r.maps {
		ids = append(ids, id)
	}
	return ids
}
