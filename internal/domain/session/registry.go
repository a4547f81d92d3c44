package session

import (
	"sync"
	"time"

	"github.com/pkg/errors"
)

type registryEntry struct {
	state    *State
	lastSeen time.Time
}

// Registry owns the live session states of the process.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*registryEntry
	now     func() time.Time
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*registryEntry),
		now:     time.Now,
	}
}

// GetOrCreate returns the state for id, creating it and running init on first use.
// When init fails the state is closed and not registered. Every call marks the session as seen.
func (r *Registry) GetOrCreate(id string, init func(*State) error) (*State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry, ok := r.entries[id]; ok {
		entry.lastSeen = r.now()

		return entry.state, nil
	}

	st := NewState(id)
	if init != nil {
		if err := init(st); err != nil {
			st.Close()

			return nil, errors.Wrap(err, "failed to initialize session state")
		}
	}
	r.entries[id] = &registryEntry{state: st, lastSeen: r.now()}

	return st, nil
}

// Get returns the state for id if it exists.
func (r *Registry) Get(id string) (*State, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[id]
	if !ok {
		return nil, false
	}

	return entry.state, true
}

// Remove closes and forgets the state for id.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	entry, ok := r.entries[id]
	delete(r.entries, id)
	r.mu.Unlock()

	if ok {
		entry.state.Close()
	}
}

// Sweep closes the states not seen for longer than idle and returns how many were removed.
func (r *Registry) Sweep(idle time.Duration) int {
	cutoff := r.now().Add(-idle)

	r.mu.Lock()
	var expired []*State
	for id, entry := range r.entries {
		if entry.lastSeen.Before(cutoff) {
			expired = append(expired, entry.state)
			delete(r.entries, id)
		}
	}
	r.mu.Unlock()

	for _, st := range expired {
		st.Close()
	}

	return len(expired)
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}

// CloseAll closes every state.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	entries := r.entries
	r.entries = make(map[string]*registryEntry)
	r.mu.Unlock()

	for _, entry := range entries {
		entry.state.Close()
	}
}
