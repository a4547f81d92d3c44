// Package session holds the per-browser-session state shared by the requests of one visitor.
package session

import "sync"

// Cell is a single-writer, multi-reader broadcast value. Readers observe the latest value
// with Get or register a handler with Subscribe. Handlers run synchronously on Set.
type Cell[T any] struct {
	mu     sync.RWMutex
	value  T
	set    bool
	nextID int
	subs   map[int]func(T)
}

// NewCell returns an empty cell.
func NewCell[T any]() *Cell[T] {
	return &Cell[T]{subs: make(map[int]func(T))}
}

// Get returns the latest value and whether a value was ever set.
func (c *Cell[T]) Get() (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.value, c.set
}

// Value returns the latest value, or the zero value when none was set.
func (c *Cell[T]) Value() T {
	v, _ := c.Get()

	return v
}

// Set stores v and notifies every subscriber.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	c.value = v
	c.set = true
	handlers := make([]func(T), 0, len(c.subs))
	for _, fn := range c.subs {
		handlers = append(handlers, fn)
	}
	c.mu.Unlock()

	for _, fn := range handlers {
		fn(v)
	}
}

// Reset returns the cell to its empty state without notifying subscribers.
func (c *Cell[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	c.value = zero
	c.set = false
}

// Subscribe registers fn and replays the current value to it when one is set.
// The returned function removes the registration and is safe to call more than once.
func (c *Cell[T]) Subscribe(fn func(T)) (dispose func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	value, set := c.value, c.set
	c.mu.Unlock()

	if set {
		fn(value)
	}

	var once sync.Once

	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			c.mu.Unlock()
		})
	}
}

// Subscribers returns the number of active registrations.
func (c *Cell[T]) Subscribers() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.subs)
}
