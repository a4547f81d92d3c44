package session

import (
	"context"
	"sync"
	"time"

	"portfolio/internal/domain/entity"
)

// Credentials are the identity provider tokens of a signed-in session. They are opaque to
// everything but the identity adapter.
type Credentials struct {
	IDToken      string
	RefreshToken string
	ExpiresAt    time.Time
}

// State is the handle of one browser session.
type State struct {
	ID string

	// User is the application's auth snapshot. It has exactly one writer, the auth state binding.
	User *Cell[*entity.AuthUser]
	// Settings is the latest loaded settings snapshot, reset on sign-out.
	Settings *Cell[*entity.UserSettings]
	// AuthEvents is the identity adapter's change stream.
	AuthEvents *Cell[*entity.AuthUser]

	mu          sync.Mutex
	credentials *Credentials
	disposers   []func()
	closed      bool
}

// NewState creates the state of a new session.
func NewState(id string) *State {
	return &State{
		ID:         id,
		User:       NewCell[*entity.AuthUser](),
		Settings:   NewCell[*entity.UserSettings](),
		AuthEvents: NewCell[*entity.AuthUser](),
	}
}

// Credentials returns a copy of the stored provider credentials, or nil when signed out.
func (s *State) Credentials() *Credentials {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.credentials == nil {
		return nil
	}
	c := *s.credentials

	return &c
}

// SetCredentials replaces the provider credentials. A nil value clears them.
func (s *State) SetCredentials(c *Credentials) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c == nil {
		s.credentials = nil

		return
	}
	copied := *c
	s.credentials = &copied
}

// OnClose registers a function run when the session is closed. It runs immediately when the
// session is already closed.
func (s *State) OnClose(dispose func()) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		dispose()

		return
	}
	s.disposers = append(s.disposers, dispose)
	s.mu.Unlock()
}

// Close runs the registered disposers in reverse order and drops the credentials.
func (s *State) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return
	}
	s.closed = true
	disposers := s.disposers
	s.disposers = nil
	s.credentials = nil
	s.mu.Unlock()

	for i := len(disposers) - 1; i >= 0; i-- {
		disposers[i]()
	}
}

// Closed reports whether Close was called.
func (s *State) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closed
}

// CurrentUser returns the signed-in user of the session, or nil.
func (s *State) CurrentUser() *entity.AuthUser {
	return s.User.Value()
}

type stateKey struct{}

// WithState returns a new context carrying the session state.
func WithState(ctx context.Context, st *State) context.Context {
	return context.WithValue(ctx, stateKey{}, st)
}

// FromContext extracts the session state from ctx, or nil when there is none.
func FromContext(ctx context.Context) *State {
	st, _ := ctx.Value(stateKey{}).(*State)

	return st
}
