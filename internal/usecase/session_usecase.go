package usecase

import (
	"context"
	"time"

	"portfolio/internal/domain/session"
)

// SessionUsecase manages the per-browser session states.
type SessionUsecase interface {
	// Open returns the state of the session id, creating and binding it on first use.
	Open(ctx context.Context, id string) (*session.State, error)

	// Close tears the session state down.
	Close(id string)

	// Sweep tears down the sessions idle for longer than idle and returns how many were closed.
	Sweep(idle time.Duration) int
}
