// Package service defines the interfaces of the external capabilities the use cases depend on.
package service

import (
	"context"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/result"
)

// AuthResult is the outcome of an account mutation that already carries its error classification.
type AuthResult = result.Result[result.Empty, domainerrors.AuthErrorCode]

// AuthStateHandler receives every auth state change. A nil user means signed out.
type AuthStateHandler func(user *entity.AuthUser)

// AuthService defines the identity provider operations. The session the operations act on is
// carried by ctx. Failures are reported as *errors.AuthProviderError values.
type AuthService interface {
	// SignInWithPassword signs in with an email and password.
	SignInWithPassword(ctx context.Context, email, password string) (*entity.AuthUser, error)

	// SignInWithProvider signs in with an ID token issued by a federated provider.
	SignInWithProvider(ctx context.Context, method entity.AuthMethod, idToken string) (*entity.AuthUser, error)

	// SignUp creates an email and password account and signs it in.
	SignUp(ctx context.Context, email, password, displayName string) (*entity.AuthUser, error)

	// SendPasswordReset sends a password reset email.
	SendPasswordReset(ctx context.Context, email string) error

	// SignOut ends the session's sign-in.
	SignOut(ctx context.Context) error

	// OnAuthStateChanged registers handler for auth state changes of the session and returns
	// a function that removes the registration.
	OnAuthStateChanged(ctx context.Context, handler AuthStateHandler) (unsubscribe func(), err error)

	UpdateDisplayName(ctx context.Context, displayName string) AuthResult
	UpdatePassword(ctx context.Context, newPassword string) AuthResult
	ReauthenticateWithPassword(ctx context.Context, password string) AuthResult
	ReauthenticateWithProvider(ctx context.Context, method entity.AuthMethod, idToken string) AuthResult
	DeleteAccount(ctx context.Context) AuthResult
}
