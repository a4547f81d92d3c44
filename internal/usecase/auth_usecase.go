package usecase

import (
	"context"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/result"
	"portfolio/internal/domain/service"
)

// AuthUserResult is the outcome of a sign-in or sign-up.
type AuthUserResult = result.Result[*entity.AuthUser, domainerrors.AuthErrorCode]

// AuthVoidResult is the outcome of an auth operation without a payload.
type AuthVoidResult = result.Result[result.Empty, domainerrors.AuthErrorCode]

// SignInInput represents the input for an email and password sign-in
type SignInInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInWithProviderInput represents the input for a federated sign-in
type SignInWithProviderInput struct {
	Method  entity.AuthMethod `json:"method"`
	IDToken string            `json:"id_token"`
}

// SignUpInput represents the input for creating an account
type SignUpInput struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// ResetPasswordInput represents the input for a password reset request
type ResetPasswordInput struct {
	Email string `json:"email"`
}

// Subscription is the handle of an auth state registration.
type Subscription interface {
	// Unsubscribe removes the registration. Calling it more than once is a no-op.
	Unsubscribe()
}

// AuthUsecase defines the interface for sign-in related use cases
type AuthUsecase interface {
	SignIn(ctx context.Context, input SignInInput) AuthUserResult
	SignInWithProvider(ctx context.Context, input SignInWithProviderInput) AuthUserResult
	SignUp(ctx context.Context, input SignUpInput) AuthUserResult
	ResetPassword(ctx context.Context, input ResetPasswordInput) AuthVoidResult
	SignOut(ctx context.Context) AuthVoidResult

	// SubscribeAuthState registers handler for auth state changes of the session in ctx.
	SubscribeAuthState(ctx context.Context, handler service.AuthStateHandler) (Subscription, error)
}
