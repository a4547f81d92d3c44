package usecase

import (
	"context"

	"portfolio/internal/domain/entity"
)

// UpdateProfileInput represents the input for updating the profile of the signed-in user
type UpdateProfileInput struct {
	DisplayName string `json:"display_name"`
}

// UpdatePasswordInput represents the input for changing the password of the signed-in user
type UpdatePasswordInput struct {
	NewPassword string `json:"new_password"`
}

// ReauthenticateInput proves the identity of the signed-in user again. Password is used for
// email accounts, IDToken for federated ones.
type ReauthenticateInput struct {
	Method   entity.AuthMethod `json:"method"`
	Password string            `json:"password,omitempty"`
	IDToken  string            `json:"id_token,omitempty"`
}

// ProfileUsecase defines the account management use cases. The identity service already
// classifies its failures, so results are forwarded unchanged.
type ProfileUsecase interface {
	UpdateProfile(ctx context.Context, input UpdateProfileInput) AuthVoidResult
	UpdatePassword(ctx context.Context, input UpdatePasswordInput) AuthVoidResult
	Reauthenticate(ctx context.Context, input ReauthenticateInput) AuthVoidResult
	DeleteAccount(ctx context.Context) AuthVoidResult
}
