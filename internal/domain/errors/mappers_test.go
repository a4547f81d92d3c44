package errors

import (
	"fmt"
	"net/http"
	"testing"

	"portfolio/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestMapAuthErrorCode(t *testing.T) {
	tests := []struct {
		code string
		want AuthErrorCode
	}{
		{"auth/wrong-password", AuthInvalidCredentials},
		{"auth/invalid-credential", AuthInvalidCredentials},
		{"auth/invalid-login-credentials", AuthInvalidCredentials},
		{"auth/user-not-found", AuthInvalidCredentials},
		{"auth/invalid-email", AuthInvalidCredentials},
		{"auth/too-many-requests", AuthTooManyRequests},
		{"auth/email-already-in-use", AuthEmailAlreadyInUse},
		{"auth/requires-recent-login", AuthRequiresRecentLogin},
		{"auth/weak-password", AuthGeneric},
		{"AUTH/WRONG-PASSWORD", AuthGeneric},
		{"anything-else", AuthGeneric},
		{"", AuthGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, MapAuthErrorCode(tt.code))
		})
	}
}

func TestMapAuthError(t *testing.T) {
	wrapped := errors.Wrap(NewAuthProviderError(ProviderCodeTooManyRequests, "slow down"), "sign in")

	tests := []struct {
		name string
		raw  any
		want AuthErrorCode
	}{
		{"provider error", NewAuthProviderError(ProviderCodeWrongPassword, ""), AuthInvalidCredentials},
		{"wrapped provider error", wrapped, AuthTooManyRequests},
		{"fmt wrapped provider error", fmt.Errorf("x: %w", NewAuthProviderError(ProviderCodeRequiresRecentLogin, "")), AuthRequiresRecentLogin},
		{"raw identifier", "auth/email-already-in-use", AuthEmailAlreadyInUse},
		{"plain error", errors.New("auth/wrong-password"), AuthGeneric},
		{"nil", nil, AuthGeneric},
		{"number", 42, AuthGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapAuthError(tt.raw))
		})
	}
}

func TestAuthProviderError_Error(t *testing.T) {
	assert.Equal(t, "auth/user-disabled", NewAuthProviderError(ProviderCodeUserDisabled, "").Error())
	assert.Equal(t, "auth/user-disabled: USER_DISABLED", NewAuthProviderError(ProviderCodeUserDisabled, "USER_DISABLED").Error())
}

func TestMapSettingsError(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want SettingsErrorCode
	}{
		{"permission denied", errors.New("Permission denied"), SettingsUnavailable},
		{"service unavailable", errors.New("rpc error: code = Unavailable"), SettingsUnavailable},
		{"network", errors.New("NETWORK timeout"), SettingsUnavailable},
		{"failed to fetch", errors.New("Failed to fetch"), SettingsUnavailable},
		{"random failure", errors.New("random failure"), SettingsGeneric},
		{"not an error", "not an error object", SettingsGeneric},
		{"nil", nil, SettingsGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapSettingsError(tt.raw))
		})
	}
}

func TestMapBooksError(t *testing.T) {
	for _, raw := range []any{errors.New("boom"), errors.New(""), "plain string", nil} {
		assert.Equal(t, BooksGeneric, MapBooksError(raw))
	}
}

func TestAppErrorProjection(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, AuthAppError(AuthInvalidCredentials).HTTPCode())
	assert.Equal(t, http.StatusTooManyRequests, AuthAppError(AuthTooManyRequests).HTTPCode())
	assert.Equal(t, http.StatusConflict, AuthAppError(AuthEmailAlreadyInUse).HTTPCode())
	assert.Equal(t, http.StatusForbidden, AuthAppError(AuthRequiresRecentLogin).HTTPCode())
	assert.Equal(t, http.StatusBadRequest, AuthAppError(AuthGeneric).HTTPCode())

	assert.Equal(t, http.StatusServiceUnavailable, SettingsAppError(SettingsUnavailable).HTTPCode())
	assert.Equal(t, http.StatusInternalServerError, SettingsAppError(SettingsGeneric).HTTPCode())
	assert.Equal(t, "BOOKS_FAILED", BooksAppError(BooksGeneric).ErrorCode())
}

func TestProjection_UnknownCodeUsesFallback(t *testing.T) {
	assert.Equal(t, "AUTH_FAILED", AuthAppError(AuthErrorCode("made-up")).ErrorCode())
	assert.Equal(t, "SETTINGS_FAILED", SettingsAppError(SettingsErrorCode("")).ErrorCode())
}

func TestBaseError_IsMatchesByCode(t *testing.T) {
	copied := NewBaseError(http.StatusUnauthorized, "UNAUTHENTICATED", "another message")
	wrapped := fmt.Errorf("guard: %w", ErrUnauthenticated)

	assert.ErrorIs(t, copied, ErrUnauthenticated)
	assert.ErrorIs(t, wrapped, ErrUnauthenticated)
	assert.NotErrorIs(t, ErrSessionMissing, ErrUnauthenticated)
}
