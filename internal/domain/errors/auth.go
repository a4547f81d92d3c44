package errors

import (
	"fmt"
	"net/http"

	"portfolio/internal/errors"
)

// AuthErrorCode is the closed set of authentication failures exposed to callers.
type AuthErrorCode string

const (
	AuthInvalidCredentials  AuthErrorCode = "invalid-credentials"
	AuthTooManyRequests     AuthErrorCode = "too-many-requests"
	AuthEmailAlreadyInUse   AuthErrorCode = "email-already-in-use"
	AuthRequiresRecentLogin AuthErrorCode = "requires-recent-login"
	AuthGeneric             AuthErrorCode = "generic"
)

// Provider identifiers recognized by MapAuthErrorCode. Identity adapters report failures
// with these identifiers so that every backend shares one vocabulary.
const (
	ProviderCodeWrongPassword             = "auth/wrong-password"
	ProviderCodeInvalidCredential         = "auth/invalid-credential"
	ProviderCodeInvalidLoginCredentials   = "auth/invalid-login-credentials"
	ProviderCodeUserNotFound              = "auth/user-not-found"
	ProviderCodeInvalidEmail              = "auth/invalid-email"
	ProviderCodeTooManyRequests           = "auth/too-many-requests"
	ProviderCodeEmailAlreadyInUse         = "auth/email-already-in-use"
	ProviderCodeRequiresRecentLogin       = "auth/requires-recent-login"
	ProviderCodeWeakPassword              = "auth/weak-password"
	ProviderCodeUserDisabled              = "auth/user-disabled"
	ProviderCodeOperationNotAllowed       = "auth/operation-not-allowed"
	ProviderCodeNoCurrentUser             = "auth/no-current-user"
	ProviderCodeUnsupportedProvider       = "auth/unsupported-provider"
	ProviderCodeInternalError             = "auth/internal-error"
	ProviderCodeNetworkRequestFailed      = "auth/network-request-failed"
	ProviderCodeAccountExistsWithProvider = "auth/account-exists-with-different-credential"
)

var authCodes = map[string]AuthErrorCode{
	ProviderCodeWrongPassword:           AuthInvalidCredentials,
	ProviderCodeInvalidCredential:       AuthInvalidCredentials,
	ProviderCodeInvalidLoginCredentials: AuthInvalidCredentials,
	ProviderCodeUserNotFound:            AuthInvalidCredentials,
	ProviderCodeInvalidEmail:            AuthInvalidCredentials,
	ProviderCodeTooManyRequests:         AuthTooManyRequests,
	ProviderCodeEmailAlreadyInUse:       AuthEmailAlreadyInUse,
	ProviderCodeRequiresRecentLogin:     AuthRequiresRecentLogin,
}

// AuthProviderError is the failure reported by an identity adapter.
type AuthProviderError struct {
	Code    string
	Message string
}

// NewAuthProviderError creates a provider error with the given identifier.
func NewAuthProviderError(code, message string) *AuthProviderError {
	return &AuthProviderError{Code: code, Message: message}
}

func (e *AuthProviderError) Error() string {
	if e.Message == "" {
		return e.Code
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapAuthErrorCode maps a provider identifier to an AuthErrorCode. Unknown or empty
// identifiers collapse to AuthGeneric.
func MapAuthErrorCode(code string) AuthErrorCode {
	if mapped, ok := authCodes[code]; ok {
		return mapped
	}

	return AuthGeneric
}

// MapAuthError extracts the provider identifier from a raw failure and maps it.
func MapAuthError(raw any) AuthErrorCode {
	switch v := raw.(type) {
	case string:
		return MapAuthErrorCode(v)
	case error:
		var providerErr *AuthProviderError
		if errors.As(v, &providerErr) {
			return MapAuthErrorCode(providerErr.Code)
		}
	}

	return AuthGeneric
}

var authProjection = NewProjection(
	NewBaseError(http.StatusBadRequest, "AUTH_FAILED", "Authentication failed"),
	map[AuthErrorCode]AppError{
		AuthInvalidCredentials:  NewBaseError(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Email or password is incorrect"),
		AuthTooManyRequests:     NewBaseError(http.StatusTooManyRequests, "TOO_MANY_REQUESTS", "Too many attempts, try again later"),
		AuthEmailAlreadyInUse:   NewBaseError(http.StatusConflict, "EMAIL_ALREADY_IN_USE", "This email is already registered"),
		AuthRequiresRecentLogin: NewBaseError(http.StatusForbidden, "REQUIRES_RECENT_LOGIN", "Sign in again to continue"),
	},
)

// AuthAppError projects an AuthErrorCode onto the HTTP error vocabulary.
func AuthAppError(code AuthErrorCode) AppError {
	return authProjection.Project(code)
}
