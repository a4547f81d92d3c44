package firebase

import (
	"net"
	"strings"

	domainerrors "portfolio/internal/domain/errors"

	"github.com/pkg/errors"
	"google.golang.org/api/googleapi"
)

// backendCodes maps Identity Toolkit error messages to provider identifiers.
var backendCodes = map[string]string{
	"EMAIL_NOT_FOUND":                  domainerrors.ProviderCodeUserNotFound,
	"INVALID_PASSWORD":                 domainerrors.ProviderCodeWrongPassword,
	"INVALID_LOGIN_CREDENTIALS":        domainerrors.ProviderCodeInvalidLoginCredentials,
	"INVALID_EMAIL":                    domainerrors.ProviderCodeInvalidEmail,
	"MISSING_PASSWORD":                 domainerrors.ProviderCodeWrongPassword,
	"USER_DISABLED":                    domainerrors.ProviderCodeUserDisabled,
	"TOO_MANY_ATTEMPTS_TRY_LATER":      domainerrors.ProviderCodeTooManyRequests,
	"EMAIL_EXISTS":                     domainerrors.ProviderCodeEmailAlreadyInUse,
	"WEAK_PASSWORD":                    domainerrors.ProviderCodeWeakPassword,
	"CREDENTIAL_TOO_OLD_LOGIN_AGAIN":   domainerrors.ProviderCodeRequiresRecentLogin,
	"TOKEN_EXPIRED":                    domainerrors.ProviderCodeRequiresRecentLogin,
	"INVALID_ID_TOKEN":                 domainerrors.ProviderCodeRequiresRecentLogin,
	"INVALID_IDP_RESPONSE":             domainerrors.ProviderCodeInvalidCredential,
	"OPERATION_NOT_ALLOWED":            domainerrors.ProviderCodeOperationNotAllowed,
	"FEDERATED_USER_ID_ALREADY_LINKED": domainerrors.ProviderCodeAccountExistsWithProvider,
}

// translateError converts a backend failure into an *AuthProviderError.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var providerErr *domainerrors.AuthProviderError
	if errors.As(err, &providerErr) {
		return providerErr
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return fromBackendMessage(apiErr.Message)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return domainerrors.NewAuthProviderError(domainerrors.ProviderCodeNetworkRequestFailed, err.Error())
	}

	return fromBackendMessage(err.Error())
}

// fromBackendMessage parses messages such as "WEAK_PASSWORD : Password should be at least 6 characters".
func fromBackendMessage(message string) *domainerrors.AuthProviderError {
	reason, detail, _ := strings.Cut(message, ":")
	reason = strings.TrimSpace(reason)

	code, ok := backendCodes[reason]
	if !ok {
		return domainerrors.NewAuthProviderError(domainerrors.ProviderCodeInternalError, message)
	}

	return domainerrors.NewAuthProviderError(code, strings.TrimSpace(detail))
}
