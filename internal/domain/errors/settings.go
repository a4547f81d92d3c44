package errors

import (
	"net/http"
	"strings"
)

// SettingsErrorCode is the closed set of settings storage failures.
type SettingsErrorCode string

const (
	SettingsUnavailable SettingsErrorCode = "unavailable"
	SettingsGeneric     SettingsErrorCode = "generic"
)

var unavailablePatterns = []string{"permission", "unavailable", "network", "failed to fetch"}

// MapSettingsError classifies a raw failure by its message. Values that are not errors are generic.
func MapSettingsError(raw any) SettingsErrorCode {
	err, ok := raw.(error)
	if !ok || err == nil {
		return SettingsGeneric
	}

	message := strings.ToLower(err.Error())
	for _, pattern := range unavailablePatterns {
		if strings.Contains(message, pattern) {
			return SettingsUnavailable
		}
	}

	return SettingsGeneric
}

var settingsProjection = NewProjection(
	NewBaseError(http.StatusInternalServerError, "SETTINGS_FAILED", "Settings could not be processed"),
	map[SettingsErrorCode]AppError{
		SettingsUnavailable: NewBaseError(http.StatusServiceUnavailable, "SETTINGS_UNAVAILABLE", "Settings are temporarily unavailable"),
	},
)

// SettingsAppError projects a SettingsErrorCode onto the HTTP error vocabulary.
func SettingsAppError(code SettingsErrorCode) AppError {
	return settingsProjection.Project(code)
}
