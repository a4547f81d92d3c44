package service

import "context"

// Analytics event names.
const (
	EventLogin          = "login"
	EventSignUp         = "sign_up"
	EventLogout         = "logout"
	EventSearch         = "search"
	EventAddBook        = "add_book"
	EventDeleteBook     = "delete_book"
	EventContactSubmit  = "contact_submit"
	EventSettingsChange = "settings_change"
)

// AnalyticsEvent is a single analytics record as published to the transport.
type AnalyticsEvent struct {
	RequestID  string         `json:"request_id,omitempty"`
	SessionID  string         `json:"session_id,omitempty"`
	UserID     string         `json:"user_id,omitempty"`
	Name       string         `json:"name"`
	Params     map[string]any `json:"params,omitempty"`
	OccurredAt int64          `json:"occurred_at"` // Unix milliseconds.
}

// AnalyticsService records analytics events. Calls are fire-and-forget and never fail the caller.
type AnalyticsService interface {
	// LogEvent records an event with optional parameters.
	LogEvent(ctx context.Context, name string, params map[string]any)

	// SetUserID attributes subsequent events of the session to a user. nil clears it.
	SetUserID(ctx context.Context, userID *string)
}
