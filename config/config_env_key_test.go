package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"session": map[string]any{
			"cookieName":   "portfolio_session",
			"cookieSecure": false,
			"idleTimeout":  "30m",
		},
		"storage": map[string]any{
			"provider":           "firestore",
			"slowQueryThreshold": "200ms",
		},
		"books": map[string]any{
			"defaultPageSize": 20,
		},
		"site": map[string]any{
			"defaultLocale": "en",
		},
		"firebase": map[string]any{
			"apiKey": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "SESSION_COOKIENAME", want: "session.cookieName"},
		{envKey: "SESSION_COOKIESECURE", want: "session.cookieSecure"},
		{envKey: "SESSION_IDLETIMEOUT", want: "session.idleTimeout"},
		{envKey: "STORAGE_SLOWQUERYTHRESHOLD", want: "storage.slowQueryThreshold"},
		{envKey: "BOOKS_DEFAULTPAGESIZE", want: "books.defaultPageSize"},
		{envKey: "SITE_DEFAULTLOCALE", want: "site.defaultLocale"},
		{envKey: "FIREBASE_APIKEY", want: "firebase.apiKey"},
		{envKey: "CONTACT_INBOX", want: "contact.inbox"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}
