package firebase

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// idTokenClaims are the Firebase ID token claims the adapter reads. The token was just issued
// by the identity backend, so its signature is not verified here.
type idTokenClaims struct {
	jwt.RegisteredClaims

	AuthTime int64  `json:"auth_time"`
	Email    string `json:"email,omitempty"`
	Name     string `json:"name,omitempty"`
	Picture  string `json:"picture,omitempty"`
	Firebase struct {
		SignInProvider string `json:"sign_in_provider"`
	} `json:"firebase"`
}

func parseIDToken(token string) (*idTokenClaims, error) {
	claims := &idTokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, errors.Wrap(err, "failed to parse id token")
	}

	return claims, nil
}

// expiresAt returns the token expiry, or fallback when the token carries none.
func (c *idTokenClaims) expiresAt(fallback time.Time) time.Time {
	if c.ExpiresAt == nil {
		return fallback
	}

	return c.ExpiresAt.Time
}

// signedInAt returns when the user last proved their identity.
func (c *idTokenClaims) signedInAt() time.Time {
	if c.AuthTime > 0 {
		return time.Unix(c.AuthTime, 0)
	}
	if c.IssuedAt != nil {
		return c.IssuedAt.Time
	}

	return time.Time{}
}
