// Package entity contains the core business objects of the project.
package entity

// AuthMethod represents how a user proved their identity.
type AuthMethod string

const (
	// AuthMethodEmail indicates an email and password sign-in.
	AuthMethodEmail AuthMethod = "email"
	// AuthMethodGoogle indicates a Google federated sign-in.
	AuthMethodGoogle AuthMethod = "google"
	// AuthMethodApple indicates an Apple federated sign-in.
	AuthMethodApple AuthMethod = "apple"
	// AuthMethodOther covers any provider without a dedicated tag.
	AuthMethodOther AuthMethod = "other"
)

// Identity provider ids as reported by the identity backend.
const (
	ProviderIDPassword = "password"
	ProviderIDGoogle   = "google.com"
	ProviderIDApple    = "apple.com"
)

// String returns the string representation of the AuthMethod.
func (m AuthMethod) String() string {
	return string(m)
}

// IsValid checks if the AuthMethod is a valid value.
func (m AuthMethod) IsValid() bool {
	switch m {
	case AuthMethodEmail, AuthMethodGoogle, AuthMethodApple, AuthMethodOther:
		return true
	default:
		return false
	}
}

// ProviderID returns the identity backend provider id for federated methods, or "" when none applies.
func (m AuthMethod) ProviderID() string {
	switch m {
	case AuthMethodGoogle:
		return ProviderIDGoogle
	case AuthMethodApple:
		return ProviderIDApple
	case AuthMethodEmail:
		return ProviderIDPassword
	default:
		return ""
	}
}

// AuthMethodFromProviderID maps an identity backend provider id to an AuthMethod.
func AuthMethodFromProviderID(providerID string) AuthMethod {
	switch providerID {
	case ProviderIDPassword:
		return AuthMethodEmail
	case ProviderIDGoogle:
		return AuthMethodGoogle
	case ProviderIDApple:
		return AuthMethodApple
	default:
		return AuthMethodOther
	}
}

// AuthUser is the latest identity snapshot of a signed-in user.
type AuthUser struct {
	ID          string     `json:"id"`
	Email       *string    `json:"email,omitempty"`
	DisplayName *string    `json:"display_name,omitempty"`
	PhotoURL    *string    `json:"photo_url,omitempty"`
	Method      AuthMethod `json:"method"`
}
