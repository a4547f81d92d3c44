// Package firebase implements the identity provider contract on Firebase Authentication.
package firebase

import (
	"context"
	"log/slog"
	"time"

	"portfolio/config"
	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/result"
	"portfolio/internal/domain/service"
	"portfolio/internal/domain/session"
	firebaseapp "portfolio/internal/infra/firebase"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// recentLoginWindow bounds how long after sign-in sensitive account changes are allowed.
	recentLoginWindow = 5 * time.Minute
	defaultTokenTTL   = time.Hour

	providerCodeUserMismatch = "auth/user-mismatch"
)

// adminAPI is the subset of the Firebase admin auth client the adapter uses.
type adminAPI interface {
	DeleteUser(ctx context.Context, uid string) error
}

// AuthServiceParams holds dependencies for the Firebase auth service, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Config *config.Config
	App    *firebaseapp.App
	Logger *slog.Logger
}

// authService keeps provider credentials in the session state found in ctx and reports every
// sign-in and sign-out on the session's AuthEvents cell.
type authService struct {
	api    identityAPI
	admin  adminAPI
	logger *slog.Logger
	now    func() time.Time
}

// NewAuthService creates the Firebase-backed identity service.
func NewAuthService(params AuthServiceParams) (service.AuthService, error) {
	ctx := context.Background()

	api, err := newToolkitClient(ctx, params.Config.Firebase)
	if err != nil {
		return nil, err
	}

	admin, err := params.App.Auth(ctx)
	if err != nil {
		return nil, err
	}

	return newAuthService(api, admin, params.Logger), nil
}

func newAuthService(api identityAPI, admin adminAPI, logger *slog.Logger) *authService {
	return &authService{
		api:    api,
		admin:  admin,
		logger: logger,
		now:    time.Now,
	}
}

func (s *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// SignInWithPassword signs in with an email and password.
func (s *authService) SignInWithPassword(ctx context.Context, email, password string) (*entity.AuthUser, error) {
	st, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}

	acct, err := s.api.signInWithPassword(ctx, email, password)
	if err != nil {
		return nil, translateError(err)
	}

	return s.establish(st, acct, entity.AuthMethodEmail)
}

// SignInWithProvider signs in with a federated provider ID token.
func (s *authService) SignInWithProvider(ctx context.Context, method entity.AuthMethod, idToken string) (*entity.AuthUser, error) {
	st, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}

	providerID, err := federatedProviderID(method)
	if err != nil {
		return nil, err
	}

	acct, err := s.api.signInWithIDP(ctx, providerID, idToken)
	if err != nil {
		return nil, translateError(err)
	}

	return s.establish(st, acct, method)
}

// SignUp creates an email and password account and signs it in.
func (s *authService) SignUp(ctx context.Context, email, password, displayName string) (*entity.AuthUser, error) {
	st, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}

	acct, err := s.api.signUp(ctx, email, password, displayName)
	if err != nil {
		return nil, translateError(err)
	}

	return s.establish(st, acct, entity.AuthMethodEmail)
}

// SendPasswordReset sends a password reset email.
func (s *authService) SendPasswordReset(ctx context.Context, email string) error {
	return translateError(s.api.sendPasswordReset(ctx, email))
}

// SignOut forgets the credentials of this session only. Other devices of the user stay signed in.
func (s *authService) SignOut(ctx context.Context) error {
	st := session.FromContext(ctx)
	if st == nil {
		return nil
	}

	if st.Credentials() == nil && st.AuthEvents.Value() == nil {
		return nil
	}
	s.clear(st)

	return nil
}

// OnAuthStateChanged registers handler on the session's auth events. A session that never
// signed in reports a nil user immediately.
func (s *authService) OnAuthStateChanged(ctx context.Context, handler service.AuthStateHandler) (func(), error) {
	st, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}

	if _, ok := st.AuthEvents.Get(); !ok {
		handler(nil)
	}

	return st.AuthEvents.Subscribe(handler), nil
}

// UpdateDisplayName changes the signed-in user's display name.
func (s *authService) UpdateDisplayName(ctx context.Context, displayName string) service.AuthResult {
	return result.ExecuteVoid(ctx, func(ctx context.Context) error {
		return s.updateAccount(ctx, accountUpdate{DisplayName: displayName})
	}, domainerrors.MapAuthError)
}

// UpdatePassword changes the signed-in user's password.
func (s *authService) UpdatePassword(ctx context.Context, newPassword string) service.AuthResult {
	return result.ExecuteVoid(ctx, func(ctx context.Context) error {
		return s.updateAccount(ctx, accountUpdate{Password: newPassword})
	}, domainerrors.MapAuthError)
}

// ReauthenticateWithPassword proves the signed-in user's identity again with their password.
func (s *authService) ReauthenticateWithPassword(ctx context.Context, password string) service.AuthResult {
	return result.ExecuteVoid(ctx, func(ctx context.Context) error {
		st, user, err := s.signedIn(ctx, false)
		if err != nil {
			return err
		}
		if user.Email == nil {
			return domainerrors.NewAuthProviderError(domainerrors.ProviderCodeInvalidCredential, "account has no email")
		}

		acct, err := s.api.signInWithPassword(ctx, *user.Email, password)
		if err != nil {
			return translateError(err)
		}

		return s.reestablish(st, user, acct, entity.AuthMethodEmail)
	}, domainerrors.MapAuthError)
}

// ReauthenticateWithProvider proves the signed-in user's identity again with a provider ID token.
func (s *authService) ReauthenticateWithProvider(ctx context.Context, method entity.AuthMethod, idToken string) service.AuthResult {
	return result.ExecuteVoid(ctx, func(ctx context.Context) error {
		st, user, err := s.signedIn(ctx, false)
		if err != nil {
			return err
		}

		providerID, err := federatedProviderID(method)
		if err != nil {
			return err
		}

		acct, err := s.api.signInWithIDP(ctx, providerID, idToken)
		if err != nil {
			return translateError(err)
		}

		return s.reestablish(st, user, acct, method)
	}, domainerrors.MapAuthError)
}

// DeleteAccount deletes the signed-in user. It requires a recent sign-in.
func (s *authService) DeleteAccount(ctx context.Context) service.AuthResult {
	return result.ExecuteVoid(ctx, func(ctx context.Context) error {
		st, user, err := s.signedIn(ctx, true)
		if err != nil {
			return err
		}

		if err := s.admin.DeleteUser(ctx, user.ID); err != nil {
			if auth.IsUserNotFound(err) {
				return domainerrors.NewAuthProviderError(domainerrors.ProviderCodeUserNotFound, err.Error())
			}

			return translateError(err)
		}

		s.log(ctx).Info("Account deleted", slog.String("user_id", user.ID))
		s.clear(st)

		return nil
	}, domainerrors.MapAuthError)
}

func (s *authService) updateAccount(ctx context.Context, update accountUpdate) error {
	st, user, err := s.signedIn(ctx, false)
	if err != nil {
		return err
	}

	acct, err := s.api.updateAccount(ctx, st.Credentials().IDToken, update)
	if err != nil {
		return translateError(err)
	}

	updated := *user
	if update.DisplayName != "" {
		updated.DisplayName = optional(update.DisplayName)
	}
	if acct.IDToken == "" {
		st.AuthEvents.Set(&updated)

		return nil
	}

	claims, err := parseIDToken(acct.IDToken)
	if err != nil {
		return domainerrors.NewAuthProviderError(domainerrors.ProviderCodeInternalError, err.Error())
	}
	s.storeCredentials(st, acct, claims)
	st.AuthEvents.Set(&updated)

	return nil
}

// signedIn returns the session and user of a signed-in request. With recent set, it also
// requires the last sign-in to be within recentLoginWindow.
func (s *authService) signedIn(ctx context.Context, recent bool) (*session.State, *entity.AuthUser, error) {
	st, err := sessionFrom(ctx)
	if err != nil {
		return nil, nil, err
	}

	creds := st.Credentials()
	user := st.AuthEvents.Value()
	if creds == nil || user == nil {
		return nil, nil, domainerrors.NewAuthProviderError(domainerrors.ProviderCodeNoCurrentUser, "")
	}

	now := s.now()
	if !creds.ExpiresAt.IsZero() && now.After(creds.ExpiresAt) {
		if creds, user, err = s.refresh(ctx, st, creds, user); err != nil {
			return nil, nil, err
		}
	}

	if recent {
		claims, err := parseIDToken(creds.IDToken)
		if err != nil {
			return nil, nil, domainerrors.NewAuthProviderError(domainerrors.ProviderCodeInternalError, err.Error())
		}
		if now.Sub(claims.signedInAt()) > recentLoginWindow {
			return nil, nil, domainerrors.NewAuthProviderError(domainerrors.ProviderCodeRequiresRecentLogin, "")
		}
	}

	return st, user, nil
}

// refresh exchanges the session's refresh token for a new ID token and announces the refreshed user.
// A rejected exchange leaves the session untouched and asks for a new sign-in.
func (s *authService) refresh(ctx context.Context, st *session.State, creds *session.Credentials, user *entity.AuthUser) (*session.Credentials, *entity.AuthUser, error) {
	if creds.RefreshToken == "" {
		return nil, nil, domainerrors.NewAuthProviderError(domainerrors.ProviderCodeRequiresRecentLogin, "credential expired")
	}

	acct, err := s.api.refreshIDToken(ctx, creds.RefreshToken)
	if err != nil {
		s.log(ctx).Warn("ID token refresh rejected", slog.String("user_id", user.ID), slog.Any("error", err))

		return nil, nil, domainerrors.NewAuthProviderError(domainerrors.ProviderCodeRequiresRecentLogin, err.Error())
	}
	if acct.LocalID != "" && acct.LocalID != user.ID {
		return nil, nil, domainerrors.NewAuthProviderError(providerCodeUserMismatch, "")
	}

	claims, err := parseIDToken(acct.IDToken)
	if err != nil {
		return nil, nil, domainerrors.NewAuthProviderError(domainerrors.ProviderCodeInternalError, err.Error())
	}
	if acct.RefreshToken == "" {
		acct.RefreshToken = creds.RefreshToken
	}

	refreshed := *user
	if claims.Email != "" {
		refreshed.Email = optional(claims.Email)
	}
	if claims.Name != "" {
		refreshed.DisplayName = optional(claims.Name)
	}
	if claims.Picture != "" {
		refreshed.PhotoURL = optional(claims.Picture)
	}

	s.storeCredentials(st, acct, claims)
	st.AuthEvents.Set(&refreshed)

	return st.Credentials(), &refreshed, nil
}

// establish stores the credentials of a fresh sign-in and announces the user.
func (s *authService) establish(st *session.State, acct *account, method entity.AuthMethod) (*entity.AuthUser, error) {
	claims, err := parseIDToken(acct.IDToken)
	if err != nil {
		return nil, domainerrors.NewAuthProviderError(domainerrors.ProviderCodeInternalError, err.Error())
	}

	if claims.Firebase.SignInProvider != "" {
		method = entity.AuthMethodFromProviderID(claims.Firebase.SignInProvider)
	}

	user := &entity.AuthUser{
		ID:          acct.LocalID,
		Email:       optional(firstNonEmpty(acct.Email, claims.Email)),
		DisplayName: optional(firstNonEmpty(acct.DisplayName, claims.Name)),
		PhotoURL:    optional(firstNonEmpty(acct.PhotoURL, claims.Picture)),
		Method:      method,
	}

	s.storeCredentials(st, acct, claims)
	st.AuthEvents.Set(user)

	return user, nil
}

// reestablish refreshes the credentials of the signed-in user after a new proof of identity.
func (s *authService) reestablish(st *session.State, user *entity.AuthUser, acct *account, method entity.AuthMethod) error {
	if acct.LocalID != user.ID {
		return domainerrors.NewAuthProviderError(providerCodeUserMismatch, "")
	}

	_, err := s.establish(st, acct, method)

	return err
}

func (s *authService) storeCredentials(st *session.State, acct *account, claims *idTokenClaims) {
	st.SetCredentials(&session.Credentials{
		IDToken:      acct.IDToken,
		RefreshToken: acct.RefreshToken,
		ExpiresAt:    claims.expiresAt(s.now().Add(defaultTokenTTL)),
	})
}

func (s *authService) clear(st *session.State) {
	st.SetCredentials(nil)
	st.AuthEvents.Set(nil)
}

func sessionFrom(ctx context.Context) (*session.State, error) {
	st := session.FromContext(ctx)
	if st == nil {
		return nil, errors.WithStack(domainerrors.NewAuthProviderError(domainerrors.ProviderCodeNoCurrentUser, "no session"))
	}

	return st, nil
}

func federatedProviderID(method entity.AuthMethod) (string, error) {
	switch method {
	case entity.AuthMethodGoogle, entity.AuthMethodApple:
		return method.ProviderID(), nil
	default:
		return "", domainerrors.NewAuthProviderError(domainerrors.ProviderCodeUnsupportedProvider, method.String())
	}
}

func optional(v string) *string {
	if v == "" {
		return nil
	}

	return &v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
