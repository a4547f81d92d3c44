package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/result"
	"portfolio/internal/domain/service"
	"portfolio/internal/domain/session"
	mockService "portfolio/internal/mocks/service"
	mockUsecase "portfolio/internal/mocks/usecase"
	"portfolio/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAuthHandler(t *testing.T) (*AuthHandler, *mockUsecase.MockAuthUsecase, *mockService.MockAnalyticsService, *fakeSessions) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	analytics := mockService.NewMockAnalyticsService(t)
	sessions := &fakeSessions{}

	return &AuthHandler{
		authUC:    authUC,
		analytics: analytics,
		sessions:  sessions,
		validator: testValidator(),
		logger:    testLogger(),
	}, authUC, analytics, sessions
}

func TestAuthHandler_SignIn(t *testing.T) {
	h, authUC, analytics, sessions := newTestAuthHandler(t)
	user := &entity.AuthUser{ID: "u1", Method: entity.AuthMethodEmail}

	authUC.EXPECT().SignIn(mock.Anything, usecase.SignInInput{Email: "ada@example.com", Password: "secret"}).
		Return(result.Ok[*entity.AuthUser, domainerrors.AuthErrorCode](user))
	analytics.EXPECT().LogEvent(mock.Anything, service.EventLogin, map[string]any{"method": "email"}).Once()

	c, rec := newContext(http.MethodPost, "/auth/sign-in", `{"email":"ada@example.com","password":"secret"}`, session.NewState("s1"))
	require.NoError(t, h.SignIn(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	res := decodeResult(t, rec)
	assert.True(t, res.Success)

	var got entity.AuthUser
	require.NoError(t, json.Unmarshal(res.Data, &got))
	assert.Equal(t, "u1", got.ID)
	assert.Equal(t, 1, sessions.renewed)
}

func TestAuthHandler_SignIn_Failure(t *testing.T) {
	h, authUC, _, sessions := newTestAuthHandler(t)

	authUC.EXPECT().SignIn(mock.Anything, mock.Anything).
		Return(result.Fail[*entity.AuthUser](domainerrors.AuthInvalidCredentials))

	c, rec := newContext(http.MethodPost, "/auth/sign-in", `{"email":"ada@example.com","password":"wrong"}`, session.NewState("s1"))
	require.NoError(t, h.SignIn(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
	assert.Empty(t, env.Error.Details)
	assert.Zero(t, sessions.renewed)
}

func TestAuthHandler_SignIn_Validation(t *testing.T) {
	tests := []struct {
		name     string
		language string
		want     string
	}{
		{name: "english", language: "", want: "email must be a valid email address"},
		{name: "spanish", language: "es-MX,es;q=0.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, _, _ := newTestAuthHandler(t)

			c, rec := newContext(http.MethodPost, "/auth/sign-in", `{"email":"nope","password":"x"}`, session.NewState("s1"))
			if tt.language != "" {
				c.Request().Header.Set("Accept-Language", tt.language)
			}
			require.NoError(t, h.SignIn(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			fields := fieldErrors(t, rec)
			require.Contains(t, fields, "email")
			if tt.want != "" {
				assert.Equal(t, tt.want, fields["email"])
			} else {
				assert.NotEqual(t, "email must be a valid email address", fields["email"])
			}
		})
	}
}

func TestAuthHandler_SignUp_EmailInUse(t *testing.T) {
	h, authUC, _, sessions := newTestAuthHandler(t)

	authUC.EXPECT().SignUp(mock.Anything, usecase.SignUpInput{Email: "ada@example.com", Password: "secret1", DisplayName: "Ada"}).
		Return(result.Fail[*entity.AuthUser](domainerrors.AuthEmailAlreadyInUse))

	c, rec := newContext(http.MethodPost, "/auth/sign-up", `{"email":"ada@example.com","password":"secret1","display_name":"Ada"}`, session.NewState("s1"))
	require.NoError(t, h.SignUp(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "EMAIL_ALREADY_IN_USE", env.Error.Code)
	assert.JSONEq(t, `{"success":false,"error":"email-already-in-use"}`, string(env.Error.Details))
	assert.Zero(t, sessions.renewed)
}

func TestAuthHandler_SignInWithProvider(t *testing.T) {
	h, authUC, analytics, sessions := newTestAuthHandler(t)
	user := &entity.AuthUser{ID: "u2", Method: entity.AuthMethodGoogle}

	authUC.EXPECT().SignInWithProvider(mock.Anything, usecase.SignInWithProviderInput{Method: entity.AuthMethodGoogle, IDToken: "tok"}).
		Return(result.Ok[*entity.AuthUser, domainerrors.AuthErrorCode](user))
	analytics.EXPECT().LogEvent(mock.Anything, service.EventLogin, map[string]any{"method": "google"}).Once()

	c, rec := newContext(http.MethodPost, "/auth/sign-in/provider", `{"method":"google","id_token":"tok"}`, session.NewState("s1"))
	require.NoError(t, h.SignInWithProvider(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, sessions.renewed)
}

func TestAuthHandler_SignInWithProvider_RejectsEmailMethod(t *testing.T) {
	h, _, _, _ := newTestAuthHandler(t)

	c, rec := newContext(http.MethodPost, "/auth/sign-in/provider", `{"method":"email","id_token":"tok"}`, session.NewState("s1"))
	require.NoError(t, h.SignInWithProvider(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, fieldErrors(t, rec), "method")
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	h, authUC, _, _ := newTestAuthHandler(t)

	authUC.EXPECT().ResetPassword(mock.Anything, usecase.ResetPasswordInput{Email: "ada@example.com"}).
		Return(result.OkEmpty[result.Empty, domainerrors.AuthErrorCode]())

	c, rec := newContext(http.MethodPost, "/auth/password-reset", `{"email":"ada@example.com"}`, session.NewState("s1"))
	require.NoError(t, h.ResetPassword(c))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.True(t, decodeResult(t, rec).Success)
}

func TestAuthHandler_SignOut(t *testing.T) {
	h, authUC, analytics, sessions := newTestAuthHandler(t)

	analytics.EXPECT().LogEvent(mock.Anything, service.EventLogout, map[string]any(nil)).Once()
	authUC.EXPECT().SignOut(mock.Anything).Return(result.OkEmpty[result.Empty, domainerrors.AuthErrorCode]())

	c, rec := newContext(http.MethodPost, "/auth/sign-out", "", signedInState("u1"))
	require.NoError(t, h.SignOut(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, sessions.ended)
}

func TestAuthHandler_SignOut_Failure(t *testing.T) {
	h, authUC, analytics, sessions := newTestAuthHandler(t)

	analytics.EXPECT().LogEvent(mock.Anything, service.EventLogout, map[string]any(nil)).Once()
	authUC.EXPECT().SignOut(mock.Anything).Return(result.Fail[result.Empty](domainerrors.AuthGeneric))

	c, rec := newContext(http.MethodPost, "/auth/sign-out", "", signedInState("u1"))
	require.NoError(t, h.SignOut(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, sessions.ended)
}

func TestAuthHandler_GetState(t *testing.T) {
	h, _, _, _ := newTestAuthHandler(t)

	st := signedInState("u1")
	locale := "es"
	st.Settings.Set(&entity.UserSettings{Locale: &locale})

	c, rec := newContext(http.MethodGet, "/auth/state", "", st)
	require.NoError(t, h.GetState(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)

	var state AuthStateResponse
	require.NoError(t, json.Unmarshal(env.Data, &state))
	require.NotNil(t, state.User)
	assert.Equal(t, "u1", state.User.ID)
	require.NotNil(t, state.Settings)
	assert.Equal(t, "es", *state.Settings.Locale)
}

func TestAuthHandler_GetState_NoSession(t *testing.T) {
	h, _, _, _ := newTestAuthHandler(t)

	c, _ := newContext(http.MethodGet, "/auth/state", "", nil)

	assert.ErrorIs(t, h.GetState(c), domainerrors.ErrSessionMissing)
}
