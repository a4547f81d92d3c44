package handler

import (
	"net/http"
	"testing"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/result"
	mockUsecase "portfolio/internal/mocks/usecase"
	"portfolio/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestProfileHandler(t *testing.T) (*ProfileHandler, *mockUsecase.MockProfileUsecase, *fakeSessions) {
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	sessions := &fakeSessions{}

	return &ProfileHandler{
		profileUC: profileUC,
		sessions:  sessions,
		validator: testValidator(),
		logger:    testLogger(),
	}, profileUC, sessions
}

func TestProfileHandler_UpdateProfile(t *testing.T) {
	h, profileUC, _ := newTestProfileHandler(t)

	profileUC.EXPECT().UpdateProfile(mock.Anything, usecase.UpdateProfileInput{DisplayName: "Ada L."}).
		Return(result.OkEmpty[result.Empty, domainerrors.AuthErrorCode]())

	c, rec := newContext(http.MethodPut, "/api/v1/profile", `{"display_name":"Ada L."}`, signedInState("u1"))
	require.NoError(t, h.UpdateProfile(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeResult(t, rec).Success)
}

func TestProfileHandler_UpdatePassword_RequiresRecentLogin(t *testing.T) {
	h, profileUC, _ := newTestProfileHandler(t)

	profileUC.EXPECT().UpdatePassword(mock.Anything, usecase.UpdatePasswordInput{NewPassword: "longer-secret"}).
		Return(result.Fail[result.Empty](domainerrors.AuthRequiresRecentLogin))

	c, rec := newContext(http.MethodPut, "/api/v1/profile/password", `{"new_password":"longer-secret"}`, signedInState("u1"))
	require.NoError(t, h.UpdatePassword(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "REQUIRES_RECENT_LOGIN", env.Error.Code)
}

func TestProfileHandler_UpdatePassword_TooShort(t *testing.T) {
	h, _, _ := newTestProfileHandler(t)

	c, rec := newContext(http.MethodPut, "/api/v1/profile/password", `{"new_password":"abc"}`, signedInState("u1"))
	require.NoError(t, h.UpdatePassword(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, fieldErrors(t, rec), "new_password")
}

func TestProfileHandler_Reauthenticate(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantInput *usecase.ReauthenticateInput
		wantField string
	}{
		{
			name:      "email with password",
			body:      `{"method":"email","password":"secret"}`,
			wantInput: &usecase.ReauthenticateInput{Method: entity.AuthMethodEmail, Password: "secret"},
		},
		{
			name:      "email without password",
			body:      `{"method":"email"}`,
			wantField: "password",
		},
		{
			name:      "google with token",
			body:      `{"method":"google","id_token":"tok"}`,
			wantInput: &usecase.ReauthenticateInput{Method: entity.AuthMethodGoogle, IDToken: "tok"},
		},
		{
			name:      "google without token",
			body:      `{"method":"google"}`,
			wantField: "id_token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, profileUC, _ := newTestProfileHandler(t)
			if tt.wantInput != nil {
				profileUC.EXPECT().Reauthenticate(mock.Anything, *tt.wantInput).
					Return(result.OkEmpty[result.Empty, domainerrors.AuthErrorCode]())
			}

			c, rec := newContext(http.MethodPost, "/api/v1/profile/reauthenticate", tt.body, signedInState("u1"))
			require.NoError(t, h.Reauthenticate(c))

			if tt.wantField != "" {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, fieldErrors(t, rec), tt.wantField)

				return
			}
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestProfileHandler_DeleteAccount(t *testing.T) {
	h, profileUC, sessions := newTestProfileHandler(t)

	profileUC.EXPECT().DeleteAccount(mock.Anything).Return(result.OkEmpty[result.Empty, domainerrors.AuthErrorCode]())

	c, rec := newContext(http.MethodDelete, "/api/v1/profile", "", signedInState("u1"))
	require.NoError(t, h.DeleteAccount(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, sessions.ended)
}

func TestProfileHandler_DeleteAccount_Failure(t *testing.T) {
	h, profileUC, sessions := newTestProfileHandler(t)

	profileUC.EXPECT().DeleteAccount(mock.Anything).Return(result.Fail[result.Empty](domainerrors.AuthRequiresRecentLogin))

	c, rec := newContext(http.MethodDelete, "/api/v1/profile", "", signedInState("u1"))
	require.NoError(t, h.DeleteAccount(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, sessions.ended)
}
