package impl

import (
	"context"
	"testing"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/service"
	mockService "portfolio/internal/mocks/service"
	"portfolio/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service usecase.AuthUsecase
	authSvc *mockService.MockAuthService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	authSvc := mockService.NewMockAuthService(t)

	return authServiceFixtures{
		service: NewAuthService(authSvc, newDiscardLogger()),
		authSvc: authSvc,
	}
}

func TestAuthService_SignIn_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.AuthUser{ID: "u1", Email: strPtr("a@b.c"), Method: entity.AuthMethodEmail}

	fx.authSvc.EXPECT().
		SignInWithPassword(mock.Anything, "a@b.c", "secret").
		Return(user, nil)

	res := fx.service.SignIn(ctx, usecase.SignInInput{Email: "a@b.c", Password: "secret"})

	require.True(t, res.IsSuccess())
	data, ok := res.Data()
	require.True(t, ok)
	assert.Equal(t, user, data)
	_, failed := res.Code()
	assert.False(t, failed)
}

func TestAuthService_SignIn_MapsProviderErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want domainerrors.AuthErrorCode
	}{
		{"wrong password", domainerrors.NewAuthProviderError(domainerrors.ProviderCodeWrongPassword, ""), domainerrors.AuthInvalidCredentials},
		{"user not found", domainerrors.NewAuthProviderError(domainerrors.ProviderCodeUserNotFound, ""), domainerrors.AuthInvalidCredentials},
		{"throttled", errors.Wrap(domainerrors.NewAuthProviderError(domainerrors.ProviderCodeTooManyRequests, ""), "sign in"), domainerrors.AuthTooManyRequests},
		{"unknown provider code", domainerrors.NewAuthProviderError(domainerrors.ProviderCodeUserDisabled, ""), domainerrors.AuthGeneric},
		{"transport failure", errors.New("dial tcp: timeout"), domainerrors.AuthGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)

			fx.authSvc.EXPECT().
				SignInWithPassword(mock.Anything, "a@b.c", "bad").
				Return(nil, tt.err)

			res := fx.service.SignIn(context.Background(), usecase.SignInInput{Email: "a@b.c", Password: "bad"})

			assert.False(t, res.IsSuccess())
			code, ok := res.Code()
			require.True(t, ok)
			assert.Equal(t, tt.want, code)
			_, hasData := res.Data()
			assert.False(t, hasData)
		})
	}
}

func TestAuthService_SignIn_RecoversPanic(t *testing.T) {
	fx := createTestAuthService(t)

	fx.authSvc.EXPECT().
		SignInWithPassword(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, string, string) (*entity.AuthUser, error) {
			panic("sdk exploded")
		})

	var res usecase.AuthUserResult
	assert.NotPanics(t, func() {
		res = fx.service.SignIn(context.Background(), usecase.SignInInput{Email: "a", Password: "b"})
	})

	code, ok := res.Code()
	require.True(t, ok)
	assert.Equal(t, domainerrors.AuthGeneric, code)
}

func TestAuthService_SignInWithProvider(t *testing.T) {
	fx := createTestAuthService(t)
	user := &entity.AuthUser{ID: "u2", Method: entity.AuthMethodGoogle}

	fx.authSvc.EXPECT().
		SignInWithProvider(mock.Anything, entity.AuthMethodGoogle, "id-token").
		Return(user, nil)

	res := fx.service.SignInWithProvider(context.Background(), usecase.SignInWithProviderInput{
		Method:  entity.AuthMethodGoogle,
		IDToken: "id-token",
	})

	data, ok := res.Data()
	require.True(t, ok)
	assert.Equal(t, "u2", data.ID)
}

func TestAuthService_SignUp_EmailInUse(t *testing.T) {
	fx := createTestAuthService(t)

	fx.authSvc.EXPECT().
		SignUp(mock.Anything, "a@b.c", "secret123", "Ann").
		Return(nil, domainerrors.NewAuthProviderError(domainerrors.ProviderCodeEmailAlreadyInUse, "EMAIL_EXISTS"))

	res := fx.service.SignUp(context.Background(), usecase.SignUpInput{Email: "a@b.c", Password: "secret123", DisplayName: "Ann"})

	code, ok := res.Code()
	require.True(t, ok)
	assert.Equal(t, domainerrors.AuthEmailAlreadyInUse, code)
}

func TestAuthService_ResetPassword(t *testing.T) {
	fx := createTestAuthService(t)

	fx.authSvc.EXPECT().
		SendPasswordReset(mock.Anything, "a@b.c").
		Return(nil)

	res := fx.service.ResetPassword(context.Background(), usecase.ResetPasswordInput{Email: "a@b.c"})

	assert.True(t, res.IsSuccess())
	_, hasData := res.Data()
	assert.False(t, hasData)
}

func TestAuthService_SignOut_Failure(t *testing.T) {
	fx := createTestAuthService(t)

	fx.authSvc.EXPECT().
		SignOut(mock.Anything).
		Return(errors.New("network down"))

	res := fx.service.SignOut(context.Background())

	code, ok := res.Code()
	require.True(t, ok)
	assert.Equal(t, domainerrors.AuthGeneric, code)
}

func TestAuthService_SubscribeAuthState(t *testing.T) {
	fx := createTestAuthService(t)

	unsubscribed := 0
	var registered service.AuthStateHandler

	fx.authSvc.EXPECT().
		OnAuthStateChanged(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, handler service.AuthStateHandler) (func(), error) {
			registered = handler

			return func() { unsubscribed++ }, nil
		})

	var seen []*entity.AuthUser
	sub, err := fx.service.SubscribeAuthState(context.Background(), func(u *entity.AuthUser) {
		seen = append(seen, u)
	})
	require.NoError(t, err)

	registered(&entity.AuthUser{ID: "u1"})
	registered(nil)
	assert.Len(t, seen, 2)
	assert.Nil(t, seen[1])

	sub.Unsubscribe()
	sub.Unsubscribe()
	assert.Equal(t, 1, unsubscribed)
}

func TestAuthService_SubscribeAuthState_Error(t *testing.T) {
	fx := createTestAuthService(t)

	fx.authSvc.EXPECT().
		OnAuthStateChanged(mock.Anything, mock.Anything).
		Return(nil, errors.New("no session"))

	sub, err := fx.service.SubscribeAuthState(context.Background(), func(*entity.AuthUser) {})

	require.Error(t, err)
	assert.Nil(t, sub)
}
