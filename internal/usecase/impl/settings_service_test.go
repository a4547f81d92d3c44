package impl

import (
	"context"
	"testing"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	mockRepo "portfolio/internal/mocks/repository"
	"portfolio/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type settingsServiceFixtures struct {
	service      usecase.SettingsUsecase
	settingsRepo *mockRepo.MockSettingsRepository
}

func createTestSettingsService(t *testing.T) settingsServiceFixtures {
	settingsRepo := mockRepo.NewMockSettingsRepository(t)

	return settingsServiceFixtures{
		service:      NewSettingsService(settingsRepo),
		settingsRepo: settingsRepo,
	}
}

func TestSettingsService_LoadUserSettings_Anonymous(t *testing.T) {
	for _, userID := range []*string{nil, strPtr("")} {
		fx := createTestSettingsService(t)

		res := fx.service.LoadUserSettings(context.Background(), usecase.LoadUserSettingsInput{UserID: userID})

		require.True(t, res.IsSuccess())
		data, ok := res.Data()
		assert.True(t, ok)
		assert.Nil(t, data)
		fx.settingsRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	}
}

func TestSettingsService_LoadUserSettings_Found(t *testing.T) {
	fx := createTestSettingsService(t)
	theme := entity.ThemeDark
	stored := &entity.UserSettings{Locale: strPtr("es"), Theme: &theme}

	fx.settingsRepo.EXPECT().
		Get(mock.Anything, "u1").
		Return(stored, nil)

	res := fx.service.LoadUserSettings(context.Background(), usecase.LoadUserSettingsInput{UserID: strPtr("u1")})

	data, ok := res.Data()
	require.True(t, ok)
	assert.Equal(t, stored, data)
}

func TestSettingsService_LoadUserSettings_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want domainerrors.SettingsErrorCode
	}{
		{"permission", errors.New("rpc error: code = PermissionDenied desc = Missing or insufficient permissions"), domainerrors.SettingsUnavailable},
		{"network", errors.New("network is unreachable"), domainerrors.SettingsUnavailable},
		{"other", errors.New("random failure"), domainerrors.SettingsGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSettingsService(t)

			fx.settingsRepo.EXPECT().
				Get(mock.Anything, "u1").
				Return(nil, tt.err)

			res := fx.service.LoadUserSettings(context.Background(), usecase.LoadUserSettingsInput{UserID: strPtr("u1")})

			code, ok := res.Code()
			require.True(t, ok)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestSettingsService_SaveUserSettings(t *testing.T) {
	fx := createTestSettingsService(t)
	settings := entity.UserSettings{Locale: strPtr("en")}

	fx.settingsRepo.EXPECT().
		Set(mock.Anything, "u1", settings).
		Return(nil)

	res := fx.service.SaveUserSettings(context.Background(), usecase.SaveUserSettingsInput{UserID: "u1", Settings: settings})

	assert.True(t, res.IsSuccess())
}

func TestSettingsService_SaveUserSettings_Unavailable(t *testing.T) {
	fx := createTestSettingsService(t)

	fx.settingsRepo.EXPECT().
		Set(mock.Anything, "u1", mock.Anything).
		Return(errors.New("service Unavailable"))

	res := fx.service.SaveUserSettings(context.Background(), usecase.SaveUserSettingsInput{UserID: "u1"})

	code, ok := res.Code()
	require.True(t, ok)
	assert.Equal(t, domainerrors.SettingsUnavailable, code)
}
