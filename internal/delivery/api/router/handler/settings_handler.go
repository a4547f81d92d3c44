package handler

import (
	"log/slog"
	"net/http"

	"portfolio/internal/delivery/api/middleware"
	"portfolio/internal/delivery/api/response"
	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/service"
	"portfolio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SettingsHandlerParams holds dependencies for SettingsHandler, injected by Fx.
type SettingsHandlerParams struct {
	fx.In

	SettingsUC usecase.SettingsUsecase
	Analytics  service.AnalyticsService
	Validator  *RequestValidator
	Logger     *slog.Logger
}

// SettingsHandler holds dependencies for user settings handlers
type SettingsHandler struct {
	settingsUC usecase.SettingsUsecase
	analytics  service.AnalyticsService
	validator  *RequestValidator
	logger     *slog.Logger
}

// NewSettingsHandler is the constructor for SettingsHandler
func NewSettingsHandler(params SettingsHandlerParams) *SettingsHandler {
	return &SettingsHandler{
		settingsUC: params.SettingsUC,
		analytics:  params.Analytics,
		validator:  params.Validator,
		logger:     params.Logger,
	}
}

// SaveSettingsRequest represents the request body for saving settings. Omitted fields are
// stored as no preference.
type SaveSettingsRequest struct {
	Locale *string       `json:"locale" validate:"omitempty,bcp47_language_tag"`
	Theme  *entity.Theme `json:"theme" validate:"omitempty,oneof=light dark system"`
}

// GetSettings loads the settings of the signed-in user. Anonymous sessions get no settings.
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	var userID *string
	if id, ok := currentUserID(c); ok {
		userID = &id
	}

	res := h.settingsUC.LoadUserSettings(c.Request().Context(), usecase.LoadUserSettingsInput{UserID: userID})
	if settings, ok := res.Data(); ok {
		if st := middleware.CurrentSession(c); st != nil {
			st.Settings.Set(settings)
		}
	}

	return response.FromResult(c, http.StatusOK, res, domainerrors.SettingsAppError)
}

// SaveSettings stores the settings of the signed-in user
func (h *SettingsHandler) SaveSettings(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req SaveSettingsRequest
	if ok, err := h.validator.Bind(c, &req); !ok {
		return err
	}

	settings := entity.UserSettings{Locale: req.Locale, Theme: req.Theme}
	res := h.settingsUC.SaveUserSettings(c.Request().Context(), usecase.SaveUserSettingsInput{
		UserID:   userID,
		Settings: settings,
	})
	if res.IsSuccess() {
		if st := middleware.CurrentSession(c); st != nil {
			st.Settings.Set(&settings)
		}
		h.analytics.LogEvent(c.Request().Context(), service.EventSettingsChange, settingsParams(settings))
	}

	return response.FromResult(c, http.StatusOK, res, domainerrors.SettingsAppError)
}

func settingsParams(settings entity.UserSettings) map[string]any {
	params := make(map[string]any, 2)
	if settings.Locale != nil {
		params["locale"] = *settings.Locale
	}
	if settings.Theme != nil {
		params["theme"] = string(*settings.Theme)
	}

	return params
}
