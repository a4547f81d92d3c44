package handler

import (
	"log/slog"
	"net/http"

	"portfolio/internal/delivery/api/response"
	"portfolio/internal/domain/navigation"
	"portfolio/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SiteHandlerParams holds dependencies for SiteHandler, injected by Fx.
type SiteHandlerParams struct {
	fx.In

	Analytics service.AnalyticsService
	Validator *RequestValidator
	Logger    *slog.Logger
}

// SiteHandler serves the public site endpoints.
type SiteHandler struct {
	analytics service.AnalyticsService
	validator *RequestValidator
	logger    *slog.Logger
}

// NewSiteHandler is the constructor for SiteHandler
func NewSiteHandler(params SiteHandlerParams) *SiteHandler {
	return &SiteHandler{
		analytics: params.Analytics,
		validator: params.Validator,
		logger:    params.Logger,
	}
}

// ContactRequest represents the request body of the contact form
type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,max=5000"`
}

// HealthCheck reports that the server is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// GetMenu returns the main navigation menu.
func (h *SiteHandler) GetMenu(c echo.Context) error {
	return response.Success(c, http.StatusOK, navigation.MainMenuConfig())
}

// SubmitContact accepts a contact form submission.
func (h *SiteHandler) SubmitContact(c echo.Context) error {
	var req ContactRequest
	if ok, err := h.validator.Bind(c, &req); !ok {
		return err
	}

	locale := h.validator.Locale(c)
	requestLogger(c, h.logger).Info("Contact form submitted",
		slog.String("locale", locale),
		slog.Int("message_length", len(req.Message)),
	)
	h.analytics.LogEvent(c.Request().Context(), service.EventContactSubmit, map[string]any{
		"locale": locale,
	})

	return accepted(c)
}
