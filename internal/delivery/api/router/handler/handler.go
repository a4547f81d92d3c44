// Package handler contains the HTTP handlers of the API.
package handler

import (
	"log/slog"
	"net/http"

	"portfolio/config"
	"portfolio/internal/delivery/api/middleware"
	"portfolio/internal/delivery/api/response"
	"portfolio/internal/delivery/api/validator"
	deliverycontext "portfolio/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const headerAcceptLanguage = "Accept-Language"

// RequestValidatorParams holds dependencies for RequestValidator, injected by Fx.
type RequestValidatorParams struct {
	fx.In

	Validator *validator.CustomValidator
	Config    *config.Config
}

// RequestValidator binds request payloads and reports validation failures in the request locale.
type RequestValidator struct {
	validator *validator.CustomValidator
	site      *config.SiteConfig
}

// NewRequestValidator is the constructor for RequestValidator
func NewRequestValidator(params RequestValidatorParams) *RequestValidator {
	return &RequestValidator{
		validator: params.Validator,
		site:      params.Config.Site,
	}
}

// Bind decodes the request into req and validates it. When it returns false the error
// response has already been written and its result must be returned by the handler.
func (v *RequestValidator) Bind(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BadRequest(c, "INVALID_INPUT", "Invalid request payload")
	}

	if err := v.validator.Validate(req); err != nil {
		fields := v.validator.FieldErrors(err, v.Locale(c))
		if fields == nil {
			return false, response.BadRequest(c, "VALIDATION_FAILED", err.Error())
		}

		return false, response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", fields)
	}

	return true, nil
}

// Locale resolves the message locale of the request from the stored settings of the session,
// then the Accept-Language header.
func (v *RequestValidator) Locale(c echo.Context) string {
	preferences := make([]string, 0, 2)
	if st := middleware.CurrentSession(c); st != nil {
		if settings := st.Settings.Value(); settings != nil && settings.Locale != nil {
			preferences = append(preferences, *settings.Locale)
		}
	}
	preferences = append(preferences, c.Request().Header.Get(headerAcceptLanguage))

	return validator.MatchLocale(v.site.Locales, v.site.DefaultLocale, preferences...)
}

// currentUserID returns the id of the signed-in user. Routes behind RequireUser always have one.
func currentUserID(c echo.Context) (string, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return "", false
	}

	return user.ID, true
}

func unauthorized(c echo.Context) error {
	return response.Unauthorized(c, "UNAUTHENTICATED", "Sign in required")
}

func requestLogger(c echo.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), fallback)
}

func accepted(c echo.Context) error {
	return response.Success(c, http.StatusAccepted, nil)
}
