package handler

import (
	"log/slog"
	"net/http"

	"portfolio/internal/delivery/api/middleware"
	"portfolio/internal/delivery/api/response"
	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Sessions  *middleware.SessionMiddleware
	Validator *RequestValidator
	Logger    *slog.Logger
}

// ProfileHandler holds dependencies for account management handlers
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	sessions  SessionControl
	validator *RequestValidator
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		sessions:  params.Sessions,
		validator: params.Validator,
		logger:    params.Logger,
	}
}

// UpdateProfileRequest represents the request body for updating the profile
type UpdateProfileRequest struct {
	DisplayName string `json:"display_name" validate:"required,max=100"`
}

// UpdatePasswordRequest represents the request body for changing the password
type UpdatePasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// ReauthenticateRequest represents the request body for proving the identity again
type ReauthenticateRequest struct {
	Method   entity.AuthMethod `json:"method" validate:"required,oneof=email google apple"`
	Password string            `json:"password" validate:"required_if=Method email"`
	IDToken  string            `json:"id_token" validate:"required_unless=Method email"`
}

// UpdateProfile handles display name changes
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if ok, err := h.validator.Bind(c, &req); !ok {
		return err
	}

	res := h.profileUC.UpdateProfile(c.Request().Context(), usecase.UpdateProfileInput{
		DisplayName: req.DisplayName,
	})

	return response.FromResult(c, http.StatusOK, res, domainerrors.AuthAppError)
}

// UpdatePassword handles password changes
func (h *ProfileHandler) UpdatePassword(c echo.Context) error {
	var req UpdatePasswordRequest
	if ok, err := h.validator.Bind(c, &req); !ok {
		return err
	}

	res := h.profileUC.UpdatePassword(c.Request().Context(), usecase.UpdatePasswordInput{
		NewPassword: req.NewPassword,
	})

	return response.FromResult(c, http.StatusOK, res, domainerrors.AuthAppError)
}

// Reauthenticate handles a fresh proof of identity before sensitive operations
func (h *ProfileHandler) Reauthenticate(c echo.Context) error {
	var req ReauthenticateRequest
	if ok, err := h.validator.Bind(c, &req); !ok {
		return err
	}

	res := h.profileUC.Reauthenticate(c.Request().Context(), usecase.ReauthenticateInput{
		Method:   req.Method,
		Password: req.Password,
		IDToken:  req.IDToken,
	})

	return response.FromResult(c, http.StatusOK, res, domainerrors.AuthAppError)
}

// DeleteAccount handles account deletion and ends the cookie session
func (h *ProfileHandler) DeleteAccount(c echo.Context) error {
	userID, _ := currentUserID(c)

	res := h.profileUC.DeleteAccount(c.Request().Context())
	if res.IsSuccess() {
		requestLogger(c, h.logger).Info("Account deleted", slog.String("user_id", userID))
		if err := h.sessions.End(c); err != nil {
			return err
		}
	}

	return response.FromResult(c, http.StatusOK, res, domainerrors.AuthAppError)
}
