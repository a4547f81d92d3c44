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

// SessionControl manages the cookie session around sign-in and sign-out.
type SessionControl interface {
	Renew(c echo.Context) error
	End(c echo.Context) error
}

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC    usecase.AuthUsecase
	Analytics service.AnalyticsService
	Sessions  *middleware.SessionMiddleware
	Validator *RequestValidator
	Logger    *slog.Logger
}

// AuthHandler holds dependencies for sign-in related handlers
type AuthHandler struct {
	authUC    usecase.AuthUsecase
	analytics service.AnalyticsService
	sessions  SessionControl
	validator *RequestValidator
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:    params.AuthUC,
		analytics: params.Analytics,
		sessions:  params.Sessions,
		validator: params.Validator,
		logger:    params.Logger,
	}
}

// SignInRequest represents the request body for an email and password sign-in
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ProviderSignInRequest represents the request body for a federated sign-in
type ProviderSignInRequest struct {
	Method  entity.AuthMethod `json:"method" validate:"required,oneof=google apple"`
	IDToken string            `json:"id_token" validate:"required"`
}

// SignUpRequest represents the request body for creating an account
type SignUpRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	DisplayName string `json:"display_name" validate:"omitempty,max=100"`
}

// PasswordResetRequest represents the request body for a password reset email
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// AuthStateResponse is the snapshot of the session's auth state
type AuthStateResponse struct {
	User     *entity.AuthUser     `json:"user"`
	Settings *entity.UserSettings `json:"settings"`
}

// SignIn handles email and password sign-in
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if ok, err := h.validator.Bind(c, &req); !ok {
		return err
	}

	res := h.authUC.SignIn(c.Request().Context(), usecase.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})

	return h.signedIn(c, res, service.EventLogin)
}

// SignInWithProvider handles a federated sign-in with a provider ID token
func (h *AuthHandler) SignInWithProvider(c echo.Context) error {
	var req ProviderSignInRequest
	if ok, err := h.validator.Bind(c, &req); !ok {
		return err
	}

	res := h.authUC.SignInWithProvider(c.Request().Context(), usecase.SignInWithProviderInput{
		Method:  req.Method,
		IDToken: req.IDToken,
	})

	return h.signedIn(c, res, service.EventLogin)
}

// SignUp handles account creation
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if ok, err := h.validator.Bind(c, &req); !ok {
		return err
	}

	res := h.authUC.SignUp(c.Request().Context(), usecase.SignUpInput{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
	})

	return h.signedIn(c, res, service.EventSignUp)
}

// ResetPassword handles password reset requests
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req PasswordResetRequest
	if ok, err := h.validator.Bind(c, &req); !ok {
		return err
	}

	res := h.authUC.ResetPassword(c.Request().Context(), usecase.ResetPasswordInput{Email: req.Email})

	return response.FromResult(c, http.StatusAccepted, res, domainerrors.AuthAppError)
}

// SignOut handles sign-out and ends the cookie session
func (h *AuthHandler) SignOut(c echo.Context) error {
	ctx := c.Request().Context()

	// Logged first so the event is still attributed to the user.
	h.analytics.LogEvent(ctx, service.EventLogout, nil)

	res := h.authUC.SignOut(ctx)
	if res.IsSuccess() {
		if err := h.sessions.End(c); err != nil {
			return err
		}
	}

	return response.FromResult(c, http.StatusOK, res, domainerrors.AuthAppError)
}

// GetState returns the auth state of the session
func (h *AuthHandler) GetState(c echo.Context) error {
	st := middleware.CurrentSession(c)
	if st == nil {
		return domainerrors.ErrSessionMissing
	}

	return response.Success(c, http.StatusOK, AuthStateResponse{
		User:     st.CurrentUser(),
		Settings: st.Settings.Value(),
	})
}

func (h *AuthHandler) signedIn(c echo.Context, res usecase.AuthUserResult, event string) error {
	if user, ok := res.Data(); ok {
		if err := h.sessions.Renew(c); err != nil {
			return err
		}
		h.analytics.LogEvent(c.Request().Context(), event, map[string]any{
			"method": user.Method.String(),
		})
		requestLogger(c, h.logger).Info("User signed in",
			slog.String("user_id", user.ID),
			slog.String("method", user.Method.String()),
		)
	}

	return response.FromResult(c, http.StatusOK, res, domainerrors.AuthAppError)
}
