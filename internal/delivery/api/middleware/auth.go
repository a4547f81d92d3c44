package middleware

import (
	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/session"

	"github.com/labstack/echo/v4"
)

// RequireUser rejects requests whose session has no signed-in user. It must run after
// SessionMiddleware.Attach.
func RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		st := session.FromContext(c.Request().Context())
		if st == nil {
			return domainerrors.ErrSessionMissing
		}
		if st.CurrentUser() == nil {
			return domainerrors.ErrUnauthenticated
		}

		return next(c)
	}
}

// CurrentUser returns the signed-in user of the request's session.
func CurrentUser(c echo.Context) (*entity.AuthUser, bool) {
	st := session.FromContext(c.Request().Context())
	if st == nil {
		return nil, false
	}
	user := st.CurrentUser()

	return user, user != nil
}

// CurrentSession returns the state of the request's session, or nil.
func CurrentSession(c echo.Context) *session.State {
	return session.FromContext(c.Request().Context())
}
