package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio/config"
	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/session"
	mockUsecase "portfolio/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testCookieName = "portfolio_test"

func newTestSessionMiddleware(sessionUC *mockUsecase.MockSessionUsecase, idle time.Duration) *SessionMiddleware {
	manager := NewSessionManager(&config.SessionConfig{
		CookieName:  testCookieName,
		Lifetime:    time.Hour,
		IdleTimeout: idle,
	})

	return newSessionMiddleware(manager, sessionUC, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func serve(t *testing.T, h echo.HandlerFunc, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))

	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == testCookieName {
			return cookie
		}
	}
	t.Fatalf("cookie %s not set", testCookieName)

	return nil
}

func TestSessionMiddleware_AttachReusesSessionID(t *testing.T) {
	sessionUC := mockUsecase.NewMockSessionUsecase(t)
	var ids []string
	sessionUC.EXPECT().Open(mock.Anything, mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, id string) (*session.State, error) {
			ids = append(ids, id)

			return session.NewState(id), nil
		}).Times(2)

	m := newTestSessionMiddleware(sessionUC, 0)
	var attached []*session.State
	h := m.LoadAndSave(m.Attach(func(c echo.Context) error {
		attached = append(attached, CurrentSession(c))

		return c.NoContent(http.StatusNoContent)
	}))

	first := serve(t, h)
	cookie := sessionCookie(t, first)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

	serve(t, h, cookie)

	require.Len(t, ids, 2)
	assert.NotEmpty(t, ids[0])
	assert.Equal(t, ids[0], ids[1])
	require.Len(t, attached, 2)
	assert.Equal(t, ids[0], attached[1].ID)
}

func TestSessionMiddleware_AttachOpenFailure(t *testing.T) {
	sessionUC := mockUsecase.NewMockSessionUsecase(t)
	sessionUC.EXPECT().Open(mock.Anything, mock.Anything).Return(nil, assert.AnError)

	m := newTestSessionMiddleware(sessionUC, 0)
	called := false
	h := m.Attach(func(echo.Context) error {
		called = true

		return nil
	})

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	h = m.LoadAndSave(h)

	err := h(c)
	require.ErrorIs(t, err, assert.AnError)
	assert.False(t, called)
}

func TestSessionMiddleware_End(t *testing.T) {
	sessionUC := mockUsecase.NewMockSessionUsecase(t)
	var opened *session.State
	sessionUC.EXPECT().Open(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id string) (*session.State, error) {
			opened = session.NewState(id)

			return opened, nil
		})

	m := newTestSessionMiddleware(sessionUC, 0)
	sessionUC.EXPECT().Close(mock.Anything).Run(func(id string) {
		assert.Equal(t, opened.ID, id)
	}).Once()

	h := m.LoadAndSave(m.Attach(func(c echo.Context) error {
		require.NoError(t, m.End(c))

		return c.NoContent(http.StatusNoContent)
	}))

	rec := serve(t, h)
	cookie := sessionCookie(t, rec)
	assert.Negative(t, cookie.MaxAge)
}

func TestSessionMiddleware_Sweep(t *testing.T) {
	sessionUC := mockUsecase.NewMockSessionUsecase(t)
	swept := make(chan time.Duration, 1)
	sessionUC.EXPECT().Sweep(mock.Anything).Run(func(idle time.Duration) {
		select {
		case swept <- idle:
		default:
		}
	}).Return(1)

	m := newTestSessionMiddleware(sessionUC, 20*time.Millisecond)
	go m.sweep()

	select {
	case idle := <-swept:
		assert.Equal(t, 20*time.Millisecond, idle)
	case <-time.After(time.Second):
		t.Fatal("sweep not called")
	}

	require.NoError(t, m.shutdown(context.Background()))
}

func TestRequireUser(t *testing.T) {
	next := func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}

	tests := []struct {
		name    string
		state   func() *session.State
		wantErr error
	}{
		{
			name:    "no session",
			state:   func() *session.State { return nil },
			wantErr: domainerrors.ErrSessionMissing,
		},
		{
			name:    "signed out",
			state:   func() *session.State { return session.NewState("s1") },
			wantErr: domainerrors.ErrUnauthenticated,
		},
		{
			name: "signed in",
			state: func() *session.State {
				st := session.NewState("s1")
				st.User.Set(&entity.AuthUser{ID: "u1", Method: entity.AuthMethodEmail})

				return st
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if st := tt.state(); st != nil {
				req = req.WithContext(session.WithState(req.Context(), st))
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			err := RequireUser(next)(c)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, http.StatusNoContent, rec.Code)

			user, ok := CurrentUser(c)
			assert.True(t, ok)
			assert.Equal(t, "u1", user.ID)
		})
	}
}
