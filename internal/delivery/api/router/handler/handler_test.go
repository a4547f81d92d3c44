package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio/config"
	"portfolio/internal/delivery/api/validator"
	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/session"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

type resultBody struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type fakeSessions struct {
	renewed int
	ended   int
}

func (f *fakeSessions) Renew(echo.Context) error {
	f.renewed++

	return nil
}

func (f *fakeSessions) End(echo.Context) error {
	f.ended++

	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testValidator() *RequestValidator {
	return NewRequestValidator(RequestValidatorParams{
		Validator: validator.New(),
		Config: &config.Config{Site: &config.SiteConfig{
			DefaultLocale: "en",
			Locales:       []string{"en", "es"},
		}},
	})
}

func signedInState(userID string) *session.State {
	st := session.NewState("session-" + userID)
	st.User.Set(&entity.AuthUser{ID: userID, Method: entity.AuthMethodEmail})

	return st
}

// newContext builds a request carrying st. body is sent as JSON when not empty.
func newContext(method, target, body string, st *session.State) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if st != nil {
		req = req.WithContext(session.WithState(req.Context(), st))
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func decodeResult(t *testing.T, rec *httptest.ResponseRecorder) resultBody {
	t.Helper()

	env := decode(t, rec)
	require.Nil(t, env.Error)

	var res resultBody
	require.NoError(t, json.Unmarshal(env.Data, &res))

	return res
}

func fieldErrors(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()

	env := decode(t, rec)
	require.NotNil(t, env.Error)
	require.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(env.Error.Details, &fields))

	return fields
}
