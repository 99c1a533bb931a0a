package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rentauth/config"
	deliverycontext "rentauth/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T, cfg *config.Config) *echo.Echo {
	t.Helper()

	e := newEcho(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.POST("/auth/login", func(c echo.Context) error {
		_, err := io.ReadAll(c.Request().Body)
		require.NoError(t, err)

		return c.NoContent(http.StatusNoContent)
	})

	return e
}

func TestCORSOrigins(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want []string
	}{
		{name: "nothing configured", cfg: &config.Config{}, want: []string{"*"}},
		{
			name: "frontend url",
			cfg:  &config.Config{Notifier: &config.NotifierConfig{FrontendURL: "https://rentals.example"}},
			want: []string{"https://rentals.example"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, corsOrigins(tt.cfg))
		})
	}

	cfg := &config.Config{Notifier: &config.NotifierConfig{FrontendURL: "https://rentals.example"}}
	cfg.HTTP.AllowedOrigins = []string{"https://admin.rentals.example"}
	assert.Equal(t, []string{"https://admin.rentals.example"}, corsOrigins(cfg))
}

func TestNewEcho_SecurityAndCORSHeaders(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.AllowedOrigins = []string{"https://rentals.example"}
	e := newTestEcho(t, cfg)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderOrigin, "https://rentals.example")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
	assert.Equal(t, "SAMEORIGIN", rec.Header().Get(echo.HeaderXFrameOptions))
	assert.Equal(t, "https://rentals.example", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))

	req = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderOrigin, "https://elsewhere.example")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestNewEcho_BodyLimit(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	e := newTestEcho(t, cfg)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(strings.Repeat("a", 2048)))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}
