// nolint: funlen
package httpserver_test

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"moviecatalog/errs"
	"moviecatalog/httpserver"
	"moviecatalog/movie"
	"moviecatalog/pkg/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	server := httpserver.Default(testConfig())

	assert.NotNil(t, server.Router, "Router should be initialized")
	assert.Equal(t, ":3000", server.Addr, "Default address should be :3000")
	assert.Equal(t, []string{"*"}, server.AllowOrigins, "Default CORS should allow all origins")
	assert.NotNil(t, server.Logger, "Logger should default to a no-op logger")
}

func TestDefaultFromConfig(t *testing.T) {
	cfg := &config.Config{Port: 8081, AllowOrigins: "https://a.example, https://b.example"}

	server := httpserver.Default(cfg)

	assert.Equal(t, ":8081", server.Addr)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, server.AllowOrigins)
}

func TestRateLimiter(t *testing.T) {
	server := httpserver.Default(&config.Config{RateLimit: 1})
	addRoute(server, "/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})

	var last *httptest.ResponseRecorder
	for i := 0; i < 5; i++ {
		last = serve(server, httptest.NewRequest(http.MethodGet, "/ping", nil))
	}

	assert.Equal(t, http.StatusTooManyRequests, last.Code)
}

func TestServerStartAndShutdown(t *testing.T) {
	server := httpserver.Default(testConfig())
	port := freePort(t)
	server.Addr = fmt.Sprintf("127.0.0.1:%d", port)

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	url := fmt.Sprintf("http://127.0.0.1:%d/healthcheck", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url) // nolint: noctx
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 3*time.Second, 50*time.Millisecond, "server should answer the healthcheck")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, server.Shutdown(ctx))

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, http.ErrServerClosed)
	case <-time.After(time.Second):
		t.Fatal("server did not stop within timeout")
	}
}

func TestGlobalMiddlewares(t *testing.T) {
	server := httpserver.Default(testConfig())
	addRoute(server, "/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})

	rec := serve(server, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID), "request id should be set")
	assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions), "secure headers should be set")
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name          string
		allowOrigins  string
		requestOrigin string
		expectHeader  string
	}{
		{
			name:          "unset allows every origin",
			allowOrigins:  "",
			requestOrigin: "https://example.com",
			expectHeader:  "*",
		},
		{
			name:          "listed origin is echoed back",
			allowOrigins:  "https://example.com,https://other.example",
			requestOrigin: "https://example.com",
			expectHeader:  "https://example.com",
		},
		{
			name:          "unlisted origin gets no header",
			allowOrigins:  "https://example.com",
			requestOrigin: "https://evil.example",
			expectHeader:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httpserver.Default(&config.Config{AllowOrigins: tt.allowOrigins})
			addRoute(server, "/ping", func(c echo.Context) error {
				return c.String(http.StatusOK, "pong")
			})
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set(echo.HeaderOrigin, tt.requestOrigin)

			rec := serve(server, req)

			assert.Equal(t, tt.expectHeader, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		})
	}
}

func TestPanicIsRecovered(t *testing.T) {
	server := httpserver.Default(testConfig())
	addRoute(server, "/panic", func(c echo.Context) error {
		panic("secret panic detail")
	})

	rec := serve(server, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeMessage(t, rec))
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "invalid maps to 400",
			err:             errs.Errorf(errs.EINVALID, "invalid input"),
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "invalid input",
		},
		{
			name:            "not found maps to 404",
			err:             errs.Errorf(errs.ENOTFOUND, "resource not found"),
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "resource not found",
		},
		{
			name:            "conflict maps to 409",
			err:             errs.Errorf(errs.ECONFLICT, "resource already exists"),
			expectedStatus:  http.StatusConflict,
			expectedMessage: "resource already exists",
		},
		{
			name:            "unauthorized maps to 401",
			err:             errs.Errorf(errs.EUNAUTHORIZED, "unauthorized access"),
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "unauthorized access",
		},
		{
			name:            "not implemented maps to 501",
			err:             errs.Errorf(errs.ENOTIMPLEMENTED, "feature not implemented"),
			expectedStatus:  http.StatusNotImplemented,
			expectedMessage: "feature not implemented",
		},
		{
			name:            "internal hides its message",
			err:             errs.Errorf(errs.EINTERNAL, "database connection failed"),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
		{
			name:            "plain error hides its message",
			err:             fmt.Errorf("wrapped error: %w", errors.New("original error")),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
		{
			name:            "context error hides its message",
			err:             context.DeadlineExceeded,
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
		{
			name:            "duplicate title maps to 409",
			err:             movie.ErrTitleTaken,
			expectedStatus:  http.StatusConflict,
			expectedMessage: "a movie with this title already exists",
		},
		{
			name:            "wrapped missing movie maps to 404",
			err:             fmt.Errorf("update: %w", movie.ErrMovieNotFound),
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "movie not found",
		},
		{
			name:            "echo http error keeps its status",
			err:             echo.NewHTTPError(http.StatusForbidden, "forbidden"),
			expectedStatus:  http.StatusForbidden,
			expectedMessage: "forbidden",
		},
		{
			name:            "echo 5xx error hides its message",
			err:             echo.NewHTTPError(http.StatusBadGateway, "upstream says no"),
			expectedStatus:  http.StatusBadGateway,
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httpserver.Default(testConfig())
			addRoute(server, "/error", func(echo.Context) error { return tt.err })

			rec := serve(server, httptest.NewRequest(http.MethodGet, "/error", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedMessage, decodeMessage(t, rec))
		})
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	server := httpserver.Default(testConfig())

	rec := serve(server, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", decodeMessage(t, rec))
}

func freePort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func addRoute(server *httpserver.Server, path string, h echo.HandlerFunc) {
	server.Router.GET(path, h)
}
