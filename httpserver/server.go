package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"moviecatalog/errs"
	"moviecatalog/movie"
	"moviecatalog/pkg/config"
	"moviecatalog/pkg/logger"
	"moviecatalog/pkg/sentry"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const defaultPort = 3000

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Check(ctx context.Context) error
}

type Server struct {
	// Router is the Echo router instance
	Router *echo.Echo

	// Addr represents the address the server will listen on
	Addr string

	// Allowed origins for CORS
	AllowOrigins []string

	// RateLimit is requests per second per client IP, 0 disables it
	RateLimit float64

	Logger *zap.SugaredLogger

	MovieService movie.Service

	HealthChecker HealthChecker
}

func Default(cfg *config.Config) *Server {
	port := cfg.Port
	if port == 0 {
		port = defaultPort
	}

	s := Server{
		Router:       echo.New(),
		Addr:         fmt.Sprintf(":%d", port),
		AllowOrigins: splitOrigins(cfg.AllowOrigins),
		RateLimit:    cfg.RateLimit,
		Logger:       logger.NOOPLogger,
	}

	s.Router.HideBanner = true
	s.Router.HidePort = true
	s.Router.HTTPErrorHandler = s.handleHTTPError
	s.Router.Validator = NewValidator()
	s.RegisterGlobalMiddlewares()

	s.RegisterHealthRoutes()
	s.RegisterSwaggerRoutes()
	s.RegisterMovieRoutes()
	s.RegisterReferenceRoutes()
	return &s
}

func splitOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{"*"}
	}
	origins := make([]string, 0)
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func (s *Server) RegisterGlobalMiddlewares() {
	s.Router.Use(middleware.Recover())
	s.Router.Use(middleware.Secure())
	s.Router.Use(middleware.RequestID())
	s.Router.Use(s.requestLogger())
	s.Router.Use(middleware.Gzip())
	s.Router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	if s.RateLimit > 0 {
		s.Router.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(s.RateLimit))))
	}

	// CORS
	if len(s.AllowOrigins) > 0 {
		s.Router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: s.AllowOrigins,
		}))
	}
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.Logger.Infow("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			)
			return nil
		},
	})
}

func (s *Server) Start() error {
	return s.Router.Start(s.Addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Router.Shutdown(ctx)
}

// handleHTTPError maps application errors to HTTP status codes. Unexpected
// errors are logged and reported but never leak to the caller.
func (s *Server) handleHTTPError(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := internalErrorMessage

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if code < http.StatusInternalServerError {
			message = fmt.Sprint(he.Message)
		}
	} else {
		switch errs.ErrorCode(err) {
		case errs.EINVALID:
			code = http.StatusBadRequest
			message = errs.ErrorMessage(err)
		case errs.ENOTFOUND:
			code = http.StatusNotFound
			message = errs.ErrorMessage(err)
		case errs.ECONFLICT:
			code = http.StatusConflict
			message = errs.ErrorMessage(err)
		case errs.EUNAUTHORIZED:
			code = http.StatusUnauthorized
			message = errs.ErrorMessage(err)
		case errs.ENOTIMPLEMENTED:
			code = http.StatusNotImplemented
			message = errs.ErrorMessage(err)
		}
	}

	if code >= http.StatusInternalServerError {
		s.Logger.Errorw("request failed",
			"method", c.Request().Method,
			"route", c.Path(),
			"uri", c.Request().RequestURI,
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			"error", err,
		)
		sentry.WithContext(c).Error(err)
	}

	// Don't write response if already committed
	if c.Response().Committed {
		return
	}
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = writeMessage(c, code, message)
	}
	if err != nil {
		s.Logger.Errorw("cannot write error response", "error", err)
	}
}
