package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 2 * time.Second

func (s *Server) RegisterHealthRoutes() {
	s.Router.GET("/healthcheck", s.healthCheck)
}

// healthCheck godoc
// @Summary Health Check
// @Description Check if server and database are alive
// @Tags health
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /healthcheck [get]
func (s *Server) healthCheck(c echo.Context) error {
	if s.HealthChecker != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
		defer cancel()

		if err := s.HealthChecker.Check(ctx); err != nil {
			s.Logger.Warnw("health check failed", "error", err)
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "UNAVAILABLE",
			})
		}
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "OK",
	})
}
