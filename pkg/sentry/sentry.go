package sentry

import (
	"fmt"
	"time"

	sentrygo "github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

// FlushTime bounds how long shutdown waits for buffered events.
var FlushTime = 2 * time.Second

// Sentry collects scope data for a single report.
type Sentry struct {
	context echo.Context
	level   sentrygo.Level
	tags    map[string]string
	extras  map[string]interface{}
}

func WithContext(c echo.Context) *Sentry {
	return new(Sentry).WithContext(c)
}

func WithTags(tags map[string]string) *Sentry {
	return new(Sentry).WithTags(tags)
}

func (s *Sentry) WithContext(c echo.Context) *Sentry {
	s.context = c
	return s
}

func (s *Sentry) WithTags(tags map[string]string) *Sentry {
	s.tags = tags
	return s
}

func (s *Sentry) WithExtras(extras map[string]interface{}) *Sentry {
	s.extras = extras
	return s
}

func (s *Sentry) Error(err error) {
	if err == nil {
		return
	}
	s.level = sentrygo.LevelError
	hub := s.getHub()
	hub.WithScope(func(scope *sentrygo.Scope) {
		s.configScope(scope)
		hub.CaptureException(err)
	})
}

func (s *Sentry) Warningf(format string, args ...interface{}) {
	s.level = sentrygo.LevelWarning
	hub := s.getHub()
	hub.WithScope(func(scope *sentrygo.Scope) {
		s.configScope(scope)
		hub.CaptureMessage(fmt.Sprintf(format, args...))
	})
}

func (s *Sentry) getHub() *sentrygo.Hub {
	if s.context != nil {
		if hub := sentryecho.GetHubFromContext(s.context); hub != nil {
			return hub
		}
	}
	return sentrygo.CurrentHub()
}

func (s *Sentry) configScope(scope *sentrygo.Scope) {
	scope.SetLevel(s.level)
	if len(s.tags) > 0 {
		scope.SetTags(s.tags)
	}
	if len(s.extras) > 0 {
		scope.SetExtras(s.extras)
	}
	if s.context != nil {
		scope.SetTag("http.route", s.context.Path())
		if id := s.context.Response().Header().Get(echo.HeaderXRequestID); id != "" {
			scope.SetTag("request_id", id)
		}
	}
}

// Flush waits up to FlushTime for queued events.
func Flush() {
	sentrygo.Flush(FlushTime)
}
