package sentry

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	sentrygo "github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedEvents struct {
	mu     sync.Mutex
	events []*sentrygo.Event
}

func (c *capturedEvents) beforeSend(event *sentrygo.Event, _ *sentrygo.EventHint) *sentrygo.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
	// drop the event so nothing leaves the process
	return nil
}

func (c *capturedEvents) all() []*sentrygo.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*sentrygo.Event(nil), c.events...)
}

func initCapture(t *testing.T) *capturedEvents {
	t.Helper()
	captured := new(capturedEvents)
	err := sentrygo.Init(sentrygo.ClientOptions{
		Dsn:        "https://public@sentry.example.com/1",
		BeforeSend: captured.beforeSend,
	})
	require.NoError(t, err)
	t.Cleanup(func() { sentrygo.CurrentHub().BindClient(nil) })
	return captured
}

func TestSentry_BuilderPattern(t *testing.T) {
	t.Run("setters return the same instance", func(t *testing.T) {
		tags := map[string]string{"env": "test"}
		extras := map[string]interface{}{"movie_id": 7}
		s := new(Sentry)

		result := s.WithTags(tags).WithExtras(extras)

		assert.Same(t, s, result)
		assert.Equal(t, tags, s.tags)
		assert.Equal(t, extras, s.extras)
	})

	t.Run("WithContext keeps the echo context", func(t *testing.T) {
		ctx := echo.New().NewContext(nil, nil)

		s := WithContext(ctx)

		assert.Equal(t, ctx, s.context)
	})
}

func TestSentry_Error(t *testing.T) {
	captured := initCapture(t)

	t.Run("captures error with tags and route", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/movies", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/movies")
		c.Response().Header().Set(echo.HeaderXRequestID, "req-1")

		WithContext(c).WithTags(map[string]string{"op": "list"}).Error(errors.New("db down"))

		events := captured.all()
		require.Len(t, events, 1)
		assert.Equal(t, sentrygo.LevelError, events[0].Level)
		assert.Equal(t, "list", events[0].Tags["op"])
		assert.Equal(t, "/movies", events[0].Tags["http.route"])
		assert.Equal(t, "req-1", events[0].Tags["request_id"])
	})

	t.Run("ignores nil error", func(t *testing.T) {
		before := len(captured.all())

		new(Sentry).Error(nil)

		assert.Len(t, captured.all(), before)
	})
}

func TestSentry_Warningf(t *testing.T) {
	captured := initCapture(t)

	new(Sentry).Warningf("slow query: %dms", 1200)

	events := captured.all()
	require.Len(t, events, 1)
	assert.Equal(t, sentrygo.LevelWarning, events[0].Level)
	assert.Equal(t, "slow query: 1200ms", events[0].Message)
}

func TestSentry_GetHub(t *testing.T) {
	t.Run("falls back to current hub without context", func(t *testing.T) {
		assert.Equal(t, sentrygo.CurrentHub(), new(Sentry).getHub())
	})

	t.Run("uses hub stored by the echo middleware", func(t *testing.T) {
		ctx := echo.New().NewContext(nil, nil)
		hub := sentrygo.CurrentHub().Clone()
		ctx.Set("sentry", hub)

		assert.Same(t, hub, WithContext(ctx).getHub())
	})
}
