package httpserver_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"moviecatalog/httpserver"
	"moviecatalog/pkg/config"

	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	// no rate limit so table tests don't trip it
	return &config.Config{}
}

func decodeMessage(t testing.TB, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp httpserver.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "body: %s", rec.Body.String())
	return resp.Message
}

func decodeJSON(t testing.TB, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), "body: %s", rec.Body.String())
}

func newJSONRequest(method, path, body string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(server *httpserver.Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	server.Router.ServeHTTP(rec, req)
	return rec
}
