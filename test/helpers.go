// Package test contains helpers shared by test suites.
package test

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vendorledger/backend/internal/fixture"
)

// TmpFile returns the path for a temporary sqlite database that is
// cleaned up with the test.
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "fixture.db")
}

// UpstreamFixture starts an upstream fixture server for the test and
// returns it together with its base URL. The server is shut down with
// the test.
func UpstreamFixture(t *testing.T) (*fixture.Server, string) {
	server, err := fixture.Open(TmpFile(t))
	require.NoError(t, err)

	ts := httptest.NewServer(server.Router())
	t.Cleanup(ts.Close)

	return server, ts.URL
}

// Request is a helper method to simplify making a HTTP request for
// tests.
func Request(t *testing.T, handler http.Handler, method, url string) *httptest.ResponseRecorder {
	t.Helper()

	recorder := httptest.NewRecorder()
	request, err := http.NewRequest(method, url, nil)
	require.NoError(t, err)

	handler.ServeHTTP(recorder, request)

	return recorder
}
