package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/skilltrack/internal/jwt"
	"github.com/sbilibin2017/skilltrack/internal/middlewares"
	"github.com/stretchr/testify/require"
)

var testTokens = jwt.New("test-secret", time.Hour)

// authed wraps a handler with the real auth middleware so that requests built
// with newAuthedRequest carry parsed claims.
func authed(h http.Handler) http.Handler {
	return middlewares.AuthMiddleware(testTokens)(h)
}

// newAuthedRequest builds a request with a valid bearer token for userID.
func newAuthedRequest(t *testing.T, method, target string, body io.Reader, userID uuid.UUID, isAdmin bool) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	token, err := testTokens.Generate(req.Context(), userID, isAdmin)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}
