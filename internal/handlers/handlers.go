package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/skilltrack/internal/jwt"
	"github.com/sbilibin2017/skilltrack/internal/middlewares"
)

// ErrorResponse represents a generic error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// uuidParam parses a UUID path parameter from the request.
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, name))
}

// requestClaims returns the token claims placed in the context by the
// authentication middleware.
func requestClaims(r *http.Request) *jwt.Claims {
	return middlewares.GetClaimsFromContext(r.Context())
}
