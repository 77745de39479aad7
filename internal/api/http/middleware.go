package http

import (
	"net/http"
	"strings"

	"medequip-backend/internal/security"
)

// adminOnly guards administrative routes with the bearer admin token.
func adminOnly(tokens security.TokenManager, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: errorBody{Code: "unauthorized", Message: "missing bearer token"}})
			return
		}
		if _, err := tokens.ValidateToken(token); err != nil {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: errorBody{Code: "unauthorized", Message: err.Error()}})
			return
		}
		next(w, r)
	}
}
