package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/mahinuralam/Color-Paletters/internal/server/auth"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// requireAuth extracts the bearer token from the Authorization header and
// verifies it. A missing header is reported as "missing token"; any invalid
// token (bad signature, expired, malformed) gets a single generic response
// so callers cannot probe which check failed.
func (s *HTTPServer) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		header := r.Header.Get("Authorization")
		if header == "" {
			writeError(w, http.StatusUnauthorized, "missing token")
			return
		}

		accessToken, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || accessToken == "" {
			writeError(w, http.StatusUnauthorized, "missing token")
			return
		}

		userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}
