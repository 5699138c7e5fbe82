package httpserver

import (
	"context"
	"net/http"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

// ctxUserIDKey is the context key type for the authenticated user id.
type ctxUserIDKey struct{}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}

// requireAuth enforces a valid bearer token and injects the subject user
// id into the request context. The token is verified here once; handlers
// must not re-verify it.
//
//   - missing token: 401 "access denied"
//   - failed verification: 400 "invalid token"
func (s *Server) requireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearerToken(r)
			if tokenStr == "" {
				writeMsg(w, http.StatusUnauthorized, "access denied")
				return
			}
			claims, err := s.tokens.Verify(tokenStr)
			if err != nil {
				writeMsg(w, http.StatusBadRequest, "invalid token")
				return
			}
			ctx := context.WithValue(r.Context(), ctxUserIDKey{}, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// userID returns the id placed in the context by requireAuth, or "" if
// the handler somehow ran without it.
func userID(ctx context.Context) string {
	id, _ := ctx.Value(ctxUserIDKey{}).(string)
	return id
}

// requestLogger emits one zerolog line per request with method, path,
// status, and duration.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
