package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/taskboard/internal/server/auth"
	"github.com/google/uuid"
)

type ctxKey string

const identityKey ctxKey = "identity"

// Identity is the caller bound to the request context by the auth
// middleware.
type Identity struct {
	UserID int
	Email  string
}

// withAuth protects an operation behind a bearer credential. A missing
// header, a non-Bearer scheme, or an empty token all fail with 401 "Access
// Denied" (one message, no distinction). A token the verifier rejects fails
// with 400 "Invalid Token"; invalid and expired tokens collapse into that
// single outcome externally.
func (s *HTTPServer) withAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondWithMessage(w, http.StatusUnauthorized, "Access Denied")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			respondWithMessage(w, http.StatusUnauthorized, "Access Denied")
			return
		}

		claims, err := auth.GetClaimsFromToken(parts[1], s.jwtSecret)
		if err != nil {
			respondWithMessage(w, http.StatusBadRequest, "Invalid Token")
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, Identity{
			UserID: claims.UserID,
			Email:  claims.Email,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func identityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// withRequestLog tags every request with a generated id and logs it.
func (s *HTTPServer) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := s.logger.With("request_id", uuid.NewString())
		log.Info(r.Context(), "request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
