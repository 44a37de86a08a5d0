package auth

import (
	"net/http"
	"strings"

	"github.com/ayursetu/ayur-hub/internal/config"
)

// Middleware guards routes with bearer-token checks.
type Middleware struct {
	config  *config.Config
	service *Service
}

func NewMiddleware(cfg *config.Config, service *Service) *Middleware {
	return &Middleware{config: cfg, service: service}
}

// RequireAuth rejects requests without a valid token when auth is required.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return m.guard(next, true)
}

// OptionalAuth validates a bearer token only when one is provided; requests
// without a token pass through unchanged.
func (m *Middleware) OptionalAuth(next http.Handler) http.Handler {
	return m.guard(next, false)
}

func (m *Middleware) guard(next http.Handler, required bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		header := strings.TrimSpace(r.Header.Get("Authorization"))

		if required {
			if !m.config.AuthRequired {
				next.ServeHTTP(w, r)
				return
			}
		} else if header == "" {
			next.ServeHTTP(w, r)
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
			return
		}

		userID, err := m.service.VerifyJWT(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"error":{"code":"` + code + `","message":"` + message + `"}}`))
}

func isPublicPath(path string) bool {
	return path == "/healthz" || strings.HasPrefix(path, "/v1/auth/")
}
