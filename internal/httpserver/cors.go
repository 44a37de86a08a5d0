package httpserver

import (
	"net/http"
	"strings"

	"github.com/ayursetu/ayur-hub/internal/config"
)

type originSet map[string]struct{}

func newOriginSet(origins []string) originSet {
	set := make(originSet, len(origins))
	for _, o := range origins {
		set[strings.TrimSpace(o)] = struct{}{}
	}
	return set
}

func (s originSet) contains(origin string) bool {
	_, ok := s[origin]
	return ok
}

// CORSMiddleware adds CORS headers for allow-listed origins and answers
// preflight requests. Disallowed origins get a bare 204 on preflight; the
// missing headers make the browser reject the actual request.
func CORSMiddleware(cfg *config.Config, next http.Handler) http.Handler {
	allowed := newOriginSet(cfg.CORSAllowedOrigins)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		originAllowed := origin != "" && allowed.contains(origin)

		if originAllowed {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Vary", "Origin")
			if cfg.CORSAllowCredentials {
				h.Set("Access-Control-Allow-Credentials", "true")
			}
		}

		if r.Method == http.MethodOptions && origin != "" {
			if originAllowed {
				h := w.Header()
				h.Set("Access-Control-Allow-Methods", "GET,POST,PATCH,DELETE,OPTIONS")
				h.Set("Access-Control-Allow-Headers", "Authorization,Content-Type")
				h.Set("Access-Control-Max-Age", "600")
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
