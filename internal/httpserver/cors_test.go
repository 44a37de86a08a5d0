package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ayursetu/ayur-hub/internal/config"
)

func corsHandler(t *testing.T, cfg *config.Config, innerCalled *bool) http.Handler {
	t.Helper()
	return CORSMiddleware(cfg, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if innerCalled != nil {
			*innerCalled = true
		}
		w.WriteHeader(http.StatusOK)
	}))
}

func TestCORSMiddleware(t *testing.T) {
	cfg := &config.Config{
		CORSAllowedOrigins:   []string{"https://app.ayursetu.in"},
		CORSAllowCredentials: true,
	}

	t.Run("preflight from allowed origin", func(t *testing.T) {
		handler := CORSMiddleware(cfg, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("inner handler must not run on preflight")
		}))

		req := httptest.NewRequest(http.MethodOptions, "/v1/patients", nil)
		req.Header.Set("Origin", "https://app.ayursetu.in")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rr.Code)
		}
		if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://app.ayursetu.in" {
			t.Errorf("Allow-Origin = %q", got)
		}
		if rr.Header().Get("Access-Control-Allow-Methods") == "" {
			t.Error("expected Allow-Methods on preflight")
		}
		if got := rr.Header().Get("Access-Control-Max-Age"); got != "600" {
			t.Errorf("Max-Age = %q", got)
		}
	})

	t.Run("preflight from disallowed origin gets bare 204", func(t *testing.T) {
		handler := corsHandler(t, cfg, nil)

		req := httptest.NewRequest(http.MethodOptions, "/v1/patients", nil)
		req.Header.Set("Origin", "https://evil.example")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rr.Code)
		}
		if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("expected no Allow-Origin, got %q", got)
		}
	})

	t.Run("normal request from allowed origin", func(t *testing.T) {
		handler := corsHandler(t, cfg, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/patients", nil)
		req.Header.Set("Origin", "https://app.ayursetu.in")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
		if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://app.ayursetu.in" {
			t.Errorf("Allow-Origin = %q", got)
		}
		if got := rr.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
			t.Errorf("Allow-Credentials = %q", got)
		}
	})

	t.Run("normal request from disallowed origin passes through unharmed", func(t *testing.T) {
		innerCalled := false
		handler := corsHandler(t, cfg, &innerCalled)

		req := httptest.NewRequest(http.MethodGet, "/v1/patients", nil)
		req.Header.Set("Origin", "https://evil.example")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if !innerCalled {
			t.Error("inner handler should run; the browser enforces the block")
		}
		if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("expected no Allow-Origin, got %q", got)
		}
	})

	t.Run("no origin header", func(t *testing.T) {
		innerCalled := false
		handler := corsHandler(t, cfg, &innerCalled)

		req := httptest.NewRequest(http.MethodGet, "/v1/patients", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if !innerCalled {
			t.Error("inner handler should run for non-browser clients")
		}
		if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("expected no Allow-Origin, got %q", got)
		}
	})
}
