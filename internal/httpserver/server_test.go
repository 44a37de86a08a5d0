package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ayursetu/ayur-hub/internal/config"
)

func newTestServer() *Server {
	cfg := &config.Config{
		Env:      "local",
		Port:     8080,
		AuthMode: "none",
		AIMode:   "mock",
		Blob:     config.BlobConfig{Mode: config.BlobModeLocal},
	}
	return New(cfg)
}

func TestHealthz(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	server.mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("expected status ok, got %s", resp["status"])
	}
}

func TestRoutesWired(t *testing.T) {
	server := newTestServer()

	// Every wired route should resolve to something other than 404
	requests := []struct {
		method string
		path   string
	}{
		{"GET", "/v1/foods"},
		{"GET", "/v1/patients"},
		{"GET", "/v1/reports?patient_id=not-a-uuid"},
	}

	for _, r := range requests {
		req := httptest.NewRequest(r.method, r.path, nil)
		w := httptest.NewRecorder()
		server.mux.ServeHTTP(w, req)

		if w.Code == http.StatusNotFound {
			t.Errorf("%s %s: route not registered", r.method, r.path)
		}
	}
}

func TestPatientsEndToEnd(t *testing.T) {
	server := newTestServer()

	// Memory storage seeds a demo patient
	req := httptest.NewRequest("GET", "/v1/patients", nil)
	w := httptest.NewRecorder()
	server.mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Patients []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"patients"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Patients) == 0 {
		t.Fatal("expected seeded demo patient")
	}

	// The seeded patient starts with an empty well-formed plan
	planReq := httptest.NewRequest("GET", "/v1/patients/"+resp.Patients[0].ID+"/plan", nil)
	planW := httptest.NewRecorder()
	server.mux.ServeHTTP(planW, planReq)

	if planW.Code != http.StatusOK {
		t.Fatalf("expected status 200 for plan, got %d. Body: %s", planW.Code, planW.Body.String())
	}

	var planResp struct {
		PatientID string                      `json:"patient_id"`
		Plan      map[string]map[string][]any `json:"plan"`
	}
	if err := json.NewDecoder(planW.Body).Decode(&planResp); err != nil {
		t.Fatalf("failed to decode plan response: %v", err)
	}
	if len(planResp.Plan) != 7 {
		t.Errorf("expected 7 weekdays, got %d", len(planResp.Plan))
	}
}
