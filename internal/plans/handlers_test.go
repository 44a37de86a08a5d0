package plans

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ayursetu/ayur-hub/internal/ai"
	"github.com/ayursetu/ayur-hub/internal/catalog"
	"github.com/ayursetu/ayur-hub/internal/dietplan"
	"github.com/ayursetu/ayur-hub/internal/storage"
	"github.com/ayursetu/ayur-hub/internal/storage/memory"
	"github.com/google/uuid"
)

func newTestHandler(t *testing.T, provider ai.Provider) (*Handler, uuid.UUID) {
	t.Helper()

	store := memory.New()
	patient := &storage.Patient{
		Name:     "Test Patient",
		Age:      30,
		HeightCm: 170,
		WeightKg: 65,
		Prakriti: "Vata-Pitta",
		VataPct:  45,
		PittaPct: 35,
		KaphaPct: 20,
	}
	if err := store.CreatePatient(context.Background(), patient); err != nil {
		t.Fatalf("failed to create patient: %v", err)
	}

	service := NewService(store, store, catalog.Default(), provider)
	return NewHandler(service), patient.ID
}

func doRequest(h http.HandlerFunc, method, target, patientID string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.SetPathValue("id", patientID)

	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func TestHandleGetPlanEmpty(t *testing.T) {
	handler, patientID := newTestHandler(t, ai.NewMockProvider())

	w := doRequest(handler.HandleGet, http.MethodGet, "/v1/patients/"+patientID.String()+"/plan", patientID.String(), nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp PlanResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.UpdatedAt != nil {
		t.Error("expected nil updated_at for unsaved plan")
	}

	if !dietplan.IsWellFormed(resp.Plan) {
		t.Error("expected a full-shape empty plan")
	}

	if n := dietplan.EntryCount(resp.Plan); n != 0 {
		t.Errorf("expected 0 entries, got %d", n)
	}
}

func TestHandleGetPlanUnknownPatient(t *testing.T) {
	handler, _ := newTestHandler(t, ai.NewMockProvider())

	other := uuid.New()
	w := doRequest(handler.HandleGet, http.MethodGet, "/v1/patients/"+other.String()+"/plan", other.String(), nil)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestHandleSaveAndGet(t *testing.T) {
	handler, patientID := newTestHandler(t, ai.NewMockProvider())

	plan := dietplan.NewEmptyPlan()
	plan["Monday"]["breakfast"] = []dietplan.DietEntry{
		{FoodID: "oatmeal", Quantity: "1 bowl"},
	}
	body, _ := json.Marshal(SavePlanRequest{Plan: plan})

	w := doRequest(handler.HandleSave, http.MethodPut, "/v1/patients/"+patientID.String()+"/plan", patientID.String(), body)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doRequest(handler.HandleGet, http.MethodGet, "/v1/patients/"+patientID.String()+"/plan", patientID.String(), nil)

	var resp PlanResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	entries := resp.Plan["Monday"]["breakfast"]
	if len(entries) != 1 {
		t.Fatalf("expected 1 breakfast entry, got %d", len(entries))
	}
	if entries[0].FoodID != "oatmeal" {
		t.Errorf("expected oatmeal, got %s", entries[0].FoodID)
	}
	if entries[0].ID == "" {
		t.Error("expected normalization to assign an entry id")
	}
	if resp.UpdatedAt == nil {
		t.Error("expected updated_at after save")
	}
}

func TestHandleGenerate(t *testing.T) {
	handler, patientID := newTestHandler(t, ai.NewMockProvider())

	w := doRequest(handler.HandleGenerate, http.MethodPost, "/v1/patients/"+patientID.String()+"/plan/generate", patientID.String(), nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp PlanResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !dietplan.IsWellFormed(resp.Plan) {
		t.Fatal("generated plan is not well-formed")
	}
	if dietplan.EntryCount(resp.Plan) == 0 {
		t.Fatal("expected generated plan to have entries")
	}

	cat := catalog.Default()
	for _, day := range dietplan.Weekdays {
		for _, slot := range dietplan.Slots {
			for _, e := range resp.Plan[day][slot] {
				if _, ok := cat.ByID(e.FoodID); !ok {
					t.Errorf("entry references unknown food %q", e.FoodID)
				}
			}
		}
	}
}

// blockingProvider holds plan generation open until released.
type blockingProvider struct {
	started chan struct{}
	release chan struct{}
}

func (p *blockingProvider) GenerateWeeklyPlan(ctx context.Context, req ai.PlanRequest) (string, error) {
	close(p.started)
	select {
	case <-p.release:
	case <-ctx.Done():
	}
	return `{"Monday":{"breakfast":[{"foodName":"Oatmeal"}]}}`, nil
}

func (p *blockingProvider) SuggestMeals(ctx context.Context, req ai.SuggestionRequest) (string, error) {
	return "[]", nil
}

func TestHandleGenerateConflict(t *testing.T) {
	provider := &blockingProvider{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	handler, patientID := newTestHandler(t, provider)

	done := make(chan *httptest.ResponseRecorder, 1)
	go func() {
		done <- doRequest(handler.HandleGenerate, http.MethodPost, "/v1/patients/"+patientID.String()+"/plan/generate", patientID.String(), nil)
	}()

	<-provider.started

	// Second request while the first is still in flight
	w := doRequest(handler.HandleGenerate, http.MethodPost, "/v1/patients/"+patientID.String()+"/plan/generate", patientID.String(), nil)
	if w.Code != http.StatusConflict {
		t.Errorf("expected status 409 for overlapping generation, got %d", w.Code)
	}

	var resp ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error.Code != "generation_in_flight" {
		t.Errorf("expected error code 'generation_in_flight', got %s", resp.Error.Code)
	}

	close(provider.release)
	select {
	case first := <-done:
		if first.Code != http.StatusOK {
			t.Errorf("expected first generation to succeed, got %d", first.Code)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("first generation did not finish")
	}
}

func TestHandleSuggest(t *testing.T) {
	handler, patientID := newTestHandler(t, ai.NewMockProvider())

	body, _ := json.Marshal(SuggestRequest{Day: "Tuesday", Slot: "lunch"})
	w := doRequest(handler.HandleSuggest, http.MethodPost, "/v1/patients/"+patientID.String()+"/plan/suggest", patientID.String(), body)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp SuggestResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp.Entries) == 0 {
		t.Fatal("expected suggestions")
	}
	if got := len(resp.Plan["Tuesday"]["lunch"]); got != len(resp.Entries) {
		t.Errorf("expected %d entries appended to the plan, got %d", len(resp.Entries), got)
	}
}

func TestHandleSuggestInvalidDay(t *testing.T) {
	handler, patientID := newTestHandler(t, ai.NewMockProvider())

	body, _ := json.Marshal(SuggestRequest{Day: "Funday", Slot: "lunch"})
	w := doRequest(handler.HandleSuggest, http.MethodPost, "/v1/patients/"+patientID.String()+"/plan/suggest", patientID.String(), body)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestHandleDeletePlan(t *testing.T) {
	handler, patientID := newTestHandler(t, ai.NewMockProvider())

	plan := dietplan.NewEmptyPlan()
	plan["Friday"]["dinner"] = []dietplan.DietEntry{{FoodID: "khichdi"}}
	body, _ := json.Marshal(SavePlanRequest{Plan: plan})
	doRequest(handler.HandleSave, http.MethodPut, "/v1/patients/"+patientID.String()+"/plan", patientID.String(), body)

	w := doRequest(handler.HandleDelete, http.MethodDelete, "/v1/patients/"+patientID.String()+"/plan", patientID.String(), nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", w.Code)
	}

	w = doRequest(handler.HandleGet, http.MethodGet, "/v1/patients/"+patientID.String()+"/plan", patientID.String(), nil)
	var resp PlanResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if dietplan.EntryCount(resp.Plan) != 0 {
		t.Error("expected empty plan after delete")
	}
	if resp.UpdatedAt != nil {
		t.Error("expected nil updated_at after delete")
	}
}
