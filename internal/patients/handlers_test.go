package patients

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ayursetu/ayur-hub/internal/storage/memory"
)

func TestHandleList(t *testing.T) {
	store := memory.New()
	service := NewService(store)
	handler := NewHandler(service)

	req := httptest.NewRequest(http.MethodGet, "/v1/patients", nil)
	w := httptest.NewRecorder()

	handler.HandleList(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var resp PatientsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	// Memory storage preloads one demo patient
	if len(resp.Patients) != 1 {
		t.Errorf("expected 1 patient, got %d", len(resp.Patients))
	}

	if resp.Patients[0].Name != "Priya Sharma" {
		t.Errorf("expected demo patient, got %s", resp.Patients[0].Name)
	}

	if resp.Patients[0].BMI != 21.3 {
		t.Errorf("expected BMI 21.3, got %v", resp.Patients[0].BMI)
	}
}

func TestHandleCreate(t *testing.T) {
	store := memory.New()
	service := NewService(store)
	handler := NewHandler(service)

	reqBody := CreatePatientRequest{
		Name:         "Rahul Verma",
		Age:          41,
		Gender:       "Male",
		HeightCm:     178,
		WeightKg:     82,
		Prakriti:     "Kapha-Pitta",
		DoshaBalance: DoshaBalanceDTO{Vata: 20, Pitta: 35, Kapha: 45},
	}
	body, _ := json.Marshal(reqBody)

	req := httptest.NewRequest(http.MethodPost, "/v1/patients", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.HandleCreate(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d", w.Code)
	}

	var resp PatientDTO
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Name != "Rahul Verma" {
		t.Errorf("expected name 'Rahul Verma', got %s", resp.Name)
	}

	if resp.BMICategory != "Overweight" {
		t.Errorf("expected BMI category 'Overweight', got %s", resp.BMICategory)
	}
}

func TestHandleCreateEmptyName(t *testing.T) {
	store := memory.New()
	service := NewService(store)
	handler := NewHandler(service)

	body, _ := json.Marshal(CreatePatientRequest{Name: "   "})

	req := httptest.NewRequest(http.MethodPost, "/v1/patients", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.HandleCreate(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}

	var resp ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Error.Code != "empty_name" {
		t.Errorf("expected error code 'empty_name', got %s", resp.Error.Code)
	}
}

func TestHandleCreateInvalidDosha(t *testing.T) {
	store := memory.New()
	service := NewService(store)
	handler := NewHandler(service)

	reqBody := CreatePatientRequest{
		Name:         "Bad Split",
		DoshaBalance: DoshaBalanceDTO{Vata: 50, Pitta: 30, Kapha: 30},
	}
	body, _ := json.Marshal(reqBody)

	req := httptest.NewRequest(http.MethodPost, "/v1/patients", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.HandleCreate(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}

	var resp ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Error.Code != "invalid_dosha" {
		t.Errorf("expected error code 'invalid_dosha', got %s", resp.Error.Code)
	}
}

func TestHandleUpdate(t *testing.T) {
	store := memory.New()
	service := NewService(store)
	handler := NewHandler(service)

	created, err := service.CreatePatient(context.Background(), CreatePatientRequest{
		Name:     "Anita Desai",
		Age:      28,
		HeightCm: 160,
		WeightKg: 55,
	})
	if err != nil {
		t.Fatalf("failed to create patient: %v", err)
	}

	newWeight := 58.0
	body, _ := json.Marshal(UpdatePatientRequest{WeightKg: &newWeight})

	req := httptest.NewRequest(http.MethodPatch, "/v1/patients/"+created.ID.String(), bytes.NewReader(body))
	req.SetPathValue("id", created.ID.String())
	w := httptest.NewRecorder()

	handler.HandleUpdate(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var resp PatientDTO
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.WeightKg != 58 {
		t.Errorf("expected weight 58, got %v", resp.WeightKg)
	}

	// Untouched fields stay as they were
	if resp.Name != "Anita Desai" || resp.Age != 28 {
		t.Errorf("unexpected patched fields: name=%s age=%d", resp.Name, resp.Age)
	}
}

func TestHandleDelete(t *testing.T) {
	store := memory.New()
	service := NewService(store)
	handler := NewHandler(service)

	created, err := service.CreatePatient(context.Background(), CreatePatientRequest{
		Name: "To Delete",
	})
	if err != nil {
		t.Fatalf("failed to create patient: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/v1/patients/"+created.ID.String(), nil)
	req.SetPathValue("id", created.ID.String())
	w := httptest.NewRecorder()

	handler.HandleDelete(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected status 204, got %d", w.Code)
	}

	if _, err := service.GetPatient(context.Background(), created.ID); err == nil {
		t.Error("expected patient to be gone after delete")
	}
}

func TestBMICategories(t *testing.T) {
	cases := []struct {
		bmi  float64
		want string
	}{
		{17.0, "Underweight"},
		{22.0, "Normal weight"},
		{27.5, "Overweight"},
		{31.0, "Obesity class I"},
	}

	for _, c := range cases {
		if got := BMICategory(c.bmi); got != c.want {
			t.Errorf("BMICategory(%v) = %q, want %q", c.bmi, got, c.want)
		}
	}
}
