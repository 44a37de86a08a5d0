package reports

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ayursetu/ayur-hub/internal/catalog"
	"github.com/ayursetu/ayur-hub/internal/dietplan"
	"github.com/ayursetu/ayur-hub/internal/storage/memory"
	"github.com/google/uuid"
)

func setupTestService(t *testing.T) (*Service, uuid.UUID) {
	t.Helper()

	store := memory.New()
	cat := catalog.Default()

	patients, err := store.ListPatients(context.Background())
	if err != nil {
		t.Fatalf("failed to list patients: %v", err)
	}
	if len(patients) == 0 {
		t.Fatal("expected seeded demo patient")
	}
	patientID := patients[0].ID

	// Save a small plan so reports have content
	plan := dietplan.NewEmptyPlan()
	food := cat.Fallback()
	plan["Monday"]["breakfast"] = []dietplan.DietEntry{
		{ID: dietplan.NewEntryID(), FoodID: food.ID, Quantity: "1 bowl", Notes: "warm"},
	}
	payload, err := json.Marshal(plan)
	if err != nil {
		t.Fatalf("failed to marshal plan: %v", err)
	}
	if _, err := store.UpsertDietPlan(context.Background(), patientID, payload); err != nil {
		t.Fatalf("failed to save plan: %v", err)
	}

	service := NewService(
		store.GetReportsStorage(),
		store.GetDietPlansStorage(),
		store,
		cat,
		nil,   // No S3, local mode
		50,    // max reports per patient
		900,   // presign TTL
		"",    // publicBaseURL
		false, // preferPublicURL
	)

	return service, patientID
}

func TestHandleCreate_CSV_Success(t *testing.T) {
	service, patientID := setupTestService(t)
	handler := NewHandlers(service)

	reqBody := CreateReportRequest{
		PatientID: patientID,
		Format:    FormatCSV,
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/v1/reports", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.HandleCreate(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d. Body: %s", w.Code, w.Body.String())
	}

	var resp ReportDTO
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Format != FormatCSV {
		t.Errorf("expected format csv, got %s", resp.Format)
	}

	if resp.DownloadURL == "" {
		t.Error("expected download URL")
	}
}

func TestHandleCreate_PDF_Success(t *testing.T) {
	service, patientID := setupTestService(t)
	handler := NewHandlers(service)

	reqBody := CreateReportRequest{
		PatientID: patientID,
		Format:    FormatPDF,
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/v1/reports", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.HandleCreate(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d. Body: %s", w.Code, w.Body.String())
	}

	var resp ReportDTO
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Format != FormatPDF {
		t.Errorf("expected format pdf, got %s", resp.Format)
	}

	if resp.SizeBytes == 0 {
		t.Error("expected non-empty PDF")
	}
}

func TestHandleCreate_InvalidFormat(t *testing.T) {
	service, patientID := setupTestService(t)
	handler := NewHandlers(service)

	reqBody := CreateReportRequest{
		PatientID: patientID,
		Format:    "docx",
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/v1/reports", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.HandleCreate(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}

	var errResp map[string]interface{}
	json.NewDecoder(w.Body).Decode(&errResp)
	errorData := errResp["error"].(map[string]interface{})
	if errorData["code"] != "invalid_format" {
		t.Errorf("expected error code invalid_format, got %s", errorData["code"])
	}
}

func TestHandleCreate_PatientNotFound(t *testing.T) {
	service, _ := setupTestService(t)
	handler := NewHandlers(service)

	reqBody := CreateReportRequest{
		PatientID: uuid.New(), // Non-existent patient
		Format:    FormatCSV,
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/v1/reports", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.HandleCreate(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestHandleList(t *testing.T) {
	service, patientID := setupTestService(t)
	handler := NewHandlers(service)

	// Create a report first
	if _, err := service.CreateReport(context.Background(), CreateReportRequest{
		PatientID: patientID,
		Format:    FormatCSV,
	}); err != nil {
		t.Fatalf("failed to create report: %v", err)
	}

	req := httptest.NewRequest("GET", fmt.Sprintf("/v1/reports?patient_id=%s", patientID.String()), nil)
	w := httptest.NewRecorder()

	handler.HandleList(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var resp ReportsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp.Reports) != 1 {
		t.Errorf("expected 1 report, got %d", len(resp.Reports))
	}
}

func TestHandleDownload_LocalMode(t *testing.T) {
	service, patientID := setupTestService(t)
	handler := NewHandlers(service)

	report, err := service.CreateReport(context.Background(), CreateReportRequest{
		PatientID: patientID,
		Format:    FormatCSV,
	})
	if err != nil {
		t.Fatalf("failed to create report: %v", err)
	}

	req := httptest.NewRequest("GET", fmt.Sprintf("/v1/reports/%s/download", report.ID.String()), nil)
	req.SetPathValue("id", report.ID.String())
	w := httptest.NewRecorder()

	handler.HandleDownload(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	if w.Header().Get("Content-Type") != "text/csv" {
		t.Errorf("expected content type text/csv, got %s", w.Header().Get("Content-Type"))
	}

	csvBody := w.Body.String()
	if !strings.HasPrefix(csvBody, "day,meal,food,quantity,notes") {
		t.Errorf("expected CSV header row, got: %s", csvBody)
	}
	if !strings.Contains(csvBody, "Monday,Breakfast") {
		t.Errorf("expected saved plan entry in CSV, got: %s", csvBody)
	}
}

func TestHandleDownload_PDFBytes(t *testing.T) {
	service, patientID := setupTestService(t)
	handler := NewHandlers(service)

	report, err := service.CreateReport(context.Background(), CreateReportRequest{
		PatientID: patientID,
		Format:    FormatPDF,
	})
	if err != nil {
		t.Fatalf("failed to create report: %v", err)
	}

	req := httptest.NewRequest("GET", fmt.Sprintf("/v1/reports/%s/download", report.ID.String()), nil)
	req.SetPathValue("id", report.ID.String())
	w := httptest.NewRecorder()

	handler.HandleDownload(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Error("expected PDF magic bytes")
	}
}

func TestHandleDelete(t *testing.T) {
	service, patientID := setupTestService(t)
	handler := NewHandlers(service)

	report, err := service.CreateReport(context.Background(), CreateReportRequest{
		PatientID: patientID,
		Format:    FormatCSV,
	})
	if err != nil {
		t.Fatalf("failed to create report: %v", err)
	}

	req := httptest.NewRequest("DELETE", fmt.Sprintf("/v1/reports/%s", report.ID.String()), nil)
	req.SetPathValue("id", report.ID.String())
	w := httptest.NewRecorder()

	handler.HandleDelete(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected status 204, got %d", w.Code)
	}

	if _, err = service.GetReport(context.Background(), report.ID); err == nil {
		t.Error("expected report to be deleted")
	}
}

func TestHandleDelete_NotFound(t *testing.T) {
	service, _ := setupTestService(t)
	handler := NewHandlers(service)

	id := uuid.New().String()
	req := httptest.NewRequest("DELETE", fmt.Sprintf("/v1/reports/%s", id), nil)
	req.SetPathValue("id", id)
	w := httptest.NewRecorder()

	handler.HandleDelete(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestCreateReport_MaxPerPatient(t *testing.T) {
	store := memory.New()
	cat := catalog.Default()

	patients, _ := store.ListPatients(context.Background())
	patientID := patients[0].ID

	service := NewService(
		store.GetReportsStorage(),
		store.GetDietPlansStorage(),
		store,
		cat,
		nil,
		2, // low cap
		900,
		"",
		false,
	)

	for i := 0; i < 2; i++ {
		if _, err := service.CreateReport(context.Background(), CreateReportRequest{
			PatientID: patientID,
			Format:    FormatCSV,
		}); err != nil {
			t.Fatalf("report %d: unexpected error: %v", i, err)
		}
	}

	_, err := service.CreateReport(context.Background(), CreateReportRequest{
		PatientID: patientID,
		Format:    FormatCSV,
	})
	if err != ErrTooManyReports {
		t.Errorf("expected ErrTooManyReports, got %v", err)
	}
}
