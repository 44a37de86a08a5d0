package patients

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
)

// Handler holds the HTTP handlers for patients
type Handler struct {
	service *Service
}

// NewHandler creates a new handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleList handles GET /v1/patients
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	patients, err := h.service.ListPatients(r.Context())
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to list patients")
		return
	}

	h.sendJSON(w, http.StatusOK, PatientsResponse{Patients: patients})
}

// HandleGet handles GET /v1/patients/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_id", "Invalid patient ID")
		return
	}

	patient, err := h.service.GetPatient(r.Context(), id)
	if err != nil {
		h.sendError(w, http.StatusNotFound, "not_found", "Patient not found")
		return
	}

	h.sendJSON(w, http.StatusOK, patient)
}

// HandleCreate handles POST /v1/patients
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON")
		return
	}

	patient, err := h.service.CreatePatient(r.Context(), req)
	if err != nil {
		h.sendValidationError(w, err, "Failed to create patient")
		return
	}

	h.sendJSON(w, http.StatusCreated, patient)
}

// HandleUpdate handles PATCH /v1/patients/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_id", "Invalid patient ID")
		return
	}

	var req UpdatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON")
		return
	}

	patient, err := h.service.UpdatePatient(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			h.sendError(w, http.StatusNotFound, "not_found", "Patient not found")
			return
		}
		h.sendValidationError(w, err, "Failed to update patient")
		return
	}

	h.sendJSON(w, http.StatusOK, patient)
}

// HandleDelete handles DELETE /v1/patients/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_id", "Invalid patient ID")
		return
	}

	err = h.service.DeletePatient(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			h.sendError(w, http.StatusNotFound, "not_found", "Patient not found")
			return
		}
		h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to delete patient")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleAssessmentQuestions handles GET /v1/assessment/questions
func (h *Handler) HandleAssessmentQuestions(w http.ResponseWriter, r *http.Request) {
	h.sendJSON(w, http.StatusOK, AssessmentQuestionsResponse{Questions: AssessmentQuestions()})
}

// HandleAssess handles POST /v1/assessment
func (h *Handler) HandleAssess(w http.ResponseWriter, r *http.Request) {
	var req AssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON")
		return
	}

	result, err := ScoreAssessment(req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoAnswers):
			h.sendError(w, http.StatusBadRequest, "no_answers", "At least one answer is required")
		case errors.Is(err, ErrUnknownOption):
			h.sendError(w, http.StatusBadRequest, "invalid_option", "Option index out of range")
		default:
			h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to score assessment")
		}
		return
	}

	h.sendJSON(w, http.StatusOK, result)
}

func (h *Handler) sendValidationError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrEmptyName):
		h.sendError(w, http.StatusBadRequest, "empty_name", "Name cannot be empty")
	case errors.Is(err, ErrInvalidAge):
		h.sendError(w, http.StatusBadRequest, "invalid_age", "Age out of range")
	case errors.Is(err, ErrInvalidDosha):
		h.sendError(w, http.StatusBadRequest, "invalid_dosha", "Dosha percentages must sum to 100")
	default:
		h.sendError(w, http.StatusInternalServerError, "internal_error", fallback)
	}
}

// sendJSON writes a JSON response
func (h *Handler) sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// sendError writes an error in the ErrorResponse format
func (h *Handler) sendError(w http.ResponseWriter, status int, code, message string) {
	h.sendJSON(w, status, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}
