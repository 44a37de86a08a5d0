package plans

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
)

// Handler holds the HTTP handlers for weekly plans
type Handler struct {
	service *Service
}

// NewHandler creates a new handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleGet handles GET /v1/patients/{id}/plan
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	patientID, ok := h.patientID(w, r)
	if !ok {
		return
	}

	resp, err := h.service.GetPlan(r.Context(), patientID)
	if err != nil {
		h.sendServiceError(w, err, "Failed to load plan")
		return
	}

	h.sendJSON(w, http.StatusOK, resp)
}

// HandleSave handles PUT /v1/patients/{id}/plan
func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	patientID, ok := h.patientID(w, r)
	if !ok {
		return
	}

	var req SavePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON")
		return
	}

	resp, err := h.service.SavePlan(r.Context(), patientID, req)
	if err != nil {
		h.sendServiceError(w, err, "Failed to save plan")
		return
	}

	h.sendJSON(w, http.StatusOK, resp)
}

// HandleDelete handles DELETE /v1/patients/{id}/plan
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	patientID, ok := h.patientID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeletePlan(r.Context(), patientID); err != nil {
		h.sendServiceError(w, err, "Failed to delete plan")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleGenerate handles POST /v1/patients/{id}/plan/generate
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	patientID, ok := h.patientID(w, r)
	if !ok {
		return
	}

	resp, err := h.service.GeneratePlan(r.Context(), patientID)
	if err != nil {
		h.sendServiceError(w, err, "Failed to generate plan")
		return
	}

	h.sendJSON(w, http.StatusOK, resp)
}

// HandleSuggest handles POST /v1/patients/{id}/plan/suggest
func (h *Handler) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	patientID, ok := h.patientID(w, r)
	if !ok {
		return
	}

	var req SuggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON")
		return
	}

	resp, err := h.service.SuggestMeals(r.Context(), patientID, req)
	if err != nil {
		h.sendServiceError(w, err, "Failed to suggest meals")
		return
	}

	h.sendJSON(w, http.StatusOK, resp)
}

func (h *Handler) patientID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_id", "Invalid patient ID")
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) sendServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrPatientNotFound):
		h.sendError(w, http.StatusNotFound, "not_found", "Patient not found")
	case errors.Is(err, ErrGenerationInFlight):
		h.sendError(w, http.StatusConflict, "generation_in_flight", "A plan generation is already in progress for this patient")
	case errors.Is(err, ErrInvalidDay):
		h.sendError(w, http.StatusBadRequest, "invalid_day", "Unknown weekday")
	case errors.Is(err, ErrInvalidSlot):
		h.sendError(w, http.StatusBadRequest, "invalid_slot", "Unknown meal slot")
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
