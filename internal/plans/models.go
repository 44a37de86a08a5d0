package plans

import (
	"time"

	"github.com/ayursetu/ayur-hub/internal/dietplan"
	"github.com/google/uuid"
)

// PlanResponse is the API representation of a patient's weekly plan.
// The plan always carries the full weekday/slot shape; UpdatedAt is nil
// when nothing has been saved yet.
type PlanResponse struct {
	PatientID uuid.UUID          `json:"patient_id"`
	Plan      dietplan.WeeklyPlan `json:"plan"`
	UpdatedAt *time.Time         `json:"updated_at,omitempty"`
}

// SavePlanRequest is the request for PUT /v1/patients/{id}/plan
type SavePlanRequest struct {
	Plan dietplan.WeeklyPlan `json:"plan"`
}

// SuggestRequest is the request for POST /v1/patients/{id}/plan/suggest
type SuggestRequest struct {
	Day  string `json:"day"`
	Slot string `json:"slot"`
}

// SuggestResponse carries suggestions appended to one slot plus the updated plan
type SuggestResponse struct {
	Day     string              `json:"day"`
	Slot    string              `json:"slot"`
	Entries []dietplan.DietEntry `json:"entries"`
	Plan    dietplan.WeeklyPlan  `json:"plan"`
}

// ErrorResponse is the standard error envelope
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
