package patients

import (
	"time"

	"github.com/google/uuid"
)

// DoshaBalanceDTO is the three-way dosha split in percent
type DoshaBalanceDTO struct {
	Vata  int `json:"vata"`
	Pitta int `json:"pitta"`
	Kapha int `json:"kapha"`
}

// PatientDTO is the API representation of a patient
type PatientDTO struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	Age              int             `json:"age"`
	Gender           string          `json:"gender"`
	HeightCm         float64         `json:"height_cm"`
	WeightKg         float64         `json:"weight_kg"`
	BMI              float64         `json:"bmi"`
	BMICategory      string          `json:"bmi_category"`
	Prakriti         string          `json:"prakriti"`
	DoshaBalance     DoshaBalanceDTO `json:"dosha_balance"`
	HealthConditions []string        `json:"health_conditions"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// PatientsResponse is the response for GET /v1/patients
type PatientsResponse struct {
	Patients []PatientDTO `json:"patients"`
}

// CreatePatientRequest is the request for POST /v1/patients
type CreatePatientRequest struct {
	Name             string          `json:"name"`
	Age              int             `json:"age"`
	Gender           string          `json:"gender"`
	HeightCm         float64         `json:"height_cm"`
	WeightKg         float64         `json:"weight_kg"`
	Prakriti         string          `json:"prakriti"`
	DoshaBalance     DoshaBalanceDTO `json:"dosha_balance"`
	HealthConditions []string        `json:"health_conditions"`
}

// UpdatePatientRequest is the request for PATCH /v1/patients/{id}.
// Nil fields are left unchanged.
type UpdatePatientRequest struct {
	Name             *string          `json:"name"`
	Age              *int             `json:"age"`
	Gender           *string          `json:"gender"`
	HeightCm         *float64         `json:"height_cm"`
	WeightKg         *float64         `json:"weight_kg"`
	Prakriti         *string          `json:"prakriti"`
	DoshaBalance     *DoshaBalanceDTO `json:"dosha_balance"`
	HealthConditions *[]string        `json:"health_conditions"`
}

// ErrorResponse is the standard error envelope
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
