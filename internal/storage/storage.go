package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Patient represents a practitioner's patient record
type Patient struct {
	ID               uuid.UUID
	Name             string
	Age              int
	Gender           string
	HeightCm         float64
	WeightKg         float64
	Prakriti         string // constitution, e.g. "Vata-Pitta"
	VataPct          int
	PittaPct         int
	KaphaPct         int
	HealthConditions []string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Storage is the patients storage interface
type Storage interface {
	// ListPatients returns all patients
	ListPatients(ctx context.Context) ([]Patient, error)

	// GetPatient returns a patient by ID
	GetPatient(ctx context.Context, id uuid.UUID) (*Patient, error)

	// CreatePatient creates a new patient
	CreatePatient(ctx context.Context, patient *Patient) error

	// UpdatePatient updates a patient
	UpdatePatient(ctx context.Context, patient *Patient) error

	// DeletePatient removes a patient
	DeletePatient(ctx context.Context, id uuid.UUID) error

	// Close closes the connection (for Postgres)
	Close() error
}

// DietPlansStorage is the weekly diet plan storage interface
type DietPlansStorage interface {
	// GetDietPlan returns the stored plan for a patient. bool=false means not found.
	GetDietPlan(ctx context.Context, patientID uuid.UUID) (DietPlanRecord, bool, error)

	// UpsertDietPlan creates or replaces the plan for a patient (upsert by patient_id)
	UpsertDietPlan(ctx context.Context, patientID uuid.UUID, payload []byte) (DietPlanRecord, error)

	// DeleteDietPlan removes the plan for a patient (no error if absent)
	DeleteDietPlan(ctx context.Context, patientID uuid.UUID) error
}

// DietPlanRecord is a row from diet_plans
type DietPlanRecord struct {
	PatientID uuid.UUID
	Payload   []byte // JSON weekly plan
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReportsStorage is the report metadata storage interface
type ReportsStorage interface {
	// CreateReport creates a new report (metadata + optional data for memory mode)
	CreateReport(ctx context.Context, report *ReportMeta) error

	// GetReport returns a report by ID
	GetReport(ctx context.Context, id uuid.UUID) (*ReportMeta, error)

	// ListReports returns a patient's reports with pagination
	ListReports(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]ReportMeta, error)

	// DeleteReport removes a report (metadata and data)
	DeleteReport(ctx context.Context, id uuid.UUID) error
}

// ReportMeta is report metadata persisted per generated file
type ReportMeta struct {
	ID        uuid.UUID
	PatientID uuid.UUID
	Format    string  // "pdf" or "csv"
	ObjectKey *string // blob object key (NULL for memory mode)
	SizeBytes int64
	Status    string // "ready" or "failed"
	Error     *string
	CreatedAt time.Time
	UpdatedAt time.Time
	Data      []byte // Only used in memory mode (not stored in DB)
}
