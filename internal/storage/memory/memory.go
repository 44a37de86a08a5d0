package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ayursetu/ayur-hub/internal/storage"
	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("patient not found")
)

// MemoryStorage is an in-memory implementation of Storage, DietPlansStorage and ReportsStorage
type MemoryStorage struct {
	mu        sync.RWMutex
	patients  map[uuid.UUID]storage.Patient
	dietPlans *DietPlansMemoryStorage
	reports   *ReportsMemoryStorage
}

// New creates a MemoryStorage with a demo patient preloaded
func New() *MemoryStorage {
	demoID := uuid.New()
	demo := storage.Patient{
		ID:               demoID,
		Name:             "Priya Sharma",
		Age:              32,
		Gender:           "Female",
		HeightCm:         165,
		WeightKg:         58,
		Prakriti:         "Vata-Pitta",
		VataPct:          45,
		PittaPct:         35,
		KaphaPct:         20,
		HealthConditions: []string{"Anemia", "Migraine"},
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	return &MemoryStorage{
		patients: map[uuid.UUID]storage.Patient{
			demoID: demo,
		},
		dietPlans: NewDietPlansMemoryStorage(),
		reports:   NewReportsMemoryStorage(),
	}
}

func (m *MemoryStorage) ListPatients(ctx context.Context) ([]storage.Patient, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	patients := make([]storage.Patient, 0, len(m.patients))
	for _, p := range m.patients {
		patients = append(patients, p)
	}

	return patients, nil
}

func (m *MemoryStorage) GetPatient(ctx context.Context, id uuid.UUID) (*storage.Patient, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.patients[id]
	if !ok {
		return nil, ErrNotFound
	}

	return &p, nil
}

func (m *MemoryStorage) CreatePatient(ctx context.Context, patient *storage.Patient) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if patient.ID == uuid.Nil {
		patient.ID = uuid.New()
	}

	patient.CreatedAt = time.Now()
	patient.UpdatedAt = time.Now()

	m.patients[patient.ID] = *patient

	return nil
}

func (m *MemoryStorage) UpdatePatient(ctx context.Context, patient *storage.Patient) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.patients[patient.ID]; !ok {
		return ErrNotFound
	}

	patient.UpdatedAt = time.Now()
	m.patients[patient.ID] = *patient

	return nil
}

func (m *MemoryStorage) DeletePatient(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.patients[id]; !ok {
		return ErrNotFound
	}

	delete(m.patients, id)

	return nil
}

func (m *MemoryStorage) Close() error {
	// no-op for memory
	return nil
}

// GetDietPlansStorage returns the diet plans storage
func (m *MemoryStorage) GetDietPlansStorage() *DietPlansMemoryStorage {
	return m.dietPlans
}

// GetReportsStorage returns the reports storage
func (m *MemoryStorage) GetReportsStorage() *ReportsMemoryStorage {
	return m.reports
}

// DietPlansStorage methods - delegate to embedded diet plans storage

func (m *MemoryStorage) GetDietPlan(ctx context.Context, patientID uuid.UUID) (storage.DietPlanRecord, bool, error) {
	return m.dietPlans.GetDietPlan(ctx, patientID)
}

func (m *MemoryStorage) UpsertDietPlan(ctx context.Context, patientID uuid.UUID, payload []byte) (storage.DietPlanRecord, error) {
	return m.dietPlans.UpsertDietPlan(ctx, patientID, payload)
}

func (m *MemoryStorage) DeleteDietPlan(ctx context.Context, patientID uuid.UUID) error {
	return m.dietPlans.DeleteDietPlan(ctx, patientID)
}

// ReportsStorage methods - delegate to embedded reports storage

func (m *MemoryStorage) CreateReport(ctx context.Context, report *storage.ReportMeta) error {
	return m.reports.CreateReport(ctx, report)
}

func (m *MemoryStorage) GetReport(ctx context.Context, id uuid.UUID) (*storage.ReportMeta, error) {
	return m.reports.GetReport(ctx, id)
}

func (m *MemoryStorage) ListReports(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]storage.ReportMeta, error) {
	return m.reports.ListReports(ctx, patientID, limit, offset)
}

func (m *MemoryStorage) DeleteReport(ctx context.Context, id uuid.UUID) error {
	return m.reports.DeleteReport(ctx, id)
}
