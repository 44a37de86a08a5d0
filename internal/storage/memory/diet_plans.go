package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ayursetu/ayur-hub/internal/storage"
	"github.com/google/uuid"
)

// DietPlansMemoryStorage is in-memory storage for weekly diet plans
type DietPlansMemoryStorage struct {
	mu    sync.RWMutex
	plans map[uuid.UUID]storage.DietPlanRecord
}

// NewDietPlansMemoryStorage creates a new in-memory diet plans storage
func NewDietPlansMemoryStorage() *DietPlansMemoryStorage {
	return &DietPlansMemoryStorage{
		plans: make(map[uuid.UUID]storage.DietPlanRecord),
	}
}

func (s *DietPlansMemoryStorage) GetDietPlan(ctx context.Context, patientID uuid.UUID) (storage.DietPlanRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.plans[patientID]
	if !ok {
		return storage.DietPlanRecord{}, false, nil
	}

	// Copy payload so callers cannot mutate the stored bytes
	out := rec
	out.Payload = append([]byte(nil), rec.Payload...)
	return out, true, nil
}

func (s *DietPlansMemoryStorage) UpsertDietPlan(ctx context.Context, patientID uuid.UUID, payload []byte) (storage.DietPlanRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	rec, ok := s.plans[patientID]
	if !ok {
		rec = storage.DietPlanRecord{
			PatientID: patientID,
			CreatedAt: now,
		}
	}
	rec.Payload = append([]byte(nil), payload...)
	rec.UpdatedAt = now

	s.plans[patientID] = rec
	return rec, nil
}

func (s *DietPlansMemoryStorage) DeleteDietPlan(ctx context.Context, patientID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.plans, patientID)
	return nil
}
