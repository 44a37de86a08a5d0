package plans

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/ayursetu/ayur-hub/internal/ai"
	"github.com/ayursetu/ayur-hub/internal/catalog"
	"github.com/ayursetu/ayur-hub/internal/dietplan"
	"github.com/ayursetu/ayur-hub/internal/patients"
	"github.com/ayursetu/ayur-hub/internal/reconcile"
	"github.com/ayursetu/ayur-hub/internal/storage"
	"github.com/google/uuid"
)

var (
	ErrPatientNotFound    = errors.New("patient not found")
	ErrGenerationInFlight = errors.New("generation already in progress")
	ErrInvalidDay         = errors.New("invalid weekday")
	ErrInvalidSlot        = errors.New("invalid meal slot")
)

// Service holds weekly plan business logic
type Service struct {
	plans      storage.DietPlansStorage
	patients   storage.Storage
	catalog    *catalog.Catalog
	provider   ai.Provider
	reconciler *reconcile.Reconciler

	// One generation at a time per patient; concurrent requests get a
	// conflict instead of queueing.
	mu         sync.Mutex
	generating map[uuid.UUID]bool
}

// NewService creates a new service
func NewService(plansStorage storage.DietPlansStorage, patientsStorage storage.Storage, cat *catalog.Catalog, provider ai.Provider) *Service {
	return &Service{
		plans:      plansStorage,
		patients:   patientsStorage,
		catalog:    cat,
		provider:   provider,
		reconciler: reconcile.New(cat),
		generating: make(map[uuid.UUID]bool),
	}
}

// GetPlan returns the patient's weekly plan. If nothing is stored yet, an
// empty well-formed plan is returned with a nil UpdatedAt.
func (s *Service) GetPlan(ctx context.Context, patientID uuid.UUID) (*PlanResponse, error) {
	if _, err := s.patients.GetPatient(ctx, patientID); err != nil {
		return nil, ErrPatientNotFound
	}

	rec, found, err := s.plans.GetDietPlan(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("load plan: %w", err)
	}

	if !found {
		return &PlanResponse{
			PatientID: patientID,
			Plan:      dietplan.NewEmptyPlan(),
		}, nil
	}

	plan, err := decodePlan(rec.Payload)
	if err != nil {
		return nil, err
	}

	updatedAt := rec.UpdatedAt
	return &PlanResponse{
		PatientID: patientID,
		Plan:      plan,
		UpdatedAt: &updatedAt,
	}, nil
}

// SavePlan normalizes and stores the supplied plan
func (s *Service) SavePlan(ctx context.Context, patientID uuid.UUID, req SavePlanRequest) (*PlanResponse, error) {
	if _, err := s.patients.GetPatient(ctx, patientID); err != nil {
		return nil, ErrPatientNotFound
	}

	plan := dietplan.Normalize(req.Plan)
	return s.storePlan(ctx, patientID, plan)
}

// DeletePlan removes the patient's stored plan (no-op if absent)
func (s *Service) DeletePlan(ctx context.Context, patientID uuid.UUID) error {
	if _, err := s.patients.GetPatient(ctx, patientID); err != nil {
		return ErrPatientNotFound
	}

	return s.plans.DeleteDietPlan(ctx, patientID)
}

// GeneratePlan asks the AI provider for a weekly plan, reconciles the
// response against the catalog and replaces the stored plan. Only one
// generation per patient may be in flight; overlapping calls fail with
// ErrGenerationInFlight and the stored plan stays untouched.
func (s *Service) GeneratePlan(ctx context.Context, patientID uuid.UUID) (*PlanResponse, error) {
	patient, err := s.patients.GetPatient(ctx, patientID)
	if err != nil {
		return nil, ErrPatientNotFound
	}

	s.mu.Lock()
	if s.generating[patientID] {
		s.mu.Unlock()
		return nil, ErrGenerationInFlight
	}
	s.generating[patientID] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.generating, patientID)
		s.mu.Unlock()
	}()

	raw, err := s.provider.GenerateWeeklyPlan(ctx, ai.PlanRequest{
		Patient:   toProfile(*patient),
		FoodNames: s.catalog.Names(),
	})
	if err != nil {
		return nil, fmt.Errorf("generate plan: %w", err)
	}

	plan := s.reconciler.WeeklyPlan(raw)
	return s.storePlan(ctx, patientID, plan)
}

// SuggestMeals asks the AI provider for meal options for one slot and
// appends the resolved entries to the stored plan
func (s *Service) SuggestMeals(ctx context.Context, patientID uuid.UUID, req SuggestRequest) (*SuggestResponse, error) {
	patient, err := s.patients.GetPatient(ctx, patientID)
	if err != nil {
		return nil, ErrPatientNotFound
	}

	if !dietplan.IsWeekday(req.Day) {
		return nil, ErrInvalidDay
	}
	if !dietplan.IsSlot(req.Slot) {
		return nil, ErrInvalidSlot
	}

	raw, err := s.provider.SuggestMeals(ctx, ai.SuggestionRequest{
		Patient:   toProfile(*patient),
		MealLabel: req.Slot,
		Weekday:   req.Day,
	})
	if err != nil {
		return nil, fmt.Errorf("suggest meals: %w", err)
	}

	entries := s.reconciler.MealSuggestions(raw)

	rec, found, err := s.plans.GetDietPlan(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("load plan: %w", err)
	}

	plan := dietplan.NewEmptyPlan()
	if found {
		plan, err = decodePlan(rec.Payload)
		if err != nil {
			return nil, err
		}
	}

	plan[req.Day][req.Slot] = append(plan[req.Day][req.Slot], entries...)

	if _, err := s.storePlan(ctx, patientID, plan); err != nil {
		return nil, err
	}

	return &SuggestResponse{
		Day:     req.Day,
		Slot:    req.Slot,
		Entries: entries,
		Plan:    plan,
	}, nil
}

func (s *Service) storePlan(ctx context.Context, patientID uuid.UUID, plan dietplan.WeeklyPlan) (*PlanResponse, error) {
	payload, err := json.Marshal(plan)
	if err != nil {
		return nil, fmt.Errorf("encode plan: %w", err)
	}

	rec, err := s.plans.UpsertDietPlan(ctx, patientID, payload)
	if err != nil {
		return nil, fmt.Errorf("store plan: %w", err)
	}

	updatedAt := rec.UpdatedAt
	return &PlanResponse{
		PatientID: patientID,
		Plan:      plan,
		UpdatedAt: &updatedAt,
	}, nil
}

// decodePlan unmarshals a stored payload and repairs its shape. Stored
// plans are normalized on the way in, but older rows may predate shape
// changes.
func decodePlan(payload []byte) (dietplan.WeeklyPlan, error) {
	var plan dietplan.WeeklyPlan
	if err := json.Unmarshal(payload, &plan); err != nil {
		return nil, fmt.Errorf("decode plan: %w", err)
	}
	return dietplan.Normalize(plan), nil
}

// toProfile converts a stored patient into the provider's profile shape
func toProfile(p storage.Patient) ai.PatientProfile {
	profile := ai.PatientProfile{
		Name:     p.Name,
		Age:      p.Age,
		Gender:   p.Gender,
		Prakriti: p.Prakriti,
		Dosha: ai.DoshaBalance{
			Vata:  p.VataPct,
			Pitta: p.PittaPct,
			Kapha: p.KaphaPct,
		},
		HeightCm:         p.HeightCm,
		WeightKg:         p.WeightKg,
		HealthConditions: p.HealthConditions,
	}

	if bmi, err := patients.CalculateBMI(p.HeightCm, p.WeightKg); err == nil {
		profile.BMI = bmi
	}

	return profile
}
