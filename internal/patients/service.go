package patients

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/ayursetu/ayur-hub/internal/storage"
	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("name cannot be empty")
	ErrInvalidAge   = errors.New("age out of range")
	ErrInvalidDosha = errors.New("dosha percentages must sum to 100")
	ErrNotFound     = errors.New("patient not found")
)

// Service holds patient business logic
type Service struct {
	storage storage.Storage
}

// NewService creates a new service
func NewService(st storage.Storage) *Service {
	return &Service{storage: st}
}

// ListPatients returns all patients
func (s *Service) ListPatients(ctx context.Context) ([]PatientDTO, error) {
	patients, err := s.storage.ListPatients(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]PatientDTO, 0, len(patients))
	for _, p := range patients {
		dtos = append(dtos, toDTO(p))
	}

	return dtos, nil
}

// GetPatient returns a patient by ID
func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*PatientDTO, error) {
	patient, err := s.storage.GetPatient(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	dto := toDTO(*patient)
	return &dto, nil
}

// CreatePatient creates a new patient
func (s *Service) CreatePatient(ctx context.Context, req CreatePatientRequest) (*PatientDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	patient := &storage.Patient{
		Name:             strings.TrimSpace(req.Name),
		Age:              req.Age,
		Gender:           strings.TrimSpace(req.Gender),
		HeightCm:         req.HeightCm,
		WeightKg:         req.WeightKg,
		Prakriti:         strings.TrimSpace(req.Prakriti),
		VataPct:          req.DoshaBalance.Vata,
		PittaPct:         req.DoshaBalance.Pitta,
		KaphaPct:         req.DoshaBalance.Kapha,
		HealthConditions: req.HealthConditions,
	}
	if patient.HealthConditions == nil {
		patient.HealthConditions = []string{}
	}

	if err := s.storage.CreatePatient(ctx, patient); err != nil {
		return nil, err
	}

	dto := toDTO(*patient)
	return &dto, nil
}

// UpdatePatient applies a partial update to a patient
func (s *Service) UpdatePatient(ctx context.Context, id uuid.UUID, req UpdatePatientRequest) (*PatientDTO, error) {
	patient, err := s.storage.GetPatient(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		patient.Name = strings.TrimSpace(*req.Name)
	}
	if req.Age != nil {
		if *req.Age < 0 || *req.Age > 150 {
			return nil, ErrInvalidAge
		}
		patient.Age = *req.Age
	}
	if req.Gender != nil {
		patient.Gender = strings.TrimSpace(*req.Gender)
	}
	if req.HeightCm != nil {
		patient.HeightCm = *req.HeightCm
	}
	if req.WeightKg != nil {
		patient.WeightKg = *req.WeightKg
	}
	if req.Prakriti != nil {
		patient.Prakriti = strings.TrimSpace(*req.Prakriti)
	}
	if req.DoshaBalance != nil {
		if err := validateDosha(*req.DoshaBalance); err != nil {
			return nil, err
		}
		patient.VataPct = req.DoshaBalance.Vata
		patient.PittaPct = req.DoshaBalance.Pitta
		patient.KaphaPct = req.DoshaBalance.Kapha
	}
	if req.HealthConditions != nil {
		patient.HealthConditions = *req.HealthConditions
		if patient.HealthConditions == nil {
			patient.HealthConditions = []string{}
		}
	}

	if err := s.storage.UpdatePatient(ctx, patient); err != nil {
		return nil, err
	}

	dto := toDTO(*patient)
	return &dto, nil
}

// DeletePatient removes a patient
func (s *Service) DeletePatient(ctx context.Context, id uuid.UUID) error {
	if _, err := s.storage.GetPatient(ctx, id); err != nil {
		return ErrNotFound
	}

	return s.storage.DeletePatient(ctx, id)
}

// Validate checks a create request
func (r CreatePatientRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyName
	}
	if r.Age < 0 || r.Age > 150 {
		return ErrInvalidAge
	}
	return validateDosha(r.DoshaBalance)
}

// validateDosha accepts an all-zero balance (not assessed yet) or a split
// summing to 100.
func validateDosha(d DoshaBalanceDTO) error {
	if d.Vata == 0 && d.Pitta == 0 && d.Kapha == 0 {
		return nil
	}
	if d.Vata < 0 || d.Pitta < 0 || d.Kapha < 0 {
		return ErrInvalidDosha
	}
	if d.Vata+d.Pitta+d.Kapha != 100 {
		return ErrInvalidDosha
	}
	return nil
}

// toDTO converts storage.Patient to PatientDTO
func toDTO(p storage.Patient) PatientDTO {
	dto := PatientDTO{
		ID:       p.ID,
		Name:     p.Name,
		Age:      p.Age,
		Gender:   p.Gender,
		HeightCm: p.HeightCm,
		WeightKg: p.WeightKg,
		Prakriti: p.Prakriti,
		DoshaBalance: DoshaBalanceDTO{
			Vata:  p.VataPct,
			Pitta: p.PittaPct,
			Kapha: p.KaphaPct,
		},
		HealthConditions: p.HealthConditions,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
	if dto.HealthConditions == nil {
		dto.HealthConditions = []string{}
	}

	if bmi, err := CalculateBMI(p.HeightCm, p.WeightKg); err == nil {
		dto.BMI = math.Round(bmi*10) / 10
		dto.BMICategory = BMICategory(bmi)
	}

	return dto
}
