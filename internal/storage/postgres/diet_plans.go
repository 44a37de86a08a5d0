package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ayursetu/ayur-hub/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresDietPlansStorage is Postgres storage for weekly diet plans
type PostgresDietPlansStorage struct {
	pool *pgxpool.Pool
}

// NewPostgresDietPlansStorage creates a new Postgres diet plans storage
func NewPostgresDietPlansStorage(pool *pgxpool.Pool) *PostgresDietPlansStorage {
	return &PostgresDietPlansStorage{pool: pool}
}

func (s *PostgresDietPlansStorage) GetDietPlan(ctx context.Context, patientID uuid.UUID) (storage.DietPlanRecord, bool, error) {
	query := `
		SELECT patient_id, payload, created_at, updated_at
		FROM diet_plans
		WHERE patient_id = $1
	`

	var rec storage.DietPlanRecord
	err := s.pool.QueryRow(ctx, query, patientID).Scan(
		&rec.PatientID,
		&rec.Payload,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return storage.DietPlanRecord{}, false, nil
	}
	if err != nil {
		return storage.DietPlanRecord{}, false, fmt.Errorf("failed to get diet plan: %w", err)
	}

	return rec, true, nil
}

func (s *PostgresDietPlansStorage) UpsertDietPlan(ctx context.Context, patientID uuid.UUID, payload []byte) (storage.DietPlanRecord, error) {
	query := `
		INSERT INTO diet_plans (patient_id, payload, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (patient_id)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()
		RETURNING patient_id, payload, created_at, updated_at
	`

	var rec storage.DietPlanRecord
	err := s.pool.QueryRow(ctx, query, patientID, payload).Scan(
		&rec.PatientID,
		&rec.Payload,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return storage.DietPlanRecord{}, fmt.Errorf("failed to upsert diet plan: %w", err)
	}

	return rec, nil
}

func (s *PostgresDietPlansStorage) DeleteDietPlan(ctx context.Context, patientID uuid.UUID) error {
	query := `DELETE FROM diet_plans WHERE patient_id = $1`

	// No error if nothing was deleted (no stored plan)
	_, err := s.pool.Exec(ctx, query, patientID)
	if err != nil {
		return fmt.Errorf("failed to delete diet plan: %w", err)
	}

	return nil
}
