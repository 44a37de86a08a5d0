package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/ayursetu/ayur-hub/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound = errors.New("patient not found")
)

// PostgresStorage is the Postgres implementation of Storage, DietPlansStorage and ReportsStorage
type PostgresStorage struct {
	pool      *pgxpool.Pool
	dietPlans *PostgresDietPlansStorage
	reports   *PostgresReportsStorage
}

// New creates a PostgresStorage and verifies the connection
func New(ctx context.Context, databaseURL string) (*PostgresStorage, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &PostgresStorage{
		pool:      pool,
		dietPlans: NewPostgresDietPlansStorage(pool),
		reports:   NewPostgresReportsStorage(pool),
	}, nil
}

func (p *PostgresStorage) ListPatients(ctx context.Context) ([]storage.Patient, error) {
	query := `
		SELECT id, name, age, gender, height_cm, weight_kg, prakriti,
		       vata_pct, pitta_pct, kapha_pct, health_conditions, created_at, updated_at
		FROM patients
		ORDER BY created_at ASC
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	patients := []storage.Patient{}
	for rows.Next() {
		var pat storage.Patient
		err := rows.Scan(
			&pat.ID,
			&pat.Name,
			&pat.Age,
			&pat.Gender,
			&pat.HeightCm,
			&pat.WeightKg,
			&pat.Prakriti,
			&pat.VataPct,
			&pat.PittaPct,
			&pat.KaphaPct,
			&pat.HealthConditions,
			&pat.CreatedAt,
			&pat.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		patients = append(patients, pat)
	}

	return patients, rows.Err()
}

func (p *PostgresStorage) GetPatient(ctx context.Context, id uuid.UUID) (*storage.Patient, error) {
	query := `
		SELECT id, name, age, gender, height_cm, weight_kg, prakriti,
		       vata_pct, pitta_pct, kapha_pct, health_conditions, created_at, updated_at
		FROM patients
		WHERE id = $1
	`

	var pat storage.Patient
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&pat.ID,
		&pat.Name,
		&pat.Age,
		&pat.Gender,
		&pat.HeightCm,
		&pat.WeightKg,
		&pat.Prakriti,
		&pat.VataPct,
		&pat.PittaPct,
		&pat.KaphaPct,
		&pat.HealthConditions,
		&pat.CreatedAt,
		&pat.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, err
	}

	return &pat, nil
}

func (p *PostgresStorage) CreatePatient(ctx context.Context, patient *storage.Patient) error {
	if patient.ID == uuid.Nil {
		patient.ID = uuid.New()
	}

	now := time.Now()
	patient.CreatedAt = now
	patient.UpdatedAt = now

	query := `
		INSERT INTO patients (id, name, age, gender, height_cm, weight_kg, prakriti,
		                      vata_pct, pitta_pct, kapha_pct, health_conditions, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := p.pool.Exec(ctx, query,
		patient.ID,
		patient.Name,
		patient.Age,
		patient.Gender,
		patient.HeightCm,
		patient.WeightKg,
		patient.Prakriti,
		patient.VataPct,
		patient.PittaPct,
		patient.KaphaPct,
		patient.HealthConditions,
		patient.CreatedAt,
		patient.UpdatedAt,
	)

	return err
}

func (p *PostgresStorage) UpdatePatient(ctx context.Context, patient *storage.Patient) error {
	patient.UpdatedAt = time.Now()

	query := `
		UPDATE patients
		SET name = $2, age = $3, gender = $4, height_cm = $5, weight_kg = $6,
		    prakriti = $7, vata_pct = $8, pitta_pct = $9, kapha_pct = $10,
		    health_conditions = $11, updated_at = $12
		WHERE id = $1
	`

	result, err := p.pool.Exec(ctx, query,
		patient.ID,
		patient.Name,
		patient.Age,
		patient.Gender,
		patient.HeightCm,
		patient.WeightKg,
		patient.Prakriti,
		patient.VataPct,
		patient.PittaPct,
		patient.KaphaPct,
		patient.HealthConditions,
		patient.UpdatedAt,
	)

	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (p *PostgresStorage) DeletePatient(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM patients WHERE id = $1`

	result, err := p.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (p *PostgresStorage) Close() error {
	p.pool.Close()
	return nil
}

// GetDietPlansStorage returns the diet plans storage
func (p *PostgresStorage) GetDietPlansStorage() *PostgresDietPlansStorage {
	return p.dietPlans
}

// GetReportsStorage returns the reports storage
func (p *PostgresStorage) GetReportsStorage() *PostgresReportsStorage {
	return p.reports
}

// DietPlansStorage methods - delegate to embedded diet plans storage

func (p *PostgresStorage) GetDietPlan(ctx context.Context, patientID uuid.UUID) (storage.DietPlanRecord, bool, error) {
	return p.dietPlans.GetDietPlan(ctx, patientID)
}

func (p *PostgresStorage) UpsertDietPlan(ctx context.Context, patientID uuid.UUID, payload []byte) (storage.DietPlanRecord, error) {
	return p.dietPlans.UpsertDietPlan(ctx, patientID, payload)
}

func (p *PostgresStorage) DeleteDietPlan(ctx context.Context, patientID uuid.UUID) error {
	return p.dietPlans.DeleteDietPlan(ctx, patientID)
}

// ReportsStorage methods - delegate to embedded reports storage

func (p *PostgresStorage) CreateReport(ctx context.Context, report *storage.ReportMeta) error {
	return p.reports.CreateReport(ctx, report)
}

func (p *PostgresStorage) GetReport(ctx context.Context, id uuid.UUID) (*storage.ReportMeta, error) {
	return p.reports.GetReport(ctx, id)
}

func (p *PostgresStorage) ListReports(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]storage.ReportMeta, error) {
	return p.reports.ListReports(ctx, patientID, limit, offset)
}

func (p *PostgresStorage) DeleteReport(ctx context.Context, id uuid.UUID) error {
	return p.reports.DeleteReport(ctx, id)
}
