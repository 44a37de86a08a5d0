package reports

import (
	"context"
	"fmt"
	"strings"

	"github.com/ayursetu/ayur-hub/internal/blob"
	"github.com/ayursetu/ayur-hub/internal/catalog"
	"github.com/ayursetu/ayur-hub/internal/storage"
	"github.com/google/uuid"
)

// Service handles reports business logic
type Service struct {
	reportsStorage  storage.ReportsStorage
	patientStorage  PatientStorage
	generator       *Generator
	blobStore       blob.Store
	maxPerPatient   int
	presignTTL      int
	localMode       bool   // true if no S3 configured
	publicBaseURL   string // S3 public base URL (if prefer_public_url mode)
	preferPublicURL bool   // if true, use public URLs instead of presigned
}

// NewService creates a new reports service
func NewService(
	reportsStorage storage.ReportsStorage,
	plansStorage storage.DietPlansStorage,
	patientStorage PatientStorage,
	cat *catalog.Catalog,
	blobStore blob.Store,
	maxPerPatient int,
	presignTTL int,
	publicBaseURL string,
	preferPublicURL bool,
) *Service {
	generator := NewGenerator(plansStorage, patientStorage, cat)

	localMode := (blobStore == nil)

	return &Service{
		reportsStorage:  reportsStorage,
		patientStorage:  patientStorage,
		generator:       generator,
		blobStore:       blobStore,
		maxPerPatient:   maxPerPatient,
		presignTTL:      presignTTL,
		localMode:       localMode,
		publicBaseURL:   publicBaseURL,
		preferPublicURL: preferPublicURL,
	}
}

// CreateReport generates a new report for a patient's current weekly plan
func (s *Service) CreateReport(ctx context.Context, req CreateReportRequest) (*Report, error) {
	if req.Format != FormatPDF && req.Format != FormatCSV {
		return nil, ErrInvalidFormat
	}

	if _, err := s.patientStorage.GetPatient(ctx, req.PatientID); err != nil {
		return nil, ErrPatientNotFound
	}

	if s.maxPerPatient > 0 {
		existing, err := s.reportsStorage.ListReports(ctx, req.PatientID, s.maxPerPatient, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to count reports: %w", err)
		}
		if len(existing) >= s.maxPerPatient {
			return nil, ErrTooManyReports
		}
	}

	data, err := s.generator.GenerateReport(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to generate report: %w", err)
	}

	report := &storage.ReportMeta{
		PatientID: req.PatientID,
		Format:    req.Format,
		SizeBytes: int64(len(data)),
		Status:    StatusReady,
	}

	if s.localMode {
		report.Data = data
	} else {
		objectKey := fmt.Sprintf("reports/%s/%s.%s",
			req.PatientID.String(),
			uuid.New().String(),
			req.Format,
		)

		contentType := "application/pdf"
		if req.Format == FormatCSV {
			contentType = "text/csv"
		}

		if _, err = s.blobStore.PutObject(ctx, objectKey, data, contentType); err != nil {
			return nil, fmt.Errorf("failed to upload to S3: %w", err)
		}

		report.ObjectKey = &objectKey
	}

	if err := s.reportsStorage.CreateReport(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to save report metadata: %w", err)
	}

	return s.toReport(report), nil
}

// GetReport retrieves a report by ID
func (s *Service) GetReport(ctx context.Context, id uuid.UUID) (*Report, error) {
	meta, err := s.reportsStorage.GetReport(ctx, id)
	if err != nil {
		return nil, ErrReportNotFound
	}

	return s.toReport(meta), nil
}

// ListReports lists reports for a patient
func (s *Service) ListReports(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]Report, error) {
	if _, err := s.patientStorage.GetPatient(ctx, patientID); err != nil {
		return nil, ErrPatientNotFound
	}

	metaList, err := s.reportsStorage.ListReports(ctx, patientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	reports := make([]Report, len(metaList))
	for i, meta := range metaList {
		reports[i] = *s.toReport(&meta)
	}

	return reports, nil
}

// DeleteReport deletes a report
func (s *Service) DeleteReport(ctx context.Context, id uuid.UUID) error {
	meta, err := s.reportsStorage.GetReport(ctx, id)
	if err != nil {
		return ErrReportNotFound
	}

	if !s.localMode && meta.ObjectKey != nil {
		if err := s.blobStore.DeleteObject(ctx, *meta.ObjectKey); err != nil {
			// Log but don't fail - metadata deletion is more important
			fmt.Printf("warning: failed to delete S3 object: %v\n", err)
		}
	}

	if err := s.reportsStorage.DeleteReport(ctx, id); err != nil {
		return fmt.Errorf("failed to delete report metadata: %w", err)
	}

	return nil
}

// GetReportDownloadURL generates a download URL for a report
func (s *Service) GetReportDownloadURL(ctx context.Context, id uuid.UUID, baseURL string) (string, error) {
	meta, err := s.reportsStorage.GetReport(ctx, id)
	if err != nil {
		return "", ErrReportNotFound
	}

	if s.localMode {
		// Local mode: return direct download endpoint
		return fmt.Sprintf("%s/v1/reports/%s/download", strings.TrimSuffix(baseURL, "/"), id.String()), nil
	}

	if meta.ObjectKey == nil {
		return "", fmt.Errorf("object key is missing")
	}

	if s.preferPublicURL && s.publicBaseURL != "" {
		publicURL := strings.TrimSuffix(s.publicBaseURL, "/") + "/" + *meta.ObjectKey
		return publicURL, nil
	}

	presignedURL, err := s.blobStore.PresignGet(ctx, *meta.ObjectKey, s.presignTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return presignedURL, nil
}

// GetReportData retrieves the raw report data (for local mode download)
func (s *Service) GetReportData(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	meta, err := s.reportsStorage.GetReport(ctx, id)
	if err != nil {
		return nil, "", ErrReportNotFound
	}

	contentType := "application/pdf"
	if meta.Format == FormatCSV {
		contentType = "text/csv"
	}

	if s.localMode {
		return meta.Data, contentType, nil
	}

	// S3 mode: the handler redirects to a presigned URL instead
	return nil, contentType, fmt.Errorf("S3 mode should use presigned URL redirect")
}

// toReport converts ReportMeta to Report model
func (s *Service) toReport(meta *storage.ReportMeta) *Report {
	return &Report{
		ID:        meta.ID,
		PatientID: meta.PatientID,
		Format:    meta.Format,
		ObjectKey: meta.ObjectKey,
		SizeBytes: meta.SizeBytes,
		Status:    meta.Status,
		Error:     meta.Error,
		CreatedAt: meta.CreatedAt,
		UpdatedAt: meta.UpdatedAt,
		Data:      meta.Data,
	}
}

// Errors
var (
	ErrInvalidFormat   = fmt.Errorf("invalid format")
	ErrPatientNotFound = fmt.Errorf("patient not found")
	ErrReportNotFound  = fmt.Errorf("report not found")
	ErrTooManyReports  = fmt.Errorf("too many reports for patient")
)
