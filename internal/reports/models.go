package reports

import (
	"time"

	"github.com/google/uuid"
)

const (
	FormatPDF = "pdf"
	FormatCSV = "csv"

	StatusReady  = "ready"
	StatusFailed = "failed"
)

// Report is the service-level view of one generated export.
// ObjectKey is set in S3 mode; Data carries the bytes in local mode.
type Report struct {
	ID        uuid.UUID
	PatientID uuid.UUID
	Format    string
	ObjectKey *string
	SizeBytes int64
	Status    string
	Error     *string
	CreatedAt time.Time
	UpdatedAt time.Time
	Data      []byte
}

// CreateReportRequest is the body of POST /v1/reports.
type CreateReportRequest struct {
	PatientID uuid.UUID `json:"patient_id"`
	Format    string    `json:"format"` // pdf or csv
}

// ReportDTO is the wire representation of a report.
type ReportDTO struct {
	ID          uuid.UUID `json:"id"`
	PatientID   uuid.UUID `json:"patient_id"`
	Format      string    `json:"format"`
	DownloadURL string    `json:"download_url"`
	SizeBytes   int64     `json:"size_bytes"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type ReportsResponse struct {
	Reports []ReportDTO `json:"reports"`
}
