package repositories

import (
	"context"

	"github.com/dento-health/dento-portal/backend/internal/domain/entities"
)

// ReportRepository defines the interface for medical report operations
type ReportRepository interface {
	// Create creates a new report
	Create(ctx context.Context, report *entities.Report) error

	// GetByID retrieves a report by ID
	GetByID(ctx context.Context, id string) (*entities.Report, error)

	// Update updates a report
	Update(ctx context.Context, report *entities.Report) error

	// Delete deletes a report
	Delete(ctx context.Context, id string) error

	// List retrieves reports with filters
	List(ctx context.Context, filter ReportFilter) ([]*entities.Report, error)
}

// ReportFilter defines filters for listing reports
type ReportFilter struct {
	PatientID  string
	ClinicID   string
	ReportType string
	Limit      int
	Offset     int
}
