package repositories

import (
	"context"

	"github.com/dento-health/dento-portal/backend/internal/domain/entities"
)

// TreatmentRepository defines the interface for treatment data operations
type TreatmentRepository interface {
	// Create creates a new treatment
	Create(ctx context.Context, treatment *entities.Treatment) error

	// GetByID retrieves a treatment by ID
	GetByID(ctx context.Context, id string) (*entities.Treatment, error)

	// Update updates a treatment
	Update(ctx context.Context, treatment *entities.Treatment) error

	// Delete deletes a treatment
	Delete(ctx context.Context, id string) error

	// ListByPatient retrieves treatments for a patient
	ListByPatient(ctx context.Context, patientID string) ([]*entities.Treatment, error)
}

// TreatmentPlanRepository defines the interface for treatment plan operations
type TreatmentPlanRepository interface {
	// Create creates a new treatment plan
	Create(ctx context.Context, plan *entities.TreatmentPlan) error

	// GetByID retrieves a treatment plan by ID
	GetByID(ctx context.Context, id string) (*entities.TreatmentPlan, error)

	// Update updates a treatment plan
	Update(ctx context.Context, plan *entities.TreatmentPlan) error

	// Delete deletes a treatment plan
	Delete(ctx context.Context, id string) error

	// ListByPatient retrieves treatment plans for a patient
	ListByPatient(ctx context.Context, patientID string) ([]*entities.TreatmentPlan, error)
}
