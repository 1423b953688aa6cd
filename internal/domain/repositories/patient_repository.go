package repositories

import (
	"context"

	"github.com/dento-health/dento-portal/backend/internal/domain/entities"
)

// PatientRepository defines the interface for patient data operations
type PatientRepository interface {
	// Create creates a new patient
	Create(ctx context.Context, patient *entities.Patient) error

	// GetByID retrieves a patient by ID
	GetByID(ctx context.Context, id string) (*entities.Patient, error)

	// Update updates a patient
	Update(ctx context.Context, patient *entities.Patient) error

	// Delete deletes a patient
	Delete(ctx context.Context, id string) error

	// List retrieves patients with filters
	List(ctx context.Context, filter PatientFilter) ([]*entities.Patient, error)
}

// PatientFilter defines filters for listing patients
type PatientFilter struct {
	ClinicID         string
	AssignedToUserID string
	Status           entities.PatientStatus
	Limit            int
	Offset           int
}
