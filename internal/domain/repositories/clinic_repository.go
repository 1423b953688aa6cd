package repositories

import (
	"context"

	"github.com/dento-health/dento-portal/backend/internal/domain/entities"
)

// ClinicRepository defines the interface for clinic data operations
type ClinicRepository interface {
	// Create creates a new clinic
	Create(ctx context.Context, clinic *entities.Clinic) error

	// GetByID retrieves a clinic by ID
	GetByID(ctx context.Context, id string) (*entities.Clinic, error)

	// Update updates a clinic
	Update(ctx context.Context, clinic *entities.Clinic) error

	// Delete deletes a clinic
	Delete(ctx context.Context, id string) error

	// List retrieves all clinics
	List(ctx context.Context) ([]*entities.Clinic, error)
}

// DoctorRepository defines the interface for doctor data operations
type DoctorRepository interface {
	// Create creates a new doctor
	Create(ctx context.Context, doctor *entities.Doctor) error

	// GetByID retrieves a doctor by ID
	GetByID(ctx context.Context, id string) (*entities.Doctor, error)

	// Update updates a doctor
	Update(ctx context.Context, doctor *entities.Doctor) error

	// Delete deletes a doctor
	Delete(ctx context.Context, id string) error

	// List retrieves doctors, optionally filtered by clinic
	List(ctx context.Context, filter DoctorFilter) ([]*entities.Doctor, error)
}

// DoctorFilter defines filters for listing doctors
type DoctorFilter struct {
	ClinicID       string
	Specialization string
	Limit          int
	Offset         int
}

// DoctorSearchRepository defines the interface for the doctor search index
type DoctorSearchRepository interface {
	// InitSchema ensures the search collection exists
	InitSchema(ctx context.Context) error

	// Index adds or updates a doctor document in the index
	Index(ctx context.Context, doctor *entities.Doctor) error

	// Delete removes a doctor from the index
	Delete(ctx context.Context, id string) error

	// Search runs a free-text query over doctor name, specialization and
	// clinic name
	Search(ctx context.Context, query string, limit int) ([]*entities.Doctor, error)
}
