package repositories

import (
	"context"

	"github.com/dento-health/dento-portal/backend/internal/domain/entities"
)

// AppointmentRepository defines the interface for appointment data operations
type AppointmentRepository interface {
	// Create creates a new appointment
	Create(ctx context.Context, appointment *entities.Appointment) error

	// GetByID retrieves an appointment by ID
	GetByID(ctx context.Context, id string) (*entities.Appointment, error)

	// Update updates an appointment
	Update(ctx context.Context, appointment *entities.Appointment) error

	// Delete deletes an appointment
	Delete(ctx context.Context, id string) error

	// List retrieves appointments with filters
	List(ctx context.Context, filter AppointmentFilter) ([]*entities.Appointment, error)

	// ExistsForDoctorSlot reports whether the doctor already has a
	// non-cancelled appointment at the given date and time
	ExistsForDoctorSlot(ctx context.Context, doctorID, date, timeSlot string) (bool, error)
}

// AppointmentFilter defines filters for listing appointments
type AppointmentFilter struct {
	PatientID string
	DoctorID  string
	Date      string
	Status    entities.AppointmentStatus
	Limit     int
	Offset    int
}
