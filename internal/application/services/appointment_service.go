package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dento-health/dento-portal/backend/internal/domain/entities"
	"github.com/dento-health/dento-portal/backend/internal/domain/repositories"
	apperrors "github.com/dento-health/dento-portal/backend/pkg/errors"
)

// AppointmentService handles appointment booking logic
type AppointmentService struct {
	repo        repositories.AppointmentRepository
	patientRepo repositories.PatientRepository
	doctorRepo  repositories.DoctorRepository
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(
	repo repositories.AppointmentRepository,
	patientRepo repositories.PatientRepository,
	doctorRepo repositories.DoctorRepository,
) *AppointmentService {
	return &AppointmentService{
		repo:        repo,
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
	}
}

// startOfToday returns UTC midnight of the server's local calendar day,
// the same instant the parsed booking date yields for "today". Truncating
// time.Now would cut at a UTC day boundary instead and reject same-day
// bookings in zones ahead of UTC.
func startOfToday() time.Time {
	year, month, day := time.Now().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Book validates and creates an appointment
func (s *AppointmentService) Book(ctx context.Context, appointment *entities.Appointment) error {
	if appointment.PatientID == "" || appointment.DoctorID == "" || appointment.Date == "" || appointment.Time == "" {
		return apperrors.NewValidationError("patient_id, doctor_id, date and time are required")
	}

	day, err := time.Parse("2006-01-02", appointment.Date)
	if err != nil {
		return apperrors.NewValidationError("date must be formatted as YYYY-MM-DD")
	}

	if _, err := time.Parse("15:04", appointment.Time); err != nil {
		return apperrors.NewValidationError("time must be formatted as HH:MM")
	}

	if day.Before(startOfToday()) {
		return apperrors.NewValidationError("cannot book an appointment in the past")
	}

	if _, err := s.patientRepo.GetByID(ctx, appointment.PatientID); err != nil {
		return err
	}

	if _, err := s.doctorRepo.GetByID(ctx, appointment.DoctorID); err != nil {
		return err
	}

	taken, err := s.repo.ExistsForDoctorSlot(ctx, appointment.DoctorID, appointment.Date, appointment.Time)
	if err != nil {
		return err
	}
	if taken {
		return apperrors.NewConflictError("doctor already has an appointment at this time")
	}

	if appointment.ID == "" {
		appointment.ID = uuid.New().String()
	}
	if appointment.Status == "" {
		appointment.Status = entities.AppointmentStatusScheduled
	}

	return s.repo.Create(ctx, appointment)
}

// Reschedule moves an appointment to a new slot, applying the same
// conflict checks as booking
func (s *AppointmentService) Reschedule(ctx context.Context, id, date, timeSlot string) (*entities.Appointment, error) {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, apperrors.NewValidationError("date must be formatted as YYYY-MM-DD")
	}
	if _, err := time.Parse("15:04", timeSlot); err != nil {
		return nil, apperrors.NewValidationError("time must be formatted as HH:MM")
	}

	if day.Before(startOfToday()) {
		return nil, apperrors.NewValidationError("cannot move an appointment into the past")
	}

	if appointment.Date != date || appointment.Time != timeSlot {
		taken, err := s.repo.ExistsForDoctorSlot(ctx, appointment.DoctorID, date, timeSlot)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.NewConflictError("doctor already has an appointment at this time")
		}
	}

	appointment.Date = date
	appointment.Time = timeSlot

	if err := s.repo.Update(ctx, appointment); err != nil {
		return nil, err
	}

	return appointment, nil
}

// Cancel marks an appointment cancelled, freeing its slot
func (s *AppointmentService) Cancel(ctx context.Context, id string) (*entities.Appointment, error) {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	appointment.Status = entities.AppointmentStatusCancelled
	if err := s.repo.Update(ctx, appointment); err != nil {
		return nil, err
	}

	return appointment, nil
}
