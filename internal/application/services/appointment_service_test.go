package services

import (
	"context"
	"testing"
	"time"

	"github.com/dento-health/dento-portal/backend/internal/domain/entities"
	"github.com/dento-health/dento-portal/backend/internal/domain/repositories"
	apperrors "github.com/dento-health/dento-portal/backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAppointmentRepo struct {
	mock.Mock
}

func (m *mockAppointmentRepo) Create(ctx context.Context, appointment *entities.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *mockAppointmentRepo) GetByID(ctx context.Context, id string) (*entities.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Appointment), args.Error(1)
}

func (m *mockAppointmentRepo) Update(ctx context.Context, appointment *entities.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *mockAppointmentRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockAppointmentRepo) List(ctx context.Context, filter repositories.AppointmentFilter) ([]*entities.Appointment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Appointment), args.Error(1)
}

func (m *mockAppointmentRepo) ExistsForDoctorSlot(ctx context.Context, doctorID, date, timeSlot string) (bool, error) {
	args := m.Called(ctx, doctorID, date, timeSlot)
	return args.Bool(0), args.Error(1)
}

type mockPatientRepo struct {
	mock.Mock
}

func (m *mockPatientRepo) Create(ctx context.Context, patient *entities.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *mockPatientRepo) GetByID(ctx context.Context, id string) (*entities.Patient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Patient), args.Error(1)
}

func (m *mockPatientRepo) Update(ctx context.Context, patient *entities.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *mockPatientRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPatientRepo) List(ctx context.Context, filter repositories.PatientFilter) ([]*entities.Patient, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Patient), args.Error(1)
}

type mockDoctorRepo struct {
	mock.Mock
}

func (m *mockDoctorRepo) Create(ctx context.Context, doctor *entities.Doctor) error {
	args := m.Called(ctx, doctor)
	return args.Error(0)
}

func (m *mockDoctorRepo) GetByID(ctx context.Context, id string) (*entities.Doctor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Doctor), args.Error(1)
}

func (m *mockDoctorRepo) Update(ctx context.Context, doctor *entities.Doctor) error {
	args := m.Called(ctx, doctor)
	return args.Error(0)
}

func (m *mockDoctorRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockDoctorRepo) List(ctx context.Context, filter repositories.DoctorFilter) ([]*entities.Doctor, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Doctor), args.Error(1)
}

func futureDate() string {
	return time.Now().AddDate(0, 0, 7).Format("2006-01-02")
}

func TestBook_Success(t *testing.T) {
	repo := new(mockAppointmentRepo)
	patientRepo := new(mockPatientRepo)
	doctorRepo := new(mockDoctorRepo)

	patientRepo.On("GetByID", mock.Anything, "p1").Return(&entities.Patient{ID: "p1"}, nil)
	doctorRepo.On("GetByID", mock.Anything, "d1").Return(&entities.Doctor{ID: "d1"}, nil)
	repo.On("ExistsForDoctorSlot", mock.Anything, "d1", futureDate(), "10:30").Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewAppointmentService(repo, patientRepo, doctorRepo)

	appointment := &entities.Appointment{
		PatientID: "p1",
		DoctorID:  "d1",
		Date:      futureDate(),
		Time:      "10:30",
	}

	err := service.Book(context.Background(), appointment)
	require.NoError(t, err)
	assert.NotEmpty(t, appointment.ID)
	assert.Equal(t, entities.AppointmentStatusScheduled, appointment.Status)
	repo.AssertExpectations(t)
}

func TestBook_TodayAccepted(t *testing.T) {
	repo := new(mockAppointmentRepo)
	patientRepo := new(mockPatientRepo)
	doctorRepo := new(mockDoctorRepo)

	// Today in the server's local calendar, which can be a day ahead of
	// the UTC calendar.
	today := time.Now().Format("2006-01-02")

	patientRepo.On("GetByID", mock.Anything, "p1").Return(&entities.Patient{ID: "p1"}, nil)
	doctorRepo.On("GetByID", mock.Anything, "d1").Return(&entities.Doctor{ID: "d1"}, nil)
	repo.On("ExistsForDoctorSlot", mock.Anything, "d1", today, "23:30").Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewAppointmentService(repo, patientRepo, doctorRepo)

	err := service.Book(context.Background(), &entities.Appointment{
		PatientID: "p1",
		DoctorID:  "d1",
		Date:      today,
		Time:      "23:30",
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestBook_MissingFields(t *testing.T) {
	service := NewAppointmentService(new(mockAppointmentRepo), new(mockPatientRepo), new(mockDoctorRepo))

	err := service.Book(context.Background(), &entities.Appointment{PatientID: "p1"})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

func TestBook_PastDateRejected(t *testing.T) {
	service := NewAppointmentService(new(mockAppointmentRepo), new(mockPatientRepo), new(mockDoctorRepo))

	err := service.Book(context.Background(), &entities.Appointment{
		PatientID: "p1",
		DoctorID:  "d1",
		Date:      "2020-01-01",
		Time:      "10:30",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

func TestBook_InvalidTimeFormat(t *testing.T) {
	service := NewAppointmentService(new(mockAppointmentRepo), new(mockPatientRepo), new(mockDoctorRepo))

	err := service.Book(context.Background(), &entities.Appointment{
		PatientID: "p1",
		DoctorID:  "d1",
		Date:      futureDate(),
		Time:      "10.30am",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

func TestBook_UnknownPatient(t *testing.T) {
	repo := new(mockAppointmentRepo)
	patientRepo := new(mockPatientRepo)
	doctorRepo := new(mockDoctorRepo)

	patientRepo.On("GetByID", mock.Anything, "missing").Return(nil, apperrors.NewNotFoundError("patient not found"))

	service := NewAppointmentService(repo, patientRepo, doctorRepo)

	err := service.Book(context.Background(), &entities.Appointment{
		PatientID: "missing",
		DoctorID:  "d1",
		Date:      futureDate(),
		Time:      "10:30",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestBook_SlotConflict(t *testing.T) {
	repo := new(mockAppointmentRepo)
	patientRepo := new(mockPatientRepo)
	doctorRepo := new(mockDoctorRepo)

	patientRepo.On("GetByID", mock.Anything, "p1").Return(&entities.Patient{ID: "p1"}, nil)
	doctorRepo.On("GetByID", mock.Anything, "d1").Return(&entities.Doctor{ID: "d1"}, nil)
	repo.On("ExistsForDoctorSlot", mock.Anything, "d1", futureDate(), "10:30").Return(true, nil)

	service := NewAppointmentService(repo, patientRepo, doctorRepo)

	err := service.Book(context.Background(), &entities.Appointment{
		PatientID: "p1",
		DoctorID:  "d1",
		Date:      futureDate(),
		Time:      "10:30",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReschedule_SlotConflict(t *testing.T) {
	repo := new(mockAppointmentRepo)

	existing := &entities.Appointment{
		ID:        "a1",
		PatientID: "p1",
		DoctorID:  "d1",
		Date:      futureDate(),
		Time:      "09:00",
		Status:    entities.AppointmentStatusScheduled,
	}
	repo.On("GetByID", mock.Anything, "a1").Return(existing, nil)
	repo.On("ExistsForDoctorSlot", mock.Anything, "d1", futureDate(), "11:00").Return(true, nil)

	service := NewAppointmentService(repo, new(mockPatientRepo), new(mockDoctorRepo))

	_, err := service.Reschedule(context.Background(), "a1", futureDate(), "11:00")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict))
}

func TestReschedule_SameSlotSkipsConflictCheck(t *testing.T) {
	repo := new(mockAppointmentRepo)

	existing := &entities.Appointment{
		ID:        "a1",
		PatientID: "p1",
		DoctorID:  "d1",
		Date:      futureDate(),
		Time:      "09:00",
		Status:    entities.AppointmentStatusScheduled,
	}
	repo.On("GetByID", mock.Anything, "a1").Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewAppointmentService(repo, new(mockPatientRepo), new(mockDoctorRepo))

	updated, err := service.Reschedule(context.Background(), "a1", futureDate(), "09:00")
	require.NoError(t, err)
	assert.Equal(t, "09:00", updated.Time)
	repo.AssertNotCalled(t, "ExistsForDoctorSlot", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCancel(t *testing.T) {
	repo := new(mockAppointmentRepo)

	existing := &entities.Appointment{
		ID:     "a1",
		Status: entities.AppointmentStatusScheduled,
	}
	repo.On("GetByID", mock.Anything, "a1").Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewAppointmentService(repo, new(mockPatientRepo), new(mockDoctorRepo))

	cancelled, err := service.Cancel(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, entities.AppointmentStatusCancelled, cancelled.Status)
}
