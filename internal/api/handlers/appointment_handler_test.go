package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dento-health/dento-portal/backend/internal/application/services"
	"github.com/dento-health/dento-portal/backend/internal/domain/entities"
	"github.com/dento-health/dento-portal/backend/internal/domain/repositories"
	apperrors "github.com/dento-health/dento-portal/backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockApptRepo struct {
	mock.Mock
}

func (m *mockApptRepo) Create(ctx context.Context, appointment *entities.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *mockApptRepo) GetByID(ctx context.Context, id string) (*entities.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Appointment), args.Error(1)
}

func (m *mockApptRepo) Update(ctx context.Context, appointment *entities.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *mockApptRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockApptRepo) List(ctx context.Context, filter repositories.AppointmentFilter) ([]*entities.Appointment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Appointment), args.Error(1)
}

func (m *mockApptRepo) ExistsForDoctorSlot(ctx context.Context, doctorID, date, timeSlot string) (bool, error) {
	args := m.Called(ctx, doctorID, date, timeSlot)
	return args.Bool(0), args.Error(1)
}

func TestListAppointments_FiltersFromQuery(t *testing.T) {
	repo := new(mockApptRepo)
	repo.On("List", mock.Anything, repositories.AppointmentFilter{
		DoctorID: "doc-1",
		Status:   entities.AppointmentStatusScheduled,
		Limit:    50,
	}).Return([]*entities.Appointment{
		{ID: "appt-1", DoctorID: "doc-1", Status: entities.AppointmentStatusScheduled},
	}, nil)

	handler := NewAppointmentHandler(services.NewAppointmentService(repo, nil, nil), repo)

	req := httptest.NewRequest(http.MethodGet, "/api/appointments?doctor_id=doc-1&status=scheduled", nil)
	rec := httptest.NewRecorder()

	handler.ListAppointments(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Appointments []entities.Appointment `json:"appointments"`
		Count        int                    `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, 1, payload.Count)
	assert.Equal(t, "appt-1", payload.Appointments[0].ID)
}

func TestCancelAppointment(t *testing.T) {
	repo := new(mockApptRepo)
	repo.On("GetByID", mock.Anything, "appt-1").Return(&entities.Appointment{
		ID:     "appt-1",
		Status: entities.AppointmentStatusScheduled,
	}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	handler := NewAppointmentHandler(services.NewAppointmentService(repo, nil, nil), repo)

	req := httptest.NewRequest(http.MethodPost, "/api/appointments/appt-1/cancel", nil)
	req.SetPathValue("id", "appt-1")
	rec := httptest.NewRecorder()

	handler.CancelAppointment(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var appointment entities.Appointment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &appointment))
	assert.Equal(t, entities.AppointmentStatusCancelled, appointment.Status)
}

func TestCancelAppointment_NotFound(t *testing.T) {
	repo := new(mockApptRepo)
	repo.On("GetByID", mock.Anything, "ghost").Return(nil, apperrors.NewNotFoundError("appointment with id ghost not found"))

	handler := NewAppointmentHandler(services.NewAppointmentService(repo, nil, nil), repo)

	req := httptest.NewRequest(http.MethodPost, "/api/appointments/ghost/cancel", nil)
	req.SetPathValue("id", "ghost")
	rec := httptest.NewRecorder()

	handler.CancelAppointment(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
