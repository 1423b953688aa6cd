package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/dento-health/dento-portal/backend/internal/domain/entities"
	"github.com/dento-health/dento-portal/backend/internal/domain/repositories"
	"github.com/dento-health/dento-portal/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/dento-health/dento-portal/backend/pkg/errors"
)

// AppointmentAdapter implements AppointmentRepository
type AppointmentAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewAppointmentAdapter creates a new appointment adapter
func NewAppointmentAdapter(client *postgres.Client) repositories.AppointmentRepository {
	return &AppointmentAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

var appointmentColumns = []interface{}{
	"id", "patient_id", "doctor_id", "date", "time", "status", "notes",
}

// Create creates a new appointment
func (a *AppointmentAdapter) Create(ctx context.Context, appointment *entities.Appointment) error {
	record := goqu.Record{
		"id":         appointment.ID,
		"patient_id": appointment.PatientID,
		"doctor_id":  appointment.DoctorID,
		"date":       appointment.Date,
		"time":       appointment.Time,
		"status":     string(appointment.Status),
		"notes":      sql.NullString{String: appointment.Notes, Valid: appointment.Notes != ""},
	}

	query, args, err := a.db.Insert("appointments").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	_, err = a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to create appointment", err)
	}

	return nil
}

// GetByID retrieves an appointment by ID
func (a *AppointmentAdapter) GetByID(ctx context.Context, id string) (*entities.Appointment, error) {
	query, args, err := a.db.Select(appointmentColumns...).
		From("appointments").
		Where(goqu.Ex{"id": id}).
		ToSQL()

	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	appointment := &entities.Appointment{}
	var notes sql.NullString
	var status string

	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&appointment.ID,
		&appointment.PatientID,
		&appointment.DoctorID,
		&appointment.Date,
		&appointment.Time,
		&status,
		&notes,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("appointment with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get appointment", err)
	}

	appointment.Status = entities.AppointmentStatus(status)
	appointment.Notes = notes.String

	return appointment, nil
}

// Update updates an appointment
func (a *AppointmentAdapter) Update(ctx context.Context, appointment *entities.Appointment) error {
	record := goqu.Record{
		"patient_id": appointment.PatientID,
		"doctor_id":  appointment.DoctorID,
		"date":       appointment.Date,
		"time":       appointment.Time,
		"status":     string(appointment.Status),
		"notes":      sql.NullString{String: appointment.Notes, Valid: appointment.Notes != ""},
	}

	query, args, err := a.db.Update("appointments").
		Set(record).
		Where(goqu.Ex{"id": appointment.ID}).
		ToSQL()

	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update appointment", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("appointment with id %s not found", appointment.ID))
	}

	return nil
}

// Delete deletes an appointment
func (a *AppointmentAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete("appointments").
		Where(goqu.Ex{"id": id}).
		ToSQL()

	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete appointment", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("appointment with id %s not found", id))
	}

	return nil
}

// List retrieves appointments with filters
func (a *AppointmentAdapter) List(ctx context.Context, filter repositories.AppointmentFilter) ([]*entities.Appointment, error) {
	ds := a.db.Select(appointmentColumns...).From("appointments")

	if filter.PatientID != "" {
		ds = ds.Where(goqu.Ex{"patient_id": filter.PatientID})
	}

	if filter.DoctorID != "" {
		ds = ds.Where(goqu.Ex{"doctor_id": filter.DoctorID})
	}

	if filter.Date != "" {
		ds = ds.Where(goqu.Ex{"date": filter.Date})
	}

	if filter.Status != "" {
		ds = ds.Where(goqu.Ex{"status": string(filter.Status)})
	}

	ds = ds.Order(goqu.I("date").Asc(), goqu.I("time").Asc())

	if filter.Limit > 0 {
		ds = ds.Limit(uint(filter.Limit))
	}

	if filter.Offset > 0 {
		ds = ds.Offset(uint(filter.Offset))
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list appointments", err)
	}
	defer rows.Close()

	var appointments []*entities.Appointment
	for rows.Next() {
		appointment := &entities.Appointment{}
		var notes sql.NullString
		var status string

		err := rows.Scan(
			&appointment.ID,
			&appointment.PatientID,
			&appointment.DoctorID,
			&appointment.Date,
			&appointment.Time,
			&status,
			&notes,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan appointment", err)
		}

		appointment.Status = entities.AppointmentStatus(status)
		appointment.Notes = notes.String

		appointments = append(appointments, appointment)
	}

	if err = rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating appointments", err)
	}

	return appointments, nil
}

// ExistsForDoctorSlot reports whether the doctor already has a
// non-cancelled appointment at the given date and time
func (a *AppointmentAdapter) ExistsForDoctorSlot(ctx context.Context, doctorID, date, timeSlot string) (bool, error) {
	query, args, err := a.db.Select(goqu.COUNT("*")).
		From("appointments").
		Where(goqu.Ex{
			"doctor_id": doctorID,
			"date":      date,
			"time":      timeSlot,
		}).
		Where(goqu.I("status").Neq(string(entities.AppointmentStatusCancelled))).
		ToSQL()

	if err != nil {
		return false, apperrors.NewInternalError("failed to build slot query", err)
	}

	var count int
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(&count)
	if err != nil {
		return false, apperrors.NewInternalError("failed to check doctor slot", err)
	}

	return count > 0, nil
}
