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

// PatientAdapter implements PatientRepository
type PatientAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewPatientAdapter creates a new patient adapter
func NewPatientAdapter(client *postgres.Client) repositories.PatientRepository {
	return &PatientAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

var patientColumns = []interface{}{
	"id", "full_name", "age", "phone", "clinic_id", "assigned_to_user_id", "status", "created_at",
}

// Create creates a new patient
func (a *PatientAdapter) Create(ctx context.Context, patient *entities.Patient) error {
	record := goqu.Record{
		"id":                  patient.ID,
		"full_name":           patient.FullName,
		"age":                 patient.Age,
		"phone":               patient.Phone,
		"clinic_id":           patient.ClinicID,
		"assigned_to_user_id": sql.NullString{String: patient.AssignedToUserID, Valid: patient.AssignedToUserID != ""},
		"status":              string(patient.Status),
		"created_at":          patient.CreatedAt,
	}

	query, args, err := a.db.Insert("patients").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	_, err = a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to create patient", err)
	}

	return nil
}

// GetByID retrieves a patient by ID
func (a *PatientAdapter) GetByID(ctx context.Context, id string) (*entities.Patient, error) {
	query, args, err := a.db.Select(patientColumns...).
		From("patients").
		Where(goqu.Ex{"id": id}).
		ToSQL()

	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	patient := &entities.Patient{}
	var assignedTo sql.NullString
	var status string

	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&patient.ID,
		&patient.FullName,
		&patient.Age,
		&patient.Phone,
		&patient.ClinicID,
		&assignedTo,
		&status,
		&patient.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("patient with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get patient", err)
	}

	patient.AssignedToUserID = assignedTo.String
	patient.Status = entities.PatientStatus(status)

	return patient, nil
}

// Update updates a patient
func (a *PatientAdapter) Update(ctx context.Context, patient *entities.Patient) error {
	record := goqu.Record{
		"full_name":           patient.FullName,
		"age":                 patient.Age,
		"phone":               patient.Phone,
		"clinic_id":           patient.ClinicID,
		"assigned_to_user_id": sql.NullString{String: patient.AssignedToUserID, Valid: patient.AssignedToUserID != ""},
		"status":              string(patient.Status),
	}

	query, args, err := a.db.Update("patients").
		Set(record).
		Where(goqu.Ex{"id": patient.ID}).
		ToSQL()

	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update patient", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("patient with id %s not found", patient.ID))
	}

	return nil
}

// Delete archives a patient. Patient rows carry medical history so they
// are never hard-deleted.
func (a *PatientAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Update("patients").
		Set(goqu.Record{"status": string(entities.PatientStatusArchived)}).
		Where(goqu.Ex{"id": id}).
		ToSQL()

	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete patient", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("patient with id %s not found", id))
	}

	return nil
}

// List retrieves patients with filters
func (a *PatientAdapter) List(ctx context.Context, filter repositories.PatientFilter) ([]*entities.Patient, error) {
	ds := a.db.Select(patientColumns...).From("patients")

	if filter.ClinicID != "" {
		ds = ds.Where(goqu.Ex{"clinic_id": filter.ClinicID})
	}

	if filter.AssignedToUserID != "" {
		ds = ds.Where(goqu.Ex{"assigned_to_user_id": filter.AssignedToUserID})
	}

	if filter.Status != "" {
		ds = ds.Where(goqu.Ex{"status": string(filter.Status)})
	}

	ds = ds.Order(goqu.I("created_at").Desc())

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
		return nil, apperrors.NewInternalError("failed to list patients", err)
	}
	defer rows.Close()

	var patients []*entities.Patient
	for rows.Next() {
		patient := &entities.Patient{}
		var assignedTo sql.NullString
		var status string

		err := rows.Scan(
			&patient.ID,
			&patient.FullName,
			&patient.Age,
			&patient.Phone,
			&patient.ClinicID,
			&assignedTo,
			&status,
			&patient.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan patient", err)
		}

		patient.AssignedToUserID = assignedTo.String
		patient.Status = entities.PatientStatus(status)

		patients = append(patients, patient)
	}

	if err = rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating patients", err)
	}

	return patients, nil
}
