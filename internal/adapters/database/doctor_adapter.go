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

// DoctorAdapter implements DoctorRepository
type DoctorAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewDoctorAdapter creates a new doctor adapter
func NewDoctorAdapter(client *postgres.Client) repositories.DoctorRepository {
	return &DoctorAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

var doctorColumns = []interface{}{
	"id", "name", "specialization", "contact", "email", "clinic_id",
}

// Create creates a new doctor
func (a *DoctorAdapter) Create(ctx context.Context, doctor *entities.Doctor) error {
	record := goqu.Record{
		"id":             doctor.ID,
		"name":           doctor.Name,
		"specialization": doctor.Specialization,
		"contact":        sql.NullString{String: doctor.Contact, Valid: doctor.Contact != ""},
		"email":          sql.NullString{String: doctor.Email, Valid: doctor.Email != ""},
		"clinic_id":      sql.NullString{String: doctor.ClinicID, Valid: doctor.ClinicID != ""},
	}

	query, args, err := a.db.Insert("doctors").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	_, err = a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to create doctor", err)
	}

	return nil
}

// GetByID retrieves a doctor by ID
func (a *DoctorAdapter) GetByID(ctx context.Context, id string) (*entities.Doctor, error) {
	query, args, err := a.db.Select(doctorColumns...).
		From("doctors").
		Where(goqu.Ex{"id": id}).
		ToSQL()

	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	doctor := &entities.Doctor{}
	var contact, email, clinicID sql.NullString

	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&doctor.ID,
		&doctor.Name,
		&doctor.Specialization,
		&contact,
		&email,
		&clinicID,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("doctor with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get doctor", err)
	}

	doctor.Contact = contact.String
	doctor.Email = email.String
	doctor.ClinicID = clinicID.String

	return doctor, nil
}

// Update updates a doctor
func (a *DoctorAdapter) Update(ctx context.Context, doctor *entities.Doctor) error {
	record := goqu.Record{
		"name":           doctor.Name,
		"specialization": doctor.Specialization,
		"contact":        sql.NullString{String: doctor.Contact, Valid: doctor.Contact != ""},
		"email":          sql.NullString{String: doctor.Email, Valid: doctor.Email != ""},
		"clinic_id":      sql.NullString{String: doctor.ClinicID, Valid: doctor.ClinicID != ""},
	}

	query, args, err := a.db.Update("doctors").
		Set(record).
		Where(goqu.Ex{"id": doctor.ID}).
		ToSQL()

	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update doctor", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("doctor with id %s not found", doctor.ID))
	}

	return nil
}

// Delete deletes a doctor
func (a *DoctorAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete("doctors").
		Where(goqu.Ex{"id": id}).
		ToSQL()

	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete doctor", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("doctor with id %s not found", id))
	}

	return nil
}

// List retrieves doctors with filters. The clinic name is joined in so
// callers can index doctors for search without a second lookup.
func (a *DoctorAdapter) List(ctx context.Context, filter repositories.DoctorFilter) ([]*entities.Doctor, error) {
	ds := a.db.Select(
		goqu.I("d.id"),
		goqu.I("d.name"),
		goqu.I("d.specialization"),
		goqu.I("d.contact"),
		goqu.I("d.email"),
		goqu.I("d.clinic_id"),
		goqu.I("c.name").As("clinic_name"),
	).From(goqu.T("doctors").As("d")).
		LeftJoin(goqu.T("clinics").As("c"), goqu.On(goqu.I("d.clinic_id").Eq(goqu.I("c.id"))))

	if filter.ClinicID != "" {
		ds = ds.Where(goqu.I("d.clinic_id").Eq(filter.ClinicID))
	}

	if filter.Specialization != "" {
		ds = ds.Where(goqu.I("d.specialization").Eq(filter.Specialization))
	}

	ds = ds.Order(goqu.I("d.name").Asc())

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
		return nil, apperrors.NewInternalError("failed to list doctors", err)
	}
	defer rows.Close()

	var doctors []*entities.Doctor
	for rows.Next() {
		doctor := &entities.Doctor{}
		var contact, email, clinicID, clinicName sql.NullString

		err := rows.Scan(
			&doctor.ID,
			&doctor.Name,
			&doctor.Specialization,
			&contact,
			&email,
			&clinicID,
			&clinicName,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan doctor", err)
		}

		doctor.Contact = contact.String
		doctor.Email = email.String
		doctor.ClinicID = clinicID.String
		doctor.ClinicName = clinicName.String

		doctors = append(doctors, doctor)
	}

	if err = rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating doctors", err)
	}

	return doctors, nil
}
