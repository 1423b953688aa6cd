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

// ClinicAdapter implements ClinicRepository
type ClinicAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewClinicAdapter creates a new clinic adapter
func NewClinicAdapter(client *postgres.Client) repositories.ClinicRepository {
	return &ClinicAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

var clinicColumns = []interface{}{
	"id", "name", "name_en", "specialization_tag", "address", "contact", "email",
}

// Create creates a new clinic
func (a *ClinicAdapter) Create(ctx context.Context, clinic *entities.Clinic) error {
	record := goqu.Record{
		"id":                 clinic.ID,
		"name":               clinic.Name,
		"name_en":            sql.NullString{String: clinic.NameEn, Valid: clinic.NameEn != ""},
		"specialization_tag": sql.NullString{String: clinic.SpecializationTag, Valid: clinic.SpecializationTag != ""},
		"address":            sql.NullString{String: clinic.Address, Valid: clinic.Address != ""},
		"contact":            sql.NullString{String: clinic.Contact, Valid: clinic.Contact != ""},
		"email":              sql.NullString{String: clinic.Email, Valid: clinic.Email != ""},
	}

	query, args, err := a.db.Insert("clinics").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	_, err = a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to create clinic", err)
	}

	return nil
}

// GetByID retrieves a clinic by ID
func (a *ClinicAdapter) GetByID(ctx context.Context, id string) (*entities.Clinic, error) {
	query, args, err := a.db.Select(clinicColumns...).
		From("clinics").
		Where(goqu.Ex{"id": id}).
		ToSQL()

	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	clinic := &entities.Clinic{}
	var nameEn, specializationTag, address, contact, email sql.NullString

	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&clinic.ID,
		&clinic.Name,
		&nameEn,
		&specializationTag,
		&address,
		&contact,
		&email,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("clinic with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get clinic", err)
	}

	clinic.NameEn = nameEn.String
	clinic.SpecializationTag = specializationTag.String
	clinic.Address = address.String
	clinic.Contact = contact.String
	clinic.Email = email.String

	return clinic, nil
}

// Update updates a clinic
func (a *ClinicAdapter) Update(ctx context.Context, clinic *entities.Clinic) error {
	record := goqu.Record{
		"name":               clinic.Name,
		"name_en":            sql.NullString{String: clinic.NameEn, Valid: clinic.NameEn != ""},
		"specialization_tag": sql.NullString{String: clinic.SpecializationTag, Valid: clinic.SpecializationTag != ""},
		"address":            sql.NullString{String: clinic.Address, Valid: clinic.Address != ""},
		"contact":            sql.NullString{String: clinic.Contact, Valid: clinic.Contact != ""},
		"email":              sql.NullString{String: clinic.Email, Valid: clinic.Email != ""},
	}

	query, args, err := a.db.Update("clinics").
		Set(record).
		Where(goqu.Ex{"id": clinic.ID}).
		ToSQL()

	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update clinic", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("clinic with id %s not found", clinic.ID))
	}

	return nil
}

// Delete deletes a clinic
func (a *ClinicAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete("clinics").
		Where(goqu.Ex{"id": id}).
		ToSQL()

	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete clinic", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("clinic with id %s not found", id))
	}

	return nil
}

// List retrieves all clinics
func (a *ClinicAdapter) List(ctx context.Context) ([]*entities.Clinic, error) {
	query, args, err := a.db.Select(clinicColumns...).
		From("clinics").
		Order(goqu.I("name").Asc()).
		ToSQL()

	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list clinics", err)
	}
	defer rows.Close()

	var clinics []*entities.Clinic
	for rows.Next() {
		clinic := &entities.Clinic{}
		var nameEn, specializationTag, address, contact, email sql.NullString

		err := rows.Scan(
			&clinic.ID,
			&clinic.Name,
			&nameEn,
			&specializationTag,
			&address,
			&contact,
			&email,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan clinic", err)
		}

		clinic.NameEn = nameEn.String
		clinic.SpecializationTag = specializationTag.String
		clinic.Address = address.String
		clinic.Contact = contact.String
		clinic.Email = email.String

		clinics = append(clinics, clinic)
	}

	if err = rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating clinics", err)
	}

	return clinics, nil
}
