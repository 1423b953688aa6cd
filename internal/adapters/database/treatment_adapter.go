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

// TreatmentAdapter implements TreatmentRepository
type TreatmentAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewTreatmentAdapter creates a new treatment adapter
func NewTreatmentAdapter(client *postgres.Client) repositories.TreatmentRepository {
	return &TreatmentAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

var treatmentColumns = []interface{}{
	"id", "patient_id", "doctor_id", "description", "date", "cost",
}

// Create creates a new treatment
func (a *TreatmentAdapter) Create(ctx context.Context, treatment *entities.Treatment) error {
	record := goqu.Record{
		"id":          treatment.ID,
		"patient_id":  treatment.PatientID,
		"doctor_id":   treatment.DoctorID,
		"description": treatment.Description,
		"date":        treatment.Date,
		"cost":        treatment.Cost,
	}

	query, args, err := a.db.Insert("treatments").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	_, err = a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to create treatment", err)
	}

	return nil
}

// GetByID retrieves a treatment by ID
func (a *TreatmentAdapter) GetByID(ctx context.Context, id string) (*entities.Treatment, error) {
	query, args, err := a.db.Select(treatmentColumns...).
		From("treatments").
		Where(goqu.Ex{"id": id}).
		ToSQL()

	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	treatment := &entities.Treatment{}
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&treatment.ID,
		&treatment.PatientID,
		&treatment.DoctorID,
		&treatment.Description,
		&treatment.Date,
		&treatment.Cost,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("treatment with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get treatment", err)
	}

	return treatment, nil
}

// Update updates a treatment
func (a *TreatmentAdapter) Update(ctx context.Context, treatment *entities.Treatment) error {
	record := goqu.Record{
		"patient_id":  treatment.PatientID,
		"doctor_id":   treatment.DoctorID,
		"description": treatment.Description,
		"date":        treatment.Date,
		"cost":        treatment.Cost,
	}

	query, args, err := a.db.Update("treatments").
		Set(record).
		Where(goqu.Ex{"id": treatment.ID}).
		ToSQL()

	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update treatment", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("treatment with id %s not found", treatment.ID))
	}

	return nil
}

// Delete deletes a treatment
func (a *TreatmentAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete("treatments").
		Where(goqu.Ex{"id": id}).
		ToSQL()

	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete treatment", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("treatment with id %s not found", id))
	}

	return nil
}

// ListByPatient retrieves treatments for a patient
func (a *TreatmentAdapter) ListByPatient(ctx context.Context, patientID string) ([]*entities.Treatment, error) {
	query, args, err := a.db.Select(treatmentColumns...).
		From("treatments").
		Where(goqu.Ex{"patient_id": patientID}).
		Order(goqu.I("date").Desc()).
		ToSQL()

	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list treatments", err)
	}
	defer rows.Close()

	var treatments []*entities.Treatment
	for rows.Next() {
		treatment := &entities.Treatment{}
		err := rows.Scan(
			&treatment.ID,
			&treatment.PatientID,
			&treatment.DoctorID,
			&treatment.Description,
			&treatment.Date,
			&treatment.Cost,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan treatment", err)
		}
		treatments = append(treatments, treatment)
	}

	if err = rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating treatments", err)
	}

	return treatments, nil
}

// TreatmentPlanAdapter implements TreatmentPlanRepository
type TreatmentPlanAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewTreatmentPlanAdapter creates a new treatment plan adapter
func NewTreatmentPlanAdapter(client *postgres.Client) repositories.TreatmentPlanRepository {
	return &TreatmentPlanAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

var treatmentPlanColumns = []interface{}{
	"id", "patient_id", "clinic_id", "title", "description", "status", "created_at",
}

// Create creates a new treatment plan
func (a *TreatmentPlanAdapter) Create(ctx context.Context, plan *entities.TreatmentPlan) error {
	record := goqu.Record{
		"id":          plan.ID,
		"patient_id":  plan.PatientID,
		"clinic_id":   plan.ClinicID,
		"title":       plan.Title,
		"description": sql.NullString{String: plan.Description, Valid: plan.Description != ""},
		"status":      string(plan.Status),
		"created_at":  plan.CreatedAt,
	}

	query, args, err := a.db.Insert("treatment_plans").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	_, err = a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to create treatment plan", err)
	}

	return nil
}

// GetByID retrieves a treatment plan by ID
func (a *TreatmentPlanAdapter) GetByID(ctx context.Context, id string) (*entities.TreatmentPlan, error) {
	query, args, err := a.db.Select(treatmentPlanColumns...).
		From("treatment_plans").
		Where(goqu.Ex{"id": id}).
		ToSQL()

	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	plan := &entities.TreatmentPlan{}
	var description sql.NullString
	var status string

	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&plan.ID,
		&plan.PatientID,
		&plan.ClinicID,
		&plan.Title,
		&description,
		&status,
		&plan.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("treatment plan with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get treatment plan", err)
	}

	plan.Description = description.String
	plan.Status = entities.TreatmentPlanStatus(status)

	return plan, nil
}

// Update updates a treatment plan
func (a *TreatmentPlanAdapter) Update(ctx context.Context, plan *entities.TreatmentPlan) error {
	record := goqu.Record{
		"patient_id":  plan.PatientID,
		"clinic_id":   plan.ClinicID,
		"title":       plan.Title,
		"description": sql.NullString{String: plan.Description, Valid: plan.Description != ""},
		"status":      string(plan.Status),
	}

	query, args, err := a.db.Update("treatment_plans").
		Set(record).
		Where(goqu.Ex{"id": plan.ID}).
		ToSQL()

	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update treatment plan", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("treatment plan with id %s not found", plan.ID))
	}

	return nil
}

// Delete deletes a treatment plan
func (a *TreatmentPlanAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete("treatment_plans").
		Where(goqu.Ex{"id": id}).
		ToSQL()

	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete treatment plan", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("treatment plan with id %s not found", id))
	}

	return nil
}

// ListByPatient retrieves treatment plans for a patient
func (a *TreatmentPlanAdapter) ListByPatient(ctx context.Context, patientID string) ([]*entities.TreatmentPlan, error) {
	query, args, err := a.db.Select(treatmentPlanColumns...).
		From("treatment_plans").
		Where(goqu.Ex{"patient_id": patientID}).
		Order(goqu.I("created_at").Desc()).
		ToSQL()

	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list treatment plans", err)
	}
	defer rows.Close()

	var plans []*entities.TreatmentPlan
	for rows.Next() {
		plan := &entities.TreatmentPlan{}
		var description sql.NullString
		var status string

		err := rows.Scan(
			&plan.ID,
			&plan.PatientID,
			&plan.ClinicID,
			&plan.Title,
			&description,
			&status,
			&plan.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan treatment plan", err)
		}

		plan.Description = description.String
		plan.Status = entities.TreatmentPlanStatus(status)

		plans = append(plans, plan)
	}

	if err = rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating treatment plans", err)
	}

	return plans, nil
}
