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

// ReportAdapter implements ReportRepository
type ReportAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewReportAdapter creates a new report adapter
func NewReportAdapter(client *postgres.Client) repositories.ReportRepository {
	return &ReportAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

var reportColumns = []interface{}{
	"id", "patient_id", "clinic_id", "title", "content", "report_type", "created_by", "created_at",
}

// Create creates a new report
func (a *ReportAdapter) Create(ctx context.Context, report *entities.Report) error {
	record := goqu.Record{
		"id":          report.ID,
		"patient_id":  report.PatientID,
		"clinic_id":   report.ClinicID,
		"title":       report.Title,
		"content":     report.Content,
		"report_type": report.ReportType,
		"created_by":  sql.NullString{String: report.CreatedBy, Valid: report.CreatedBy != ""},
		"created_at":  report.CreatedAt,
	}

	query, args, err := a.db.Insert("reports").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	_, err = a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to create report", err)
	}

	return nil
}

// GetByID retrieves a report by ID
func (a *ReportAdapter) GetByID(ctx context.Context, id string) (*entities.Report, error) {
	query, args, err := a.db.Select(reportColumns...).
		From("reports").
		Where(goqu.Ex{"id": id}).
		ToSQL()

	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	report := &entities.Report{}
	var createdBy sql.NullString

	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&report.ID,
		&report.PatientID,
		&report.ClinicID,
		&report.Title,
		&report.Content,
		&report.ReportType,
		&createdBy,
		&report.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("report with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get report", err)
	}

	report.CreatedBy = createdBy.String

	return report, nil
}

// Update updates a report
func (a *ReportAdapter) Update(ctx context.Context, report *entities.Report) error {
	record := goqu.Record{
		"patient_id":  report.PatientID,
		"clinic_id":   report.ClinicID,
		"title":       report.Title,
		"content":     report.Content,
		"report_type": report.ReportType,
	}

	query, args, err := a.db.Update("reports").
		Set(record).
		Where(goqu.Ex{"id": report.ID}).
		ToSQL()

	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update report", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("report with id %s not found", report.ID))
	}

	return nil
}

// Delete deletes a report
func (a *ReportAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete("reports").
		Where(goqu.Ex{"id": id}).
		ToSQL()

	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete report", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("report with id %s not found", id))
	}

	return nil
}

// List retrieves reports with filters
func (a *ReportAdapter) List(ctx context.Context, filter repositories.ReportFilter) ([]*entities.Report, error) {
	ds := a.db.Select(reportColumns...).From("reports")

	if filter.PatientID != "" {
		ds = ds.Where(goqu.Ex{"patient_id": filter.PatientID})
	}

	if filter.ClinicID != "" {
		ds = ds.Where(goqu.Ex{"clinic_id": filter.ClinicID})
	}

	if filter.ReportType != "" {
		ds = ds.Where(goqu.Ex{"report_type": filter.ReportType})
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
		return nil, apperrors.NewInternalError("failed to list reports", err)
	}
	defer rows.Close()

	var reports []*entities.Report
	for rows.Next() {
		report := &entities.Report{}
		var createdBy sql.NullString

		err := rows.Scan(
			&report.ID,
			&report.PatientID,
			&report.ClinicID,
			&report.Title,
			&report.Content,
			&report.ReportType,
			&createdBy,
			&report.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan report", err)
		}

		report.CreatedBy = createdBy.String

		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating reports", err)
	}

	return reports, nil
}
