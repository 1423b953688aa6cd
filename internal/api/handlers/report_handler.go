package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dento-health/dento-portal/backend/internal/api/middleware"
	"github.com/dento-health/dento-portal/backend/internal/domain/entities"
	"github.com/dento-health/dento-portal/backend/internal/domain/repositories"
)

// ReportHandler handles medical report HTTP requests
type ReportHandler struct {
	reportRepo repositories.ReportRepository
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportRepo repositories.ReportRepository) *ReportHandler {
	return &ReportHandler{reportRepo: reportRepo}
}

// ListReports handles GET /api/reports
func (h *ReportHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	filter := repositories.ReportFilter{
		PatientID:  r.URL.Query().Get("patient_id"),
		ClinicID:   r.URL.Query().Get("clinic_id"),
		ReportType: r.URL.Query().Get("type"),
		Limit:      parseIntParam(r, "limit", 50),
		Offset:     parseIntParam(r, "offset", 0),
	}

	reports, err := h.reportRepo.List(r.Context(), filter)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"reports": reports,
		"count":   len(reports),
	})
}

// GetReport handles GET /api/reports/{id}
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "report ID is required")
		return
	}

	report, err := h.reportRepo.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, report)
}

// CreateReport handles POST /api/reports
func (h *ReportHandler) CreateReport(w http.ResponseWriter, r *http.Request) {
	var report entities.Report
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if report.PatientID == "" || report.ClinicID == "" || report.Title == "" {
		respondWithError(w, http.StatusBadRequest, "patient_id, clinic_id and title are required")
		return
	}

	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	if session, ok := middleware.SessionFromContext(r.Context()); ok {
		report.CreatedBy = session.UserID
	}
	report.CreatedAt = time.Now()

	if err := h.reportRepo.Create(r.Context(), &report); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, report)
}

// UpdateReport handles PUT /api/reports/{id}
func (h *ReportHandler) UpdateReport(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "report ID is required")
		return
	}

	existing, err := h.reportRepo.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	var report entities.Report
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	report.ID = id
	report.CreatedBy = existing.CreatedBy
	report.CreatedAt = existing.CreatedAt
	if report.PatientID == "" {
		report.PatientID = existing.PatientID
	}
	if report.ClinicID == "" {
		report.ClinicID = existing.ClinicID
	}

	if err := h.reportRepo.Update(r.Context(), &report); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, report)
}

// DeleteReport handles DELETE /api/reports/{id}
func (h *ReportHandler) DeleteReport(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "report ID is required")
		return
	}

	if err := h.reportRepo.Delete(r.Context(), id); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
