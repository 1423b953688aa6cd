package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dento-health/dento-portal/backend/internal/domain/entities"
	"github.com/dento-health/dento-portal/backend/internal/domain/repositories"
)

// PatientHandler handles patient-related HTTP requests
type PatientHandler struct {
	patientRepo repositories.PatientRepository
	clinicRepo  repositories.ClinicRepository
}

// NewPatientHandler creates a new patient handler
func NewPatientHandler(patientRepo repositories.PatientRepository, clinicRepo repositories.ClinicRepository) *PatientHandler {
	return &PatientHandler{
		patientRepo: patientRepo,
		clinicRepo:  clinicRepo,
	}
}

// ListPatients handles GET /api/patients
func (h *PatientHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	filter := repositories.PatientFilter{
		ClinicID:         r.URL.Query().Get("clinic_id"),
		AssignedToUserID: r.URL.Query().Get("assigned_to"),
		Status:           entities.PatientStatus(r.URL.Query().Get("status")),
		Limit:            parseIntParam(r, "limit", 50),
		Offset:           parseIntParam(r, "offset", 0),
	}

	patients, err := h.patientRepo.List(r.Context(), filter)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"patients": patients,
		"count":    len(patients),
	})
}

// GetPatient handles GET /api/patients/{id}
func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "patient ID is required")
		return
	}

	patient, err := h.patientRepo.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, patient)
}

// CreatePatient handles POST /api/patients
func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var patient entities.Patient
	if err := json.NewDecoder(r.Body).Decode(&patient); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if patient.FullName == "" || patient.ClinicID == "" {
		respondWithError(w, http.StatusBadRequest, "full_name and clinic_id are required")
		return
	}

	if _, err := h.clinicRepo.GetByID(r.Context(), patient.ClinicID); err != nil {
		respondWithAppError(w, err)
		return
	}

	if patient.ID == "" {
		patient.ID = uuid.New().String()
	}
	if patient.Status == "" {
		patient.Status = entities.PatientStatusActive
	}
	patient.CreatedAt = time.Now()

	if err := h.patientRepo.Create(r.Context(), &patient); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, patient)
}

// UpdatePatient handles PUT /api/patients/{id}
func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "patient ID is required")
		return
	}

	existing, err := h.patientRepo.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	var patient entities.Patient
	if err := json.NewDecoder(r.Body).Decode(&patient); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	patient.ID = id
	patient.CreatedAt = existing.CreatedAt
	if patient.Status == "" {
		patient.Status = existing.Status
	}

	if err := h.patientRepo.Update(r.Context(), &patient); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, patient)
}

// DeletePatient handles DELETE /api/patients/{id}
func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "patient ID is required")
		return
	}

	if err := h.patientRepo.Delete(r.Context(), id); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "archived"})
}
