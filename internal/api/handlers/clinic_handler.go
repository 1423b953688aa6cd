package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/dento-health/dento-portal/backend/internal/domain/entities"
	"github.com/dento-health/dento-portal/backend/internal/domain/repositories"
)

// ClinicHandler handles clinic-related HTTP requests
type ClinicHandler struct {
	clinicRepo repositories.ClinicRepository
}

// NewClinicHandler creates a new clinic handler
func NewClinicHandler(clinicRepo repositories.ClinicRepository) *ClinicHandler {
	return &ClinicHandler{clinicRepo: clinicRepo}
}

// ListClinics handles GET /api/clinics
func (h *ClinicHandler) ListClinics(w http.ResponseWriter, r *http.Request) {
	clinics, err := h.clinicRepo.List(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"clinics": clinics,
		"count":   len(clinics),
	})
}

// GetClinic handles GET /api/clinics/{id}
func (h *ClinicHandler) GetClinic(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "clinic ID is required")
		return
	}

	clinic, err := h.clinicRepo.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, clinic)
}

// CreateClinic handles POST /api/clinics
func (h *ClinicHandler) CreateClinic(w http.ResponseWriter, r *http.Request) {
	var clinic entities.Clinic
	if err := json.NewDecoder(r.Body).Decode(&clinic); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if clinic.Name == "" {
		respondWithError(w, http.StatusBadRequest, "name is required")
		return
	}

	if clinic.ID == "" {
		clinic.ID = uuid.New().String()
	}

	if err := h.clinicRepo.Create(r.Context(), &clinic); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, clinic)
}

// UpdateClinic handles PUT /api/clinics/{id}
func (h *ClinicHandler) UpdateClinic(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "clinic ID is required")
		return
	}

	var clinic entities.Clinic
	if err := json.NewDecoder(r.Body).Decode(&clinic); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	clinic.ID = id

	if err := h.clinicRepo.Update(r.Context(), &clinic); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, clinic)
}

// DeleteClinic handles DELETE /api/clinics/{id}
func (h *ClinicHandler) DeleteClinic(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "clinic ID is required")
		return
	}

	if err := h.clinicRepo.Delete(r.Context(), id); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
