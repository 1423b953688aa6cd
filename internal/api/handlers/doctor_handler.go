package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dento-health/dento-portal/backend/internal/application/services"
	"github.com/dento-health/dento-portal/backend/internal/domain/entities"
	"github.com/dento-health/dento-portal/backend/internal/domain/repositories"
)

// DoctorHandler handles doctor-related HTTP requests
type DoctorHandler struct {
	service *services.DoctorService
}

// NewDoctorHandler creates a new doctor handler
func NewDoctorHandler(service *services.DoctorService) *DoctorHandler {
	return &DoctorHandler{service: service}
}

// ListDoctors handles GET /api/doctors
func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	filter := repositories.DoctorFilter{
		ClinicID:       r.URL.Query().Get("clinic_id"),
		Specialization: r.URL.Query().Get("specialization"),
		Limit:          parseIntParam(r, "limit", 50),
		Offset:         parseIntParam(r, "offset", 0),
	}

	doctors, err := h.service.List(r.Context(), filter)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"doctors": doctors,
		"count":   len(doctors),
	})
}

// SearchDoctors handles GET /api/doctors/search
func (h *DoctorHandler) SearchDoctors(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	limit := parseIntParam(r, "limit", 20)

	doctors, err := h.service.Search(r.Context(), query, limit)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"doctors": doctors,
		"count":   len(doctors),
	})
}

// GetDoctor handles GET /api/doctors/{id}
func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "doctor ID is required")
		return
	}

	doctor, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, doctor)
}

// CreateDoctor handles POST /api/doctors
func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var doctor entities.Doctor
	if err := json.NewDecoder(r.Body).Decode(&doctor); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if doctor.Name == "" || doctor.Specialization == "" {
		respondWithError(w, http.StatusBadRequest, "name and specialization are required")
		return
	}

	if err := h.service.Create(r.Context(), &doctor); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, doctor)
}

// UpdateDoctor handles PUT /api/doctors/{id}
func (h *DoctorHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "doctor ID is required")
		return
	}

	var doctor entities.Doctor
	if err := json.NewDecoder(r.Body).Decode(&doctor); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	doctor.ID = id

	if err := h.service.Update(r.Context(), &doctor); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, doctor)
}

// DeleteDoctor handles DELETE /api/doctors/{id}
func (h *DoctorHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "doctor ID is required")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// parseIntParam reads an integer query parameter with a default
func parseIntParam(r *http.Request, name string, defaultValue int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return defaultValue
	}
	return value
}
