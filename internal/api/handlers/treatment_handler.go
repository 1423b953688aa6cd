package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dento-health/dento-portal/backend/internal/domain/entities"
	"github.com/dento-health/dento-portal/backend/internal/domain/repositories"
)

// TreatmentHandler handles treatment and treatment plan HTTP requests
type TreatmentHandler struct {
	treatmentRepo repositories.TreatmentRepository
	planRepo      repositories.TreatmentPlanRepository
}

// NewTreatmentHandler creates a new treatment handler
func NewTreatmentHandler(treatmentRepo repositories.TreatmentRepository, planRepo repositories.TreatmentPlanRepository) *TreatmentHandler {
	return &TreatmentHandler{
		treatmentRepo: treatmentRepo,
		planRepo:      planRepo,
	}
}

// ListTreatments handles GET /api/patients/{id}/treatments
func (h *TreatmentHandler) ListTreatments(w http.ResponseWriter, r *http.Request) {
	patientID := r.PathValue("id")
	if patientID == "" {
		respondWithError(w, http.StatusBadRequest, "patient ID is required")
		return
	}

	treatments, err := h.treatmentRepo.ListByPatient(r.Context(), patientID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"treatments": treatments,
		"count":      len(treatments),
	})
}

// CreateTreatment handles POST /api/treatments
func (h *TreatmentHandler) CreateTreatment(w http.ResponseWriter, r *http.Request) {
	var treatment entities.Treatment
	if err := json.NewDecoder(r.Body).Decode(&treatment); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if treatment.PatientID == "" || treatment.DoctorID == "" || treatment.Description == "" {
		respondWithError(w, http.StatusBadRequest, "patient_id, doctor_id and description are required")
		return
	}

	if treatment.Date == "" {
		treatment.Date = time.Now().Format("2006-01-02")
	}
	if treatment.ID == "" {
		treatment.ID = uuid.New().String()
	}

	if err := h.treatmentRepo.Create(r.Context(), &treatment); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, treatment)
}

// UpdateTreatment handles PUT /api/treatments/{id}
func (h *TreatmentHandler) UpdateTreatment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "treatment ID is required")
		return
	}

	var treatment entities.Treatment
	if err := json.NewDecoder(r.Body).Decode(&treatment); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	treatment.ID = id

	if err := h.treatmentRepo.Update(r.Context(), &treatment); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, treatment)
}

// DeleteTreatment handles DELETE /api/treatments/{id}
func (h *TreatmentHandler) DeleteTreatment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "treatment ID is required")
		return
	}

	if err := h.treatmentRepo.Delete(r.Context(), id); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ListTreatmentPlans handles GET /api/patients/{id}/treatment-plans
func (h *TreatmentHandler) ListTreatmentPlans(w http.ResponseWriter, r *http.Request) {
	patientID := r.PathValue("id")
	if patientID == "" {
		respondWithError(w, http.StatusBadRequest, "patient ID is required")
		return
	}

	plans, err := h.planRepo.ListByPatient(r.Context(), patientID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"treatment_plans": plans,
		"count":           len(plans),
	})
}

// CreateTreatmentPlan handles POST /api/treatment-plans
func (h *TreatmentHandler) CreateTreatmentPlan(w http.ResponseWriter, r *http.Request) {
	var plan entities.TreatmentPlan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if plan.PatientID == "" || plan.ClinicID == "" || plan.Title == "" {
		respondWithError(w, http.StatusBadRequest, "patient_id, clinic_id and title are required")
		return
	}

	if plan.ID == "" {
		plan.ID = uuid.New().String()
	}
	if plan.Status == "" {
		plan.Status = entities.TreatmentPlanStatusPending
	}
	plan.CreatedAt = time.Now()

	if err := h.planRepo.Create(r.Context(), &plan); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, plan)
}

// UpdateTreatmentPlan handles PUT /api/treatment-plans/{id}
func (h *TreatmentHandler) UpdateTreatmentPlan(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "treatment plan ID is required")
		return
	}

	existing, err := h.planRepo.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	var plan entities.TreatmentPlan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	plan.ID = id
	plan.CreatedAt = existing.CreatedAt
	if plan.PatientID == "" {
		plan.PatientID = existing.PatientID
	}
	if plan.ClinicID == "" {
		plan.ClinicID = existing.ClinicID
	}
	if plan.Status == "" {
		plan.Status = existing.Status
	}

	if err := h.planRepo.Update(r.Context(), &plan); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, plan)
}

// DeleteTreatmentPlan handles DELETE /api/treatment-plans/{id}
func (h *TreatmentHandler) DeleteTreatmentPlan(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "treatment plan ID is required")
		return
	}

	if err := h.planRepo.Delete(r.Context(), id); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
