package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dento-health/dento-portal/backend/internal/application/services"
	"github.com/dento-health/dento-portal/backend/internal/domain/entities"
	"github.com/dento-health/dento-portal/backend/internal/domain/repositories"
)

// AppointmentHandler handles appointment-related HTTP requests
type AppointmentHandler struct {
	service         *services.AppointmentService
	appointmentRepo repositories.AppointmentRepository
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(service *services.AppointmentService, appointmentRepo repositories.AppointmentRepository) *AppointmentHandler {
	return &AppointmentHandler{
		service:         service,
		appointmentRepo: appointmentRepo,
	}
}

// ListAppointments handles GET /api/appointments
func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	filter := repositories.AppointmentFilter{
		PatientID: r.URL.Query().Get("patient_id"),
		DoctorID:  r.URL.Query().Get("doctor_id"),
		Date:      r.URL.Query().Get("date"),
		Status:    entities.AppointmentStatus(r.URL.Query().Get("status")),
		Limit:     parseIntParam(r, "limit", 50),
		Offset:    parseIntParam(r, "offset", 0),
	}

	appointments, err := h.appointmentRepo.List(r.Context(), filter)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"appointments": appointments,
		"count":        len(appointments),
	})
}

// GetAppointment handles GET /api/appointments/{id}
func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "appointment ID is required")
		return
	}

	appointment, err := h.appointmentRepo.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, appointment)
}

// BookAppointment handles POST /api/appointments
func (h *AppointmentHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var appointment entities.Appointment
	if err := json.NewDecoder(r.Body).Decode(&appointment); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.Book(r.Context(), &appointment); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, appointment)
}

// RescheduleAppointment handles PUT /api/appointments/{id}/reschedule
func (h *AppointmentHandler) RescheduleAppointment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "appointment ID is required")
		return
	}

	var payload struct {
		Date string `json:"date"`
		Time string `json:"time"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	appointment, err := h.service.Reschedule(r.Context(), id, payload.Date, payload.Time)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, appointment)
}

// CancelAppointment handles POST /api/appointments/{id}/cancel
func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "appointment ID is required")
		return
	}

	appointment, err := h.service.Cancel(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, appointment)
}

// UpdateAppointment handles PUT /api/appointments/{id}
func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "appointment ID is required")
		return
	}

	existing, err := h.appointmentRepo.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	var appointment entities.Appointment
	if err := json.NewDecoder(r.Body).Decode(&appointment); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	appointment.ID = id
	if appointment.PatientID == "" {
		appointment.PatientID = existing.PatientID
	}
	if appointment.DoctorID == "" {
		appointment.DoctorID = existing.DoctorID
	}
	if appointment.Date == "" {
		appointment.Date = existing.Date
	}
	if appointment.Time == "" {
		appointment.Time = existing.Time
	}
	if appointment.Status == "" {
		appointment.Status = existing.Status
	}

	if err := h.appointmentRepo.Update(r.Context(), &appointment); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, appointment)
}

// DeleteAppointment handles DELETE /api/appointments/{id}
func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "appointment ID is required")
		return
	}

	if err := h.appointmentRepo.Delete(r.Context(), id); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
