package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dento-health/dento-portal/backend/internal/application/services"
	"github.com/dento-health/dento-portal/backend/internal/domain/entities"
)

// DiagnosisHandler handles AI diagnosis requests
type DiagnosisHandler struct {
	service *services.DiagnosisService
}

// NewDiagnosisHandler creates a new diagnosis handler
func NewDiagnosisHandler(service *services.DiagnosisService) *DiagnosisHandler {
	return &DiagnosisHandler{service: service}
}

// Diagnose handles POST /api/ai/diagnosis. The service always produces
// a result, so once the payload validates the response is 200.
func (h *DiagnosisHandler) Diagnose(w http.ResponseWriter, r *http.Request) {
	var req entities.DiagnosisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(req.Answers) == 0 {
		respondWithError(w, http.StatusBadRequest, "answers are required")
		return
	}

	result := h.service.Diagnose(r.Context(), &req)
	respondWithJSON(w, http.StatusOK, result)
}
