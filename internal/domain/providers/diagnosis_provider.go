package providers

import (
	"context"
	"errors"

	"github.com/dento-health/dento-portal/backend/internal/domain/entities"
)

// ErrEmptyDiagnosis is returned when the provider answered successfully
// but produced no usable conditions. Callers treat it exactly like a
// transport failure and fall back to the local scorer.
var ErrEmptyDiagnosis = errors.New("diagnosis provider returned no conditions")

// DiagnosisProvider defines the interface to the remote AI diagnosis
// service
type DiagnosisProvider interface {
	// Diagnose submits the questionnaire (and optional x-ray image) and
	// returns the provider's structured diagnosis
	Diagnose(ctx context.Context, req *entities.DiagnosisRequest) (*entities.DiagnosisResult, error)
}
