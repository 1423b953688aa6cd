package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/dento-health/dento-portal/backend/internal/diagnosis"
	"github.com/dento-health/dento-portal/backend/internal/domain/entities"
	"github.com/dento-health/dento-portal/backend/internal/domain/providers"
	"github.com/dento-health/dento-portal/backend/internal/infrastructure/observability"
)

const (
	confidenceCap           = 95
	remoteDefaultConfidence = 70
	remoteDefaultUrgency    = "medium"
	fallbackConfidenceBoost = 10
)

// DiagnosisService produces a diagnosis for a questionnaire submission.
// It asks the remote AI provider first and falls back to the local
// rule-based pipeline whenever the provider is unavailable, fails, or
// returns an unusable answer. Diagnose always produces a result.
type DiagnosisService struct {
	provider providers.DiagnosisProvider
}

// NewDiagnosisService creates a new diagnosis service. provider may be
// nil, in which case every request is served by the local pipeline.
func NewDiagnosisService(provider providers.DiagnosisProvider) *DiagnosisService {
	return &DiagnosisService{provider: provider}
}

// Diagnose runs the remote-first diagnosis flow
func (s *DiagnosisService) Diagnose(ctx context.Context, req *entities.DiagnosisRequest) *entities.DiagnosisResult {
	ctx, span := observability.StartSpan(ctx, "DiagnosisService.Diagnose")
	defer span.End()

	lang := diagnosis.NormalizeLanguage(req.Language)

	if s.provider != nil {
		result, err := s.provider.Diagnose(ctx, req)
		if err == nil && len(result.Conditions) > 0 {
			applyRemoteDefaults(result, lang)
			return result
		}
		if err != nil {
			observability.RecordError(span, err)
			log.Warn().Err(err).Msg("remote diagnosis failed, using local fallback")
		}
	}

	return s.localDiagnosis(req, lang)
}

// applyRemoteDefaults fills the optional fields a remote answer is
// allowed to omit and clamps its confidence.
func applyRemoteDefaults(result *entities.DiagnosisResult, lang diagnosis.Language) {
	if result.Recommendations == nil {
		result.Recommendations = []string{}
	}
	if result.Urgency == "" {
		result.Urgency = remoteDefaultUrgency
	}
	if result.Confidence == 0 {
		result.Confidence = remoteDefaultConfidence
	}
	if result.Confidence > confidenceCap {
		result.Confidence = confidenceCap
	}
	if result.SuggestedClinic.ID == "" && len(result.Conditions) > 0 {
		clinic := diagnosis.SuggestClinic(diagnosis.Condition(result.Conditions[0].ConditionKey))
		result.SuggestedClinic = entities.SuggestedClinic{
			ID:     clinic.ID,
			Name:   clinic.Name(lang),
			NameAr: clinic.NameAr,
			NameEn: clinic.NameEn,
		}
	}
	if result.EstimatedTreatmentTime == "" {
		result.EstimatedTreatmentTime = diagnosis.EstimatedTreatmentTime(lang)
	}
}

// localDiagnosis runs the rule-based pipeline: score the answers, rank
// the conditions, then derive recommendations, urgency and the clinic
// suggestion from the primary condition.
func (s *DiagnosisService) localDiagnosis(req *entities.DiagnosisRequest, lang diagnosis.Language) *entities.DiagnosisResult {
	answers := diagnosis.Answers(req.Answers)

	scores := diagnosis.Score(answers)
	ranked := diagnosis.Rank(scores)

	conditions := make([]entities.DiagnosedCondition, 0, len(ranked))
	for _, rc := range ranked {
		details := diagnosis.Describe(rc.Condition)
		conditions = append(conditions, entities.DiagnosedCondition{
			Name:         details.Name(lang),
			NameEn:       details.NameEn,
			ConditionKey: string(rc.Condition),
			Probability:  rc.Probability,
			Description:  details.Description(lang),
		})
	}

	primary := ranked[0].Condition
	clinic := diagnosis.SuggestClinic(primary)

	confidence := ranked[0].Probability + fallbackConfidenceBoost
	if confidence > confidenceCap {
		confidence = confidenceCap
	}

	return &entities.DiagnosisResult{
		Conditions:      conditions,
		Recommendations: diagnosis.Recommend(primary, answers, lang),
		Urgency:         string(diagnosis.ClassifyUrgency(ranked, answers.PainIntensity())),
		Confidence:      confidence,
		SuggestedClinic: entities.SuggestedClinic{
			ID:     clinic.ID,
			Name:   clinic.Name(lang),
			NameAr: clinic.NameAr,
			NameEn: clinic.NameEn,
		},
		EstimatedTreatmentTime: diagnosis.EstimatedTreatmentTime(lang),
	}
}
