package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dento-health/dento-portal/backend/internal/domain/entities"
	"github.com/dento-health/dento-portal/backend/internal/domain/providers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDiagnosisProvider struct {
	mock.Mock
}

func (m *mockDiagnosisProvider) Diagnose(ctx context.Context, req *entities.DiagnosisRequest) (*entities.DiagnosisResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.DiagnosisResult), args.Error(1)
}

func TestDiagnose_NilProviderUsesLocalPipeline(t *testing.T) {
	service := NewDiagnosisService(nil)

	result := service.Diagnose(context.Background(), &entities.DiagnosisRequest{
		Answers:  map[string]string{"bleeding": "yes", "concern_type": "gums"},
		Language: "en",
	})

	require.NotNil(t, result)
	require.Len(t, result.Conditions, 3)
	assert.Equal(t, "gingivitis", result.Conditions[0].ConditionKey)
	assert.Equal(t, "Gingivitis", result.Conditions[0].NameEn)
	assert.Equal(t, "gums", result.SuggestedClinic.ID)
	assert.Equal(t, "30-45 minutes", result.EstimatedTreatmentTime)
	assert.NotEmpty(t, result.Recommendations)
}

func TestDiagnose_ProviderErrorFallsBack(t *testing.T) {
	provider := new(mockDiagnosisProvider)
	provider.On("Diagnose", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	service := NewDiagnosisService(provider)

	result := service.Diagnose(context.Background(), &entities.DiagnosisRequest{
		Answers:  map[string]string{"bleeding": "yes", "concern_type": "gums"},
		Language: "en",
	})

	require.NotNil(t, result)
	assert.Equal(t, "gingivitis", result.Conditions[0].ConditionKey)
	provider.AssertExpectations(t)
}

func TestDiagnose_EmptyDiagnosisFallsBack(t *testing.T) {
	provider := new(mockDiagnosisProvider)
	provider.On("Diagnose", mock.Anything, mock.Anything).Return(nil, providers.ErrEmptyDiagnosis)

	service := NewDiagnosisService(provider)

	result := service.Diagnose(context.Background(), &entities.DiagnosisRequest{
		Answers:  map[string]string{"pain_type": "throbbing", "pain_intensity": "9"},
		Language: "en",
	})

	require.NotNil(t, result)
	assert.Equal(t, "root_canal", result.Conditions[0].ConditionKey)
	assert.Equal(t, "high", result.Urgency)
}

func TestDiagnose_FallbackMatchesLocalPipeline(t *testing.T) {
	provider := new(mockDiagnosisProvider)
	provider.On("Diagnose", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	req := &entities.DiagnosisRequest{
		Answers:  map[string]string{"pain_trigger": "cold", "pain_type": "sharp"},
		Language: "ar",
	}

	withProvider := NewDiagnosisService(provider).Diagnose(context.Background(), req)
	withoutProvider := NewDiagnosisService(nil).Diagnose(context.Background(), req)

	assert.Equal(t, withoutProvider, withProvider)
}

func TestDiagnose_FallbackConfidenceIsCapped(t *testing.T) {
	service := NewDiagnosisService(nil)

	// Bleeding plus gum concern maxes out the gingivitis score, so the
	// top probability is 95 and the boost has to clamp.
	result := service.Diagnose(context.Background(), &entities.DiagnosisRequest{
		Answers:  map[string]string{"bleeding": "yes", "concern_type": "gums"},
		Language: "en",
	})

	assert.Equal(t, 95, result.Confidence)
}

func TestDiagnose_RemoteResultPassesThrough(t *testing.T) {
	remote := &entities.DiagnosisResult{
		Conditions: []entities.DiagnosedCondition{
			{Name: "تقويم الأسنان", NameEn: "Orthodontics", ConditionKey: "orthodontic", Probability: 88, Description: "d"},
		},
		Recommendations:        []string{"see an orthodontist"},
		Urgency:                "low",
		Confidence:             82,
		SuggestedClinic:        entities.SuggestedClinic{ID: "orthodontics", Name: "Orthodontics", NameAr: "تقويم الأسنان", NameEn: "Orthodontics"},
		EstimatedTreatmentTime: "60 minutes",
	}

	provider := new(mockDiagnosisProvider)
	provider.On("Diagnose", mock.Anything, mock.Anything).Return(remote, nil)

	service := NewDiagnosisService(provider)
	result := service.Diagnose(context.Background(), &entities.DiagnosisRequest{
		Answers:  map[string]string{"concern_type": "alignment"},
		Language: "en",
	})

	assert.Equal(t, "orthodontic", result.Conditions[0].ConditionKey)
	assert.Equal(t, 82, result.Confidence)
	assert.Equal(t, "low", result.Urgency)
	assert.Equal(t, "60 minutes", result.EstimatedTreatmentTime)
}

func TestDiagnose_RemoteDefaultsApplied(t *testing.T) {
	remote := &entities.DiagnosisResult{
		Conditions: []entities.DiagnosedCondition{
			{NameEn: "Dental Caries", ConditionKey: "dental_caries", Probability: 60},
		},
	}

	provider := new(mockDiagnosisProvider)
	provider.On("Diagnose", mock.Anything, mock.Anything).Return(remote, nil)

	service := NewDiagnosisService(provider)
	result := service.Diagnose(context.Background(), &entities.DiagnosisRequest{
		Answers:  map[string]string{"pain_trigger": "sweet"},
		Language: "en",
	})

	assert.NotNil(t, result.Recommendations)
	assert.Empty(t, result.Recommendations)
	assert.Equal(t, "medium", result.Urgency)
	assert.Equal(t, 70, result.Confidence)
	assert.Equal(t, "conservative", result.SuggestedClinic.ID)
	assert.Equal(t, "Conservative Treatment", result.SuggestedClinic.Name)
	assert.Equal(t, "30-45 minutes", result.EstimatedTreatmentTime)
}

func TestDiagnose_RemoteConfidenceClamped(t *testing.T) {
	remote := &entities.DiagnosisResult{
		Conditions: []entities.DiagnosedCondition{
			{NameEn: "Gingivitis", ConditionKey: "gingivitis", Probability: 99},
		},
		Confidence: 99,
	}

	provider := new(mockDiagnosisProvider)
	provider.On("Diagnose", mock.Anything, mock.Anything).Return(remote, nil)

	service := NewDiagnosisService(provider)
	result := service.Diagnose(context.Background(), &entities.DiagnosisRequest{
		Answers:  map[string]string{"bleeding": "yes"},
		Language: "en",
	})

	assert.Equal(t, 95, result.Confidence)
}

func TestDiagnose_ArabicClinicName(t *testing.T) {
	remote := &entities.DiagnosisResult{
		Conditions: []entities.DiagnosedCondition{
			{NameEn: "Gingivitis", ConditionKey: "gingivitis", Probability: 70},
		},
	}

	provider := new(mockDiagnosisProvider)
	provider.On("Diagnose", mock.Anything, mock.Anything).Return(remote, nil)

	service := NewDiagnosisService(provider)
	result := service.Diagnose(context.Background(), &entities.DiagnosisRequest{
		Answers:  map[string]string{"bleeding": "yes"},
		Language: "ar",
	})

	assert.Equal(t, "gums", result.SuggestedClinic.ID)
	assert.Equal(t, "علاج اللثة", result.SuggestedClinic.Name)
	assert.Equal(t, "30-45 دقيقة", result.EstimatedTreatmentTime)
}
