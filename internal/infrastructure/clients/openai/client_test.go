package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dento-health/dento-portal/backend/internal/domain/entities"
	"github.com/dento-health/dento-portal/backend/internal/domain/providers"
	"github.com/dento-health/dento-portal/backend/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(&config.OpenAIConfig{})
	assert.Error(t, err)

	_, err = NewClient(nil)
	assert.Error(t, err)
}

func TestNewClient_DefaultsModel(t *testing.T) {
	client, err := NewClient(&config.OpenAIConfig{APIKey: "test-key"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", client.model)
}

func TestParseDiagnosisPayload(t *testing.T) {
	valid := `{
		"conditions": [{"name": "تسوس الأسنان", "nameEn": "Dental Caries", "conditionKey": "dental_caries", "probability": 85, "description": "desc"}],
		"recommendations": ["زيارة الطبيب"],
		"urgency": "medium",
		"confidence": 80,
		"suggestedClinic": {"id": "conservative", "name": "العلاج التحفظي", "nameAr": "العلاج التحفظي", "nameEn": "Conservative Treatment"},
		"estimatedTreatmentTime": "30-45 دقيقة"
	}`

	t.Run("plain JSON", func(t *testing.T) {
		result, err := parseDiagnosisPayload([]byte(valid))
		require.NoError(t, err)
		require.Len(t, result.Conditions, 1)
		assert.Equal(t, "dental_caries", result.Conditions[0].ConditionKey)
		assert.Equal(t, 85, result.Conditions[0].Probability)
		assert.Equal(t, "medium", result.Urgency)
	})

	t.Run("json code fence", func(t *testing.T) {
		result, err := parseDiagnosisPayload([]byte("```json\n" + valid + "\n```"))
		require.NoError(t, err)
		assert.Len(t, result.Conditions, 1)
	})

	t.Run("bare code fence", func(t *testing.T) {
		result, err := parseDiagnosisPayload([]byte("```\n" + valid + "\n```"))
		require.NoError(t, err)
		assert.Len(t, result.Conditions, 1)
	})

	t.Run("empty conditions", func(t *testing.T) {
		_, err := parseDiagnosisPayload([]byte(`{"conditions": [], "urgency": "low"}`))
		assert.ErrorIs(t, err, providers.ErrEmptyDiagnosis)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := parseDiagnosisPayload([]byte("not json at all"))
		assert.Error(t, err)
	})
}

func TestBuildSymptomPrompt(t *testing.T) {
	answers := map[string]string{
		"pain_type":    "throbbing",
		"bleeding":     "yes",
		"pain_trigger": "cold",
	}

	prompt := buildSymptomPrompt(answers, "en")
	assert.Contains(t, prompt, "pain_type: throbbing")
	assert.Contains(t, prompt, "bleeding: yes")
	assert.Contains(t, prompt, "Language: en")

	// Sorted keys keep the prompt stable across runs.
	again := buildSymptomPrompt(answers, "en")
	assert.Equal(t, prompt, again)
}

func TestBuildSymptomPrompt_DefaultsToArabic(t *testing.T) {
	prompt := buildSymptomPrompt(map[string]string{"pain_type": "sharp"}, "")
	assert.Contains(t, prompt, "Language: ar")
}

func TestDiagnose_Success(t *testing.T) {
	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		diagnosis := `{"conditions": [{"name": "التهاب اللثة", "nameEn": "Gingivitis", "conditionKey": "gingivitis", "probability": 70, "description": "d"}], "recommendations": [], "urgency": "medium", "confidence": 75, "estimatedTreatmentTime": "30-45 minutes"}`
		envelope := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": diagnosis}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(envelope)
	}))
	defer server.Close()

	client, err := NewClient(&config.OpenAIConfig{APIKey: "test-key", RateLimitRPM: 600, RateLimitBurst: 10})
	require.NoError(t, err)
	client.baseURL = server.URL

	result, err := client.Diagnose(context.Background(), &entities.DiagnosisRequest{
		Answers:  map[string]string{"bleeding": "yes"},
		Language: "en",
	})
	require.NoError(t, err)
	require.Len(t, result.Conditions, 1)
	assert.Equal(t, "gingivitis", result.Conditions[0].ConditionKey)
	assert.Equal(t, 75, result.Confidence)

	assert.Equal(t, "gpt-4o", captured["model"])
	assert.Equal(t, float64(2048), captured["max_tokens"])
	format, ok := captured["response_format"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "json_object", format["type"])
}

func TestDiagnose_ImageAttachesContentPart(t *testing.T) {
	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		diagnosis := `{"conditions": [{"conditionKey": "dental_caries", "probability": 60}], "urgency": "low", "confidence": 60}`
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{{"message": map[string]string{"content": diagnosis}}},
		})
	}))
	defer server.Close()

	client, err := NewClient(&config.OpenAIConfig{APIKey: "test-key", RateLimitRPM: 600, RateLimitBurst: 10})
	require.NoError(t, err)
	client.baseURL = server.URL

	_, err = client.Diagnose(context.Background(), &entities.DiagnosisRequest{
		Answers:   map[string]string{"pain_type": "dull"},
		XrayImage: "data:image/png;base64,abc123",
		Language:  "ar",
	})
	require.NoError(t, err)

	messages, ok := captured["messages"].([]interface{})
	require.True(t, ok)
	require.Len(t, messages, 2)
	user := messages[1].(map[string]interface{})
	parts, ok := user["content"].([]interface{})
	require.True(t, ok, "user content should be a content-part array when an image is attached")
	require.Len(t, parts, 2)
	image := parts[1].(map[string]interface{})
	assert.Equal(t, "image_url", image["type"])
}

func TestDiagnose_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := NewClient(&config.OpenAIConfig{APIKey: "test-key", RateLimitRPM: 600, RateLimitBurst: 10})
	require.NoError(t, err)
	client.baseURL = server.URL

	_, err = client.Diagnose(context.Background(), &entities.DiagnosisRequest{
		Answers: map[string]string{"pain_type": "sharp"},
	})
	assert.Error(t, err)
}

func TestDiagnose_EmptyConditionsReturnsSentinel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{{"message": map[string]string{"content": `{"conditions": []}`}}},
		})
	}))
	defer server.Close()

	client, err := NewClient(&config.OpenAIConfig{APIKey: "test-key", RateLimitRPM: 600, RateLimitBurst: 10})
	require.NoError(t, err)
	client.baseURL = server.URL

	_, err = client.Diagnose(context.Background(), &entities.DiagnosisRequest{
		Answers: map[string]string{"pain_type": "sharp"},
	})
	assert.ErrorIs(t, err, providers.ErrEmptyDiagnosis)
}
