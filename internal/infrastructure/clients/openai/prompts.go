package openai

import (
	"fmt"
	"sort"
	"strings"
)

const diagnosisSystemPrompt = `You are a dental diagnosis AI assistant. Analyze the patient's symptoms and provide a preliminary diagnosis.
Response must be JSON with this structure:
{
  "conditions": [{"name": string, "nameEn": string, "conditionKey": string, "probability": number, "description": string}],
  "recommendations": [string],
  "urgency": "high" | "medium" | "low",
  "confidence": number,
  "suggestedClinic": {"id": string, "name": string, "nameAr": string, "nameEn": string},
  "estimatedTreatmentTime": string
}
Use Arabic for name and description if language is 'ar', English if 'en'.
conditionKey must be one of: dental_caries, gingivitis, tooth_sensitivity, root_canal, extraction, orthodontic, cosmetic, implant, pediatric, periodontitis, dentures, crowns`

// buildSymptomPrompt renders the questionnaire answers as one line per
// question. Keys are sorted so identical answer maps always produce the
// same prompt.
func buildSymptomPrompt(answers map[string]string, language string) string {
	keys := make([]string, 0, len(answers))
	for k := range answers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString("Patient symptoms:\n")
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s: %s\n", k, answers[k])
	}

	if language == "" {
		language = "ar"
	}
	fmt.Fprintf(&sb, "Language: %s", language)

	return sb.String()
}
