package entities

// DiagnosisRequest is the questionnaire payload submitted for an AI
// diagnosis. XrayImage, when present, is a data-URL encoded image.
type DiagnosisRequest struct {
	Answers   map[string]string `json:"answers"`
	XrayImage string            `json:"xrayImage,omitempty"`
	Language  string            `json:"language"`
}

// DiagnosedCondition is one candidate condition in a diagnosis result.
// Name and Description are localized to the request language; NameEn is
// always the English name.
type DiagnosedCondition struct {
	Name         string `json:"name"`
	NameEn       string `json:"nameEn"`
	ConditionKey string `json:"conditionKey"`
	Probability  int    `json:"probability"`
	Description  string `json:"description"`
}

// SuggestedClinic points the patient at the specialty clinic for the
// primary condition
type SuggestedClinic struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	NameAr string `json:"nameAr"`
	NameEn string `json:"nameEn"`
}

// DiagnosisResult is the response shape shared by the remote provider
// and the local fallback. It is returned to the caller and never
// persisted.
type DiagnosisResult struct {
	Conditions             []DiagnosedCondition `json:"conditions"`
	Recommendations        []string             `json:"recommendations"`
	Urgency                string               `json:"urgency"`
	Confidence             int                  `json:"confidence"`
	SuggestedClinic        SuggestedClinic      `json:"suggestedClinic"`
	EstimatedTreatmentTime string               `json:"estimatedTreatmentTime"`
}
