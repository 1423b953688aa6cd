package diagnosis_test

import (
	"testing"

	"github.com/dento-health/dento-portal/backend/internal/diagnosis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommend_BaseAlwaysPresent(t *testing.T) {
	recs := diagnosis.Recommend(diagnosis.ConditionCosmetic, diagnosis.Answers{}, diagnosis.LanguageEnglish)

	require.NotEmpty(t, recs)
	assert.Equal(t, "Visit a dentist as soon as possible", recs[0])
}

func TestRecommend_AppendOrder(t *testing.T) {
	answers := diagnosis.Answers{
		"oral_hygiene": "rarely",
		"smoking":      "yes_cigarettes",
	}

	recs := diagnosis.Recommend(diagnosis.ConditionGingivitis, answers, diagnosis.LanguageEnglish)

	assert.Equal(t, []string{
		"Visit a dentist as soon as possible",
		"Brush your teeth at least twice daily",
		"Use antiseptic mouthwash",
		"Rinse with salt water",
		"Quit smoking to improve oral health",
	}, recs)
}

func TestRecommend_Sensitivity(t *testing.T) {
	recs := diagnosis.Recommend(diagnosis.ConditionToothSensitivity, diagnosis.Answers{}, diagnosis.LanguageEnglish)

	assert.Contains(t, recs, "Use sensitivity toothpaste")
	assert.Contains(t, recs, "Avoid very cold or hot foods")
}

func TestRecommend_SmokingNoDoesNotTrigger(t *testing.T) {
	recs := diagnosis.Recommend(diagnosis.ConditionDentalCaries, diagnosis.Answers{"smoking": "no"}, diagnosis.LanguageEnglish)

	assert.NotContains(t, recs, "Quit smoking to improve oral health")
}

func TestRecommend_Arabic(t *testing.T) {
	recs := diagnosis.Recommend(diagnosis.ConditionDentalCaries, diagnosis.Answers{}, diagnosis.LanguageArabic)

	require.NotEmpty(t, recs)
	assert.Equal(t, "زيارة طبيب الأسنان في أقرب وقت ممكن", recs[0])
}

func TestNormalizeLanguage(t *testing.T) {
	assert.Equal(t, diagnosis.LanguageEnglish, diagnosis.NormalizeLanguage("en"))
	assert.Equal(t, diagnosis.LanguageArabic, diagnosis.NormalizeLanguage("ar"))
	// Arabic is the portal default for anything unrecognized.
	assert.Equal(t, diagnosis.LanguageArabic, diagnosis.NormalizeLanguage(""))
	assert.Equal(t, diagnosis.LanguageArabic, diagnosis.NormalizeLanguage("fr"))
}
