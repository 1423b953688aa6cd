package diagnosis_test

import (
	"testing"

	"github.com/dento-health/dento-portal/backend/internal/diagnosis"
	"github.com/stretchr/testify/assert"
)

func TestScore_EmptyAnswers(t *testing.T) {
	scores := diagnosis.Score(diagnosis.Answers{})

	assert.Len(t, scores, len(diagnosis.AllConditions))
	for _, c := range diagnosis.AllConditions {
		assert.Equal(t, 0, scores[c], "condition %s should not score without answers", c)
	}
}

func TestScore_UnknownKeysIgnored(t *testing.T) {
	scores := diagnosis.Score(diagnosis.Answers{
		"favourite_color": "blue",
		"pain_type":       "unrecognized_value",
	})

	for _, c := range diagnosis.AllConditions {
		assert.Equal(t, 0, scores[c])
	}
}

func TestScore_BleedingGums(t *testing.T) {
	scores := diagnosis.Score(diagnosis.Answers{
		"symptoms":      "bleeding",
		"pain_location": "gums",
	})

	assert.Equal(t, 65, scores[diagnosis.ConditionGingivitis])
	assert.Equal(t, 50, scores[diagnosis.ConditionPeriodontitis])
}

func TestScore_CosmeticConcern(t *testing.T) {
	scores := diagnosis.Score(diagnosis.Answers{"concern_type": "cosmetic"})

	assert.Equal(t, 50, scores[diagnosis.ConditionCosmetic])
	for _, c := range diagnosis.AllConditions {
		if c != diagnosis.ConditionCosmetic {
			assert.Equal(t, 0, scores[c])
		}
	}
}

func TestScore_SevereThrobbingWithSwelling(t *testing.T) {
	scores := diagnosis.Score(diagnosis.Answers{
		"pain_type":      "throbbing",
		"pain_intensity": "9",
		"symptoms":       "swelling",
	})

	// throbbing: caries+30 root_canal+25; intensity>=8: root_canal+20
	// extraction+15; swelling: root_canal+30 extraction+25
	assert.Equal(t, 75, scores[diagnosis.ConditionRootCanal])
	assert.Equal(t, 40, scores[diagnosis.ConditionExtraction])
	assert.Equal(t, 30, scores[diagnosis.ConditionDentalCaries])
}

func TestScore_HabitPrefixVariants(t *testing.T) {
	for _, smoking := range []string{"yes_cigarettes", "yes_shisha", "yes_both"} {
		scores := diagnosis.Score(diagnosis.Answers{"smoking": smoking})
		assert.Equal(t, 15, scores[diagnosis.ConditionPeriodontitis], "smoking=%s", smoking)
		assert.Equal(t, 10, scores[diagnosis.ConditionCosmetic], "smoking=%s", smoking)
	}

	scores := diagnosis.Score(diagnosis.Answers{"smoking": "no"})
	assert.Equal(t, 0, scores[diagnosis.ConditionPeriodontitis])

	for _, bruxism := range []string{"yes_sleep", "yes_day", "yes_both"} {
		scores := diagnosis.Score(diagnosis.Answers{"bruxism": bruxism})
		assert.Equal(t, 20, scores[diagnosis.ConditionToothSensitivity], "bruxism=%s", bruxism)
		assert.Equal(t, 15, scores[diagnosis.ConditionCrowns], "bruxism=%s", bruxism)
	}
}

func TestScore_Deterministic(t *testing.T) {
	answers := diagnosis.Answers{
		"pain_type":      "sensitivity",
		"pain_intensity": "6",
		"oral_hygiene":   "rarely",
		"smoking":        "yes_cigarettes",
	}

	first := diagnosis.Score(answers)
	second := diagnosis.Score(answers)

	assert.Equal(t, first, second)
}

func TestAnswers_PainIntensity(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"numeric", "9", 9},
		{"zero", "0", 0},
		{"non-numeric", "severe", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := diagnosis.Answers{}
			if tt.value != "" {
				answers["pain_intensity"] = tt.value
			}
			assert.Equal(t, tt.want, answers.PainIntensity())
		})
	}
}
