package diagnosis_test

import (
	"testing"

	"github.com/dento-health/dento-portal/backend/internal/diagnosis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank_TopThreeDescending(t *testing.T) {
	scores := diagnosis.Score(diagnosis.Answers{
		"pain_type":      "throbbing",
		"pain_intensity": "9",
		"symptoms":       "swelling",
	})

	ranked := diagnosis.Rank(scores)

	require.Len(t, ranked, 3)
	assert.Equal(t, diagnosis.ConditionRootCanal, ranked[0].Condition)
	assert.Equal(t, diagnosis.ConditionExtraction, ranked[1].Condition)
	assert.Equal(t, diagnosis.ConditionDentalCaries, ranked[2].Condition)

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Probability, ranked[i].Probability)
	}
}

func TestRank_ProbabilityNormalizedAndCapped(t *testing.T) {
	scores := diagnosis.Score(diagnosis.Answers{
		"pain_type":      "throbbing",
		"pain_intensity": "9",
		"symptoms":       "swelling",
	})

	ranked := diagnosis.Rank(scores)

	// Top score is normalized against itself, then capped at 95.
	assert.Equal(t, 95, ranked[0].Probability)
	// 40/75 and 30/75 rounded.
	assert.Equal(t, 53, ranked[1].Probability)
	assert.Equal(t, 40, ranked[2].Probability)

	for _, rc := range ranked {
		assert.GreaterOrEqual(t, rc.Probability, 0)
		assert.LessOrEqual(t, rc.Probability, 95)
	}
}

func TestRank_AllZeroScores(t *testing.T) {
	ranked := diagnosis.Rank(diagnosis.Score(diagnosis.Answers{}))

	require.Len(t, ranked, 3)
	for _, rc := range ranked {
		assert.Equal(t, 0, rc.Probability)
	}
	// With nothing scored the declaration order carries through.
	assert.Equal(t, diagnosis.ConditionDentalCaries, ranked[0].Condition)
	assert.Equal(t, diagnosis.ConditionGingivitis, ranked[1].Condition)
	assert.Equal(t, diagnosis.ConditionToothSensitivity, ranked[2].Condition)
}

func TestRank_TieBreakIsDeclarationOrder(t *testing.T) {
	scores := diagnosis.Scores{}
	for _, c := range diagnosis.AllConditions {
		scores[c] = 0
	}
	// gingivitis is declared before periodontitis; equal scores must not
	// reorder them.
	scores[diagnosis.ConditionGingivitis] = 40
	scores[diagnosis.ConditionPeriodontitis] = 40
	scores[diagnosis.ConditionCrowns] = 10

	ranked := diagnosis.Rank(scores)

	require.Len(t, ranked, 3)
	assert.Equal(t, diagnosis.ConditionGingivitis, ranked[0].Condition)
	assert.Equal(t, diagnosis.ConditionPeriodontitis, ranked[1].Condition)
	assert.Equal(t, diagnosis.ConditionCrowns, ranked[2].Condition)
}

func TestDescribe_UnknownFallsBack(t *testing.T) {
	unknown := diagnosis.Describe(diagnosis.Condition("wisdom_tooth"))
	caries := diagnosis.Describe(diagnosis.ConditionDentalCaries)

	assert.Equal(t, caries, unknown)
	assert.Equal(t, "Dental Caries", unknown.NameEn)
}

func TestSuggestClinic(t *testing.T) {
	assert.Equal(t, "gums", diagnosis.SuggestClinic(diagnosis.ConditionPeriodontitis).ID)
	assert.Equal(t, "orthodontics", diagnosis.SuggestClinic(diagnosis.ConditionOrthodontic).ID)
	// Unknown keys get the conservative clinic.
	assert.Equal(t, "conservative", diagnosis.SuggestClinic(diagnosis.Condition("unknown")).ID)
}
