package diagnosis_test

import (
	"testing"

	"github.com/dento-health/dento-portal/backend/internal/diagnosis"
	"github.com/stretchr/testify/assert"
)

func TestClassifyUrgency(t *testing.T) {
	tests := []struct {
		name          string
		primary       diagnosis.Condition
		probability   int
		painIntensity int
		want          diagnosis.Urgency
	}{
		{"severe pain alone", diagnosis.ConditionCosmetic, 50, 9, diagnosis.UrgencyHigh},
		{"pain nine no other answers", diagnosis.ConditionDentalCaries, 0, 9, diagnosis.UrgencyHigh},
		{"urgent primary condition", diagnosis.ConditionRootCanal, 60, 2, diagnosis.UrgencyHigh},
		{"periodontitis primary", diagnosis.ConditionPeriodontitis, 40, 0, diagnosis.UrgencyHigh},
		{"moderate pain", diagnosis.ConditionGingivitis, 40, 5, diagnosis.UrgencyMedium},
		{"confident primary", diagnosis.ConditionGingivitis, 70, 0, diagnosis.UrgencyMedium},
		{"cosmetic only", diagnosis.ConditionCosmetic, 95, 0, diagnosis.UrgencyMedium},
		{"mild everything", diagnosis.ConditionGingivitis, 40, 2, diagnosis.UrgencyLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked := []diagnosis.RankedCondition{{Condition: tt.primary, Probability: tt.probability}}
			assert.Equal(t, tt.want, diagnosis.ClassifyUrgency(ranked, tt.painIntensity))
		})
	}
}

func TestClassifyUrgency_EmptyRanking(t *testing.T) {
	assert.Equal(t, diagnosis.UrgencyLow, diagnosis.ClassifyUrgency(nil, 0))
	assert.Equal(t, diagnosis.UrgencyHigh, diagnosis.ClassifyUrgency(nil, 8))
}
