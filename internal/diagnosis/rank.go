package diagnosis

import (
	"math"
	"sort"
)

// maxRankedConditions is how many candidates a diagnosis surfaces.
const maxRankedConditions = 3

// probabilityCap keeps the scorer from ever claiming certainty.
const probabilityCap = 95

// RankedCondition is a candidate condition with its relative probability.
type RankedCondition struct {
	Condition   Condition
	Probability int
}

// Rank sorts the score table descending and returns the top three
// candidates with probabilities normalized against the highest score.
// Ties keep the AllConditions declaration order: the sort is stable over
// that fixed iteration order, so results are reproducible for identical
// answers.
func Rank(scores Scores) []RankedCondition {
	ordered := make([]Condition, len(AllConditions))
	copy(ordered, AllConditions)

	sort.SliceStable(ordered, func(i, j int) bool {
		return scores[ordered[i]] > scores[ordered[j]]
	})

	// Floor of 1 avoids dividing by zero when nothing scored; the top
	// entries then all come out at 0%.
	maxScore := 1
	for _, c := range AllConditions {
		if scores[c] > maxScore {
			maxScore = scores[c]
		}
	}

	ranked := make([]RankedCondition, 0, maxRankedConditions)
	for _, c := range ordered[:maxRankedConditions] {
		probability := int(math.Round(float64(scores[c]) / float64(maxScore) * 100))
		if probability > probabilityCap {
			probability = probabilityCap
		}
		ranked = append(ranked, RankedCondition{Condition: c, Probability: probability})
	}

	return ranked
}
