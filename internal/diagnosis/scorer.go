package diagnosis

import (
	"strconv"
	"strings"
)

// Answers is the raw questionnaire payload, question id to answer value.
// Values are opaque strings; absent keys simply contribute nothing to the
// score.
type Answers map[string]string

// PainIntensity parses the pain_intensity answer. Missing or non-numeric
// values count as 0.
func (a Answers) PainIntensity() int {
	n, err := strconv.Atoi(a["pain_intensity"])
	if err != nil {
		return 0
	}
	return n
}

// Scores accumulates points per candidate condition.
type Scores map[Condition]int

func (s Scores) add(points int, conditions ...Condition) {
	for _, c := range conditions {
		s[c] += points
	}
}

// Score applies the weighted rule table to the questionnaire answers and
// returns the accumulated score per condition. All contributions are
// additive, so rule order does not matter.
func Score(answers Answers) Scores {
	scores := make(Scores, len(AllConditions))
	for _, c := range AllConditions {
		scores[c] = 0
	}

	switch answers["pain_type"] {
	case "sharp", "throbbing":
		scores.add(30, ConditionDentalCaries)
		scores.add(25, ConditionRootCanal)
	case "sensitivity":
		scores.add(40, ConditionToothSensitivity)
		scores.add(15, ConditionDentalCaries)
	case "night_pain":
		scores.add(35, ConditionRootCanal)
	}

	switch answers["symptoms"] {
	case "bleeding":
		scores.add(40, ConditionGingivitis)
		scores.add(30, ConditionPeriodontitis)
	case "swelling", "pus":
		scores.add(30, ConditionRootCanal)
		scores.add(25, ConditionExtraction)
	case "loose_tooth":
		scores.add(35, ConditionPeriodontitis)
		scores.add(20, ConditionExtraction)
	case "discoloration":
		scores.add(25, ConditionDentalCaries)
		scores.add(20, ConditionCosmetic)
	}

	if answers["pain_location"] == "gums" {
		scores.add(25, ConditionGingivitis)
		scores.add(20, ConditionPeriodontitis)
	}

	if answers.PainIntensity() >= 8 {
		scores.add(20, ConditionRootCanal)
		scores.add(15, ConditionExtraction)
	}

	if answers["pain_duration"] == "months" {
		scores.add(15, ConditionPeriodontitis)
		scores.add(10, ConditionRootCanal)
	}

	switch answers["concern_type"] {
	case "cosmetic":
		scores.add(50, ConditionCosmetic)
	case "alignment":
		scores.add(50, ConditionOrthodontic)
	case "replacement":
		scores.add(30, ConditionImplant)
		scores.add(25, ConditionDentures)
		scores.add(20, ConditionCrowns)
	case "cleaning":
		scores.add(20, ConditionGingivitis)
	}

	switch answers["age_group"] {
	case "child":
		scores.add(40, ConditionPediatric)
	case "senior":
		scores.add(15, ConditionDentures)
		scores.add(10, ConditionPeriodontitis)
	}

	// Smoking and bruxism answers encode the habit variant after a
	// "yes_" prefix (yes_cigarettes, yes_shisha, yes_sleep, ...).
	if strings.HasPrefix(answers["smoking"], "yes_") {
		scores.add(15, ConditionPeriodontitis)
		scores.add(10, ConditionCosmetic)
	}

	if answers["oral_hygiene"] == "rarely" {
		scores.add(20, ConditionDentalCaries)
		scores.add(15, ConditionGingivitis)
	}

	if strings.HasPrefix(answers["bruxism"], "yes_") {
		scores.add(20, ConditionToothSensitivity)
		scores.add(15, ConditionCrowns)
	}

	switch answers["previous_treatment"] {
	case "root_canal":
		scores.add(20, ConditionCrowns)
	case "extraction":
		scores.add(25, ConditionImplant)
		scores.add(20, ConditionDentures)
	}

	return scores
}
