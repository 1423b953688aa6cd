package diagnosis

// Urgency is the coarse triage level attached to a diagnosis.
type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
)

// urgentConditions escalate straight to high urgency when primary.
var urgentConditions = map[Condition]bool{
	ConditionRootCanal:     true,
	ConditionExtraction:    true,
	ConditionPeriodontitis: true,
}

// ClassifyUrgency maps the ranked conditions and reported pain intensity
// to a triage level. Rules apply in priority order: severe pain or an
// urgent primary condition wins over the medium checks.
func ClassifyUrgency(ranked []RankedCondition, painIntensity int) Urgency {
	var primary RankedCondition
	if len(ranked) > 0 {
		primary = ranked[0]
	}

	if painIntensity >= 8 || urgentConditions[primary.Condition] {
		return UrgencyHigh
	}
	if painIntensity >= 5 || primary.Probability >= 70 {
		return UrgencyMedium
	}
	return UrgencyLow
}
