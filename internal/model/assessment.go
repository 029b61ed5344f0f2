package model

type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// Categorization thresholds: exclusive lower bounds, fixed. A probability
// of exactly 0.70 is MEDIUM and exactly 0.40 is LOW.
const (
	HighRiskThreshold   = 0.70
	MediumRiskThreshold = 0.40
)

func (l RiskLevel) String() string { return string(l) }

func (l RiskLevel) Valid() bool {
	return l == RiskLow || l == RiskMedium || l == RiskHigh
}

// Display renders the wire label used by the predict endpoint, e.g. "HIGH RISK".
func (l RiskLevel) Display() string { return string(l) + " RISK" }

// LevelFor categorizes a delinquency probability.
func LevelFor(probability float64) RiskLevel {
	switch {
	case probability > HighRiskThreshold:
		return RiskHigh
	case probability > MediumRiskThreshold:
		return RiskMedium
	default:
		return RiskLow
	}
}

// RiskAssessment is the result of one scoring call. Computed fresh per
// request, never persisted.
type RiskAssessment struct {
	Probability    float64   // P(delinquent), in [0,1]
	Percentage     float64   // Probability*100, rounded to 2 decimals
	PredictedLabel int       // classifier hard decision, 0|1
	Level          RiskLevel
}
