package model

import "math"

// CustomerRecord is one dataset row: identifier, raw features and the
// ground-truth delinquency label. Immutable once loaded.
type CustomerRecord struct {
	CustomerID string
	Features   CustomerFeatures
	Delinquent int // delinquent_flag, 0|1
}

// StressScore maps a credit score onto the dashboard's 0-100 stress scale:
// 850 (best) -> 0, 300 (worst) -> 100. Presentation only; does not involve
// the classifier.
func StressScore(creditScore float64) int {
	s := int(math.Round((850 - creditScore) / 5.5))
	if s > 100 {
		s = 100
	}
	if s < 0 {
		s = 0
	}
	return s
}
