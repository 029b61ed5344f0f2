package scoring

import (
	"math"

	"github.com/jmehdipour/risk-scoring/internal/model"
)

// Scorer turns one raw customer record into a calibrated risk assessment.
// Stateless apart from the fitted artifacts; safe for concurrent use.
type Scorer struct {
	scaler *FeatureScaler
	clf    Classifier
}

func NewScorer(scaler *FeatureScaler, clf Classifier) *Scorer {
	return &Scorer{scaler: scaler, clf: clf}
}

// Score scales, classifies and categorizes a raw feature vector.
// Deterministic: identical input against identical artifacts yields
// identical output. Classifier failures come back as *ScoringError and
// are never retried.
func (s *Scorer) Score(f model.CustomerFeatures) (model.RiskAssessment, error) {
	scaled, err := s.scaler.Scale(f)
	if err != nil {
		return model.RiskAssessment{}, err
	}
	prob, err := s.clf.PredictProba(scaled)
	if err != nil {
		return model.RiskAssessment{}, &ScoringError{Err: err}
	}
	label, err := s.clf.Predict(scaled)
	if err != nil {
		return model.RiskAssessment{}, &ScoringError{Err: err}
	}
	return model.RiskAssessment{
		Probability:    prob,
		Percentage:     math.Round(prob*10000) / 100,
		PredictedLabel: label,
		Level:          model.LevelFor(prob),
	}, nil
}
