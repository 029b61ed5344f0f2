package scoring

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/jmehdipour/risk-scoring/internal/model"
)

// Classifier is the trained-model capability the scorer depends on.
// PredictProba returns the probability of the positive (delinquent) class,
// i.e. P(label=1) — never the class-0 probability.
type Classifier interface {
	PredictProba(scaled []float64) (float64, error)
	Predict(scaled []float64) (int, error)
}

// LogisticArtifact is the serialized serving classifier: a logistic model
// over the scaled feature space.
type LogisticArtifact struct {
	SchemaVersion int       `json:"schema_version"`
	FeatureNames  []string  `json:"feature_names"`
	Coefficients  []float64 `json:"coefficients"`
	Intercept     float64   `json:"intercept"`
}

// LogisticModel implements Classifier from a LogisticArtifact.
type LogisticModel struct {
	coef      []float64
	intercept float64
}

var _ Classifier = (*LogisticModel)(nil)

// LoadClassifier reads and validates a classifier artifact file.
func LoadClassifier(path string) (*LogisticModel, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read classifier artifact: %w", err)
	}
	var art LogisticArtifact
	if err := json.Unmarshal(b, &art); err != nil {
		return nil, fmt.Errorf("parse classifier artifact: %w", err)
	}
	return NewLogisticModel(art)
}

// NewLogisticModel validates the artifact against the canonical schema.
func NewLogisticModel(art LogisticArtifact) (*LogisticModel, error) {
	if art.SchemaVersion != model.FeatureSchemaVersion {
		return nil, fmt.Errorf("classifier artifact: schema version %d, want %d", art.SchemaVersion, model.FeatureSchemaVersion)
	}
	if err := model.ValidateFeatureNames(art.FeatureNames); err != nil {
		return nil, fmt.Errorf("classifier artifact: %w", err)
	}
	if len(art.Coefficients) != len(model.FeatureOrder) {
		return nil, fmt.Errorf("classifier artifact: want %d coefficients, got %d", len(model.FeatureOrder), len(art.Coefficients))
	}
	m := &LogisticModel{
		coef:      make([]float64, len(art.Coefficients)),
		intercept: art.Intercept,
	}
	copy(m.coef, art.Coefficients)
	return m, nil
}

// PredictProba returns sigmoid(w·x + b) for the scaled vector.
func (m *LogisticModel) PredictProba(scaled []float64) (float64, error) {
	if len(scaled) != len(m.coef) {
		return 0, fmt.Errorf("classifier: want %d features, got %d", len(m.coef), len(scaled))
	}
	z := m.intercept
	for i, w := range m.coef {
		z += w * scaled[i]
	}
	return 1 / (1 + math.Exp(-z)), nil
}

// Predict is the hard decision at the conventional 0.5 boundary.
func (m *LogisticModel) Predict(scaled []float64) (int, error) {
	p, err := m.PredictProba(scaled)
	if err != nil {
		return 0, err
	}
	if p >= 0.5 {
		return 1, nil
	}
	return 0, nil
}
