package scoring

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/jmehdipour/risk-scoring/internal/model"
)

// ScalerArtifact is the serialized form of an offline-fitted standard
// scaler: per-feature mean and std in FeatureOrder positions.
type ScalerArtifact struct {
	SchemaVersion int       `json:"schema_version"`
	FeatureNames  []string  `json:"feature_names"`
	Mean          []float64 `json:"mean"`
	Std           []float64 `json:"std"`
}

// FeatureScaler applies the (x-mean)/std transform the model was fitted
// with. Immutable after construction; safe for concurrent use.
type FeatureScaler struct {
	mean []float64
	std  []float64
}

// LoadScaler reads and validates a scaler artifact file.
func LoadScaler(path string) (*FeatureScaler, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scaler artifact: %w", err)
	}
	var art ScalerArtifact
	if err := json.Unmarshal(b, &art); err != nil {
		return nil, fmt.Errorf("parse scaler artifact: %w", err)
	}
	return NewScaler(art)
}

// NewScaler validates the artifact against the canonical feature schema.
func NewScaler(art ScalerArtifact) (*FeatureScaler, error) {
	if art.SchemaVersion != model.FeatureSchemaVersion {
		return nil, fmt.Errorf("scaler artifact: schema version %d, want %d", art.SchemaVersion, model.FeatureSchemaVersion)
	}
	if err := model.ValidateFeatureNames(art.FeatureNames); err != nil {
		return nil, fmt.Errorf("scaler artifact: %w", err)
	}
	n := len(model.FeatureOrder)
	if len(art.Mean) != n || len(art.Std) != n {
		return nil, fmt.Errorf("scaler artifact: want %d mean/std values, got %d/%d", n, len(art.Mean), len(art.Std))
	}
	for i, s := range art.Std {
		if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
			return nil, fmt.Errorf("scaler artifact: std for %s must be a positive number", model.FeatureOrder[i])
		}
	}
	sc := &FeatureScaler{
		mean: make([]float64, n),
		std:  make([]float64, n),
	}
	copy(sc.mean, art.Mean)
	copy(sc.std, art.Std)
	return sc, nil
}

// Scale transforms raw features into the model's fitted space. Pure; a
// non-finite input value yields a SchemaError naming the field.
func (s *FeatureScaler) Scale(f model.CustomerFeatures) ([]float64, error) {
	raw := f.Vector()
	out := make([]float64, len(raw))
	for i, v := range raw {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &SchemaError{
				Fields: []string{model.FeatureOrder[i]},
				Reason: "not a finite number",
			}
		}
		out[i] = (v - s.mean[i]) / s.std[i]
	}
	return out, nil
}
