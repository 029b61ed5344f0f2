package scoring

import (
	"testing"

	"github.com/jmehdipour/risk-scoring/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logisticArtifact(coef []float64, intercept float64) LogisticArtifact {
	return LogisticArtifact{
		SchemaVersion: model.FeatureSchemaVersion,
		FeatureNames:  model.FeatureOrder,
		Coefficients:  coef,
		Intercept:     intercept,
	}
}

func zeros() []float64 { return make([]float64, len(model.FeatureOrder)) }

func TestLogisticModelPredictProba(t *testing.T) {
	m, err := NewLogisticModel(logisticArtifact(zeros(), 0))
	require.NoError(t, err)

	p, err := m.PredictProba(zeros())
	require.NoError(t, err)
	assert.InDelta(t, 0.5, p, 1e-12)

	label, err := m.Predict(zeros())
	require.NoError(t, err)
	assert.Equal(t, 1, label) // 0.5 sits on the positive side

	m, err = NewLogisticModel(logisticArtifact(zeros(), -20))
	require.NoError(t, err)
	p, err = m.PredictProba(zeros())
	require.NoError(t, err)
	assert.Less(t, p, 1e-6)
	label, err = m.Predict(zeros())
	require.NoError(t, err)
	assert.Equal(t, 0, label)
}

func TestLogisticModelDimensionMismatch(t *testing.T) {
	m, err := NewLogisticModel(logisticArtifact(zeros(), 0))
	require.NoError(t, err)

	_, err = m.PredictProba([]float64{1, 2, 3})
	assert.Error(t, err)
}

func TestNewLogisticModelRejectsBadArtifacts(t *testing.T) {
	bad := logisticArtifact(zeros(), 0)
	bad.SchemaVersion = 0
	_, err := NewLogisticModel(bad)
	assert.Error(t, err)

	bad = logisticArtifact(zeros()[:4], 0)
	_, err = NewLogisticModel(bad)
	assert.Error(t, err)

	bad = logisticArtifact(zeros(), 0)
	bad.FeatureNames = []string{"a", "b"}
	_, err = NewLogisticModel(bad)
	assert.Error(t, err)
}
