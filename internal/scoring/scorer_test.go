package scoring

import (
	"errors"
	"math"
	"testing"

	"github.com/jmehdipour/risk-scoring/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClassifier returns a fixed probability, so threshold behavior can be
// pinned without any fitted artifact.
type stubClassifier struct {
	p   float64
	err error
}

func (s stubClassifier) PredictProba([]float64) (float64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.p, nil
}

func (s stubClassifier) Predict([]float64) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	if s.p >= 0.5 {
		return 1, nil
	}
	return 0, nil
}

func identityScaler(t *testing.T) *FeatureScaler {
	t.Helper()
	s, err := NewScaler(scalerArtifact(0, 1))
	require.NoError(t, err)
	return s
}

func TestScoreCategorization(t *testing.T) {
	cases := []struct {
		p     float64
		level model.RiskLevel
		label int
	}{
		{0.10, model.RiskLow, 0},
		{0.40, model.RiskLow, 0},
		{0.55, model.RiskMedium, 1},
		{0.70, model.RiskMedium, 1},
		{0.95, model.RiskHigh, 1},
	}
	for _, tc := range cases {
		sc := NewScorer(identityScaler(t), stubClassifier{p: tc.p})
		res, err := sc.Score(model.CustomerFeatures{})
		require.NoError(t, err)
		assert.Equal(t, tc.level, res.Level, "p=%v", tc.p)
		assert.Equal(t, tc.label, res.PredictedLabel, "p=%v", tc.p)
		assert.Equal(t, tc.p, res.Probability)
	}
}

func TestScorePercentageRounding(t *testing.T) {
	sc := NewScorer(identityScaler(t), stubClassifier{p: 0.12345})
	res, err := sc.Score(model.CustomerFeatures{})
	require.NoError(t, err)
	assert.Equal(t, 12.35, res.Percentage)

	sc = NewScorer(identityScaler(t), stubClassifier{p: 0.6789})
	res, err = sc.Score(model.CustomerFeatures{})
	require.NoError(t, err)
	assert.Equal(t, 67.89, res.Percentage)
	assert.Equal(t, math.Round(res.Probability*10000)/100, res.Percentage)
}

func TestScoreDeterministic(t *testing.T) {
	art := logisticArtifact([]float64{
		-0.4, -1.2, 0.8, 0.5, -0.6, -0.4, -0.1, 0.2, 0.4, 0.5, 0.6,
	}, -1.0)
	clf, err := NewLogisticModel(art)
	require.NoError(t, err)
	sc := NewScorer(identityScaler(t), clf)

	f := model.CustomerFeatures{
		MonthlyIncome:      4000,
		CreditScore:        500,
		EMIAmount:          1500,
		OutstandingBalance: 3000,
		AvgBalance3M:       12000,
		BalanceTrend:       0.3,
		TotalCredit30D:     4200,
		TotalDebit30D:      3000,
		ATMWithdrawals30D:  6,
		SalaryDelayDays:    1,
		EMIDelayDays:       2,
	}

	first, err := sc.Score(f)
	require.NoError(t, err)
	second, err := sc.Score(f)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.GreaterOrEqual(t, first.Probability, 0.0)
	assert.LessOrEqual(t, first.Probability, 1.0)
	assert.Equal(t, model.LevelFor(first.Probability), first.Level)
}

func TestScoreWrapsClassifierFailure(t *testing.T) {
	cause := errors.New("artifact corrupt")
	sc := NewScorer(identityScaler(t), stubClassifier{err: cause})

	_, err := sc.Score(model.CustomerFeatures{})
	require.Error(t, err)

	var se *ScoringError
	require.True(t, errors.As(err, &se))
	assert.ErrorIs(t, err, cause)
}

func TestScorePropagatesSchemaError(t *testing.T) {
	sc := NewScorer(identityScaler(t), stubClassifier{p: 0.5})

	_, err := sc.Score(model.CustomerFeatures{AvgBalance3M: math.Inf(1)})
	var se *SchemaError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, []string{"avg_balance_3m"}, se.Fields)
}
