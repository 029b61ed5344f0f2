package portfolio

import (
	"fmt"
	"testing"

	"github.com/jmehdipour/risk-scoring/internal/dataset"
	"github.com/jmehdipour/risk-scoring/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(id string, credit float64, flag int) model.CustomerRecord {
	return model.CustomerRecord{
		CustomerID: id,
		Features: model.CustomerFeatures{
			MonthlyIncome:      4000,
			CreditScore:        credit,
			EMIAmount:          1500,
			OutstandingBalance: 3000,
		},
		Delinquent: flag,
	}
}

func TestSummarizeUnavailableVsEmpty(t *testing.T) {
	_, err := New(nil).Summarize()
	assert.ErrorIs(t, err, dataset.ErrUnavailable)

	_, err = New(dataset.NewStore(nil)).Summarize()
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestSummarizeCountsAndSelection(t *testing.T) {
	var records []model.CustomerRecord
	for i := 1; i <= 70; i++ {
		flag := 0
		if i <= 60 {
			flag = 1
		}
		records = append(records, record(fmt.Sprintf("CUST%06d", i), 500, flag))
	}

	sum, err := New(dataset.NewStore(records)).Summarize()
	require.NoError(t, err)

	assert.Equal(t, 70, sum.TotalLoans)
	assert.Equal(t, 60, sum.HighRiskCount)
	require.Len(t, sum.Customers, 50)

	// first 50 delinquent in dataset order, deliberately not sorted by severity
	assert.Equal(t, "CUST000001", sum.Customers[0].ID)
	assert.Equal(t, "CUST000050", sum.Customers[49].ID)
}

func TestSummarizeCardShape(t *testing.T) {
	sum, err := New(dataset.NewStore([]model.CustomerRecord{record("CUST000001", 500, 1)})).Summarize()
	require.NoError(t, err)
	require.Len(t, sum.Customers, 1)

	c := sum.Customers[0]
	assert.Equal(t, "Customer CUST000001", c.Name)
	assert.Equal(t, model.StressScore(500), c.StressScore)
	assert.Equal(t, "High", c.RiskLevel)
	assert.Equal(t, "Stable", c.Trend)
	assert.Equal(t, 1, c.Loans)
	assert.Equal(t, "₹3,000.00", c.TotalExposure)
	assert.Equal(t, "Today", c.LastUpdated)

	require.Len(t, c.History, 7)
	for _, h := range c.History {
		assert.Equal(t, c.StressScore, h)
	}
}

func TestCustomerUsesStoredLabel(t *testing.T) {
	store := dataset.NewStore([]model.CustomerRecord{
		record("CUST000001", 500, 1),
		record("CUST000002", 800, 0),
	})
	svc := New(store)

	d, err := svc.Customer("CUST000001")
	require.NoError(t, err)
	assert.Equal(t, "High", d.RiskLevel)
	assert.Equal(t, 500.0, d.Details.CreditScore)
	assert.Equal(t, 4000.0, d.Details.MonthlyIncome)
	assert.Equal(t, 1500.0, d.Details.EMIAmount)

	d, err = svc.Customer("CUST000002")
	require.NoError(t, err)
	assert.Equal(t, "Low", d.RiskLevel)
}

func TestCustomerErrors(t *testing.T) {
	_, err := New(nil).Customer("CUST000001")
	assert.ErrorIs(t, err, dataset.ErrUnavailable)

	store := dataset.NewStore([]model.CustomerRecord{record("CUST000001", 500, 1)})
	_, err = New(store).Customer("CUST999999")
	assert.ErrorIs(t, err, dataset.ErrNotFound)
}
