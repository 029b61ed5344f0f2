package portfolio

import (
	"errors"

	"github.com/jmehdipour/risk-scoring/internal/dataset"
	"github.com/jmehdipour/risk-scoring/internal/model"
	"github.com/jmehdipour/risk-scoring/internal/util"
)

// highRiskLimit caps the dashboard list. Selection is the first N
// delinquent records in dataset order — stable, not sorted by severity.
const highRiskLimit = 50

// ErrEmptyDataset : a corpus was loaded but holds zero records. Distinct
// from dataset.ErrUnavailable so "nothing loaded" and "loaded nothing"
// never look alike.
var ErrEmptyDataset = errors.New("dataset is empty")

// Service aggregates the record corpus for the dashboard and resolves
// single-customer detail views. Read-only over the shared store.
type Service struct {
	store *dataset.Store
}

// New wraps the loaded corpus; store may be nil when the dataset
// collaborator was unavailable at startup.
func New(store *dataset.Store) *Service {
	return &Service{store: store}
}

// Summarize computes the portfolio headline counts and the high-risk
// customer cards.
func (s *Service) Summarize() (model.PortfolioSummary, error) {
	if s.store == nil {
		return model.PortfolioSummary{}, dataset.ErrUnavailable
	}
	records := s.store.Records()
	if len(records) == 0 {
		return model.PortfolioSummary{}, ErrEmptyDataset
	}

	sum := model.PortfolioSummary{TotalLoans: len(records)}
	for _, r := range records {
		if r.Delinquent != 1 {
			continue
		}
		sum.HighRiskCount++
		if len(sum.Customers) < highRiskLimit {
			sum.Customers = append(sum.Customers, card(r))
		}
	}
	return sum, nil
}

// Customer resolves one id to its detail view. The risk level comes from
// the stored delinquent flag, never a fresh model run: the detail page
// shows the labeled dataset, while /predict always runs the classifier.
func (s *Service) Customer(id string) (model.CustomerDetail, error) {
	if s.store == nil || s.store.Len() == 0 {
		return model.CustomerDetail{}, dataset.ErrUnavailable
	}
	r, err := s.store.FindByID(id)
	if err != nil {
		return model.CustomerDetail{}, err
	}

	c := card(r)
	if r.Delinquent != 1 {
		c.RiskLevel = "Low"
	}
	return model.CustomerDetail{
		CustomerSummary: c,
		Details: model.CustomerDetailFacts{
			CreditScore:   r.Features.CreditScore,
			MonthlyIncome: r.Features.MonthlyIncome,
			EMIAmount:     r.Features.EMIAmount,
		},
	}, nil
}

func card(r model.CustomerRecord) model.CustomerSummary {
	score := model.StressScore(r.Features.CreditScore)
	return model.CustomerSummary{
		ID:            r.CustomerID,
		Name:          "Customer " + r.CustomerID,
		StressScore:   score,
		RiskLevel:     "High",
		Trend:         "Stable",
		Loans:         1,
		TotalExposure: util.FormatINR(r.Features.OutstandingBalance),
		History:       flatHistory(score),
		LastUpdated:   "Today",
	}
}

// flatHistory fakes a week of readings; there is no stored time series.
func flatHistory(score int) []int {
	h := make([]int, 7)
	for i := range h {
		h[i] = score
	}
	return h
}
