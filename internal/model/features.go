package model

import "fmt"

// FeatureSchemaVersion tags the feature layout below. Artifacts fitted
// against a different version must not be served.
const FeatureSchemaVersion = 1

// FeatureOrder is the canonical feature layout. Scaler and classifier
// operate on positional vectors, so artifacts are validated name-for-name
// against this list at load time; a reordered artifact never gets to serve.
var FeatureOrder = []string{
	"monthly_income",
	"credit_score",
	"emi_amount",
	"outstanding_balance",
	"avg_balance_3m",
	"balance_trend",
	"total_credit_30d",
	"total_debit_30d",
	"atm_withdrawals_30d",
	"salary_delay_days",
	"emi_delay_days",
}

// CustomerFeatures is one raw scoring input, one value per FeatureOrder entry.
type CustomerFeatures struct {
	MonthlyIncome      float64 `json:"monthly_income"`
	CreditScore        float64 `json:"credit_score"`
	EMIAmount          float64 `json:"emi_amount"`
	OutstandingBalance float64 `json:"outstanding_balance"`
	AvgBalance3M       float64 `json:"avg_balance_3m"`
	BalanceTrend       float64 `json:"balance_trend"`
	TotalCredit30D     float64 `json:"total_credit_30d"`
	TotalDebit30D      float64 `json:"total_debit_30d"`
	ATMWithdrawals30D  float64 `json:"atm_withdrawals_30d"`
	SalaryDelayDays    int     `json:"salary_delay_days"`
	EMIDelayDays       int     `json:"emi_delay_days"`
}

// Vector flattens the features into FeatureOrder positions.
func (f CustomerFeatures) Vector() []float64 {
	return []float64{
		f.MonthlyIncome,
		f.CreditScore,
		f.EMIAmount,
		f.OutstandingBalance,
		f.AvgBalance3M,
		f.BalanceTrend,
		f.TotalCredit30D,
		f.TotalDebit30D,
		f.ATMWithdrawals30D,
		float64(f.SalaryDelayDays),
		float64(f.EMIDelayDays),
	}
}

// ValidateFeatureNames checks an artifact's feature list against
// FeatureOrder, position for position.
func ValidateFeatureNames(names []string) error {
	if len(names) != len(FeatureOrder) {
		return fmt.Errorf("expected %d features, artifact has %d", len(FeatureOrder), len(names))
	}
	for i, n := range names {
		if n != FeatureOrder[i] {
			return fmt.Errorf("feature %d: expected %q, artifact has %q", i, FeatureOrder[i], n)
		}
	}
	return nil
}
