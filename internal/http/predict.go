package http

import (
	"errors"
	"net/http"

	"github.com/jmehdipour/risk-scoring/internal/metrics"
	"github.com/jmehdipour/risk-scoring/internal/model"
	"github.com/jmehdipour/risk-scoring/internal/scoring"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// predictReq uses pointers so absent fields are detectable: a zero income
// and a missing income must not look the same to validation.
type predictReq struct {
	MonthlyIncome      *float64 `json:"monthly_income"`
	CreditScore        *float64 `json:"credit_score"`
	EMIAmount          *float64 `json:"emi_amount"`
	OutstandingBalance *float64 `json:"outstanding_balance"`
	AvgBalance3M       *float64 `json:"avg_balance_3m"`
	BalanceTrend       *float64 `json:"balance_trend"`
	TotalCredit30D     *float64 `json:"total_credit_30d"`
	TotalDebit30D      *float64 `json:"total_debit_30d"`
	ATMWithdrawals30D  *float64 `json:"atm_withdrawals_30d"`
	SalaryDelayDays    *int     `json:"salary_delay_days"`
	EMIDelayDays       *int     `json:"emi_delay_days"`
}

func (r predictReq) missing() []string {
	var m []string
	for _, f := range []struct {
		name string
		set  bool
	}{
		{"monthly_income", r.MonthlyIncome != nil},
		{"credit_score", r.CreditScore != nil},
		{"emi_amount", r.EMIAmount != nil},
		{"outstanding_balance", r.OutstandingBalance != nil},
		{"avg_balance_3m", r.AvgBalance3M != nil},
		{"balance_trend", r.BalanceTrend != nil},
		{"total_credit_30d", r.TotalCredit30D != nil},
		{"total_debit_30d", r.TotalDebit30D != nil},
		{"atm_withdrawals_30d", r.ATMWithdrawals30D != nil},
		{"salary_delay_days", r.SalaryDelayDays != nil},
		{"emi_delay_days", r.EMIDelayDays != nil},
	} {
		if !f.set {
			m = append(m, f.name)
		}
	}
	return m
}

func (r predictReq) features() model.CustomerFeatures {
	return model.CustomerFeatures{
		MonthlyIncome:      *r.MonthlyIncome,
		CreditScore:        *r.CreditScore,
		EMIAmount:          *r.EMIAmount,
		OutstandingBalance: *r.OutstandingBalance,
		AvgBalance3M:       *r.AvgBalance3M,
		BalanceTrend:       *r.BalanceTrend,
		TotalCredit30D:     *r.TotalCredit30D,
		TotalDebit30D:      *r.TotalDebit30D,
		ATMWithdrawals30D:  *r.ATMWithdrawals30D,
		SalaryDelayDays:    *r.SalaryDelayDays,
		EMIDelayDays:       *r.EMIDelayDays,
	}
}

func predictHandler(scorer *scoring.Scorer) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req predictReq
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad request"})
		}

		if missing := req.missing(); len(missing) > 0 {
			return c.JSON(http.StatusUnprocessableEntity, map[string]any{
				"error":  "validation failed",
				"fields": missing,
			})
		}

		res, err := scorer.Score(req.features())
		if err != nil {
			var se *scoring.SchemaError
			if errors.As(err, &se) {
				return c.JSON(http.StatusUnprocessableEntity, map[string]any{
					"error":  "validation failed",
					"fields": se.Fields,
				})
			}

			log.Errorf("score failed: %v", err)

			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "scoring failed"})
		}

		metrics.PredictionsTotal.WithLabelValues(res.Level.String()).Inc()

		return c.JSON(http.StatusOK, map[string]any{
			"risk_probability": res.Probability,
			"risk_percentage":  res.Percentage,
			"prediction":       res.PredictedLabel,
			"risk_level":       res.Level.Display(),
		})
	}
}
