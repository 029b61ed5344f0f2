package dataset

import (
	"context"
	"fmt"

	"github.com/jmehdipour/risk-scoring/internal/model"
	"github.com/jmoiron/sqlx"
)

type recordRow struct {
	CustomerID         string  `db:"customer_id"`
	MonthlyIncome      float64 `db:"monthly_income"`
	CreditScore        float64 `db:"credit_score"`
	EMIAmount          float64 `db:"emi_amount"`
	OutstandingBalance float64 `db:"outstanding_balance"`
	AvgBalance3M       float64 `db:"avg_balance_3m"`
	BalanceTrend       float64 `db:"balance_trend"`
	TotalCredit30D     float64 `db:"total_credit_30d"`
	TotalDebit30D      float64 `db:"total_debit_30d"`
	ATMWithdrawals30D  float64 `db:"atm_withdrawals_30d"`
	SalaryDelayDays    int     `db:"salary_delay_days"`
	EMIDelayDays       int     `db:"emi_delay_days"`
	Delinquent         int     `db:"delinquent_flag"`
}

// LoadMySQL reads the whole corpus from the customer_records table, once,
// into memory. The table mirrors the CSV layout plus a surrogate id that
// pins dataset order. After this call the database is not touched again.
func LoadMySQL(ctx context.Context, db *sqlx.DB) (*Store, error) {
	const q = `
		SELECT customer_id, monthly_income, credit_score, emi_amount,
		       outstanding_balance, avg_balance_3m, balance_trend,
		       total_credit_30d, total_debit_30d, atm_withdrawals_30d,
		       salary_delay_days, emi_delay_days, delinquent_flag
		  FROM customer_records
		 ORDER BY id
	`
	var rows []recordRow
	if err := db.SelectContext(ctx, &rows, q); err != nil {
		return nil, fmt.Errorf("select customer_records: %w", err)
	}

	records := make([]model.CustomerRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, model.CustomerRecord{
			CustomerID: r.CustomerID,
			Features: model.CustomerFeatures{
				MonthlyIncome:      r.MonthlyIncome,
				CreditScore:        r.CreditScore,
				EMIAmount:          r.EMIAmount,
				OutstandingBalance: r.OutstandingBalance,
				AvgBalance3M:       r.AvgBalance3M,
				BalanceTrend:       r.BalanceTrend,
				TotalCredit30D:     r.TotalCredit30D,
				TotalDebit30D:      r.TotalDebit30D,
				ATMWithdrawals30D:  r.ATMWithdrawals30D,
				SalaryDelayDays:    r.SalaryDelayDays,
				EMIDelayDays:       r.EMIDelayDays,
			},
			Delinquent: r.Delinquent,
		})
	}
	return NewStore(records), nil
}
