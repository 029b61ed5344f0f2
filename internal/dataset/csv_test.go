package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `customer_id,monthly_income,credit_score,emi_amount,outstanding_balance,avg_balance_3m,balance_trend,total_credit_30d,total_debit_30d,atm_withdrawals_30d,salary_delay_days,emi_delay_days,delinquent_flag
CUST000001,4000,500,1500,3000,12000,0.3,4200,3000,6,1,2,1
CUST000002,90000,800,9000,54000,120000,-0.1,91000,60000,2,0,0,0
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "customers.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	store, err := LoadCSV(writeTemp(t, sampleCSV))
	require.NoError(t, err)
	require.Equal(t, 2, store.Len())

	rec, err := store.FindByID("CUST000001")
	require.NoError(t, err)
	assert.Equal(t, 4000.0, rec.Features.MonthlyIncome)
	assert.Equal(t, 500.0, rec.Features.CreditScore)
	assert.Equal(t, 0.3, rec.Features.BalanceTrend)
	assert.Equal(t, 1, rec.Features.SalaryDelayDays)
	assert.Equal(t, 2, rec.Features.EMIDelayDays)
	assert.Equal(t, 1, rec.Delinquent)

	_, err = store.FindByID("CUST999999")
	assert.ErrorIs(t, err, ErrNotFound)

	// dataset order survives loading
	assert.Equal(t, "CUST000001", store.Records()[0].CustomerID)
	assert.Equal(t, "CUST000002", store.Records()[1].CustomerID)
}

func TestLoadCSVRejectsMisorderedHeader(t *testing.T) {
	swapped := strings.Replace(sampleCSV, "monthly_income,credit_score", "credit_score,monthly_income", 1)
	_, err := LoadCSV(writeTemp(t, swapped))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "monthly_income")
}

func TestLoadCSVRejectsBadValues(t *testing.T) {
	bad := strings.Replace(sampleCSV, "4000,500", "4000,abc", 1)
	_, err := LoadCSV(writeTemp(t, bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credit_score")

	bad = strings.Replace(sampleCSV, ",6,1,2,1", ",6,1,2,7", 1)
	_, err = LoadCSV(writeTemp(t, bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delinquent_flag")
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestNewStoreFirstDuplicateWins(t *testing.T) {
	store, err := LoadCSV(writeTemp(t, sampleCSV+"CUST000001,1,1,1,1,1,0,1,1,1,0,0,0\n"))
	require.NoError(t, err)

	rec, err := store.FindByID("CUST000001")
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Delinquent)
}
