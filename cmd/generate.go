package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jmehdipour/risk-scoring/internal/dataset"
	"github.com/jmehdipour/risk-scoring/internal/model"
	"github.com/jmehdipour/risk-scoring/internal/scoring"
	"github.com/spf13/cobra"
)

var (
	genRows int
	genDir  string
	genSeed int64

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate a demo dataset and dev scaler/model artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if genRows <= 0 {
				return fmt.Errorf("rows must be positive")
			}
			if err := os.MkdirAll(genDir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}

			rng := rand.New(rand.NewSource(genSeed))
			records := generateRecords(rng, genRows)

			csvPath := filepath.Join(genDir, "customers.csv")
			if err := writeDatasetCSV(csvPath, records); err != nil {
				return err
			}

			scalerPath := filepath.Join(genDir, "scaler.json")
			if err := writeJSON(scalerPath, fitScalerArtifact(records)); err != nil {
				return err
			}

			modelPath := filepath.Join(genDir, "model.json")
			if err := writeJSON(modelPath, devModelArtifact()); err != nil {
				return err
			}

			fmt.Printf(">> Wrote %d records to %s (+ scaler.json, model.json)\n", len(records), csvPath)
			return nil
		},
	}
)

func init() {
	generateCmd.Flags().IntVar(&genRows, "rows", 5000, "number of customer records")
	generateCmd.Flags().StringVar(&genDir, "dir", "artifacts", "output directory")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 42, "RNG seed (same seed, same dataset)")
}

// generateRecords synthesizes customer records with correlated signals:
// income drives credit score and cash flow, and the delinquency label comes
// from a noisy logistic risk score over the same features the model sees.
func generateRecords(rng *rand.Rand, n int) []model.CustomerRecord {
	records := make([]model.CustomerRecord, 0, n)
	for i := 1; i <= n; i++ {
		income := clampF(rng.NormFloat64()*20000+60000, 15000, 200000)
		credit := clampF(650+(income-60000)/500+rng.NormFloat64()*50, 300, 850)
		emi := income * uniform(rng, 0.1, 0.4)
		outstanding := emi * uniform(rng, 6, 36)
		avg3m := income * uniform(rng, 0.3, 1.5)
		trend := uniform(rng, -0.3, 0.3)
		credit30 := income + rng.NormFloat64()*3000
		debit30 := credit30 * uniform(rng, 0.6, 1.1)
		atm := poisson(rng, 3)
		salaryDelay := weightedDelay(rng)
		emiDelay := int(math.Max(0, float64(salaryDelay)+rng.NormFloat64()))

		risk := -(credit-650)/100 -
			(avg3m/income)/2 +
			(emi/income)*2 +
			outstanding/(income*24) +
			(-trend) +
			float64(atm)/8 +
			float64(salaryDelay)/4 +
			float64(emiDelay)/4 +
			rng.NormFloat64()*0.8

		prob := 1 / (1 + math.Exp(-risk))
		flag := 0
		if prob > 0.65 {
			flag = 1
		}

		records = append(records, model.CustomerRecord{
			CustomerID: fmt.Sprintf("CUST%06d", i),
			Features: model.CustomerFeatures{
				MonthlyIncome:      income,
				CreditScore:        credit,
				EMIAmount:          emi,
				OutstandingBalance: outstanding,
				AvgBalance3M:       avg3m,
				BalanceTrend:       trend,
				TotalCredit30D:     credit30,
				TotalDebit30D:      debit30,
				ATMWithdrawals30D:  float64(atm),
				SalaryDelayDays:    salaryDelay,
				EMIDelayDays:       emiDelay,
			},
			Delinquent: flag,
		})
	}
	return records
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// poisson draws via Knuth's product method; fine for small lambda.
func poisson(rng *rand.Rand, lambda float64) int {
	l := math.Exp(-lambda)
	k := 0
	p := 1.0
	for {
		p *= rng.Float64()
		if p <= l {
			return k
		}
		k++
	}
}

// weightedDelay samples salary delay days: mostly on time, a small tail.
func weightedDelay(rng *rand.Rand) int {
	r := rng.Float64()
	switch {
	case r < 0.50:
		return 0
	case r < 0.70:
		return 1
	case r < 0.85:
		return 2
	case r < 0.95:
		return 3
	default:
		return 5
	}
}

func writeDatasetCSV(path string, records []model.CustomerRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(dataset.Columns()); err != nil {
		return err
	}
	for _, r := range records {
		row := make([]string, 0, len(model.FeatureOrder)+2)
		row = append(row, r.CustomerID)
		for _, v := range r.Features.Vector() {
			row = append(row, strconv.FormatFloat(v, 'f', -1, 64))
		}
		row = append(row, strconv.Itoa(r.Delinquent))
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// fitScalerArtifact computes per-feature mean and population std over the
// generated sample, same as the offline StandardScaler fit.
func fitScalerArtifact(records []model.CustomerRecord) scoring.ScalerArtifact {
	n := len(model.FeatureOrder)
	mean := make([]float64, n)
	std := make([]float64, n)

	for _, r := range records {
		for i, v := range r.Features.Vector() {
			mean[i] += v
		}
	}
	for i := range mean {
		mean[i] /= float64(len(records))
	}
	for _, r := range records {
		for i, v := range r.Features.Vector() {
			d := v - mean[i]
			std[i] += d * d
		}
	}
	for i := range std {
		std[i] = math.Sqrt(std[i] / float64(len(records)))
		if std[i] == 0 {
			std[i] = 1
		}
	}

	return scoring.ScalerArtifact{
		SchemaVersion: model.FeatureSchemaVersion,
		FeatureNames:  model.FeatureOrder,
		Mean:          mean,
		Std:           std,
	}
}

// devModelArtifact is a hand-set logistic model over the scaled space that
// mirrors the generator's risk weights. Good enough for local demos; real
// deployments replace it with an offline-fitted artifact.
func devModelArtifact() scoring.LogisticArtifact {
	return scoring.LogisticArtifact{
		SchemaVersion: model.FeatureSchemaVersion,
		FeatureNames:  model.FeatureOrder,
		Coefficients: []float64{
			-0.40, // monthly_income
			-1.20, // credit_score
			0.80,  // emi_amount
			0.50,  // outstanding_balance
			-0.60, // avg_balance_3m
			-0.40, // balance_trend
			-0.10, // total_credit_30d
			0.20,  // total_debit_30d
			0.40,  // atm_withdrawals_30d
			0.50,  // salary_delay_days
			0.60,  // emi_delay_days
		},
		Intercept: -1.0,
	}
}

func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
