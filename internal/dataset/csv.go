package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jmehdipour/risk-scoring/internal/model"
)

// Columns is the dataset file layout: id, the features in canonical order,
// then the ground-truth label.
func Columns() []string {
	cols := make([]string, 0, len(model.FeatureOrder)+2)
	cols = append(cols, "customer_id")
	cols = append(cols, model.FeatureOrder...)
	cols = append(cols, "delinquent_flag")
	return cols
}

// LoadCSV reads the whole corpus from a dataset file. The header must match
// Columns exactly; a misordered file would silently mis-assign features.
func LoadCSV(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}
	want := Columns()
	if len(header) != len(want) {
		return nil, fmt.Errorf("dataset header: want %d columns, got %d", len(want), len(header))
	}
	for i, col := range header {
		if col != want[i] {
			return nil, fmt.Errorf("dataset header: column %d is %q, want %q", i, col, want[i])
		}
	}

	var records []model.CustomerRecord
	for line := 2; ; line++ {
		row, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read dataset line %d: %w", line, err)
		}
		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("dataset line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return NewStore(records), nil
}

func parseRow(row []string) (model.CustomerRecord, error) {
	fv := make([]float64, len(model.FeatureOrder))
	for i := range model.FeatureOrder {
		v, err := strconv.ParseFloat(row[i+1], 64)
		if err != nil {
			return model.CustomerRecord{}, fmt.Errorf("column %s: %w", model.FeatureOrder[i], err)
		}
		fv[i] = v
	}
	flag, err := strconv.Atoi(row[len(row)-1])
	if err != nil || (flag != 0 && flag != 1) {
		return model.CustomerRecord{}, fmt.Errorf("column delinquent_flag: %q is not 0 or 1", row[len(row)-1])
	}
	return model.CustomerRecord{
		CustomerID: row[0],
		Features: model.CustomerFeatures{
			MonthlyIncome:      fv[0],
			CreditScore:        fv[1],
			EMIAmount:          fv[2],
			OutstandingBalance: fv[3],
			AvgBalance3M:       fv[4],
			BalanceTrend:       fv[5],
			TotalCredit30D:     fv[6],
			TotalDebit30D:      fv[7],
			ATMWithdrawals30D:  fv[8],
			SalaryDelayDays:    int(fv[9]),
			EMIDelayDays:       int(fv[10]),
		},
		Delinquent: flag,
	}, nil
}
