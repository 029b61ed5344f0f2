package model

// CustomerSummary is the fixed-shape card the dashboard renders for each
// high-risk customer. Trend, loan count, history and lastUpdated are
// placeholders; there is no stored time series behind them.
type CustomerSummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"` // anonymized, "Customer {id}"
	StressScore   int    `json:"stressScore"`
	RiskLevel     string `json:"riskLevel"`
	Trend         string `json:"trend"`
	Loans         int    `json:"loans"`
	TotalExposure string `json:"totalExposure"`
	History       []int  `json:"history"`
	LastUpdated   string `json:"lastUpdated"`
}

// CustomerDetailFacts carries the raw figures shown on the detail page.
type CustomerDetailFacts struct {
	CreditScore   float64 `json:"credit_score"`
	MonthlyIncome float64 `json:"monthly_income"`
	EMIAmount     float64 `json:"emi_amount"`
}

// CustomerDetail is the single-customer view.
type CustomerDetail struct {
	CustomerSummary
	Details CustomerDetailFacts `json:"details"`
}

// StatCard is one headline figure on the dashboard.
type StatCard struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Status string `json:"status"`
}

// PortfolioSummary aggregates the corpus for the dashboard.
type PortfolioSummary struct {
	TotalLoans    int
	HighRiskCount int
	Customers     []CustomerSummary // first 50 delinquent, dataset order
}
