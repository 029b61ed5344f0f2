package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jmehdipour/risk-scoring/internal/dataset"
	"github.com/jmehdipour/risk-scoring/internal/model"
	"github.com/jmehdipour/risk-scoring/internal/service/portfolio"
	echo "github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func dashboardStatsHandler(svc *portfolio.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		sum, err := svc.Summarize()
		if err != nil {
			switch {
			case errors.Is(err, dataset.ErrUnavailable):
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "dataset unavailable"})
			case errors.Is(err, portfolio.ErrEmptyDataset):
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "dataset empty"})
			}

			log.Errorf("summarize failed: %v", err)

			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "aggregation failed"})
		}

		stats := []model.StatCard{
			{Label: "Total Active Loans", Value: strconv.Itoa(sum.TotalLoans), Change: "+0%", Status: "neutral"},
			{Label: "High Risk Customers", Value: strconv.Itoa(sum.HighRiskCount), Change: "N/A", Status: "negative"},
			{Label: "Defaults Prevented", Value: "0", Change: "Last 30 days", Status: "neutral"},
			{Label: "Est. Savings", Value: "₹0", Change: "+0%", Status: "neutral"},
		}

		customers := sum.Customers
		if customers == nil {
			customers = []model.CustomerSummary{}
		}

		return c.JSON(http.StatusOK, map[string]any{
			"stats":     stats,
			"customers": customers,
		})
	}
}
