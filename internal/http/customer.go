package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jmehdipour/risk-scoring/internal/dataset"
	"github.com/jmehdipour/risk-scoring/internal/metrics"
	"github.com/jmehdipour/risk-scoring/internal/service/portfolio"
	echo "github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// customerDetailHandler resolves one customer id. Not-found and
// dataset-unavailable both answer 404 but with distinguishable bodies.
func customerDetailHandler(svc *portfolio.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := strings.TrimSpace(c.Param("id"))

		detail, err := svc.Customer(id)
		if err != nil {
			switch {
			case errors.Is(err, dataset.ErrUnavailable):
				metrics.LookupsTotal.WithLabelValues("unavailable").Inc()
				return c.JSON(http.StatusNotFound, map[string]string{"error": "dataset unavailable"})
			case errors.Is(err, dataset.ErrNotFound):
				metrics.LookupsTotal.WithLabelValues("miss").Inc()
				return c.JSON(http.StatusNotFound, map[string]string{"error": "customer not found"})
			}

			log.Errorf("customer lookup failed: %v", err)

			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "lookup failed"})
		}

		metrics.LookupsTotal.WithLabelValues("hit").Inc()

		return c.JSON(http.StatusOK, detail)
	}
}
