package http

import (
	"context"
	"net/http"
	"time"

	"github.com/jmehdipour/risk-scoring/internal/config"
	"github.com/jmehdipour/risk-scoring/internal/dataset"
	"github.com/jmehdipour/risk-scoring/internal/http/middleware"
	"github.com/jmehdipour/risk-scoring/internal/metrics"
	"github.com/jmehdipour/risk-scoring/internal/scoring"
	"github.com/jmehdipour/risk-scoring/internal/service/portfolio"
	"github.com/jmehdipour/risk-scoring/internal/util"
	"github.com/labstack/echo/v4"
	echoMid "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

type Server struct{ e *echo.Echo }

// NewServer wires the scoring and portfolio services into the HTTP surface.
// store may be nil: dashboard and lookup then answer "unavailable" while
// /predict keeps serving.
func NewServer(cfg config.Config, scorer *scoring.Scorer, store *dataset.Store, rds *redis.Client) *Server {
	portfolioSvc := portfolio.New(store)

	// echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMid.Recover(), echoMid.Logger())
	e.Use(echoMid.RequestIDWithConfig(echoMid.RequestIDConfig{Generator: util.New}))

	metrics.MustRegister(prometheus.DefaultRegisterer)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// health + liveness marker (the dashboard probes "/")
	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "API is working"})
	})

	// middlewares
	rlMW := middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		Redis:     rds,
		RPS:       cfg.RateLimit.RPS,
		KeyPrefix: "rl:ip:",
		Window:    time.Second,
	})

	// routes
	e.GET("/dashboard-stats", dashboardStatsHandler(portfolioSvc), rlMW)
	e.GET("/customer/:id", customerDetailHandler(portfolioSvc), rlMW)
	e.POST("/predict", predictHandler(scorer), rlMW)

	return &Server{e: e}
}

func (s *Server) Start(addr string) error { return s.e.Start(addr) }
func (s *Server) Shutdown(ctx context.Context) error { return s.e.Shutdown(ctx) }
