package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmehdipour/risk-scoring/internal/config"
	"github.com/jmehdipour/risk-scoring/internal/dataset"
	"github.com/jmehdipour/risk-scoring/internal/db"
	httpSrv "github.com/jmehdipour/risk-scoring/internal/http"
	"github.com/jmehdipour/risk-scoring/internal/logger"
	"github.com/jmehdipour/risk-scoring/internal/scoring"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logger.Init(cfg.Log.Level)

		// Fitted artifacts are mandatory: serving without them would
		// produce meaningless scores, so failures here are fatal.
		scaler, err := scoring.LoadScaler(cfg.Artifacts.Scaler)
		if err != nil {
			return fmt.Errorf("load scaler: %w", err)
		}
		clf, err := scoring.LoadClassifier(cfg.Artifacts.Model)
		if err != nil {
			return fmt.Errorf("load classifier: %w", err)
		}
		scorer := scoring.NewScorer(scaler, clf)

		// The dataset is a soft dependency: without it the dashboard and
		// lookup endpoints answer "unavailable" while /predict keeps working.
		store := loadDataset(cfg)

		var rds *redis.Client
		if cfg.Redis.Addr != "" {
			rds, err = db.NewRedisClient(cfg.Redis)
			if err != nil {
				return fmt.Errorf("redis connect: %w", err)
			}
			defer func() { _ = rds.Close() }()
		}

		server := httpSrv.NewServer(cfg, scorer, store, rds)

		errCh := make(chan error, 1)
		go func() {
			logger.Log.Info("starting http", zap.String("addr", cfg.HTTP.Addr))
			errCh <- server.Start(cfg.HTTP.Addr)
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-sigCh:
			logger.Log.Info("signal received, shutting down", zap.String("signal", sig.String()))
		case err := <-errCh:
			if err != nil {
				logger.Log.Error("http server exited", zap.Error(err))
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)

		return nil
	},
}

// loadDataset reads the record corpus once. A missing corpus is not fatal;
// it only degrades the dashboard and lookup endpoints.
func loadDataset(cfg config.Config) *dataset.Store {
	var (
		store *dataset.Store
		err   error
	)
	switch cfg.Dataset.Source {
	case "mysql":
		store, err = loadDatasetMySQL(cfg)
	default:
		store, err = dataset.LoadCSV(cfg.Dataset.Path)
	}
	if err != nil {
		logger.Log.Warn("dataset unavailable", zap.String("source", cfg.Dataset.Source), zap.Error(err))
		return nil
	}
	logger.Log.Info("dataset loaded", zap.Int("records", store.Len()))
	return store
}

func loadDatasetMySQL(cfg config.Config) (*dataset.Store, error) {
	dbx, err := db.NewMySQLConnection(cfg.MySQL)
	if err != nil {
		return nil, fmt.Errorf("mysql connect: %w", err)
	}
	defer dbx.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return dataset.LoadMySQL(ctx, dbx)
}
