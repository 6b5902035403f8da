package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"afyadash.or.ke/internal/app"
	"afyadash.or.ke/internal/appconf"
	"afyadash.or.ke/internal/healthdata"
	"afyadash.or.ke/internal/logging"
	"afyadash.or.ke/internal/restapi"
	"afyadash.or.ke/internal/webui"
)

func main() {
	var cfg app.Config
	var apiKeysFlag string
	var envFlag string

	flag.StringVar(&cfg.Host, "host", "127.0.0.1", "Interface to bind to (0.0.0.0 for host-friendly deploys)")
	flag.IntVar(&cfg.Port, "port", 8050, "API server port")
	flag.StringVar(&envFlag, "env", "development", "Environment (development|test|production)")
	flag.StringVar(&cfg.DataPath, "data", "subcounty_metrics.csv", "Path to the sub-county metrics CSV")
	flag.StringVar(&apiKeysFlag, "api-keys", "test", "Comma Separated API Keys (test, etc)")
	flag.IntVar(&cfg.RateLimit, "rate-limit", 100, "Requests per second allowed per API key")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "Enable debug logging")
	flag.Parse()

	if apiKeysFlag != "" {
		cfg.ApiKeys = strings.Split(apiKeysFlag, ",")
		for i := range cfg.ApiKeys {
			cfg.ApiKeys[i] = strings.TrimSpace(cfg.ApiKeys[i])
		}
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := logging.NewStructuredLogger(os.Stdout, level)

	env, err := appconf.EnvFlagToEnvironment(envFlag)
	if err != nil {
		logger.Error("invalid environment flag", "error", err)
		os.Exit(1)
	}
	cfg.Env = env

	dataManager, err := healthdata.InitManager(healthdata.Config{
		DataPath: cfg.DataPath,
		Logger:   logger,
	})
	if err != nil {
		logger.Error("failed to initialize metrics dataset", "error", err, "path", cfg.DataPath)
		os.Exit(1)
	}

	dataManager.LogStatistics(logger)

	application := &app.Application{
		Config:      cfg,
		Logger:      logger,
		DataManager: dataManager,
	}

	restAPI := restapi.NewRestAPI(application)
	defer restAPI.Shutdown()

	mux := http.NewServeMux()
	mux.Handle("/api/", restAPI.Handler())
	webui.NewWebUI(application).SetWebUIRoutes(mux)

	var handler http.Handler = mux
	handler = restapi.CompressionMiddleware(handler)
	handler = restapi.WithSecurityHeaders(handler)
	handler = restapi.NewRequestLoggingMiddleware(logger)(handler)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String())
		errChan <- srv.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error(err.Error())
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", "error", err)
			os.Exit(1)
		}
	}
}
