package main

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/UnknownOlympus/ems/internal/client"
	"github.com/UnknownOlympus/ems/internal/config"
	"github.com/UnknownOlympus/ems/internal/lib/logger/sl"
	"github.com/UnknownOlympus/ems/internal/metrics"
	"github.com/UnknownOlympus/ems/internal/server"
	"github.com/UnknownOlympus/ems/internal/web"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// main is the entry point of the frontend.
func main() {
	var wgr sync.WaitGroup
	delta := 2

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()

	logger := sl.Setup(cfg.Env)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	httpClient := client.CreateHTTPClient(logger)
	employeeClient := client.NewEmployeeClient(httpClient, appMetrics, cfg.API.BaseURL)

	handler := web.NewHandler(logger, employeeClient, appMetrics)
	srv := &http.Server{
		Addr:              cfg.Web.Address,
		Handler:           web.NewRouter(logger, handler),
		ReadHeaderTimeout: 5 * time.Second,
	}

	wgr.Add(delta)

	go func() {
		defer wgr.Done()
		health := server.NewHealthChecker(nil, cfg.API.BaseURL+"/employees", logger)
		server.StartMonitoringServer(ctx, logger, reg, health, cfg.MonitoringPort)
	}()

	go func() {
		defer wgr.Done()
		logger.InfoContext(ctx, "Starting frontend", slog.String("api", cfg.API.BaseURL))
		if err := server.Serve(ctx, logger.With(slog.String("server", "web")), srv); err != nil {
			logger.ErrorContext(ctx, "Frontend failed", sl.Err(err))
			stop()
		}
	}()

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	wgr.Wait()

	logger.InfoContext(ctx, "Application stopped gracefully...")
}
