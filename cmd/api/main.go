package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/UnknownOlympus/ems/internal/api"
	"github.com/UnknownOlympus/ems/internal/config"
	"github.com/UnknownOlympus/ems/internal/lib/logger/sl"
	"github.com/UnknownOlympus/ems/internal/metrics"
	"github.com/UnknownOlympus/ems/internal/repository"
	"github.com/UnknownOlympus/ems/internal/server"
	"github.com/UnknownOlympus/ems/internal/services/employees"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// main is the entry point of the employee API.
func main() {
	var wgr sync.WaitGroup
	delta := 2

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()

	logger := sl.Setup(cfg.Env)
	if cfg.Env != sl.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	dtb, err := repository.NewDatabase(ctx, cfg.Postgres)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err) //nolint:gocritic // nothing to clean up yet
	}
	defer dtb.Close()

	employeeRepo := repository.NewEmployeeRepository(dtb, appMetrics)
	staff := employees.NewStaff(logger, employeeRepo)

	srv := &http.Server{
		Addr:              cfg.API.Address,
		Handler:           api.NewRouter(logger, api.NewHandler(logger, staff)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	wgr.Add(delta)

	go func() {
		defer wgr.Done()
		server.StartMonitoringServer(ctx, logger, reg, server.NewHealthChecker(dtb, "", logger), cfg.MonitoringPort)
	}()

	go func() {
		defer wgr.Done()
		logger.InfoContext(ctx, "Starting Employee API")
		if err := server.Serve(ctx, logger.With(slog.String("server", "api")), srv); err != nil {
			logger.ErrorContext(ctx, "Employee API failed", sl.Err(err))
			stop()
		}
	}()

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	wgr.Wait()

	logger.InfoContext(ctx, "Application stopped gracefully...")
}
