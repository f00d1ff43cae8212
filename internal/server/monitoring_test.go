package server_test

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/UnknownOlympus/ems/internal/metrics"
	"github.com/UnknownOlympus/ems/internal/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitoringHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewMetrics(reg)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := server.NewMonitoringHandler(reg, server.NewHealthChecker(&MockDBPinger{}, "", logger))

	t.Run("metrics", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `ems_backend_calls_total{operation="list",status="success"} 0`)
	})

	t.Run("healthz", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"database":"ok"}`, rr.Body.String())
	})
}

func TestServe(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("stops on context cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler(), ReadHeaderTimeout: time.Second}

		done := make(chan error, 1)
		go func() { done <- server.Serve(ctx, logger, srv) }()

		cancel()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("server did not stop")
		}
	})

	t.Run("listen error", func(t *testing.T) {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer listener.Close()

		srv := &http.Server{Addr: listener.Addr().String(), Handler: http.NotFoundHandler(), ReadHeaderTimeout: time.Second}

		err = server.Serve(t.Context(), logger, srv)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "listen on")
	})
}
