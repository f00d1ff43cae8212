package client_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/UnknownOlympus/ems/internal/client"
)

func TestCreateHTTPClient(t *testing.T) {
	var logBuf bytes.Buffer // buffer for log capturing
	// Create slog.Logger, which writes in logBuf
	testLogger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{
		Level: slog.LevelDebug, // Level debug needed, for CheckRedirect message capturing
	}))

	t.Run("client properties", func(t *testing.T) {
		client := client.CreateHTTPClient(testLogger)

		if client.Timeout != 0 {
			t.Errorf("client.Timeout must not be configured, got %s", client.Timeout)
		}

		if client.CheckRedirect == nil {
			t.Error("client.CheckRedirect must be set and must not be nil")
		}
	})

	t.Run("CheckRedirect behavior - redirection and logging", func(t *testing.T) {
		logBuf.Reset()

		finalPath := "/api/employees"
		redirectPath := "/api/employees/"

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case redirectPath:
				http.Redirect(w, r, finalPath, http.StatusMovedPermanently)
			case finalPath:
				w.WriteHeader(http.StatusOK)
				w.Write([]byte("[]"))
			default:
				http.NotFound(w, r)
			}
		}))
		defer server.Close()

		client := client.CreateHTTPClient(testLogger)

		resp, err := client.Get(server.URL + redirectPath)
		if err != nil {
			t.Fatalf("client.Get failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("Expected status OK (200) after redirect, but received %d", resp.StatusCode)
		}
		if resp.Request.URL.Path != finalPath {
			t.Errorf("Expected request final path %s, but received %s", finalPath, resp.Request.URL.Path)
		}

		loggedOutput := logBuf.String()
		if !strings.Contains(loggedOutput, "Redirected to URL") {
			t.Errorf("The log output does not contain the redirect message. Log:\n%s", loggedOutput)
		}

		// slog text log format: level=DEBUG msg="Redirected to URL" URL="http://127.0.0.1:xxxx/api/employees"
		expectedLoggedURLAttribute := "URL=" + server.URL + finalPath
		if !strings.Contains(loggedOutput, expectedLoggedURLAttribute) {
			t.Errorf(
				"The log output does not contain the expected URL attribute %s. Log:\n%s",
				expectedLoggedURLAttribute,
				loggedOutput,
			)
		}
	})

	t.Run("CheckRedirect behavior - redirect loop is cut", func(t *testing.T) {
		var hits atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			http.Redirect(w, r, r.URL.Path, http.StatusFound)
		}))
		defer server.Close()

		client := client.CreateHTTPClient(testLogger)

		resp, err := client.Get(server.URL + "/loop")
		if err == nil {
			resp.Body.Close()
			t.Fatal("Expected an error for a redirect loop, got nil")
		}
		if !strings.Contains(err.Error(), "stopped after 5 redirects") {
			t.Errorf("Unexpected error: %v", err)
		}
		if hits.Load() != 5 {
			t.Errorf("Expected 5 requests before giving up, got %d", hits.Load())
		}
	})
}
