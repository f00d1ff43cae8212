package client

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/UnknownOlympus/ems/internal/lib/requestid"
)

const (
	maxRedirects        = 5
	maxIdleConnsPerHost = 16
)

// CreateHTTPClient initializes the HTTP client used to reach the employee API.
// No timeout is configured: a hung call keeps the originating request waiting.
func CreateHTTPClient(log *slog.Logger) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone() //nolint:forcetypeassert // stdlib default
	transport.MaxIdleConnsPerHost = maxIdleConnsPerHost

	return &http.Client{
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}

			log.Debug("Redirected to URL",
				"URL", req.URL,
				slog.String("request_id", requestid.FromContext(req.Context())))

			return nil
		},
	}
}
