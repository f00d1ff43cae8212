package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/UnknownOlympus/ems/internal/lib/requestid"
	"github.com/UnknownOlympus/ems/internal/metrics"
	"github.com/UnknownOlympus/ems/internal/models"
)

// UserAgent is sent with every employee API request.
const UserAgent = "ems-web/1.0"

// ErrBackend is returned for every failed employee API call: transport errors,
// non-success statuses and malformed responses alike.
var ErrBackend = errors.New("employee api call failed")

// EmployeeClient issues the employee REST calls against the configured API prefix.
type EmployeeClient struct {
	client  *http.Client
	baseURL string
	metrics *metrics.Metrics
}

// NewEmployeeClient creates a client for the API rooted at baseURL, e.g. `http://localhost:8080/api`.
func NewEmployeeClient(client *http.Client, metrics *metrics.Metrics, baseURL string) *EmployeeClient {
	return &EmployeeClient{client: client, baseURL: baseURL, metrics: metrics}
}

// ListEmployees returns all employees in the order the API returned them.
func (ec *EmployeeClient) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee

	if err := ec.do(ctx, "list", http.MethodGet, ec.collectionURL(), nil, &employees); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetEmployeeByID returns one employee.
func (ec *EmployeeClient) GetEmployeeByID(ctx context.Context, id models.ID) (models.Employee, error) {
	var employee models.Employee

	if err := ec.do(ctx, "get", http.MethodGet, ec.itemURL(id), nil, &employee); err != nil {
		return models.Employee{}, err
	}

	return employee, nil
}

// CreateEmployee posts a new employee and returns it with the identifier assigned by the API.
func (ec *EmployeeClient) CreateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error) {
	var created models.Employee

	if err := ec.do(ctx, "create", http.MethodPost, ec.collectionURL(), employee, &created); err != nil {
		return models.Employee{}, err
	}

	return created, nil
}

// UpdateEmployee replaces the employee stored under id.
func (ec *EmployeeClient) UpdateEmployee(
	ctx context.Context,
	id models.ID,
	employee models.Employee,
) (models.Employee, error) {
	var updated models.Employee

	if err := ec.do(ctx, "update", http.MethodPut, ec.itemURL(id), employee, &updated); err != nil {
		return models.Employee{}, err
	}

	return updated, nil
}

// DeleteEmployee removes the employee stored under id. The response body is ignored.
func (ec *EmployeeClient) DeleteEmployee(ctx context.Context, id models.ID) error {
	return ec.do(ctx, "delete", http.MethodDelete, ec.itemURL(id), nil, nil)
}

func (ec *EmployeeClient) collectionURL() string {
	return ec.baseURL + "/employees"
}

func (ec *EmployeeClient) itemURL(id models.ID) string {
	return ec.collectionURL() + "/" + url.PathEscape(string(id))
}

func (ec *EmployeeClient) do(ctx context.Context, operation, method, target string, in, out any) error {
	startTime := time.Now()
	status := "failure"
	defer func() {
		ec.metrics.BackendCallDuration.WithLabelValues(operation).Observe(time.Since(startTime).Seconds())
		ec.metrics.BackendCalls.WithLabelValues(operation, status).Inc()
	}()

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%w: failed to encode %s request: %w", ErrBackend, operation, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("%w: failed to create new request %s: %w", ErrBackend, target, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", UserAgent)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if rid := requestid.FromContext(ctx); rid != "" {
		req.Header.Set(requestid.Header, rid)
	}

	resp, err := ec.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to request %s %s: %w", ErrBackend, method, target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: %s %s, status code: %d", ErrBackend, method, target, resp.StatusCode)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		status = "success"
		return nil
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode %s response: %w", ErrBackend, operation, err)
	}

	status = "success"
	return nil
}
