package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/UnknownOlympus/ems/internal/client"
	"github.com/UnknownOlympus/ems/internal/lib/requestid"
	"github.com/UnknownOlympus/ems/internal/metrics"
	"github.com/UnknownOlympus/ems/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*client.EmployeeClient, *metrics.Metrics) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	testMetrics := metrics.NewMetrics(prometheus.NewRegistry())

	return client.NewEmployeeClient(server.Client(), testMetrics, server.URL+"/api"), testMetrics
}

func TestListEmployees_Success(t *testing.T) {
	t.Parallel()

	employeeClient, testMetrics := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/employees", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		assert.Equal(t, client.UserAgent, r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 7, "firstName": "Zed", "lastName": "Last", "email": "zed@example.com"},
			{"id": 3, "firstName": "Amy", "lastName": "First", "email": "amy@example.com"}
		]`))
	})

	employees, err := employeeClient.ListEmployees(context.Background())

	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, models.Employee{ID: "7", FirstName: "Zed", LastName: "Last", Email: "zed@example.com"}, employees[0])
	assert.Equal(t, models.ID("3"), employees[1].ID)
	assert.InDelta(t, 1, testutil.ToFloat64(testMetrics.BackendCalls.WithLabelValues("list", "success")), 0)
}

func TestListEmployees_ServerError(t *testing.T) {
	t.Parallel()

	employeeClient, testMetrics := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	employees, err := employeeClient.ListEmployees(context.Background())

	require.ErrorIs(t, err, client.ErrBackend)
	assert.Nil(t, employees)
	assert.Contains(t, err.Error(), "status code: 500")
	assert.InDelta(t, 1, testutil.ToFloat64(testMetrics.BackendCalls.WithLabelValues("list", "failure")), 0)
}

func TestListEmployees_MalformedResponse(t *testing.T) {
	t.Parallel()

	employeeClient, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"`))
	})

	_, err := employeeClient.ListEmployees(context.Background())

	require.ErrorIs(t, err, client.ErrBackend)
}

func TestListEmployees_Unreachable(t *testing.T) {
	t.Parallel()

	testMetrics := metrics.NewMetrics(prometheus.NewRegistry())
	employeeClient := client.NewEmployeeClient(http.DefaultClient, testMetrics, "http://127.0.0.1:1/api")

	_, err := employeeClient.ListEmployees(context.Background())

	require.ErrorIs(t, err, client.ErrBackend)
}

func TestGetEmployeeByID(t *testing.T) {
	t.Parallel()

	employeeClient, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/employees/42", r.URL.Path)
		assert.Equal(t, "req-1", r.Header.Get(requestid.Header))

		_, _ = w.Write([]byte(`{"id": 42, "firstName": "A", "lastName": "B", "email": "c@d.com"}`))
	})

	ctx := requestid.WithRequestID(context.Background(), "req-1")
	employee, err := employeeClient.GetEmployeeByID(ctx, "42")

	require.NoError(t, err)
	assert.Equal(t, models.Employee{ID: "42", FirstName: "A", LastName: "B", Email: "c@d.com"}, employee)
}

func TestGetEmployeeByID_NotFound(t *testing.T) {
	t.Parallel()

	employeeClient, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Employee does not exist with the given ID: 42"}`))
	})

	_, err := employeeClient.GetEmployeeByID(context.Background(), "42")

	require.ErrorIs(t, err, client.ErrBackend)
}

func TestCreateEmployee_SendsNoIdentifier(t *testing.T) {
	t.Parallel()

	employeeClient, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/employees", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.NotContains(t, payload, "id")
		assert.Equal(t, "Ada", payload["firstName"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 1, "firstName": "Ada", "lastName": "Lovelace", "email": "ada@example.com"}`))
	})

	created, err := employeeClient.CreateEmployee(context.Background(), models.Employee{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, models.ID("1"), created.ID)
}

func TestUpdateEmployee_SendsIdentifier(t *testing.T) {
	t.Parallel()

	employeeClient, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/employees/5", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":5,"firstName":"A","lastName":"B","email":"c@d.com"}`, string(body))

		_, _ = w.Write(body)
	})

	updated, err := employeeClient.UpdateEmployee(context.Background(), "5", models.Employee{
		ID: "5", FirstName: "A", LastName: "B", Email: "c@d.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "A", updated.FirstName)
}

func TestUpdateEmployee_NonCanonicalIdentifier(t *testing.T) {
	t.Parallel()

	for _, id := range []models.ID{"007", "+5"} {
		t.Run(string(id), func(t *testing.T) {
			t.Parallel()

			var reached atomic.Bool
			employeeClient, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				reached.Store(true)

				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				assert.JSONEq(t, `{"id":"`+string(id)+`","firstName":"A","lastName":"B","email":"c@d.com"}`, string(body))

				_, _ = w.Write(body)
			})

			_, err := employeeClient.UpdateEmployee(context.Background(), id, models.Employee{
				ID: id, FirstName: "A", LastName: "B", Email: "c@d.com",
			})

			require.NoError(t, err)
			assert.True(t, reached.Load())
		})
	}
}

func TestDeleteEmployee(t *testing.T) {
	t.Parallel()

	var called atomic.Bool
	employeeClient, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called.Store(true)
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/employees/9", r.URL.Path)

		_, _ = w.Write([]byte("Employee deleted successfully"))
	})

	require.NoError(t, employeeClient.DeleteEmployee(context.Background(), "9"))
	assert.True(t, called.Load())
}

func TestDeleteEmployee_Failure(t *testing.T) {
	t.Parallel()

	employeeClient, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	require.ErrorIs(t, employeeClient.DeleteEmployee(context.Background(), "9"), client.ErrBackend)
}
