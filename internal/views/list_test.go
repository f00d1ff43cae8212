package views_test

import (
	"testing"

	"github.com/UnknownOlympus/ems/internal/models"
	"github.com/UnknownOlympus/ems/internal/views"
	mocks "github.com/UnknownOlympus/ems/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListView_MountKeepsBackendOrder(t *testing.T) {
	t.Parallel()

	employees := []models.Employee{
		{ID: "9", FirstName: "Zoe", LastName: "Zimmer", Email: "zoe@example.com"},
		{ID: "2", FirstName: "Adam", LastName: "Abbot", Email: "adam@example.com"},
		{ID: "5", FirstName: "Mia", LastName: "Moss", Email: "mia@example.com"},
	}
	service := mocks.NewEmployeeService(t)
	service.On("ListEmployees", mock.Anything).Return(employees, nil).Once()

	view := views.NewListView(discardLogger(), service)
	view.Mount(t.Context())

	assert.Equal(t, employees, view.Employees())

	rows := view.Rows()
	require.Len(t, rows, len(employees))
	for i, row := range rows {
		id := employees[i].ID
		assert.Equal(t, employees[i], row.Employee)
		assert.Equal(t, "/view-employee/"+string(id), row.ViewPath)
		assert.Equal(t, "/update-employee/"+string(id), row.UpdatePath)
		assert.Equal(t, "/delete-employee/"+string(id), row.DeletePath)
	}
}

func TestListView_MountFailureLeavesEmptyTable(t *testing.T) {
	t.Parallel()

	service := mocks.NewEmployeeService(t)
	service.On("ListEmployees", mock.Anything).Return(nil, assert.AnError).Once()

	view := views.NewListView(discardLogger(), service)
	view.Mount(t.Context())

	assert.Empty(t, view.Employees())
	assert.NotNil(t, view.Employees())
	assert.Empty(t, view.Rows())
}
