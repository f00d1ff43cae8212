// Package views holds the state and navigation contract of the employee screens.
//
// A view lives for a single activation: it is created, mounted, optionally receives user
// events and is then discarded. Views never render HTML themselves and never touch global
// navigation state; they call an injected Navigate function instead.
package views

import (
	"context"
	"net/url"

	"github.com/UnknownOlympus/ems/internal/models"
)

// Navigation targets of the employee screens.
const (
	PathRoot   = "/"
	PathList   = "/employees"
	PathAdd    = "/add-employee"
	prefixView = "/view-employee/"
	prefixEdit = "/update-employee/"
	prefixDrop = "/delete-employee/"
)

// ViewPath is the target of the "view" action for an employee.
func ViewPath(id models.ID) string {
	return prefixView + url.PathEscape(string(id))
}

// UpdatePath is the target of the "update" action for an employee.
func UpdatePath(id models.ID) string {
	return prefixEdit + url.PathEscape(string(id))
}

// DeletePath is the target of the "delete" action for an employee.
func DeletePath(id models.ID) string {
	return prefixDrop + url.PathEscape(string(id))
}

// Navigate moves the user to target.
type Navigate func(target string)

// EmployeeService is the remote employee API as seen by the views.
type EmployeeService interface {
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	GetEmployeeByID(ctx context.Context, id models.ID) (models.Employee, error)
	CreateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error)
	UpdateEmployee(ctx context.Context, id models.ID, employee models.Employee) (models.Employee, error)
	DeleteEmployee(ctx context.Context, id models.ID) error
}
