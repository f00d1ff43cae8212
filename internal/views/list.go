package views

import (
	"context"
	"log/slog"

	"github.com/UnknownOlympus/ems/internal/lib/logger/sl"
	"github.com/UnknownOlympus/ems/internal/models"
)

// Row is one line of the employee table together with its action targets.
type Row struct {
	Employee   models.Employee
	ViewPath   string
	UpdatePath string
	DeletePath string
}

// ListView shows every employee returned by the API.
type ListView struct {
	log       *slog.Logger
	service   EmployeeService
	employees []models.Employee
}

// NewListView builds the list screen. Its navigation triggers are the targets carried by Rows
// plus PathAdd.
func NewListView(log *slog.Logger, service EmployeeService) *ListView {
	return &ListView{
		log:       sl.Component(log, "ListView", "employee"),
		service:   service,
		employees: []models.Employee{},
	}
}

// Mount fetches the collection. A failure is logged and leaves the table empty.
func (v *ListView) Mount(ctx context.Context) {
	employees, err := v.service.ListEmployees(ctx)
	if err != nil {
		v.log.ErrorContext(ctx, "There was an error fetching the employee data", sl.Err(err))
		return
	}

	if employees == nil {
		employees = []models.Employee{}
	}
	v.employees = employees
}

// Employees returns the fetched records in API order.
func (v *ListView) Employees() []models.Employee {
	return v.employees
}

// Rows returns one row per employee, in API order.
func (v *ListView) Rows() []Row {
	rows := make([]Row, 0, len(v.employees))
	for _, employee := range v.employees {
		rows = append(rows, Row{
			Employee:   employee,
			ViewPath:   ViewPath(employee.ID),
			UpdatePath: UpdatePath(employee.ID),
			DeletePath: DeletePath(employee.ID),
		})
	}

	return rows
}
