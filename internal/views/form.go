package views

import (
	"context"
	"log/slog"

	"github.com/UnknownOlympus/ems/internal/lib/logger/sl"
	"github.com/UnknownOlympus/ems/internal/models"
)

// Mode selects which submission path the form takes.
type Mode int

const (
	// ModeCreate submits a new employee without identifier.
	ModeCreate Mode = iota
	// ModeEdit loads the employee named by the path and submits an update.
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// ModeFor derives the mode from the identifier found in the path.
func ModeFor(id models.ID) Mode {
	if id == "" {
		return ModeCreate
	}
	return ModeEdit
}

// FormView creates or edits one employee.
type FormView struct {
	log      *slog.Logger
	service  EmployeeService
	navigate Navigate
	mode     Mode
	id       models.ID

	Fields Fields
	Errors FieldErrors
}

// NewFormView builds the form for the identifier taken from the path; an empty id means create mode.
func NewFormView(log *slog.Logger, service EmployeeService, navigate Navigate, id models.ID) *FormView {
	mode := ModeFor(id)

	return &FormView{
		log:      sl.Component(log, "FormView", "employee").With(slog.String("mode", mode.String())),
		service:  service,
		navigate: navigate,
		mode:     mode,
		id:       id,
	}
}

func (v *FormView) Mode() Mode {
	return v.mode
}

func (v *FormView) ID() models.ID {
	return v.id
}

// Title is the heading of the form.
func (v *FormView) Title() string {
	if v.mode == ModeEdit {
		return "Update Employee"
	}
	return "Add Employee"
}

// Mount loads the employee in edit mode and fills the fields. Create mode does nothing.
func (v *FormView) Mount(ctx context.Context) {
	if v.mode != ModeEdit {
		return
	}

	employee, err := v.service.GetEmployeeByID(ctx, v.id)
	if err != nil {
		v.log.ErrorContext(ctx, "Error fetching employee", slog.String("id", string(v.id)), sl.Err(err))
		return
	}

	v.Fields = Fields{
		FirstName: employee.FirstName,
		LastName:  employee.LastName,
		Email:     employee.Email,
	}
}

// Validate refreshes the field messages and reports whether the form may be submitted.
func (v *FormView) Validate() bool {
	v.Errors = validateFields(v.Fields)
	return v.Errors.Empty()
}

// Submit validates the fields and, when they pass, creates or updates the employee.
// Success navigates to the list; a failed call is logged and the form keeps its values.
func (v *FormView) Submit(ctx context.Context) {
	if !v.Validate() {
		return
	}

	switch v.mode {
	case ModeEdit:
		employee := models.Employee{
			ID:        v.id,
			FirstName: v.Fields.FirstName,
			LastName:  v.Fields.LastName,
			Email:     v.Fields.Email,
		}
		if _, err := v.service.UpdateEmployee(ctx, v.id, employee); err != nil {
			v.log.ErrorContext(ctx, "Error updating employee", slog.String("id", string(v.id)), sl.Err(err))
			return
		}
	case ModeCreate:
		employee := models.Employee{
			FirstName: v.Fields.FirstName,
			LastName:  v.Fields.LastName,
			Email:     v.Fields.Email,
		}
		if _, err := v.service.CreateEmployee(ctx, employee); err != nil {
			v.log.ErrorContext(ctx, "Error creating employee", sl.Err(err))
			return
		}
	}

	v.navigate(PathList)
}
