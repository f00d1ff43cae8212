package views

import (
	"context"
	"log/slog"

	"github.com/UnknownOlympus/ems/internal/lib/logger/sl"
	"github.com/UnknownOlympus/ems/internal/models"
)

// DeletingText is shown for the transient frame before the redirect.
const DeletingText = "Deleting employee..."

// DeleteView deletes the employee named by the path as soon as it is mounted.
type DeleteView struct {
	log      *slog.Logger
	service  EmployeeService
	navigate Navigate
	id       models.ID
}

func NewDeleteView(log *slog.Logger, service EmployeeService, navigate Navigate, id models.ID) *DeleteView {
	return &DeleteView{
		log:      sl.Component(log, "DeleteView", "employee"),
		service:  service,
		navigate: navigate,
		id:       id,
	}
}

// Mount deletes the employee and always navigates to the list, whether the call failed or not.
// Without identifier nothing is deleted.
func (v *DeleteView) Mount(ctx context.Context) {
	if v.id == "" {
		v.navigate(PathList)
		return
	}

	if err := v.service.DeleteEmployee(ctx, v.id); err != nil {
		v.log.ErrorContext(ctx, "Error deleting employee", slog.String("id", string(v.id)), sl.Err(err))
	}

	v.navigate(PathList)
}
