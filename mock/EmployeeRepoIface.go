package mocks

import (
	"context"

	"github.com/UnknownOlympus/ems/internal/models"
	"github.com/stretchr/testify/mock"
)

// EmployeeRepoIface is a mock type for the repository.EmployeeRepoIface type.
type EmployeeRepoIface struct {
	mock.Mock
}

// ListEmployees provides a mock function with given fields: ctx.
func (_m *EmployeeRepoIface) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	ret := _m.Called(ctx)

	var r0 []models.Employee
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Employee)
	}

	return r0, ret.Error(1)
}

// ListEmployeesByFirstName provides a mock function with given fields: ctx, firstName.
func (_m *EmployeeRepoIface) ListEmployeesByFirstName(ctx context.Context, firstName string) ([]models.Employee, error) {
	ret := _m.Called(ctx, firstName)

	var r0 []models.Employee
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Employee)
	}

	return r0, ret.Error(1)
}

// GetEmployeeByID provides a mock function with given fields: ctx, identifier.
func (_m *EmployeeRepoIface) GetEmployeeByID(ctx context.Context, identifier int64) (models.Employee, error) {
	ret := _m.Called(ctx, identifier)

	return ret.Get(0).(models.Employee), ret.Error(1)
}

// SaveEmployee provides a mock function with given fields: ctx, employee.
func (_m *EmployeeRepoIface) SaveEmployee(ctx context.Context, employee models.Employee) (models.Employee, error) {
	ret := _m.Called(ctx, employee)

	if rf, ok := ret.Get(0).(func(context.Context, models.Employee) models.Employee); ok {
		return rf(ctx, employee), ret.Error(1)
	}

	return ret.Get(0).(models.Employee), ret.Error(1)
}

// UpdateEmployee provides a mock function with given fields: ctx, identifier, employee.
func (_m *EmployeeRepoIface) UpdateEmployee(
	ctx context.Context,
	identifier int64,
	employee models.Employee,
) (models.Employee, error) {
	ret := _m.Called(ctx, identifier, employee)

	return ret.Get(0).(models.Employee), ret.Error(1)
}

// DeleteEmployee provides a mock function with given fields: ctx, identifier.
func (_m *EmployeeRepoIface) DeleteEmployee(ctx context.Context, identifier int64) error {
	ret := _m.Called(ctx, identifier)

	return ret.Error(0)
}

// NewEmployeeRepoIface creates a new instance of EmployeeRepoIface. It also registers a testing interface on the mock
// and a cleanup function to assert the mocks expectations.
func NewEmployeeRepoIface(t interface {
	mock.TestingT
	Cleanup(func())
}) *EmployeeRepoIface {
	m := &EmployeeRepoIface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
