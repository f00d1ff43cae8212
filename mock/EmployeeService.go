package mocks

import (
	"context"

	"github.com/UnknownOlympus/ems/internal/models"
	"github.com/stretchr/testify/mock"
)

// EmployeeService is a mock type for the views.EmployeeService type.
type EmployeeService struct {
	mock.Mock
}

// ListEmployees provides a mock function with given fields: ctx.
func (_m *EmployeeService) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	ret := _m.Called(ctx)

	var r0 []models.Employee
	if rf, ok := ret.Get(0).(func(context.Context) []models.Employee); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Employee)
	}

	return r0, ret.Error(1)
}

// GetEmployeeByID provides a mock function with given fields: ctx, id.
func (_m *EmployeeService) GetEmployeeByID(ctx context.Context, id models.ID) (models.Employee, error) {
	ret := _m.Called(ctx, id)

	return ret.Get(0).(models.Employee), ret.Error(1)
}

// CreateEmployee provides a mock function with given fields: ctx, employee.
func (_m *EmployeeService) CreateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error) {
	ret := _m.Called(ctx, employee)

	return ret.Get(0).(models.Employee), ret.Error(1)
}

// UpdateEmployee provides a mock function with given fields: ctx, id, employee.
func (_m *EmployeeService) UpdateEmployee(
	ctx context.Context,
	id models.ID,
	employee models.Employee,
) (models.Employee, error) {
	ret := _m.Called(ctx, id, employee)

	return ret.Get(0).(models.Employee), ret.Error(1)
}

// DeleteEmployee provides a mock function with given fields: ctx, id.
func (_m *EmployeeService) DeleteEmployee(ctx context.Context, id models.ID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

// NewEmployeeService creates a new instance of EmployeeService. It also registers a testing interface on the mock
// and a cleanup function to assert the mocks expectations.
func NewEmployeeService(t interface {
	mock.TestingT
	Cleanup(func())
},
) *EmployeeService {
	m := &EmployeeService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
