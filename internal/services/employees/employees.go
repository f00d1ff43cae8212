package employees

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/tamathecxder/randomail"

	"github.com/UnknownOlympus/ems/internal/lib/logger/sl"
	"github.com/UnknownOlympus/ems/internal/models"
	"github.com/UnknownOlympus/ems/internal/repository"
)

var (
	ErrNotFound       = errors.New("employee does not exist")
	ErrDuplicateEmail = errors.New("email is already used by another employee")
	ErrInvalidID      = errors.New("employee identifier must be numeric")
)

var (
	seedFirstNames = []string{"Ada", "Alan", "Grace", "Linus", "Barbara", "Ken", "Margaret", "Dennis"}
	seedLastNames  = []string{"Lovelace", "Turing", "Hopper", "Torvalds", "Liskov", "Thompson", "Hamilton", "Ritchie"}
)

// Staff implements the employee use cases on top of the repository.
type Staff struct {
	log  *slog.Logger
	repo repository.EmployeeRepoIface
}

func NewStaff(log *slog.Logger, repo repository.EmployeeRepoIface) *Staff {
	return &Staff{log: log, repo: repo}
}

func (s *Staff) initLogger(opn string) *slog.Logger {
	return sl.Component(s.log, opn, "employee")
}

func (s *Staff) List(ctx context.Context) ([]models.Employee, error) {
	const opn = "Employee.List"

	employees, err := s.repo.ListEmployees(ctx)
	if err != nil {
		s.initLogger(opn).ErrorContext(ctx, "Failed to list employees", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", opn, err)
	}

	return employees, nil
}

// ListByFirstName returns ErrNotFound when no employee has the first name.
func (s *Staff) ListByFirstName(ctx context.Context, firstName string) ([]models.Employee, error) {
	const opn = "Employee.ListByFirstName"

	employees, err := s.repo.ListEmployeesByFirstName(ctx, firstName)
	if err != nil {
		s.initLogger(opn).ErrorContext(ctx, "Failed to list employees by first name", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", opn, err)
	}
	if len(employees) == 0 {
		return nil, fmt.Errorf("%s: %w", opn, ErrNotFound)
	}

	return employees, nil
}

func (s *Staff) Get(ctx context.Context, id models.ID) (models.Employee, error) {
	const opn = "Employee.Get"

	identifier, err := parseID(opn, id)
	if err != nil {
		return models.Employee{}, err
	}

	employee, err := s.repo.GetEmployeeByID(ctx, identifier)
	if err != nil {
		return models.Employee{}, s.translate(ctx, opn, err)
	}

	return employee, nil
}

// Create stores a new employee; any identifier on the input is ignored.
func (s *Staff) Create(ctx context.Context, employee models.Employee) (models.Employee, error) {
	const opn = "Employee.Create"

	employee.ID = ""
	created, err := s.repo.SaveEmployee(ctx, employee)
	if err != nil {
		return models.Employee{}, s.translate(ctx, opn, err)
	}

	s.initLogger(opn).InfoContext(ctx, "Employee created", slog.String("id", string(created.ID)))

	return created, nil
}

func (s *Staff) Update(ctx context.Context, id models.ID, employee models.Employee) (models.Employee, error) {
	const opn = "Employee.Update"

	identifier, err := parseID(opn, id)
	if err != nil {
		return models.Employee{}, err
	}

	updated, err := s.repo.UpdateEmployee(ctx, identifier, employee)
	if err != nil {
		return models.Employee{}, s.translate(ctx, opn, err)
	}

	s.initLogger(opn).InfoContext(ctx, "Employee updated", slog.String("id", string(updated.ID)))

	return updated, nil
}

func (s *Staff) Delete(ctx context.Context, id models.ID) error {
	const opn = "Employee.Delete"

	identifier, err := parseID(opn, id)
	if err != nil {
		return err
	}

	if err = s.repo.DeleteEmployee(ctx, identifier); err != nil {
		return s.translate(ctx, opn, err)
	}

	s.initLogger(opn).InfoContext(ctx, "Employee deleted", slog.String("id", string(id)))

	return nil
}

// Seed creates count employees with generated names and random emails.
func (s *Staff) Seed(ctx context.Context, count int) ([]models.Employee, error) {
	const opn = "Employee.Seed"
	log := s.initLogger(opn)

	created := make([]models.Employee, 0, count)
	for range count {
		employee := models.Employee{
			FirstName: seedFirstNames[rand.IntN(len(seedFirstNames))], //nolint:gosec // not security sensitive
			LastName:  seedLastNames[rand.IntN(len(seedLastNames))],   //nolint:gosec // not security sensitive
			Email:     randomail.GenerateRandomEmail(),
		}

		saved, err := s.Create(ctx, employee)
		if errors.Is(err, ErrDuplicateEmail) {
			log.DebugContext(ctx, "Generated email is already taken, skipped", "email", employee.Email)
			continue
		}
		if err != nil {
			return created, err
		}
		created = append(created, saved)
	}

	log.InfoContext(ctx, "Seeding completed", "requested", count, "created", len(created))

	return created, nil
}

func (s *Staff) translate(ctx context.Context, opn string, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%s: %w", opn, ErrNotFound)
	case errors.Is(err, repository.ErrDuplicateEmail):
		return fmt.Errorf("%s: %w", opn, ErrDuplicateEmail)
	default:
		s.initLogger(opn).ErrorContext(ctx, "Repository call failed", sl.Err(err))
		return fmt.Errorf("%s: %w", opn, err)
	}
}

func parseID(opn string, id models.ID) (int64, error) {
	identifier, err := id.Int64()
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %w", opn, ErrInvalidID, err)
	}

	return identifier, nil
}
