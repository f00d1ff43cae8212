package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/UnknownOlympus/ems/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const uniqueViolation = "23505"

func (r *Repository) observe(queryType string, startTime time.Time) {
	r.metrics.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(startTime).Seconds())
}

// ListEmployees returns every employee ordered by identifier.
func (r *Repository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	defer r.observe("list_employees", time.Now())

	query := `SELECT id, first_name, last_name, email_id FROM employees ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return collectEmployees(rows)
}

// ListEmployeesByFirstName returns the employees with exactly the given first name.
func (r *Repository) ListEmployeesByFirstName(ctx context.Context, firstName string) ([]models.Employee, error) {
	defer r.observe("list_employees_by_first_name", time.Now())

	query := `SELECT id, first_name, last_name, email_id FROM employees WHERE first_name = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, firstName)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees by first name: %w", err)
	}

	return collectEmployees(rows)
}

// GetEmployeeByID retrieves an employee from the database by their ID.
func (r *Repository) GetEmployeeByID(ctx context.Context, identifier int64) (models.Employee, error) {
	defer r.observe("get_employee_by_id", time.Now())

	query := `SELECT id, first_name, last_name, email_id FROM employees WHERE id = $1`

	result, err := scanEmployee(r.db.QueryRow(ctx, query, identifier))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Employee{}, ErrNotFound
	}
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return result, nil
}

// SaveEmployee inserts a new employee and returns it with the identifier assigned by the database.
func (r *Repository) SaveEmployee(ctx context.Context, employee models.Employee) (models.Employee, error) {
	defer r.observe("save_employee", time.Now())

	query := `
		INSERT INTO employees (first_name, last_name, email_id)
		VALUES ($1, $2, $3)
		RETURNING id, first_name, last_name, email_id;
	`

	result, err := scanEmployee(r.db.QueryRow(ctx, query, employee.FirstName, employee.LastName, employee.Email))
	if isUniqueViolation(err) {
		return models.Employee{}, ErrDuplicateEmail
	}
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to save employee: %w", err)
	}

	return result, nil
}

// UpdateEmployee overwrites the employee's names and email.
func (r *Repository) UpdateEmployee(
	ctx context.Context,
	identifier int64,
	employee models.Employee,
) (models.Employee, error) {
	defer r.observe("update_employee", time.Now())

	query := `
		UPDATE employees
		SET first_name = $2, last_name = $3, email_id = $4
		WHERE id = $1
		RETURNING id, first_name, last_name, email_id;
	`

	result, err := scanEmployee(
		r.db.QueryRow(ctx, query, identifier, employee.FirstName, employee.LastName, employee.Email))
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return models.Employee{}, ErrNotFound
	case isUniqueViolation(err):
		return models.Employee{}, ErrDuplicateEmail
	case err != nil:
		return models.Employee{}, fmt.Errorf("failed to update employee data: %w", err)
	}

	return result, nil
}

// DeleteEmployee removes an employee from the database.
func (r *Repository) DeleteEmployee(ctx context.Context, identifier int64) error {
	defer r.observe("delete_employee", time.Now())

	tag, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, identifier)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func scanEmployee(row pgx.Row) (models.Employee, error) {
	var (
		identifier int64
		firstName  pgtype.Text
		lastName   pgtype.Text
		email      string
	)

	// first_name and last_name are nullable; NULL reads as an empty name.
	if err := row.Scan(&identifier, &firstName, &lastName, &email); err != nil {
		return models.Employee{}, err //nolint:wrapcheck // wrapped by the caller
	}

	return models.Employee{
		ID:        models.IDFromInt(identifier),
		FirstName: firstName.String,
		LastName:  lastName.String,
		Email:     email,
	}, nil
}

func collectEmployees(rows pgx.Rows) ([]models.Employee, error) {
	defer rows.Close()

	result := make([]models.Employee, 0)
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		result = append(result, employee)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee rows: %w", err)
	}

	return result, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
