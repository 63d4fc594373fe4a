package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hr-service/internal/domain"
)

// EmployeeRepository manages employee persistence.
type EmployeeRepository interface {
	// CreateWithUser inserts the account and its employee record atomically.
	CreateWithUser(ctx context.Context, user *domain.User, emp *domain.Employee) error
	Update(ctx context.Context, emp *domain.Employee) error
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	Count(ctx context.Context) (int64, error)
	SumSalaries(ctx context.Context) (float64, error)
}

type employeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository builds the repository.
func NewEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &employeeRepository{pool: pool}
}

const employeeColumns = `
        id, user_id, employee_id, name, email, dob, gender, marital_status,
        designation, department_id, salary, image, created_at, updated_at`

func (r *employeeRepository) CreateWithUser(ctx context.Context, user *domain.User, emp *domain.Employee) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const userQuery = `
        INSERT INTO users (name, email, password_hash, role, profile_image)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`
	if err := tx.QueryRow(ctx, userQuery,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.ProfileImage,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return translateError(err)
	}

	emp.UserID = user.ID
	const empQuery = `
        INSERT INTO employees (user_id, employee_id, name, email, dob, gender,
            marital_status, designation, department_id, salary, image)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING id, created_at, updated_at`
	if err := tx.QueryRow(ctx, empQuery,
		emp.UserID,
		emp.EmployeeID,
		emp.Name,
		emp.Email,
		emp.DOB,
		emp.Gender,
		emp.MaritalStatus,
		emp.Designation,
		emp.DepartmentID,
		emp.Salary,
		emp.Image,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt); err != nil {
		return translateError(err)
	}

	return tx.Commit(ctx)
}

func (r *employeeRepository) Update(ctx context.Context, emp *domain.Employee) error {
	const query = `
        UPDATE employees SET name=$1, email=$2, dob=$3, gender=$4, marital_status=$5,
            designation=$6, department_id=$7, salary=$8, image=$9, updated_at=NOW()
        WHERE id=$10`
	cmd, err := r.pool.Exec(ctx, query,
		emp.Name,
		emp.Email,
		emp.DOB,
		emp.Gender,
		emp.MaritalStatus,
		emp.Designation,
		emp.DepartmentID,
		emp.Salary,
		emp.Image,
		emp.ID,
	)
	if err != nil {
		return translateError(err)
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id=$1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *employeeRepository) GetByUserID(ctx context.Context, userID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE user_id=$1`
	return r.scanOne(r.pool.QueryRow(ctx, query, userID))
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Employee
	for rows.Next() {
		emp, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *emp)
	}
	return result, rows.Err()
}

func (r *employeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count)
	return count, err
}

func (r *employeeRepository) SumSalaries(ctx context.Context) (float64, error) {
	var total float64
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(salary), 0) FROM employees`).Scan(&total)
	return total, err
}

func (r *employeeRepository) scanOne(row pgx.Row) (*domain.Employee, error) {
	var emp domain.Employee
	if err := row.Scan(
		&emp.ID,
		&emp.UserID,
		&emp.EmployeeID,
		&emp.Name,
		&emp.Email,
		&emp.DOB,
		&emp.Gender,
		&emp.MaritalStatus,
		&emp.Designation,
		&emp.DepartmentID,
		&emp.Salary,
		&emp.Image,
		&emp.CreatedAt,
		&emp.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &emp, nil
}
