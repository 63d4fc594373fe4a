package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hr-service/internal/domain"
)

// LeaveRepository manages leave request persistence.
type LeaveRepository interface {
	Create(ctx context.Context, leave *domain.Leave) error
	UpdateStatus(ctx context.Context, id string, status domain.LeaveStatus) error
	GetByID(ctx context.Context, id string) (*domain.Leave, error)
	List(ctx context.Context, userID string) ([]domain.LeaveWithMeta, error)
	CountByStatus(ctx context.Context) (map[domain.LeaveStatus]int64, error)
}

type leaveRepository struct {
	pool *pgxpool.Pool
}

// NewLeaveRepository builds the repository.
func NewLeaveRepository(pool *pgxpool.Pool) LeaveRepository {
	return &leaveRepository{pool: pool}
}

func (r *leaveRepository) Create(ctx context.Context, leave *domain.Leave) error {
	const query = `
        INSERT INTO leaves (user_id, leave_type, start_date, end_date, reason, status)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		leave.UserID,
		leave.LeaveType,
		leave.StartDate,
		leave.EndDate,
		leave.Reason,
		leave.Status,
	).Scan(&leave.ID, &leave.CreatedAt, &leave.UpdatedAt)
	return translateError(err)
}

func (r *leaveRepository) UpdateStatus(ctx context.Context, id string, status domain.LeaveStatus) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE leaves SET status=$1, updated_at=NOW() WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *leaveRepository) GetByID(ctx context.Context, id string) (*domain.Leave, error) {
	const query = `
        SELECT id, user_id, leave_type, start_date, end_date, reason, status, created_at, updated_at
        FROM leaves WHERE id=$1`
	var leave domain.Leave
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&leave.ID,
		&leave.UserID,
		&leave.LeaveType,
		&leave.StartDate,
		&leave.EndDate,
		&leave.Reason,
		&leave.Status,
		&leave.CreatedAt,
		&leave.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &leave, nil
}

// List returns leaves newest first, enriched with employee metadata when the
// requesting user has an employee record. Empty userID lists all leaves.
func (r *leaveRepository) List(ctx context.Context, userID string) ([]domain.LeaveWithMeta, error) {
	const query = `
        SELECT l.id, l.user_id, l.leave_type, l.start_date, l.end_date, l.reason,
               l.status, l.created_at, l.updated_at,
               COALESCE(u.name, ''), COALESCE(e.employee_id, ''), COALESCE(d.name, '')
        FROM leaves l
        JOIN users u ON u.id = l.user_id
        LEFT JOIN employees e ON e.user_id = l.user_id
        LEFT JOIN departments d ON d.id = e.department_id
        WHERE ($1 = '' OR l.user_id::text = $1)
        ORDER BY l.created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.LeaveWithMeta
	for rows.Next() {
		var lv domain.LeaveWithMeta
		if err := rows.Scan(
			&lv.ID,
			&lv.UserID,
			&lv.LeaveType,
			&lv.StartDate,
			&lv.EndDate,
			&lv.Reason,
			&lv.Status,
			&lv.CreatedAt,
			&lv.UpdatedAt,
			&lv.EmployeeName,
			&lv.EmployeeNumber,
			&lv.DepartmentName,
		); err != nil {
			return nil, err
		}
		result = append(result, lv)
	}
	return result, rows.Err()
}

func (r *leaveRepository) CountByStatus(ctx context.Context) (map[domain.LeaveStatus]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM leaves GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.LeaveStatus]int64)
	for rows.Next() {
		var status domain.LeaveStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}
