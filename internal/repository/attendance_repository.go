package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hr-service/internal/domain"
)

// AttendanceRepository manages check-in records. The attendance table carries
// a unique compound key on (user_id, date); Create surfaces a losing
// concurrent insert as ErrDuplicateKey so the caller can report the check-in
// as already recorded.
type AttendanceRepository interface {
	Create(ctx context.Context, att *domain.Attendance) error
	ExistsForUserAndDate(ctx context.Context, userID, date string) (bool, error)
	List(ctx context.Context, filter domain.AttendanceFilter) ([]domain.Attendance, error)
	CountByDate(ctx context.Context, date string) (int64, error)
}

type attendanceRepository struct {
	pool *pgxpool.Pool
}

// NewAttendanceRepository builds the repository.
func NewAttendanceRepository(pool *pgxpool.Pool) AttendanceRepository {
	return &attendanceRepository{pool: pool}
}

func (r *attendanceRepository) Create(ctx context.Context, att *domain.Attendance) error {
	const query = `
        INSERT INTO attendance (user_id, employee_id, date, time, method)
        VALUES ($1, NULLIF($2,''), $3, $4, $5)
        RETURNING id, created_at`
	err := r.pool.QueryRow(ctx, query,
		att.UserID,
		att.EmployeeID,
		att.Date,
		att.Time,
		att.Method,
	).Scan(&att.ID, &att.CreatedAt)
	return translateError(err)
}

func (r *attendanceRepository) ExistsForUserAndDate(ctx context.Context, userID, date string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM attendance WHERE user_id=$1 AND date=$2)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, userID, date).Scan(&exists)
	return exists, err
}

func (r *attendanceRepository) List(ctx context.Context, filter domain.AttendanceFilter) ([]domain.Attendance, error) {
	const query = `
        SELECT id, user_id, COALESCE(employee_id, ''), date, time, method, created_at
        FROM attendance
        WHERE ($1 = '' OR date = $1)
          AND ($2 = '' OR user_id::text = $2)
        ORDER BY time DESC`

	rows, err := r.pool.Query(ctx, query, filter.Date, filter.UserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Attendance
	for rows.Next() {
		var att domain.Attendance
		if err := rows.Scan(
			&att.ID,
			&att.UserID,
			&att.EmployeeID,
			&att.Date,
			&att.Time,
			&att.Method,
			&att.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, att)
	}
	return result, rows.Err()
}

func (r *attendanceRepository) CountByDate(ctx context.Context, date string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM attendance WHERE date=$1`, date).Scan(&count)
	return count, err
}
