package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hr-service/internal/domain"
)

// QRTokenRepository manages the daily attendance secrets. The qr_tokens table
// carries a unique index on date; Create surfaces a losing concurrent insert
// as ErrDuplicateKey.
type QRTokenRepository interface {
	Create(ctx context.Context, token *domain.QRToken) error
	// Replace deletes any row for token.Date and inserts token in one
	// transaction, so a failed insert never leaves the day without a secret.
	Replace(ctx context.Context, token *domain.QRToken) error
	GetByDate(ctx context.Context, date string) (*domain.QRToken, error)
	GetByTokenAndDate(ctx context.Context, value, date string) (*domain.QRToken, error)
}

type qrTokenRepository struct {
	pool *pgxpool.Pool
}

// NewQRTokenRepository builds the repository.
func NewQRTokenRepository(pool *pgxpool.Pool) QRTokenRepository {
	return &qrTokenRepository{pool: pool}
}

const qrTokenInsert = `
        INSERT INTO qr_tokens (token, date)
        VALUES ($1,$2)
        RETURNING id, created_at`

func (r *qrTokenRepository) Create(ctx context.Context, token *domain.QRToken) error {
	err := r.pool.QueryRow(ctx, qrTokenInsert, token.Token, token.Date).
		Scan(&token.ID, &token.CreatedAt)
	return translateError(err)
}

func (r *qrTokenRepository) Replace(ctx context.Context, token *domain.QRToken) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM qr_tokens WHERE date=$1`, token.Date); err != nil {
		return err
	}
	if err := tx.QueryRow(ctx, qrTokenInsert, token.Token, token.Date).
		Scan(&token.ID, &token.CreatedAt); err != nil {
		return translateError(err)
	}
	return tx.Commit(ctx)
}

func (r *qrTokenRepository) GetByDate(ctx context.Context, date string) (*domain.QRToken, error) {
	const query = `SELECT id, token, date, created_at FROM qr_tokens WHERE date=$1`
	return r.scanOne(r.pool.QueryRow(ctx, query, date))
}

func (r *qrTokenRepository) GetByTokenAndDate(ctx context.Context, value, date string) (*domain.QRToken, error) {
	const query = `SELECT id, token, date, created_at FROM qr_tokens WHERE token=$1 AND date=$2`
	return r.scanOne(r.pool.QueryRow(ctx, query, value, date))
}

func (r *qrTokenRepository) scanOne(row pgx.Row) (*domain.QRToken, error) {
	var token domain.QRToken
	if err := row.Scan(&token.ID, &token.Token, &token.Date, &token.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, err
	}
	return &token, nil
}
