package repository

import (
	"context"
	"errors"
	"time"

	"ApparelStoreAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrAdminNotFound = errors.New("admin not found")

type AdminRepository struct {
	DB *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{DB: db}
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	var a model.AdminUser
	query := `SELECT adminid, name, email, passwordhash, failed_attempts, locked_until, created_at
		FROM admin_users WHERE lower(email)=lower($1)`
	if err := r.DB.QueryRow(ctx, query, email).Scan(&a.AdminID, &a.Name, &a.Email,
		&a.PasswordHash, &a.FailedAttempts, &a.LockedUntil, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepository) GetByID(ctx context.Context, adminID int64) (*model.AdminUser, error) {
	var a model.AdminUser
	query := `SELECT adminid, name, email, passwordhash, failed_attempts, locked_until, created_at
		FROM admin_users WHERE adminid=$1`
	if err := r.DB.QueryRow(ctx, query, adminID).Scan(&a.AdminID, &a.Name, &a.Email,
		&a.PasswordHash, &a.FailedAttempts, &a.LockedUntil, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &a, nil
}

// RecordFailedLogin bumps the failure counter and, past the threshold,
// sets the lockout timestamp.
func (r *AdminRepository) RecordFailedLogin(ctx context.Context, adminID int64, lockedUntil *time.Time) error {
	_, err := r.DB.Exec(ctx, `
		UPDATE admin_users SET failed_attempts = failed_attempts + 1, locked_until = $1
		WHERE adminid = $2
	`, lockedUntil, adminID)
	return err
}

// ClearLockout resets failed_attempts and locked_until.
func (r *AdminRepository) ClearLockout(ctx context.Context, adminID int64) error {
	_, err := r.DB.Exec(ctx, `
		UPDATE admin_users SET failed_attempts = 0, locked_until = NULL WHERE adminid = $1
	`, adminID)
	return err
}

// UpdatePassword writes the new hash and clears the lockout state.
func (r *AdminRepository) UpdatePassword(ctx context.Context, adminID int64, passwordHash string) error {
	tag, err := r.DB.Exec(ctx, `
		UPDATE admin_users
		SET passwordhash = $1, failed_attempts = 0, locked_until = NULL
		WHERE adminid = $2
	`, passwordHash, adminID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAdminNotFound
	}
	return nil
}
