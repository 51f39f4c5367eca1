package repository

import (
	"context"
	"errors"
	"time"

	"ApparelStoreAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrCustomerNotFound = errors.New("customer not found")

type CustomerRepository struct {
	DB *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

const customerColumns = `customerid, name, email, phone, passwordhash,
		reset_token, reset_token_expiry, created_at, deleted_at`

func scanCustomer(row pgx.Row) (*model.Customer, error) {
	var cu model.Customer
	if err := row.Scan(&cu.CustomerID, &cu.Name, &cu.Email, &cu.Phone, &cu.PasswordHash,
		&cu.ResetToken, &cu.ResetTokenExpiry, &cu.CreatedAt, &cu.DeletedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &cu, nil
}

// Create inserts a new customer and returns the created customerid
func (r *CustomerRepository) Create(ctx context.Context, name, email, phone, passwordHash string) (int64, error) {
	var id int64
	query := `INSERT INTO customers (name, email, phone, passwordhash, created_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING customerid`
	if err := r.DB.QueryRow(ctx, query, name, email, phone, passwordHash, time.Now()).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE lower(email)=lower($1) AND deleted_at IS NULL`
	return scanCustomer(r.DB.QueryRow(ctx, query, email))
}

func (r *CustomerRepository) GetByID(ctx context.Context, customerID int64) (*model.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customerid=$1 AND deleted_at IS NULL`
	return scanCustomer(r.DB.QueryRow(ctx, query, customerID))
}

func (r *CustomerRepository) EmailOrPhoneExists(ctx context.Context, email, phone string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM customers WHERE lower(email)=lower($1) OR phone=$2)`
	if err := r.DB.QueryRow(ctx, query, email, phone).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// SetResetToken stores a password-reset code and its expiry.
func (r *CustomerRepository) SetResetToken(ctx context.Context, customerID int64, code string, expiry time.Time) error {
	_, err := r.DB.Exec(ctx, `
		UPDATE customers SET reset_token=$1, reset_token_expiry=$2 WHERE customerid=$3
	`, code, expiry, customerID)
	return err
}

// CompletePasswordReset writes the new password hash and clears the reset
// code and expiry in one statement, so a used code can never be replayed.
func (r *CustomerRepository) CompletePasswordReset(ctx context.Context, customerID int64, passwordHash string) error {
	tag, err := r.DB.Exec(ctx, `
		UPDATE customers
		SET passwordhash=$1, reset_token=NULL, reset_token_expiry=NULL
		WHERE customerid=$2
	`, passwordHash, customerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}
	return nil
}
