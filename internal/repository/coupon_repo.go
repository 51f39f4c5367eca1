package repository

import (
	"context"
	"errors"
	"time"

	"ApparelStoreAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrCouponNotFound = errors.New("coupon not found")

type CouponRepository struct {
	DB *pgxpool.Pool
}

func NewCouponRepository(db *pgxpool.Pool) *CouponRepository {
	return &CouponRepository{DB: db}
}

const couponColumns = `couponid, code, discount_type, discount_value, min_order_value,
		max_discount, usage_limit, used_count, is_active, expires_at, created_at`

func scanCoupon(row pgx.Row) (*model.Coupon, error) {
	var cp model.Coupon
	if err := row.Scan(&cp.CouponID, &cp.Code, &cp.DiscountType, &cp.DiscountValue,
		&cp.MinOrderValue, &cp.MaxDiscount, &cp.UsageLimit, &cp.UsedCount,
		&cp.IsActive, &cp.ExpiresAt, &cp.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}
	return &cp, nil
}

// GetByCode looks a coupon up by its code, case-insensitively.
func (r *CouponRepository) GetByCode(ctx context.Context, code string) (*model.Coupon, error) {
	query := `SELECT ` + couponColumns + ` FROM coupons WHERE lower(code)=lower($1)`
	return scanCoupon(r.DB.QueryRow(ctx, query, code))
}

func (r *CouponRepository) GetByID(ctx context.Context, couponID int64) (*model.Coupon, error) {
	query := `SELECT ` + couponColumns + ` FROM coupons WHERE couponid=$1`
	return scanCoupon(r.DB.QueryRow(ctx, query, couponID))
}

func (r *CouponRepository) List(ctx context.Context) ([]model.Coupon, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+couponColumns+` FROM coupons ORDER BY couponid DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Coupon{}
	for rows.Next() {
		cp, err := scanCoupon(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *cp)
	}
	return out, rows.Err()
}

func (r *CouponRepository) Create(ctx context.Context, cp *model.Coupon) (int64, error) {
	var id int64
	err := r.DB.QueryRow(ctx, `
		INSERT INTO coupons (code, discount_type, discount_value, min_order_value,
			max_discount, usage_limit, used_count, is_active, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, 0, $7, $8, $9)
		RETURNING couponid
	`, cp.Code, cp.DiscountType, cp.DiscountValue, cp.MinOrderValue,
		cp.MaxDiscount, cp.UsageLimit, cp.IsActive, cp.ExpiresAt, time.Now()).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *CouponRepository) Update(ctx context.Context, cp *model.Coupon) error {
	tag, err := r.DB.Exec(ctx, `
		UPDATE coupons SET code=$1, discount_type=$2, discount_value=$3, min_order_value=$4,
			max_discount=$5, usage_limit=$6, is_active=$7, expires_at=$8
		WHERE couponid=$9
	`, cp.Code, cp.DiscountType, cp.DiscountValue, cp.MinOrderValue,
		cp.MaxDiscount, cp.UsageLimit, cp.IsActive, cp.ExpiresAt, cp.CouponID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCouponNotFound
	}
	return nil
}

func (r *CouponRepository) Delete(ctx context.Context, couponID int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM coupons WHERE couponid=$1`, couponID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCouponNotFound
	}
	return nil
}
