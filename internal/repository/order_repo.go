package repository

import (
	"context"
	"errors"
	"time"

	"ApparelStoreAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderRepository struct {
	DB *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{DB: db}
}

const orderColumns = `orderid, customerid, customer_name, phone, address, status, payment_status,
		totalprice, shipping_cost, couponid, discount, notes, admin_notes, created_at, updated_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	if err := row.Scan(&o.OrderID, &o.CustomerID, &o.CustomerName, &o.Phone, &o.Address,
		&o.Status, &o.PaymentStatus, &o.TotalPrice, &o.ShippingCost, &o.CouponID,
		&o.Discount, &o.Notes, &o.AdminNotes, &o.CreatedAt, &o.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &o, nil
}

// GetOrderByID returns the order row for the given orderid
func (r *OrderRepository) GetOrderByID(ctx context.Context, orderID int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE orderid=$1`
	return scanOrder(r.DB.QueryRow(ctx, query, orderID))
}

// ListOrders returns orders for the back-office, newest first, optionally
// filtered by status.
func (r *OrderRepository) ListOrders(ctx context.Context, status string, limit, offset int) ([]model.Order, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	query := `SELECT ` + orderColumns + ` FROM orders
		WHERE ($1 = '' OR status = $1)
		ORDER BY orderid DESC LIMIT $2 OFFSET $3`
	rows, err := r.DB.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

// GetItems returns the line items of an order.
func (r *OrderRepository) GetItems(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	query := `SELECT itemid, orderid, product_name, quantity, unitprice, subtotal, color, size, designid
		FROM order_items WHERE orderid=$1 ORDER BY itemid`
	rows, err := r.DB.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.OrderItem{}
	for rows.Next() {
		var it model.OrderItem
		if err := rows.Scan(&it.ItemID, &it.OrderID, &it.ProductName, &it.Quantity,
			&it.UnitPrice, &it.Subtotal, &it.Color, &it.Size, &it.DesignID); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// GetHistory returns the append-only status history of an order, oldest first.
func (r *OrderRepository) GetHistory(ctx context.Context, orderID int64) ([]model.StatusHistory, error) {
	query := `SELECT historyid, orderid, old_status, new_status, note, changed_by, changed_at
		FROM status_history WHERE orderid=$1 ORDER BY historyid`
	rows, err := r.DB.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.StatusHistory{}
	for rows.Next() {
		var h model.StatusHistory
		if err := rows.Scan(&h.HistoryID, &h.OrderID, &h.OldStatus, &h.NewStatus,
			&h.Note, &h.ChangedBy, &h.ChangedAt); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// UpdateStatusWithHistory sets the order status and appends exactly one
// history row in a single transaction, so a status never changes without
// its audit entry.
func (r *OrderRepository) UpdateStatusWithHistory(ctx context.Context, orderID int64, oldStatus, newStatus, note, changedBy string) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	tag, err := tx.Exec(ctx,
		`UPDATE orders SET status=$1, updated_at=$2 WHERE orderid=$3`,
		newStatus, now, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO status_history (orderid, old_status, new_status, note, changed_by, changed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, orderID, oldStatus, newStatus, note, changedBy, now)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// UpdateAdminFields updates payment status and/or admin notes; nil means
// leave the column untouched.
func (r *OrderRepository) UpdateAdminFields(ctx context.Context, orderID int64, paymentStatus, adminNotes *string) error {
	tag, err := r.DB.Exec(ctx, `
		UPDATE orders SET
			payment_status = COALESCE($1, payment_status),
			admin_notes    = COALESCE($2, admin_notes),
			updated_at     = $3
		WHERE orderid = $4
	`, paymentStatus, adminNotes, time.Now(), orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// HardDelete permanently removes the order with its items and history.
func (r *OrderRepository) HardDelete(ctx context.Context, orderID int64) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE orderid=$1`, orderID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM status_history WHERE orderid=$1`, orderID); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `DELETE FROM orders WHERE orderid=$1`, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}
	return tx.Commit(ctx)
}

// CreateOrder inserts the order and its items, and redeems the coupon
// (used_count bump) when one was applied, all in one transaction.
func (r *OrderRepository) CreateOrder(ctx context.Context, o *model.Order) (int64, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	var orderID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO orders (customerid, customer_name, phone, address, status, payment_status,
			totalprice, shipping_cost, couponid, discount, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
		RETURNING orderid
	`, o.CustomerID, o.CustomerName, o.Phone, o.Address, o.Status, o.PaymentStatus,
		o.TotalPrice, o.ShippingCost, o.CouponID, o.Discount, o.Notes, now).Scan(&orderID)
	if err != nil {
		return 0, err
	}

	for _, it := range o.Items {
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items (orderid, product_name, quantity, unitprice, subtotal, color, size, designid)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, orderID, it.ProductName, it.Quantity, it.UnitPrice, it.Subtotal, it.Color, it.Size, it.DesignID)
		if err != nil {
			return 0, err
		}
	}

	if o.CouponID != nil {
		_, err = tx.Exec(ctx,
			`UPDATE coupons SET used_count = used_count + 1 WHERE couponid=$1`, *o.CouponID)
		if err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return orderID, nil
}
