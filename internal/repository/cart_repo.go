package repository

import (
	"context"
	"errors"
	"time"

	"ApparelStoreAPI/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CartRepository struct {
	DB *pgxpool.Pool
}

func NewCartRepository(db *pgxpool.Pool) *CartRepository {
	return &CartRepository{DB: db}
}

// GetItems returns the customer's cart joined with current product data.
func (r *CartRepository) GetItems(ctx context.Context, customerID int64) ([]model.CartItem, error) {
	query := `
		SELECT ci.cartitemid, ci.customerid, ci.productid, ci.quantity, ci.color, ci.size,
		       ci.designid, ci.added_at, p.name, p.price
		FROM cart_items ci
		JOIN products p ON p.productid = ci.productid AND p.deleted_at IS NULL
		WHERE ci.customerid = $1
		ORDER BY ci.cartitemid`
	rows, err := r.DB.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.CartItem{}
	for rows.Next() {
		var it model.CartItem
		if err := rows.Scan(&it.CartItemID, &it.CustomerID, &it.ProductID, &it.Quantity,
			&it.Color, &it.Size, &it.DesignID, &it.AddedAt, &it.ProductName, &it.UnitPrice); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// AddOrIncrementItem inserts an item or bumps quantity when the same
// product/color/size is already in the cart.
func (r *CartRepository) AddOrIncrementItem(ctx context.Context, customerID, productID int64, qty int, color, size string, designID *int64) error {
	query := `
		INSERT INTO cart_items (customerid, productid, quantity, color, size, designid, added_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (customerid, productid, color, size)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
	`
	_, err := r.DB.Exec(ctx, query, customerID, productID, qty, color, size, designID, time.Now())
	return err
}

// SetItemQuantity sets exact quantity for a cart item owned by the customer.
func (r *CartRepository) SetItemQuantity(ctx context.Context, customerID, cartItemID int64, qty int) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE cart_items SET quantity=$1 WHERE cartitemid=$2 AND customerid=$3`,
		qty, cartItemID, customerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("cart item not found")
	}
	return nil
}

func (r *CartRepository) RemoveItem(ctx context.Context, customerID, cartItemID int64) error {
	_, err := r.DB.Exec(ctx,
		`DELETE FROM cart_items WHERE cartitemid=$1 AND customerid=$2`, cartItemID, customerID)
	return err
}

func (r *CartRepository) Clear(ctx context.Context, customerID int64) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM cart_items WHERE customerid=$1`, customerID)
	return err
}
