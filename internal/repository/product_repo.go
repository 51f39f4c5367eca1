package repository

import (
	"context"
	"errors"
	"time"

	"ApparelStoreAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrProductNotFound = errors.New("product not found")

type ProductRepository struct {
	DB *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{DB: db}
}

const productColumns = `productid, categoryid, name, description, price, colors, sizes,
		image_url, is_active, created_at, deleted_at`

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	if err := row.Scan(&p.ProductID, &p.CategoryID, &p.Name, &p.Description, &p.Price,
		&p.Colors, &p.Sizes, &p.ImageURL, &p.IsActive, &p.CreatedAt, &p.DeletedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

// List returns active, non-deleted products, optionally filtered by category.
func (r *ProductRepository) List(ctx context.Context, categoryID *int64, limit, offset int) ([]model.Product, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	query := `SELECT ` + productColumns + ` FROM products
		WHERE deleted_at IS NULL AND is_active
		AND ($1::bigint IS NULL OR categoryid = $1)
		ORDER BY productid DESC LIMIT $2 OFFSET $3`
	rows, err := r.DB.Query(ctx, query, categoryID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *ProductRepository) GetByID(ctx context.Context, productID int64) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE productid=$1 AND deleted_at IS NULL`
	return scanProduct(r.DB.QueryRow(ctx, query, productID))
}

func (r *ProductRepository) Create(ctx context.Context, p *model.Product) (int64, error) {
	var id int64
	err := r.DB.QueryRow(ctx, `
		INSERT INTO products (categoryid, name, description, price, colors, sizes, image_url, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING productid
	`, p.CategoryID, p.Name, p.Description, p.Price, p.Colors, p.Sizes, p.ImageURL, p.IsActive, time.Now()).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *ProductRepository) Update(ctx context.Context, p *model.Product) error {
	tag, err := r.DB.Exec(ctx, `
		UPDATE products SET categoryid=$1, name=$2, description=$3, price=$4,
			colors=$5, sizes=$6, image_url=$7, is_active=$8
		WHERE productid=$9 AND deleted_at IS NULL
	`, p.CategoryID, p.Name, p.Description, p.Price, p.Colors, p.Sizes, p.ImageURL, p.IsActive, p.ProductID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

// SoftDelete marks a product deleted; it stays referenced by old order items.
func (r *ProductRepository) SoftDelete(ctx context.Context, productID int64) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE products SET deleted_at=$1 WHERE productid=$2 AND deleted_at IS NULL`,
		time.Now(), productID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}
