package repository

import (
	"context"
	"errors"

	"ApparelStoreAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrCategoryNotFound = errors.New("category not found")

type CategoryRepository struct {
	DB *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT categoryid, name, slug, sort_order FROM categories ORDER BY sort_order, categoryid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Category{}
	for rows.Next() {
		var ct model.Category
		if err := rows.Scan(&ct.CategoryID, &ct.Name, &ct.Slug, &ct.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, ct)
	}
	return out, rows.Err()
}

func (r *CategoryRepository) GetByID(ctx context.Context, categoryID int64) (*model.Category, error) {
	var ct model.Category
	err := r.DB.QueryRow(ctx,
		`SELECT categoryid, name, slug, sort_order FROM categories WHERE categoryid=$1`,
		categoryID).Scan(&ct.CategoryID, &ct.Name, &ct.Slug, &ct.SortOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &ct, nil
}

func (r *CategoryRepository) Create(ctx context.Context, ct *model.Category) (int64, error) {
	var id int64
	err := r.DB.QueryRow(ctx,
		`INSERT INTO categories (name, slug, sort_order) VALUES ($1, $2, $3) RETURNING categoryid`,
		ct.Name, ct.Slug, ct.SortOrder).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *CategoryRepository) Update(ctx context.Context, ct *model.Category) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE categories SET name=$1, slug=$2, sort_order=$3 WHERE categoryid=$4`,
		ct.Name, ct.Slug, ct.SortOrder, ct.CategoryID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, categoryID int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM categories WHERE categoryid=$1`, categoryID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
