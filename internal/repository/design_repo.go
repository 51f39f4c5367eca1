package repository

import (
	"context"
	"errors"
	"time"

	"ApparelStoreAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrDesignNotFound = errors.New("design not found")

type DesignRepository struct {
	DB *pgxpool.Pool
}

func NewDesignRepository(db *pgxpool.Pool) *DesignRepository {
	return &DesignRepository{DB: db}
}

func (r *DesignRepository) Create(ctx context.Context, d *model.CustomDesign) (int64, error) {
	var id int64
	err := r.DB.QueryRow(ctx, `
		INSERT INTO custom_designs (customerid, productid, image_url, placement, created_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING designid
	`, d.CustomerID, d.ProductID, d.ImageURL, d.Placement, time.Now()).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *DesignRepository) GetByID(ctx context.Context, designID int64) (*model.CustomDesign, error) {
	var d model.CustomDesign
	err := r.DB.QueryRow(ctx, `
		SELECT designid, customerid, productid, image_url, placement, created_at
		FROM custom_designs WHERE designid=$1
	`, designID).Scan(&d.DesignID, &d.CustomerID, &d.ProductID, &d.ImageURL, &d.Placement, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDesignNotFound
		}
		return nil, err
	}
	return &d, nil
}
