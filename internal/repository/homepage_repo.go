package repository

import (
	"context"
	"errors"

	"ApparelStoreAPI/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrSectionNotFound = errors.New("homepage section not found")

type HomepageRepository struct {
	DB *pgxpool.Pool
}

func NewHomepageRepository(db *pgxpool.Pool) *HomepageRepository {
	return &HomepageRepository{DB: db}
}

// List returns sections in display order. When visibleOnly is set,
// hidden sections are filtered out (storefront view).
func (r *HomepageRepository) List(ctx context.Context, visibleOnly bool) ([]model.HomepageSection, error) {
	query := `SELECT sectionid, title, body, image_url, position, visible
		FROM homepage_sections
		WHERE ($1 = false OR visible)
		ORDER BY position, sectionid`
	rows, err := r.DB.Query(ctx, query, visibleOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.HomepageSection{}
	for rows.Next() {
		var s model.HomepageSection
		if err := rows.Scan(&s.SectionID, &s.Title, &s.Body, &s.ImageURL, &s.Position, &s.Visible); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *HomepageRepository) Create(ctx context.Context, s *model.HomepageSection) (int64, error) {
	var id int64
	err := r.DB.QueryRow(ctx, `
		INSERT INTO homepage_sections (title, body, image_url, position, visible)
		VALUES ($1, $2, $3, $4, $5) RETURNING sectionid
	`, s.Title, s.Body, s.ImageURL, s.Position, s.Visible).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *HomepageRepository) Update(ctx context.Context, s *model.HomepageSection) error {
	tag, err := r.DB.Exec(ctx, `
		UPDATE homepage_sections SET title=$1, body=$2, image_url=$3, position=$4, visible=$5
		WHERE sectionid=$6
	`, s.Title, s.Body, s.ImageURL, s.Position, s.Visible, s.SectionID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSectionNotFound
	}
	return nil
}

func (r *HomepageRepository) Delete(ctx context.Context, sectionID int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM homepage_sections WHERE sectionid=$1`, sectionID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSectionNotFound
	}
	return nil
}
