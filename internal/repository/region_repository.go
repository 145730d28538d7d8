package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/db"
	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/domain"
)

type RegionRepository struct {
	DB *db.Postgres
}

// List returns all active regions ordered alphabetically.
func (r RegionRepository) List(ctx context.Context) ([]domain.Region, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, name, created_at, updated_at
		FROM regions
		WHERE deleted_at IS NULL
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Region
	for rows.Next() {
		var region domain.Region
		if err := rows.Scan(&region.ID, &region.Name, &region.CreatedAt, &region.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, region)
	}
	return items, rows.Err()
}

func (r RegionRepository) Get(ctx context.Context, id int64) (*domain.Region, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		SELECT id, name, created_at, updated_at
		FROM regions
		WHERE deleted_at IS NULL AND id=$1
	`, id)
	var region domain.Region
	if err := row.Scan(&region.ID, &region.Name, &region.CreatedAt, &region.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &region, nil
}
