package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/db"
	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/domain"
)

type RosterRepository struct {
	DB *db.Postgres
}

// ListByRegion returns the personnel roster of a region ordered by name.
// The hire date is nullable for records migrated without one.
func (r RosterRepository) ListByRegion(ctx context.Context, regionID int64) ([]domain.Employee, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT national_id, name, region_id, hire_date
		FROM personnel
		WHERE deleted_at IS NULL AND region_id=$1
		ORDER BY name ASC
	`, regionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Employee
	for rows.Next() {
		var e domain.Employee
		var hireDate pgtype.Date
		if err := rows.Scan(&e.NationalID, &e.Name, &e.RegionID, &hireDate); err != nil {
			return nil, err
		}
		if hireDate.Valid {
			t := hireDate.Time
			e.HireDate = &t
		}
		items = append(items, e)
	}
	return items, rows.Err()
}
