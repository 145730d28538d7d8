package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/db"
	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/domain"
)

type CalendarRepository struct {
	DB *db.Postgres
}

// GetTemplate loads the painted calendar of one (region, month).
// ErrNotFound means the month was never painted, which is a different
// state from a painted month with no special days: the header row exists
// but has no day rows.
func (r CalendarRepository) GetTemplate(ctx context.Context, regionID int64, month time.Time) (*domain.CalendarTemplate, error) {
	monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)

	var templateID int64
	err := r.DB.Pool.QueryRow(ctx, `
		SELECT id
		FROM calendar_templates
		WHERE region_id=$1 AND month=$2
	`, regionID, monthStart).Scan(&templateID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rows, err := r.DB.Pool.Query(ctx, `
		SELECT day, label, is_holiday, is_weekly_rest
		FROM calendar_template_days
		WHERE template_id=$1
		ORDER BY day ASC
	`, templateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tpl := domain.CalendarTemplate{
		RegionID: regionID,
		Month:    monthStart,
		Days:     make(map[int]domain.TemplateEntry),
	}
	for rows.Next() {
		var day int
		var entry domain.TemplateEntry
		if err := rows.Scan(&day, &entry.Label, &entry.Holiday, &entry.WeeklyRest); err != nil {
			return nil, err
		}
		tpl.Days[day] = entry
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &tpl, nil
}
