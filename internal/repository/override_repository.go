package repository

import (
	"context"
	"time"

	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/db"
	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/domain"
)

// OverrideRepository persists manual timesheet corrections, one row per
// (region, month, employee, day). Only the symbol and the row-level money
// fields are stored; cell colors are always re-derived from the symbol.
type OverrideRepository struct {
	DB *db.Postgres
}

// List returns all stored overrides of one (region, month).
func (r OverrideRepository) List(ctx context.Context, regionID int64, month time.Time) ([]domain.Override, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT national_id, day, symbol, daily_wage, road_allowance, driving_pay
		FROM timesheet_overrides
		WHERE region_id=$1 AND month=$2
		ORDER BY national_id ASC, day ASC
	`, regionID, monthKey(month))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Override
	for rows.Next() {
		var ov domain.Override
		if err := rows.Scan(&ov.EmployeeID, &ov.Day, &ov.Symbol, &ov.DailyWage, &ov.RoadAllowance, &ov.DrivingPay); err != nil {
			return nil, err
		}
		items = append(items, ov)
	}
	return items, rows.Err()
}

// UpsertOverride stores one cell correction, replacing any previous one
// for the same cell. Implements timesheet.OverrideStore.
func (r OverrideRepository) UpsertOverride(ctx context.Context, regionID int64, month time.Time, ov domain.Override) error {
	_, err := r.DB.Pool.Exec(ctx, `
		INSERT INTO timesheet_overrides (region_id, month, national_id, day, symbol, daily_wage, road_allowance, driving_pay, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8, now(), now())
		ON CONFLICT (region_id, month, national_id, day)
		DO UPDATE SET
			symbol=EXCLUDED.symbol,
			daily_wage=COALESCE(EXCLUDED.daily_wage, timesheet_overrides.daily_wage),
			road_allowance=COALESCE(EXCLUDED.road_allowance, timesheet_overrides.road_allowance),
			driving_pay=COALESCE(EXCLUDED.driving_pay, timesheet_overrides.driving_pay),
			updated_at=now()
	`, regionID, monthKey(month), ov.EmployeeID, ov.Day, ov.Symbol, ov.DailyWage, ov.RoadAllowance, ov.DrivingPay)
	return err
}

// DeleteOverride removes the stored override for one cell. A row that
// also holds row-level money fields only has its symbol cleared, so a
// tombstone cannot wipe a stored wage. Deleting a cell that was never
// overridden is not an error.
func (r OverrideRepository) DeleteOverride(ctx context.Context, regionID int64, month time.Time, employeeID string, day int) error {
	tag, err := r.DB.Pool.Exec(ctx, `
		UPDATE timesheet_overrides
		SET symbol='', updated_at=now()
		WHERE region_id=$1 AND month=$2 AND national_id=$3 AND day=$4
		  AND (daily_wage IS NOT NULL OR road_allowance IS NOT NULL OR driving_pay IS NOT NULL)
	`, regionID, monthKey(month), employeeID, day)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}
	_, err = r.DB.Pool.Exec(ctx, `
		DELETE FROM timesheet_overrides
		WHERE region_id=$1 AND month=$2 AND national_id=$3 AND day=$4
	`, regionID, monthKey(month), employeeID, day)
	return err
}

func monthKey(month time.Time) time.Time {
	return time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
}
