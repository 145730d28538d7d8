package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/db"
	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/domain"
)

type LeaveRepository struct {
	DB *db.Postgres
}

// ListOverlapping returns every leave record of a region's personnel that
// overlaps [from, to]. Approval is not filtered here; the engine applies
// its own predicate over status text and approval timestamp.
func (r LeaveRepository) ListOverlapping(ctx context.Context, regionID int64, from, to time.Time) ([]domain.LeaveRecord, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT l.id, l.national_id, l.leave_type, l.start_date, l.end_date, l.status_text, l.approved_at
		FROM leave_records l
		JOIN personnel p ON p.national_id = l.national_id AND p.deleted_at IS NULL
		WHERE p.region_id=$1
		  AND l.deleted_at IS NULL
		  AND l.start_date <= $3
		  AND l.end_date >= $2
		ORDER BY l.start_date ASC, l.id ASC
	`, regionID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.LeaveRecord
	for rows.Next() {
		var rec domain.LeaveRecord
		var leaveType string
		var approvedAt pgtype.Timestamptz
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &leaveType, &rec.Start, &rec.End, &rec.StatusText, &approvedAt); err != nil {
			return nil, err
		}
		rec.Type = domain.LeaveType(leaveType)
		if approvedAt.Valid {
			t := approvedAt.Time
			rec.ApprovedAt = &t
		}
		items = append(items, rec)
	}
	return items, rows.Err()
}
