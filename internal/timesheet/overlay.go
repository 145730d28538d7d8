package timesheet

import (
	"strings"
	"time"

	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/domain"
)

// CellKey addresses one (employee, day) cell of the monthly grid.
type CellKey struct {
	EmployeeID string
	Day        int
}

// Approved reports whether a leave record counts as approved. The
// predicate is deliberately permissive: historical records carry their
// approval in the status text, newer ones only in the timestamp, and a
// few imports used bare numeric codes.
func Approved(rec domain.LeaveRecord) bool {
	if rec.ApprovedAt != nil {
		return true
	}
	status := strings.ToLower(strings.TrimSpace(rec.StatusText))
	if status == "approved" || strings.Contains(status, "onayland") {
		return true
	}
	switch status {
	case "1", "2":
		return true
	}
	return false
}

// leavePriority orders leave types for conflict resolution when two
// approved records cover the same employee and day. Higher wins.
func leavePriority(t domain.LeaveType) int {
	switch t {
	case domain.LeaveAnnual:
		return 4
	case domain.LeaveMedical:
		return 3
	case domain.LeavePaid:
		return 2
	case domain.LeaveUnpaid:
		return 1
	default:
		return 0
	}
}

// BuildOverlay expands approved leave records into per-cell leave types
// for the visible month. Records are clamped to the month; days outside
// [start, end] of the month contribute nothing. Overlapping approved
// records for the same cell resolve by leave-type priority, then by the
// earlier start date, so the result does not depend on input order.
func BuildOverlay(monthStart time.Time, daysInMonth int, records []domain.LeaveRecord) map[CellKey]domain.LeaveType {
	monthEnd := monthStart.AddDate(0, 0, daysInMonth-1)
	winners := make(map[CellKey]domain.LeaveRecord)

	for _, rec := range records {
		if !Approved(rec) {
			continue
		}
		start, end := rec.Start, rec.End
		if end.Before(start) {
			continue
		}
		if start.Before(monthStart) {
			start = monthStart
		}
		if end.After(monthEnd) {
			end = monthEnd
		}
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			key := CellKey{EmployeeID: rec.EmployeeID, Day: d.Day()}
			cur, ok := winners[key]
			if !ok || beats(rec, cur) {
				winners[key] = rec
			}
		}
	}

	overlay := make(map[CellKey]domain.LeaveType, len(winners))
	for key, rec := range winners {
		overlay[key] = rec.Type
	}
	return overlay
}

func beats(a, b domain.LeaveRecord) bool {
	pa, pb := leavePriority(a.Type), leavePriority(b.Type)
	if pa != pb {
		return pa > pb
	}
	return a.Start.Before(b.Start)
}
