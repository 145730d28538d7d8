package timesheet

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/domain"
)

// OverrideStore persists manual overrides one cell at a time. Implemented
// by repository.OverrideRepository.
type OverrideStore interface {
	UpsertOverride(ctx context.Context, regionID int64, month time.Time, ov domain.Override) error
	DeleteOverride(ctx context.Context, regionID int64, month time.Time, employeeID string, day int) error
}

// PendingChange is one queued manual edit. A tombstone asks the store to
// delete the persisted override for the cell; it is distinct from writing
// an empty symbol, which never happens.
type PendingChange struct {
	EmployeeID    string
	Day           int
	Symbol        *string
	Tombstone     bool
	DailyWage     *float64
	RoadAllowance *float64
	DrivingPay    *float64
}

// ChangeSet collects unflushed manual edits for one (region, month)
// selection. It is a plain value owned by the caller; nothing module-level
// holds edits, so two grids can never share pending state. Repeated edits
// to the same cell coalesce into the latest one.
type ChangeSet struct {
	items map[CellKey]PendingChange
}

func NewChangeSet() *ChangeSet {
	return &ChangeSet{items: make(map[CellKey]PendingChange)}
}

// Record queues a symbol edit for one cell. An empty or whitespace-only
// symbol becomes a tombstone: a previously saved override has to be
// actively deleted from the store, not overwritten with an empty string.
// Money fields already queued for the same cell are kept.
func (cs *ChangeSet) Record(employeeID string, day int, symbol string) {
	key := CellKey{EmployeeID: employeeID, Day: day}
	change := cs.items[key]
	change.EmployeeID = employeeID
	change.Day = day

	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		change.Symbol = nil
		change.Tombstone = true
	} else {
		change.Symbol = &symbol
		change.Tombstone = false
	}
	cs.items[key] = change
}

// RecordRowFields queues the row-level money fields for an employee.
// They are keyed against day 1 of the month, not per day.
func (cs *ChangeSet) RecordRowFields(employeeID string, dailyWage, roadAllowance, drivingPay *float64) {
	key := CellKey{EmployeeID: employeeID, Day: 1}
	change := cs.items[key]
	change.EmployeeID = employeeID
	change.Day = 1
	if dailyWage != nil {
		change.DailyWage = dailyWage
	}
	if roadAllowance != nil {
		change.RoadAllowance = roadAllowance
	}
	if drivingPay != nil {
		change.DrivingPay = drivingPay
	}
	cs.items[key] = change
}

func (cs *ChangeSet) Len() int {
	return len(cs.items)
}

// Changes returns the pending edits in a stable (employee, day) order.
func (cs *ChangeSet) Changes() []PendingChange {
	out := make([]PendingChange, 0, len(cs.items))
	for _, c := range cs.items {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EmployeeID != out[j].EmployeeID {
			return out[i].EmployeeID < out[j].EmployeeID
		}
		return out[i].Day < out[j].Day
	})
	return out
}

// Apply patches a grid with the pending edits, recomputing every color
// from the symbol. Tombstoned cells show empty until a flush and rebuild
// restore the computed baseline. Cells inside a pre-hire merged span are
// not addressable and are skipped.
func (cs *ChangeSet) Apply(g *domain.Grid) {
	rows := make(map[string]*domain.AttendanceRow, len(g.Rows))
	for i := range g.Rows {
		rows[g.Rows[i].Employee.NationalID] = &g.Rows[i]
	}
	for _, c := range cs.Changes() {
		row, ok := rows[c.EmployeeID]
		if !ok {
			continue
		}
		if c.Symbol != nil || c.Tombstone {
			if c.Day < 1 || c.Day > g.DaysInMonth {
				continue
			}
			if row.PreHire != nil && c.Day <= row.PreHire.Days {
				continue
			}
			if c.Tombstone {
				row.Cells[c.Day-1] = domain.AttendanceCell{}
			} else {
				row.Cells[c.Day-1] = domain.AttendanceCell{Symbol: *c.Symbol, Color: domain.ColorForSymbol(*c.Symbol)}
			}
		}
		if c.DailyWage != nil {
			row.DailyWage = c.DailyWage
		}
		if c.RoadAllowance != nil {
			row.RoadAllowance = c.RoadAllowance
		}
		if c.DrivingPay != nil {
			row.DrivingPay = c.DrivingPay
		}
	}
}

// FlushResult reports how a flush went. A flush is per item, never
// all-or-nothing: some edits may persist while others fail.
type FlushResult struct {
	Saved  int
	Failed int
}

// Flush writes the pending edits to the store one by one, deletes for
// tombstones and upserts for everything else. A tombstoned cell that
// still carries queued money fields is written back with an empty symbol
// instead of deleted, so the money survives the clear. Saved items leave
// the set; failed items stay queued so a later flush retries exactly
// those.
func (cs *ChangeSet) Flush(ctx context.Context, store OverrideStore, regionID int64, month time.Time) FlushResult {
	var res FlushResult
	for _, c := range cs.Changes() {
		var err error
		if c.Tombstone && c.DailyWage == nil && c.RoadAllowance == nil && c.DrivingPay == nil {
			err = store.DeleteOverride(ctx, regionID, month, c.EmployeeID, c.Day)
		} else {
			ov := domain.Override{
				EmployeeID:    c.EmployeeID,
				Day:           c.Day,
				DailyWage:     c.DailyWage,
				RoadAllowance: c.RoadAllowance,
				DrivingPay:    c.DrivingPay,
			}
			if c.Symbol != nil {
				ov.Symbol = *c.Symbol
			}
			err = store.UpsertOverride(ctx, regionID, month, ov)
		}
		if err != nil {
			res.Failed++
			continue
		}
		res.Saved++
		delete(cs.items, CellKey{EmployeeID: c.EmployeeID, Day: c.Day})
	}
	return res
}
