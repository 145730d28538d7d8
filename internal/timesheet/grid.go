package timesheet

import (
	"fmt"
	"time"

	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/domain"
)

// BuildGrid composes the painted calendar, the approved-leave overlay and
// any persisted manual overrides into one row per roster employee. It is
// pure: same inputs, same grid. Row order follows the roster.
func BuildGrid(region domain.Region, month time.Time, roster []domain.Employee, tpl domain.CalendarTemplate, leaves []domain.LeaveRecord, overrides []domain.Override) domain.Grid {
	monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	days := DaysInMonth(monthStart)
	classes := ClassifyMonth(tpl, days)
	overlay := BuildOverlay(monthStart, days, leaves)

	manual := make(map[CellKey]domain.Override, len(overrides))
	rowFields := make(map[string]domain.Override)
	for _, ov := range overrides {
		if ov.Day >= 1 && ov.Day <= days && ov.Symbol != "" {
			manual[CellKey{EmployeeID: ov.EmployeeID, Day: ov.Day}] = ov
		}
		if ov.DailyWage != nil || ov.RoadAllowance != nil || ov.DrivingPay != nil {
			rowFields[ov.EmployeeID] = ov
		}
	}

	grid := domain.Grid{
		Region:      region,
		Month:       monthStart,
		DaysInMonth: days,
		Rows:        make([]domain.AttendanceRow, 0, len(roster)),
	}

	for _, emp := range roster {
		row := domain.AttendanceRow{
			Employee: emp,
			Cells:    make([]domain.AttendanceCell, days),
			PreHire:  preHireSpan(emp, monthStart, days),
		}

		merged := 0
		if row.PreHire != nil {
			merged = row.PreHire.Days
		}
		for d := 1; d <= days; d++ {
			if d <= merged {
				continue
			}
			var ov *domain.Override
			if m, ok := manual[CellKey{EmployeeID: emp.NationalID, Day: d}]; ok {
				ov = &m
			}
			var leave *domain.LeaveType
			if lt, ok := overlay[CellKey{EmployeeID: emp.NationalID, Day: d}]; ok {
				leave = &lt
			}
			row.Cells[d-1] = resolveCell(ov, classes[d-1], leave)
		}

		if rf, ok := rowFields[emp.NationalID]; ok {
			row.DailyWage = rf.DailyWage
			row.RoadAllowance = rf.RoadAllowance
			row.DrivingPay = rf.DrivingPay
		}
		grid.Rows = append(grid.Rows, row)
	}
	return grid
}

// resolveCell applies the layer precedence for one cell, highest first:
// manual override, holiday/weekly-rest classification, approved leave,
// empty working day. Every color goes through ColorForSymbol.
func resolveCell(manual *domain.Override, class domain.DayClass, leave *domain.LeaveType) domain.AttendanceCell {
	if manual != nil {
		return domain.AttendanceCell{Symbol: manual.Symbol, Color: domain.ColorForSymbol(manual.Symbol)}
	}
	if cell, ok := ClassCell(class); ok {
		return cell
	}
	if leave != nil {
		return domain.LeaveCell(*leave)
	}
	return domain.AttendanceCell{}
}

// preHireSpan collapses the days before an employee's hire date into one
// merged block. Hire at or before the first of the month means no span;
// hire after the last day swallows the whole row.
func preHireSpan(emp domain.Employee, monthStart time.Time, days int) *domain.MergedSpan {
	if emp.HireDate == nil {
		return nil
	}
	hire := time.Date(emp.HireDate.Year(), emp.HireDate.Month(), emp.HireDate.Day(), 0, 0, 0, 0, time.UTC)
	if !hire.After(monthStart) {
		return nil
	}
	span := days
	monthEnd := monthStart.AddDate(0, 0, days-1)
	if !hire.After(monthEnd) {
		span = hire.Day() - 1
	}
	return &domain.MergedSpan{
		Days:  span,
		Label: fmt.Sprintf("İşe giriş: %s", hire.Format("02.01.2006")),
		Color: domain.ColorHighlight,
	}
}
