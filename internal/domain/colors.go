package domain

import "strings"

// CellColor is the on-screen fill of a timesheet cell.
type CellColor string

const (
	ColorNone      CellColor = ""
	ColorYellow    CellColor = "yellow"
	ColorRed       CellColor = "red"
	ColorBlue      CellColor = "blue"
	ColorGreen     CellColor = "green"
	ColorHighlight CellColor = "highlight"
)

// ColorForSymbol derives a cell's fill from its symbol. This is the only
// way a cell color is ever produced; colors are never persisted and never
// accepted from callers, so a stored symbol and its displayed fill cannot
// drift apart.
func ColorForSymbol(symbol string) CellColor {
	switch strings.ToUpper(strings.TrimSpace(symbol)) {
	case "", SymbolWorking, SymbolHalfDay:
		return ColorNone
	case SymbolPaidLeave:
		return ColorYellow
	case SymbolUnpaidLeave:
		return ColorRed
	case SymbolAnnualLeave, "YI":
		return ColorBlue
	case SymbolHoliday, SymbolWeeklyRest:
		return ColorYellow
	case SymbolMedical:
		return ColorGreen
	case SymbolOvertime, "FM":
		return ColorRed
	default:
		return ColorNone
	}
}

// SymbolForLeave maps a leave type to its timesheet symbol. Unrecognized
// types fall back to unpaid leave.
func SymbolForLeave(t LeaveType) string {
	switch t {
	case LeavePaid:
		return SymbolPaidLeave
	case LeaveUnpaid:
		return SymbolUnpaidLeave
	case LeaveAnnual:
		return SymbolAnnualLeave
	case LeaveMedical:
		return SymbolMedical
	default:
		return SymbolUnpaidLeave
	}
}

// LeaveCell builds the overlay cell for a leave type.
func LeaveCell(t LeaveType) AttendanceCell {
	s := SymbolForLeave(t)
	return AttendanceCell{Symbol: s, Color: ColorForSymbol(s)}
}
