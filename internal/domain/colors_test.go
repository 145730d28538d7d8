package domain

import "testing"

func TestColorForSymbol(t *testing.T) {
	tests := []struct {
		symbol string
		want   CellColor
	}{
		{SymbolWorking, ColorNone},
		{SymbolHalfDay, ColorNone},
		{SymbolPaidLeave, ColorYellow},
		{SymbolUnpaidLeave, ColorRed},
		{SymbolAnnualLeave, ColorBlue},
		{SymbolMedical, ColorGreen},
		{SymbolHoliday, ColorYellow},
		{SymbolWeeklyRest, ColorYellow},
		{SymbolOvertime, ColorRed},
		{"", ColorNone},
		{"  ü  ", ColorYellow},
		{"x", ColorNone},
		{"YI", ColorBlue},
		{"FM", ColorRed},
		{"bilinmeyen", ColorNone},
	}
	for _, tt := range tests {
		if got := ColorForSymbol(tt.symbol); got != tt.want {
			t.Errorf("ColorForSymbol(%q) = %q, want %q", tt.symbol, got, tt.want)
		}
	}
}

func TestSymbolForLeave(t *testing.T) {
	tests := []struct {
		leave LeaveType
		want  string
	}{
		{LeavePaid, SymbolPaidLeave},
		{LeaveUnpaid, SymbolUnpaidLeave},
		{LeaveAnnual, SymbolAnnualLeave},
		{LeaveMedical, SymbolMedical},
		{LeaveOther, SymbolUnpaidLeave},
		{LeaveType("dogum"), SymbolUnpaidLeave},
	}
	for _, tt := range tests {
		if got := SymbolForLeave(tt.leave); got != tt.want {
			t.Errorf("SymbolForLeave(%q) = %q, want %q", tt.leave, got, tt.want)
		}
	}
}
