package timesheet

import (
	"errors"
	"strings"
	"time"

	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/domain"
)

// ErrTemplateNotPainted means the region has no calendar template for the
// requested month. The grid cannot be built until the calendar is painted;
// this is a hard precondition, not an all-working-days default.
var ErrTemplateNotPainted = errors.New("calendar template not painted for this month")

// Label keywords marking special days on a painted calendar. Matched
// case-insensitively as substrings so older templates with free-form
// labels ("Kurban Bayramı 1. Gün", "hafta tatili") still classify.
const (
	holidayKeyword    = "bayram"
	weeklyRestKeyword = "hafta"
)

// ClassifyEntry classifies one painted day.
func ClassifyEntry(e domain.TemplateEntry) domain.DayClass {
	label := strings.ToLower(e.Label)
	if e.Holiday || strings.Contains(label, holidayKeyword) {
		return domain.DayHoliday
	}
	if e.WeeklyRest || strings.Contains(label, weeklyRestKeyword) {
		return domain.DayWeeklyRest
	}
	return domain.DayWorking
}

// ClassifyMonth turns a template into one classification per day of the
// month. Days the template never painted are working days. Index 0 holds
// day 1.
func ClassifyMonth(tpl domain.CalendarTemplate, daysInMonth int) []domain.DayClass {
	classes := make([]domain.DayClass, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		entry, ok := tpl.Days[d]
		if !ok {
			classes[d-1] = domain.DayWorking
			continue
		}
		classes[d-1] = ClassifyEntry(entry)
	}
	return classes
}

// ClassCell returns the fixed cell rendered for a holiday or weekly-rest
// day. The second return is false for ordinary working days.
func ClassCell(c domain.DayClass) (domain.AttendanceCell, bool) {
	switch c {
	case domain.DayHoliday:
		return domain.AttendanceCell{Symbol: domain.SymbolHoliday, Color: domain.ColorForSymbol(domain.SymbolHoliday)}, true
	case domain.DayWeeklyRest:
		return domain.AttendanceCell{Symbol: domain.SymbolWeeklyRest, Color: domain.ColorForSymbol(domain.SymbolWeeklyRest)}, true
	default:
		return domain.AttendanceCell{}, false
	}
}

// DaysInMonth returns the day count of the month containing t.
func DaysInMonth(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day()
}
