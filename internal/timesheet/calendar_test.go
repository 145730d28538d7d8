package timesheet

import (
	"testing"
	"time"

	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/domain"
)

func TestClassifyEntry(t *testing.T) {
	tests := []struct {
		name  string
		entry domain.TemplateEntry
		want  domain.DayClass
	}{
		{
			name:  "holiday flag",
			entry: domain.TemplateEntry{Label: "Yılbaşı", Holiday: true},
			want:  domain.DayHoliday,
		},
		{
			name:  "holiday keyword in label",
			entry: domain.TemplateEntry{Label: "Kurban Bayramı 1. Gün"},
			want:  domain.DayHoliday,
		},
		{
			name:  "holiday keyword case insensitive",
			entry: domain.TemplateEntry{Label: "RAMAZAN BAYRAMI"},
			want:  domain.DayHoliday,
		},
		{
			name:  "weekly rest flag",
			entry: domain.TemplateEntry{Label: "Pazar", WeeklyRest: true},
			want:  domain.DayWeeklyRest,
		},
		{
			name:  "weekly rest keyword",
			entry: domain.TemplateEntry{Label: "hafta tatili"},
			want:  domain.DayWeeklyRest,
		},
		{
			name:  "holiday wins over rest keyword",
			entry: domain.TemplateEntry{Label: "bayram hafta sonu"},
			want:  domain.DayHoliday,
		},
		{
			name:  "plain working day",
			entry: domain.TemplateEntry{Label: "Mesai"},
			want:  domain.DayWorking,
		},
		{
			name:  "empty label",
			entry: domain.TemplateEntry{},
			want:  domain.DayWorking,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyEntry(tt.entry); got != tt.want {
				t.Errorf("ClassifyEntry(%+v) = %v, want %v", tt.entry, got, tt.want)
			}
		})
	}
}

func TestClassifyMonth(t *testing.T) {
	tpl := domain.CalendarTemplate{
		Month: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		Days: map[int]domain.TemplateEntry{
			1: {Label: "Yılbaşı", Holiday: true},
			5: {Label: "Hafta Tatili"},
		},
	}
	classes := ClassifyMonth(tpl, 31)
	if len(classes) != 31 {
		t.Fatalf("expected 31 classes, got %d", len(classes))
	}
	if classes[0] != domain.DayHoliday {
		t.Errorf("day 1 = %v, want holiday", classes[0])
	}
	if classes[4] != domain.DayWeeklyRest {
		t.Errorf("day 5 = %v, want weekly rest", classes[4])
	}
	for _, d := range []int{2, 3, 4, 6, 31} {
		if classes[d-1] != domain.DayWorking {
			t.Errorf("day %d = %v, want working", d, classes[d-1])
		}
	}
}

func TestClassCell(t *testing.T) {
	cell, ok := ClassCell(domain.DayHoliday)
	if !ok || cell.Symbol != domain.SymbolHoliday || cell.Color != domain.ColorYellow {
		t.Errorf("holiday cell = %+v (ok=%v)", cell, ok)
	}
	cell, ok = ClassCell(domain.DayWeeklyRest)
	if !ok || cell.Symbol != domain.SymbolWeeklyRest || cell.Color != domain.ColorYellow {
		t.Errorf("weekly rest cell = %+v (ok=%v)", cell, ok)
	}
	if _, ok := ClassCell(domain.DayWorking); ok {
		t.Error("working day should have no class cell")
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		date time.Time
		want int
	}{
		{time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), 31},
		{time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), 28},
		{time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), 29},
		{time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC), 30},
	}
	for _, tt := range tests {
		if got := DaysInMonth(tt.date); got != tt.want {
			t.Errorf("DaysInMonth(%v) = %d, want %d", tt.date, got, tt.want)
		}
	}
}
