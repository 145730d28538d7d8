package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/domain"
	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/repository"
	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/timesheet"
)

type fakeRegions struct {
	region *domain.Region
	err    error
}

func (f fakeRegions) Get(context.Context, int64) (*domain.Region, error) {
	return f.region, f.err
}

type fakeRoster struct {
	items []domain.Employee
	err   error
}

func (f fakeRoster) ListByRegion(context.Context, int64) ([]domain.Employee, error) {
	return f.items, f.err
}

type fakeCalendars struct {
	tpl *domain.CalendarTemplate
	err error
}

func (f fakeCalendars) GetTemplate(context.Context, int64, time.Time) (*domain.CalendarTemplate, error) {
	return f.tpl, f.err
}

type fakeLeaves struct {
	items []domain.LeaveRecord
	err   error
}

func (f fakeLeaves) ListOverlapping(context.Context, int64, time.Time, time.Time) ([]domain.LeaveRecord, error) {
	return f.items, f.err
}

type fakeOverrides struct {
	items   []domain.Override
	listErr error
}

func (f fakeOverrides) List(context.Context, int64, time.Time) ([]domain.Override, error) {
	return f.items, f.listErr
}

func (f fakeOverrides) UpsertOverride(context.Context, int64, time.Time, domain.Override) error {
	return nil
}

func (f fakeOverrides) DeleteOverride(context.Context, int64, time.Time, string, int) error {
	return nil
}

type fakeSettings struct {
	s *domain.Settings
}

func (f fakeSettings) Get(context.Context) (*domain.Settings, error) {
	if f.s == nil {
		return nil, errors.New("no settings row")
	}
	return f.s, nil
}

type fakeLogs struct {
	entries []repository.CreateActivityLogInput
}

func (f *fakeLogs) Create(_ context.Context, in repository.CreateActivityLogInput) (int64, error) {
	f.entries = append(f.entries, in)
	return int64(len(f.entries)), nil
}

func testMonth() time.Time {
	return time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// newTestService returns a healthy service: painted calendar with a
// day-1 holiday, one employee, one approved paid leave on day 2.
func newTestService() TimesheetService {
	approvedAt := time.Date(2024, time.December, 28, 0, 0, 0, 0, time.UTC)
	return TimesheetService{
		Regions: fakeRegions{region: &domain.Region{ID: 7, Name: "Sivas"}},
		Roster: fakeRoster{items: []domain.Employee{
			{NationalID: "11111111111", Name: "Emine Kaya", RegionID: 7},
		}},
		Calendars: fakeCalendars{tpl: &domain.CalendarTemplate{
			RegionID: 7,
			Month:    testMonth(),
			Days:     map[int]domain.TemplateEntry{1: {Label: "Yılbaşı", Holiday: true}},
		}},
		Leaves: fakeLeaves{items: []domain.LeaveRecord{{
			EmployeeID: "11111111111",
			Type:       domain.LeavePaid,
			Start:      time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC),
			End:        time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC),
			ApprovedAt: &approvedAt,
		}}},
		Overrides: fakeOverrides{},
		Settings:  fakeSettings{},
		Logs:      &fakeLogs{},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestBuildGridHealthy(t *testing.T) {
	svc := newTestService()
	grid, err := svc.BuildGrid(context.Background(), 7, testMonth())
	if err != nil {
		t.Fatal(err)
	}
	if len(grid.Warnings) != 0 {
		t.Errorf("warnings = %v, want none", grid.Warnings)
	}
	row := grid.Rows[0]
	if row.Cells[0].Symbol != domain.SymbolHoliday {
		t.Errorf("day 1 = %q, want holiday", row.Cells[0].Symbol)
	}
	if row.Cells[1].Symbol != domain.SymbolPaidLeave {
		t.Errorf("day 2 = %q, want paid leave", row.Cells[1].Symbol)
	}
}

func TestBuildGridDegradesWhenLeavesFail(t *testing.T) {
	svc := newTestService()
	svc.Leaves = fakeLeaves{err: errors.New("leave source down")}

	grid, err := svc.BuildGrid(context.Background(), 7, testMonth())
	if err != nil {
		t.Fatalf("degraded build must not fail: %v", err)
	}
	if len(grid.Warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", grid.Warnings)
	}
	row := grid.Rows[0]
	// Calendar classification survives; the leave overlay is dropped.
	if row.Cells[0].Symbol != domain.SymbolHoliday {
		t.Errorf("day 1 = %q, want holiday", row.Cells[0].Symbol)
	}
	if row.Cells[1].Symbol != "" {
		t.Errorf("day 2 = %q, want empty without the overlay", row.Cells[1].Symbol)
	}
}

func TestBuildGridDegradesWhenOverridesFail(t *testing.T) {
	svc := newTestService()
	svc.Overrides = fakeOverrides{listErr: errors.New("override source down")}

	grid, err := svc.BuildGrid(context.Background(), 7, testMonth())
	if err != nil {
		t.Fatalf("degraded build must not fail: %v", err)
	}
	if len(grid.Warnings) != 1 {
		t.Errorf("warnings = %v, want exactly one", grid.Warnings)
	}
	if grid.Rows[0].Cells[1].Symbol != domain.SymbolPaidLeave {
		t.Errorf("day 2 = %q, leave overlay must still apply", grid.Rows[0].Cells[1].Symbol)
	}
}

func TestBuildGridTemplateNotPainted(t *testing.T) {
	svc := newTestService()
	svc.Calendars = fakeCalendars{err: repository.ErrNotFound}

	_, err := svc.BuildGrid(context.Background(), 7, testMonth())
	if !errors.Is(err, timesheet.ErrTemplateNotPainted) {
		t.Fatalf("err = %v, want ErrTemplateNotPainted", err)
	}
}

func TestBuildGridRosterFailureIsError(t *testing.T) {
	svc := newTestService()
	svc.Roster = fakeRoster{err: errors.New("roster source down")}

	if _, err := svc.BuildGrid(context.Background(), 7, testMonth()); err == nil {
		t.Fatal("roster failure must fail the build, not degrade")
	}
}

func TestSaveOverridesWritesAudit(t *testing.T) {
	svc := newTestService()
	logs := &fakeLogs{}
	svc.Logs = logs

	cs := timesheet.NewChangeSet()
	cs.Record("11111111111", 4, domain.SymbolPaidLeave)
	res := svc.SaveOverrides(context.Background(), 7, testMonth(), cs, "manager@ayka.local")
	if res.Saved != 1 || res.Failed != 0 {
		t.Fatalf("result = %+v, want 1 saved", res)
	}
	if len(logs.entries) != 1 {
		t.Fatalf("audit entries = %d, want 1", len(logs.entries))
	}
	if logs.entries[0].Actor != "manager@ayka.local" {
		t.Errorf("actor = %q", logs.entries[0].Actor)
	}
}
