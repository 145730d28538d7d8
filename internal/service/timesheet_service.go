package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/domain"
	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/export"
	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/repository"
	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/timesheet"
)

const fallbackCompanyName = "AYKA"

// Narrow ports over the sources the service reads. Satisfied by the
// corresponding repository types.
type RegionSource interface {
	Get(ctx context.Context, id int64) (*domain.Region, error)
}

type RosterSource interface {
	ListByRegion(ctx context.Context, regionID int64) ([]domain.Employee, error)
}

type CalendarSource interface {
	GetTemplate(ctx context.Context, regionID int64, month time.Time) (*domain.CalendarTemplate, error)
}

type LeaveSource interface {
	ListOverlapping(ctx context.Context, regionID int64, from, to time.Time) ([]domain.LeaveRecord, error)
}

// OverrideSource reads stored overrides and accepts the change-set flush.
type OverrideSource interface {
	timesheet.OverrideStore
	List(ctx context.Context, regionID int64, month time.Time) ([]domain.Override, error)
}

type SettingsSource interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

type AuditLog interface {
	Create(ctx context.Context, in repository.CreateActivityLogInput) (int64, error)
}

// TimesheetService assembles the monthly attendance grid from its three
// sources and drives override persistence and the two export formats.
type TimesheetService struct {
	Regions   RegionSource
	Roster    RosterSource
	Calendars CalendarSource
	Leaves    LeaveSource
	Overrides OverrideSource
	Settings  SettingsSource
	Logs      AuditLog
	Logger    *slog.Logger
}

// BuildGrid builds the reconciled grid for one (region, month).
//
// A missing calendar template is a hard precondition failure
// (timesheet.ErrTemplateNotPainted). Failures loading leave records or
// stored overrides degrade the grid to calendar-only classification with
// a warning instead of failing closed; the roster itself has no such
// fallback because without it there are no rows to show.
func (s TimesheetService) BuildGrid(ctx context.Context, regionID int64, month time.Time) (*domain.Grid, error) {
	region, err := s.Regions.Get(ctx, regionID)
	if err != nil {
		return nil, err
	}

	tpl, err := s.Calendars.GetTemplate(ctx, regionID, month)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, timesheet.ErrTemplateNotPainted
		}
		return nil, err
	}

	roster, err := s.Roster.ListByRegion(ctx, regionID)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}

	monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 0, timesheet.DaysInMonth(monthStart)-1)

	var warnings []string
	leaves, err := s.Leaves.ListOverlapping(ctx, regionID, monthStart, monthEnd)
	if err != nil {
		s.Logger.Warn("leave records unavailable, grid degrades to calendar classification", "region", regionID, "err", err)
		warnings = append(warnings, "İzin kayıtları yüklenemedi; takvim sınıflandırması gösteriliyor.")
		leaves = nil
	}
	overrides, err := s.Overrides.List(ctx, regionID, monthStart)
	if err != nil {
		s.Logger.Warn("stored overrides unavailable", "region", regionID, "err", err)
		warnings = append(warnings, "Kaydedilmiş düzeltmeler yüklenemedi.")
		overrides = nil
	}

	grid := timesheet.BuildGrid(*region, monthStart, roster, *tpl, leaves, overrides)
	grid.Warnings = warnings
	return &grid, nil
}

// LoadOverrides fetches the persisted overrides of one (region, month).
// Unlike the passive load inside BuildGrid, a failure here surfaces to
// the caller: this backs the user-initiated reload action.
func (s TimesheetService) LoadOverrides(ctx context.Context, regionID int64, month time.Time) ([]domain.Override, error) {
	return s.Overrides.List(ctx, regionID, month)
}

// SaveOverrides flushes a change set item by item and reports how many
// edits persisted and how many failed. Failed items stay in the set.
func (s TimesheetService) SaveOverrides(ctx context.Context, regionID int64, month time.Time, cs *timesheet.ChangeSet, actor string) timesheet.FlushResult {
	res := cs.Flush(ctx, s.Overrides, regionID, month)

	_, err := s.Logs.Create(ctx, repository.CreateActivityLogInput{
		Title:     "Puantaj düzeltmeleri kaydedildi",
		Message:   fmt.Sprintf("bölge %d, %s: %d kaydedildi, %d başarısız", regionID, month.Format("2006-01"), res.Saved, res.Failed),
		Actor:     actor,
		Type:      domain.LogInfo,
		Timestamp: time.Now(),
	})
	if err != nil {
		s.Logger.Warn("failed to write audit entry for override save", "err", err)
	}
	return res
}

// ExcelWorkbook builds the spreadsheet artifact for one (region, month).
func (s TimesheetService) ExcelWorkbook(ctx context.Context, regionID int64, month time.Time) (string, *excelize.File, error) {
	grid, err := s.BuildGrid(ctx, regionID, month)
	if err != nil {
		return "", nil, err
	}
	f, err := export.Excel(*grid, s.companyName(ctx))
	if err != nil {
		return "", nil, err
	}
	s.auditExport(ctx, "xlsx", grid)
	return export.ExcelFilename(*grid), f, nil
}

// PDFDocument builds the paginated document artifact for one (region, month).
func (s TimesheetService) PDFDocument(ctx context.Context, regionID int64, month time.Time) (string, *bytes.Buffer, error) {
	grid, err := s.BuildGrid(ctx, regionID, month)
	if err != nil {
		return "", nil, err
	}
	buf, err := export.PDF(*grid, s.companyName(ctx))
	if err != nil {
		return "", nil, err
	}
	s.auditExport(ctx, "pdf", grid)
	return export.PDFFilename(*grid), buf, nil
}

func (s TimesheetService) companyName(ctx context.Context) string {
	settings, err := s.Settings.Get(ctx)
	if err != nil || settings.CompanyName == "" {
		return fallbackCompanyName
	}
	return settings.CompanyName
}

func (s TimesheetService) auditExport(ctx context.Context, format string, grid *domain.Grid) {
	_, err := s.Logs.Create(ctx, repository.CreateActivityLogInput{
		Title:     "Puantaj dışa aktarıldı",
		Message:   fmt.Sprintf("%s, %s %d, %s", grid.Region.Name, export.MonthName(grid.Month.Month()), grid.Month.Year(), format),
		Actor:     "system",
		Type:      domain.LogInfo,
		Timestamp: time.Now(),
	})
	if err != nil {
		s.Logger.Warn("failed to write audit entry for export", "err", err)
	}
}
