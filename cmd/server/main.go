package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/config"
	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/db"
	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/handler"
	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/repository"
	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/server"
	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/service"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pg, err := db.New(ctx, cfg)
	if err != nil {
		logger.Error("failed to connect database", "err", err)
		os.Exit(1)
	}
	defer pg.Close()

	// repositories
	userRepo := repository.UserRepository{DB: pg}
	regionRepo := repository.RegionRepository{DB: pg}
	rosterRepo := repository.RosterRepository{DB: pg}
	calendarRepo := repository.CalendarRepository{DB: pg}
	leaveRepo := repository.LeaveRepository{DB: pg}
	overrideRepo := repository.OverrideRepository{DB: pg}
	settingsRepo := repository.SettingsRepository{DB: pg}
	logRepo := repository.ActivityLogRepository{DB: pg}

	// services
	authSvc := service.AuthService{Config: cfg, Users: userRepo, Logger: logger}
	timesheetSvc := service.TimesheetService{
		Regions:   regionRepo,
		Roster:    rosterRepo,
		Calendars: calendarRepo,
		Leaves:    leaveRepo,
		Overrides: overrideRepo,
		Settings:  settingsRepo,
		Logs:      logRepo,
		Logger:    logger,
	}

	// handlers
	healthHandler := handler.HealthHandler{DB: pg}
	authHandler := handler.AuthHandler{Service: &authSvc}
	regionHandler := handler.RegionHandler{Repo: regionRepo}
	timesheetHandler := handler.TimesheetHandler{Service: timesheetSvc}
	settingsHandler := handler.SettingsHandler{Repo: settingsRepo}
	activityLogHandler := handler.ActivityLogHandler{Repo: logRepo}

	router := server.NewRouter(cfg, logger, healthHandler, authHandler, regionHandler, timesheetHandler, settingsHandler, activityLogHandler)

	if err := server.Start(ctx, cfg, router, logger); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
