package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/config"
	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/domain"
	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/handler"
)

// NewRouter wires HTTP routes and middleware.
func NewRouter(cfg config.Config,
	logger *slog.Logger,
	health handler.HealthHandler,
	auth handler.AuthHandler,
	regions handler.RegionHandler,
	timesheets handler.TimesheetHandler,
	settings handler.SettingsHandler,
	activityLogs handler.ActivityLogHandler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(NewLoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(httprate.LimitByIP(200, 1*time.Minute))

	health.RegisterRoutes(r)
	auth.RegisterRoutes(r)
	r.Method("GET", "/metrics", promhttp.Handler())

	r.Group(func(pr chi.Router) {
		pr.Use(AuthMiddleware(cfg.JWTSecret))
		// staff-level (staff/manager/admin): read the grid
		pr.Group(func(sr chi.Router) {
			sr.Use(RequireRole(domain.RoleAdmin, domain.RoleManager, domain.RoleStaff))
			regions.RegisterRoutes(sr)
			timesheets.RegisterReadRoutes(sr)
		})
		// manager-level (manager/admin): edit, export, administer
		pr.Group(func(mr chi.Router) {
			mr.Use(RequireRole(domain.RoleAdmin, domain.RoleManager))
			timesheets.RegisterManageRoutes(mr)
			settings.RegisterRoutes(mr)
			activityLogs.RegisterRoutes(mr)
		})
	})

	return r
}
