package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/repository"
)

type ActivityLogHandler struct {
	Repo repository.ActivityLogRepository
}

func (h ActivityLogHandler) RegisterRoutes(r chi.Router) {
	r.Get("/activity-logs", h.list)
}

func (h ActivityLogHandler) list(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	items, err := h.Repo.List(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	resp := make([]map[string]any, 0, len(items))
	for _, l := range items {
		resp = append(resp, map[string]any{
			"id":       l.ID,
			"title":    l.Title,
			"message":  l.Message,
			"actor":    l.Actor,
			"type":     string(l.Type),
			"loggedAt": l.LoggedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
