package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/repository"
)

type RegionHandler struct {
	Repo repository.RegionRepository
}

func (h RegionHandler) RegisterRoutes(r chi.Router) {
	r.Get("/regions", h.list)
}

func (h RegionHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	resp := make([]map[string]any, 0, len(items))
	for _, region := range items {
		resp = append(resp, map[string]any{
			"id":   region.ID,
			"name": region.Name,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
