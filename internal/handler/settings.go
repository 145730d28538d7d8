package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/domain"
	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/repository"
)

type SettingsHandler struct {
	Repo repository.SettingsRepository
}

func (h SettingsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/settings", h.get)
	r.Put("/settings", h.save)
}

func (h SettingsHandler) get(w http.ResponseWriter, r *http.Request) {
	s, err := h.Repo.Get(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, settingsResponse(s))
}

func (h SettingsHandler) save(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CompanyName    string `json:"companyName"`
		CompanyAddress string `json:"companyAddress"`
		CurrencyCode   string `json:"currencyCode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.CompanyName == "" {
		writeError(w, http.StatusBadRequest, "companyName is required")
		return
	}
	if req.CurrencyCode == "" {
		req.CurrencyCode = "TRY"
	}
	s, err := h.Repo.Save(r.Context(), domain.Settings{
		CompanyName:    req.CompanyName,
		CompanyAddress: req.CompanyAddress,
		CurrencyCode:   req.CurrencyCode,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, settingsResponse(s))
}

func settingsResponse(s *domain.Settings) map[string]any {
	return map[string]any{
		"companyName":    s.CompanyName,
		"companyAddress": s.CompanyAddress,
		"currencyCode":   s.CurrencyCode,
		"updatedAt":      s.UpdatedAt,
	}
}
