package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/domain"
	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/export"
	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/repository"
	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/server/authctx"
	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/service"
	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/timesheet"
)

type TimesheetHandler struct {
	Service service.TimesheetService
}

// RegisterReadRoutes mounts the staff-level read endpoints.
func (h TimesheetHandler) RegisterReadRoutes(r chi.Router) {
	r.Get("/timesheet", h.grid)
	r.Get("/timesheet/overrides", h.loadOverrides)
}

// RegisterManageRoutes mounts the manager-level edit and export endpoints.
func (h TimesheetHandler) RegisterManageRoutes(r chi.Router) {
	r.Post("/timesheet/overrides", h.saveOverrides)
	r.Get("/timesheet/export/xlsx", h.exportExcel)
	r.Get("/timesheet/export/pdf", h.exportPDF)
}

func (h TimesheetHandler) grid(w http.ResponseWriter, r *http.Request) {
	regionID, err := parseRegionQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	month, err := parseMonthQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	grid, err := h.Service.BuildGrid(r.Context(), regionID, month)
	if err != nil {
		writeGridError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gridResponse(grid))
}

func (h TimesheetHandler) loadOverrides(w http.ResponseWriter, r *http.Request) {
	regionID, err := parseRegionQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	month, err := parseMonthQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	items, err := h.Service.LoadOverrides(r.Context(), regionID, month)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "kaydedilmiş düzeltmeler yüklenemedi: "+err.Error())
		return
	}
	resp := make([]map[string]any, 0, len(items))
	for _, ov := range items {
		resp = append(resp, map[string]any{
			"employeeId":    ov.EmployeeID,
			"day":           ov.Day,
			"symbol":        ov.Symbol,
			"color":         string(domain.ColorForSymbol(ov.Symbol)),
			"dailyWage":     ov.DailyWage,
			"roadAllowance": ov.RoadAllowance,
			"drivingPay":    ov.DrivingPay,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h TimesheetHandler) saveOverrides(w http.ResponseWriter, r *http.Request) {
	regionID, err := parseRegionQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	month, err := parseMonthQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req struct {
		Changes []struct {
			EmployeeID    string   `json:"employeeId"`
			Day           int      `json:"day"`
			Symbol        *string  `json:"symbol"`
			DailyWage     *float64 `json:"dailyWage"`
			RoadAllowance *float64 `json:"roadAllowance"`
			DrivingPay    *float64 `json:"drivingPay"`
		} `json:"changes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if len(req.Changes) == 0 {
		writeError(w, http.StatusBadRequest, "changes is required")
		return
	}

	days := timesheet.DaysInMonth(month)
	cs := timesheet.NewChangeSet()
	for _, c := range req.Changes {
		if c.EmployeeID == "" || c.Day < 1 || c.Day > days {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("each change needs employeeId and a day between 1 and %d", days))
			return
		}
		if c.Symbol != nil {
			cs.Record(c.EmployeeID, c.Day, *c.Symbol)
		}
		if c.DailyWage != nil || c.RoadAllowance != nil || c.DrivingPay != nil {
			cs.RecordRowFields(c.EmployeeID, c.DailyWage, c.RoadAllowance, c.DrivingPay)
		}
	}

	actor := "unknown"
	if user := authctx.FromContext(r.Context()); user != nil {
		actor = user.Email
	}
	res := h.Service.SaveOverrides(r.Context(), regionID, month, cs, actor)
	writeJSON(w, http.StatusOK, map[string]any{
		"saved":  res.Saved,
		"failed": res.Failed,
	})
}

func (h TimesheetHandler) exportExcel(w http.ResponseWriter, r *http.Request) {
	regionID, err := parseRegionQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	month, err := parseMonthQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	filename, f, err := h.Service.ExcelWorkbook(r.Context(), regionID, month)
	if err != nil {
		writeGridError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := f.Write(w); err != nil {
		writeError(w, http.StatusInternalServerError, "export failed: "+err.Error())
	}
}

func (h TimesheetHandler) exportPDF(w http.ResponseWriter, r *http.Request) {
	regionID, err := parseRegionQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	month, err := parseMonthQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	filename, buf, err := h.Service.PDFDocument(r.Context(), regionID, month)
	if err != nil {
		writeGridError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	_, _ = buf.WriteTo(w)
}

// writeGridError maps grid construction failures onto the error taxonomy:
// unpainted calendar blocks with a retryable conflict, a missing region is
// not found, an empty grid blocks export, anything else is internal.
func writeGridError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, timesheet.ErrTemplateNotPainted):
		writeError(w, http.StatusConflict, "bu ay için takvim henüz boyanmadı")
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "region not found")
	case errors.Is(err, export.ErrEmptyGrid):
		writeError(w, http.StatusUnprocessableEntity, "aktarılacak kayıt yok")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func gridResponse(grid *domain.Grid) map[string]any {
	rows := make([]map[string]any, 0, len(grid.Rows))
	for _, row := range grid.Rows {
		cells := make([]map[string]any, 0, len(row.Cells))
		for _, c := range row.Cells {
			cell := map[string]any{
				"symbol": c.Symbol,
				"color":  string(c.Color),
			}
			if hex, ok := export.ScreenHex(c.Color); ok {
				cell["colorHex"] = hex
			}
			cells = append(cells, cell)
		}
		item := map[string]any{
			"employeeId":    row.Employee.NationalID,
			"name":          row.Employee.Name,
			"cells":         cells,
			"dailyWage":     row.DailyWage,
			"roadAllowance": row.RoadAllowance,
			"drivingPay":    row.DrivingPay,
		}
		if row.PreHire != nil {
			span := map[string]any{
				"days":  row.PreHire.Days,
				"label": row.PreHire.Label,
				"color": string(row.PreHire.Color),
			}
			if hex, ok := export.ScreenHex(row.PreHire.Color); ok {
				span["colorHex"] = hex
			}
			item["preHire"] = span
		}
		rows = append(rows, item)
	}
	return map[string]any{
		"regionId":    grid.Region.ID,
		"region":      grid.Region.Name,
		"month":       grid.Month.Format(monthLayout),
		"daysInMonth": grid.DaysInMonth,
		"rows":        rows,
		"warnings":    grid.Warnings,
	}
}
