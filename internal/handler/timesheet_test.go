package handler

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
)

func TestSaveOverridesRejectsDayPastMonthEnd(t *testing.T) {
	tests := []struct {
		name  string
		month string
		day   int
	}{
		{"day 30 of february", "2025-02", 30},
		{"day 31 of april", "2025-04", 31},
		{"day zero", "2025-01", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := TimesheetHandler{}
			body := `{"changes":[{"employeeId":"11111111111","day":` + strconv.Itoa(tt.day) + `,"symbol":"X"}]}`
			r := httptest.NewRequest("POST", "/timesheet/overrides?region=7&month="+tt.month, strings.NewReader(body))
			w := httptest.NewRecorder()
			h.saveOverrides(w, r)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
		})
	}
}
