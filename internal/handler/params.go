package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"
)

const monthLayout = "2006-01"

func parseRegionQuery(r *http.Request) (int64, error) {
	value := r.URL.Query().Get("region")
	if value == "" {
		return 0, errors.New("region is required")
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid region")
	}
	return id, nil
}

func parseMonthQuery(r *http.Request) (time.Time, error) {
	value := r.URL.Query().Get("month")
	if value == "" {
		return time.Time{}, errors.New("month is required")
	}
	month, err := time.Parse(monthLayout, value)
	if err != nil {
		return time.Time{}, errors.New("invalid month format, expected YYYY-MM")
	}
	return month, nil
}
