package handler

import (
	"encoding/json"
	"net/http"
)

type apiError struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
}

type apiResponse struct {
	Status  string    `json:"status"`
	Message string    `json:"message"`
	Data    any       `json:"data"`
	Error   *apiError `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	resp := apiResponse{Status: "ok", Data: payload}
	if status >= 400 {
		resp.Status = "error"
		resp.Error = &apiError{Code: status, Status: http.StatusText(status)}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func writeError(w http.ResponseWriter, status int, message string) {
	if status < 400 {
		status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(apiResponse{
		Status:  "error",
		Message: message,
		Error:   &apiError{Code: status, Status: http.StatusText(status)},
	})
}
