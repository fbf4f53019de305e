package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"carshop/internal/model"
	"carshop/internal/service"
)

// dataEnvelope wraps every successful response body
type dataEnvelope struct {
	Data interface{} `json:"data"`
}

// errorBody is the uniform wire shape for all errors
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// pageData is the snake_case page envelope
type pageData struct {
	Items      interface{} `json:"items"`
	Page       int         `json:"page"`
	PerPage    int         `json:"per_page"`
	TotalItems int64       `json:"total_items"`
	HasPrev    bool        `json:"has_prev"`
	HasNext    bool        `json:"has_next"`
}

func writeData(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dataEnvelope{Data: data})
}

func writePage(w http.ResponseWriter, page model.Page) {
	writeData(w, http.StatusOK, pageData{
		Items:      page.Items,
		Page:       page.Number,
		PerPage:    page.Size,
		TotalItems: page.TotalItems,
		HasPrev:    page.HasPrev(),
		HasNext:    page.HasNext(),
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{
		Code:    strconv.Itoa(status),
		Message: message,
	})
}

// writeServiceError maps service errors onto the wire error shape
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, service.ErrUsernameTaken), errors.Is(err, service.ErrEmailTaken):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}
