package handler

import (
	"net/http"
	"strconv"

	"carshop/internal/repository"

	"github.com/gorilla/mux"
)

// PeopleHandler handles people directory endpoints
type PeopleHandler struct {
	peoples repository.PeopleRepository
}

// NewPeopleHandler creates a new people handler
func NewPeopleHandler(peoples repository.PeopleRepository) *PeopleHandler {
	return &PeopleHandler{peoples: peoples}
}

// List handles GET /api/peoples
func (h *PeopleHandler) List(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, h.peoples.FindAll())
}

// GetPage handles GET /api/peoples/{page}/{size}
func (h *PeopleHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil || page < 0 {
		writeError(w, http.StatusBadRequest, "Missing request param")
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil || size <= 0 {
		writeError(w, http.StatusBadRequest, "Missing request param")
		return
	}

	writePage(w, h.peoples.FindPage(page, size))
}
