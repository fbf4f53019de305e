package handler

import (
	"net/http"

	"carshop/internal/repository"
	"carshop/internal/transport/rest/middleware"

	log "github.com/sirupsen/logrus"
)

// UserHandler handles the user listing endpoint
type UserHandler struct {
	users repository.UserRepository
}

// NewUserHandler creates a new user handler
func NewUserHandler(users repository.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

// List handles GET /api/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	log.Debugf("user listing requested by %s", middleware.GetUsername(r.Context()))

	users, err := h.users.FindAll(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeData(w, http.StatusOK, users)
}
