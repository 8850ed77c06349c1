package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/tasks-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/tasks-service/internal/ports"
)

// UserHandler handles registration and lookup of users.
type UserHandler struct {
	auth ports.AuthService
}

// NewUserHandler creates a new UserHandler with the given service port.
func NewUserHandler(auth ports.AuthService) *UserHandler {
	return &UserHandler{auth: auth}
}

// CreateUser handles POST /api/v1/users.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	u, err := h.auth.CreateUser(r.Context(), ports.CreateUserCommand{Email: req.Email})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToUserResponse(u))
}

// FindUser handles GET /api/v1/users/{email}. An unknown email is a
// successful lookup with found=false.
func (h *UserHandler) FindUser(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	u, err := h.auth.FindUserByEmail(r.Context(), ports.FindUserQuery{Email: email})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToFindUserResponse(u))
}
