package handlers

import (
	"SecretKeeper/internal/middleware"
	"SecretKeeper/internal/model"
	"SecretKeeper/internal/service"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// UserHandler обслуживает /users.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
}

func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger}
}

// UpdateUserRequest: частичное обновление; отсутствующие поля не меняются.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	LastName *string `json:"last_name"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=1"`
}

type usersResponse struct {
	Users []model.User `json:"users"`
}

// Me возвращает текущего пользователя.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.List(r.Context())
	if err != nil {
		h.Logger.Errorw("ListUsers: service error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if users == nil {
		users = []model.User{}
	}
	writeJSON(w, http.StatusOK, usersResponse{Users: users})
}

// Update частично обновляет учётную запись вызывающего.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	current, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	var req UpdateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.Logger.Warnw("UpdateUser: invalid request body", "error", err)
		writeDecodeError(w, err)
		return
	}

	user, err := h.UserService.Update(r.Context(), current.ID, service.UserPatch{
		Name:     req.Name,
		LastName: req.LastName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.writeServiceError(w, current.ID, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Delete удаляет учётную запись вызывающего и его секреты.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	current, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}
	if err := h.UserService.Delete(r.Context(), current.ID); err != nil {
		h.writeServiceError(w, current.ID, err)
		return
	}
	h.Logger.Infow("user deleted", "user_id", current.ID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) writeServiceError(w http.ResponseWriter, id string, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, fmt.Sprintf("User %s not found", id))
	case errors.Is(err, service.ErrInvalidID):
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid user id %s", id))
	case errors.Is(err, service.ErrEmailTaken):
		writeError(w, http.StatusConflict, "Email already registered")
	default:
		h.Logger.Errorw("user service error", "user_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
