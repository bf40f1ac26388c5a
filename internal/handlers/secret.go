package handlers

import (
	"SecretKeeper/internal/middleware"
	"SecretKeeper/internal/model"
	"SecretKeeper/internal/service"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SecretHandler обслуживает /secrets. Все операции ограничены владельцем из токена.
type SecretHandler struct {
	SecretService *service.SecretService
	Logger        *zap.SugaredLogger
}

func NewSecretHandler(secretService *service.SecretService, logger *zap.SugaredLogger) *SecretHandler {
	return &SecretHandler{SecretService: secretService, Logger: logger}
}

// CreateSecretRequest: тело POST /secrets/. Content проверяется отдельно по своему варианту.
type CreateSecretRequest struct {
	Name        string        `json:"name" validate:"required"`
	Description *string       `json:"description"`
	Content     model.Content `json:"content" validate:"-"`
}

// UpdateSecretRequest: тело PUT /secrets/{secretID}.
type UpdateSecretRequest struct {
	Name        *string        `json:"name" validate:"omitempty,min=1"`
	Description *string        `json:"description"`
	Content     *model.Content `json:"content" validate:"-"`
}

type secretsResponse struct {
	Secrets []model.Secret `json:"secrets"`
}

func (h *SecretHandler) List(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}
	secrets, err := h.SecretService.List(r.Context(), owner.ID)
	if err != nil {
		h.Logger.Errorw("ListSecrets: service error", "owner_id", owner.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if secrets == nil {
		secrets = []model.Secret{}
	}
	writeJSON(w, http.StatusOK, secretsResponse{Secrets: secrets})
}

func (h *SecretHandler) Get(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}
	id := chi.URLParam(r, "secretID")
	secret, err := h.SecretService.Get(r.Context(), owner.ID, id)
	if err != nil {
		h.writeServiceError(w, id, err)
		return
	}
	writeJSON(w, http.StatusOK, secret)
}

func (h *SecretHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	var req CreateSecretRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.Logger.Warnw("CreateSecret: invalid request body", "error", err)
		writeDecodeError(w, err)
		return
	}
	if err := validateContent(&req.Content); err != nil {
		writeDecodeError(w, err)
		return
	}

	secret, err := h.SecretService.Create(r.Context(), owner.ID, service.SecretInput{
		Name:        req.Name,
		Description: req.Description,
		Content:     req.Content,
	})
	if err != nil {
		h.Logger.Errorw("CreateSecret: service error", "owner_id", owner.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, secret)
}

func (h *SecretHandler) Update(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}
	id := chi.URLParam(r, "secretID")

	var req UpdateSecretRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.Logger.Warnw("UpdateSecret: invalid request body", "error", err)
		writeDecodeError(w, err)
		return
	}
	if err := validateContent(req.Content); err != nil {
		writeDecodeError(w, err)
		return
	}

	secret, err := h.SecretService.Update(r.Context(), owner.ID, id, service.SecretPatch{
		Name:        req.Name,
		Description: req.Description,
		Content:     req.Content,
	})
	if err != nil {
		h.writeServiceError(w, id, err)
		return
	}
	writeJSON(w, http.StatusOK, secret)
}

func (h *SecretHandler) Delete(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}
	id := chi.URLParam(r, "secretID")
	if err := h.SecretService.Delete(r.Context(), owner.ID, id); err != nil {
		h.writeServiceError(w, id, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SecretHandler) writeServiceError(w http.ResponseWriter, id string, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, fmt.Sprintf("Secret %s not found", id))
	case errors.Is(err, service.ErrInvalidID):
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid secret id %s", id))
	default:
		h.Logger.Errorw("secret service error", "secret_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
