package handlers

import (
	"SecretKeeper/internal/service"
	"errors"
	"mime"
	"net/http"

	"go.uber.org/zap"
)

// invalidCredentials: одинаковый ответ на неверный email и неверный пароль.
const invalidCredentials = "Incorrect email or password"

// AuthHandler обрабатывает регистрацию и выдачу токена.
type AuthHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
}

func NewAuthHandler(userService *service.UserService, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{UserService: userService, Logger: logger}
}

// SignUpRequest: данные регистрации.
type SignUpRequest struct {
	Name     string `json:"name" validate:"required"`
	LastName string `json:"last_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// signInRequest: JSON-вариант входа; username служит синонимом email, как в OAuth2 password-форме.
type signInRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse: выданный токен.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// SignUp регистрирует пользователя и возвращает его без пароля.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.Logger.Warnw("SignUp: invalid request body", "error", err)
		writeDecodeError(w, err)
		return
	}

	user, err := h.UserService.Register(r.Context(), service.RegisterInput{
		Name:     req.Name,
		LastName: req.LastName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeError(w, http.StatusConflict, "Email already registered")
			return
		}
		h.Logger.Errorw("SignUp: service error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.Logger.Infow("user registered", "user_id", user.ID)
	writeJSON(w, http.StatusCreated, user)
}

// SignIn принимает OAuth2 password-форму (username, password) или JSON и выдаёт bearer-токен.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	email, password, err := h.credentials(w, r)
	if err != nil {
		h.Logger.Warnw("SignIn: invalid request", "error", err)
		writeDecodeError(w, err)
		return
	}

	user, err := h.UserService.Authenticate(r.Context(), email, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, invalidCredentials)
			return
		}
		h.Logger.Errorw("SignIn: service error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	token, err := h.UserService.IssueToken(user)
	if err != nil {
		h.Logger.Errorw("SignIn: issue token", "user_id", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *AuthHandler) credentials(w http.ResponseWriter, r *http.Request) (string, string, error) {
	var email, password string
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return "", "", errBadRequest
		}
		email, password = r.PostFormValue("username"), r.PostFormValue("password")
	default:
		var req signInRequest
		if err := decodeJSON(w, r, &req); err != nil {
			return "", "", err
		}
		email, password = req.Email, req.Password
		if email == "" {
			email = req.Username
		}
	}
	if email == "" || password == "" {
		return "", "", validationError{msg: "username and password are required"}
	}
	return email, password, nil
}
