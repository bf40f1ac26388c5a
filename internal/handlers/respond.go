package handlers

import (
	"SecretKeeper/internal/model"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// maxBodyBytes ограничивает размер JSON-тела запроса.
const maxBodyBytes = 1 << 20

var (
	errBadRequest = errors.New("invalid request")
	validate      = newValidator()
)

// newValidator называет поля в ошибках по JSON-тегам.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// errorResponse: тело ответа с ошибкой.
type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// decodeJSON читает тело в v и проверяет его теги validate.
// Невалидный JSON даёт errBadRequest, нарушение правил даёт validationError.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, model.ErrUnknownContentType) {
			return validationError{msg: err.Error()}
		}
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return validateStruct(v)
}

func validateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return newValidationError(err)
	}
	return nil
}

// validateContent проверяет поля варианта содержимого секрета.
func validateContent(c *model.Content) error {
	if c == nil || c.IsZero() {
		return nil
	}
	return validateStruct(c.Data)
}

type validationError struct {
	msg string
}

func (e validationError) Error() string { return e.msg }

func newValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return validationError{msg: err.Error()}
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("field %s failed on %q", fe.Field(), fe.Tag()))
	}
	return validationError{msg: strings.Join(parts, "; ")}
}

// writeDecodeError отвечает 400 на невалидный JSON и 422 на нарушение правил.
func writeDecodeError(w http.ResponseWriter, err error) {
	var verr validationError
	if errors.As(err, &verr) {
		writeError(w, http.StatusUnprocessableEntity, verr.Error())
		return
	}
	writeError(w, http.StatusBadRequest, "invalid request")
}
