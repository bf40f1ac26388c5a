package middleware

import (
	"SecretKeeper/internal/model"
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// TokenResolver проверяет bearer-токен и возвращает его владельца.
type TokenResolver interface {
	ResolveToken(ctx context.Context, token string) (*model.User, error)
}

type ctxKey struct{}

// WithUser кладёт пользователя в контекст запроса.
func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, user)
}

// UserFromContext достаёт пользователя, установленный RequireAuth.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	u, ok := ctx.Value(ctxKey{}).(*model.User)
	return u, ok && u != nil
}

// BearerToken извлекает токен из заголовка Authorization: Bearer <token>.
func BearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// RequireAuth пропускает запрос дальше только с действительным bearer-токеном.
// isAuthErr отличает отказ в доступе (401) от сбоя хранилища (500).
func RequireAuth(resolver TokenResolver, isAuthErr func(error) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := BearerToken(r)
			if !ok {
				unauthorized(w)
				return
			}
			user, err := resolver.ResolveToken(r.Context(), token)
			if err != nil {
				if isAuthErr == nil || isAuthErr(err) {
					unauthorized(w)
					return
				}
				log.Errorw("RequireAuth: resolve token", "error", err)
				writeDetail(w, http.StatusInternalServerError, "internal error")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
