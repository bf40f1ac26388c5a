package handlers

import (
	"SecretKeeper/internal/middleware"
	"SecretKeeper/internal/service"
	"errors"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router

	ready *atomic.Bool
}

// Option настраивает Handler.
type Option func(*options)

type options struct {
	resolver middleware.TokenResolver
}

// WithTokenResolver подменяет проверку bearer-токена (по умолчанию UserService).
func WithTokenResolver(r middleware.TokenResolver) Option {
	return func(o *options) { o.resolver = r }
}

// NewHandler разводящий для хендлеров.
//
//	POST   /sign-up          регистрация
//	POST   /sign-in, /login  выдача токена
//	GET    /users/me, GET /users/, PUT /users/, DELETE /users/
//	GET    /secrets/, GET/PUT/DELETE /secrets/{secretID}, POST /secrets/
//	GET    /livez, /readyz
func NewHandler(
	userService *service.UserService,
	secretService *service.SecretService,
	logger *zap.SugaredLogger,
	opts ...Option,
) *Handler {
	o := options{resolver: userService}
	for _, opt := range opts {
		opt(&o)
	}

	r := chi.NewRouter()

	r.Use(middleware.WithLogging)
	r.Use(chimw.Recoverer)
	r.Use(middleware.WithGzip)

	h := &Handler{Router: r, ready: atomic.NewBool(true)}

	authHandler := NewAuthHandler(userService, logger)
	userHandler := NewUserHandler(userService, logger)
	secretHandler := NewSecretHandler(secretService, logger)

	r.Get("/livez", h.Livez)
	r.Get("/readyz", h.Readyz)

	// Auth routes
	r.Post("/sign-up", authHandler.SignUp)
	r.Post("/sign-in", authHandler.SignIn)
	r.Post("/login", authHandler.SignIn)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(o.resolver, isAuthError))

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.List)
			r.Get("/me", userHandler.Me)
			r.Put("/", userHandler.Update)
			r.Delete("/", userHandler.Delete)
		})

		r.Route("/secrets", func(r chi.Router) {
			r.Get("/", secretHandler.List)
			r.Post("/", secretHandler.Create)
			r.Get("/{secretID}", secretHandler.Get)
			r.Put("/{secretID}", secretHandler.Update)
			r.Delete("/{secretID}", secretHandler.Delete)
		})
	})

	return h
}

func isAuthError(err error) bool {
	return errors.Is(err, service.ErrInvalidToken)
}
