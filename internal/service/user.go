package service

import (
	"SecretKeeper/internal/auth"
	"SecretKeeper/internal/model"
	"SecretKeeper/internal/repo"
	"context"
	"errors"
	"fmt"
	"time"
)

// UserService: регистрация, вход и управление собственной учётной записью.
type UserService struct {
	users    repo.UserRepository
	secrets  repo.SecretRepository
	key      []byte
	tokenTTL time.Duration
}

// NewUserService создаёт сервис. tokenTTL <= 0 означает срок по умолчанию.
func NewUserService(users repo.UserRepository, secrets repo.SecretRepository, authSecret string, tokenTTL time.Duration) *UserService {
	return &UserService{
		users:    users,
		secrets:  secrets,
		key:      []byte(authSecret),
		tokenTTL: tokenTTL,
	}
}

// RegisterInput: данные новой учётной записи.
type RegisterInput struct {
	Name     string
	LastName string
	Email    string
	Password string
}

// UserPatch: частичное обновление; nil-поля не меняются.
type UserPatch struct {
	Name     *string
	LastName *string
	Email    *string
	Password *string
}

// Register создаёт пользователя с bcrypt-хешем пароля.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	if err := s.ensureEmailFree(ctx, in.Email, ""); err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user, err := s.users.CreateUser(ctx, &model.User{
		Name:     in.Name,
		LastName: in.LastName,
		Email:    in.Email,
		Password: hash,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Authenticate проверяет email и пароль. Ошибка одинакова для неизвестного email и неверного пароля.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !auth.VerifyPassword(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// IssueToken выпускает access-токен для пользователя.
func (s *UserService) IssueToken(user *model.User) (string, error) {
	return auth.IssueToken(user.ID, s.key, s.tokenTTL)
}

// ResolveToken проверяет токен и возвращает пользователя из его subject.
func (s *UserService) ResolveToken(ctx context.Context, token string) (*model.User, error) {
	id, err := auth.ParseToken(token, s.key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) || errors.Is(err, repo.ErrInvalidID) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	return s.users.GetUserByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.users.ListUsers(ctx)
}

// Update применяет только заданные поля; пароль перехешируется.
// Пустой patch возвращает текущую запись.
func (s *UserService) Update(ctx context.Context, id string, patch UserPatch) (*model.User, error) {
	fields := map[string]any{}
	if patch.Name != nil {
		fields[model.UserFieldName] = *patch.Name
	}
	if patch.LastName != nil {
		fields[model.UserFieldLastName] = *patch.LastName
	}
	if patch.Email != nil {
		if err := s.ensureEmailFree(ctx, *patch.Email, id); err != nil {
			return nil, err
		}
		fields[model.UserFieldEmail] = *patch.Email
	}
	if patch.Password != nil {
		hash, err := auth.HashPassword(*patch.Password)
		if err != nil {
			return nil, err
		}
		fields[model.UserFieldPassword] = hash
	}

	user, err := s.users.UpdateUser(ctx, id, fields)
	if errors.Is(err, repo.ErrDuplicate) {
		return nil, ErrEmailTaken
	}
	return user, err
}

// Delete удаляет пользователя вместе с его секретами.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.users.DeleteUser(ctx, id); err != nil {
		return err
	}
	if _, err := s.secrets.DeleteSecretsByOwner(ctx, id); err != nil {
		return fmt.Errorf("delete secrets of user %s: %w", id, err)
	}
	return nil
}

// ensureEmailFree возвращает ErrEmailTaken, если email принадлежит другому пользователю.
func (s *UserService) ensureEmailFree(ctx context.Context, email, selfID string) error {
	existing, err := s.users.GetUserByEmail(ctx, email)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("find user: %w", err)
	case existing.ID != selfID:
		return ErrEmailTaken
	}
	return nil
}
