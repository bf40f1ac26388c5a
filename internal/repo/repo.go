// Package repo описывает контракты хранилища пользователей и секретов
// и содержит их реализацию поверх gorm (PostgreSQL / SQLite).
package repo

import (
	"SecretKeeper/internal/model"
	"context"
	"errors"
)

var (
	// ErrNotFound: запись не найдена (или не принадлежит владельцу).
	ErrNotFound = errors.New("record not found")
	// ErrInvalidID: идентификатор не в формате ObjectID.
	ErrInvalidID = errors.New("invalid id")
	// ErrDuplicate: нарушение уникальности (email пользователя).
	ErrDuplicate = errors.New("duplicate key")
)

// UserRepository: доступ к коллекции пользователей.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	// UpdateUser применяет fields и возвращает запись после обновления.
	// Пустой fields возвращает текущую запись.
	UpdateUser(ctx context.Context, id string, fields map[string]any) (*model.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// SecretRepository: доступ к секретам. Все операции ограничены владельцем.
type SecretRepository interface {
	CreateSecret(ctx context.Context, secret *model.Secret) (*model.Secret, error)
	GetSecret(ctx context.Context, ownerID, id string) (*model.Secret, error)
	ListSecrets(ctx context.Context, ownerID string) ([]model.Secret, error)
	UpdateSecret(ctx context.Context, ownerID, id string, fields map[string]any) (*model.Secret, error)
	DeleteSecret(ctx context.Context, ownerID, id string) error
	// DeleteSecretsByOwner удаляет все секреты пользователя, возвращает их количество.
	DeleteSecretsByOwner(ctx context.Context, ownerID string) (int64, error)
}
