package service

import (
	"SecretKeeper/internal/model"
	"SecretKeeper/internal/repo"
	"context"

	"github.com/stretchr/testify/mock"
)

// мок для repo.UserRepository
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.User); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) UpdateUser(ctx context.Context, id string, fields map[string]any) (*model.User, error) {
	args := m.Called(ctx, id, fields)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) DeleteUser(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

// мок для repo.SecretRepository
type mockSecretRepo struct{ mock.Mock }

func (m *mockSecretRepo) CreateSecret(ctx context.Context, s *model.Secret) (*model.Secret, error) {
	args := m.Called(ctx, s)
	if v, ok := args.Get(0).(*model.Secret); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSecretRepo) GetSecret(ctx context.Context, ownerID, id string) (*model.Secret, error) {
	args := m.Called(ctx, ownerID, id)
	if v, ok := args.Get(0).(*model.Secret); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSecretRepo) ListSecrets(ctx context.Context, ownerID string) ([]model.Secret, error) {
	args := m.Called(ctx, ownerID)
	if v, ok := args.Get(0).([]model.Secret); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSecretRepo) UpdateSecret(ctx context.Context, ownerID, id string, fields map[string]any) (*model.Secret, error) {
	args := m.Called(ctx, ownerID, id, fields)
	if v, ok := args.Get(0).(*model.Secret); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSecretRepo) DeleteSecret(ctx context.Context, ownerID, id string) error {
	return m.Called(ctx, ownerID, id).Error(0)
}

func (m *mockSecretRepo) DeleteSecretsByOwner(ctx context.Context, ownerID string) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.SecretRepository = (*mockSecretRepo)(nil)
