package service

import (
	"SecretKeeper/internal/model"
	"SecretKeeper/internal/repo"
	"context"
)

// SecretService: операции над секретами владельца.
type SecretService struct {
	repo repo.SecretRepository
}

func NewSecretService(r repo.SecretRepository) *SecretService {
	return &SecretService{repo: r}
}

// SecretInput: данные нового секрета.
type SecretInput struct {
	Name        string
	Description *string
	Content     model.Content
}

// SecretPatch: частичное обновление. Content заменяется целиком.
type SecretPatch struct {
	Name        *string
	Description *string
	Content     *model.Content
}

func (s *SecretService) List(ctx context.Context, ownerID string) ([]model.Secret, error) {
	return s.repo.ListSecrets(ctx, ownerID)
}

func (s *SecretService) Get(ctx context.Context, ownerID, id string) (*model.Secret, error) {
	return s.repo.GetSecret(ctx, ownerID, id)
}

func (s *SecretService) Create(ctx context.Context, ownerID string, in SecretInput) (*model.Secret, error) {
	return s.repo.CreateSecret(ctx, &model.Secret{
		OwnerID:     ownerID,
		Name:        in.Name,
		Description: in.Description,
		Content:     in.Content,
	})
}

// Update применяет заданные поля; пустой patch возвращает текущую запись.
func (s *SecretService) Update(ctx context.Context, ownerID, id string, patch SecretPatch) (*model.Secret, error) {
	fields := map[string]any{}
	if patch.Name != nil {
		fields[model.SecretFieldName] = *patch.Name
	}
	if patch.Description != nil {
		fields[model.SecretFieldDescription] = *patch.Description
	}
	if patch.Content != nil && !patch.Content.IsZero() {
		fields[model.SecretFieldContent] = *patch.Content
	}
	return s.repo.UpdateSecret(ctx, ownerID, id, fields)
}

func (s *SecretService) Delete(ctx context.Context, ownerID, id string) error {
	return s.repo.DeleteSecret(ctx, ownerID, id)
}
