package service

import (
	"SecretKeeper/internal/model"
	"SecretKeeper/internal/repo"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSecretService_CreateSetsOwner(t *testing.T) {
	ctx := context.Background()
	m := new(mockSecretRepo)
	svc := NewSecretService(m)
	owner := model.NewID()

	content := model.Content{Data: &model.FileContent{FilePath: "/tmp/a"}}
	m.On("CreateSecret", mock.Anything, mock.MatchedBy(func(s *model.Secret) bool {
		return s.OwnerID == owner && s.Name == "file" && s.Content.Type() == model.ContentFile
	})).Return(&model.Secret{ID: model.NewID(), OwnerID: owner, Name: "file", Content: content}, nil).Once()

	s, err := svc.Create(ctx, owner, SecretInput{Name: "file", Content: content})
	require.NoError(t, err)
	assert.Equal(t, owner, s.OwnerID)
	m.AssertExpectations(t)
}

func TestSecretService_UpdateFields(t *testing.T) {
	ctx := context.Background()
	owner, id := model.NewID(), model.NewID()

	t.Run("empty patch", func(t *testing.T) {
		m := new(mockSecretRepo)
		svc := NewSecretService(m)
		m.On("UpdateSecret", mock.Anything, owner, id, map[string]any{}).Return(&model.Secret{ID: id}, nil).Once()

		_, err := svc.Update(ctx, owner, id, SecretPatch{})
		require.NoError(t, err)
		m.AssertExpectations(t)
	})

	t.Run("content replaced whole", func(t *testing.T) {
		m := new(mockSecretRepo)
		svc := NewSecretService(m)
		name := "renamed"
		content := model.Content{Data: &model.CreditCardContent{FullName: "J D"}}
		m.On("UpdateSecret", mock.Anything, owner, id, map[string]any{
			model.SecretFieldName:    name,
			model.SecretFieldContent: content,
		}).Return(&model.Secret{ID: id, Name: name, Content: content}, nil).Once()

		s, err := svc.Update(ctx, owner, id, SecretPatch{Name: &name, Content: &content})
		require.NoError(t, err)
		assert.Equal(t, model.ContentCreditCard, s.Content.Type())
		m.AssertExpectations(t)
	})

	t.Run("foreign or missing secret", func(t *testing.T) {
		m := new(mockSecretRepo)
		svc := NewSecretService(m)
		desc := "d"
		m.On("UpdateSecret", mock.Anything, owner, id, mock.Anything).Return(nil, repo.ErrNotFound).Once()

		_, err := svc.Update(ctx, owner, id, SecretPatch{Description: &desc})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSecretService_GetListDelete(t *testing.T) {
	ctx := context.Background()
	m := new(mockSecretRepo)
	svc := NewSecretService(m)
	owner, id := model.NewID(), model.NewID()

	m.On("ListSecrets", mock.Anything, owner).Return([]model.Secret{{ID: id, OwnerID: owner}}, nil).Once()
	list, err := svc.List(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	m.On("GetSecret", mock.Anything, owner, "invalid_id").Return(nil, repo.ErrInvalidID).Once()
	_, err = svc.Get(ctx, owner, "invalid_id")
	assert.ErrorIs(t, err, ErrInvalidID)

	m.On("DeleteSecret", mock.Anything, owner, id).Return(repo.ErrNotFound).Once()
	assert.ErrorIs(t, svc.Delete(ctx, owner, id), ErrNotFound)
	m.AssertExpectations(t)
}
