package mongorepo

import (
	"SecretKeeper/internal/model"
	"SecretKeeper/internal/repo"
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

// newTestDB подключается к MongoDB из MONGO_URI; без неё интеграционные тесты пропускаются.
func newTestDB(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI is not set")
	}
	name := os.Getenv("TEST_DB_NAME")
	if name == "" {
		name = "secretkeeper_test"
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, db, err := Connect(ctx, uri, name)
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})
	// чистим коллекции перед тестом, индексы оставляем
	for _, c := range []string{UsersCollection, SecretsCollection} {
		_, err := db.Collection(c).DeleteMany(ctx, map[string]any{})
		require.NoError(t, err)
	}
	return db
}

func TestUserRepository_Mongo(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepository(db)
	ctx := context.Background()

	u, err := r.CreateUser(ctx, &model.User{Name: "Test", LastName: "Test", Email: "test@example.com", Password: "hash"})
	require.NoError(t, err)
	assert.True(t, model.ValidID(u.ID))

	_, err = r.CreateUser(ctx, &model.User{Name: "X", LastName: "X", Email: "test@example.com", Password: "h"})
	assert.ErrorIs(t, err, repo.ErrDuplicate)

	got, err := r.GetUserByEmail(ctx, "test@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	updated, err := r.UpdateUser(ctx, u.ID, map[string]any{model.UserFieldName: "Update test"})
	require.NoError(t, err)
	assert.Equal(t, "Update test", updated.Name)
	assert.Equal(t, "hash", updated.Password)

	same, err := r.UpdateUser(ctx, u.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, updated, same)

	_, err = r.GetUserByID(ctx, "invalid_id")
	assert.ErrorIs(t, err, repo.ErrInvalidID)

	require.NoError(t, r.DeleteUser(ctx, u.ID))
	assert.ErrorIs(t, r.DeleteUser(ctx, u.ID), repo.ErrNotFound)
	_, err = r.UpdateUser(ctx, u.ID, map[string]any{model.UserFieldName: "x"})
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestSecretRepository_Mongo(t *testing.T) {
	db := newTestDB(t)
	r := NewSecretRepository(db)
	ctx := context.Background()
	owner, other := model.NewID(), model.NewID()

	s, err := r.CreateSecret(ctx, &model.Secret{
		OwnerID: owner,
		Name:    "string",
		Content: model.Content{Data: &model.LoginContent{Email: "test@example.com", Password: "string", Sites: []string{"https://example.com/"}}},
	})
	require.NoError(t, err)

	got, err := r.GetSecret(ctx, owner, s.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ContentLogin, got.Content.Type())

	_, err = r.GetSecret(ctx, other, s.ID)
	assert.ErrorIs(t, err, repo.ErrNotFound)

	updated, err := r.UpdateSecret(ctx, owner, s.ID, map[string]any{
		model.SecretFieldContent: model.Content{Data: &model.FileContent{FilePath: "/tmp/x"}},
	})
	require.NoError(t, err)
	file, ok := updated.Content.Data.(*model.FileContent)
	require.True(t, ok)
	assert.Equal(t, "/tmp/x", file.FilePath)

	list, err := r.ListSecrets(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	assert.ErrorIs(t, r.DeleteSecret(ctx, other, s.ID), repo.ErrNotFound)
	n, err := r.DeleteSecretsByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
