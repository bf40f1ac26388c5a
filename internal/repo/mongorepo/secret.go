package mongorepo

import (
	"SecretKeeper/internal/model"
	"SecretKeeper/internal/repo"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type secretDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID     primitive.ObjectID `bson:"owner_id"`
	Name        string             `bson:"name"`
	Description *string            `bson:"description"`
	Content     model.Content      `bson:"content"`
}

func (d *secretDoc) model() *model.Secret {
	return &model.Secret{
		ID:          d.ID.Hex(),
		OwnerID:     d.OwnerID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Content:     d.Content,
	}
}

type secretRepo struct {
	coll *mongo.Collection
}

// NewSecretRepository создаёт SecretRepository над коллекцией secrets.
func NewSecretRepository(db *mongo.Database) repo.SecretRepository {
	return &secretRepo{coll: db.Collection(SecretsCollection)}
}

// ownedFilter: фильтр по id записи и владельцу.
func ownedFilter(ownerID, id string) (bson.M, error) {
	owner, err := objectID(ownerID)
	if err != nil {
		return nil, err
	}
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return bson.M{"_id": oid, "owner_id": owner}, nil
}

func (r *secretRepo) findOne(ctx context.Context, filter bson.M) (*model.Secret, error) {
	var doc secretDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, translate(err)
	}
	return doc.model(), nil
}

func (r *secretRepo) CreateSecret(ctx context.Context, secret *model.Secret) (*model.Secret, error) {
	owner, err := objectID(secret.OwnerID)
	if err != nil {
		return nil, err
	}
	doc := secretDoc{
		OwnerID:     owner,
		Name:        secret.Name,
		Description: secret.Description,
		Content:     secret.Content,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, translate(err)
	}
	return r.findOne(ctx, bson.M{"_id": res.InsertedID})
}

func (r *secretRepo) GetSecret(ctx context.Context, ownerID, id string) (*model.Secret, error) {
	filter, err := ownedFilter(ownerID, id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, filter)
}

func (r *secretRepo) ListSecrets(ctx context.Context, ownerID string) ([]model.Secret, error) {
	owner, err := objectID(ownerID)
	if err != nil {
		return nil, err
	}
	cur, err := r.coll.Find(ctx, bson.M{"owner_id": owner})
	if err != nil {
		return nil, err
	}
	var docs []secretDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	secrets := make([]model.Secret, 0, len(docs))
	for i := range docs {
		secrets = append(secrets, *docs[i].model())
	}
	return secrets, nil
}

func (r *secretRepo) UpdateSecret(ctx context.Context, ownerID, id string, fields map[string]any) (*model.Secret, error) {
	filter, err := ownedFilter(ownerID, id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return r.findOne(ctx, filter)
	}
	var doc secretDoc
	err = r.coll.FindOneAndUpdate(ctx,
		filter,
		bson.M{"$set": bson.M(fields)},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, translate(err)
	}
	return doc.model(), nil
}

func (r *secretRepo) DeleteSecret(ctx context.Context, ownerID, id string) error {
	filter, err := ownedFilter(ownerID, id)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *secretRepo) DeleteSecretsByOwner(ctx context.Context, ownerID string) (int64, error) {
	owner, err := objectID(ownerID)
	if err != nil {
		return 0, err
	}
	res, err := r.coll.DeleteMany(ctx, bson.M{"owner_id": owner})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
