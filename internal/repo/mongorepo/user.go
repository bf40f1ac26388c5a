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

type userDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	LastName string             `bson:"last_name"`
	Email    string             `bson:"email"`
	Password string             `bson:"password"`
}

func (d *userDoc) model() *model.User {
	return &model.User{
		ID:       d.ID.Hex(),
		Name:     d.Name,
		LastName: d.LastName,
		Email:    d.Email,
		Password: d.Password,
	}
}

type userRepo struct {
	coll *mongo.Collection
}

// NewUserRepository создаёт UserRepository над коллекцией users.
func NewUserRepository(db *mongo.Database) repo.UserRepository {
	return &userRepo{coll: db.Collection(UsersCollection)}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	doc := userDoc{
		Name:     user.Name,
		LastName: user.LastName,
		Email:    user.Email,
		Password: user.Password,
	}
	if user.ID != "" {
		oid, err := objectID(user.ID)
		if err != nil {
			return nil, err
		}
		doc.ID = oid
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, translate(err)
	}
	return r.findOne(ctx, bson.M{"_id": res.InsertedID})
}

func (r *userRepo) findOne(ctx context.Context, filter bson.M) (*model.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, translate(err)
	}
	return doc.model(), nil
}

func (r *userRepo) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *userRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *userRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	users := make([]model.User, 0, len(docs))
	for i := range docs {
		users = append(users, *docs[i].model())
	}
	return users, nil
}

func (r *userRepo) UpdateUser(ctx context.Context, id string, fields map[string]any) (*model.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return r.findOne(ctx, bson.M{"_id": oid})
	}
	var doc userDoc
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M(fields)},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, translate(err)
	}
	return doc.model(), nil
}

func (r *userRepo) DeleteUser(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repo.ErrNotFound
	}
	return nil
}
