package repository

import (
	"context"

	"carshop/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoUserRepo struct {
	collection *mongo.Collection
}

// NewMongoUserRepo creates a MongoDB-backed user repository
func NewMongoUserRepo(db *mongo.Database) UserRepository {
	return &mongoUserRepo{
		collection: db.Collection("users"),
	}
}

func (r *mongoUserRepo) Save(ctx context.Context, user *model.User) (*model.User, error) {
	// IDs are sequential to match the in-memory store
	var last model.User
	opts := options.FindOne().SetSort(bson.M{"_id": -1})
	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&last)
	if err != nil && err != mongo.ErrNoDocuments {
		return nil, err
	}
	user.ID = last.ID + 1

	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (r *mongoUserRepo) FindAll(ctx context.Context) ([]*model.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []*model.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *mongoUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *mongoUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{"username": username})
	return n > 0, err
}

func (r *mongoUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{"email": email})
	return n > 0, err
}
