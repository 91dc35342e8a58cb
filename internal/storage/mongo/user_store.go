package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/talenthub/admin-api/internal/storage"
	"github.com/talenthub/admin-api/pkg/model"
)

// userProjection excludes credential material from every user read,
// regardless of filter.
var userProjection = bson.M{"passwordHash": 0}

type userStore struct {
	coll *mongo.Collection
}

func (s *userStore) Count(ctx context.Context, filter storage.Predicate) (int64, error) {
	n, err := s.coll.CountDocuments(ctx, nonNil(filter))
	if err != nil {
		return 0, model.WrapError(err)
	}
	return n, nil
}

func (s *userStore) Find(ctx context.Context, filter storage.Predicate, sort storage.Sort, skip, limit int64) ([]*model.User, error) {
	cursor, err := pagedCursor(ctx, s.coll, filter, sort, skip, limit, userProjection)
	if err != nil {
		return nil, model.WrapError(err)
	}
	defer cursor.Close(ctx)

	users := []*model.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, model.WrapError(err)
	}
	return users, nil
}

func (s *userStore) FindByID(ctx context.Context, id string) (*model.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrNotFound
	}

	opts := options.FindOne().SetProjection(userProjection)
	var user model.User
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrNotFound
		}
		return nil, model.WrapError(err)
	}
	return &user, nil
}

func (s *userStore) Save(ctx context.Context, user *model.User) error {
	now := time.Now().UTC()
	user.UpdatedAt = &now

	update := bson.M{"$set": bson.M{
		"email":         user.Email,
		"name":          user.Name,
		"role":          user.Role,
		"emailVerified": user.Verified,
		"updatedAt":     now,
	}}

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": user.ID}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.ErrConflict
		}
		return model.WrapError(err)
	}
	if res.MatchedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (s *userStore) DeleteByID(ctx context.Context, id string) (*model.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrNotFound
	}

	opts := options.FindOneAndDelete().SetProjection(userProjection)
	var user model.User
	err = s.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrNotFound
		}
		return nil, model.WrapError(err)
	}
	return &user, nil
}
