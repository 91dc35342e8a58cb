package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/talenthub/admin-api/internal/storage"
	"github.com/talenthub/admin-api/pkg/model"
)

type matchStore struct {
	coll *mongo.Collection
}

func (s *matchStore) Count(ctx context.Context, filter storage.Predicate) (int64, error) {
	n, err := s.coll.CountDocuments(ctx, nonNil(filter))
	if err != nil {
		return 0, model.WrapError(err)
	}
	return n, nil
}

func (s *matchStore) Find(ctx context.Context, filter storage.Predicate, sort storage.Sort, skip, limit int64) ([]*model.Match, error) {
	cursor, err := pagedCursor(ctx, s.coll, filter, sort, skip, limit, nil)
	if err != nil {
		return nil, model.WrapError(err)
	}
	defer cursor.Close(ctx)

	matches := []*model.Match{}
	if err := cursor.All(ctx, &matches); err != nil {
		return nil, model.WrapError(err)
	}
	return matches, nil
}

// AverageScore computes the mean match score over the filtered set. An
// empty set yields 0, never an absent value.
func (s *matchStore) AverageScore(ctx context.Context, filter storage.Predicate) (float64, error) {
	pipeline := []bson.M{
		{"$match": nonNil(filter)},
		{"$group": bson.M{
			"_id": nil,
			"avg": bson.M{"$avg": "$score"},
		}},
	}

	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, model.WrapError(err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Avg *float64 `bson:"avg"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, model.WrapError(err)
	}
	if len(results) == 0 || results[0].Avg == nil {
		return 0, nil
	}
	return *results[0].Avg, nil
}
