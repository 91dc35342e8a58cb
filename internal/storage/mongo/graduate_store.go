package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/talenthub/admin-api/internal/storage"
	"github.com/talenthub/admin-api/pkg/model"
)

type graduateStore struct {
	coll *mongo.Collection
}

func (s *graduateStore) Count(ctx context.Context, filter storage.Predicate) (int64, error) {
	n, err := s.coll.CountDocuments(ctx, nonNil(filter))
	if err != nil {
		return 0, model.WrapError(err)
	}
	return n, nil
}

func (s *graduateStore) Find(ctx context.Context, filter storage.Predicate, sort storage.Sort, skip, limit int64) ([]*model.Graduate, error) {
	cursor, err := pagedCursor(ctx, s.coll, filter, sort, skip, limit, nil)
	if err != nil {
		return nil, model.WrapError(err)
	}
	defer cursor.Close(ctx)

	graduates := []*model.Graduate{}
	if err := cursor.All(ctx, &graduates); err != nil {
		return nil, model.WrapError(err)
	}
	return graduates, nil
}

type applicationStore struct {
	coll *mongo.Collection
}

func (s *applicationStore) Count(ctx context.Context, filter storage.Predicate) (int64, error) {
	n, err := s.coll.CountDocuments(ctx, nonNil(filter))
	if err != nil {
		return 0, model.WrapError(err)
	}
	return n, nil
}

func (s *applicationStore) Find(ctx context.Context, filter storage.Predicate, sort storage.Sort, skip, limit int64) ([]*model.Application, error) {
	cursor, err := pagedCursor(ctx, s.coll, filter, sort, skip, limit, nil)
	if err != nil {
		return nil, model.WrapError(err)
	}
	defer cursor.Close(ctx)

	applications := []*model.Application{}
	if err := cursor.All(ctx, &applications); err != nil {
		return nil, model.WrapError(err)
	}
	return applications, nil
}
