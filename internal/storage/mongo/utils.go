package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/talenthub/admin-api/internal/storage"
)

// sortKeyField holds the coalesced timestamp during an updatedAt-ordered
// read; it is stripped before decoding.
const sortKeyField = "_sortKey"

// sortDoc translates a storage.Sort into a Mongo sort document.
func sortDoc(sort storage.Sort) bson.D {
	dir := 1
	if sort.Desc {
		dir = -1
	}
	if sort.Field == "" {
		sort.Field = "createdAt"
	}
	return bson.D{{Key: sort.Field, Value: dir}}
}

// findOpts builds the find options for a paginated read.
func findOpts(sort storage.Sort, skip, limit int64) *options.FindOptions {
	return options.Find().
		SetSort(sortDoc(sort)).
		SetSkip(skip).
		SetLimit(limit)
}

// coalescedSortPipeline pages a read ordered by updatedAt, substituting
// createdAt for records that were never updated. A plain sort cannot do
// this: a missing updatedAt compares as null, which ranks below every date
// in a descending sort, so fresh never-updated records would always trail
// the updated ones.
func coalescedSortPipeline(filter storage.Predicate, sort storage.Sort, skip, limit int64, projection bson.M) []bson.M {
	dir := 1
	if sort.Desc {
		dir = -1
	}
	pipeline := []bson.M{
		{"$match": nonNil(filter)},
		{"$addFields": bson.M{sortKeyField: bson.M{"$ifNull": []any{"$" + sort.Field, "$createdAt"}}}},
		{"$sort": bson.M{sortKeyField: dir}},
		{"$skip": skip},
		{"$limit": limit},
		{"$unset": sortKeyField},
	}
	if projection != nil {
		pipeline = append(pipeline, bson.M{"$project": projection})
	}
	return pipeline
}

// pagedCursor runs a paginated read with the requested ordering. Ordering
// by updatedAt goes through the coalescing pipeline; everything else is a
// plain indexed find.
func pagedCursor(ctx context.Context, coll *mongo.Collection, filter storage.Predicate, sort storage.Sort, skip, limit int64, projection bson.M) (*mongo.Cursor, error) {
	if sort.Field == "updatedAt" {
		return coll.Aggregate(ctx, coalescedSortPipeline(filter, sort, skip, limit, projection))
	}

	opts := findOpts(sort, skip, limit)
	if projection != nil {
		opts.SetProjection(projection)
	}
	return coll.Find(ctx, nonNil(filter), opts)
}

// nonNil guards against a nil predicate reaching the driver.
func nonNil(filter storage.Predicate) bson.M {
	if filter == nil {
		return bson.M{}
	}
	return filter
}
