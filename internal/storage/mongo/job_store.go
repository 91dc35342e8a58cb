package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/talenthub/admin-api/internal/storage"
	"github.com/talenthub/admin-api/pkg/model"
)

type jobStore struct {
	coll      *mongo.Collection
	companies *companyStore
}

func (s *jobStore) Count(ctx context.Context, filter storage.Predicate) (int64, error) {
	n, err := s.coll.CountDocuments(ctx, nonNil(filter))
	if err != nil {
		return 0, model.WrapError(err)
	}
	return n, nil
}

func (s *jobStore) Find(ctx context.Context, filter storage.Predicate, sort storage.Sort, skip, limit int64) ([]*model.Job, error) {
	cursor, err := pagedCursor(ctx, s.coll, filter, sort, skip, limit, nil)
	if err != nil {
		return nil, model.WrapError(err)
	}
	defer cursor.Close(ctx)

	jobs := []*model.Job{}
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, model.WrapError(err)
	}

	s.attachCompanies(ctx, jobs)
	return jobs, nil
}

// attachCompanies joins company name/industry onto the page of jobs.
// Best-effort: a missing company, or a failed lookup, leaves the summary
// fields empty rather than failing the read.
func (s *jobStore) attachCompanies(ctx context.Context, jobs []*model.Job) {
	if len(jobs) == 0 {
		return
	}

	idSet := make(map[primitive.ObjectID]struct{}, len(jobs))
	ids := make([]primitive.ObjectID, 0, len(jobs))
	for _, j := range jobs {
		if _, seen := idSet[j.CompanyID]; !seen {
			idSet[j.CompanyID] = struct{}{}
			ids = append(ids, j.CompanyID)
		}
	}

	companies, err := s.companies.findByIDs(ctx, ids)
	if err != nil {
		return
	}

	byID := make(map[primitive.ObjectID]*model.Company, len(companies))
	for _, c := range companies {
		byID[c.ID] = c
	}
	for _, j := range jobs {
		if c, ok := byID[j.CompanyID]; ok {
			j.CompanyName = c.Name
			j.CompanyIndustry = c.Industry
		}
	}
}

type companyStore struct {
	coll *mongo.Collection
}

func (s *companyStore) Count(ctx context.Context, filter storage.Predicate) (int64, error) {
	n, err := s.coll.CountDocuments(ctx, nonNil(filter))
	if err != nil {
		return 0, model.WrapError(err)
	}
	return n, nil
}

func (s *companyStore) Find(ctx context.Context, filter storage.Predicate, sort storage.Sort, skip, limit int64) ([]*model.Company, error) {
	cursor, err := pagedCursor(ctx, s.coll, filter, sort, skip, limit, nil)
	if err != nil {
		return nil, model.WrapError(err)
	}
	defer cursor.Close(ctx)

	companies := []*model.Company{}
	if err := cursor.All(ctx, &companies); err != nil {
		return nil, model.WrapError(err)
	}
	return companies, nil
}

func (s *companyStore) findByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Company, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := s.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, model.WrapError(err)
	}
	defer cursor.Close(ctx)

	companies := []*model.Company{}
	if err := cursor.All(ctx, &companies); err != nil {
		return nil, model.WrapError(err)
	}
	return companies, nil
}
