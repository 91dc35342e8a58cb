package reporting

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/sync/errgroup"

	"github.com/talenthub/admin-api/internal/storage"
	"github.com/talenthub/admin-api/pkg/model"
)

// DashboardStats fans out one count per entity kind plus the match score
// average, all concurrently, and joins all-or-nothing: one failing
// sub-query fails the whole aggregation, never a partial payload.
func (s *service) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	var stats model.DashboardStats

	counts := []struct {
		dst   *int64
		count func(context.Context, storage.Predicate) (int64, error)
		pred  storage.Predicate
	}{
		{&stats.TotalUsers, s.stores.Users.Count, nil},
		{&stats.TotalGraduates, s.stores.Graduates.Count, nil},
		{&stats.TotalCompanies, s.stores.Companies.Count, nil},
		{&stats.TotalJobs, s.stores.Jobs.Count, nil},
		{&stats.ActiveJobs, s.stores.Jobs.Count, storage.Predicate{"status": model.JobActive}},
		{&stats.TotalMatches, s.stores.Matches.Count, nil},
		{&stats.TotalApplications, s.stores.Applications.Count, nil},
		{&stats.PendingApplications, s.stores.Applications.Count, storage.Predicate{
			"status": bson.M{"$in": []model.ApplicationStatus{model.ApplicationApplied, model.ApplicationInReview}},
		}},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, c := range counts {
		g.Go(func() error {
			n, err := c.count(gctx, c.pred)
			if err != nil {
				return err
			}
			*c.dst = n
			return nil
		})
	}
	g.Go(func() error {
		avg, err := s.stores.Matches.AverageScore(gctx, nil)
		if err != nil {
			return err
		}
		stats.AverageMatchScore = avg
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}
