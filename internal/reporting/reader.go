package reporting

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/talenthub/admin-api/internal/storage"
	"github.com/talenthub/admin-api/pkg/model"
)

// fetchPage runs the count and the page read for one predicate
// concurrently and joins them all-or-nothing. The two reads do not observe
// the same snapshot; slight skew between total and the returned items under
// concurrent writes is accepted.
func fetchPage[T any](
	ctx context.Context,
	filter storage.Predicate,
	sort storage.Sort,
	req model.PageRequest,
	count func(context.Context, storage.Predicate) (int64, error),
	find func(context.Context, storage.Predicate, storage.Sort, int64, int64) ([]T, error),
) ([]T, model.PageMeta, error) {
	var (
		total int64
		items []T
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = count(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = find(gctx, filter, sort, req.Skip(), int64(req.Limit))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, model.PageMeta{}, err
	}

	if items == nil {
		items = []T{}
	}
	return items, model.NewPageMeta(req, total), nil
}
