package reporting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talenthub/admin-api/internal/storage"
	"github.com/talenthub/admin-api/pkg/model"
)

// fixtureReads simulates a collection of total records numbered 0..total-1
// behind the count/find contract.
func fixtureReads(total int) (
	func(context.Context, storage.Predicate) (int64, error),
	func(context.Context, storage.Predicate, storage.Sort, int64, int64) ([]int, error),
) {
	count := func(context.Context, storage.Predicate) (int64, error) {
		return int64(total), nil
	}
	find := func(_ context.Context, _ storage.Predicate, _ storage.Sort, skip, limit int64) ([]int, error) {
		items := []int{}
		for i := skip; i < int64(total) && i < skip+limit; i++ {
			items = append(items, int(i))
		}
		return items, nil
	}
	return count, find
}

func TestFetchPage_ItemCountProperty(t *testing.T) {
	// For any valid (page, limit) and known total, the returned item count
	// is min(limit, max(0, total-skip)).
	tests := []struct {
		total, page, limit int
	}{
		{0, 1, 10},
		{5, 1, 10},
		{25, 1, 10},
		{25, 2, 10},
		{25, 3, 10},
		{25, 4, 10},
		{100, 10, 10},
		{1, 1, 1},
	}

	for _, tt := range tests {
		req := model.NewPageRequest(tt.page, tt.limit)
		count, find := fixtureReads(tt.total)

		items, meta, err := fetchPage(context.Background(), nil, storage.SortByCreated, req, count, find)
		require.NoError(t, err)

		want := tt.total - int(req.Skip())
		if want < 0 {
			want = 0
		}
		if want > tt.limit {
			want = tt.limit
		}
		assert.Len(t, items, want, "total=%d page=%d limit=%d", tt.total, tt.page, tt.limit)
		assert.Equal(t, int64(tt.total), meta.Total)
	}
}

func TestFetchPage_SecondPageWindow(t *testing.T) {
	count, find := fixtureReads(25)
	req := model.NewPageRequest(2, 10)

	items, meta, err := fetchPage(context.Background(), nil, storage.SortByCreated, req, count, find)
	require.NoError(t, err)

	// Records 10..19 (the 11th through 20th).
	require.Len(t, items, 10)
	assert.Equal(t, 10, items[0])
	assert.Equal(t, 19, items[9])
	assert.Equal(t, model.PageMeta{Page: 2, Limit: 10, Total: 25, TotalPages: 3}, meta)
}

func TestFetchPage_OutOfRangePageIsEmptyNotError(t *testing.T) {
	count, find := fixtureReads(5)
	req := model.NewPageRequest(4, 10)

	items, meta, err := fetchPage(context.Background(), nil, storage.SortByCreated, req, count, find)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, int64(5), meta.Total)
	assert.Equal(t, 4, meta.Page)
}

func TestFetchPage_CountFailureFailsWholeRead(t *testing.T) {
	boom := errors.New("store down")
	count := func(context.Context, storage.Predicate) (int64, error) { return 0, boom }
	_, find := fixtureReads(10)

	_, _, err := fetchPage(context.Background(), nil, storage.SortByCreated, model.NewPageRequest(1, 10), count, find)
	assert.ErrorIs(t, err, boom)
}

func TestFetchPage_FindFailureFailsWholeRead(t *testing.T) {
	boom := errors.New("cursor error")
	count, _ := fixtureReads(10)
	find := func(context.Context, storage.Predicate, storage.Sort, int64, int64) ([]int, error) {
		return nil, boom
	}

	_, _, err := fetchPage(context.Background(), nil, storage.SortByCreated, model.NewPageRequest(1, 10), count, find)
	assert.ErrorIs(t, err, boom)
}

func TestFetchPage_NilItemsNormalized(t *testing.T) {
	count := func(context.Context, storage.Predicate) (int64, error) { return 0, nil }
	find := func(context.Context, storage.Predicate, storage.Sort, int64, int64) ([]int, error) {
		return nil, nil
	}

	items, _, err := fetchPage(context.Background(), nil, storage.SortByCreated, model.NewPageRequest(1, 10), count, find)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
