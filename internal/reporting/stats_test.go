package reporting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	stores, users, graduates, companies, jobs, matches, applications := newMockStores()

	users.On("Count", mock.Anything, mock.Anything).Return(int64(120), nil)
	graduates.On("Count", mock.Anything, mock.Anything).Return(int64(80), nil)
	companies.On("Count", mock.Anything, mock.Anything).Return(int64(30), nil)
	jobs.On("Count", mock.Anything, mock.Anything).Return(int64(45), nil).Once()
	jobs.On("Count", mock.Anything, mock.Anything).Return(int64(12), nil).Once()
	matches.On("Count", mock.Anything, mock.Anything).Return(int64(300), nil)
	matches.On("AverageScore", mock.Anything, mock.Anything).Return(0.62, nil)
	applications.On("Count", mock.Anything, mock.Anything).Return(int64(90), nil).Once()
	applications.On("Count", mock.Anything, mock.Anything).Return(int64(25), nil).Once()

	svc := New(stores)
	stats, err := svc.DashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(120), stats.TotalUsers)
	assert.Equal(t, int64(80), stats.TotalGraduates)
	assert.Equal(t, int64(30), stats.TotalCompanies)
	assert.Equal(t, int64(300), stats.TotalMatches)
	assert.Equal(t, 0.62, stats.AverageMatchScore)
	// Total and active job counts both come from the job store; order of
	// concurrent execution does not matter for the sum.
	assert.Equal(t, int64(57), stats.TotalJobs+stats.ActiveJobs)
	assert.Equal(t, int64(115), stats.TotalApplications+stats.PendingApplications)
}

func TestDashboardStats_EmptyAverageIsZero(t *testing.T) {
	stores, users, graduates, companies, jobs, matches, applications := newMockStores()

	users.On("Count", mock.Anything, mock.Anything).Return(int64(0), nil)
	graduates.On("Count", mock.Anything, mock.Anything).Return(int64(0), nil)
	companies.On("Count", mock.Anything, mock.Anything).Return(int64(0), nil)
	jobs.On("Count", mock.Anything, mock.Anything).Return(int64(0), nil)
	matches.On("Count", mock.Anything, mock.Anything).Return(int64(0), nil)
	matches.On("AverageScore", mock.Anything, mock.Anything).Return(float64(0), nil)
	applications.On("Count", mock.Anything, mock.Anything).Return(int64(0), nil)

	svc := New(stores)
	stats, err := svc.DashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, float64(0), stats.AverageMatchScore)
	assert.False(t, stats.AverageMatchScore != stats.AverageMatchScore, "average must never be NaN")
}

func TestDashboardStats_OneFailingSubqueryFailsAll(t *testing.T) {
	stores, users, graduates, companies, jobs, matches, applications := newMockStores()
	boom := errors.New("store down")

	users.On("Count", mock.Anything, mock.Anything).Return(int64(0), boom)
	graduates.On("Count", mock.Anything, mock.Anything).Return(int64(1), nil)
	companies.On("Count", mock.Anything, mock.Anything).Return(int64(1), nil)
	jobs.On("Count", mock.Anything, mock.Anything).Return(int64(1), nil)
	matches.On("Count", mock.Anything, mock.Anything).Return(int64(1), nil)
	matches.On("AverageScore", mock.Anything, mock.Anything).Return(0.5, nil)
	applications.On("Count", mock.Anything, mock.Anything).Return(int64(1), nil)

	svc := New(stores)
	stats, err := svc.DashboardStats(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, stats, "no partial stats payload")
}
