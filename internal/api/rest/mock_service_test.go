package rest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/talenthub/admin-api/internal/reporting"
	"github.com/talenthub/admin-api/pkg/model"
)

// MockReportingService for API tests.
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) ListUsers(ctx context.Context, f reporting.UserListFilter, req model.PageRequest) ([]*model.User, model.PageMeta, error) {
	args := m.Called(ctx, f, req)
	if args.Get(0) == nil {
		return nil, model.PageMeta{}, args.Error(2)
	}
	return args.Get(0).([]*model.User), args.Get(1).(model.PageMeta), args.Error(2)
}

func (m *MockReportingService) GetUser(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockReportingService) UpdateUser(ctx context.Context, id string, upd reporting.UserUpdate) (*model.User, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockReportingService) DeleteUser(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockReportingService) ListGraduates(ctx context.Context, f reporting.GraduateListFilter, req model.PageRequest) ([]*model.Graduate, model.PageMeta, error) {
	args := m.Called(ctx, f, req)
	if args.Get(0) == nil {
		return nil, model.PageMeta{}, args.Error(2)
	}
	return args.Get(0).([]*model.Graduate), args.Get(1).(model.PageMeta), args.Error(2)
}

func (m *MockReportingService) ListJobs(ctx context.Context, f reporting.JobListFilter, req model.PageRequest) ([]*model.Job, model.PageMeta, error) {
	args := m.Called(ctx, f, req)
	if args.Get(0) == nil {
		return nil, model.PageMeta{}, args.Error(2)
	}
	return args.Get(0).([]*model.Job), args.Get(1).(model.PageMeta), args.Error(2)
}

func (m *MockReportingService) ListMatches(ctx context.Context, f reporting.MatchListFilter, req model.PageRequest) ([]*model.Match, model.PageMeta, error) {
	args := m.Called(ctx, f, req)
	if args.Get(0) == nil {
		return nil, model.PageMeta{}, args.Error(2)
	}
	return args.Get(0).([]*model.Match), args.Get(1).(model.PageMeta), args.Error(2)
}

func (m *MockReportingService) ListApplications(ctx context.Context, f reporting.ApplicationListFilter, req model.PageRequest) ([]*model.Application, model.PageMeta, error) {
	args := m.Called(ctx, f, req)
	if args.Get(0) == nil {
		return nil, model.PageMeta{}, args.Error(2)
	}
	return args.Get(0).([]*model.Application), args.Get(1).(model.PageMeta), args.Error(2)
}

func (m *MockReportingService) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DashboardStats), args.Error(1)
}

func (m *MockReportingService) RecentActivity(ctx context.Context) ([]model.ActivityEvent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ActivityEvent), args.Error(1)
}
