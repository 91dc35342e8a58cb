package reporting

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/talenthub/admin-api/internal/storage"
	"github.com/talenthub/admin-api/pkg/model"
)

// Mock stores for reporting tests.

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Count(ctx context.Context, filter storage.Predicate) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserStore) Find(ctx context.Context, filter storage.Predicate, sort storage.Sort, skip, limit int64) ([]*model.User, error) {
	args := m.Called(ctx, filter, sort, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

func (m *MockUserStore) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserStore) Save(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) DeleteByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type MockGraduateStore struct {
	mock.Mock
}

func (m *MockGraduateStore) Count(ctx context.Context, filter storage.Predicate) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGraduateStore) Find(ctx context.Context, filter storage.Predicate, sort storage.Sort, skip, limit int64) ([]*model.Graduate, error) {
	args := m.Called(ctx, filter, sort, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Graduate), args.Error(1)
}

type MockCompanyStore struct {
	mock.Mock
}

func (m *MockCompanyStore) Count(ctx context.Context, filter storage.Predicate) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCompanyStore) Find(ctx context.Context, filter storage.Predicate, sort storage.Sort, skip, limit int64) ([]*model.Company, error) {
	args := m.Called(ctx, filter, sort, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Company), args.Error(1)
}

type MockJobStore struct {
	mock.Mock
}

func (m *MockJobStore) Count(ctx context.Context, filter storage.Predicate) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJobStore) Find(ctx context.Context, filter storage.Predicate, sort storage.Sort, skip, limit int64) ([]*model.Job, error) {
	args := m.Called(ctx, filter, sort, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Job), args.Error(1)
}

type MockMatchStore struct {
	mock.Mock
}

func (m *MockMatchStore) Count(ctx context.Context, filter storage.Predicate) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMatchStore) Find(ctx context.Context, filter storage.Predicate, sort storage.Sort, skip, limit int64) ([]*model.Match, error) {
	args := m.Called(ctx, filter, sort, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Match), args.Error(1)
}

func (m *MockMatchStore) AverageScore(ctx context.Context, filter storage.Predicate) (float64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(float64), args.Error(1)
}

type MockApplicationStore struct {
	mock.Mock
}

func (m *MockApplicationStore) Count(ctx context.Context, filter storage.Predicate) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockApplicationStore) Find(ctx context.Context, filter storage.Predicate, sort storage.Sort, skip, limit int64) ([]*model.Application, error) {
	args := m.Called(ctx, filter, sort, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Application), args.Error(1)
}

// newMockStores wires fresh mocks into a Stores bundle.
func newMockStores() (*storage.Stores, *MockUserStore, *MockGraduateStore, *MockCompanyStore, *MockJobStore, *MockMatchStore, *MockApplicationStore) {
	users := &MockUserStore{}
	graduates := &MockGraduateStore{}
	companies := &MockCompanyStore{}
	jobs := &MockJobStore{}
	matches := &MockMatchStore{}
	applications := &MockApplicationStore{}

	stores := &storage.Stores{
		Users:        users,
		Graduates:    graduates,
		Companies:    companies,
		Jobs:         jobs,
		Matches:      matches,
		Applications: applications,
	}
	return stores, users, graduates, companies, jobs, matches, applications
}
