package reporting

import (
	"context"
	"fmt"
	"strings"

	"github.com/talenthub/admin-api/internal/storage"
	"github.com/talenthub/admin-api/pkg/model"
)

// Service is the admin reporting surface. All methods are request-scoped
// reads except the targeted user writes.
type Service interface {
	ListUsers(ctx context.Context, f UserListFilter, req model.PageRequest) ([]*model.User, model.PageMeta, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	UpdateUser(ctx context.Context, id string, upd UserUpdate) (*model.User, error)
	DeleteUser(ctx context.Context, id string) (*model.User, error)

	ListGraduates(ctx context.Context, f GraduateListFilter, req model.PageRequest) ([]*model.Graduate, model.PageMeta, error)
	ListJobs(ctx context.Context, f JobListFilter, req model.PageRequest) ([]*model.Job, model.PageMeta, error)
	ListMatches(ctx context.Context, f MatchListFilter, req model.PageRequest) ([]*model.Match, model.PageMeta, error)
	ListApplications(ctx context.Context, f ApplicationListFilter, req model.PageRequest) ([]*model.Application, model.PageMeta, error)

	DashboardStats(ctx context.Context) (*model.DashboardStats, error)
	RecentActivity(ctx context.Context) ([]model.ActivityEvent, error)
}

type service struct {
	stores *storage.Stores
}

// New creates the reporting service on top of the per-entity stores.
func New(stores *storage.Stores) Service {
	if stores == nil {
		panic("reporting: stores cannot be nil")
	}
	return &service{stores: stores}
}

func (s *service) ListUsers(ctx context.Context, f UserListFilter, req model.PageRequest) ([]*model.User, model.PageMeta, error) {
	return fetchPage(ctx, f.Predicate(), storage.SortByCreated, req,
		s.stores.Users.Count, s.stores.Users.Find)
}

func (s *service) GetUser(ctx context.Context, id string) (*model.User, error) {
	return s.stores.Users.FindByID(ctx, id)
}

// UserUpdate carries the optional fields an admin may change on a user.
// Nil fields are left untouched.
type UserUpdate struct {
	Email    *string `json:"email"`
	Role     *string `json:"role"`
	Verified *bool   `json:"emailVerified"`
}

func (s *service) UpdateUser(ctx context.Context, id string, upd UserUpdate) (*model.User, error) {
	user, err := s.stores.Users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*upd.Email))
		if email == "" {
			return nil, fmt.Errorf("%w: email cannot be empty", model.ErrInvalidArgument)
		}
		user.Email = email
	}
	if upd.Role != nil {
		role := model.Role(strings.TrimSpace(*upd.Role))
		if !role.IsValid() {
			return nil, fmt.Errorf("%w: unknown role %q", model.ErrInvalidArgument, *upd.Role)
		}
		user.Role = role
	}
	if upd.Verified != nil {
		user.Verified = *upd.Verified
	}

	if err := s.stores.Users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) DeleteUser(ctx context.Context, id string) (*model.User, error) {
	return s.stores.Users.DeleteByID(ctx, id)
}

func (s *service) ListGraduates(ctx context.Context, f GraduateListFilter, req model.PageRequest) ([]*model.Graduate, model.PageMeta, error) {
	return fetchPage(ctx, f.Predicate(), storage.SortByCreated, req,
		s.stores.Graduates.Count, s.stores.Graduates.Find)
}

func (s *service) ListJobs(ctx context.Context, f JobListFilter, req model.PageRequest) ([]*model.Job, model.PageMeta, error) {
	return fetchPage(ctx, f.Predicate(), storage.SortByCreated, req,
		s.stores.Jobs.Count, s.stores.Jobs.Find)
}

func (s *service) ListMatches(ctx context.Context, f MatchListFilter, req model.PageRequest) ([]*model.Match, model.PageMeta, error) {
	return fetchPage(ctx, f.Predicate(), storage.SortByCreated, req,
		s.stores.Matches.Count, s.stores.Matches.Find)
}

func (s *service) ListApplications(ctx context.Context, f ApplicationListFilter, req model.PageRequest) ([]*model.Application, model.PageMeta, error) {
	return fetchPage(ctx, f.Predicate(), storage.SortByCreated, req,
		s.stores.Applications.Count, s.stores.Applications.Find)
}
