// Package storage defines the read and write contracts the reporting engine
// requires from the persistence layer. Each entity collection is
// independently owned; the engine only sees these interfaces.
package storage

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/talenthub/admin-api/pkg/model"
)

// Predicate is a sanitized filter built by the reporting layer. Raw query
// parameters never become a Predicate without passing the sanitizer.
type Predicate = bson.M

// Sort names the field a read is ordered by.
type Sort struct {
	Field string
	Desc  bool
}

// SortByCreated is the default ordering for list reads.
var SortByCreated = Sort{Field: "createdAt", Desc: true}

// SortByUpdated orders mutable collections by their last change. Records
// that were never updated sort by creation time instead (the store coalesces
// the two fields).
var SortByUpdated = Sort{Field: "updatedAt", Desc: true}

// UserStore reads and writes platform accounts. Read projections never
// include credential material.
type UserStore interface {
	Count(ctx context.Context, filter Predicate) (int64, error)
	Find(ctx context.Context, filter Predicate, sort Sort, skip, limit int64) ([]*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	Save(ctx context.Context, user *model.User) error
	DeleteByID(ctx context.Context, id string) (*model.User, error)
}

// GraduateStore reads candidate profiles.
type GraduateStore interface {
	Count(ctx context.Context, filter Predicate) (int64, error)
	Find(ctx context.Context, filter Predicate, sort Sort, skip, limit int64) ([]*model.Graduate, error)
}

// CompanyStore reads employer profiles.
type CompanyStore interface {
	Count(ctx context.Context, filter Predicate) (int64, error)
	Find(ctx context.Context, filter Predicate, sort Sort, skip, limit int64) ([]*model.Company, error)
}

// JobStore reads job postings. Find attaches the referenced company's name
// and industry best-effort; a dangling reference leaves them empty.
type JobStore interface {
	Count(ctx context.Context, filter Predicate) (int64, error)
	Find(ctx context.Context, filter Predicate, sort Sort, skip, limit int64) ([]*model.Job, error)
}

// MatchStore reads precomputed matches. AverageScore returns 0 when no
// match satisfies the filter.
type MatchStore interface {
	Count(ctx context.Context, filter Predicate) (int64, error)
	Find(ctx context.Context, filter Predicate, sort Sort, skip, limit int64) ([]*model.Match, error)
	AverageScore(ctx context.Context, filter Predicate) (float64, error)
}

// ApplicationStore reads applications.
type ApplicationStore interface {
	Count(ctx context.Context, filter Predicate) (int64, error)
	Find(ctx context.Context, filter Predicate, sort Sort, skip, limit int64) ([]*model.Application, error)
}

// Stores bundles every per-entity store the reporting engine fans out over.
type Stores struct {
	Users        UserStore
	Graduates    GraduateStore
	Companies    CompanyStore
	Jobs         JobStore
	Matches      MatchStore
	Applications ApplicationStore
}
