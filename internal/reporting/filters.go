// Package reporting implements the admin reporting engine: query
// sanitization, paginated concurrent collection reads, cross-entity
// statistics and the unified activity feed.
package reporting

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/gorilla/schema"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/talenthub/admin-api/internal/storage"
	"github.com/talenthub/admin-api/pkg/model"
)

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// DecodeQuery fills dst from the URL query. Unknown keys are ignored and
// malformed values degrade to their zero value, which the sanitizer drops.
func DecodeQuery(q url.Values, dst any) {
	_ = queryDecoder.Decode(dst, q)
}

// DecodePage extracts pagination parameters from the URL query. Malformed
// or missing values degrade to the defaults; the result always satisfies
// the PageRequest invariants.
func DecodePage(q url.Values) model.PageRequest {
	var p struct {
		Page  int `schema:"page"`
		Limit int `schema:"limit"`
	}
	// Decode errors leave the affected fields zero, which NewPageRequest
	// maps to the defaults.
	_ = queryDecoder.Decode(&p, q)
	return model.NewPageRequest(p.Page, p.Limit)
}

// UserListFilter carries the recognized user list query parameters, still
// untrusted. Predicate sanitizes them.
type UserListFilter struct {
	Role     string `schema:"role"`
	Verified string `schema:"verified"`
	Search   string `schema:"q"`
}

// Predicate builds the sanitized store filter. Absent, blank or invalid
// inputs are dropped entirely; they never reach the store.
func (f UserListFilter) Predicate() storage.Predicate {
	p := storage.Predicate{}
	putEnum(p, "role", f.Role, func(v string) bool { return model.Role(v).IsValid() })
	putBoolFlag(p, "emailVerified", f.Verified)
	putSearch(p, f.Search, "email", "name")
	return p
}

// GraduateListFilter carries the recognized graduate list query parameters.
type GraduateListFilter struct {
	Education string `schema:"education"`
	Search    string `schema:"q"`
}

func (f GraduateListFilter) Predicate() storage.Predicate {
	p := storage.Predicate{}
	putString(p, "education", f.Education)
	putSearch(p, f.Search, "fullName", "headline", "skills")
	return p
}

// JobListFilter carries the recognized job list query parameters.
type JobListFilter struct {
	Status    string `schema:"status"`
	CompanyID string `schema:"companyId"`
	Search    string `schema:"q"`
}

func (f JobListFilter) Predicate() storage.Predicate {
	p := storage.Predicate{}
	putEnum(p, "status", f.Status, func(v string) bool { return model.JobStatus(v).IsValid() })
	putObjectID(p, "companyId", f.CompanyID)
	putSearch(p, f.Search, "title", "description")
	return p
}

// MatchListFilter carries the recognized match list query parameters.
type MatchListFilter struct {
	Status     string `schema:"status"`
	GraduateID string `schema:"graduateId"`
	JobID      string `schema:"jobId"`
	MinScore   string `schema:"minScore"`
}

func (f MatchListFilter) Predicate() storage.Predicate {
	p := storage.Predicate{}
	putEnum(p, "status", f.Status, func(v string) bool { return model.MatchStatus(v).IsValid() })
	putObjectID(p, "graduateId", f.GraduateID)
	putObjectID(p, "jobId", f.JobID)
	if raw := strings.TrimSpace(f.MinScore); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v >= 0 && v <= 1 {
			p["score"] = bson.M{"$gte": v}
		}
	}
	return p
}

// ApplicationListFilter carries the recognized application list query
// parameters.
type ApplicationListFilter struct {
	Status     string `schema:"status"`
	GraduateID string `schema:"graduateId"`
	JobID      string `schema:"jobId"`
}

func (f ApplicationListFilter) Predicate() storage.Predicate {
	p := storage.Predicate{}
	putEnum(p, "status", f.Status, func(v string) bool { return model.ApplicationStatus(v).IsValid() })
	putObjectID(p, "graduateId", f.GraduateID)
	putObjectID(p, "jobId", f.JobID)
	return p
}

// putString adds a trimmed string equality filter, dropping blank values.
func putString(p storage.Predicate, key, raw string) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return
	}
	p[key] = v
}

// putEnum adds a string filter only when the value is a member of the
// declared enumeration. Non-members are dropped, not errors.
func putEnum(p storage.Predicate, key, raw string, valid func(string) bool) {
	v := strings.TrimSpace(raw)
	if v == "" || !valid(v) {
		return
	}
	p[key] = v
}

// putBoolFlag adds a boolean filter for a string-encoded flag. Only the
// exact value "true" maps to true; any other present value maps to false.
// Absent or blank input drops the key.
func putBoolFlag(p storage.Predicate, key, raw string) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return
	}
	p[key] = v == "true"
}

// putObjectID adds an identifier equality filter when the value is a valid
// ObjectID. A malformed identifier is silently dropped and the request
// proceeds without that filter.
func putObjectID(p storage.Predicate, key, raw string) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return
	}
	oid, err := primitive.ObjectIDFromHex(v)
	if err != nil {
		return
	}
	p[key] = oid
}

// putSearch adds a case-insensitive substring match across the given
// fields. The input is quoted so it is only ever the subject of the match,
// never a pattern of its own.
func putSearch(p storage.Predicate, raw string, fields ...string) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return
	}
	re := bson.M{"$regex": regexp.QuoteMeta(v), "$options": "i"}
	or := make([]bson.M, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: re})
	}
	p["$or"] = or
}
