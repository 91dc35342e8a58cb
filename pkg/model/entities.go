package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the account role of a platform user.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleGraduate Role = "graduate"
	RoleCompany  Role = "company"
)

// IsValid checks if the role is a known member of the enumeration.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleGraduate, RoleCompany:
		return true
	}
	return false
}

// JobStatus is the lifecycle state of a job posting.
type JobStatus string

const (
	JobDraft  JobStatus = "draft"
	JobActive JobStatus = "active"
	JobPaused JobStatus = "paused"
	JobClosed JobStatus = "closed"
)

func (s JobStatus) IsValid() bool {
	switch s {
	case JobDraft, JobActive, JobPaused, JobClosed:
		return true
	}
	return false
}

// MatchStatus is the review state of an AI-suggested match.
type MatchStatus string

const (
	MatchPending   MatchStatus = "pending"
	MatchSuggested MatchStatus = "suggested"
	MatchAccepted  MatchStatus = "accepted"
	MatchRejected  MatchStatus = "rejected"
)

func (s MatchStatus) IsValid() bool {
	switch s {
	case MatchPending, MatchSuggested, MatchAccepted, MatchRejected:
		return true
	}
	return false
}

// ApplicationStatus is the stage of an application in the hiring pipeline.
type ApplicationStatus string

const (
	ApplicationApplied   ApplicationStatus = "applied"
	ApplicationInReview  ApplicationStatus = "in_review"
	ApplicationInterview ApplicationStatus = "interview"
	ApplicationOffered   ApplicationStatus = "offered"
	ApplicationRejected  ApplicationStatus = "rejected"
	ApplicationWithdrawn ApplicationStatus = "withdrawn"
)

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationApplied, ApplicationInReview, ApplicationInterview,
		ApplicationOffered, ApplicationRejected, ApplicationWithdrawn:
		return true
	}
	return false
}

// User is the projection of a platform account returned to admin callers.
//
// The stored document also carries a "passwordHash" field; the storage layer
// excludes it from every read projection, so it does not appear here.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name" json:"name"`
	Role      Role               `bson:"role" json:"role"`
	Verified  bool               `bson:"emailVerified" json:"emailVerified"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Graduate is the candidate profile linked to a graduate user.
type Graduate struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"userId" json:"userId"`
	FullName        string             `bson:"fullName" json:"fullName"`
	Headline        string             `bson:"headline,omitempty" json:"headline,omitempty"`
	Skills          []string           `bson:"skills,omitempty" json:"skills,omitempty"`
	Education       string             `bson:"education,omitempty" json:"education,omitempty"`
	ExperienceYears float64            `bson:"experienceYears,omitempty" json:"experienceYears,omitempty"`
	Location        string             `bson:"location,omitempty" json:"location,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Company is the employer profile linked to a company user.
type Company struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Name      string             `bson:"name" json:"name"`
	Industry  string             `bson:"industry,omitempty" json:"industry,omitempty"`
	Website   string             `bson:"website,omitempty" json:"website,omitempty"`
	Location  string             `bson:"location,omitempty" json:"location,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Job is a job posting. List reads attach CompanyName and CompanyIndustry
// from the referenced company when it exists; the fields stay empty when the
// reference is dangling.
type Job struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CompanyID   primitive.ObjectID `bson:"companyId" json:"companyId"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Skills      []string           `bson:"skills,omitempty" json:"skills,omitempty"`
	Status      JobStatus          `bson:"status" json:"status"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	SalaryMin   int                `bson:"salaryMin,omitempty" json:"salaryMin,omitempty"`
	SalaryMax   int                `bson:"salaryMax,omitempty" json:"salaryMax,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`

	CompanyName     string `bson:"-" json:"companyName,omitempty"`
	CompanyIndustry string `bson:"-" json:"companyIndustry,omitempty"`
}

// Match is a precomputed graduate-to-job match produced by the AI service.
// Score is in [0, 1]; this layer never recomputes it.
type Match struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	GraduateID primitive.ObjectID `bson:"graduateId" json:"graduateId"`
	JobID      primitive.ObjectID `bson:"jobId" json:"jobId"`
	Score      float64            `bson:"score" json:"score"`
	Status     MatchStatus        `bson:"status" json:"status"`
	Factors    map[string]float64 `bson:"factors,omitempty" json:"factors,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Application is a graduate's application to a job, usually created from an
// accepted match.
type Application struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MatchID    primitive.ObjectID `bson:"matchId,omitempty" json:"matchId,omitempty"`
	GraduateID primitive.ObjectID `bson:"graduateId" json:"graduateId"`
	JobID      primitive.ObjectID `bson:"jobId" json:"jobId"`
	Status     ApplicationStatus  `bson:"status" json:"status"`
	Note       string             `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
