package model

import "time"

// ActivityType tags the source entity kind of a feed event.
type ActivityType string

const (
	ActivityUser        ActivityType = "user"
	ActivityJob         ActivityType = "job"
	ActivityMatch       ActivityType = "match"
	ActivityApplication ActivityType = "application"
)

// ActivityEvent is the single envelope all entity kinds are coerced into
// for the merged activity feed.
type ActivityEvent struct {
	Type      ActivityType      `json:"type"`
	Action    string            `json:"action"`
	Timestamp time.Time         `json:"timestamp"`
	Summary   string            `json:"summary"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// DashboardStats is the always-numeric statistics payload. Every field is a
// concrete number; AverageMatchScore is 0 (never null) when there are no
// matches.
type DashboardStats struct {
	TotalUsers          int64   `json:"totalUsers"`
	TotalGraduates      int64   `json:"totalGraduates"`
	TotalCompanies      int64   `json:"totalCompanies"`
	TotalJobs           int64   `json:"totalJobs"`
	ActiveJobs          int64   `json:"activeJobs"`
	TotalMatches        int64   `json:"totalMatches"`
	TotalApplications   int64   `json:"totalApplications"`
	PendingApplications int64   `json:"pendingApplications"`
	AverageMatchScore   float64 `json:"averageMatchScore"`
}
