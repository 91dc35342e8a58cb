package reporting

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/talenthub/admin-api/internal/storage"
	"github.com/talenthub/admin-api/pkg/model"
)

const (
	// recentFetchLimit is how many recent records each source contributes
	// before the merge.
	recentFetchLimit = 5
	// maxFeedEvents bounds the merged feed length.
	maxFeedEvents = 20
)

// RecentActivity builds the unified reverse-chronological feed. Each source
// is fetched concurrently; one failing source fails the whole request.
// Events with equal timestamps keep their insertion order: users, jobs,
// matches, applications.
func (s *service) RecentActivity(ctx context.Context) ([]model.ActivityEvent, error) {
	var (
		users        []*model.User
		jobs         []*model.Job
		matches      []*model.Match
		applications []*model.Application
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.stores.Users.Find(gctx, nil, storage.SortByCreated, 0, recentFetchLimit)
		return err
	})
	g.Go(func() error {
		var err error
		jobs, err = s.stores.Jobs.Find(gctx, nil, storage.SortByCreated, 0, recentFetchLimit)
		return err
	})
	g.Go(func() error {
		var err error
		matches, err = s.stores.Matches.Find(gctx, nil, storage.SortByUpdated, 0, recentFetchLimit)
		return err
	})
	g.Go(func() error {
		var err error
		applications, err = s.stores.Applications.Find(gctx, nil, storage.SortByUpdated, 0, recentFetchLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	events := make([]model.ActivityEvent, 0, len(users)+len(jobs)+len(matches)+len(applications))
	for _, u := range users {
		events = append(events, userEvent(u))
	}
	for _, j := range jobs {
		events = append(events, jobEvent(j))
	}
	for _, m := range matches {
		events = append(events, matchEvent(m))
	}
	for _, a := range applications {
		events = append(events, applicationEvent(a))
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp)
	})
	if len(events) > maxFeedEvents {
		events = events[:maxFeedEvents]
	}
	return events, nil
}

// eventTime picks the kind-appropriate timestamp, falling back to the
// creation time so no event is ever dropped for lacking one.
func eventTime(updated *time.Time, created time.Time) time.Time {
	if updated != nil && !updated.IsZero() {
		return *updated
	}
	return created
}

func userEvent(u *model.User) model.ActivityEvent {
	return model.ActivityEvent{
		Type:      model.ActivityUser,
		Action:    "created",
		Timestamp: u.CreatedAt,
		Summary:   fmt.Sprintf("New %s account: %s", u.Role, u.Email),
		Metadata: map[string]string{
			"userId": u.ID.Hex(),
		},
	}
}

func jobEvent(j *model.Job) model.ActivityEvent {
	summary := fmt.Sprintf("Job posted: %s", j.Title)
	if j.CompanyName != "" {
		summary = fmt.Sprintf("Job posted: %s at %s", j.Title, j.CompanyName)
	}
	return model.ActivityEvent{
		Type:      model.ActivityJob,
		Action:    "created",
		Timestamp: j.CreatedAt,
		Summary:   summary,
		Metadata: map[string]string{
			"jobId":     j.ID.Hex(),
			"companyId": j.CompanyID.Hex(),
		},
	}
}

func matchEvent(m *model.Match) model.ActivityEvent {
	return model.ActivityEvent{
		Type:      model.ActivityMatch,
		Action:    "updated",
		Timestamp: eventTime(m.UpdatedAt, m.CreatedAt),
		Summary:   fmt.Sprintf("Match %s (score %.2f)", m.Status, m.Score),
		Metadata: map[string]string{
			"matchId":    m.ID.Hex(),
			"graduateId": m.GraduateID.Hex(),
			"jobId":      m.JobID.Hex(),
		},
	}
}

func applicationEvent(a *model.Application) model.ActivityEvent {
	return model.ActivityEvent{
		Type:      model.ActivityApplication,
		Action:    "updated",
		Timestamp: eventTime(a.UpdatedAt, a.CreatedAt),
		Summary:   fmt.Sprintf("Application %s", a.Status),
		Metadata: map[string]string{
			"applicationId": a.ID.Hex(),
			"graduateId":    a.GraduateID.Hex(),
			"jobId":         a.JobID.Hex(),
		},
	}
}
