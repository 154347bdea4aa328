package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/hirewire/hirewire/internal/models"
	"github.com/hirewire/hirewire/internal/store"
)

// CandidateStats tallies a candidate's applications by status.
type CandidateStats struct {
	TotalApplications  int `json:"total_applications"`
	Applied            int `json:"applied"`
	Reviewed           int `json:"reviewed"`
	InterviewScheduled int `json:"interview_scheduled"`
	InterviewCompleted int `json:"interview_completed"`
	Accepted           int `json:"accepted"`
	Rejected           int `json:"rejected"`
	InterviewCount     int `json:"interview_count"`
}

// CompanyStats tallies a company's jobs, applications, and interviews.
type CompanyStats struct {
	TotalJobs          int     `json:"total_jobs"`
	OpenJobs           int     `json:"open_jobs"`
	ClosedJobs         int     `json:"closed_jobs"`
	TotalApplications  int     `json:"total_applications"`
	NewApplications    int     `json:"new_applications"`
	InterviewScheduled int     `json:"interview_scheduled"`
	InterviewCompleted int     `json:"interview_completed"`
	Hired              int     `json:"hired"`
	TotalInterviews    int     `json:"total_interviews"`
	AvgInterviewScore  float64 `json:"avg_interview_score"`
}

// Activity is a single entry in a user's recent-activity feed.
type Activity struct {
	Type        string         `json:"type"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Timestamp   time.Time      `json:"timestamp,omitzero"`
	Read        *bool          `json:"read,omitempty"`
	Data        map[string]any `json:"data,omitempty"`
}

// AnalyticsService computes read-side reporting over the record collections.
type AnalyticsService struct {
	store *store.Store
}

// NewAnalyticsService constructs an AnalyticsService.
func NewAnalyticsService(st *store.Store) (*AnalyticsService, error) {
	if st == nil {
		return nil, errors.New("analytics service: store is required")
	}
	return &AnalyticsService{store: st}, nil
}

// CandidateAnalytics returns the candidate's status tallies and their ten
// most recent applications.
func (s *AnalyticsService) CandidateAnalytics(ctx context.Context, email string) (*CandidateStats, []models.Application, error) {
	var applications []models.Application
	if err := s.store.Load(store.Applications, &applications); err != nil {
		return nil, nil, fmt.Errorf("analytics service: load applications: %w", err)
	}
	var interviews []models.Interview
	if err := s.store.Load(store.Interviews, &interviews); err != nil {
		return nil, nil, fmt.Errorf("analytics service: load interviews: %w", err)
	}

	candidateApps := lo.Filter(applications, func(a models.Application, _ int) bool {
		return a.CandidateEmail == email
	})

	stats := &CandidateStats{
		TotalApplications: len(candidateApps),
		InterviewCount: lo.CountBy(interviews, func(i models.Interview) bool {
			return i.CandidateEmail == email
		}),
	}
	for _, application := range candidateApps {
		switch application.Status {
		case models.ApplicationStatusApplied:
			stats.Applied++
		case models.ApplicationStatusReviewed:
			stats.Reviewed++
		case models.ApplicationStatusInterviewScheduled:
			stats.InterviewScheduled++
		case models.ApplicationStatusInterviewCompleted:
			stats.InterviewCompleted++
		case models.ApplicationStatusAccepted:
			stats.Accepted++
		case models.ApplicationStatusRejected:
			stats.Rejected++
		}
	}

	return stats, recentApplications(candidateApps, 10), nil
}

// CompanyAnalytics returns the company's job/application/interview tallies
// and the ten most recent applications across its jobs.
func (s *AnalyticsService) CompanyAnalytics(ctx context.Context, email string) (*CompanyStats, []models.Application, error) {
	var jobs []models.Job
	if err := s.store.Load(store.Jobs, &jobs); err != nil {
		return nil, nil, fmt.Errorf("analytics service: load jobs: %w", err)
	}
	var applications []models.Application
	if err := s.store.Load(store.Applications, &applications); err != nil {
		return nil, nil, fmt.Errorf("analytics service: load applications: %w", err)
	}
	var interviews []models.Interview
	if err := s.store.Load(store.Interviews, &interviews); err != nil {
		return nil, nil, fmt.Errorf("analytics service: load interviews: %w", err)
	}

	companyJobs := lo.Filter(jobs, func(j models.Job, _ int) bool { return j.CompanyEmail == email })
	jobIDs := lo.SliceToMap(companyJobs, func(j models.Job) (string, struct{}) { return j.ID, struct{}{} })

	stats := &CompanyStats{
		TotalJobs:  len(companyJobs),
		OpenJobs:   lo.CountBy(companyJobs, func(j models.Job) bool { return j.Status == models.JobStatusOpen }),
		ClosedJobs: lo.CountBy(companyJobs, func(j models.Job) bool { return j.Status == models.JobStatusClosed }),
	}

	companyApps := make([]models.Application, 0)
	for _, application := range applications {
		if _, ok := jobIDs[application.JobID]; !ok {
			continue
		}
		companyApps = append(companyApps, application)
		stats.TotalApplications++
		switch application.Status {
		case models.ApplicationStatusApplied:
			stats.NewApplications++
		case models.ApplicationStatusInterviewScheduled:
			stats.InterviewScheduled++
		case models.ApplicationStatusInterviewCompleted:
			stats.InterviewCompleted++
		case models.ApplicationStatusAccepted:
			stats.Hired++
		}
	}

	total := 0.0
	for _, interview := range interviews {
		if _, ok := jobIDs[interview.JobID]; !ok {
			continue
		}
		stats.TotalInterviews++
		total += interview.Percentage
	}
	if stats.TotalInterviews > 0 {
		stats.AvgInterviewScore = math.Round(total/float64(stats.TotalInterviews)*10) / 10
	}

	return stats, recentApplications(companyApps, 10), nil
}

// Activities merges the user's notifications and application updates into a
// single feed, newest first, capped at limit.
func (s *AnalyticsService) Activities(ctx context.Context, email string, limit int) ([]Activity, error) {
	if limit <= 0 {
		limit = 10
	}

	var notifications []models.Notification
	if err := s.store.Load(store.Notifications, &notifications); err != nil {
		return nil, fmt.Errorf("analytics service: load notifications: %w", err)
	}
	var applications []models.Application
	if err := s.store.Load(store.Applications, &applications); err != nil {
		return nil, fmt.Errorf("analytics service: load applications: %w", err)
	}

	// Each source is capped at limit in stored order before the merge, then
	// the merged feed is sorted and capped again.
	fromNotifications := make([]Activity, 0)
	for _, n := range notifications {
		if n.UserEmail != email {
			continue
		}
		read := n.Read
		fromNotifications = append(fromNotifications, Activity{
			Type:        "notification",
			Title:       n.Message,
			Description: n.Type,
			Timestamp:   n.CreatedAt,
			Read:        &read,
		})
	}

	fromApplications := make([]Activity, 0)
	for _, application := range applications {
		if application.CandidateEmail != email {
			continue
		}
		timestamp := application.AppliedDate
		if application.StatusUpdatedAt != nil {
			timestamp = *application.StatusUpdatedAt
		}
		fromApplications = append(fromApplications, Activity{
			Type:        "application_update",
			Title:       "Application status updated",
			Description: fmt.Sprintf("Status changed to %s", application.Status),
			Timestamp:   timestamp,
			Data: map[string]any{
				"job_id": application.JobID,
				"status": application.Status,
			},
		})
	}

	activities := make([]Activity, 0, len(fromNotifications)+len(fromApplications))
	activities = append(activities, capActivities(fromNotifications, limit)...)
	activities = append(activities, capActivities(fromApplications, limit)...)

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Timestamp.After(activities[j].Timestamp)
	})

	return capActivities(activities, limit), nil
}

func capActivities(activities []Activity, limit int) []Activity {
	if len(activities) > limit {
		return activities[:limit]
	}
	return activities
}

// PlatformTotals counts every collection for the public stats endpoint.
func (s *AnalyticsService) PlatformTotals(ctx context.Context) map[string]int {
	return map[string]int{
		"candidates":    s.store.Count(store.Candidates),
		"companies":     s.store.Count(store.Companies),
		"jobs":          s.store.Count(store.Jobs),
		"applications":  s.store.Count(store.Applications),
		"profiles":      s.store.Count(store.Profiles),
		"notifications": s.store.Count(store.Notifications),
		"interviews":    s.store.Count(store.Interviews),
	}
}

func recentApplications(applications []models.Application, limit int) []models.Application {
	sorted := make([]models.Application, len(applications))
	copy(sorted, applications)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AppliedDate.After(sorted[j].AppliedDate)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
