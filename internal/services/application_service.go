package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/hirewire/hirewire/internal/models"
	"github.com/hirewire/hirewire/internal/store"
	apperrors "github.com/hirewire/hirewire/pkg/errors"
)

// ApplyInput carries a new job application.
type ApplyInput struct {
	JobID          string
	CandidateEmail string
	CoverLetter    string
}

// StatusUpdateInput carries an application status transition.
type StatusUpdateInput struct {
	Status    string
	Message   string
	UpdatedBy string
}

// CandidateApplication is an application augmented with its job posting and
// the candidate's most recent interview outcome.
type CandidateApplication struct {
	models.Application

	JobDetails      *models.Job              `json:"job_details,omitempty"`
	LatestInterview *models.InterviewSummary `json:"latest_interview,omitempty"`
}

// JobApplication is an application augmented with the candidate's profile and
// their most recent interview outcome.
type JobApplication struct {
	models.Application

	CandidateProfile *models.Profile          `json:"candidate_profile,omitempty"`
	LatestInterview  *models.InterviewSummary `json:"latest_interview,omitempty"`
}

// ApplicationService manages applications and their status lifecycle.
type ApplicationService struct {
	store         *store.Store
	notifications *NotificationService
	profiles      *ProfileService
}

// NewApplicationService constructs an ApplicationService.
func NewApplicationService(st *store.Store, notifications *NotificationService, profiles *ProfileService) (*ApplicationService, error) {
	if st == nil {
		return nil, errors.New("application service: store is required")
	}
	if notifications == nil {
		return nil, errors.New("application service: notification service is required")
	}
	if profiles == nil {
		return nil, errors.New("application service: profile service is required")
	}
	return &ApplicationService{store: st, notifications: notifications, profiles: profiles}, nil
}

// Apply validates the candidate and job, rejects duplicates, persists the
// application, and notifies the posting company.
func (s *ApplicationService) Apply(ctx context.Context, input ApplyInput) (*models.Application, error) {
	var candidates []models.User
	if err := s.store.Load(store.Candidates, &candidates); err != nil {
		return nil, fmt.Errorf("application service: load candidates: %w", err)
	}
	if !lo.ContainsBy(candidates, func(c models.User) bool { return c.Email == input.CandidateEmail }) {
		return nil, apperrors.NewBadRequest("Candidate not found")
	}

	var jobs []models.Job
	if err := s.store.Load(store.Jobs, &jobs); err != nil {
		return nil, fmt.Errorf("application service: load jobs: %w", err)
	}
	job, found := lo.Find(jobs, func(j models.Job) bool { return j.ID == input.JobID })
	if !found {
		return nil, apperrors.NewBadRequest("Job not found")
	}

	var applications []models.Application
	if err := s.store.Load(store.Applications, &applications); err != nil {
		return nil, fmt.Errorf("application service: load applications: %w", err)
	}

	duplicate := lo.ContainsBy(applications, func(a models.Application) bool {
		return a.JobID == input.JobID && a.CandidateEmail == input.CandidateEmail
	})
	if duplicate {
		return nil, apperrors.NewBadRequest("Already applied for this job")
	}

	application := models.Application{
		ID:             s.store.NextID(store.Applications),
		JobID:          input.JobID,
		CandidateEmail: input.CandidateEmail,
		CoverLetter:    input.CoverLetter,
		Status:         models.ApplicationStatusApplied,
		AppliedDate:    time.Now().UTC(),
	}

	applications = append(applications, application)
	if err := s.store.Save(store.Applications, applications); err != nil {
		return nil, fmt.Errorf("application service: save application: %w", err)
	}

	// Best-effort; the application is already committed.
	_, _ = s.notifications.Dispatch(ctx, DispatchInput{
		UserEmail: job.CompanyEmail,
		UserType:  models.RoleCompany,
		Message:   fmt.Sprintf("New application received for %s", job.Title),
		Type:      "info",
		Data: map[string]any{
			"application_id":  application.ID,
			"job_id":          input.JobID,
			"job_title":       job.Title,
			"candidate_email": input.CandidateEmail,
		},
	})

	return &application, nil
}

// ListByCandidate returns a candidate's applications with their job postings
// and latest interview outcomes embedded.
func (s *ApplicationService) ListByCandidate(ctx context.Context, email string) ([]CandidateApplication, error) {
	var applications []models.Application
	if err := s.store.Load(store.Applications, &applications); err != nil {
		return nil, fmt.Errorf("application service: load applications: %w", err)
	}

	var jobs []models.Job
	if err := s.store.Load(store.Jobs, &jobs); err != nil {
		return nil, fmt.Errorf("application service: load jobs: %w", err)
	}

	latest, err := s.latestInterviews(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]CandidateApplication, 0)
	for _, application := range applications {
		if application.CandidateEmail != email {
			continue
		}

		entry := CandidateApplication{Application: application}
		if job, ok := lo.Find(jobs, func(j models.Job) bool { return j.ID == application.JobID }); ok {
			jobCopy := job
			entry.JobDetails = &jobCopy
		}
		entry.LatestInterview = latest[application.ID]
		result = append(result, entry)
	}
	return result, nil
}

// ListByJob returns a job's applications with candidate profiles and latest
// interview outcomes embedded.
func (s *ApplicationService) ListByJob(ctx context.Context, jobID string) ([]JobApplication, error) {
	var applications []models.Application
	if err := s.store.Load(store.Applications, &applications); err != nil {
		return nil, fmt.Errorf("application service: load applications: %w", err)
	}

	latest, err := s.latestInterviews(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]JobApplication, 0)
	for _, application := range applications {
		if application.JobID != jobID {
			continue
		}

		entry := JobApplication{Application: application}
		if profile, err := s.profiles.Find(ctx, application.CandidateEmail); err == nil && profile != nil {
			entry.CandidateProfile = profile
		}
		entry.LatestInterview = latest[application.ID]
		result = append(result, entry)
	}
	return result, nil
}

// UpdateStatus transitions an application's status, stamps the audit fields,
// and notifies the candidate. The notification is best-effort.
func (s *ApplicationService) UpdateStatus(ctx context.Context, applicationID string, input StatusUpdateInput) (*models.Application, error) {
	var applications []models.Application
	if err := s.store.Load(store.Applications, &applications); err != nil {
		return nil, fmt.Errorf("application service: load applications: %w", err)
	}

	index := -1
	for i := range applications {
		if applications[i].ID == applicationID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, apperrors.NewNotFound("Application not found")
	}

	oldStatus := applications[index].Status
	if oldStatus == "" {
		oldStatus = models.ApplicationStatusApplied
	}

	now := time.Now().UTC()
	applications[index].Status = input.Status
	applications[index].StatusUpdatedAt = &now
	applications[index].StatusUpdatedBy = input.UpdatedBy
	applications[index].StatusMessage = input.Message

	if err := s.store.Save(store.Applications, applications); err != nil {
		return nil, fmt.Errorf("application service: update status: %w", err)
	}

	updated := applications[index]

	// The message uses a conversational fallback, the data payload a labelled one.
	var jobs []models.Job
	messageTitle := "a job"
	dataTitle := "Unknown Job"
	if err := s.store.Load(store.Jobs, &jobs); err == nil {
		if job, ok := lo.Find(jobs, func(j models.Job) bool { return j.ID == updated.JobID }); ok {
			messageTitle = job.Title
			dataTitle = job.Title
		}
	}

	message := fmt.Sprintf("Your application for %s status updated to '%s'", messageTitle, input.Status)
	if input.Message != "" {
		message += ": " + input.Message
	}

	_, _ = s.notifications.Dispatch(ctx, DispatchInput{
		UserEmail: updated.CandidateEmail,
		UserType:  models.RoleCandidate,
		Message:   message,
		Type:      "info",
		Data: map[string]any{
			"application_id": applicationID,
			"job_id":         updated.JobID,
			"job_title":      dataTitle,
			"old_status":     oldStatus,
			"new_status":     input.Status,
			"company":        input.UpdatedBy,
		},
	})

	return &updated, nil
}

// latestInterviews maps application id to its most recent interview summary.
func (s *ApplicationService) latestInterviews(ctx context.Context) (map[string]*models.InterviewSummary, error) {
	var interviews []models.Interview
	if err := s.store.Load(store.Interviews, &interviews); err != nil {
		return nil, fmt.Errorf("application service: load interviews: %w", err)
	}

	sort.SliceStable(interviews, func(i, j int) bool {
		return interviews[i].CompletedAt.After(interviews[j].CompletedAt)
	})

	latest := make(map[string]*models.InterviewSummary)
	for _, interview := range interviews {
		if _, seen := latest[interview.ApplicationID]; seen {
			continue
		}
		latest[interview.ApplicationID] = &models.InterviewSummary{
			Score:       interview.Score,
			MaxScore:    interview.MaxScore,
			Percentage:  interview.Percentage,
			Performance: interview.Performance,
			CompletedAt: interview.CompletedAt,
		}
	}
	return latest, nil
}
