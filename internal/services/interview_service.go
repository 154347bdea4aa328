package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/hirewire/hirewire/internal/ai"
	"github.com/hirewire/hirewire/internal/models"
	"github.com/hirewire/hirewire/internal/store"
	apperrors "github.com/hirewire/hirewire/pkg/errors"
)

// SaveInterviewInput carries a completed interview's results.
type SaveInterviewInput struct {
	CandidateEmail string
	JobID          string
	ApplicationID  string
	Score          float64
	MaxScore       float64
	Percentage     float64
	Performance    string
	Answers        []map[string]any
	TimeTaken      int
}

// InterviewService runs the AI question flow and records interview outcomes.
type InterviewService struct {
	store         *store.Store
	notifications *NotificationService
	interviewer   *ai.Interviewer
}

// NewInterviewService constructs an InterviewService.
func NewInterviewService(st *store.Store, notifications *NotificationService, interviewer *ai.Interviewer) (*InterviewService, error) {
	if st == nil {
		return nil, errors.New("interview service: store is required")
	}
	if notifications == nil {
		return nil, errors.New("interview service: notification service is required")
	}
	if interviewer == nil {
		return nil, errors.New("interview service: interviewer is required")
	}
	return &InterviewService{store: st, notifications: notifications, interviewer: interviewer}, nil
}

// NextQuestion asks the language model for the next question for the role,
// following up on the candidate's previous answer when present.
func (s *InterviewService) NextQuestion(ctx context.Context, jobRole, lastAnswer string) (string, error) {
	if jobRole == "" {
		return "", apperrors.NewBadRequest("Job role is required")
	}
	return s.interviewer.NextQuestion(ctx, jobRole, lastAnswer), nil
}

// SaveResults persists the interview record, flips the application to
// interview_completed with the score, and notifies both parties. Steps after
// the interview write are individually best-effort; prior steps stay
// committed when a later one fails.
func (s *InterviewService) SaveResults(ctx context.Context, input SaveInterviewInput) (*models.Interview, error) {
	var applications []models.Application
	if err := s.store.Load(store.Applications, &applications); err != nil {
		return nil, fmt.Errorf("interview service: load applications: %w", err)
	}

	index := -1
	for i := range applications {
		if applications[i].ID == input.ApplicationID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, apperrors.NewNotFound("Application not found")
	}

	var interviews []models.Interview
	if err := s.store.Load(store.Interviews, &interviews); err != nil {
		return nil, fmt.Errorf("interview service: load interviews: %w", err)
	}

	interview := models.Interview{
		ID:             s.store.NextID(store.Interviews),
		CandidateEmail: input.CandidateEmail,
		JobID:          input.JobID,
		ApplicationID:  input.ApplicationID,
		Score:          input.Score,
		MaxScore:       input.MaxScore,
		Percentage:     input.Percentage,
		Performance:    input.Performance,
		Answers:        input.Answers,
		TimeTaken:      input.TimeTaken,
		CompletedAt:    time.Now().UTC(),
	}
	if interview.Answers == nil {
		interview.Answers = []map[string]any{}
	}

	interviews = append(interviews, interview)
	if err := s.store.Save(store.Interviews, interviews); err != nil {
		return nil, fmt.Errorf("interview service: save interview: %w", err)
	}

	now := time.Now().UTC()
	score := input.Percentage
	applications[index].Status = models.ApplicationStatusInterviewCompleted
	applications[index].InterviewScore = &score
	applications[index].StatusUpdatedAt = &now
	applications[index].StatusUpdatedBy = "system"
	if err := s.store.Save(store.Applications, applications); err != nil {
		return nil, fmt.Errorf("interview service: update application: %w", err)
	}

	var jobs []models.Job
	var job models.Job
	if err := s.store.Load(store.Jobs, &jobs); err == nil {
		job, _ = lo.Find(jobs, func(j models.Job) bool { return j.ID == input.JobID })
	}

	jobTitle := job.Title
	if jobTitle == "" {
		jobTitle = "job"
	}

	_, _ = s.notifications.Dispatch(ctx, DispatchInput{
		UserEmail: job.CompanyEmail,
		UserType:  models.RoleCompany,
		Message:   fmt.Sprintf("Interview completed for candidate: %s", input.CandidateEmail),
		Type:      "info",
		Data: map[string]any{
			"application_id":  input.ApplicationID,
			"candidate_email": input.CandidateEmail,
			"job_id":          input.JobID,
			"score":           input.Percentage,
			"performance":     input.Performance,
		},
	})

	_, _ = s.notifications.Dispatch(ctx, DispatchInput{
		UserEmail: input.CandidateEmail,
		UserType:  models.RoleCandidate,
		Message:   fmt.Sprintf("Your interview for %s has been completed. Score: %v%%", jobTitle, input.Percentage),
		Type:      "info",
		Data: map[string]any{
			"application_id": input.ApplicationID,
			"job_id":         input.JobID,
			"score":          input.Percentage,
			"performance":    input.Performance,
		},
	})

	return &interview, nil
}

// ListByApplication returns interviews for an application, most recent first.
func (s *InterviewService) ListByApplication(ctx context.Context, applicationID string) ([]models.Interview, error) {
	var interviews []models.Interview
	if err := s.store.Load(store.Interviews, &interviews); err != nil {
		return nil, fmt.Errorf("interview service: load interviews: %w", err)
	}

	matched := lo.Filter(interviews, func(i models.Interview, _ int) bool {
		return i.ApplicationID == applicationID
	})
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CompletedAt.After(matched[j].CompletedAt)
	})
	return matched, nil
}

// ListByCandidate returns a candidate's interviews with job title and company
// joined in, most recent first.
func (s *InterviewService) ListByCandidate(ctx context.Context, email string) ([]models.Interview, error) {
	var interviews []models.Interview
	if err := s.store.Load(store.Interviews, &interviews); err != nil {
		return nil, fmt.Errorf("interview service: load interviews: %w", err)
	}
	var jobs []models.Job
	if err := s.store.Load(store.Jobs, &jobs); err != nil {
		return nil, fmt.Errorf("interview service: load jobs: %w", err)
	}

	matched := lo.Filter(interviews, func(i models.Interview, _ int) bool {
		return i.CandidateEmail == email
	})
	for i := range matched {
		if job, ok := lo.Find(jobs, func(j models.Job) bool { return j.ID == matched[i].JobID }); ok {
			matched[i].JobTitle = job.Title
			matched[i].CompanyEmail = job.CompanyEmail
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CompletedAt.After(matched[j].CompletedAt)
	})
	return matched, nil
}

// ListByJob returns a job's interviews sorted by percentage descending.
func (s *InterviewService) ListByJob(ctx context.Context, jobID string) ([]models.Interview, error) {
	var interviews []models.Interview
	if err := s.store.Load(store.Interviews, &interviews); err != nil {
		return nil, fmt.Errorf("interview service: load interviews: %w", err)
	}

	matched := lo.Filter(interviews, func(i models.Interview, _ int) bool {
		return i.JobID == jobID
	})
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Percentage > matched[j].Percentage
	})
	return matched, nil
}
