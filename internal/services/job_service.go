package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/hirewire/hirewire/internal/matching"
	"github.com/hirewire/hirewire/internal/models"
	"github.com/hirewire/hirewire/internal/store"
	apperrors "github.com/hirewire/hirewire/pkg/errors"
	"github.com/hirewire/hirewire/pkg/logger"
)

// CreateJobInput defines the fields accepted when posting a job.
type CreateJobInput struct {
	Title           string
	Description     string
	Requirements    []string
	Location        string
	Salary          string
	Tags            []string
	CompanyEmail    string
	ExperienceLevel string
}

// JobService manages job postings and the creation-time notification fan-out.
type JobService struct {
	store         *store.Store
	notifications *NotificationService
	log           *zap.Logger
}

// NewJobService constructs a JobService.
func NewJobService(st *store.Store, notifications *NotificationService) (*JobService, error) {
	if st == nil {
		return nil, errors.New("job service: store is required")
	}
	if notifications == nil {
		return nil, errors.New("job service: notification service is required")
	}
	return &JobService{
		store:         st,
		notifications: notifications,
		log:           logger.WithModule("jobs"),
	}, nil
}

// Create validates the posting company, persists the job as open, and then
// fans out a notification to every candidate whose profile skills overlap
// the job's tags or requirements. Fan-out failures are logged and swallowed;
// the job creation has already committed.
func (s *JobService) Create(ctx context.Context, input CreateJobInput) (*models.Job, error) {
	var companies []models.User
	if err := s.store.Load(store.Companies, &companies); err != nil {
		return nil, fmt.Errorf("job service: load companies: %w", err)
	}
	if !lo.ContainsBy(companies, func(c models.User) bool { return c.Email == input.CompanyEmail }) {
		return nil, apperrors.NewBadRequest("Company not found")
	}

	var jobs []models.Job
	if err := s.store.Load(store.Jobs, &jobs); err != nil {
		return nil, fmt.Errorf("job service: load jobs: %w", err)
	}

	experience := input.ExperienceLevel
	if experience == "" {
		experience = "Mid-level"
	}

	job := models.Job{
		ID:              s.store.NextID(store.Jobs),
		Title:           input.Title,
		Description:     input.Description,
		Requirements:    input.Requirements,
		Location:        input.Location,
		Salary:          input.Salary,
		Tags:            input.Tags,
		CompanyEmail:    input.CompanyEmail,
		ExperienceLevel: experience,
		CompanyName:     emailLocalPart(input.CompanyEmail),
		Status:          models.JobStatusOpen,
		CreatedDate:     time.Now().UTC(),
	}
	if job.Requirements == nil {
		job.Requirements = []string{}
	}
	if job.Tags == nil {
		job.Tags = []string{}
	}

	jobs = append(jobs, job)
	if err := s.store.Save(store.Jobs, jobs); err != nil {
		return nil, fmt.Errorf("job service: save job: %w", err)
	}

	s.notifyMatchingCandidates(ctx, job)
	return &job, nil
}

// List returns every job posting.
func (s *JobService) List(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if err := s.store.Load(store.Jobs, &jobs); err != nil {
		return nil, fmt.Errorf("job service: load jobs: %w", err)
	}
	return jobs, nil
}

// Get returns the job with the given id.
func (s *JobService) Get(ctx context.Context, jobID string) (*models.Job, error) {
	var jobs []models.Job
	if err := s.store.Load(store.Jobs, &jobs); err != nil {
		return nil, fmt.Errorf("job service: load jobs: %w", err)
	}
	for i := range jobs {
		if jobs[i].ID == jobID {
			return &jobs[i], nil
		}
	}
	return nil, apperrors.NewNotFound("Job not found")
}

// ListByCompany returns all jobs posted by the company email.
func (s *JobService) ListByCompany(ctx context.Context, email string) ([]models.Job, error) {
	jobs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Filter(jobs, func(j models.Job, _ int) bool { return j.CompanyEmail == email }), nil
}

// Delete removes a job posting and returns the deleted record.
func (s *JobService) Delete(ctx context.Context, jobID string) (*models.Job, error) {
	var jobs []models.Job
	if err := s.store.Load(store.Jobs, &jobs); err != nil {
		return nil, fmt.Errorf("job service: load jobs: %w", err)
	}

	index := -1
	for i := range jobs {
		if jobs[i].ID == jobID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, apperrors.NewNotFound("Job not found")
	}

	deleted := jobs[index]
	jobs = append(jobs[:index], jobs[index+1:]...)

	if err := s.store.Save(store.Jobs, jobs); err != nil {
		return nil, fmt.Errorf("job service: delete job: %w", err)
	}
	return &deleted, nil
}

// notifyMatchingCandidates uses the cheap overlap heuristic, not the scoring
// one: any intersection between profile skills and the job's tags/requirements
// triggers a notification.
func (s *JobService) notifyMatchingCandidates(ctx context.Context, job models.Job) {
	var profiles []models.Profile
	if err := s.store.Load(store.Profiles, &profiles); err != nil {
		s.log.Warn("fan-out skipped, profiles unavailable", zap.Error(err))
		return
	}

	for _, profile := range profiles {
		if !matching.HasSkillOverlap(profile.Skills, job) {
			continue
		}

		_, err := s.notifications.Dispatch(ctx, DispatchInput{
			UserEmail: profile.Email,
			UserType:  models.RoleCandidate,
			Message:   fmt.Sprintf("New job matches your skills: %s", job.Title),
			Type:      "info",
			Data: map[string]any{
				"job_id":       job.ID,
				"job_title":    job.Title,
				"company":      job.CompanyEmail,
				"match_reason": "Your skills match this job",
			},
		})
		if err != nil {
			s.log.Warn("fan-out notification failed",
				zap.String("candidate", profile.Email),
				zap.String("job_id", job.ID),
				zap.Error(err))
		}
	}
}
