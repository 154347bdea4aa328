package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hirewire/hirewire/internal/models"
	"github.com/hirewire/hirewire/internal/store"
	apperrors "github.com/hirewire/hirewire/pkg/errors"
)

type applicationFixture struct {
	applications  *ApplicationService
	jobs          *JobService
	notifications *NotificationService
	profiles      *ProfileService
	store         *store.Store
}

func newApplicationFixture(t *testing.T) *applicationFixture {
	t.Helper()
	st := newTestStore(t)
	notifications, err := NewNotificationService(st, nil)
	require.NoError(t, err)
	profiles, err := NewProfileService(st)
	require.NoError(t, err)
	jobs, err := NewJobService(st, notifications)
	require.NoError(t, err)
	applications, err := NewApplicationService(st, notifications, profiles)
	require.NoError(t, err)
	return &applicationFixture{
		applications:  applications,
		jobs:          jobs,
		notifications: notifications,
		profiles:      profiles,
		store:         st,
	}
}

func (f *applicationFixture) seedCandidate(t *testing.T, email string) {
	t.Helper()
	var users []models.User
	require.NoError(t, f.store.Load(store.Candidates, &users))
	users = append(users, models.User{Email: email, Password: "pw", Type: models.RoleCandidate})
	require.NoError(t, f.store.Save(store.Candidates, users))
}

func (f *applicationFixture) seedJob(t *testing.T, title, companyEmail string) *models.Job {
	t.Helper()
	seedCompany(t, f.store, companyEmail)
	job, err := f.jobs.Create(context.Background(), CreateJobInput{
		Title:        title,
		Description:  "desc",
		CompanyEmail: companyEmail,
	})
	require.NoError(t, err)
	return job
}

func TestApplyHappyPathNotifiesCompany(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	f.seedCandidate(t, "dev@x.io")
	job := f.seedJob(t, "Backend Engineer", "hr@acme.io")

	application, err := f.applications.Apply(ctx, ApplyInput{
		JobID:          job.ID,
		CandidateEmail: "dev@x.io",
		CoverLetter:    "hi",
	})
	require.NoError(t, err)
	require.Equal(t, models.ApplicationStatusApplied, application.Status)
	require.False(t, application.AppliedDate.IsZero())

	items, err := f.notifications.ListForUser(ctx, "hr@acme.io", false)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Contains(t, items[0].Message, "Backend Engineer")
	require.Equal(t, models.RoleCompany, items[0].UserType)
}

func TestApplyValidations(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	job := f.seedJob(t, "SRE", "hr@acme.io")

	_, err := f.applications.Apply(ctx, ApplyInput{JobID: job.ID, CandidateEmail: "ghost@x.io"})
	require.Error(t, err)
	require.Equal(t, "Candidate not found", apperrors.FromError(err).Message)

	f.seedCandidate(t, "dev@x.io")
	_, err = f.applications.Apply(ctx, ApplyInput{JobID: "999", CandidateEmail: "dev@x.io"})
	require.Error(t, err)
	require.Equal(t, "Job not found", apperrors.FromError(err).Message)

	_, err = f.applications.Apply(ctx, ApplyInput{JobID: job.ID, CandidateEmail: "dev@x.io"})
	require.NoError(t, err)
	_, err = f.applications.Apply(ctx, ApplyInput{JobID: job.ID, CandidateEmail: "dev@x.io"})
	require.Error(t, err)
	require.Equal(t, "Already applied for this job", apperrors.FromError(err).Message)
}

func TestListByCandidateEmbedsJobAndInterview(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	f.seedCandidate(t, "dev@x.io")
	job := f.seedJob(t, "Data Engineer", "hr@acme.io")

	application, err := f.applications.Apply(ctx, ApplyInput{JobID: job.ID, CandidateEmail: "dev@x.io"})
	require.NoError(t, err)

	interviews := []models.Interview{{
		ID:             "1",
		ApplicationID:  application.ID,
		JobID:          job.ID,
		CandidateEmail: "dev@x.io",
		Score:          8,
		MaxScore:       10,
		Percentage:     80,
		Performance:    "Good",
		CompletedAt:    time.Now().UTC(),
	}}
	require.NoError(t, f.store.Save(store.Interviews, interviews))

	entries, err := f.applications.ListByCandidate(ctx, "dev@x.io")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].JobDetails)
	require.Equal(t, "Data Engineer", entries[0].JobDetails.Title)
	require.NotNil(t, entries[0].LatestInterview)
	require.InDelta(t, 80.0, entries[0].LatestInterview.Percentage, 0.001)
}

func TestListByJobEmbedsProfile(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	f.seedCandidate(t, "dev@x.io")
	require.NoError(t, f.profiles.Save(ctx, models.Profile{
		Email:  "dev@x.io",
		Name:   "Dev",
		Skills: []string{"go"},
	}))

	job := f.seedJob(t, "Go Engineer", "hr@acme.io")
	_, err := f.applications.Apply(ctx, ApplyInput{JobID: job.ID, CandidateEmail: "dev@x.io"})
	require.NoError(t, err)

	entries, err := f.applications.ListByJob(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].CandidateProfile)
	require.Equal(t, "Dev", entries[0].CandidateProfile.Name)
}

func TestUpdateStatusStampsAndNotifies(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	f.seedCandidate(t, "dev@x.io")
	job := f.seedJob(t, "QA Engineer", "hr@acme.io")
	application, err := f.applications.Apply(ctx, ApplyInput{JobID: job.ID, CandidateEmail: "dev@x.io"})
	require.NoError(t, err)

	updated, err := f.applications.UpdateStatus(ctx, application.ID, StatusUpdateInput{
		Status:    models.ApplicationStatusReviewed,
		Message:   "Looks promising",
		UpdatedBy: "hr@acme.io",
	})
	require.NoError(t, err)
	require.Equal(t, models.ApplicationStatusReviewed, updated.Status)
	require.NotNil(t, updated.StatusUpdatedAt)
	require.Equal(t, "hr@acme.io", updated.StatusUpdatedBy)
	require.Equal(t, "Looks promising", updated.StatusMessage)

	items, err := f.notifications.ListForUser(ctx, "dev@x.io", false)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Contains(t, items[0].Message, "QA Engineer")
	require.Contains(t, items[0].Message, "reviewed")
	require.Contains(t, items[0].Message, "Looks promising")
	require.Equal(t, models.ApplicationStatusApplied, items[0].Data["old_status"])
}

func TestUpdateStatusMissingJobFallbacks(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	f.seedCandidate(t, "dev@x.io")
	job := f.seedJob(t, "Data Engineer", "hr@acme.io")
	application, err := f.applications.Apply(ctx, ApplyInput{JobID: job.ID, CandidateEmail: "dev@x.io"})
	require.NoError(t, err)

	_, err = f.jobs.Delete(ctx, job.ID)
	require.NoError(t, err)

	_, err = f.applications.UpdateStatus(ctx, application.ID, StatusUpdateInput{
		Status:    models.ApplicationStatusRejected,
		UpdatedBy: "hr@acme.io",
	})
	require.NoError(t, err)

	items, err := f.notifications.ListForUser(ctx, "dev@x.io", false)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Contains(t, items[0].Message, "Your application for a job status updated")
	require.Equal(t, "Unknown Job", items[0].Data["job_title"])
}

func TestUpdateStatusUnknownApplication(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.applications.UpdateStatus(context.Background(), "404", StatusUpdateInput{Status: "reviewed"})
	require.Error(t, err)
	require.Equal(t, "Application not found", apperrors.FromError(err).Message)
}
