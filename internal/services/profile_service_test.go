package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hirewire/hirewire/internal/models"
	"github.com/hirewire/hirewire/internal/store"
)

func newTestProfileService(t *testing.T) (*ProfileService, *store.Store) {
	t.Helper()
	st := newTestStore(t)
	svc, err := NewProfileService(st)
	require.NoError(t, err)
	return svc, st
}

func TestProfileSaveInsertThenUpdate(t *testing.T) {
	svc, _ := newTestProfileService(t)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, models.Profile{
		Email:  "dev@x.io",
		Name:   "Dev",
		Skills: []string{"go"},
	}))

	saved, err := svc.Find(ctx, "dev@x.io")
	require.NoError(t, err)
	require.NotNil(t, saved)
	require.NotNil(t, saved.CreatedAt)
	require.NotNil(t, saved.UpdatedAt)
	created := *saved.CreatedAt

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, svc.Save(ctx, models.Profile{
		Email:  "dev@x.io",
		Name:   "Dev Updated",
		Skills: []string{"go", "sql"},
	}))

	updated, err := svc.Find(ctx, "dev@x.io")
	require.NoError(t, err)
	require.Equal(t, "Dev Updated", updated.Name)
	require.Len(t, updated.Skills, 2)
	require.True(t, updated.CreatedAt.Equal(created))
	require.True(t, updated.UpdatedAt.After(created))
}

func TestProfileGetSynthesizesDefault(t *testing.T) {
	svc, st := newTestProfileService(t)
	ctx := context.Background()

	candidates := []models.User{{Email: "named@x.io", Password: "pw", Type: models.RoleCandidate, Name: "Named Person"}}
	require.NoError(t, st.Save(store.Candidates, candidates))

	profile, err := svc.Get(ctx, "named@x.io")
	require.NoError(t, err)
	require.Equal(t, "Named Person", profile.Name)
	require.Empty(t, profile.Skills)
	require.NotNil(t, profile.Skills)

	// Unknown candidates fall back to the email local part.
	profile, err = svc.Get(ctx, "stranger@x.io")
	require.NoError(t, err)
	require.Equal(t, "stranger", profile.Name)
}

func TestProfileCompanyViewFiltersByCompany(t *testing.T) {
	svc, st := newTestProfileService(t)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, models.Profile{
		Email:      "dev@x.io",
		Name:       "Dev",
		Skills:     []string{"Python", "Leadership", "Gardening"},
		Experience: "5 years",
		Education:  "BSc",
	}))

	jobs := []models.Job{
		{ID: "1", Title: "Backend", Location: "Remote", CompanyEmail: "hr@acme.io"},
		{ID: "2", Title: "Frontend", CompanyEmail: "jobs@other.io"},
	}
	require.NoError(t, st.Save(store.Jobs, jobs))

	applications := []models.Application{
		{
			ID:             "1",
			JobID:          "1",
			CandidateEmail: "dev@x.io",
			CoverLetter:    "please hire me",
			Status:         models.ApplicationStatusReviewed,
			StatusMessage:  "looks strong",
			AppliedDate:    time.Now().UTC(),
		},
		{ID: "2", JobID: "2", CandidateEmail: "dev@x.io", Status: models.ApplicationStatusApplied, AppliedDate: time.Now().UTC()},
	}
	require.NoError(t, st.Save(store.Applications, applications))

	view, err := svc.CompanyView(ctx, "dev@x.io", "hr@acme.io")
	require.NoError(t, err)

	require.Len(t, view.CompanyApplications, 1)
	entry := view.CompanyApplications[0]
	require.Equal(t, "Backend", entry.JobTitle)
	require.Equal(t, "Remote", entry.JobLocation)

	// The entry carries the whole application record, not a field subset.
	require.Equal(t, "please hire me", entry.CoverLetter)
	require.Equal(t, "looks strong", entry.StatusMessage)
	require.Equal(t, models.ApplicationStatusReviewed, entry.Status)

	require.Equal(t, 3, view.SkillsAnalysis.TotalSkills)
	require.Equal(t, []string{"Python"}, view.SkillsAnalysis.TechnicalSkills)
	require.Equal(t, []string{"Leadership"}, view.SkillsAnalysis.SoftSkills)

	// name+skills+experience+education = 80, no bio or resume.
	require.Equal(t, 80, view.ProfileCompleteness)
	require.NotEmpty(t, view.LastUpdated)
}
