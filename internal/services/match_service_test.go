package services

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hirewire/hirewire/internal/models"
	"github.com/hirewire/hirewire/internal/store"
)

func newTestMatchService(t *testing.T) (*MatchService, *ProfileService, *store.Store) {
	t.Helper()
	st := newTestStore(t)
	profiles, err := NewProfileService(st)
	require.NoError(t, err)
	svc, err := NewMatchService(st, profiles)
	require.NoError(t, err)
	return svc, profiles, st
}

func TestMatchedJobsRankedByScore(t *testing.T) {
	svc, profiles, st := newTestMatchService(t)
	ctx := context.Background()

	require.NoError(t, profiles.Save(ctx, models.Profile{
		Email:  "dev@x.io",
		Skills: []string{"python", "react"},
	}))

	jobs := []models.Job{
		{ID: "1", Title: "Python Developer", Description: "Looking for python expert", Requirements: []string{"react experience"}, Status: models.JobStatusOpen},
		{ID: "2", Title: "python react", Status: models.JobStatusOpen},
		{ID: "3", Title: "Closed python role", Status: models.JobStatusClosed},
		{ID: "4", Title: "Embedded Firmware", Description: "pure hardware", Status: models.JobStatusOpen},
	}
	require.NoError(t, st.Save(store.Jobs, jobs))

	matched, err := svc.MatchedJobs(ctx, "dev@x.io")
	require.NoError(t, err)
	require.Len(t, matched, 2)

	// Job 2's universe is exactly the two skills, so it outranks job 1.
	require.Equal(t, "2", matched[0].ID)
	require.InDelta(t, 100.0, matched[0].MatchScore, 0.001)
	require.Equal(t, "1", matched[1].ID)
	require.InDelta(t, 33.3, matched[1].MatchScore, 0.001)
	require.Equal(t, []string{"python", "react"}, matched[1].MatchingSkills)
}

func TestMatchedJobsWithoutProfile(t *testing.T) {
	svc, _, st := newTestMatchService(t)

	jobs := []models.Job{{ID: "1", Title: "Anything Engineer", Status: models.JobStatusOpen}}
	require.NoError(t, st.Save(store.Jobs, jobs))

	matched, err := svc.MatchedJobs(context.Background(), "nobody@x.io")
	require.NoError(t, err)
	require.Empty(t, matched)
}

func TestMatchedJobsCappedAtTwenty(t *testing.T) {
	svc, profiles, st := newTestMatchService(t)
	ctx := context.Background()

	require.NoError(t, profiles.Save(ctx, models.Profile{
		Email:  "dev@x.io",
		Skills: []string{"golang"},
	}))

	jobs := make([]models.Job, 0, 25)
	for i := 1; i <= 25; i++ {
		jobs = append(jobs, models.Job{
			ID:     strconv.Itoa(i),
			Title:  "golang engineer",
			Status: models.JobStatusOpen,
		})
	}
	require.NoError(t, st.Save(store.Jobs, jobs))

	matched, err := svc.MatchedJobs(ctx, "dev@x.io")
	require.NoError(t, err)
	require.Len(t, matched, 20)
}
