package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/hirewire/hirewire/internal/matching"
	"github.com/hirewire/hirewire/internal/models"
	"github.com/hirewire/hirewire/internal/store"
)

// maxMatchedJobs caps the candidate-facing match listing.
const maxMatchedJobs = 20

// MatchService ranks open jobs against a candidate's profile skills.
type MatchService struct {
	store    *store.Store
	profiles *ProfileService
}

// NewMatchService constructs a MatchService.
func NewMatchService(st *store.Store, profiles *ProfileService) (*MatchService, error) {
	if st == nil {
		return nil, errors.New("match service: store is required")
	}
	if profiles == nil {
		return nil, errors.New("match service: profile service is required")
	}
	return &MatchService{store: st, profiles: profiles}, nil
}

// MatchedJobs scores every open job against the candidate's skills and
// returns the top matches, highest score first. Jobs with zero overlap are
// excluded. Results are recomputed on every call; nothing is cached.
func (s *MatchService) MatchedJobs(ctx context.Context, email string) ([]models.MatchedJob, error) {
	profile, err := s.profiles.Get(ctx, email)
	if err != nil {
		return nil, err
	}

	var jobs []models.Job
	if err := s.store.Load(store.Jobs, &jobs); err != nil {
		return nil, fmt.Errorf("match service: load jobs: %w", err)
	}

	matched := make([]models.MatchedJob, 0)
	for _, job := range jobs {
		if job.Status != models.JobStatusOpen {
			continue
		}

		score, skills := matching.Score(profile.Skills, job)
		if score <= 0 {
			continue
		}

		matched = append(matched, models.MatchedJob{
			Job:            job,
			MatchScore:     score,
			MatchingSkills: skills,
		})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].MatchScore > matched[j].MatchScore
	})

	if len(matched) > maxMatchedJobs {
		matched = matched[:maxMatchedJobs]
	}
	return matched, nil
}
