package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/hirewire/hirewire/internal/models"
	"github.com/hirewire/hirewire/internal/store"
)

// technicalKeywords and softKeywords drive the company-view skills analysis.
var (
	technicalKeywords = []string{"python", "java", "javascript", "react", "node", "sql", "aws", "docker"}
	softKeywords      = []string{"communication", "leadership", "teamwork", "problem", "creative", "management"}
)

// SkillsAnalysis buckets a candidate's skills for the company view.
type SkillsAnalysis struct {
	TotalSkills     int      `json:"total_skills"`
	TechnicalSkills []string `json:"technical_skills"`
	SoftSkills      []string `json:"soft_skills"`
}

// CompanyApplication is one of the candidate's applications to the viewing
// company's jobs, carrying the whole application record plus the job title
// and location joined in.
type CompanyApplication struct {
	models.Application
	JobTitle    string `json:"job_title"`
	JobLocation string `json:"job_location"`
}

// CompanyView is the full candidate dossier shown to a hiring company.
type CompanyView struct {
	Profile             models.Profile       `json:"profile"`
	CompanyApplications []CompanyApplication `json:"company_applications"`
	SkillsAnalysis      SkillsAnalysis       `json:"skills_analysis"`
	ProfileCompleteness int                  `json:"profile_completeness"`
	LastUpdated         string               `json:"last_updated"`
}

// ProfileService manages candidate profiles.
type ProfileService struct {
	store *store.Store
}

// NewProfileService constructs a ProfileService.
func NewProfileService(st *store.Store) (*ProfileService, error) {
	if st == nil {
		return nil, errors.New("profile service: store is required")
	}
	return &ProfileService{store: st}, nil
}

// Save upserts the profile keyed by email, stamping created_at on insert and
// updated_at always.
func (s *ProfileService) Save(ctx context.Context, profile models.Profile) error {
	var profiles []models.Profile
	if err := s.store.Load(store.Profiles, &profiles); err != nil {
		return fmt.Errorf("profile service: load profiles: %w", err)
	}

	now := time.Now().UTC()
	profile.UpdatedAt = &now
	if profile.Skills == nil {
		profile.Skills = []string{}
	}

	index := -1
	for i := range profiles {
		if profiles[i].Email == profile.Email {
			index = i
			break
		}
	}

	if index != -1 {
		profile.CreatedAt = profiles[index].CreatedAt
		profiles[index] = profile
	} else {
		profile.CreatedAt = &now
		profiles = append(profiles, profile)
	}

	if err := s.store.Save(store.Profiles, profiles); err != nil {
		return fmt.Errorf("profile service: save profile: %w", err)
	}
	return nil
}

// Get returns the candidate's profile, synthesizing an empty default from the
// account record when no profile has been saved yet.
func (s *ProfileService) Get(ctx context.Context, email string) (*models.Profile, error) {
	profile, err := s.Find(ctx, email)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}

	name := emailLocalPart(email)
	var candidates []models.User
	if err := s.store.Load(store.Candidates, &candidates); err == nil {
		if candidate, ok := lo.Find(candidates, func(c models.User) bool { return c.Email == email }); ok && candidate.Name != "" {
			name = candidate.Name
		}
	}

	return &models.Profile{
		Email:  email,
		Name:   name,
		Skills: []string{},
	}, nil
}

// Find returns the saved profile or nil when absent.
func (s *ProfileService) Find(ctx context.Context, email string) (*models.Profile, error) {
	var profiles []models.Profile
	if err := s.store.Load(store.Profiles, &profiles); err != nil {
		return nil, fmt.Errorf("profile service: load profiles: %w", err)
	}
	for i := range profiles {
		if profiles[i].Email == email {
			return &profiles[i], nil
		}
	}
	return nil, nil
}

// CompanyView assembles the candidate dossier for a company: the profile,
// the candidate's applications to that company's jobs, a keyword-bucketed
// skills analysis, and a completeness score.
func (s *ProfileService) CompanyView(ctx context.Context, candidateEmail, companyEmail string) (*CompanyView, error) {
	profile, err := s.Get(ctx, candidateEmail)
	if err != nil {
		return nil, err
	}

	var applications []models.Application
	if err := s.store.Load(store.Applications, &applications); err != nil {
		return nil, fmt.Errorf("profile service: load applications: %w", err)
	}
	var jobs []models.Job
	if err := s.store.Load(store.Jobs, &jobs); err != nil {
		return nil, fmt.Errorf("profile service: load jobs: %w", err)
	}

	companyApplications := make([]CompanyApplication, 0)
	for _, application := range applications {
		if application.CandidateEmail != candidateEmail {
			continue
		}
		job, ok := lo.Find(jobs, func(j models.Job) bool { return j.ID == application.JobID })
		if !ok || job.CompanyEmail != companyEmail {
			continue
		}
		companyApplications = append(companyApplications, CompanyApplication{
			Application: application,
			JobTitle:    job.Title,
			JobLocation: job.Location,
		})
	}

	view := &CompanyView{
		Profile:             *profile,
		CompanyApplications: companyApplications,
		SkillsAnalysis:      analyzeSkills(profile.Skills),
		ProfileCompleteness: completenessScore(*profile),
	}
	if profile.UpdatedAt != nil {
		view.LastUpdated = profile.UpdatedAt.Format(time.RFC3339)
	} else if profile.CreatedAt != nil {
		view.LastUpdated = profile.CreatedAt.Format(time.RFC3339)
	}
	return view, nil
}

func analyzeSkills(skills []string) SkillsAnalysis {
	analysis := SkillsAnalysis{
		TotalSkills:     len(skills),
		TechnicalSkills: []string{},
		SoftSkills:      []string{},
	}
	for _, skill := range skills {
		lower := strings.ToLower(skill)
		if containsAny(lower, technicalKeywords) {
			analysis.TechnicalSkills = append(analysis.TechnicalSkills, skill)
		}
		if containsAny(lower, softKeywords) {
			analysis.SoftSkills = append(analysis.SoftSkills, skill)
		}
	}
	return analysis
}

func completenessScore(profile models.Profile) int {
	score := 0
	if profile.Name != "" {
		score += 20
	}
	if len(profile.Skills) > 0 {
		score += 20
	}
	if profile.Experience != "" {
		score += 20
	}
	if profile.Education != "" {
		score += 20
	}
	if profile.Bio != "" {
		score += 10
	}
	if profile.ResumeURL != "" {
		score += 10
	}
	return score
}

func containsAny(value string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(value, keyword) {
			return true
		}
	}
	return false
}
