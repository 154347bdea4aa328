package models

// MatchedJob is a job augmented with its relevance to one candidate.
// Computed per request, never persisted.
type MatchedJob struct {
	Job

	MatchScore     float64  `json:"match_score"`
	MatchingSkills []string `json:"matching_skills"`
}
