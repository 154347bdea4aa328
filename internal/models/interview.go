package models

import "time"

// Interview stores the outcome of a completed mock interview for an application.
type Interview struct {
	ID             string           `json:"id,omitempty"`
	CandidateEmail string           `json:"candidate_email"`
	JobID          string           `json:"job_id"`
	ApplicationID  string           `json:"application_id"`
	Score          float64          `json:"score"`
	MaxScore       float64          `json:"max_score"`
	Percentage     float64          `json:"percentage"`
	Performance    string           `json:"performance"`
	Answers        []map[string]any `json:"answers"`
	TimeTaken      int              `json:"time_taken"`
	CompletedAt    time.Time        `json:"completed_at,omitzero"`

	// Joined for candidate-facing listings; never persisted with values.
	JobTitle     string `json:"job_title,omitempty"`
	CompanyEmail string `json:"company_email,omitempty"`
}

// InterviewSummary is the condensed view embedded into application listings.
type InterviewSummary struct {
	Score       float64   `json:"score"`
	MaxScore    float64   `json:"max_score"`
	Percentage  float64   `json:"percentage"`
	Performance string    `json:"performance"`
	CompletedAt time.Time `json:"completed_at"`
}
