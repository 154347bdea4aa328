package models

import "time"

// Job posting statuses.
const (
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
)

// Job is a posting created by a company account.
type Job struct {
	ID              string    `json:"id,omitempty"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Requirements    []string  `json:"requirements"`
	Location        string    `json:"location"`
	Salary          string    `json:"salary,omitempty"`
	Tags            []string  `json:"tags"`
	CompanyEmail    string    `json:"company_email"`
	ExperienceLevel string    `json:"experience_level,omitempty"`
	CompanyName     string    `json:"company_name,omitempty"`
	Status          string    `json:"status,omitempty"`
	CreatedDate     time.Time `json:"created_date,omitzero"`
}
