package models

import "time"

// Application statuses recognised by the status-update endpoint.
const (
	ApplicationStatusApplied            = "applied"
	ApplicationStatusReviewed           = "reviewed"
	ApplicationStatusInterviewScheduled = "interview_scheduled"
	ApplicationStatusInterviewCompleted = "interview_completed"
	ApplicationStatusAccepted           = "accepted"
	ApplicationStatusRejected           = "rejected"
)

// Application links a candidate to a job posting.
type Application struct {
	ID              string     `json:"id,omitempty"`
	JobID           string     `json:"job_id"`
	CandidateEmail  string     `json:"candidate_email"`
	CoverLetter     string     `json:"cover_letter,omitempty"`
	Status          string     `json:"status"`
	AppliedDate     time.Time  `json:"applied_date,omitzero"`
	StatusUpdatedAt *time.Time `json:"status_updated_at,omitempty"`
	StatusUpdatedBy string     `json:"status_updated_by,omitempty"`
	StatusMessage   string     `json:"status_message,omitempty"`
	InterviewScore  *float64   `json:"interview_score,omitempty"`
}
