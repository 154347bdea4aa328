package models

import "time"

// Profile is a candidate's self-maintained profile, keyed by email.
type Profile struct {
	Email      string     `json:"email"`
	Name       string     `json:"name"`
	Skills     []string   `json:"skills"`
	Experience string     `json:"experience"`
	Education  string     `json:"education"`
	Bio        string     `json:"bio,omitempty"`
	ResumeURL  string     `json:"resume_url,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	Location   string     `json:"location,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}
