package models

import "time"

// Notification is a single entry in the per-user notification log.
// The log is the sole owner of these records: after creation only the read
// flag and read timestamp ever change.
type Notification struct {
	ID        string         `json:"id,omitempty"`
	UserEmail string         `json:"user_email"`
	UserType  string         `json:"user_type"`
	Message   string         `json:"message"`
	Type      string         `json:"type"`
	Read      bool           `json:"read"`
	Data      map[string]any `json:"data,omitempty"`
	CreatedAt time.Time      `json:"created_at,omitzero"`
	ReadAt    *time.Time     `json:"read_at,omitempty"`
}
