package resource

import (
	"errors"
	"time"
)

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("resource not found")

// Status classifies a resource's lifecycle state.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusPending  Status = "pending"
)

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusPending:
		return true
	}
	return false
}

// Resource is a generic stored record managed through the CRUD API.
type Resource struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Filter narrows List results. Zero-valued fields are ignored; Name
// matches as a case-insensitive substring.
type Filter struct {
	Category string
	Status   string
	Name     string
}

// CreateParams carries the fields for a new resource. Status defaults
// to active when empty.
type CreateParams struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Status      Status `json:"status"`
}

// UpdateParams carries a partial update; nil fields are left unchanged.
type UpdateParams struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Status      *Status `json:"status"`
}

// ValidationError reports one or more invalid resource fields.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return "invalid resource"
	}
	return e.Messages[0]
}
