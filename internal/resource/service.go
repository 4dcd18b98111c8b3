package resource

import (
	"context"
	"strings"
)

// Service validates resource input and delegates persistence to a
// Repository.
type Service struct {
	repo Repository
}

// NewService creates a new resource service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, filter Filter) ([]Resource, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id int64) (*Resource, error) {
	return s.repo.Get(ctx, id)
}

// Create validates and stores a new resource. Name, description and
// category are required; an empty status defaults to active.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Resource, error) {
	params.Name = strings.TrimSpace(params.Name)

	var messages []string
	if params.Name == "" {
		messages = append(messages, "Name is required")
	}
	if params.Description == "" {
		messages = append(messages, "Description is required")
	}
	if params.Category == "" {
		messages = append(messages, "Category is required")
	}
	if params.Status == "" {
		params.Status = StatusActive
	} else if !params.Status.Valid() {
		messages = append(messages, "Status must be active, inactive or pending")
	}
	if len(messages) > 0 {
		return nil, &ValidationError{Messages: messages}
	}

	return s.repo.Create(ctx, params)
}

// Update validates and applies a partial update. Provided fields may
// not be blanked out; an unknown status is rejected.
func (s *Service) Update(ctx context.Context, id int64, params UpdateParams) (*Resource, error) {
	var messages []string
	if params.Name != nil {
		trimmed := strings.TrimSpace(*params.Name)
		if trimmed == "" {
			messages = append(messages, "Name is required")
		}
		params.Name = &trimmed
	}
	if params.Description != nil && *params.Description == "" {
		messages = append(messages, "Description is required")
	}
	if params.Category != nil && *params.Category == "" {
		messages = append(messages, "Category is required")
	}
	if params.Status != nil && !params.Status.Valid() {
		messages = append(messages, "Status must be active, inactive or pending")
	}
	if len(messages) > 0 {
		return nil, &ValidationError{Messages: messages}
	}

	return s.repo.Update(ctx, id, params)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
