package resource

import (
	"context"
	"errors"
	"testing"
)

type mockRepo struct {
	resources  []Resource
	lastCreate CreateParams
	lastUpdate UpdateParams
	nextID     int64
}

func (m *mockRepo) List(_ context.Context, _ Filter) ([]Resource, error) {
	return m.resources, nil
}

func (m *mockRepo) Get(_ context.Context, id int64) (*Resource, error) {
	for i := range m.resources {
		if m.resources[i].ID == id {
			return &m.resources[i], nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockRepo) Create(_ context.Context, params CreateParams) (*Resource, error) {
	m.lastCreate = params
	m.nextID++
	res := Resource{
		ID:          m.nextID,
		Name:        params.Name,
		Description: params.Description,
		Category:    params.Category,
		Status:      params.Status,
	}
	m.resources = append(m.resources, res)
	return &res, nil
}

func (m *mockRepo) Update(_ context.Context, id int64, params UpdateParams) (*Resource, error) {
	m.lastUpdate = params
	for i := range m.resources {
		if m.resources[i].ID == id {
			if params.Name != nil {
				m.resources[i].Name = *params.Name
			}
			if params.Status != nil {
				m.resources[i].Status = *params.Status
			}
			return &m.resources[i], nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockRepo) Delete(_ context.Context, id int64) error {
	for i := range m.resources {
		if m.resources[i].ID == id {
			m.resources = append(m.resources[:i], m.resources[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		params  CreateParams
		wantErr bool
	}{
		{"complete", CreateParams{Name: "a", Description: "b", Category: "c"}, false},
		{"explicit status", CreateParams{Name: "a", Description: "b", Category: "c", Status: StatusPending}, false},
		{"missing name", CreateParams{Description: "b", Category: "c"}, true},
		{"whitespace name", CreateParams{Name: "   ", Description: "b", Category: "c"}, true},
		{"missing description", CreateParams{Name: "a", Category: "c"}, true},
		{"missing category", CreateParams{Name: "a", Description: "b"}, true},
		{"unknown status", CreateParams{Name: "a", Description: "b", Category: "c", Status: "archived"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&mockRepo{})
			_, err := svc.Create(context.Background(), tt.params)
			var verr *ValidationError
			if tt.wantErr {
				if !errors.As(err, &verr) {
					t.Errorf("Create() error = %v, want ValidationError", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Create() error = %v", err)
			}
		})
	}
}

func TestCreateDefaultsStatusToActive(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	res, err := svc.Create(context.Background(), CreateParams{
		Name: "swap guide", Description: "how to swap", Category: "docs",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if res.Status != StatusActive {
		t.Errorf("status = %q, want active default", res.Status)
	}
}

func TestUpdateValidation(t *testing.T) {
	name := "renamed"
	empty := ""
	bad := Status("archived")
	pending := StatusPending

	repo := &mockRepo{resources: []Resource{{ID: 1, Name: "orig", Status: StatusActive}}}
	svc := NewService(repo)

	if _, err := svc.Update(context.Background(), 1, UpdateParams{Name: &name, Status: &pending}); err != nil {
		t.Errorf("valid Update() error = %v", err)
	}

	var verr *ValidationError
	if _, err := svc.Update(context.Background(), 1, UpdateParams{Name: &empty}); !errors.As(err, &verr) {
		t.Errorf("Update() with empty name error = %v, want ValidationError", err)
	}
	if _, err := svc.Update(context.Background(), 1, UpdateParams{Status: &bad}); !errors.As(err, &verr) {
		t.Errorf("Update() with unknown status error = %v, want ValidationError", err)
	}
}

func TestUpdateMissingResource(t *testing.T) {
	svc := NewService(&mockRepo{})
	name := "x"
	if _, err := svc.Update(context.Background(), 99, UpdateParams{Name: &name}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	repo := &mockRepo{resources: []Resource{{ID: 1}}}
	svc := NewService(repo)

	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Errorf("Delete() error = %v", err)
	}
	if err := svc.Delete(context.Background(), 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}
