package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/pixelforge/nexus-api/internal/core/domain"
	"github.com/pixelforge/nexus-api/internal/core/ports"
)

type stubProjectService struct {
	createFn     func(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error)
	completeFn   func(ctx context.Context, id string) (*domain.Project, error)
	listActiveFn func(ctx context.Context) ([]*domain.Project, error)
	listMineFn   func(ctx context.Context, userID string) ([]*domain.Project, error)
	getFn        func(ctx context.Context, input ports.GetProjectInput) (*ports.ProjectDetail, error)
}

func (s *stubProjectService) CreateProject(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
	return s.createFn(ctx, input)
}

func (s *stubProjectService) CompleteProject(ctx context.Context, id string) (*domain.Project, error) {
	return s.completeFn(ctx, id)
}

func (s *stubProjectService) ListActive(ctx context.Context) ([]*domain.Project, error) {
	return s.listActiveFn(ctx)
}

func (s *stubProjectService) ListMine(ctx context.Context, userID string) ([]*domain.Project, error) {
	return s.listMineFn(ctx, userID)
}

func (s *stubProjectService) GetProject(ctx context.Context, input ports.GetProjectInput) (*ports.ProjectDetail, error) {
	return s.getFn(ctx, input)
}

type stubAssignmentService struct {
	assignFn        func(ctx context.Context, projectID, userID string) ([]string, error)
	unassignFn      func(ctx context.Context, projectID, userID string) error
	listAvailableFn func(ctx context.Context, projectID string) ([]*domain.User, error)
}

func (s *stubAssignmentService) Assign(ctx context.Context, projectID, userID string) ([]string, error) {
	return s.assignFn(ctx, projectID, userID)
}

func (s *stubAssignmentService) Unassign(ctx context.Context, projectID, userID string) error {
	return s.unassignFn(ctx, projectID, userID)
}

func (s *stubAssignmentService) ListAvailable(ctx context.Context, projectID string) ([]*domain.User, error) {
	return s.listAvailableFn(ctx, projectID)
}

func TestProjectHandler_Create_Success(t *testing.T) {
	deadline := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	projects := &stubProjectService{
		createFn: func(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
			if input.Name != "Nexus Portal" || !input.Deadline.Equal(deadline) {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Project{
				ID:              "project_1",
				Name:            input.Name,
				Description:     input.Description,
				Deadline:        input.Deadline,
				Status:          domain.StatusActive,
				AssignedUserIDs: []string{},
			}, nil
		},
	}
	handler := NewProjectHandler(projects, &stubAssignmentService{})

	c, rec := newTestContext(http.MethodPost, "/api/projects",
		`{"name":"Nexus Portal","description":"Client portal rebuild","deadline":"2025-12-01T00:00:00Z"}`)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp projectResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Status != string(domain.StatusActive) {
		t.Fatalf("expected Active project, got %s", resp.Status)
	}
	if resp.AssignedUserIDs == nil || len(resp.AssignedUserIDs) != 0 {
		t.Fatalf("expected empty (non-null) team set, got %v", resp.AssignedUserIDs)
	}
}

func TestProjectHandler_Create_MissingFields(t *testing.T) {
	projects := &stubProjectService{
		createFn: func(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewProjectHandler(projects, &stubAssignmentService{})

	c, _ := newTestContext(http.MethodPost, "/api/projects", `{"name":"No deadline"}`)
	if code := httpCode(t, handler.Create(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestProjectHandler_Get_Forbidden(t *testing.T) {
	projects := &stubProjectService{
		getFn: func(ctx context.Context, input ports.GetProjectInput) (*ports.ProjectDetail, error) {
			if input.RequesterID != "user_1" || input.RequesterRole != domain.RoleDeveloper {
				t.Fatalf("requester identity not forwarded: %+v", input)
			}
			return nil, domain.ErrForbidden
		},
	}
	handler := NewProjectHandler(projects, &stubAssignmentService{})

	c, _ := newTestContext(http.MethodGet, "/api/projects/project_1", "")
	c.SetParamNames("id")
	c.SetParamValues("project_1")
	c.Set("user_id", "user_1")
	c.Set("role", domain.RoleDeveloper)

	if code := httpCode(t, handler.Get(c)); code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
}

func TestProjectHandler_Get_Success(t *testing.T) {
	projects := &stubProjectService{
		getFn: func(ctx context.Context, input ports.GetProjectInput) (*ports.ProjectDetail, error) {
			return &ports.ProjectDetail{
				Project: &domain.Project{ID: input.ProjectID, Name: "Nexus Portal", Status: domain.StatusActive, AssignedUserIDs: []string{"user_2"}},
				Members: []ports.AssignedMember{{ID: "user_2", Username: "dev1", Role: domain.RoleDeveloper}},
			}, nil
		},
	}
	handler := NewProjectHandler(projects, &stubAssignmentService{})

	c, rec := newTestContext(http.MethodGet, "/api/projects/project_1", "")
	c.SetParamNames("id")
	c.SetParamValues("project_1")
	c.Set("user_id", "user_9")
	c.Set("role", domain.RoleAdmin)

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp projectDetailResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Members) != 1 || resp.Members[0].Username != "dev1" {
		t.Fatalf("unexpected members: %+v", resp.Members)
	}
}

func TestProjectHandler_Complete_NotFound(t *testing.T) {
	projects := &stubProjectService{
		completeFn: func(ctx context.Context, id string) (*domain.Project, error) {
			return nil, domain.ErrProjectNotFound
		},
	}
	handler := NewProjectHandler(projects, &stubAssignmentService{})

	c, _ := newTestContext(http.MethodPut, "/api/projects/missing/complete", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if code := httpCode(t, handler.Complete(c)); code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
}

func TestProjectHandler_Assign_Success(t *testing.T) {
	assignments := &stubAssignmentService{
		assignFn: func(ctx context.Context, projectID, userID string) ([]string, error) {
			if projectID != "project_1" || userID != "user_2" {
				t.Fatalf("unexpected args: %s %s", projectID, userID)
			}
			return []string{"user_2"}, nil
		},
	}
	handler := NewProjectHandler(&stubProjectService{}, assignments)

	c, rec := newTestContext(http.MethodPut, "/api/projects/project_1/assign", `{"user_id":"user_2"}`)
	c.SetParamNames("id")
	c.SetParamValues("project_1")

	if err := handler.Assign(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp assignmentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.AssignedUserIDs) != 1 || resp.AssignedUserIDs[0] != "user_2" {
		t.Fatalf("unexpected set: %v", resp.AssignedUserIDs)
	}
}

func TestProjectHandler_Assign_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"project missing", domain.ErrProjectNotFound, http.StatusNotFound},
		{"user missing", domain.ErrUserNotFound, http.StatusNotFound},
		{"not a developer", domain.ErrNotDeveloper, http.StatusBadRequest},
		{"already assigned", domain.ErrAlreadyAssigned, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assignments := &stubAssignmentService{
				assignFn: func(ctx context.Context, projectID, userID string) ([]string, error) {
					return nil, tc.err
				},
			}
			handler := NewProjectHandler(&stubProjectService{}, assignments)

			c, _ := newTestContext(http.MethodPut, "/api/projects/project_1/assign", `{"user_id":"user_2"}`)
			c.SetParamNames("id")
			c.SetParamValues("project_1")

			if code := httpCode(t, handler.Assign(c)); code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, code)
			}
		})
	}
}

func TestProjectHandler_Unassign_Success(t *testing.T) {
	assignments := &stubAssignmentService{
		unassignFn: func(ctx context.Context, projectID, userID string) error {
			return nil
		},
	}
	handler := NewProjectHandler(&stubProjectService{}, assignments)

	c, rec := newTestContext(http.MethodPut, "/api/projects/project_1/unassign", `{"user_id":"user_2"}`)
	c.SetParamNames("id")
	c.SetParamValues("project_1")

	if err := handler.Unassign(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProjectHandler_AvailableDevelopers(t *testing.T) {
	assignments := &stubAssignmentService{
		listAvailableFn: func(ctx context.Context, projectID string) ([]*domain.User, error) {
			return []*domain.User{
				{ID: "user_2", Username: "dev1", Role: domain.RoleDeveloper},
				{ID: "user_3", Username: "dev2", Role: domain.RoleDeveloper},
			}, nil
		},
	}
	handler := NewProjectHandler(&stubProjectService{}, assignments)

	c, rec := newTestContext(http.MethodGet, "/api/projects/project_1/available-developers", "")
	c.SetParamNames("id")
	c.SetParamValues("project_1")

	if err := handler.AvailableDevelopers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []userResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 || resp[0].Username != "dev1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestProjectHandler_ListActive(t *testing.T) {
	projects := &stubProjectService{
		listActiveFn: func(ctx context.Context) ([]*domain.Project, error) {
			return []*domain.Project{
				{ID: "project_1", Name: "Sooner", Status: domain.StatusActive, AssignedUserIDs: []string{}},
			}, nil
		},
	}
	handler := NewProjectHandler(projects, &stubAssignmentService{})

	c, rec := newTestContext(http.MethodGet, "/api/projects", "")
	if err := handler.ListActive(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []projectResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0].Name != "Sooner" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
