package ports

import (
	"context"
	"time"

	"github.com/pixelforge/nexus-api/internal/core/domain"
)

// CreateProjectInput carries the data needed to create a new project.
type CreateProjectInput struct {
	Name        string
	Description string
	Deadline    time.Time
}

// GetProjectInput carries the parameters for a single-project read.
// RequesterID and RequesterRole feed the resource-level authorization check:
// only Admins and assigned members may read a project's detail.
type GetProjectInput struct {
	ProjectID     string
	RequesterID   string
	RequesterRole string
}

// AssignedMember is the resolved view of a team member in a project detail.
type AssignedMember struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// ProjectDetail is the full project view with team membership resolved to users.
type ProjectDetail struct {
	Project *domain.Project
	Members []AssignedMember
}

// ProjectService defines use-case operations for the project lifecycle.
type ProjectService interface {
	CreateProject(ctx context.Context, input CreateProjectInput) (*domain.Project, error)
	// CompleteProject marks the project Completed. The transition is one-way;
	// completing an already Completed project succeeds and returns it unchanged.
	CompleteProject(ctx context.Context, id string) (*domain.Project, error)
	// ListActive returns Active projects sorted by deadline ascending,
	// visible to every authenticated identity.
	ListActive(ctx context.Context) ([]*domain.Project, error)
	// ListMine returns projects whose team set contains userID, any status.
	ListMine(ctx context.Context, userID string) ([]*domain.Project, error)
	GetProject(ctx context.Context, input GetProjectInput) (*ProjectDetail, error)
}
