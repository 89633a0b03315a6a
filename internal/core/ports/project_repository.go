package ports

import (
	"context"

	"github.com/pixelforge/nexus-api/internal/core/domain"
)

// ProjectRepository defines persistence operations for projects.
//
// Assignment mutations are single-document set operations ($addToSet/$pull
// semantics): concurrent additions of different developers both land, and
// removing an absent id is a no-op. No optimistic versioning — a race between
// add and remove of the same id is last-write-wins.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	// ListByStatus returns projects in the given status sorted by deadline ascending.
	ListByStatus(ctx context.Context, status domain.ProjectStatus) ([]*domain.Project, error)
	// ListByAssignee returns projects whose team set contains userID, any status.
	ListByAssignee(ctx context.Context, userID string) ([]*domain.Project, error)
	// SetStatus updates the status and returns the updated project.
	SetStatus(ctx context.Context, id string, status domain.ProjectStatus) (*domain.Project, error)
	// AddAssignment adds userID to the team set and returns the updated project.
	AddAssignment(ctx context.Context, projectID, userID string) (*domain.Project, error)
	RemoveAssignment(ctx context.Context, projectID, userID string) error
}
