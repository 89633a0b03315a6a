package ports

import (
	"context"

	"github.com/pixelforge/nexus-api/internal/core/domain"
)

// AssignmentService owns the Developer↔Project team relation.
type AssignmentService interface {
	// Assign adds userID to the project's team set and returns the updated set.
	// Fails when the project or user is missing, the user is not a Developer,
	// or the user is already a member.
	Assign(ctx context.Context, projectID, userID string) ([]string, error)
	// Unassign removes userID from the team set. Removing an id that is not
	// present succeeds without effect.
	Unassign(ctx context.Context, projectID, userID string) error
	// ListAvailable returns Developer identities not currently on the project's team.
	ListAvailable(ctx context.Context, projectID string) ([]*domain.User, error)
}
