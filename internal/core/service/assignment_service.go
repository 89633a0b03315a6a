package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pixelforge/nexus-api/internal/core/domain"
	"github.com/pixelforge/nexus-api/internal/core/ports"
)

// AssignmentService owns the Developer↔Project team relation and its
// invariants: only Developer-role identities may be members, and membership
// has set semantics. A Completed project still accepts team mutations.
type AssignmentService struct {
	projects ports.ProjectRepository
	users    ports.UserRepository
	cache    ProjectCache
	logger   zerolog.Logger
}

func NewAssignmentService(projects ports.ProjectRepository, users ports.UserRepository, cache ProjectCache, logger zerolog.Logger) *AssignmentService {
	return &AssignmentService{projects: projects, users: users, cache: cache, logger: logger}
}

// Assign adds userID to the project's team set and returns the updated set.
// Preconditions, checked in order: the project exists, the user exists, the
// user's role is Developer, and the user is not already a member.
func (s *AssignmentService) Assign(ctx context.Context, projectID, userID string) ([]string, error) {
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Role != domain.RoleDeveloper {
		return nil, domain.ErrNotDeveloper
	}
	if project.IsAssigned(user.ID) {
		return nil, domain.ErrAlreadyAssigned
	}

	updated, err := s.projects.AddAssignment(ctx, project.ID, user.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("project_id", project.ID).Str("user_id", user.ID).Msg("failed to persist assignment")
		return nil, err
	}

	s.invalidateListing(ctx)
	s.logger.Info().Str("project_id", project.ID).Str("user_id", user.ID).Msg("developer assigned")
	return updated.AssignedUserIDs, nil
}

// Unassign removes userID from the project's team set. Removing an id that
// was never assigned is a silent no-op.
func (s *AssignmentService) Unassign(ctx context.Context, projectID, userID string) error {
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return err
	}

	if err := s.projects.RemoveAssignment(ctx, project.ID, userID); err != nil {
		s.logger.Error().Err(err).Str("project_id", project.ID).Str("user_id", userID).Msg("failed to remove assignment")
		return err
	}

	s.invalidateListing(ctx)
	s.logger.Info().Str("project_id", project.ID).Str("user_id", userID).Msg("developer unassigned")
	return nil
}

// ListAvailable returns Developer identities not currently on the project's
// team. Computed as a set difference on every call, never persisted.
func (s *AssignmentService) ListAvailable(ctx context.Context, projectID string) ([]*domain.User, error) {
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	developers, err := s.users.List(ctx, domain.RoleDeveloper)
	if err != nil {
		return nil, err
	}

	assigned := make(map[string]struct{}, len(project.AssignedUserIDs))
	for _, id := range project.AssignedUserIDs {
		assigned[id] = struct{}{}
	}

	available := make([]*domain.User, 0, len(developers))
	for _, dev := range developers {
		if _, ok := assigned[dev.ID]; !ok {
			available = append(available, dev)
		}
	}
	return available, nil
}

func (s *AssignmentService) invalidateListing(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("project cache invalidation failed")
	}
}
