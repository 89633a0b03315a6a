package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/pixelforge/nexus-api/internal/core/domain"
	"github.com/pixelforge/nexus-api/internal/core/ports"
)

// ProjectCache abstracts the listing cache (Redis). A miss is (nil, nil).
// Cache failures are never fatal; callers log and fall through to the store.
type ProjectCache interface {
	GetActive(ctx context.Context) ([]*domain.Project, error)
	SetActive(ctx context.Context, projects []*domain.Project) error
	Invalidate(ctx context.Context) error
}

// ProjectService implements the project lifecycle: creation, one-way
// completion, listings, and the resource-gated detail read.
type ProjectService struct {
	projects ports.ProjectRepository
	users    ports.UserRepository
	cache    ProjectCache
	logger   zerolog.Logger
}

func NewProjectService(projects ports.ProjectRepository, users ports.UserRepository, cache ProjectCache, logger zerolog.Logger) *ProjectService {
	return &ProjectService{projects: projects, users: users, cache: cache, logger: logger}
}

// CreateProject creates a project in Active status with an empty team set.
func (s *ProjectService) CreateProject(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
	now := time.Now().UTC()
	project := &domain.Project{
		Name:            input.Name,
		Description:     input.Description,
		Deadline:        input.Deadline,
		Status:          domain.StatusActive,
		AssignedUserIDs: []string{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.projects.Create(ctx, project)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create project")
		return nil, err
	}

	s.invalidateListing(ctx)
	s.logger.Info().Str("project_id", created.ID).Str("name", created.Name).Msg("project created")
	return created, nil
}

// CompleteProject marks the project Completed. The transition is one-way and
// idempotent: completing a Completed project returns it unchanged.
func (s *ProjectService) CompleteProject(ctx context.Context, id string) (*domain.Project, error) {
	project, err := s.projects.SetStatus(ctx, id, domain.StatusCompleted)
	if err != nil {
		return nil, err
	}

	s.invalidateListing(ctx)
	s.logger.Info().Str("project_id", project.ID).Msg("project completed")
	return project, nil
}

// ListActive returns Active projects sorted by deadline ascending.
func (s *ProjectService) ListActive(ctx context.Context) ([]*domain.Project, error) {
	if cached, err := s.cache.GetActive(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("project cache read failed, falling back to store")
	} else if cached != nil {
		return cached, nil
	}

	projects, err := s.projects.ListByStatus(ctx, domain.StatusActive)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetActive(ctx, projects); err != nil {
		s.logger.Warn().Err(err).Msg("project cache write failed")
	}
	return projects, nil
}

// ListMine returns the projects whose team set contains userID, any status.
func (s *ProjectService) ListMine(ctx context.Context, userID string) ([]*domain.Project, error) {
	return s.projects.ListByAssignee(ctx, userID)
}

// GetProject returns a single project with team membership resolved to users.
// Beyond the coarse role gate, the read is resource-gated: the requester must
// be an Admin or a current member of the team set. Membership is evaluated
// against the stored set on every call, so access ends the moment a developer
// is unassigned.
func (s *ProjectService) GetProject(ctx context.Context, input ports.GetProjectInput) (*ports.ProjectDetail, error) {
	project, err := s.projects.FindByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	if input.RequesterRole != domain.RoleAdmin && !project.IsAssigned(input.RequesterID) {
		return nil, domain.ErrForbidden
	}

	members := make([]ports.AssignedMember, 0, len(project.AssignedUserIDs))
	for _, id := range project.AssignedUserIDs {
		user, err := s.users.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				s.logger.Warn().Str("project_id", project.ID).Str("user_id", id).Msg("assigned user no longer resolvable")
				continue
			}
			return nil, err
		}
		members = append(members, ports.AssignedMember{ID: user.ID, Username: user.Username, Role: user.Role})
	}

	return &ports.ProjectDetail{Project: project, Members: members}, nil
}

func (s *ProjectService) invalidateListing(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("project cache invalidation failed")
	}
}
