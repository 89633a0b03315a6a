package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pixelforge/nexus-api/internal/core/domain"
	"github.com/pixelforge/nexus-api/internal/core/ports"
)

// DocumentService stores uploaded project files and serves their metadata.
type DocumentService struct {
	docs     ports.DocumentRepository
	projects ports.ProjectRepository
	store    ports.FileStore
	logger   zerolog.Logger
}

func NewDocumentService(docs ports.DocumentRepository, projects ports.ProjectRepository, store ports.FileStore, logger zerolog.Logger) *DocumentService {
	return &DocumentService{docs: docs, projects: projects, store: store, logger: logger}
}

// Upload writes the file to the blob store and records its metadata.
// The Admin-or-Project-Lead capability is enforced at the route layer.
func (s *DocumentService) Upload(ctx context.Context, input ports.UploadDocumentInput) (*domain.Document, error) {
	path, err := s.store.Store(ctx, input.FileName, input.Content)
	if err != nil {
		s.logger.Error().Err(err).Str("file_name", input.FileName).Msg("failed to store uploaded file")
		return nil, err
	}

	doc := &domain.Document{
		FileName:   input.FileName,
		FilePath:   path,
		ProjectID:  input.ProjectID,
		UploadedBy: input.UploadedBy,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.docs.Create(ctx, doc)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("project_id", input.ProjectID).Str("file_name", input.FileName).Msg("document uploaded")
	return created, nil
}

// ListProjectDocuments returns the metadata of a project's documents. The
// read is resource-gated: the requester must be an Admin or a current member
// of the project's team set.
func (s *DocumentService) ListProjectDocuments(ctx context.Context, input ports.ListDocumentsInput) ([]*domain.Document, error) {
	project, err := s.projects.FindByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	if input.RequesterRole != domain.RoleAdmin && !project.IsAssigned(input.RequesterID) {
		return nil, domain.ErrForbidden
	}

	return s.docs.ListByProject(ctx, project.ID)
}
