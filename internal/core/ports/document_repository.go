package ports

import (
	"context"

	"github.com/pixelforge/nexus-api/internal/core/domain"
)

// DocumentRepository defines persistence operations for document metadata.
type DocumentRepository interface {
	Create(ctx context.Context, d *domain.Document) (*domain.Document, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Document, error)
}
