package ports

import (
	"context"
	"io"

	"github.com/pixelforge/nexus-api/internal/core/domain"
)

// UploadDocumentInput carries an incoming file and its attribution.
type UploadDocumentInput struct {
	ProjectID  string
	UploadedBy string
	FileName   string
	Content    io.Reader
}

// ListDocumentsInput carries the parameters for reading a project's documents.
// Reads are resource-gated: Admin or a member of the project's team set.
type ListDocumentsInput struct {
	ProjectID     string
	RequesterID   string
	RequesterRole string
}

// DocumentService stores uploaded files and serves their metadata.
type DocumentService interface {
	Upload(ctx context.Context, input UploadDocumentInput) (*domain.Document, error)
	ListProjectDocuments(ctx context.Context, input ListDocumentsInput) ([]*domain.Document, error)
}
