package ports

import (
	"context"

	"github.com/pixelforge/nexus-api/internal/core/domain"
)

// UserService exposes the identity directory.
type UserService interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	ListDevelopers(ctx context.Context) ([]*domain.User, error)
}
