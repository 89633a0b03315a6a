package ports

import (
	"context"

	"github.com/pixelforge/nexus-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password, role string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// UpdatePassword changes the caller's own password after verifying the current one.
	UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}
