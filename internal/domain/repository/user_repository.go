package repository

import (
	"context"

	"brew/internal/domain/entity"
)

// UserRepository provides the identity of the user operating the client.
type UserRepository interface {
	// FindCurrent retrieves the current user profile. An empty collection yields NoUserFoundError.
	FindCurrent(ctx context.Context) (*entity.UserProfile, error)
}
