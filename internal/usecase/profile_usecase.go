package usecase

import (
	"context"

	"brew/internal/domain/entity"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// LoadUserProfile fetches and caches the profile. On failure the cache is cleared.
	LoadUserProfile(ctx context.Context) (*entity.UserProfile, error)

	Profile() *entity.UserProfile
}
