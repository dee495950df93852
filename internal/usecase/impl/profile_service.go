// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"

	"brew/internal/domain/entity"
	"brew/internal/domain/repository"
	"brew/internal/errors"
	"brew/internal/usecase"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger

	mu      sync.RWMutex
	profile *entity.UserProfile
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// LoadUserProfile retrieves the current user and caches it.
func (srv *profileService) LoadUserProfile(ctx context.Context) (*entity.UserProfile, error) {
	srv.logger.Debug("Getting user profile")

	profile, err := srv.userRepo.FindCurrent(ctx)
	if err != nil {
		srv.mu.Lock()
		srv.profile = nil
		srv.mu.Unlock()

		return nil, errors.Wrap(err, "failed to get user profile")
	}

	srv.mu.Lock()
	srv.profile = profile
	srv.mu.Unlock()

	out := *profile

	return &out, nil
}

func (srv *profileService) Profile() *entity.UserProfile {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	if srv.profile == nil {
		return nil
	}
	out := *srv.profile

	return &out
}
