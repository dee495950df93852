package remote

import (
	"context"
	"net/http"

	"brew/internal/domain/entity"
	domainerrors "brew/internal/domain/errors"
	"brew/internal/domain/repository"
)

const usersPath = "/api/users"

type userRepository struct {
	client *Client
}

// NewUserRepository creates a UserRepository backed by the coffee service.
func NewUserRepository(client *Client) repository.UserRepository {
	return &userRepository{client: client}
}

// FindCurrent returns the first profile the service lists.
func (repo *userRepository) FindCurrent(ctx context.Context) (*entity.UserProfile, error) {
	var dtos userProfilesDTO
	if err := repo.client.do(ctx, http.MethodGet, usersPath, nil, nil, &dtos); err != nil {
		return nil, err
	}

	if len(dtos) == 0 {
		return nil, &domainerrors.NoUserFoundError{}
	}

	profile := toUserProfile(dtos[0])

	return &profile, nil
}
