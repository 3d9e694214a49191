package auth

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/store-ratings/internal/domain/user"
	"github.com/BruksfildServices01/store-ratings/internal/dto"
	"github.com/BruksfildServices01/store-ratings/internal/httperr"
)

type GetProfile struct {
	users domain.Repository
}

func NewGetProfile(users domain.Repository) *GetProfile {
	return &GetProfile{users: users}
}

func (uc *GetProfile) Execute(ctx context.Context, userID string) (*dto.AuthUserDTO, error) {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrNotFound("user_not_found", "User not found")
		}
		return nil, err
	}

	return &dto.AuthUserDTO{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Roles: user.RoleNames(),
	}, nil
}
