package admin

import (
	"context"

	"github.com/BruksfildServices01/store-ratings/internal/domain/user"
	"github.com/BruksfildServices01/store-ratings/internal/dto"
)

type ListUsers struct {
	users user.Repository
}

func NewListUsers(users user.Repository) *ListUsers {
	return &ListUsers{users: users}
}

func (uc *ListUsers) Execute(ctx context.Context, search string) ([]dto.AdminUserDTO, error) {
	users, err := uc.users.List(ctx, user.NormalizeSearch(search))
	if err != nil {
		return nil, err
	}

	out := make([]dto.AdminUserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, dto.AdminUserDTO{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Roles: u.RoleNames(),
		})
	}
	return out, nil
}
