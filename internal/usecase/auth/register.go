package auth

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/store-ratings/internal/audit"
	domain "github.com/BruksfildServices01/store-ratings/internal/domain/user"
	"github.com/BruksfildServices01/store-ratings/internal/dto"
	"github.com/BruksfildServices01/store-ratings/internal/httperr"
	"github.com/BruksfildServices01/store-ratings/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// ======================================================
// USE CASE
// ======================================================

type RegisterUser struct {
	users  domain.Repository
	hasher PasswordHasher
	tokens TokenIssuer
	audit  audit.Recorder
}

func NewRegisterUser(
	users domain.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	audit audit.Recorder,
) *RegisterUser {
	return &RegisterUser{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		audit:  audit,
	}
}

var errEmailInUse = httperr.ErrConflict("email_already_in_use", "Email already in use")

func (uc *RegisterUser) Execute(
	ctx context.Context,
	in RegisterInput,
) (*dto.AuthResultDTO, error) {

	email := domain.NormalizeEmail(in.Email)

	exists, err := uc.users.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errEmailInUse
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         in.Name,
		Email:        email,
		PasswordHash: hash,
	}

	if err := uc.users.CreateWithRole(ctx, user, models.RoleUser); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, errEmailInUse
		}
		return nil, err
	}

	roles := []string{models.RoleUser}
	token, err := uc.tokens.Issue(user.ID, roles)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   audit.ActionUserRegistered,
		Entity:   "user",
		EntityID: &user.ID,
	})

	return &dto.AuthResultDTO{
		Token: token,
		User: dto.AuthUserDTO{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Roles: roles,
		},
	}, nil
}
