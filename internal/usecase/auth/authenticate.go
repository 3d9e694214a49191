package auth

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/store-ratings/internal/audit"
	domain "github.com/BruksfildServices01/store-ratings/internal/domain/user"
	"github.com/BruksfildServices01/store-ratings/internal/dto"
	"github.com/BruksfildServices01/store-ratings/internal/httperr"
)

type Authenticate struct {
	users  domain.Repository
	hasher PasswordHasher
	tokens TokenIssuer
	audit  audit.Recorder
}

func NewAuthenticate(
	users domain.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	audit audit.Recorder,
) *Authenticate {
	return &Authenticate{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		audit:  audit,
	}
}

// Unknown email and wrong password produce the same error.
var errInvalidCredentials = httperr.ErrUnauthorized("invalid_credentials", "Invalid credentials")

func (uc *Authenticate) Execute(
	ctx context.Context,
	email string,
	password string,
) (*dto.AuthResultDTO, error) {

	user, err := uc.users.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	if !uc.hasher.Compare(user.PasswordHash, password) {
		return nil, errInvalidCredentials
	}

	roles := user.RoleNames()
	token, err := uc.tokens.Issue(user.ID, roles)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID: &user.ID,
		Action: audit.ActionUserLoggedIn,
		Entity: "user",
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
