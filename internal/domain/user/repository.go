package user

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/store-ratings/internal/models"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already in use")
)

type Repository interface {
	EmailExists(
		ctx context.Context,
		email string,
	) (bool, error)

	// CreateWithRole stores the user and links it to the named role atomically.
	// A unique violation on email is reported as ErrDuplicateEmail.
	CreateWithRole(
		ctx context.Context,
		u *models.User,
		role string,
	) error

	// FindByEmail and FindByID preload roles ordered by name.
	FindByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	FindByID(
		ctx context.Context,
		id string,
	) (*models.User, error)

	// GrantRole reports whether the role was newly linked.
	GrantRole(
		ctx context.Context,
		userID string,
		role string,
	) (bool, error)

	List(
		ctx context.Context,
		query string,
	) ([]models.User, error)

	Count(ctx context.Context) (int64, error)
}
