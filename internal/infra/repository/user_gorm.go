package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/store-ratings/internal/domain/user"
	"github.com/BruksfildServices01/store-ratings/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func preloadRoles(db *gorm.DB) *gorm.DB {
	return db.Order("roles.name ASC")
}

func (r *UserGormRepository) EmailExists(
	ctx context.Context,
	email string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("count users by email: %w", err)
	}
	return count > 0, nil
}

func (r *UserGormRepository) CreateWithRole(
	ctx context.Context,
	u *models.User,
	role string,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rl models.Role
		if err := tx.Where("name = ?", role).First(&rl).Error; err != nil {
			return fmt.Errorf("load role %q: %w", role, err)
		}

		u.Roles = []models.Role{rl}
		if err := tx.Create(u).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrDuplicateEmail
			}
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
}

func (r *UserGormRepository) FindByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Preload("Roles", preloadRoles).
		Where("email = ?", email).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

func (r *UserGormRepository) FindByID(
	ctx context.Context,
	id string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Preload("Roles", preloadRoles).
		Where("id = ?", id).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &u, nil
}

func (r *UserGormRepository) GrantRole(
	ctx context.Context,
	userID string,
	role string,
) (bool, error) {
	return grantRole(r.db.WithContext(ctx), userID, role)
}

// grantRole links userID to the named role on db, which may be a transaction.
func grantRole(db *gorm.DB, userID, role string) (bool, error) {
	var rl models.Role
	if err := db.Where("name = ?", role).First(&rl).Error; err != nil {
		return false, fmt.Errorf("load role %q: %w", role, err)
	}

	res := db.Exec(
		`INSERT INTO user_roles (user_id, role_id) VALUES (?, ?) ON CONFLICT DO NOTHING`,
		userID, rl.ID,
	)
	if res.Error != nil {
		return false, fmt.Errorf("grant role %q: %w", role, res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *UserGormRepository) List(
	ctx context.Context,
	query string,
) ([]models.User, error) {

	q := r.db.WithContext(ctx).Preload("Roles", preloadRoles)

	if query != "" {
		like := likePattern(query)
		q = q.Where(
			`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(email) LIKE ? ESCAPE '\'`,
			like, like,
		)
	}

	var users []models.User
	if err := q.Order("name ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *UserGormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

// Compile-time check
var _ domain.Repository = (*UserGormRepository)(nil)
