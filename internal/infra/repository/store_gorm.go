package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/store-ratings/internal/domain/store"
	"github.com/BruksfildServices01/store-ratings/internal/models"
)

type StoreGormRepository struct {
	db *gorm.DB
}

func NewStoreGormRepository(db *gorm.DB) *StoreGormRepository {
	return &StoreGormRepository{db: db}
}

func (r *StoreGormRepository) Search(
	ctx context.Context,
	query string,
	order domain.Order,
) ([]domain.Row, error) {

	q := r.db.WithContext(ctx).
		Table("stores AS s").
		Select(`s.id, s.name, s.email, s.address, s.owner_id,
			COALESCE(SUM(r.rating), 0) AS ratings_sum,
			COUNT(r.id) AS ratings_count`).
		Joins("LEFT JOIN ratings r ON r.store_id = s.id")

	if query != "" {
		like := likePattern(query)
		q = q.Where(
			`LOWER(s.name) LIKE ? ESCAPE '\' OR LOWER(s.address) LIKE ? ESCAPE '\'`,
			like, like,
		)
	}

	q = q.Group("s.id, s.name, s.email, s.address, s.owner_id")

	switch order {
	case domain.OrderByRating:
		q = q.Order("AVG(r.rating) IS NULL, AVG(r.rating) DESC, s.name ASC")
	default:
		q = q.Order("s.name ASC")
	}

	var rows []domain.Row
	if err := q.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("search stores: %w", err)
	}
	return rows, nil
}

func (r *StoreGormRepository) CreateWithOwner(
	ctx context.Context,
	s *models.Store,
	ownerRole string,
) (bool, error) {

	var granted bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Owner").Create(s).Error; err != nil {
			return fmt.Errorf("create store: %w", err)
		}
		if s.OwnerID == nil {
			return nil
		}

		var err error
		granted, err = grantRole(tx, *s.OwnerID, ownerRole)
		return err
	})
	if err != nil {
		return false, err
	}

	return granted, nil
}

func (r *StoreGormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Store{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count stores: %w", err)
	}
	return count, nil
}

// Compile-time check
var _ domain.Repository = (*StoreGormRepository)(nil)
