package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/store-ratings/internal/domain/rating"
	"github.com/BruksfildServices01/store-ratings/internal/models"
)

type RatingGormRepository struct {
	db *gorm.DB
}

func NewRatingGormRepository(db *gorm.DB) *RatingGormRepository {
	return &RatingGormRepository{db: db}
}

type sumCount struct {
	RatingsSum   int64
	RatingsCount int64
}

// --------------------------------------------------
// Write
// --------------------------------------------------

func (r *RatingGormRepository) StoreExists(
	ctx context.Context,
	storeID string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Store{}).
		Where("id = ?", storeID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("count stores by id: %w", err)
	}
	return count > 0, nil
}

func (r *RatingGormRepository) Upsert(
	ctx context.Context,
	userID string,
	storeID string,
	value int,
	now time.Time,
) (*models.Rating, error) {

	var out models.Rating

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := models.Rating{
			UserID:    userID,
			StoreID:   storeID,
			Value:     value,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := tx.
			Omit(clause.Associations).
			Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "user_id"}, {Name: "store_id"}},
				DoUpdates: clause.Assignments(map[string]any{
					"rating":     value,
					"updated_at": now,
				}),
			}).
			Create(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return domain.ErrStoreNotFound
			}
			return err
		}

		// On conflict the generated id is discarded, so read the stored row back.
		return tx.
			Where("user_id = ? AND store_id = ?", userID, storeID).
			First(&out).Error
	})
	if errors.Is(err, domain.ErrStoreNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("upsert rating: %w", err)
	}

	return &out, nil
}

// --------------------------------------------------
// Aggregates
// --------------------------------------------------

func (r *RatingGormRepository) StoreAggregate(
	ctx context.Context,
	storeID string,
) (domain.Aggregate, error) {

	var sc sumCount
	if err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Select("COALESCE(SUM(rating), 0) AS ratings_sum, COUNT(*) AS ratings_count").
		Where("store_id = ?", storeID).
		Scan(&sc).Error; err != nil {
		return domain.Aggregate{}, fmt.Errorf("store aggregate: %w", err)
	}
	return domain.NewAggregate(sc.RatingsSum, sc.RatingsCount), nil
}

func (r *RatingGormRepository) UserAggregate(
	ctx context.Context,
	userID string,
) (domain.Aggregate, error) {

	var sc sumCount
	if err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Select("COALESCE(SUM(rating), 0) AS ratings_sum, COUNT(*) AS ratings_count").
		Where("user_id = ?", userID).
		Scan(&sc).Error; err != nil {
		return domain.Aggregate{}, fmt.Errorf("user aggregate: %w", err)
	}
	return domain.NewAggregate(sc.RatingsSum, sc.RatingsCount), nil
}

func (r *RatingGormRepository) OwnerStats(
	ctx context.Context,
	ownerID string,
) (domain.OwnerStats, error) {

	var row struct {
		RatingsSum      int64
		RatingsCount    int64
		UniqueReviewers int64
	}
	if err := r.db.WithContext(ctx).
		Table("stores AS s").
		Select(`COALESCE(SUM(r.rating), 0) AS ratings_sum,
			COUNT(r.id) AS ratings_count,
			COUNT(DISTINCT r.user_id) AS unique_reviewers`).
		Joins("LEFT JOIN ratings r ON r.store_id = s.id").
		Where("s.owner_id = ?", ownerID).
		Scan(&row).Error; err != nil {
		return domain.OwnerStats{}, fmt.Errorf("owner stats: %w", err)
	}

	return domain.OwnerStats{
		Aggregate:       domain.NewAggregate(row.RatingsSum, row.RatingsCount),
		UniqueReviewers: row.UniqueReviewers,
	}, nil
}

func (r *RatingGormRepository) CountUnratedStores(
	ctx context.Context,
	userID string,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Table("stores AS s").
		Where(
			"NOT EXISTS (SELECT 1 FROM ratings r WHERE r.store_id = s.id AND r.user_id = ?)",
			userID,
		).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count unrated stores: %w", err)
	}
	return count, nil
}

func (r *RatingGormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Rating{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count ratings: %w", err)
	}
	return count, nil
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *RatingGormRepository) RecentByUser(
	ctx context.Context,
	userID string,
	limit int,
) ([]domain.UserRatingRow, error) {

	var rows []domain.UserRatingRow
	if err := r.db.WithContext(ctx).
		Table("ratings AS r").
		Select("r.id, r.rating, r.created_at, s.name AS store_name").
		Joins("JOIN stores s ON s.id = r.store_id").
		Where("r.user_id = ?", userID).
		Order("r.created_at DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("recent ratings by user: %w", err)
	}
	return rows, nil
}

func (r *RatingGormRepository) RecentForOwner(
	ctx context.Context,
	ownerID string,
	limit int,
) ([]domain.OwnerReviewRow, error) {

	var rows []domain.OwnerReviewRow
	if err := r.db.WithContext(ctx).
		Table("ratings AS r").
		Select("r.id, r.rating, r.created_at, u.name AS user_name, s.name AS store_name").
		Joins("JOIN stores s ON s.id = r.store_id").
		Joins("JOIN users u ON u.id = r.user_id").
		Where("s.owner_id = ?", ownerID).
		Order("r.created_at DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("recent ratings for owner: %w", err)
	}
	return rows, nil
}

// Compile-time check
var _ domain.Repository = (*RatingGormRepository)(nil)
