package rating

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/store-ratings/internal/models"
)

var ErrStoreNotFound = errors.New("store not found")

type UserRatingRow struct {
	ID        string
	Rating    int
	CreatedAt time.Time
	StoreName string
}

type OwnerReviewRow struct {
	ID        string
	Rating    int
	CreatedAt time.Time
	UserName  string
	StoreName string
}

type OwnerStats struct {
	Aggregate
	UniqueReviewers int64
}

type Repository interface {
	// -------- Write --------
	StoreExists(
		ctx context.Context,
		storeID string,
	) (bool, error)

	// Upsert inserts or overwrites the (user, store) rating and returns the stored row.
	Upsert(
		ctx context.Context,
		userID string,
		storeID string,
		value int,
		now time.Time,
	) (*models.Rating, error)

	// -------- Aggregates --------
	StoreAggregate(
		ctx context.Context,
		storeID string,
	) (Aggregate, error)

	UserAggregate(
		ctx context.Context,
		userID string,
	) (Aggregate, error)

	OwnerStats(
		ctx context.Context,
		ownerID string,
	) (OwnerStats, error)

	CountUnratedStores(
		ctx context.Context,
		userID string,
	) (int64, error)

	Count(ctx context.Context) (int64, error)

	// -------- Listings --------
	RecentByUser(
		ctx context.Context,
		userID string,
		limit int,
	) ([]UserRatingRow, error)

	RecentForOwner(
		ctx context.Context,
		ownerID string,
		limit int,
	) ([]OwnerReviewRow, error)
}
