package store

import (
	"context"

	"github.com/BruksfildServices01/store-ratings/internal/models"
)

type Order int

const (
	// OrderByName is the public directory order.
	OrderByName Order = iota
	// OrderByRating puts the best rated first, unrated last, then by name.
	OrderByRating
)

// Row is a store joined with the raw inputs of its rating aggregate.
type Row struct {
	ID           string
	Name         string
	Email        *string
	Address      string
	OwnerID      *string
	RatingsSum   int64
	RatingsCount int64
}

type Repository interface {
	Search(
		ctx context.Context,
		query string,
		order Order,
	) ([]Row, error)

	// CreateWithOwner stores s and, when it has an owner, grants that user
	// ownerRole in the same transaction. It reports whether the role was new.
	CreateWithOwner(
		ctx context.Context,
		s *models.Store,
		ownerRole string,
	) (bool, error)

	Count(ctx context.Context) (int64, error)
}
