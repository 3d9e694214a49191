package rating

import (
	"context"

	domain "github.com/BruksfildServices01/store-ratings/internal/domain/rating"
)

type StoreAggregateOutput struct {
	StoreID       string   `json:"storeId"`
	AverageRating *float64 `json:"averageRating"`
	RatingsCount  int64    `json:"ratingsCount"`
}

type GetStoreAggregate struct {
	repo domain.Repository
}

func NewGetStoreAggregate(repo domain.Repository) *GetStoreAggregate {
	return &GetStoreAggregate{repo: repo}
}

func (uc *GetStoreAggregate) Execute(
	ctx context.Context,
	storeID string,
) (*StoreAggregateOutput, error) {

	exists, err := uc.repo.StoreExists(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errStoreNotFound
	}

	agg, err := uc.repo.StoreAggregate(ctx, storeID)
	if err != nil {
		return nil, err
	}

	return &StoreAggregateOutput{
		StoreID:       storeID,
		AverageRating: agg.Average,
		RatingsCount:  agg.Count,
	}, nil
}
