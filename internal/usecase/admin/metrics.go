package admin

import (
	"context"

	"github.com/BruksfildServices01/store-ratings/internal/dto"
)

// Counter is satisfied by every entity repository.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

type GetMetrics struct {
	users   Counter
	stores  Counter
	ratings Counter
}

func NewGetMetrics(users, stores, ratings Counter) *GetMetrics {
	return &GetMetrics{users: users, stores: stores, ratings: ratings}
}

func (uc *GetMetrics) Execute(ctx context.Context) (*dto.MetricsDTO, error) {
	users, err := uc.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	stores, err := uc.stores.Count(ctx)
	if err != nil {
		return nil, err
	}
	ratings, err := uc.ratings.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.MetricsDTO{
		TotalUsers:   users,
		TotalStores:  stores,
		TotalRatings: ratings,
	}, nil
}
