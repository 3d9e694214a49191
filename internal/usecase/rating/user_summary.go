package rating

import (
	"context"

	domain "github.com/BruksfildServices01/store-ratings/internal/domain/rating"
	"github.com/BruksfildServices01/store-ratings/internal/dto"
)

const userRecentLimit = 10

type GetUserSummary struct {
	repo domain.Repository
}

func NewGetUserSummary(repo domain.Repository) *GetUserSummary {
	return &GetUserSummary{repo: repo}
}

func (uc *GetUserSummary) Execute(
	ctx context.Context,
	userID string,
) (*dto.UserSummaryDTO, error) {

	agg, err := uc.repo.UserAggregate(ctx, userID)
	if err != nil {
		return nil, err
	}

	pending, err := uc.repo.CountUnratedStores(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := uc.repo.RecentByUser(ctx, userID, userRecentLimit)
	if err != nil {
		return nil, err
	}

	out := make([]dto.UserRatingDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.UserRatingDTO{
			ID:        r.ID,
			Rating:    r.Rating,
			CreatedAt: r.CreatedAt,
			StoreName: r.StoreName,
		})
	}

	return &dto.UserSummaryDTO{
		Summary: dto.UserStatsDTO{
			RatedStores:    agg.Count,
			AverageRating:  agg.Average,
			PendingReviews: pending,
		},
		Ratings: out,
	}, nil
}
