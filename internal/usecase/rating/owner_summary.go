package rating

import (
	"context"

	domain "github.com/BruksfildServices01/store-ratings/internal/domain/rating"
	"github.com/BruksfildServices01/store-ratings/internal/dto"
)

const ownerRecentLimit = 20

type GetOwnerSummary struct {
	repo domain.Repository
}

func NewGetOwnerSummary(repo domain.Repository) *GetOwnerSummary {
	return &GetOwnerSummary{repo: repo}
}

func (uc *GetOwnerSummary) Execute(
	ctx context.Context,
	ownerID string,
) (*dto.OwnerSummaryDTO, error) {

	stats, err := uc.repo.OwnerStats(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	rows, err := uc.repo.RecentForOwner(ctx, ownerID, ownerRecentLimit)
	if err != nil {
		return nil, err
	}

	out := make([]dto.OwnerReviewDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.OwnerReviewDTO{
			ID:        r.ID,
			Rating:    r.Rating,
			CreatedAt: r.CreatedAt,
			UserName:  r.UserName,
			StoreName: r.StoreName,
		})
	}

	return &dto.OwnerSummaryDTO{
		Summary: dto.OwnerStatsDTO{
			AverageRating:   stats.Average,
			TotalReviews:    stats.Count,
			UniqueReviewers: stats.UniqueReviewers,
		},
		Reviewers: out,
	}, nil
}
