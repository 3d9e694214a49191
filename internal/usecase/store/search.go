package store

import (
	"context"

	domain "github.com/BruksfildServices01/store-ratings/internal/domain/store"
	"github.com/BruksfildServices01/store-ratings/internal/dto"
)

type SearchStores struct {
	repo  domain.Repository
	order domain.Order
}

// NewSearchStores lists stores alphabetically, as the public directory does.
func NewSearchStores(repo domain.Repository) *SearchStores {
	return &SearchStores{repo: repo, order: domain.OrderByName}
}

// NewRankedStores lists stores best rated first, as the admin listing does.
func NewRankedStores(repo domain.Repository) *SearchStores {
	return &SearchStores{repo: repo, order: domain.OrderByRating}
}

func (uc *SearchStores) Execute(
	ctx context.Context,
	query string,
) ([]dto.StoreListDTO, error) {

	rows, err := uc.repo.Search(ctx, domain.NormalizeQuery(query), uc.order)
	if err != nil {
		return nil, err
	}

	out := make([]dto.StoreListDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ToDTO())
	}
	return out, nil
}
