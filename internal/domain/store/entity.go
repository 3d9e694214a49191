package store

import (
	"strings"

	"github.com/BruksfildServices01/store-ratings/internal/domain/rating"
	"github.com/BruksfildServices01/store-ratings/internal/dto"
)

// NormalizeQuery trims and lower-cases a search term.
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

func (r Row) ToDTO() dto.StoreListDTO {
	agg := rating.NewAggregate(r.RatingsSum, r.RatingsCount)
	return dto.StoreListDTO{
		ID:            r.ID,
		Name:          r.Name,
		Email:         r.Email,
		Address:       r.Address,
		AverageRating: agg.Average,
		RatingsCount:  agg.Count,
	}
}
