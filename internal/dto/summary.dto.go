package dto

import "time"

type UserStatsDTO struct {
	RatedStores    int64    `json:"ratedStores"`
	AverageRating  *float64 `json:"averageRating"`
	PendingReviews int64    `json:"pendingReviews"`
}

type UserRatingDTO struct {
	ID        string    `json:"id"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	StoreName string    `json:"store_name"`
}

type UserSummaryDTO struct {
	Summary UserStatsDTO    `json:"summary"`
	Ratings []UserRatingDTO `json:"ratings"`
}

type OwnerStatsDTO struct {
	AverageRating   *float64 `json:"averageRating"`
	TotalReviews    int64    `json:"totalReviews"`
	UniqueReviewers int64    `json:"uniqueReviewers"`
}

type OwnerReviewDTO struct {
	ID        string    `json:"id"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UserName  string    `json:"user_name"`
	StoreName string    `json:"store_name"`
}

type OwnerSummaryDTO struct {
	Summary   OwnerStatsDTO    `json:"summary"`
	Reviewers []OwnerReviewDTO `json:"reviewers"`
}
