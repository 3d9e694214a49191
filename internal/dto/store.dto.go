package dto

// StoreListDTO is a store with its rating aggregate.
type StoreListDTO struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Email         *string  `json:"email"`
	Address       string   `json:"address"`
	AverageRating *float64 `json:"averageRating"`
	RatingsCount  int64    `json:"ratingsCount"`
}
