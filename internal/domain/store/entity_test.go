package store

import "testing"

func TestRow_ToDTO(t *testing.T) {
	empty := Row{ID: "s1", Name: "Empty"}.ToDTO()
	if empty.AverageRating != nil || empty.RatingsCount != 0 {
		t.Errorf("empty store dto = %+v, want nil average and zero count", empty)
	}

	rated := Row{ID: "s2", Name: "Rated", RatingsSum: 12, RatingsCount: 3}.ToDTO()
	if rated.AverageRating == nil || *rated.AverageRating != 4 || rated.RatingsCount != 3 {
		t.Errorf("rated store dto = %+v, want 4.00 over 3", rated)
	}
}
