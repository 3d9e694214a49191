package rating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BruksfildServices01/store-ratings/internal/audit"
	domain "github.com/BruksfildServices01/store-ratings/internal/domain/rating"
	"github.com/BruksfildServices01/store-ratings/internal/httperr"
	"github.com/BruksfildServices01/store-ratings/internal/models"
)

type fakeRepo struct {
	domain.Repository

	stores  map[string]bool
	upserts int
	now     time.Time
}

func (f *fakeRepo) StoreExists(_ context.Context, storeID string) (bool, error) {
	return f.stores[storeID], nil
}

func (f *fakeRepo) Upsert(_ context.Context, userID, storeID string, value int, now time.Time) (*models.Rating, error) {
	f.upserts++
	f.now = now
	return &models.Rating{ID: "r1", UserID: userID, StoreID: storeID, Value: value}, nil
}

type recorder struct {
	events []audit.Event
}

func (r *recorder) Dispatch(ev audit.Event) {
	r.events = append(r.events, ev)
}

func TestSubmitRating(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("X", 3600))

	tests := []struct {
		name     string
		in       SubmitRatingInput
		wantCode string
		upserts  int
	}{
		{"valid", SubmitRatingInput{UserID: "u1", StoreID: "s1", Value: 5}, "", 1},
		{"too low", SubmitRatingInput{UserID: "u1", StoreID: "s1", Value: 0}, "invalid_rating", 0},
		{"too high", SubmitRatingInput{UserID: "u1", StoreID: "s1", Value: 6}, "invalid_rating", 0},
		{"unknown store", SubmitRatingInput{UserID: "u1", StoreID: "nope", Value: 3}, "store_not_found", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{stores: map[string]bool{"s1": true}}
			rec := &recorder{}
			uc := NewSubmitRating(repo, rec)
			uc.now = func() time.Time { return fixed }

			got, err := uc.Execute(context.Background(), tt.in)

			if tt.wantCode != "" {
				var be httperr.BusinessError
				if !errors.As(err, &be) || be.Code != tt.wantCode {
					t.Fatalf("Execute() error = %v, want code %s", err, tt.wantCode)
				}
				if len(rec.events) != 0 {
					t.Errorf("audit events = %d, want 0", len(rec.events))
				}
			} else {
				if err != nil {
					t.Fatalf("Execute() error = %v", err)
				}
				if got.Value != tt.in.Value {
					t.Errorf("rating = %d, want %d", got.Value, tt.in.Value)
				}
				if repo.now.Location() != time.UTC {
					t.Errorf("upsert time not UTC: %v", repo.now)
				}
				if len(rec.events) != 1 || rec.events[0].Action != audit.ActionRatingSubmitted {
					t.Errorf("audit events = %+v", rec.events)
				}
			}

			if repo.upserts != tt.upserts {
				t.Errorf("upserts = %d, want %d", repo.upserts, tt.upserts)
			}
		})
	}
}
