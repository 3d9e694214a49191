package rating

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/store-ratings/internal/audit"
	domain "github.com/BruksfildServices01/store-ratings/internal/domain/rating"
	"github.com/BruksfildServices01/store-ratings/internal/httperr"
	"github.com/BruksfildServices01/store-ratings/internal/models"
)

type SubmitRatingInput struct {
	UserID  string
	StoreID string
	Value   int
}

type SubmitRating struct {
	repo  domain.Repository
	audit audit.Recorder
	now   func() time.Time
}

func NewSubmitRating(
	repo domain.Repository,
	audit audit.Recorder,
) *SubmitRating {
	return &SubmitRating{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

var errStoreNotFound = httperr.ErrNotFound("store_not_found", "Store not found")

// Execute creates the caller's rating for the store or overwrites the existing one.
func (uc *SubmitRating) Execute(
	ctx context.Context,
	in SubmitRatingInput,
) (*models.Rating, error) {

	if !domain.ValidValue(in.Value) {
		return nil, httperr.ErrBusiness("invalid_rating")
	}

	exists, err := uc.repo.StoreExists(ctx, in.StoreID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errStoreNotFound
	}

	r, err := uc.repo.Upsert(ctx, in.UserID, in.StoreID, in.Value, uc.now().UTC())
	if errors.Is(err, domain.ErrStoreNotFound) {
		// store removed between the existence check and the insert
		return nil, errStoreNotFound
	}
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   audit.ActionRatingSubmitted,
		Entity:   "rating",
		EntityID: &r.ID,
		Metadata: map[string]any{
			"store_id": in.StoreID,
			"rating":   in.Value,
		},
	})

	return r, nil
}
