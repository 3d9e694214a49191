package store

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/store-ratings/internal/audit"
	domain "github.com/BruksfildServices01/store-ratings/internal/domain/store"
	"github.com/BruksfildServices01/store-ratings/internal/domain/user"
	"github.com/BruksfildServices01/store-ratings/internal/httperr"
	"github.com/BruksfildServices01/store-ratings/internal/models"
)

type CreateStoreInput struct {
	ActorID string

	Name    string
	Address string
	Email   string
	OwnerID string
}

type CreateStore struct {
	stores domain.Repository
	users  user.Repository
	audit  audit.Recorder
}

func NewCreateStore(
	stores domain.Repository,
	users user.Repository,
	audit audit.Recorder,
) *CreateStore {
	return &CreateStore{
		stores: stores,
		users:  users,
		audit:  audit,
	}
}

func (uc *CreateStore) Execute(
	ctx context.Context,
	in CreateStoreInput,
) (*models.Store, error) {

	s := &models.Store{
		Name:    in.Name,
		Address: in.Address,
	}

	if email := strings.TrimSpace(in.Email); email != "" {
		lower := strings.ToLower(email)
		s.Email = &lower
	}

	if in.OwnerID != "" {
		if _, err := uc.users.FindByID(ctx, in.OwnerID); err != nil {
			if errors.Is(err, user.ErrNotFound) {
				return nil, httperr.ErrNotFound("owner_not_found", "Owner not found")
			}
			return nil, err
		}
		ownerID := in.OwnerID
		s.OwnerID = &ownerID
	}

	granted, err := uc.stores.CreateWithOwner(ctx, s, models.RoleOwner)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actor(in.ActorID),
		Action:   audit.ActionStoreCreated,
		Entity:   "store",
		EntityID: &s.ID,
	})

	if granted {
		uc.audit.Dispatch(audit.Event{
			UserID:   actor(in.ActorID),
			Action:   audit.ActionOwnerRoleGranted,
			Entity:   "user",
			EntityID: s.OwnerID,
			Metadata: map[string]any{"store_id": s.ID},
		})
	}

	return s, nil
}

func actor(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
