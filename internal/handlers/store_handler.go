package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/store-ratings/internal/httperr"
	"github.com/BruksfildServices01/store-ratings/internal/httpresp"
	"github.com/BruksfildServices01/store-ratings/internal/middleware"
	ucRating "github.com/BruksfildServices01/store-ratings/internal/usecase/rating"
	ucStore "github.com/BruksfildServices01/store-ratings/internal/usecase/store"
	"github.com/BruksfildServices01/store-ratings/internal/validators"
)

type StoreHandler struct {
	search    *ucStore.SearchStores
	create    *ucStore.CreateStore
	aggregate *ucRating.GetStoreAggregate
	logger    *slog.Logger
}

func NewStoreHandler(
	search *ucStore.SearchStores,
	create *ucStore.CreateStore,
	aggregate *ucRating.GetStoreAggregate,
	logger *slog.Logger,
) *StoreHandler {
	return &StoreHandler{
		search:    search,
		create:    create,
		aggregate: aggregate,
		logger:    logger,
	}
}

// --------- Requests ---------

type CreateStoreRequest struct {
	Name    string `json:"name" binding:"required,trimmed,min=20,max=60"`
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address" binding:"required,trimmed,max=400"`
	OwnerID string `json:"ownerId" binding:"omitempty,uuid"`
}

// --------- Handlers ---------

func (h *StoreHandler) Search(c *gin.Context) {
	stores, err := h.search.Execute(c.Request.Context(), c.Query("q"))
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	httpresp.Slice(c, stores)
}

func (h *StoreHandler) Create(c *gin.Context) {
	var req CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, validators.Messages(err))
		return
	}

	actorID, _ := middleware.UserID(c)

	store, err := h.create.Execute(c.Request.Context(), ucStore.CreateStoreInput{
		ActorID: actorID,
		Name:    req.Name,
		Address: req.Address,
		Email:   req.Email,
		OwnerID: req.OwnerID,
	})
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	httpresp.Created(c, store)
}

func (h *StoreHandler) Aggregate(c *gin.Context) {
	storeID, ok := storeIDParam(c)
	if !ok {
		return
	}

	out, err := h.aggregate.Execute(c.Request.Context(), storeID)
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	httpresp.OK(c, out)
}

// storeIDParam writes a validation error and returns false for a malformed id.
func storeIDParam(c *gin.Context) (string, bool) {
	id, err := uuid.Parse(c.Param("storeId"))
	if err != nil {
		httperr.Validation(c, []string{"storeId must be a valid id"})
		return "", false
	}
	return id.String(), true
}
