package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/store-ratings/internal/httperr"
	"github.com/BruksfildServices01/store-ratings/internal/httpresp"
	"github.com/BruksfildServices01/store-ratings/internal/middleware"
	ucRating "github.com/BruksfildServices01/store-ratings/internal/usecase/rating"
	"github.com/BruksfildServices01/store-ratings/internal/validators"
)

type RatingHandler struct {
	submit       *ucRating.SubmitRating
	userSummary  *ucRating.GetUserSummary
	ownerSummary *ucRating.GetOwnerSummary
	logger       *slog.Logger
}

func NewRatingHandler(
	submit *ucRating.SubmitRating,
	userSummary *ucRating.GetUserSummary,
	ownerSummary *ucRating.GetOwnerSummary,
	logger *slog.Logger,
) *RatingHandler {
	return &RatingHandler{
		submit:       submit,
		userSummary:  userSummary,
		ownerSummary: ownerSummary,
		logger:       logger,
	}
}

// --------- Requests ---------

type SubmitRatingRequest struct {
	Rating *int `json:"rating" binding:"required,min=1,max=5"`
}

// --------- Handlers ---------

func (h *RatingHandler) Submit(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		httperr.Unauthorized(c, "unauthenticated", "Unauthenticated")
		return
	}

	storeID, ok := storeIDParam(c)
	if !ok {
		return
	}

	var req SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, validators.Messages(err))
		return
	}

	rating, err := h.submit.Execute(c.Request.Context(), ucRating.SubmitRatingInput{
		UserID:  userID,
		StoreID: storeID,
		Value:   *req.Rating,
	})
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	httpresp.Created(c, rating)
}

func (h *RatingHandler) UserSummary(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		httperr.Unauthorized(c, "unauthenticated", "Unauthenticated")
		return
	}

	summary, err := h.userSummary.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	httpresp.OK(c, summary)
}

func (h *RatingHandler) OwnerSummary(c *gin.Context) {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		httperr.Unauthorized(c, "unauthenticated", "Unauthenticated")
		return
	}

	summary, err := h.ownerSummary.Execute(c.Request.Context(), ownerID)
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	httpresp.OK(c, summary)
}
