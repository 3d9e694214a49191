package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/store-ratings/internal/httperr"
	"github.com/BruksfildServices01/store-ratings/internal/httpresp"
	"github.com/BruksfildServices01/store-ratings/internal/middleware"
	ucAuth "github.com/BruksfildServices01/store-ratings/internal/usecase/auth"
	"github.com/BruksfildServices01/store-ratings/internal/validators"
)

type AuthHandler struct {
	register     *ucAuth.RegisterUser
	authenticate *ucAuth.Authenticate
	profile      *ucAuth.GetProfile
	logger       *slog.Logger
}

func NewAuthHandler(
	register *ucAuth.RegisterUser,
	authenticate *ucAuth.Authenticate,
	profile *ucAuth.GetProfile,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		register:     register,
		authenticate: authenticate,
		profile:      profile,
		logger:       logger,
	}
}

// --------- Requests ---------

type SignupRequest struct {
	Name     string `json:"name" binding:"required,trimmed,min=20,max=60"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=16,password_upper,password_special"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=16"`
}

// --------- Handlers ---------

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, validators.Messages(err))
		return
	}

	res, err := h.register.Execute(c.Request.Context(), ucAuth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, validators.Messages(err))
		return
	}

	res, err := h.authenticate.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	httpresp.OK(c, res)
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		httperr.Unauthorized(c, "unauthenticated", "Unauthenticated")
		return
	}

	user, err := h.profile.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	httpresp.OK(c, gin.H{"user": user})
}
