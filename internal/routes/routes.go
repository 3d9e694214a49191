package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/store-ratings/internal/audit"
	"github.com/BruksfildServices01/store-ratings/internal/auth"
	"github.com/BruksfildServices01/store-ratings/internal/config"
	"github.com/BruksfildServices01/store-ratings/internal/handlers"
	infraRepo "github.com/BruksfildServices01/store-ratings/internal/infra/repository"
	"github.com/BruksfildServices01/store-ratings/internal/middleware"
	"github.com/BruksfildServices01/store-ratings/internal/models"
	ucAdmin "github.com/BruksfildServices01/store-ratings/internal/usecase/admin"
	ucAuth "github.com/BruksfildServices01/store-ratings/internal/usecase/auth"
	ucRating "github.com/BruksfildServices01/store-ratings/internal/usecase/rating"
	ucStore "github.com/BruksfildServices01/store-ratings/internal/usecase/store"
	"github.com/BruksfildServices01/store-ratings/internal/validators"
)

// RegisterRoutes wires the API under /api. The returned dispatcher must be
// closed on shutdown so queued audit events are flushed. A nil redis client
// disables rate limiting.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	logger *slog.Logger,
	rdb *redis.Client,
) *audit.Dispatcher {

	validators.RegisterBindings()

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(db)
	storeRepo := infraRepo.NewStoreGormRepository(db)
	ratingRepo := infraRepo.NewRatingGormRepository(db)
	auditLogRepo := infraRepo.NewAuditLogGormRepository(db)

	auditDispatcher := audit.NewDispatcher(audit.New(db), logger)

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTExpiresIn)
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)

	limiter := middleware.NewRateLimiter(rdb, cfg.RateLimitRequests, cfg.RateLimitWindow, logger)

	// ======================================================
	// USE CASES
	// ======================================================
	registerUC := ucAuth.NewRegisterUser(userRepo, hasher, tokens, auditDispatcher)
	authenticateUC := ucAuth.NewAuthenticate(userRepo, hasher, tokens, auditDispatcher)
	profileUC := ucAuth.NewGetProfile(userRepo)

	searchStoresUC := ucStore.NewSearchStores(storeRepo)
	rankedStoresUC := ucStore.NewRankedStores(storeRepo)
	createStoreUC := ucStore.NewCreateStore(storeRepo, userRepo, auditDispatcher)

	submitRatingUC := ucRating.NewSubmitRating(ratingRepo, auditDispatcher)
	storeAggregateUC := ucRating.NewGetStoreAggregate(ratingRepo)
	userSummaryUC := ucRating.NewGetUserSummary(ratingRepo)
	ownerSummaryUC := ucRating.NewGetOwnerSummary(ratingRepo)

	metricsUC := ucAdmin.NewGetMetrics(userRepo, storeRepo, ratingRepo)
	listUsersUC := ucAdmin.NewListUsers(userRepo)
	exportStoresUC := ucAdmin.NewExportStores(rankedStoresUC)
	listAuditLogsUC := ucAdmin.NewListAuditLogs(auditLogRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, authenticateUC, profileUC, logger)
	storeHandler := handlers.NewStoreHandler(searchStoresUC, createStoreUC, storeAggregateUC, logger)
	ratingHandler := handlers.NewRatingHandler(submitRatingUC, userSummaryUC, ownerSummaryUC, logger)
	adminHandler := handlers.NewAdminHandler(
		metricsUC,
		listUsersUC,
		rankedStoresUC,
		exportStoresUC,
		listAuditLogsUC,
		logger,
	)

	requireAuth := middleware.AuthMiddleware(tokens)
	requireAdmin := middleware.RequireRole(models.RoleAdmin)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		authAPI := api.Group("/auth")
		authAPI.Use(limiter.Middleware("auth"))
		{
			authAPI.POST("/signup", authHandler.Signup)
			authAPI.POST("/login", authHandler.Login)
		}

		api.GET("/me", requireAuth, authHandler.Me)

		// ------------------------------
		// STORES
		// ------------------------------
		api.GET("/stores", storeHandler.Search)
		api.GET("/stores/:storeId/aggregate", storeHandler.Aggregate)
		api.POST("/stores", requireAuth, requireAdmin, storeHandler.Create)

		// ------------------------------
		// RATINGS
		// ------------------------------
		api.POST("/ratings/stores/:storeId",
			requireAuth,
			limiter.Middleware("ratings"),
			ratingHandler.Submit,
		)

		api.GET("/user/summary", requireAuth, ratingHandler.UserSummary)

		api.GET("/owner/summary",
			requireAuth,
			middleware.RequireRole(models.RoleOwner),
			ratingHandler.OwnerSummary,
		)

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(requireAuth, requireAdmin)
		{
			admin.GET("/metrics", adminHandler.Metrics)
			admin.GET("/users", adminHandler.ListUsers)
			admin.GET("/stores", adminHandler.ListStores)
			admin.GET("/stores/export", adminHandler.ExportStores)
			admin.GET("/audit-logs", adminHandler.ListAuditLogs)
		}
	}

	return auditDispatcher
}
