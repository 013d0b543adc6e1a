// Package http assembles the gin engine: repositories, use cases, handlers
// and middleware.
package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authusecases "adminkit/internal/application/auth/usecases"
	productusecases "adminkit/internal/application/product/usecases"
	sessionusecases "adminkit/internal/application/session/usecases"
	userusecases "adminkit/internal/application/user/usecases"
	"adminkit/internal/infrastructure/auth"
	"adminkit/internal/infrastructure/config"
	"adminkit/internal/infrastructure/ratelimit"
	"adminkit/internal/infrastructure/repository"
	"adminkit/internal/interfaces/http/handlers"
	"adminkit/internal/interfaces/http/middleware"
	"adminkit/internal/interfaces/http/routes"
	"adminkit/internal/shared/logger"
)

// Router owns the gin engine and the wired handler graph.
type Router struct {
	engine         *gin.Engine
	cfg            *config.Config
	logger         logger.Interface
	authHandler    *handlers.AuthHandler
	userHandler    *handlers.UserHandler
	productHandler *handlers.ProductHandler
	sessionHandler *handlers.SessionHandler
	healthHandler  *handlers.HealthHandler
	authMiddleware *middleware.AuthMiddleware
	trackActivity  gin.HandlerFunc
	rateLimit      gin.HandlerFunc
}

// NewRouter wires every repository, use case and handler. redisClient may
// be nil; rate limiting is skipped without it.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	userRepo := repository.NewUserRepository(db, log)
	sessionRepo := repository.NewSessionRepository(db)
	productRepo := repository.NewProductRepository(db, log)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpDays, cfg.Auth.JWT.RefreshExpDays)
	jwtService := &jwtServiceAdapter{jwtSvc}

	registerUC := authusecases.NewRegisterUseCase(userRepo, hasher, jwtService, log)
	loginUC := authusecases.NewLoginUseCase(userRepo, sessionRepo, hasher, jwtService, log)
	logoutUC := authusecases.NewLogoutUseCase(sessionRepo, log)
	refreshUC := authusecases.NewRefreshTokenUseCase(userRepo, sessionRepo, jwtService, log)
	requestResetUC := authusecases.NewRequestPasswordResetUseCase(userRepo, log)
	resetPasswordUC := authusecases.NewResetPasswordUseCase(log)

	listUsersUC := userusecases.NewListUsersUseCase(userRepo, log)
	getUserUC := userusecases.NewGetUserUseCase(userRepo, log)
	createUserUC := userusecases.NewCreateUserUseCase(userRepo, hasher, log)
	updateUserUC := userusecases.NewUpdateUserUseCase(userRepo, log)
	deleteUserUC := userusecases.NewDeleteUserUseCase(userRepo, sessionRepo, log)
	changePasswordUC := userusecases.NewChangePasswordUseCase(userRepo, hasher, log)
	profileUC := userusecases.NewGetUserProfileUseCase(userRepo, sessionRepo, log)

	listProductsUC := productusecases.NewListProductsUseCase(productRepo, log)
	getProductUC := productusecases.NewGetProductUseCase(productRepo, log)
	createProductUC := productusecases.NewCreateProductUseCase(productRepo, log)
	updateProductUC := productusecases.NewUpdateProductUseCase(productRepo, log)
	updateStockUC := productusecases.NewUpdateStockUseCase(productRepo, log)
	deleteProductUC := productusecases.NewDeleteProductUseCase(productRepo, log)

	listSessionsUC := sessionusecases.NewListSessionsUseCase(sessionRepo, log)
	activeSessionsUC := sessionusecases.NewActiveSessionsUseCase(sessionRepo, log)
	sessionStatsUC := sessionusecases.NewSessionStatsUseCase(sessionRepo, log)
	terminateUC := sessionusecases.NewTerminateSessionUseCase(sessionRepo, log)
	terminateAllUC := sessionusecases.NewTerminateAllSessionsUseCase(sessionRepo, log)
	trackActivityUC := sessionusecases.NewTrackActivityUseCase(sessionRepo, log)

	authHandler := handlers.NewAuthHandler(
		registerUC, loginUC, logoutUC, refreshUC, requestResetUC, resetPasswordUC, log,
	)
	userHandler := handlers.NewUserHandler(
		listUsersUC, getUserUC, createUserUC, updateUserUC, deleteUserUC, changePasswordUC, profileUC, log,
	)
	productHandler := handlers.NewProductHandler(
		listProductsUC, getProductUC, createProductUC, updateProductUC, updateStockUC, deleteProductUC, log,
	)
	sessionHandler := handlers.NewSessionHandler(
		listSessionsUC, activeSessionsUC, sessionStatsUC, terminateUC, terminateAllUC, trackActivityUC, log,
	)

	authMiddleware := middleware.NewAuthMiddleware(jwtSvc, userRepo, log)

	var rateLimitFn gin.HandlerFunc
	if cfg.RateLimit.Enabled && redisClient != nil {
		limiter := ratelimit.NewRedisRateLimiter(redisClient)
		rateLimitFn = middleware.RateLimit(limiter, ratelimit.RateLimitConfig{
			Limit:  cfg.RateLimit.Limit,
			Window: time.Duration(cfg.RateLimit.WindowSeconds) * time.Second,
		}, log)
	}

	return &Router{
		engine:         engine,
		cfg:            cfg,
		logger:         log,
		authHandler:    authHandler,
		userHandler:    userHandler,
		productHandler: productHandler,
		sessionHandler: sessionHandler,
		healthHandler:  handlers.NewHealthHandler(),
		authMiddleware: authMiddleware,
		trackActivity:  middleware.TrackActivity(trackActivityUC, log),
		rateLimit:      rateLimitFn,
	}
}

// SetupRoutes installs the middleware chain and every route group.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	api := r.engine.Group("/api")

	api.GET("/healthcheck", r.healthHandler.Healthcheck)

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimit:      r.rateLimit,
	})
	routes.SetupUserRoutes(api, &routes.UserRouteConfig{
		UserHandler:    r.userHandler,
		AuthMiddleware: r.authMiddleware,
		TrackActivity:  r.trackActivity,
	})
	routes.SetupProductRoutes(api, &routes.ProductRouteConfig{
		ProductHandler: r.productHandler,
		AuthMiddleware: r.authMiddleware,
		TrackActivity:  r.trackActivity,
	})
	routes.SetupSessionRoutes(api, &routes.SessionRouteConfig{
		SessionHandler: r.sessionHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
