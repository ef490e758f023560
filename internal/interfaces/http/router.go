// Package http assembles the gin engine: middleware, wiring, routes.
package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	adminUC "paygate/internal/application/admin/usecases"
	"paygate/internal/application/checkout/token"
	checkoutUC "paygate/internal/application/checkout/usecases"
	"paygate/internal/domain/merchant"
	"paygate/internal/infrastructure/auth"
	"paygate/internal/infrastructure/config"
	"paygate/internal/infrastructure/email"
	"paygate/internal/infrastructure/ratelimit"
	"paygate/internal/infrastructure/repository"
	"paygate/internal/infrastructure/storefront"
	"paygate/internal/interfaces/http/handlers"
	"paygate/internal/interfaces/http/middleware"
	"paygate/internal/interfaces/http/routes"
	"paygate/internal/shared/logger"
)

// NewRouter wires repositories, use cases, and handlers into a gin engine.
func NewRouter(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log logger.Interface) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery())
	r.Use(middleware.Logger(log))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	// Repositories
	orderRepo := repository.NewOrderRepository(db)
	settingStore := repository.NewMerchantSettingRepository(db)

	// Config-file values act as defaults under the stored settings.
	defaults := merchant.Config{
		MerchantID:    cfg.Checkout.MerchantID,
		ClientID:      cfg.Checkout.ClientID,
		MerchantName:  cfg.Checkout.MerchantName,
		SecretKey:     cfg.Checkout.SecretKey,
		RSAPublicKey:  cfg.Checkout.RSAPublicKey,
		RSAPrivateKey: cfg.Checkout.RSAPrivateKey,
	}
	if mode, err := merchant.NewMode(cfg.Checkout.Mode); err == nil {
		defaults.Mode = mode
	} else {
		log.Warnw("invalid checkout mode in config, falling back to demo", "mode", cfg.Checkout.Mode)
		defaults.Mode = merchant.ModeDemo
	}

	// Infrastructure services
	jwtService := auth.NewJWTService(cfg.Admin.JWTSecret, cfg.Admin.TokenExpMinutes)
	hasher := auth.NewBcryptPasswordHasher(12)
	urls := storefront.NewURLProvider(cfg.Checkout.StorefrontBaseURL)
	notifier := email.NewSMTPNotifier(cfg.Email, log)

	// Use cases
	generateURL := checkoutUC.NewGenerateCheckoutURLUseCase(orderRepo, settingStore, defaults, token.NewBuilder(), log)
	handleCallback := checkoutUC.NewHandleCallbackUseCase(orderRepo, settingStore, defaults, urls, notifier, log)
	login := adminUC.NewLoginUseCase(cfg.Admin, jwtService, hasher, log)
	getSettings := adminUC.NewGetCheckoutSettingsUseCase(settingStore, defaults, log)
	updateSettings := adminUC.NewUpdateCheckoutSettingsUseCase(settingStore, log)

	// Handlers
	checkoutHandler := handlers.NewCheckoutHandler(generateURL, log)
	callbackHandler := handlers.NewCallbackHandler(handleCallback, log)
	adminHandler := handlers.NewAdminHandler(login, getSettings, updateSettings, log)
	healthHandler := handlers.NewHealthHandler(db)

	// Middleware depending on services
	authMW := middleware.NewAdminAuthMiddleware(jwtService, log)
	callbackLimit := nopMiddleware()
	if redisClient != nil {
		limiter := ratelimit.NewRedisRateLimiter(redisClient)
		callbackLimit = middleware.CallbackRateLimit(limiter, ratelimit.RateLimitConfig{
			RequestsPerMinute: cfg.CallbackRateLimit.RequestsPerMinute,
			RequestsPerHour:   cfg.CallbackRateLimit.RequestsPerHour,
		}, log)
	}

	// Routes
	r.GET("/health", healthHandler.Check)
	routes.RegisterCallbackRoutes(r, callbackHandler, callbackLimit)

	api := r.Group("/api")
	routes.RegisterCheckoutRoutes(api, checkoutHandler, authMW)
	routes.RegisterAdminRoutes(api, adminHandler, authMW)

	return r
}

func nopMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) { c.Next() }
}
