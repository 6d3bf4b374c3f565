package handler

import (
	"timed-trading-platform/internal/adapter/http/middleware"
	redisStore "timed-trading-platform/internal/adapter/storage/redis"
	"timed-trading-platform/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	PositionSvc    ports.PositionService
	SpotSvc        ports.SpotTradeService
	LimitSvc       ports.LimitOrderService
	PayoutRepo     ports.PayoutScheduleRepository
	Oracle         ports.PriceOracle
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	marketHandler := NewMarketHandler(deps.PayoutRepo, deps.Oracle)
	v1.GET("/payouts", rl("reads"), marketHandler.ListPayouts)
	v1.GET("/prices/:pair", rl("reads"), marketHandler.GetPrice)

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	walletHandler := NewWalletHandler(deps.WalletSvc)
	wallet := v1.Group("/wallet", jwtAuth)
	{
		wallet.GET("/balance", rl("reads"), walletHandler.GetBalance)
		wallet.POST("/deposit", rl("wallet"), walletHandler.Deposit)
		wallet.POST("/withdraw", rl("wallet"), walletHandler.Withdraw)
		wallet.GET("/history", rl("reads"), walletHandler.GetHistory)
		wallet.GET("/stats", rl("reads"), walletHandler.GetStats)
	}

	positionHandler := NewPositionHandler(deps.PositionSvc)
	positions := v1.Group("/positions", jwtAuth)
	{
		positions.POST("", rl("positions"), positionHandler.Open)
		positions.GET("", rl("reads"), positionHandler.List)
	}

	tradeHandler := NewTradeHandler(deps.SpotSvc, deps.LimitSvc)
	trades := v1.Group("/trades", jwtAuth)
	{
		trades.POST("", rl("trades"), tradeHandler.ExecuteSpot)
	}

	orders := v1.Group("/orders", jwtAuth)
	{
		orders.POST("", rl("orders"), tradeHandler.PlaceLimitOrder)
		orders.GET("", rl("reads"), tradeHandler.ListLimitOrders)
		orders.DELETE("/:id", rl("orders"), tradeHandler.CancelLimitOrder)
	}

	return r
}
