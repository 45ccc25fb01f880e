package handler

import (
	"bitbuddy/internal/adapter/http/middleware"
	"bitbuddy/internal/core/domain"
	"bitbuddy/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Session        ports.WalletSessionService
	Rewards        ports.RewardsService
	Gifts          ports.GiftFlow
	Bridge         ports.BridgeFlow
	RateLimiter    ports.RateLimiter // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	FeedLimit      int    // 0 = domain default
	MetricsPath    string // "" = no metrics endpoint
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	if deps.MetricsPath != "" {
		r.Use(middleware.Metrics())
		r.GET(deps.MetricsPath, gin.WrapH(promhttp.Handler()))
	}
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if a limiter is configured, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimiter == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimiter, group, rule, deps.Logger)
	}

	feedLimit := deps.FeedLimit
	if feedLimit <= 0 {
		feedLimit = domain.DefaultFeedLimit
	}

	v1 := r.Group("/api/v1")

	sessionHandler := NewSessionHandler(deps.Session)
	session := v1.Group("/session")
	{
		session.GET("", rl("reads"), sessionHandler.Get)
		session.GET("/balance", rl("reads"), sessionHandler.Balance)
		session.POST("/connect", rl("session"), sessionHandler.Connect)
		session.POST("/switch", rl("session"), sessionHandler.Switch)
		session.POST("/disconnect", rl("session"), sessionHandler.Disconnect)
		session.POST("/refresh", rl("session"), sessionHandler.Refresh)
	}

	giftHandler := NewGiftHandler(deps.Gifts, deps.Rewards)
	gifts := v1.Group("/gifts")
	{
		gifts.POST("", rl("gifts"), giftHandler.Send)
		gifts.GET("", rl("reads"), giftHandler.List)
	}

	bridgeHandler := NewBridgeHandler(deps.Bridge)
	v1.POST("/bridge", rl("bridge"), bridgeHandler.Bridge)

	goalHandler := NewGoalHandler(deps.Rewards)
	goals := v1.Group("/goals")
	{
		goals.POST("", rl("goals"), goalHandler.Create)
		goals.GET("", rl("reads"), goalHandler.List)
		goals.POST("/:id/contributions", rl("goals"), goalHandler.Contribute)
		goals.DELETE("/:id", rl("goals"), goalHandler.Delete)
	}

	userHandler := NewUserHandler(deps.Rewards)
	users := v1.Group("/users/:address")
	{
		users.GET("/stats", rl("reads"), userHandler.Stats)
		users.GET("/badges", rl("reads"), userHandler.Badges)
		users.POST("/badges/reconcile", rl("goals"), userHandler.Reconcile)
	}
	v1.GET("/badges", rl("reads"), userHandler.Catalogue)

	feedHandler := NewFeedHandler(deps.Rewards, feedLimit)
	v1.GET("/feed", rl("reads"), feedHandler.Recent)

	return r
}
