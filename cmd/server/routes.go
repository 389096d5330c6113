package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tokyo-friends.backend/internal/interfaces/http/handlers"
	"tokyo-friends.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler       *handlers.AuthHandler
	userHandler       *handlers.UserHandler
	profileHandler    *handlers.ProfileHandler
	deckHandler       *handlers.DeckHandler
	matchHandler      *handlers.MatchHandler
	moderationHandler *handlers.ModerationHandler
	communityHandler  *handlers.CommunityHandler
	authMiddleware    gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, Idempotency-Key, X-Request-ID")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "tokyo-friends-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
		}

		// Account routes (protected)
		users := v1.Group("/users")
		users.Use(d.authMiddleware)
		{
			users.GET("/me", d.userHandler.GetMe)
			users.GET("/me/trust", d.moderationHandler.TrustScore)
			users.DELETE("/me", d.userHandler.DeleteMe)
		}

		// Profile routes (protected)
		profiles := v1.Group("/profiles")
		profiles.Use(d.authMiddleware)
		{
			profiles.POST("", d.profileHandler.Create)
			profiles.PUT("/me", d.profileHandler.UpdateMe)
			profiles.PUT("/me/instagram", d.profileHandler.SetInstagramHandle)
			profiles.POST("/me/photos", d.profileHandler.AddPhoto)
			profiles.DELETE("/me/photos", d.profileHandler.RemovePhoto)
			profiles.PUT("/me/photos/order", d.profileHandler.ReorderPhotos)
			profiles.GET("/:userId", d.profileHandler.Get)
		}

		// Deck route (protected)
		cards := v1.Group("/cards")
		cards.Use(d.authMiddleware)
		{
			cards.GET("", d.deckHandler.GetCards)
		}

		// Interaction routes (protected)
		likes := v1.Group("/likes")
		likes.Use(d.authMiddleware)
		{
			likes.POST("", middleware.IdempotencyMiddleware(), d.matchHandler.SendLike)
		}
		skips := v1.Group("/skips")
		skips.Use(d.authMiddleware)
		{
			skips.POST("", d.matchHandler.SendSkip)
		}

		// Match routes (protected)
		matches := v1.Group("/matches")
		matches.Use(d.authMiddleware)
		{
			matches.GET("", d.matchHandler.ListMatches)
			matches.GET("/:id", d.matchHandler.GetMatch)
			matches.POST("/:id/block", d.moderationHandler.BlockMatch)
		}

		// Moderation routes (protected)
		blocks := v1.Group("/blocks")
		blocks.Use(d.authMiddleware)
		{
			blocks.POST("", d.moderationHandler.Block)
			blocks.GET("", d.moderationHandler.ListBlocked)
			blocks.DELETE("/:userId", d.moderationHandler.Unblock)
		}
		reports := v1.Group("/reports")
		reports.Use(d.authMiddleware)
		{
			reports.POST("", middleware.IdempotencyMiddleware(), d.moderationHandler.Report)
		}

		// Community routes (protected)
		communities := v1.Group("/communities")
		communities.Use(d.authMiddleware)
		{
			communities.GET("", d.communityHandler.List)
			communities.GET("/me", d.communityHandler.Mine)
			communities.POST("/:id/join", d.communityHandler.Join)
			communities.POST("/:id/leave", d.communityHandler.Leave)
		}
	}
}
