package routes

import (
	"net/http"
	"time"

	artifactsapi "nectar-house-api/internal/api/artifacts"
	auctionsapi "nectar-house-api/internal/api/auctions"
	tokenizationapi "nectar-house-api/internal/api/tokenization"
	usersapi "nectar-house-api/internal/api/users"
	"nectar-house-api/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   "Nectar House API",
		})
	})

	api := r.Group("/api")
	api.Use(middleware.SanitizeAndCleanInputMiddleware())

	api.GET("/artifacts", artifactsapi.ListArtifacts)
	api.GET("/artifacts/:id", artifactsapi.GetArtifact)
	api.POST("/artifacts", artifactsapi.CreateArtifact)
	api.PUT("/artifacts/:id", artifactsapi.UpdateArtifact)
	api.DELETE("/artifacts/:id", artifactsapi.DeleteArtifact)

	api.GET("/auctions", auctionsapi.ListAuctions)
	api.GET("/auctions/user/:walletAddress", auctionsapi.UserActivity)
	api.GET("/auctions/:id", auctionsapi.GetAuction)
	api.GET("/auctions/:id/bids", auctionsapi.ListBids)
	api.POST("/auctions", auctionsapi.CreateAuction)
	api.POST("/auctions/:id/bid", auctionsapi.PlaceBid)
	api.POST("/auctions/:id/end", auctionsapi.EndAuction)
	api.POST("/auctions/:id/cancel", auctionsapi.CancelAuction)

	api.POST("/tokenization/mint", tokenizationapi.Mint)
	api.POST("/tokenization/fractionalize", tokenizationapi.Fractionalize)
	api.POST("/tokenization/purchase-shares", tokenizationapi.PurchaseShares)
	api.POST("/tokenization/stake", tokenizationapi.Stake)
	api.GET("/tokenization/holdings/:walletAddress", tokenizationapi.Holdings)
	api.GET("/tokenization/status/:artifactId", tokenizationapi.Status)

	api.GET("/users/profile/:walletAddress", usersapi.GetProfile)
	api.POST("/users/profile", usersapi.UpsertProfile)
	api.GET("/users/portfolio/:walletAddress", usersapi.GetPortfolio)
	api.GET("/users/leaderboard", usersapi.Leaderboard)
	api.POST("/users/kyc", usersapi.SubmitKYC)
	api.GET("/users/restoration-fund", usersapi.RestorationFund)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Route not found"})
	})
}
