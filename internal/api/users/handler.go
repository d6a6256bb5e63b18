package users

import (
	"net/http"
	"strconv"

	"nectar-house-api/internal/domain/users"
	"nectar-house-api/store"

	"github.com/gin-gonic/gin"
)

// GET /api/users/profile/:walletAddress
func GetProfile(c *gin.Context) {
	u, err := store.Users.GetByWallet(c.Param("walletAddress"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": u})
}

// POST /api/users/profile
func UpsertProfile(c *gin.Context) {
	var req UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}
	if req.WalletAddress == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Wallet address is required"})
		return
	}

	u, created := store.Users.Upsert(users.UpsertInput{
		WalletAddress: req.WalletAddress,
		Username:      req.Username,
		Email:         req.Email,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Bio:           req.Bio,
	})

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"success": true, "data": u})
}

// GET /api/users/portfolio/:walletAddress
//
// The portfolio is a fixed mock aggregate; it is not derived from the
// holdings recorded by the tokenization simulator.
func GetPortfolio(c *gin.Context) {
	wallet := c.Param("walletAddress")
	if _, err := store.Users.GetByWallet(wallet); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": mockPortfolio(wallet)})
}

// GET /api/users/leaderboard
func Leaderboard(c *gin.Context) {
	field := c.DefaultQuery("type", "totalSpent")
	limit := 10
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	entries, totalUsers := store.Users.Leaderboard(field, limit)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"type":        field,
			"leaderboard": entries,
			"totalUsers":  totalUsers,
		},
	})
}

// POST /api/users/kyc
func SubmitKYC(c *gin.Context) {
	var req SubmitKYCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}
	if req.WalletAddress == "" || len(req.KYCData) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Wallet address and KYC data are required"})
		return
	}

	res, err := store.Users.SubmitKYC(req.WalletAddress, req.KYCData)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"kycResult": res,
			"message":   "KYC information submitted successfully",
		},
	})
}

// GET /api/users/restoration-fund
func RestorationFund(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": mockRestorationFund()})
}
