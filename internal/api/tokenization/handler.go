package tokenization

import (
	"errors"
	"net/http"
	"time"

	"nectar-house-api/internal/domain/tokenization"
	"nectar-house-api/store"

	"github.com/gin-gonic/gin"
)

// POST /api/tokenization/mint
func Mint(c *gin.Context) {
	var req MintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}
	if req.ArtifactID == "" || req.WalletAddress == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Artifact ID and wallet address are required"})
		return
	}

	record := store.Tokenization.Mint(req.ArtifactID, req.WalletAddress)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": record})
}

// POST /api/tokenization/fractionalize
func Fractionalize(c *gin.Context) {
	var req FractionalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}
	if req.ArtifactID == "" || req.TotalShares == 0 || req.PricePerShare == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Artifact ID, total shares, and price per share are required"})
		return
	}

	record, err := store.Tokenization.Fractionalize(req.ArtifactID, req.TotalShares, req.PricePerShare)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Artifact not tokenized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": record})
}

// POST /api/tokenization/purchase-shares
func PurchaseShares(c *gin.Context) {
	var req PurchaseSharesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}
	if req.ArtifactID == "" || req.Shares == 0 || req.WalletAddress == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Artifact ID, shares, and wallet address are required"})
		return
	}

	res, err := store.Tokenization.PurchaseShares(req.ArtifactID, req.Shares, req.WalletAddress)
	if err != nil {
		if errors.Is(err, tokenization.ErrInsufficientShares) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Insufficient shares available"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Fractional ownership not available"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": res})
}

// POST /api/tokenization/stake
func Stake(c *gin.Context) {
	var req StakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}
	if req.TokenID == "" || req.Amount == 0 || req.Duration == 0 || req.WalletAddress == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Token ID, amount, duration, and wallet address are required"})
		return
	}

	res := store.Tokenization.Stake(req.TokenID, req.Amount, req.Duration)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"stakeId":       res.StakeID,
			"apy":           res.APY,
			"maturityDate":  res.MaturityDate,
			"rewards":       res.Rewards,
			"walletAddress": req.WalletAddress,
			"stakedAmount":  req.Amount,
			"stakedAt":      time.Now(),
		},
	})
}

// GET /api/tokenization/holdings/:walletAddress
func Holdings(c *gin.Context) {
	wallet := c.Param("walletAddress")
	holdings, total := store.Tokenization.Holdings(wallet)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"walletAddress": wallet,
			"holdings":      holdings,
			"totalValue":    total,
		},
	})
}

// GET /api/tokenization/status/:artifactId
func Status(c *gin.Context) {
	record, err := store.Tokenization.Status(c.Param("artifactId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Artifact not tokenized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": record})
}
