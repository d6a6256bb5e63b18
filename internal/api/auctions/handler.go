package auctions

import (
	"errors"
	"fmt"
	"net/http"

	"nectar-house-api/internal/domain/auctions"
	"nectar-house-api/store"

	"github.com/gin-gonic/gin"
)

// GET /api/auctions
func ListAuctions(c *gin.Context) {
	f := auctions.Filter{
		Status: c.Query("status"),
		Active: c.Query("active") == "true",
	}

	list := store.Auctions.List(f)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    list,
		"count":   len(list),
	})
}

// GET /api/auctions/:id
func GetAuction(c *gin.Context) {
	a, bids, err := store.Auctions.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Auction not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": auctionWithBids{Auction: a, Bids: bids}})
}

type auctionWithBids struct {
	auctions.Auction
	Bids []auctions.Bid `json:"bids"`
}

// POST /api/auctions
func CreateAuction(c *gin.Context) {
	var req CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	a, err := store.Auctions.Create(auctions.CreateInput{
		ArtifactID:          req.ArtifactID,
		Title:               req.Title,
		Description:         req.Description,
		StartPrice:          req.StartPrice,
		ReservePrice:        req.ReservePrice,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		MinimumBidIncrement: req.MinimumBidIncrement,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing required fields"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": a})
}

// POST /api/auctions/:id/bid
func PlaceBid(c *gin.Context) {
	var req PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}
	if req.BidAmount == 0 || req.BidderWallet == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Bid amount and bidder wallet are required"})
		return
	}

	bid, auction, err := store.Auctions.PlaceBid(c.Param("id"), req.BidAmount, req.BidderWallet, req.BidderName)
	if err != nil {
		var tooLow *auctions.BidTooLowError
		switch {
		case errors.Is(err, auctions.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Auction not found"})
		case errors.As(err, &tooLow):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": fmt.Sprintf("Minimum bid is %g", tooLow.Minimum)})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Auction is not active"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"bid": bid,
			"auction": gin.H{
				"currentPrice":  auction.CurrentPrice,
				"highestBidder": auction.HighestBidder,
				"bidCount":      auction.BidCount,
			},
		},
	})
}

// GET /api/auctions/:id/bids
func ListBids(c *gin.Context) {
	bids := store.Auctions.Bids(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    bids,
		"count":   len(bids),
	})
}

// POST /api/auctions/:id/end
func EndAuction(c *gin.Context) {
	res, err := store.Auctions.End(c.Param("id"))
	if err != nil {
		if errors.Is(err, auctions.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Auction not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Auction is not active"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": res})
}

// POST /api/auctions/:id/cancel
func CancelAuction(c *gin.Context) {
	a, err := store.Auctions.Cancel(c.Param("id"))
	if err != nil {
		if errors.Is(err, auctions.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Auction not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Auction is not active"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": a})
}

// GET /api/auctions/user/:walletAddress
func UserActivity(c *gin.Context) {
	wallet := c.Param("walletAddress")
	bids, total := store.Auctions.UserActivity(wallet)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"walletAddress": wallet,
			"bids":          bids,
			"totalBidValue": total,
		},
	})
}
