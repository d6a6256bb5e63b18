package artifacts

import (
	"errors"
	"net/http"
	"strconv"

	"nectar-house-api/internal/domain/artifacts"
	"nectar-house-api/store"

	"github.com/gin-gonic/gin"
)

// GET /api/artifacts
func ListArtifacts(c *gin.Context) {
	var f artifacts.Filter
	f.Culture = c.Query("culture")
	f.Period = c.Query("period")
	f.Search = c.Query("search")

	if v := c.Query("tokenized"); v != "" {
		tokenized := v == "true"
		f.Tokenized = &tokenized
	}
	if v := c.Query("minValue"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.MinValue = &n
		}
	}
	if v := c.Query("maxValue"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.MaxValue = &n
		}
	}

	list := store.Artifacts.List(f)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    list,
		"count":   len(list),
	})
}

// GET /api/artifacts/:id
func GetArtifact(c *gin.Context) {
	a, err := store.Artifacts.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Artifact not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": a})
}

// POST /api/artifacts
func CreateArtifact(c *gin.Context) {
	var req CreateArtifactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	a, err := store.Artifacts.Create(artifacts.CreateInput{
		Title:          req.Title,
		Description:    req.Description,
		Provenance:     req.Provenance,
		Culture:        req.Culture,
		Period:         req.Period,
		Material:       req.Material,
		Dimensions:     req.Dimensions,
		Condition:      req.Condition,
		EstimatedValue: req.EstimatedValue,
		Images:         req.Images,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing required fields"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": a})
}

// PUT /api/artifacts/:id
func UpdateArtifact(c *gin.Context) {
	var req UpdateArtifactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	a, err := store.Artifacts.Update(c.Param("id"), artifacts.UpdateInput{
		Title:               req.Title,
		Description:         req.Description,
		Provenance:          req.Provenance,
		Culture:             req.Culture,
		Period:              req.Period,
		Material:            req.Material,
		Dimensions:          req.Dimensions,
		Condition:           req.Condition,
		EstimatedValue:      req.EstimatedValue,
		CurrentValue:        req.CurrentValue,
		Tokenized:           req.Tokenized,
		FractionalOwnership: req.FractionalOwnership,
		TokenID:             req.TokenID,
		TotalShares:         req.TotalShares,
		AvailableShares:     req.AvailableShares,
		PricePerShare:       req.PricePerShare,
		Images:              req.Images,
		IPFSHash:            req.IPFSHash,
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Artifact not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": a})
}

// DELETE /api/artifacts/:id
func DeleteArtifact(c *gin.Context) {
	if err := store.Artifacts.Delete(c.Param("id")); err != nil {
		if errors.Is(err, artifacts.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Artifact not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete artifact"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Artifact deleted successfully"})
}
