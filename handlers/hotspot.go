package handlers

import (
	"net/http"
	"strconv"

	"saapaadu-api/middleware"
	"saapaadu-api/models"
	"saapaadu-api/services"

	"github.com/gin-gonic/gin"
)

type CreateHotspotRequest struct {
	MealName  string          `json:"meal_name" binding:"required"`
	MealCount int             `json:"meal_count" binding:"required,gt=0"`
	Price     float64         `json:"price" binding:"required,gt=0"`
	Duration  int             `json:"duration" binding:"required,gt=0"`
	VegNonVeg models.DietFlag `json:"veg_nonveg" binding:"omitempty,oneof=veg nonveg"`
}

// normalizeDuration converts the legacy client convention to canonical
// minutes: small values are hours (the old form sent 1, 2, 3 hours), larger
// values are already minutes. Storage only ever sees minutes.
func normalizeDuration(d int) int {
	if d <= 24 {
		return d * 60
	}
	return d
}

// CreateHotspot publishes a listing for the calling vendor
func CreateHotspot(c *gin.Context) {
	var req CreateHotspotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hotspot, err := services.CreateHotspot(c.Request.Context(), middleware.GetUserID(c), services.CreateHotspotInput{
		MealName:  req.MealName,
		MealCount: req.MealCount,
		Price:     req.Price,
		Duration:  normalizeDuration(req.Duration),
		VegNonVeg: req.VegNonVeg,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Hotspot created", "hotspot": hotspot})
}

// MyHotspots lists the calling vendor's own listings
func MyHotspots(c *gin.Context) {
	hotspots, err := services.FindHotspotsByVendor(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(hotspots), "hotspots": hotspots})
}

// UpdateHotspot applies an allow-listed partial update to an owned listing
func UpdateHotspot(c *gin.Context) {
	id, ok := hotspotID(c)
	if !ok {
		return
	}
	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if d, ok := req["duration"].(float64); ok {
		req["duration"] = float64(normalizeDuration(int(d)))
	}
	hotspot, err := services.UpdateHotspot(middleware.GetUserID(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Hotspot updated", "hotspot": hotspot})
}

// DeleteHotspot removes an owned listing
func DeleteHotspot(c *gin.Context) {
	id, ok := hotspotID(c)
	if !ok {
		return
	}
	if err := services.RemoveHotspot(middleware.GetUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Hotspot deleted successfully"})
}

func hotspotID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hotspot id"})
		return 0, false
	}
	return uint(id), true
}
