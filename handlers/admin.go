package handlers

import (
	"net/http"

	"saapaadu-api/config"
	"saapaadu-api/models"
	"saapaadu-api/services"

	"github.com/gin-gonic/gin"
)

// AdminListUsers returns all user accounts (password hashes excluded by the
// model's json tags)
func AdminListUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Order("created_at desc").Find(&users).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// AdminListHotspots returns every listing with its vendor
func AdminListHotspots(c *gin.Context) {
	var hotspots []models.Hotspot
	if err := config.DB.Preload("Vendor").Order("created_at desc").Find(&hotspots).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(hotspots), "hotspots": hotspots})
}

// AdminListOrders returns every order with relations
func AdminListOrders(c *gin.Context) {
	var orders []models.Order
	if err := config.DB.Preload("Hotspot").Preload("Vendor").Preload("Customer").
		Order("created_at desc").Find(&orders).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// AdminForceOrderStatus sets any valid status, skipping the transition table
func AdminForceOrderStatus(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := services.ForceOrderStatus(id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status forced", "order": order})
}
