package handlers

import (
	"net/http"
	"strconv"

	"saapaadu-api/middleware"
	"saapaadu-api/services"

	"github.com/gin-gonic/gin"
)

// GetCustomerProfile returns the caller's customer profile
func GetCustomerProfile(c *gin.Context) {
	customer, err := services.GetCustomer(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

// UpdateCustomerProfile applies an allow-listed partial update
func UpdateCustomerProfile(c *gin.Context) {
	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	customer, err := services.UpdateCustomer(middleware.GetUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "customer": customer})
}

// GetVendorProfile returns the caller's vendor profile
func GetVendorProfile(c *gin.Context) {
	vendor, err := services.GetVendor(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendor": vendor})
}

// UpdateVendorProfile applies an allow-listed partial update
func UpdateVendorProfile(c *gin.Context) {
	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	vendor, err := services.UpdateVendor(middleware.GetUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "vendor": vendor})
}

// GetNotifications returns the caller's notification inbox, newest first
func GetNotifications(c *gin.Context) {
	notifications, err := services.GetInbox(middleware.GetEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(notifications), "notifications": notifications})
}

// MarkNotificationRead marks one of the caller's notifications as read
func MarkNotificationRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification id"})
		return
	}
	notification, err := services.MarkNotificationRead(middleware.GetEmail(c), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notification": notification})
}
