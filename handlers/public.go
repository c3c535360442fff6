package handlers

import (
	"net/http"

	"saapaadu-api/services"
	"saapaadu-api/statemachine"

	"github.com/gin-gonic/gin"
)

// ListHotspots returns every listing with its vendor, no auth needed
func ListHotspots(c *gin.Context) {
	hotspots, err := services.FindAllHotspots()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(hotspots), "hotspots": hotspots})
}

// GetHotspot returns a single listing by id
func GetHotspot(c *gin.Context) {
	id, ok := hotspotID(c)
	if !ok {
		return
	}
	hotspot, err := services.FindHotspot(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotspot": hotspot})
}

// GetStateMachineInfo documents the order status transition graph
func GetStateMachineInfo(c *gin.Context) {
	transitions := statemachine.GetAllTransitions()
	out := make([]gin.H, 0, len(transitions))
	for _, t := range transitions {
		out = append(out, gin.H{
			"from":  t.From,
			"to":    t.To,
			"actor": t.Actor,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"description": "Valid order status transitions by actor. Admins may force any status.",
		"transitions": out,
	})
}
