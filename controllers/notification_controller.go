package controllers

import (
	"net/http"
	"strconv"

	"github.com/nbparcs/GroupCICD-FitnessTracker-backend/config"
	"github.com/nbparcs/GroupCICD-FitnessTracker-backend/services"

	"github.com/gin-gonic/gin"
)

func ListAlerts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	alerts, err := services.ListAlerts(config.DB, currentUserID(c), limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// RegisterDevice subscribes a device token for push notifications.
func RegisterDevice(push *services.PushService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if push == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "push notifications unavailable"})
			return
		}

		var req services.RegisterDeviceReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		dev, err := push.RegisterDevice(currentUserID(c), req.Platform, req.Token)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, dev)
	}
}
