package controllers

import (
	"net/http"

	"github.com/nbparcs/GroupCICD-FitnessTracker-backend/config"
	"github.com/nbparcs/GroupCICD-FitnessTracker-backend/models"
	"github.com/nbparcs/GroupCICD-FitnessTracker-backend/services"
	"github.com/nbparcs/GroupCICD-FitnessTracker-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// AlertsWS upgrades to a websocket for live alerts. Browsers cannot set an
// Authorization header on the handshake, so the access token comes via the
// "token" query param instead.
func AlertsWS(hub *services.RealtimeHub) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.ParseToken(c.Query("token"), utils.TokenKindAccess)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		userID, ok := utils.ClaimUserID(claims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid claims"})
			return
		}
		var user models.User
		if err := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}

		client := &services.WSClient{UserID: user.ID, Conn: conn}
		hub.Register(client)
		defer hub.Unregister(client)

		// Reads only to detect close; the server never consumes input here.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}
}
