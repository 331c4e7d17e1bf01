package handlers

import (
	"github.com/Gowtham121104/eventura-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// WebSocketHandler handles WebSocket connections
func WebSocketHandler(hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userId")
		role := c.GetString("role")

		services.HandleWebSocket(hub, c.Writer, c.Request, userID, role)
	}
}
