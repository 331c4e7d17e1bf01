package handlers

import (
	"strconv"

	"github.com/Gowtham121104/eventura-backend/internal/models"
	"github.com/Gowtham121104/eventura-backend/internal/repository"
	"github.com/gin-gonic/gin"
)

// GetNotifications lists the caller's notifications with the unread count
func GetNotifications(notifications repository.NotificationRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userId")

		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
		if limit < 1 || limit > 200 {
			limit = 50
		}
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
		if offset < 0 {
			offset = 0
		}
		notificationType := models.NotificationType(c.Query("type"))

		result, err := notifications.FindByUser(c.Request.Context(), userID, notificationType, limit, offset)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch notifications"})
			return
		}

		unread, err := notifications.CountUnread(c.Request.Context(), userID)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to count unread notifications"})
			return
		}

		c.JSON(200, gin.H{
			"notifications": result,
			"unreadCount":   unread,
			"totalCount":    len(result),
		})
	}
}

// MarkNotificationRead marks one of the caller's notifications as read
func MarkNotificationRead(notifications repository.NotificationRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userId")

		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid notification ID"})
			return
		}

		updated, err := notifications.MarkRead(c.Request.Context(), userID, uint(id))
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to mark notification as read"})
			return
		}
		if updated == 0 {
			c.JSON(404, gin.H{"error": "Notification not found"})
			return
		}

		c.JSON(200, gin.H{"message": "Notification marked as read"})
	}
}

// MarkAllNotificationsRead marks every unread notification of the caller
func MarkAllNotificationsRead(notifications repository.NotificationRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userId")

		updated, err := notifications.MarkAllRead(c.Request.Context(), userID)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to mark notifications as read"})
			return
		}

		c.JSON(200, gin.H{
			"message":      "All notifications marked as read",
			"updatedCount": updated,
		})
	}
}
