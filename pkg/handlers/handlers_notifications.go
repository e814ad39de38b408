package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/curiouspeterson/schedule-app-router/pkg/database"
)

// ListNotifications returns the caller's most recent notifications
func (h *Handler) ListNotifications(c *gin.Context) {
	var notifications []database.Notification
	if err := h.DB.Where("recipient_id = ?", c.GetString("userID")).
		Order("created_at desc").Limit(50).Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// MarkNotificationRead marks one of the caller's notifications as read
func (h *Handler) MarkNotificationRead(c *gin.Context) {
	result := h.DB.Model(&database.Notification{}).
		Where("id = ? AND recipient_id = ?", c.Param("id"), c.GetString("userID")).
		Update("read", true)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update notification"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked read"})
}
