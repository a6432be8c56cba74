package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/safecity/backend/internal/middleware"
	"github.com/safecity/backend/internal/stores"
)

type NotificationController struct {
	notifications *stores.NotificationStore
}

func NewNotificationController(notifications *stores.NotificationStore) *NotificationController {
	return &NotificationController{notifications: notifications}
}

// GetNotifications lists the authenticated user's notifications.
func (nc *NotificationController) GetNotifications(c *gin.Context) {
	notifications, err := nc.notifications.GetByUser(middleware.CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": notifications})
}

// GetUnreadCount returns how many notifications are still unread.
func (nc *NotificationController) GetUnreadCount(c *gin.Context) {
	count, err := nc.notifications.UnreadCount(middleware.CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to count notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"unread": count}})
}

// MarkRead flips the read flag of one notification.
func (nc *NotificationController) MarkRead(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	affected, err := nc.notifications.MarkRead(id, middleware.CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update notification"})
		return
	}
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Notification not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// MarkAllRead flips the read flag on every unread notification.
func (nc *NotificationController) MarkAllRead(c *gin.Context) {
	affected, err := nc.notifications.MarkAllRead(middleware.CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "affected": affected})
}

// DeleteNotification removes one of the user's notifications.
func (nc *NotificationController) DeleteNotification(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	affected, err := nc.notifications.Delete(id, middleware.CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete notification"})
		return
	}
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Notification not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
