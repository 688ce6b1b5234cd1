package handler

import (
	"net/http"

	"petnutricare/internal/middleware"
	"petnutricare/internal/model"
	"petnutricare/internal/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the per-recipient notification queue. All
// routes require an authenticated session; the recipient defaults to the
// caller's email.
type NotificationHandler struct {
	service service.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(s service.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: s}
}

func authedUser(c *gin.Context) (*model.User, bool) {
	userVal, exists := c.Get(middleware.AuthUserKey)
	if !exists {
		return nil, false
	}
	user, ok := userVal.(*model.User)
	return user, ok
}

func (h *NotificationHandler) List(c *gin.Context) {
	user, ok := authedUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "No token provided"})
		return
	}

	items := h.service.ListForRecipient(user.Email)
	if items == nil {
		items = []model.Notification{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"notifications": items,
		},
	})
}

func (h *NotificationHandler) Create(c *gin.Context) {
	user, ok := authedUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "No token provided"})
		return
	}

	var req struct {
		RecipientKey string `json:"recipientKey"`
		Title        string `json:"title" binding:"required"`
		Message      string `json:"message" binding:"required"`
		Type         string `json:"type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Title and message are required"})
		return
	}

	recipient := req.RecipientKey
	if recipient == "" {
		recipient = user.Email
	}

	item := h.service.Add(recipient, req.Title, req.Message, req.Type)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"notification": item,
		},
	})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	user, ok := authedUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "No token provided"})
		return
	}

	if !h.service.MarkRead(user.Email, c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Notification not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	user, ok := authedUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "No token provided"})
		return
	}

	h.service.MarkAllRead(user.Email)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *NotificationHandler) Clear(c *gin.Context) {
	user, ok := authedUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "No token provided"})
		return
	}

	h.service.ClearForRecipient(user.Email)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RegisterNotificationRoutes registers notification routes behind the
// session middleware.
func (h *NotificationHandler) RegisterNotificationRoutes(rg *gin.RouterGroup, sessionMW gin.HandlerFunc) {
	group := rg.Group("/notifications", sessionMW)
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		// PATCH keeps the :id wildcard out of the POST tree, where it would
		// collide with the static read-all route.
		group.PATCH("/:id/read", h.MarkRead)
		group.POST("/read-all", h.MarkAllRead)
		group.DELETE("", h.Clear)
	}
}
