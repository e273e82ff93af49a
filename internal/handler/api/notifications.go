package api

import (
	"net/http"

	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/middleware"
	"storefront/internal/infra/feed"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	feed *feed.Feed
}

func NewNotificationHandler(f *feed.Feed) *NotificationHandler {
	return &NotificationHandler{feed: f}
}

// @Summary Drain notifications
// @Description Return and consume the queued toast and navigation events for the current user
// @Tags notifications
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.NotificationListResponse
// @Failure 401 {object} map[string]string
// @Router /notifications [get]
func (h *NotificationHandler) Drain(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	events, err := h.feed.Drain(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Notifications are temporarily unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromFeedEvents(events))
}
