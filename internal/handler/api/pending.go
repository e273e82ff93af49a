package api

import (
	"errors"
	"net/http"

	reqdto "storefront/internal/handler/dto/request"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/middleware"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PendingActionHandler struct {
	pendingCommands commands.PendingCommands
	pendingQueries  queries.PendingQueries
}

func NewPendingActionHandler(pendingCommands commands.PendingCommands, pendingQueries queries.PendingQueries) *PendingActionHandler {
	return &PendingActionHandler{
		pendingCommands: pendingCommands,
		pendingQueries:  pendingQueries,
	}
}

// @Summary Save pending action
// @Description Store the single deferred intent to run after the next login; a newer intent overwrites the older one
// @Tags pending-action
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SavePendingActionRequest true "Intended action"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /pending-action [put]
func (h *PendingActionHandler) Save(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.SavePendingActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.pendingCommands.SaveIntendedAction(c.Request.Context(), userID, req.ToInput()); err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidAction):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid pending action",
			})
		default:
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Pending action storage is temporarily unavailable",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get pending action
// @Description Return the stored deferred intent, if any
// @Tags pending-action
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.PendingActionResponse
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Router /pending-action [get]
func (h *PendingActionHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.pendingQueries.GetPendingAction(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Pending action storage is temporarily unavailable",
		})
		return
	}
	if view == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPendingActionView(view))
}

// @Summary Clear pending action
// @Description Discard the stored deferred intent; clearing when none exists is a no-op
// @Tags pending-action
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Router /pending-action [delete]
func (h *PendingActionHandler) Clear(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if err := h.pendingCommands.ClearPendingAction(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Pending action storage is temporarily unavailable",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Replay pending action
// @Description Execute the stored deferred intent against the commerce backend, at most once; concurrent replays for the same user collapse into one attempt
// @Tags pending-action
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.ReplayResponse
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /pending-action/replay [post]
func (h *PendingActionHandler) Replay(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	token := middleware.GetAccessToken(c)

	result, err := h.pendingCommands.Replay(c.Request.Context(), userID, token)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Pending action storage is temporarily unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReplayResult(result))
}
