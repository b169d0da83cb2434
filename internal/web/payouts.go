package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"raffle-admin-panel/internal/api"
	"raffle-admin-panel/internal/models"
)

func (h *Handler) listPayoutRequests(c *gin.Context) {
	filter := models.PayoutFilter{
		Status:    models.PayoutStatus(c.Query("status")),
		UserID:    int64(queryInt(c, "userId", 0)),
		Page:      queryInt(c, "page", 0),
		Limit:     queryInt(c, "limit", 0),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}

	page, err := h.admin.FetchPayoutRequests(c.Request.Context(), filter)
	if err != nil {
		fail(c, err, "failed to load payout requests")
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) processPayoutRequest(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in models.ProcessPayoutInput
	if err := c.ShouldBindJSON(&in); err != nil || in.NewStatus == "" {
		badRequest(c, "newStatus is required")
		return
	}

	updated, err := h.admin.ProcessPayoutRequest(c.Request.Context(), id, in)
	if err != nil {
		fail(c, err, "failed to process payout request")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) userByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.admin.UserByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "failed to load the user")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) searchUsers(c *gin.Context) {
	params := api.UserSearch{
		UserID:     c.Query("userId"),
		TelegramID: c.Query("telegramId"),
		Username:   c.Query("username"),
	}

	users, err := h.admin.SearchUsers(c.Request.Context(), params)
	if err != nil {
		fail(c, err, "failed to search users")
		return
	}
	c.JSON(http.StatusOK, users)
}
