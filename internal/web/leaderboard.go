package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"raffle-admin-panel/internal/models"
)

func (h *Handler) leaderboard(c *gin.Context) {
	entries, err := h.admin.FetchLeaderboard(c.Request.Context())
	if err != nil {
		fail(c, err, "failed to load the leaderboard")
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *Handler) leaderboardSettings(c *gin.Context) {
	settings, err := h.admin.FetchLeaderboardSettings(c.Request.Context())
	if err != nil {
		fail(c, err, "failed to load leaderboard settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *Handler) updateLeaderboardSettings(c *gin.Context) {
	var in models.LeaderboardSettings
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid leaderboard settings payload")
		return
	}

	updated, err := h.admin.UpdateLeaderboardSettings(c.Request.Context(), in)
	if err != nil {
		fail(c, err, "failed to update leaderboard settings")
		return
	}
	c.JSON(http.StatusOK, updated)
}
