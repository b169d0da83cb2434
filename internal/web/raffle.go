package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"raffle-admin-panel/internal/models"
)

func (h *Handler) currentRaffle(c *gin.Context) {
	current, err := h.admin.FetchCurrentRaffle(c.Request.Context())
	if err != nil {
		fail(c, err, "failed to load the current raffle")
		return
	}
	c.JSON(http.StatusOK, current)
}

func (h *Handler) createRaffle(c *gin.Context) {
	var in models.Raffle
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid raffle payload")
		return
	}

	created, err := h.admin.CreateRaffle(c.Request.Context(), in)
	if err != nil {
		fail(c, err, "failed to create raffle")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) completeRaffle(c *gin.Context) {
	completed, err := h.admin.CompleteRaffle(c.Request.Context())
	if err != nil {
		fail(c, err, "failed to complete the raffle")
		return
	}
	c.JSON(http.StatusOK, completed)
}

func (h *Handler) setRafflePrize(c *gin.Context) {
	var in struct {
		PrizeID int64 `json:"prizeId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "prizeId is required")
		return
	}

	prize, err := h.admin.SetRafflePrize(c.Request.Context(), in.PrizeID)
	if err != nil {
		fail(c, err, "failed to set the raffle prize")
		return
	}
	c.JSON(http.StatusOK, prize)
}

func (h *Handler) updateRaffleSettings(c *gin.Context) {
	var in models.RaffleSettingsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid raffle settings payload")
		return
	}

	raffle, err := h.admin.UpdateRaffleSettings(c.Request.Context(), in)
	if err != nil {
		fail(c, err, "failed to update raffle settings")
		return
	}
	c.JSON(http.StatusOK, raffle)
}

func (h *Handler) raffleHistory(c *gin.Context) {
	limit := queryInt(c, "limit", 20)
	offset := queryInt(c, "offset", 0)

	raffles, err := h.admin.FetchRaffleHistory(c.Request.Context(), limit, offset)
	if err != nil {
		fail(c, err, "failed to load raffle history")
		return
	}
	c.JSON(http.StatusOK, raffles)
}

func (h *Handler) raffleByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	raffle, err := h.admin.RaffleByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "failed to load the raffle")
		return
	}
	c.JSON(http.StatusOK, raffle)
}
