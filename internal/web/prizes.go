package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"raffle-admin-panel/internal/api"
	"raffle-admin-panel/internal/models"
)

// ---- raffle prizes ----

func (h *Handler) listPrizes(c *gin.Context) {
	prizes, err := h.admin.FetchPrizes(c.Request.Context())
	if err != nil {
		fail(c, err, "failed to load prizes")
		return
	}
	c.JSON(http.StatusOK, prizes)
}

func (h *Handler) createPrize(c *gin.Context) {
	form, err := uploadFromForm(c, "media", api.MaxImageSize)
	if err != nil {
		fail(c, err, "invalid prize form")
		return
	}

	created, err := h.admin.CreatePrize(c.Request.Context(), form)
	if err != nil {
		fail(c, err, "failed to create prize")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) updatePrize(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	form, err := uploadFromForm(c, "media", api.MaxImageSize)
	if err != nil {
		fail(c, err, "invalid prize form")
		return
	}

	updated, err := h.admin.UpdatePrize(c.Request.Context(), id, form)
	if err != nil {
		fail(c, err, "failed to update prize")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ---- ticket packages ----

func (h *Handler) listPackages(c *gin.Context) {
	packages, err := h.admin.FetchPackages(c.Request.Context())
	if err != nil {
		fail(c, err, "failed to load ticket packages")
		return
	}
	c.JSON(http.StatusOK, packages)
}

func (h *Handler) createPackage(c *gin.Context) {
	var in models.TicketPackageInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid ticket package payload")
		return
	}

	created, err := h.admin.CreatePackage(c.Request.Context(), in)
	if err != nil {
		fail(c, err, "failed to create ticket package")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) updatePackage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in models.TicketPackageInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid ticket package payload")
		return
	}

	updated, err := h.admin.UpdatePackage(c.Request.Context(), id, in)
	if err != nil {
		fail(c, err, "failed to update ticket package")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ---- requested prizes ----

func (h *Handler) listRequestedPrizes(c *gin.Context) {
	limit := queryInt(c, "limit", 20)
	offset := queryInt(c, "offset", 0)

	prizes, err := h.admin.FetchRequestedPrizes(c.Request.Context(), limit, offset)
	if err != nil {
		fail(c, err, "failed to load requested prizes")
		return
	}
	c.JSON(http.StatusOK, prizes)
}

func (h *Handler) confirmPrizeDelivery(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	confirmed, err := h.admin.ConfirmPrizeDelivery(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "failed to confirm prize delivery")
		return
	}
	c.JSON(http.StatusOK, confirmed)
}
