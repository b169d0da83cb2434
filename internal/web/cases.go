package web

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"raffle-admin-panel/internal/api"
	"raffle-admin-panel/internal/common/logger"
	"raffle-admin-panel/internal/models"
)

func (h *Handler) listCases(c *gin.Context) {
	cases, err := h.admin.FetchCases(c.Request.Context())
	if err != nil {
		fail(c, err, "failed to load cases")
		return
	}
	c.JSON(http.StatusOK, cases)
}

// caseDetail is the case plus its resolved Lottie documents, keyed by asset
// URL so the page plays animations without a second round of fetches.
type caseDetail struct {
	models.Case
	Animations map[string]json.RawMessage `json:"animations,omitempty"`
}

func (h *Handler) caseDetail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	box, err := h.admin.CaseByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "failed to load the case")
		return
	}

	detail := caseDetail{Case: *box}
	resolve := func(media *models.MediaFile) {
		if !media.IsAnimation() {
			return
		}
		data, err := h.media.Animation(c.Request.Context(), media.URL)
		if err != nil {
			// A broken asset degrades that one animation, not the page.
			logger.Warn().Err(err).Str("url", media.URL).Msg("failed to resolve animation")
			return
		}
		if detail.Animations == nil {
			detail.Animations = make(map[string]json.RawMessage)
		}
		detail.Animations[media.URL] = data
	}

	resolve(box.MediaFile)
	for i := range box.Items {
		resolve(box.Items[i].MediaFile)
	}

	c.JSON(http.StatusOK, detail)
}

func (h *Handler) caseStats(c *gin.Context) {
	stats, err := h.admin.FetchCaseStats(c.Request.Context())
	if err != nil {
		fail(c, err, "failed to load case statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) createCase(c *gin.Context) {
	form, err := uploadFromForm(c, "media", api.MaxUploadSize)
	if err != nil {
		fail(c, err, "invalid case form")
		return
	}

	created, err := h.admin.CreateCase(c.Request.Context(), form)
	if err != nil {
		fail(c, err, "failed to create case")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) updateCase(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	form, err := uploadFromForm(c, "media", api.MaxUploadSize)
	if err != nil {
		fail(c, err, "invalid case form")
		return
	}

	updated, err := h.admin.UpdateCase(c.Request.Context(), id, form)
	if err != nil {
		fail(c, err, "failed to update case")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) deleteCase(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.admin.DeleteCase(c.Request.Context(), id); err != nil {
		fail(c, err, "failed to delete case")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) addCaseItem(c *gin.Context) {
	caseID, ok := pathID(c, "id")
	if !ok {
		return
	}
	form, err := uploadFromForm(c, "media", api.MaxUploadSize)
	if err != nil {
		fail(c, err, "invalid case item form")
		return
	}
	probability, err := formFloat(c, "probability")
	if err != nil {
		fail(c, err, "invalid probability")
		return
	}

	item, err := h.admin.AddCaseItem(c.Request.Context(), caseID, probability, form)
	if err != nil {
		fail(c, err, "failed to add case item")
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handler) updateCaseItem(c *gin.Context) {
	caseID, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	form, err := uploadFromForm(c, "media", api.MaxUploadSize)
	if err != nil {
		fail(c, err, "invalid case item form")
		return
	}
	probability, err := formFloat(c, "probability")
	if err != nil {
		fail(c, err, "invalid probability")
		return
	}

	item, err := h.admin.UpdateCaseItem(c.Request.Context(), itemID, caseID, probability, form)
	if err != nil {
		fail(c, err, "failed to update case item")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) deleteCaseItem(c *gin.Context) {
	caseID, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	if err := h.admin.DeleteCaseItem(c.Request.Context(), itemID, caseID); err != nil {
		fail(c, err, "failed to delete case item")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) giveCase(c *gin.Context) {
	var in models.GiveCaseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid give-case payload")
		return
	}

	if err := h.admin.GiveCase(c.Request.Context(), in); err != nil {
		fail(c, err, "failed to give case")
		return
	}
	c.Status(http.StatusNoContent)
}
