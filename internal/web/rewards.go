package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"raffle-admin-panel/internal/models"
)

// ---- daily rewards ----

func (h *Handler) listDailyRewards(c *gin.Context) {
	rewards, err := h.admin.FetchDailyRewards(c.Request.Context())
	if err != nil {
		fail(c, err, "failed to load daily rewards")
		return
	}
	c.JSON(http.StatusOK, rewards)
}

func (h *Handler) createDailyReward(c *gin.Context) {
	var in models.DailyReward
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid daily reward payload")
		return
	}

	created, err := h.admin.CreateDailyReward(c.Request.Context(), in)
	if err != nil {
		fail(c, err, "failed to create daily reward")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) updateDailyReward(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		badRequest(c, "invalid day")
		return
	}
	var in models.DailyReward
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid daily reward payload")
		return
	}

	updated, err := h.admin.UpdateDailyRewardByDay(c.Request.Context(), day, in)
	if err != nil {
		fail(c, err, "failed to update daily reward")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ---- tasks ----

func (h *Handler) listTasks(c *gin.Context) {
	tasks, err := h.admin.FetchTasks(c.Request.Context())
	if err != nil {
		fail(c, err, "failed to load tasks")
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *Handler) createTask(c *gin.Context) {
	var in models.Task
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid task payload")
		return
	}

	created, err := h.admin.CreateTask(c.Request.Context(), in)
	if err != nil {
		fail(c, err, "failed to create task")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) updateTask(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in models.Task
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid task payload")
		return
	}

	updated, err := h.admin.UpdateTask(c.Request.Context(), id, in)
	if err != nil {
		fail(c, err, "failed to update task")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ---- attempts packages ----

func (h *Handler) listProducts(c *gin.Context) {
	products, err := h.admin.FetchProducts(c.Request.Context())
	if err != nil {
		fail(c, err, "failed to load attempts packages")
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) createProduct(c *gin.Context) {
	var in models.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid attempts package payload")
		return
	}

	created, err := h.admin.CreateProduct(c.Request.Context(), in)
	if err != nil {
		fail(c, err, "failed to create attempts package")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) updateProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in models.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid attempts package payload")
		return
	}

	updated, err := h.admin.UpdateProduct(c.Request.Context(), id, in)
	if err != nil {
		fail(c, err, "failed to update attempts package")
		return
	}
	c.JSON(http.StatusOK, updated)
}
