package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	initdata "github.com/telegram-mini-apps/init-data-golang"

	"raffle-admin-panel/internal/routes"
)

type credentials struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) login(c *gin.Context) {
	var in credentials
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "email and password are required")
		return
	}

	if err := h.users.Login(c.Request.Context(), in.Email, in.Password); err != nil {
		fail(c, err, "login failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": h.users.User()})
}

func (h *Handler) register(c *gin.Context) {
	var in credentials
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "email and password are required")
		return
	}

	if err := h.users.Register(c.Request.Context(), in.Email, in.Password); err != nil {
		fail(c, err, "registration failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": h.users.User()})
}

func (h *Handler) telegramLogin(c *gin.Context) {
	var in struct {
		InitData string `json:"initData" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "initData is required")
		return
	}

	// Pre-validated here only when the bot token is configured; the backend
	// validates again regardless.
	if h.cfg.Telegram.BotToken != "" {
		if err := initdata.Validate(in.InitData, h.cfg.Telegram.BotToken, time.Hour); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid Telegram init data"})
			return
		}
	}

	if err := h.users.TelegramLogin(c.Request.Context(), in.InitData); err != nil {
		fail(c, err, "Telegram login failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": h.users.User()})
}

func (h *Handler) checkAuth(c *gin.Context) {
	if err := h.users.CheckAuth(c.Request.Context()); err != nil {
		fail(c, err, "session check failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": h.users.User()})
}

func (h *Handler) logout(c *gin.Context) {
	h.users.Logout()
	c.Status(http.StatusNoContent)
}

// session reports the panel-wide flags alongside the user, the state the
// shell needs to decide what to render.
func (h *Handler) session(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"user":            h.users.User(),
		"isAuth":          h.users.IsAuth(),
		"loading":         h.users.Loading(),
		"tooManyRequests": h.users.TooManyRequests(),
	})
}

// navigation lists the pages visible to the current session: the public
// login page always, plus whatever the session's role unlocks.
func (h *Handler) navigation(c *gin.Context) {
	visible := append(routes.Public(), routes.ForUser(h.users.User())...)
	c.JSON(http.StatusOK, gin.H{"routes": visible})
}
