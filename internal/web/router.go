// Package web is the HTTP face of the panel: a gin gateway exposing one JSON
// surface per dashboard page, gated by session role, plus a server-sent
// event stream that fires whenever a store changes.
package web

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"raffle-admin-panel/internal/common/config"
	"raffle-admin-panel/internal/store"
)

type Handler struct {
	cfg   *config.Config
	users *store.UserStore
	admin *store.AdminStore
	media *store.MediaCache
}

func NewHandler(cfg *config.Config, users *store.UserStore, admin *store.AdminStore, media *store.MediaCache) *Handler {
	return &Handler{cfg: cfg, users: users, admin: admin, media: media}
}

func (h *Handler) Router() *gin.Engine {
	if !h.cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(RequestID())
	r.Use(Logger())
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{h.cfg.Server.Origin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.Use(RateLimitGuard(h.users))

	auth := r.Group("/auth")
	{
		auth.POST("/login", h.login)
		auth.POST("/registration", h.register)
		auth.POST("/telegram", h.telegramLogin)
		auth.GET("/check", h.checkAuth)
		auth.POST("/logout", h.logout)
		auth.GET("/session", h.session)
		auth.GET("/routes", h.navigation)
	}

	admin := r.Group("/admin", RequireAuth(h.users), RequireAdmin(h.users))
	{
		admin.GET("/events", h.events)

		admin.GET("/daily-rewards", h.listDailyRewards)
		admin.POST("/daily-rewards", h.createDailyReward)
		admin.PUT("/daily-rewards/:day", h.updateDailyReward)

		admin.GET("/tasks", h.listTasks)
		admin.POST("/tasks", h.createTask)
		admin.PUT("/tasks/:id", h.updateTask)

		admin.GET("/attempts", h.listProducts)
		admin.POST("/attempts", h.createProduct)
		admin.PUT("/attempts/:id", h.updateProduct)

		admin.GET("/raffle", h.currentRaffle)
		admin.POST("/raffle", h.createRaffle)
		admin.POST("/raffle/complete", h.completeRaffle)
		admin.POST("/raffle/prize", h.setRafflePrize)
		admin.PUT("/raffle/settings", h.updateRaffleSettings)

		admin.GET("/raffle-history", h.raffleHistory)
		admin.GET("/raffle-history/:id", h.raffleByID)

		admin.GET("/prizes", h.listPrizes)
		admin.POST("/prizes", h.createPrize)
		admin.PUT("/prizes/:id", h.updatePrize)

		admin.GET("/packages", h.listPackages)
		admin.POST("/packages", h.createPackage)
		admin.PUT("/packages/:id", h.updatePackage)

		admin.GET("/requested-prizes", h.listRequestedPrizes)
		admin.POST("/requested-prizes/:id/confirm", h.confirmPrizeDelivery)

		admin.GET("/leaderboard", h.leaderboard)
		admin.GET("/leaderboard-settings", h.leaderboardSettings)
		admin.PUT("/leaderboard-settings", h.updateLeaderboardSettings)

		// "/cases/:id" forbids static siblings, hence the flat aliases for
		// stats and direct grants.
		admin.GET("/cases", h.listCases)
		admin.POST("/cases", h.createCase)
		admin.GET("/cases/:id", h.caseDetail)
		admin.PUT("/cases/:id", h.updateCase)
		admin.DELETE("/cases/:id", h.deleteCase)
		admin.POST("/cases/:id/items", h.addCaseItem)
		admin.PUT("/cases/:id/items/:itemId", h.updateCaseItem)
		admin.DELETE("/cases/:id/items/:itemId", h.deleteCaseItem)
		admin.GET("/case-stats", h.caseStats)
		admin.POST("/give-case", h.giveCase)

		admin.GET("/payout-requests", h.listPayoutRequests)
		admin.PUT("/payout-requests/:id", h.processPayoutRequest)

		admin.GET("/users", h.searchUsers)
		admin.GET("/users/:id", h.userByID)
	}

	return r
}
