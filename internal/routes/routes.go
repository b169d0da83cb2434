// Package routes defines the navigable pages of the panel and which of them
// a given session may see. The shell renders its navigation from this table.
package routes

import "raffle-admin-panel/internal/models"

const (
	MainPath     = "/"
	NotFoundPath = "/not-found"

	AdminPath                = "/admin"
	AdminTasksPath           = "/admin/tasks"
	AdminDailyRewardPath     = "/admin/daily-reward"
	AdminAttemptsPackagePath = "/admin/attempts-package"
	AdminTicketsPackagePath  = "/admin/tickets-package"
	AdminRafflePath          = "/admin/raffle"
	AdminUsersPath           = "/admin/users"
	AdminAllRafflesPath      = "/admin/all-raffles"
	AdminRequestedPrizesPath = "/admin/requested-prizes"
	AdminLeaderboardPath     = "/admin/leaderboard"
	AdminCasesPath           = "/admin/cases"

	// Detail view of a single case; addressed by id, not listed in the nav.
	AdminCasePath = "/admin/case"
)

type Route struct {
	Path string
	Name string
}

var publicRoutes = []Route{
	{Path: MainPath, Name: "Login"},
}

var baseRoutes = []Route{
	{Path: NotFoundPath, Name: "Not found"},
	{Path: AdminPath, Name: "Admin"},
}

var adminRoutes = []Route{
	{Path: AdminTasksPath, Name: "Tasks"},
	{Path: AdminDailyRewardPath, Name: "Daily reward"},
	{Path: AdminAttemptsPackagePath, Name: "Attempts packages"},
	{Path: AdminTicketsPackagePath, Name: "Tickets packages"},
	{Path: AdminRafflePath, Name: "Raffle"},
	{Path: AdminUsersPath, Name: "Users"},
	{Path: AdminAllRafflesPath, Name: "All raffles"},
	{Path: AdminRequestedPrizesPath, Name: "Requested prizes"},
	{Path: AdminLeaderboardPath, Name: "Leaderboard"},
	{Path: AdminCasesPath, Name: "Cases"},
}

// Public returns the routes available without a session.
func Public() []Route {
	return append([]Route(nil), publicRoutes...)
}

// ForUser returns the authenticated route set for user: nothing without a
// session, the base pages for a signed-in non-admin, the full page set for
// an admin.
func ForUser(user *models.UserInfo) []Route {
	if user == nil {
		return nil
	}
	rs := append([]Route(nil), baseRoutes...)
	if user.IsAdmin() {
		rs = append(rs, adminRoutes...)
	}
	return rs
}
