package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"raffle-admin-panel/internal/models"
)

func paths(rs []Route) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Path
	}
	return out
}

func TestAnonymousGetsNothing(t *testing.T) {
	assert.Nil(t, ForUser(nil))
}

func TestPublicIsTheLoginPage(t *testing.T) {
	assert.Equal(t, []string{MainPath}, paths(Public()))
}

func TestRegularUserGetsBasePagesOnly(t *testing.T) {
	user := &models.UserInfo{ID: 7, Role: models.RoleUser}

	got := paths(ForUser(user))

	assert.Equal(t, []string{NotFoundPath, AdminPath}, got)
}

func TestAdminGetsEveryPage(t *testing.T) {
	admin := &models.UserInfo{ID: 1, Role: models.RoleAdmin}

	got := paths(ForUser(admin))

	assert.Contains(t, got, AdminTasksPath)
	assert.Contains(t, got, AdminDailyRewardPath)
	assert.Contains(t, got, AdminAttemptsPackagePath)
	assert.Contains(t, got, AdminTicketsPackagePath)
	assert.Contains(t, got, AdminRafflePath)
	assert.Contains(t, got, AdminUsersPath)
	assert.Contains(t, got, AdminAllRafflesPath)
	assert.Contains(t, got, AdminRequestedPrizesPath)
	assert.Contains(t, got, AdminLeaderboardPath)
	assert.Contains(t, got, AdminCasesPath)
	assert.Len(t, got, 12, "two base pages plus the ten admin pages")
	assert.NotContains(t, got, AdminCasePath, "the detail page is reached by id, not the nav")
}

func TestForUserReturnsFreshSlices(t *testing.T) {
	admin := &models.UserInfo{ID: 1, Role: models.RoleAdmin}

	first := ForUser(admin)
	first[0].Name = "mutated"

	second := ForUser(admin)
	assert.Equal(t, "Not found", second[0].Name)
}
