package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raffle-admin-panel/internal/api"
	"raffle-admin-panel/internal/common/errors"
	"raffle-admin-panel/internal/models"
	"raffle-admin-panel/internal/platform/backend"
)

func newAdminStore(t *testing.T, handler http.Handler) *AdminStore {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	tokens := backend.NewTokenStore(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, tokens.Set("abc123"))
	return NewAdminStore(api.NewClient(server.URL, tokens))
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestFetchTasksLoadingLifecycle(t *testing.T) {
	release := make(chan struct{})
	store := newAdminStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		writeJSON(t, w, []models.Task{{ID: 1, Type: "subscribe", Reward: 5}})
	}))

	done := make(chan error, 1)
	go func() {
		_, err := store.FetchTasks(context.Background())
		done <- err
	}()

	require.Eventually(t, store.Loading, 2*time.Second, time.Millisecond,
		"loading must be raised while the fetch is in flight")

	close(release)
	require.NoError(t, <-done)
	assert.False(t, store.Loading(), "loading must drop once the fetch finished")
	assert.Len(t, store.Tasks(), 1)
}

func TestFetchTasksFailureDropsLoading(t *testing.T) {
	store := newAdminStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := store.FetchTasks(context.Background())

	require.Error(t, err)
	assert.False(t, store.Loading(), "loading must drop on the failure path too")
	assert.Empty(t, store.Tasks(), "a failed fetch must not clobber the collection")
}

func TestCreateTaskAppends(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/task/get", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []models.Task{{ID: 1, Type: "subscribe"}, {ID: 2, Type: "invite"}})
	})
	mux.HandleFunc("POST /api/task/create", func(w http.ResponseWriter, r *http.Request) {
		var in models.Task
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		in.ID = 3
		writeJSON(t, w, in)
	})
	store := newAdminStore(t, mux)

	_, err := store.FetchTasks(context.Background())
	require.NoError(t, err)

	created, err := store.CreateTask(context.Background(), models.Task{Type: "boost", Reward: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)

	tasks := store.Tasks()
	require.Len(t, tasks, 3)
	assert.Equal(t, int64(3), tasks[2].ID)
	assert.Equal(t, "boost", tasks[2].Type)
}

func TestUpdateTaskPatchesInPlace(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/task/get", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []models.Task{{ID: 1, Reward: 5}, {ID: 2, Reward: 7}})
	})
	mux.HandleFunc("PUT /api/task/update/2", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, models.Task{ID: 2, Reward: 50})
	})
	store := newAdminStore(t, mux)

	_, err := store.FetchTasks(context.Background())
	require.NoError(t, err)

	_, err = store.UpdateTask(context.Background(), 2, models.Task{Reward: 50})
	require.NoError(t, err)

	tasks := store.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, 5, tasks[0].Reward, "untouched rows stay as they were")
	assert.Equal(t, 50, tasks[1].Reward)
}

func seedCases(t *testing.T, mux *http.ServeMux) {
	t.Helper()
	mux.HandleFunc("GET /api/case", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []models.Case{{
			ID:   5,
			Name: "Golden Case",
			Items: []models.CaseItem{
				{ID: 1, CaseID: 5, Name: "TON", Probability: 90},
			},
		}})
	})
}

func itemForm() *api.Upload {
	return api.NewUpload().Field("name", "Rare drop")
}

func TestAddCaseItemRejectsOverfullProbability(t *testing.T) {
	var hits atomic.Int32
	mux := http.NewServeMux()
	seedCases(t, mux)
	mux.HandleFunc("POST /api/case/5/item", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeJSON(t, w, models.CaseItem{ID: 2})
	})
	store := newAdminStore(t, mux)

	_, err := store.FetchCases(context.Background())
	require.NoError(t, err)

	// 90 already used, 15 more would cross the 100% ceiling.
	_, err = store.AddCaseItem(context.Background(), 5, 15, itemForm())

	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Contains(t, err.Error(), "100%")
	assert.Contains(t, err.Error(), "90")
	assert.Equal(t, int32(0), hits.Load(), "the guard must block before the network")
}

func TestAddCaseItemWithinCeilingProceeds(t *testing.T) {
	mux := http.NewServeMux()
	seedCases(t, mux)
	mux.HandleFunc("POST /api/case/5/item", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, models.CaseItem{ID: 2, CaseID: 5, Name: "Rare drop", Probability: 5})
	})
	store := newAdminStore(t, mux)

	_, err := store.FetchCases(context.Background())
	require.NoError(t, err)

	item, err := store.AddCaseItem(context.Background(), 5, 5, itemForm())
	require.NoError(t, err)
	assert.Equal(t, int64(2), item.ID)

	cases := store.Cases()
	require.Len(t, cases, 1)
	assert.Len(t, cases[0].Items, 2)
}

func TestUpdateCaseItemExcludesItselfFromTheSum(t *testing.T) {
	mux := http.NewServeMux()
	seedCases(t, mux)
	mux.HandleFunc("PUT /api/case/item/1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, models.CaseItem{ID: 1, CaseID: 5, Probability: 100})
	})
	store := newAdminStore(t, mux)

	_, err := store.FetchCases(context.Background())
	require.NoError(t, err)

	// Raising the only item to 100 is fine: its old 90 leaves the sum.
	item, err := store.UpdateCaseItem(context.Background(), 1, 5, 100, itemForm())
	require.NoError(t, err)
	assert.Equal(t, float64(100), item.Probability)
	assert.Equal(t, float64(100), store.Cases()[0].Items[0].Probability)
}

func TestAddCaseItemRejectsOutOfRangeProbability(t *testing.T) {
	store := newAdminStore(t, http.NewServeMux())

	_, err := store.AddCaseItem(context.Background(), 5, -1, itemForm())
	assert.True(t, errors.IsValidation(err))

	_, err = store.AddCaseItem(context.Background(), 5, 101, itemForm())
	assert.True(t, errors.IsValidation(err))
}

func TestCompleteRaffleMovesCurrentToHistory(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/raffle/current", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, models.CurrentRaffle{Raffle: models.Raffle{ID: 12, Status: models.RaffleStatusActive}})
	})
	mux.HandleFunc("POST /api/raffle/complete", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, models.Raffle{ID: 12, Status: models.RaffleStatusCompleted})
	})
	store := newAdminStore(t, mux)

	_, err := store.FetchCurrentRaffle(context.Background())
	require.NoError(t, err)

	completed, err := store.CompleteRaffle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.RaffleStatusCompleted, completed.Status)

	assert.Nil(t, store.CurrentRaffle())
	history := store.RaffleHistory()
	require.Len(t, history, 1)
	assert.Equal(t, int64(12), history[0].ID)
}

func TestConfirmPrizeDeliveryRemovesRow(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/user-prize/requested", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []models.UserPrize{
			{ID: 1, Status: models.UserPrizeStatusRequested},
			{ID: 2, Status: models.UserPrizeStatusRequested},
		})
	})
	mux.HandleFunc("POST /api/user-prize/confirm/1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, models.UserPrize{ID: 1, Status: models.UserPrizeStatusConfirmed})
	})
	store := newAdminStore(t, mux)

	_, err := store.FetchRequestedPrizes(context.Background(), 20, 0)
	require.NoError(t, err)

	confirmed, err := store.ConfirmPrizeDelivery(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.UserPrizeStatusConfirmed, confirmed.Status)

	remaining := store.RequestedPrizes()
	require.Len(t, remaining, 1)
	assert.Equal(t, int64(2), remaining[0].ID)
}

func payoutListHandler(t *testing.T, rows []models.ReferralPayoutRequest) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, models.PayoutRequestPage{Rows: rows, Count: len(rows), CurrentPage: 1, TotalPages: 1})
	}
}

func TestProcessPayoutRequestSendsDecisionAndReplacesRow(t *testing.T) {
	var body map[string]string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/referral/admin/referral-payout-requests", payoutListHandler(t, []models.ReferralPayoutRequest{
		{ID: 7, Status: models.PayoutStatusPending},
		{ID: 8, Status: models.PayoutStatusPending},
	}))
	mux.HandleFunc("PUT /api/referral/admin/referral-payout-requests/7/process", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeJSON(t, w, models.ReferralPayoutRequest{ID: 7, Status: models.PayoutStatusApproved, AdminNotes: "ok"})
	})
	store := newAdminStore(t, mux)

	_, err := store.FetchPayoutRequests(context.Background(), models.PayoutFilter{})
	require.NoError(t, err)

	updated, err := store.ProcessPayoutRequest(context.Background(), 7, models.ProcessPayoutInput{
		NewStatus:  models.PayoutStatusApproved,
		AdminNotes: "ok",
	})
	require.NoError(t, err)
	assert.Equal(t, models.PayoutStatusApproved, updated.Status)

	assert.Equal(t, map[string]string{"newStatus": "approved", "adminNotes": "ok"}, body)

	rows := store.PayoutRequests()
	require.Len(t, rows, 2)
	assert.Equal(t, models.PayoutStatusApproved, rows[0].Status, "row 7 is replaced by the server's object")
	assert.Equal(t, "ok", rows[0].AdminNotes)
	assert.Equal(t, models.PayoutStatusPending, rows[1].Status, "row 8 is untouched")
}

func TestApproveBlocksOnInvalidWallet(t *testing.T) {
	var hits atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/referral/admin/referral-payout-requests", payoutListHandler(t, []models.ReferralPayoutRequest{
		{ID: 9, Status: models.PayoutStatusPending, WalletAddress: "definitely not a ton address"},
	}))
	mux.HandleFunc("PUT /api/referral/admin/referral-payout-requests/9/process", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeJSON(t, w, models.ReferralPayoutRequest{ID: 9, Status: models.PayoutStatusRejected})
	})
	store := newAdminStore(t, mux)

	_, err := store.FetchPayoutRequests(context.Background(), models.PayoutFilter{})
	require.NoError(t, err)

	_, err = store.ProcessPayoutRequest(context.Background(), 9, models.ProcessPayoutInput{NewStatus: models.PayoutStatusApproved})
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Contains(t, err.Error(), "TON")
	assert.Equal(t, int32(0), hits.Load())

	// Rejection needs no wallet, it always goes through.
	_, err = store.ProcessPayoutRequest(context.Background(), 9, models.ProcessPayoutInput{NewStatus: models.PayoutStatusRejected})
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

func TestFetchPayoutRequestsUsesItsOwnLoadingFlag(t *testing.T) {
	release := make(chan struct{})
	store := newAdminStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		writeJSON(t, w, models.PayoutRequestPage{})
	}))

	done := make(chan error, 1)
	go func() {
		_, err := store.FetchPayoutRequests(context.Background(), models.PayoutFilter{})
		done <- err
	}()

	require.Eventually(t, store.PayoutLoading, 2*time.Second, time.Millisecond)
	assert.False(t, store.Loading(), "the page-wide flag is not involved")

	close(release)
	require.NoError(t, <-done)
	assert.False(t, store.PayoutLoading())
}

func TestFetchPayoutRequestsForwardsFilter(t *testing.T) {
	var query map[string][]string
	store := newAdminStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		writeJSON(t, w, models.PayoutRequestPage{})
	}))

	_, err := store.FetchPayoutRequests(context.Background(), models.PayoutFilter{
		Status:    models.PayoutStatusPending,
		UserID:    33,
		Page:      2,
		Limit:     10,
		SortBy:    "createdAt",
		SortOrder: "DESC",
	})
	require.NoError(t, err)

	assert.Equal(t, "pending", query["status"][0])
	assert.Equal(t, "33", query["userId"][0])
	assert.Equal(t, "2", query["page"][0])
	assert.Equal(t, "10", query["limit"][0])
	assert.Equal(t, "createdAt", query["sortBy"][0])
	assert.Equal(t, "DESC", query["sortOrder"][0])
}

func TestSetRafflePrizePatchesCurrent(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/raffle/current", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, models.CurrentRaffle{Raffle: models.Raffle{ID: 12}})
	})
	mux.HandleFunc("POST /api/raffle/set-prize", func(w http.ResponseWriter, r *http.Request) {
		var in map[string]int64
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		writeJSON(t, w, map[string]any{"prize": models.RafflePrize{ID: in["prizeId"], Name: "MacBook"}})
	})
	store := newAdminStore(t, mux)

	_, err := store.FetchCurrentRaffle(context.Background())
	require.NoError(t, err)

	prize, err := store.SetRafflePrize(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "MacBook", prize.Name)

	current := store.CurrentRaffle()
	require.NotNil(t, current)
	require.NotNil(t, current.Raffle.RafflePrize)
	assert.Equal(t, int64(4), current.Raffle.RafflePrize.ID)
}

func TestDeleteCaseFiltersCollection(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/case", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []models.Case{{ID: 5}, {ID: 6}})
	})
	mux.HandleFunc("DELETE /api/case/5", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	store := newAdminStore(t, mux)

	_, err := store.FetchCases(context.Background())
	require.NoError(t, err)

	require.NoError(t, store.DeleteCase(context.Background(), 5))

	cases := store.Cases()
	require.Len(t, cases, 1)
	assert.Equal(t, int64(6), cases[0].ID)
}

func TestDailyRewardUpdateByDay(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/daily-reward/get", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []models.DailyReward{{ID: 1, Day: 1, Reward: 5}, {ID: 2, Day: 2, Reward: 10}})
	})
	mux.HandleFunc(fmt.Sprintf("PUT /api/daily-reward/update/day/%d", 2), func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, models.DailyReward{ID: 2, Day: 2, Reward: 25})
	})
	store := newAdminStore(t, mux)

	_, err := store.FetchDailyRewards(context.Background())
	require.NoError(t, err)

	_, err = store.UpdateDailyRewardByDay(context.Background(), 2, models.DailyReward{Day: 2, Reward: 25})
	require.NoError(t, err)

	rewards := store.DailyRewards()
	require.Len(t, rewards, 2)
	assert.Equal(t, 25, rewards[1].Reward)
}
