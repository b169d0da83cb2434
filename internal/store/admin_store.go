package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/xssnick/tonutils-go/address"

	"raffle-admin-panel/internal/api"
	"raffle-admin-panel/internal/common/errors"
	"raffle-admin-panel/internal/models"
)

// AdminStore holds the authoritative-for-the-UI copy of every collection the
// dashboard displays. Fetches replace a collection wholesale under the
// loading flag; mutations follow the per-resource strategy of the dashboard:
// creates append, updates patch by id, confirmations and deletes filter.
//
// No method guards against overlapping calls: firing the same fetch twice
// produces two independent writes in arrival order, last response wins. The
// UI triggers one fetch per operator action, so this is acceptable.
type AdminStore struct {
	api *api.Client

	mu                  sync.RWMutex
	loading             bool
	dailyRewards        []models.DailyReward
	tasks               []models.Task
	products            []models.Product
	currentRaffle       *models.CurrentRaffle
	raffleHistory       []models.Raffle
	prizes              []models.RafflePrize
	packages            []models.RaffleTicketPackage
	requestedPrizes     []models.UserPrize
	cases               []models.Case
	caseStats           *models.CaseStats
	leaderboard         []models.LeaderboardEntry
	leaderboardSettings *models.LeaderboardSettings

	payoutRequests    []models.ReferralPayoutRequest
	payoutCount       int
	payoutCurrentPage int
	payoutTotalPages  int
	payoutLoading     bool

	changed Signal
}

func NewAdminStore(client *api.Client) *AdminStore {
	return &AdminStore{api: client}
}

func (s *AdminStore) Changed() *Signal { return &s.changed }

// ---- accessors ----

func (s *AdminStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *AdminStore) DailyRewards() []models.DailyReward {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.DailyReward(nil), s.dailyRewards...)
}

func (s *AdminStore) Tasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Task(nil), s.tasks...)
}

func (s *AdminStore) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Product(nil), s.products...)
}

func (s *AdminStore) CurrentRaffle() *models.CurrentRaffle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentRaffle
}

func (s *AdminStore) RaffleHistory() []models.Raffle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Raffle(nil), s.raffleHistory...)
}

func (s *AdminStore) Prizes() []models.RafflePrize {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.RafflePrize(nil), s.prizes...)
}

func (s *AdminStore) Packages() []models.RaffleTicketPackage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.RaffleTicketPackage(nil), s.packages...)
}

func (s *AdminStore) RequestedPrizes() []models.UserPrize {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.UserPrize(nil), s.requestedPrizes...)
}

func (s *AdminStore) Cases() []models.Case {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Case(nil), s.cases...)
}

func (s *AdminStore) CaseStats() *models.CaseStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.caseStats
}

func (s *AdminStore) Leaderboard() []models.LeaderboardEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.LeaderboardEntry(nil), s.leaderboard...)
}

func (s *AdminStore) LeaderboardSettings() *models.LeaderboardSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.leaderboardSettings
}

func (s *AdminStore) PayoutRequests() []models.ReferralPayoutRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ReferralPayoutRequest(nil), s.payoutRequests...)
}

func (s *AdminStore) PayoutLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.payoutLoading
}

// PayoutPagination returns count, current page and total pages of the last
// fetched payout listing.
func (s *AdminStore) PayoutPagination() (count, currentPage, totalPages int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.payoutCount, s.payoutCurrentPage, s.payoutTotalPages
}

func (s *AdminStore) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
	s.changed.Emit()
}

func (s *AdminStore) write(fn func()) {
	s.mu.Lock()
	fn()
	s.mu.Unlock()
	s.changed.Emit()
}

// ---- daily rewards ----

func (s *AdminStore) FetchDailyRewards(ctx context.Context) ([]models.DailyReward, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	rewards, err := s.api.DailyRewards.List(ctx)
	if err != nil {
		return nil, err
	}
	s.write(func() { s.dailyRewards = rewards })
	return rewards, nil
}

func (s *AdminStore) CreateDailyReward(ctx context.Context, reward models.DailyReward) (*models.DailyReward, error) {
	created, err := s.api.DailyRewards.Create(ctx, reward)
	if err != nil {
		return nil, err
	}
	s.write(func() { s.dailyRewards = append(s.dailyRewards, *created) })
	return created, nil
}

func (s *AdminStore) UpdateDailyRewardByDay(ctx context.Context, day int, reward models.DailyReward) (*models.DailyReward, error) {
	updated, err := s.api.DailyRewards.UpdateByDay(ctx, day, reward)
	if err != nil {
		return nil, err
	}
	s.write(func() {
		for i := range s.dailyRewards {
			if s.dailyRewards[i].Day == day {
				s.dailyRewards[i] = *updated
			}
		}
	})
	return updated, nil
}

// ---- tasks ----

func (s *AdminStore) FetchTasks(ctx context.Context) ([]models.Task, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	tasks, err := s.api.Tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	s.write(func() { s.tasks = tasks })
	return tasks, nil
}

func (s *AdminStore) CreateTask(ctx context.Context, task models.Task) (*models.Task, error) {
	created, err := s.api.Tasks.Create(ctx, task)
	if err != nil {
		return nil, err
	}
	s.write(func() { s.tasks = append(s.tasks, *created) })
	return created, nil
}

func (s *AdminStore) UpdateTask(ctx context.Context, id int64, task models.Task) (*models.Task, error) {
	updated, err := s.api.Tasks.Update(ctx, id, task)
	if err != nil {
		return nil, err
	}
	s.write(func() {
		for i := range s.tasks {
			if s.tasks[i].ID == id {
				s.tasks[i] = *updated
			}
		}
	})
	return updated, nil
}

// ---- products (attempts packages) ----

func (s *AdminStore) FetchProducts(ctx context.Context) ([]models.Product, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	products, err := s.api.Products.List(ctx)
	if err != nil {
		return nil, err
	}
	s.write(func() { s.products = products })
	return products, nil
}

func (s *AdminStore) CreateProduct(ctx context.Context, in models.ProductInput) (*models.Product, error) {
	created, err := s.api.Products.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.write(func() { s.products = append(s.products, *created) })
	return created, nil
}

func (s *AdminStore) UpdateProduct(ctx context.Context, id int64, in models.ProductInput) (*models.Product, error) {
	updated, err := s.api.Products.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	s.write(func() {
		for i := range s.products {
			if s.products[i].ID == id {
				s.products[i] = *updated
			}
		}
	})
	return updated, nil
}

// ---- raffle ----

func (s *AdminStore) FetchCurrentRaffle(ctx context.Context) (*models.CurrentRaffle, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	current, err := s.api.Raffles.Current(ctx)
	if err != nil {
		return nil, err
	}
	s.write(func() { s.currentRaffle = current })
	return current, nil
}

func (s *AdminStore) CreateRaffle(ctx context.Context, raffle models.Raffle) (*models.CurrentRaffle, error) {
	created, err := s.api.Raffles.Create(ctx, raffle)
	if err != nil {
		return nil, err
	}
	s.write(func() { s.currentRaffle = created })
	return created, nil
}

// CompleteRaffle closes the current raffle. The just-completed snapshot is
// appended to the local history and the current raffle cleared, without a
// re-fetch.
func (s *AdminStore) CompleteRaffle(ctx context.Context) (*models.Raffle, error) {
	completed, err := s.api.Raffles.Complete(ctx)
	if err != nil {
		return nil, err
	}
	s.write(func() {
		if s.currentRaffle != nil {
			s.raffleHistory = append(s.raffleHistory, s.currentRaffle.Raffle)
		}
		s.currentRaffle = nil
	})
	return completed, nil
}

func (s *AdminStore) SetRafflePrize(ctx context.Context, prizeID int64) (*models.RafflePrize, error) {
	prize, err := s.api.Raffles.SetPrize(ctx, prizeID)
	if err != nil {
		return nil, err
	}
	s.write(func() {
		if s.currentRaffle != nil {
			s.currentRaffle.Raffle.RafflePrize = prize
		}
	})
	return prize, nil
}

func (s *AdminStore) UpdateRaffleSettings(ctx context.Context, in models.RaffleSettingsInput) (*models.Raffle, error) {
	raffle, err := s.api.Raffles.UpdateSettings(ctx, in)
	if err != nil {
		return nil, err
	}
	s.write(func() {
		if s.currentRaffle != nil && raffle != nil {
			s.currentRaffle.Raffle.TicketThreshold = raffle.TicketThreshold
			s.currentRaffle.Raffle.RaffleDuration = raffle.RaffleDuration
		}
	})
	return raffle, nil
}

func (s *AdminStore) RaffleByID(ctx context.Context, id int64) (*models.Raffle, error) {
	return s.api.Raffles.ByID(ctx, id)
}

func (s *AdminStore) FetchRaffleHistory(ctx context.Context, limit, offset int) ([]models.Raffle, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	raffles, err := s.api.Raffles.History(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	s.write(func() { s.raffleHistory = raffles })
	return raffles, nil
}

// ---- raffle prizes ----

func (s *AdminStore) FetchPrizes(ctx context.Context) ([]models.RafflePrize, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	prizes, err := s.api.Prizes.List(ctx)
	if err != nil {
		return nil, err
	}
	s.write(func() { s.prizes = prizes })
	return prizes, nil
}

func (s *AdminStore) CreatePrize(ctx context.Context, form *api.Upload) (*models.RafflePrize, error) {
	created, err := s.api.Prizes.Create(ctx, form)
	if err != nil {
		return nil, err
	}
	s.write(func() { s.prizes = append(s.prizes, *created) })
	return created, nil
}

func (s *AdminStore) UpdatePrize(ctx context.Context, id int64, form *api.Upload) (*models.RafflePrize, error) {
	updated, err := s.api.Prizes.Update(ctx, id, form)
	if err != nil {
		return nil, err
	}
	s.write(func() {
		for i := range s.prizes {
			if s.prizes[i].ID == id {
				s.prizes[i] = *updated
			}
		}
	})
	return updated, nil
}

// ---- ticket packages ----

func (s *AdminStore) FetchPackages(ctx context.Context) ([]models.RaffleTicketPackage, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	packages, err := s.api.Packages.List(ctx)
	if err != nil {
		return nil, err
	}
	s.write(func() { s.packages = packages })
	return packages, nil
}

func (s *AdminStore) CreatePackage(ctx context.Context, in models.TicketPackageInput) (*models.RaffleTicketPackage, error) {
	created, err := s.api.Packages.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.write(func() { s.packages = append(s.packages, *created) })
	return created, nil
}

func (s *AdminStore) UpdatePackage(ctx context.Context, id int64, in models.TicketPackageInput) (*models.RaffleTicketPackage, error) {
	updated, err := s.api.Packages.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	s.write(func() {
		for i := range s.packages {
			if s.packages[i].ID == id {
				s.packages[i] = *updated
			}
		}
	})
	return updated, nil
}

// ---- users ----

func (s *AdminStore) UserByID(ctx context.Context, id int64) (*models.UserInfo, error) {
	return s.api.Users.ByID(ctx, id)
}

func (s *AdminStore) SearchUsers(ctx context.Context, params api.UserSearch) ([]models.UserInfo, error) {
	return s.api.Users.Search(ctx, params)
}

// ---- requested prizes ----

func (s *AdminStore) FetchRequestedPrizes(ctx context.Context, limit, offset int) ([]models.UserPrize, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	prizes, err := s.api.UserPrizes.Requested(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	s.write(func() { s.requestedPrizes = prizes })
	return prizes, nil
}

// ConfirmPrizeDelivery confirms delivery and removes the entry from the
// requested list.
func (s *AdminStore) ConfirmPrizeDelivery(ctx context.Context, prizeID int64) (*models.UserPrize, error) {
	confirmed, err := s.api.UserPrizes.Confirm(ctx, prizeID)
	if err != nil {
		return nil, err
	}
	s.write(func() {
		kept := s.requestedPrizes[:0]
		for _, prize := range s.requestedPrizes {
			if prize.ID != prizeID {
				kept = append(kept, prize)
			}
		}
		s.requestedPrizes = kept
	})
	return confirmed, nil
}

// ---- leaderboard ----

func (s *AdminStore) FetchLeaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	entries, err := s.api.Leaderboard.Top(ctx)
	if err != nil {
		return nil, err
	}
	s.write(func() { s.leaderboard = entries })
	return entries, nil
}

func (s *AdminStore) FetchLeaderboardSettings(ctx context.Context) (*models.LeaderboardSettings, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	settings, err := s.api.Leaderboard.Settings(ctx)
	if err != nil {
		return nil, err
	}
	s.write(func() { s.leaderboardSettings = settings })
	return settings, nil
}

// UpdateLeaderboardSettings replaces the active configuration wholesale.
func (s *AdminStore) UpdateLeaderboardSettings(ctx context.Context, in models.LeaderboardSettings) (*models.LeaderboardSettings, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	updated, err := s.api.Leaderboard.UpdateSettings(ctx, in)
	if err != nil {
		return nil, err
	}
	s.write(func() { s.leaderboardSettings = updated })
	return updated, nil
}

// ---- cases ----

func (s *AdminStore) FetchCases(ctx context.Context) ([]models.Case, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	cases, err := s.api.Cases.List(ctx)
	if err != nil {
		return nil, err
	}
	s.write(func() { s.cases = cases })
	return cases, nil
}

func (s *AdminStore) CaseByID(ctx context.Context, id int64) (*models.Case, error) {
	return s.api.Cases.ByID(ctx, id)
}

func (s *AdminStore) FetchCaseStats(ctx context.Context) (*models.CaseStats, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	stats, err := s.api.Cases.Stats(ctx)
	if err != nil {
		return nil, err
	}
	s.write(func() { s.caseStats = stats })
	return stats, nil
}

func (s *AdminStore) CreateCase(ctx context.Context, form *api.Upload) (*models.Case, error) {
	created, err := s.api.Cases.Create(ctx, form)
	if err != nil {
		return nil, err
	}
	s.write(func() { s.cases = append(s.cases, *created) })
	return created, nil
}

func (s *AdminStore) UpdateCase(ctx context.Context, id int64, form *api.Upload) (*models.Case, error) {
	updated, err := s.api.Cases.Update(ctx, id, form)
	if err != nil {
		return nil, err
	}
	s.write(func() {
		for i := range s.cases {
			if s.cases[i].ID == id {
				s.cases[i] = *updated
			}
		}
	})
	return updated, nil
}

func (s *AdminStore) DeleteCase(ctx context.Context, id int64) error {
	if err := s.api.Cases.Delete(ctx, id); err != nil {
		return err
	}
	s.write(func() {
		kept := s.cases[:0]
		for _, c := range s.cases {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		s.cases = kept
	})
	return nil
}

// checkProbability is the client-side guard on case items: the probability
// must lie in [0,100] and, together with the other items of the case, must
// not push the total past 100%. excludeItemID skips the item being edited.
// Advisory only, the backend re-validates.
func (s *AdminStore) checkProbability(caseID, excludeItemID int64, probability float64) error {
	if probability < 0 || probability > 100 {
		return errors.Validation("probability must be between 0 and 100")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, c := range s.cases {
		if c.ID != caseID {
			continue
		}
		for _, item := range c.Items {
			if item.ID != excludeItemID {
				total += item.Probability
			}
		}
	}

	if total+probability > 100 {
		return errors.Validation(fmt.Sprintf(
			"total probability cannot exceed 100%%: other items in this case already use %g%%", total))
	}
	return nil
}

// AddCaseItem adds an item to a case after the probability guard passes.
// The form carries the item fields including the probability.
func (s *AdminStore) AddCaseItem(ctx context.Context, caseID int64, probability float64, form *api.Upload) (*models.CaseItem, error) {
	if err := s.checkProbability(caseID, 0, probability); err != nil {
		return nil, err
	}

	item, err := s.api.Cases.AddItem(ctx, caseID, form)
	if err != nil {
		return nil, err
	}
	s.write(func() {
		for i := range s.cases {
			if s.cases[i].ID == caseID {
				s.cases[i].Items = append(s.cases[i].Items, *item)
			}
		}
	})
	return item, nil
}

func (s *AdminStore) UpdateCaseItem(ctx context.Context, itemID, caseID int64, probability float64, form *api.Upload) (*models.CaseItem, error) {
	if err := s.checkProbability(caseID, itemID, probability); err != nil {
		return nil, err
	}

	item, err := s.api.Cases.UpdateItem(ctx, itemID, form)
	if err != nil {
		return nil, err
	}
	s.write(func() {
		for i := range s.cases {
			if s.cases[i].ID != caseID {
				continue
			}
			for j := range s.cases[i].Items {
				if s.cases[i].Items[j].ID == itemID {
					s.cases[i].Items[j] = *item
				}
			}
		}
	})
	return item, nil
}

func (s *AdminStore) DeleteCaseItem(ctx context.Context, itemID, caseID int64) error {
	if err := s.api.Cases.DeleteItem(ctx, itemID); err != nil {
		return err
	}
	s.write(func() {
		for i := range s.cases {
			if s.cases[i].ID != caseID {
				continue
			}
			kept := s.cases[i].Items[:0]
			for _, item := range s.cases[i].Items {
				if item.ID != itemID {
					kept = append(kept, item)
				}
			}
			s.cases[i].Items = kept
		}
	})
	return nil
}

func (s *AdminStore) GiveCase(ctx context.Context, in models.GiveCaseInput) error {
	return s.api.Cases.Give(ctx, in)
}

// ---- referral payouts ----

func (s *AdminStore) setPayoutLoading(loading bool) {
	s.mu.Lock()
	s.payoutLoading = loading
	s.mu.Unlock()
	s.changed.Emit()
}

func (s *AdminStore) FetchPayoutRequests(ctx context.Context, filter models.PayoutFilter) (*models.PayoutRequestPage, error) {
	s.setPayoutLoading(true)
	defer s.setPayoutLoading(false)

	page, err := s.api.Referrals.PayoutRequests(ctx, filter)
	if err != nil {
		return nil, err
	}
	s.write(func() {
		s.payoutRequests = page.Rows
		s.payoutCount = page.Count
		s.payoutCurrentPage = page.CurrentPage
		s.payoutTotalPages = page.TotalPages
	})
	return page, nil
}

func (s *AdminStore) payoutByID(id int64) *models.ReferralPayoutRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.payoutRequests {
		if s.payoutRequests[i].ID == id {
			req := s.payoutRequests[i]
			return &req
		}
	}
	return nil
}

// ProcessPayoutRequest records the admin decision and replaces the local row
// with the server's returned object. Approvals against a wallet that is not
// a syntactically valid TON address are blocked before the call; the payout
// ledger re-checks server-side.
func (s *AdminStore) ProcessPayoutRequest(ctx context.Context, id int64, in models.ProcessPayoutInput) (*models.ReferralPayoutRequest, error) {
	if in.NewStatus == models.PayoutStatusApproved {
		if req := s.payoutByID(id); req != nil && req.WalletAddress != "" {
			if _, err := address.ParseAddr(req.WalletAddress); err != nil {
				return nil, errors.Validation("payout wallet is not a valid TON address")
			}
		}
	}

	updated, err := s.api.Referrals.ProcessPayoutRequest(ctx, id, in)
	if err != nil {
		return nil, err
	}
	s.write(func() {
		for i := range s.payoutRequests {
			if s.payoutRequests[i].ID == id {
				s.payoutRequests[i] = *updated
			}
		}
	})
	return updated, nil
}
