package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"dkp-auctioneer/internal/auctionerrors"
	model "dkp-auctioneer/internal/models"
	"dkp-auctioneer/utils"
)

// BalanceFunc reports a user's total ledger balance. The registry calls it
// while holding its lock so the balance check and the bid mutation form a
// single read-modify-write cycle.
type BalanceFunc func(userID string) int

// Rules carries the configured bid-validation constants
type Rules struct {
	MinIncrement   int
	BidCooldown    time.Duration
	SnipeThreshold time.Duration
	SnipeExtension time.Duration
}

// PlaceBidResult reports what a successful bid changed
type PlaceBidResult struct {
	Bid          model.Bid
	EndTime      time.Time
	Extended     bool
	OutbidUserID string
	OutbidAmount int
}

// RemoveBidResult reports the removed bid and the recomputed leader
type RemoveBidResult struct {
	Removed       model.Bid
	HighestBid    int
	HighestBidder string
}

// Registry is the in-memory table of currently open auctions and the sole
// source of truth for bid state while an auction is live. One lock guards
// the full read-modify-write cycle of every mutating call.
type Registry struct {
	mu       sync.RWMutex
	auctions map[int]*model.Auction
	names    map[string]int
	lastBids map[int]map[string]time.Time
	rules    Rules
	nowFn    func() time.Time
}

// New creates an empty registry. A nil clock defaults to time.Now.
func New(rules Rules, now func() time.Time) *Registry {
	if now == nil {
		now = time.Now
	}
	return &Registry{
		auctions: make(map[int]*model.Auction),
		names:    make(map[string]int),
		lastBids: make(map[int]map[string]time.Time),
		rules:    rules,
		nowFn:    now,
	}
}

// NameInUse reports whether an open auction already carries the name
func (r *Registry) NameInUse(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.names[name]
	return ok
}

// Insert makes a newly created auction visible to bidders
func (r *Registry) Insert(auction *model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.names[auction.Name]; ok {
		return fmt.Errorf("registry: auction %q: %w", auction.Name, auctionerrors.ErrDuplicateAuctionName)
	}
	if _, ok := r.auctions[auction.ID]; ok {
		// Duplicate ids mean the monotonic counter broke; refuse rather
		// than silently overwrite a live auction.
		return fmt.Errorf("registry: duplicate auction id %d", auction.ID)
	}

	r.auctions[auction.ID] = auction
	r.names[auction.Name] = auction.ID
	r.lastBids[auction.ID] = make(map[string]time.Time)
	return nil
}

// PlaceBid validates and applies a bid against an open auction. A user's
// new bid replaces their previous one in the same auction, so the previous
// amount is excluded before the available-balance check.
func (r *Registry) PlaceBid(auctionID int, user model.User, amount int, balanceOf BalanceFunc) (PlaceBidResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return PlaceBidResult{}, fmt.Errorf("registry: place bid on auction %d: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}

	now := r.nowFn()
	if now.After(auction.EndTime) {
		return PlaceBidResult{}, fmt.Errorf("registry: auction %d: %w", auctionID, auctionerrors.ErrAuctionExpired)
	}

	if amount <= auction.HighestBid+r.rules.MinIncrement {
		return PlaceBidResult{}, fmt.Errorf("registry: %w - bid must exceed %d",
			auctionerrors.ErrBidTooLow, auction.HighestBid+r.rules.MinIncrement)
	}

	available := balanceOf(user.UserID) - r.lockedAmount(user.UserID, auctionID)
	if amount > available {
		return PlaceBidResult{}, fmt.Errorf("registry: auction %d: %w",
			auctionID, &auctionerrors.InsufficientFundsError{Available: available})
	}

	if last, ok := r.lastBids[auctionID][user.UserID]; ok {
		if since := now.Sub(last); since < r.rules.BidCooldown {
			return PlaceBidResult{}, fmt.Errorf("registry: auction %d: %w",
				auctionID, &auctionerrors.CooldownError{RetryAfter: r.rules.BidCooldown - since})
		}
	}

	previousLeader := auction.HighestBidder
	previousHighest := auction.HighestBid

	r.dropBid(auction, user.UserID)
	bid := model.Bid{
		BidID:       utils.GenerateID(),
		UserID:      user.UserID,
		DisplayName: user.DisplayName,
		Amount:      amount,
		PlacedAt:    now,
	}
	auction.Bids = append(auction.Bids, bid)
	// The increment check guarantees the new bid leads.
	auction.HighestBid = amount
	auction.HighestBidder = user.UserID
	r.lastBids[auctionID][user.UserID] = now

	result := PlaceBidResult{Bid: bid, EndTime: auction.EndTime}
	if auction.EndTime.Sub(now) < r.rules.SnipeThreshold {
		if extended := now.Add(r.rules.SnipeExtension); extended.After(auction.EndTime) {
			auction.EndTime = extended
			result.EndTime = extended
			result.Extended = true
		}
	}
	if previousLeader != "" && previousLeader != user.UserID {
		result.OutbidUserID = previousLeader
		result.OutbidAmount = previousHighest
	}
	return result, nil
}

// RemoveBid drops the target user's live bid and recomputes the leader
func (r *Registry) RemoveBid(auctionID int, targetUserID string) (RemoveBidResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return RemoveBidResult{}, fmt.Errorf("registry: remove bid on auction %d: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}

	removed, ok := r.dropBid(auction, targetUserID)
	if !ok {
		return RemoveBidResult{}, fmt.Errorf("registry: user %s on auction %d: %w",
			targetUserID, auctionID, auctionerrors.ErrBidNotFound)
	}

	auction.HighestBid = 0
	auction.HighestBidder = ""
	for _, bid := range auction.Bids {
		if bid.Amount > auction.HighestBid {
			auction.HighestBid = bid.Amount
			auction.HighestBidder = bid.UserID
		}
	}

	return RemoveBidResult{
		Removed:       removed,
		HighestBid:    auction.HighestBid,
		HighestBidder: auction.HighestBidder,
	}, nil
}

// CloseAndEvict atomically marks the auction closed, snapshots it, and
// removes it from the registry. No PlaceBid can observe a half-settled
// auction: callers racing this see AuctionNotFound afterwards.
func (r *Registry) CloseAndEvict(auctionID int) (model.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("registry: close auction %d: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return r.evictLocked(auction), nil
}

// ExpireAndEvict closes and evicts the auction only if its deadline has
// passed. A timer armed before an anti-snipe extension must not settle at
// the original deadline: the deadline check and the eviction happen under
// the same lock the extension commits under, and a still-open auction is
// left untouched with the remaining time reported so the caller can
// re-arm against the extended deadline.
func (r *Registry) ExpireAndEvict(auctionID int) (model.Auction, time.Duration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, 0, fmt.Errorf("registry: expire auction %d: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if remaining := auction.EndTime.Sub(r.nowFn()); remaining > 0 {
		return model.Auction{}, remaining, nil
	}
	return r.evictLocked(auction), 0, nil
}

// evictLocked must be called with r.mu held
func (r *Registry) evictLocked(auction *model.Auction) model.Auction {
	auction.Status = model.AuctionClosed
	snapshot := *auction
	snapshot.Bids = append([]model.Bid(nil), auction.Bids...)

	delete(r.auctions, auction.ID)
	delete(r.names, auction.Name)
	delete(r.lastBids, auction.ID)
	return snapshot
}

// ListActive returns a consistent snapshot of all open auctions, ordered by id
func (r *Registry) ListActive() []model.AuctionView {
	r.mu.RLock()
	defer r.mu.RUnlock()

	now := r.nowFn()
	views := make([]model.AuctionView, 0, len(r.auctions))
	for _, auction := range r.auctions {
		views = append(views, model.AuctionView{
			ID:            auction.ID,
			Name:          auction.Name,
			Item:          auction.Item,
			TimeRemaining: max(0, auction.EndTime.Sub(now)),
			HighestBid:    auction.HighestBid,
			CurrentLeader: auction.HighestBidder,
		})
	}
	sort.Slice(views, func(i, j int) bool { return views[i].ID < views[j].ID })
	return views
}

// Bids returns a copy of the auction's bid list in insertion order
func (r *Registry) Bids(auctionID int) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return nil, fmt.Errorf("registry: bids for auction %d: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return append([]model.Bid(nil), auction.Bids...), nil
}

// UserBids returns all of a user's live bids across open auctions
func (r *Registry) UserBids(userID string) []model.UserBid {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var bids []model.UserBid
	for _, auction := range r.auctions {
		for _, bid := range auction.Bids {
			if bid.UserID == userID {
				bids = append(bids, model.UserBid{
					AuctionID:   auction.ID,
					AuctionName: auction.Name,
					Item:        auction.Item,
					Amount:      bid.Amount,
				})
			}
		}
	}
	sort.Slice(bids, func(i, j int) bool { return bids[i].AuctionID < bids[j].AuctionID })
	return bids
}

// LockedAmount sums a user's live bids across all open auctions
func (r *Registry) LockedAmount(userID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.lockedAmount(userID, 0)
}

// lockedAmount must be called with r.mu held. excludeAuctionID skips the
// user's own bid in that auction so self-replacement is not double-counted;
// zero excludes nothing (auction ids start at one).
func (r *Registry) lockedAmount(userID string, excludeAuctionID int) int {
	locked := 0
	for id, auction := range r.auctions {
		if id == excludeAuctionID {
			continue
		}
		for _, bid := range auction.Bids {
			if bid.UserID == userID {
				locked += bid.Amount
			}
		}
	}
	return locked
}

// dropBid removes the user's bid from the auction, preserving insertion
// order of the rest. Must be called with r.mu held.
func (r *Registry) dropBid(auction *model.Auction, userID string) (model.Bid, bool) {
	for i, bid := range auction.Bids {
		if bid.UserID == userID {
			auction.Bids = append(auction.Bids[:i], auction.Bids[i+1:]...)
			return bid, true
		}
	}
	return model.Bid{}, false
}
