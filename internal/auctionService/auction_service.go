package auction

import (
	"errors"
	"fmt"
	"time"

	"dkp-auctioneer/internal/audit"
	"dkp-auctioneer/internal/auctionerrors"
	"dkp-auctioneer/internal/ledger"
	model "dkp-auctioneer/internal/models"
	"dkp-auctioneer/internal/registry"
	"dkp-auctioneer/utils"
)

// Timers is the scheduler surface the service depends on
type Timers interface {
	Arm(auctionID int, endTime time.Time)
	Cancel(auctionID int)
}

// Deps wires an AuctionService
type Deps struct {
	Ledger   ledger.Store
	Audit    audit.Recorder
	Registry *registry.Registry
	Timers   Timers
	Notifier Notifier
	Now      func() time.Time

	// LosingDeposit is the non-refundable fraction of a losing bid
	// debited at settlement. Zero disables deposits.
	LosingDeposit float64
}

// AuctionService owns the auction lifecycle: it opens auctions, routes
// bids through the registry, and settles deadlines exactly once.
type AuctionService struct {
	ledger        ledger.Store
	audit         audit.Recorder
	registry      *registry.Registry
	timers        Timers
	notifier      Notifier
	nowFn         func() time.Time
	losingDeposit float64
}

// NewAuctionService creates a service from its dependencies. A nil clock
// defaults to time.Now and a nil notifier to the logging notifier.
func NewAuctionService(deps Deps) (*AuctionService, error) {
	if deps.Ledger == nil || deps.Audit == nil || deps.Registry == nil || deps.Timers == nil {
		return nil, errors.New("service: ledger, audit, registry, and timers are required")
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Notifier == nil {
		deps.Notifier = LogNotifier{}
	}
	return &AuctionService{
		ledger:        deps.Ledger,
		audit:         deps.Audit,
		registry:      deps.Registry,
		timers:        deps.Timers,
		notifier:      deps.Notifier,
		nowFn:         deps.Now,
		losingDeposit: deps.LosingDeposit,
	}, nil
}

// StartAuction opens a new time-boxed auction. The audit creation record
// is written before the auction becomes visible, so no bid can land on a
// half-created auction.
func (s *AuctionService) StartAuction(name, item, description string, duration time.Duration) (model.Auction, error) {
	if name == "" || item == "" {
		return model.Auction{}, fmt.Errorf("service: %w - missing name or item", auctionerrors.ErrInvalidAuction)
	}
	if duration <= 0 {
		return model.Auction{}, fmt.Errorf("service: %w - non-positive duration", auctionerrors.ErrInvalidAuction)
	}
	if s.registry.NameInUse(name) {
		return model.Auction{}, fmt.Errorf("service: auction %q: %w", name, auctionerrors.ErrDuplicateAuctionName)
	}

	now := s.nowFn()
	endTime := now.Add(duration)

	auctionID, err := s.audit.RecordCreation(name, item, description, now, endTime)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to record auction creation: %w", err)
	}

	created := &model.Auction{
		ID:          auctionID,
		Name:        name,
		Item:        item,
		Description: description,
		EndTime:     endTime,
		Status:      model.AuctionOpen,
		Bids:        []model.Bid{},
	}
	if err := s.registry.Insert(created); err != nil {
		return model.Auction{}, err
	}

	s.timers.Arm(auctionID, endTime)
	s.notifier.AuctionOpened(*created)
	return *created, nil
}

// PlaceBid validates and applies a bid. An extension re-arms the auction's
// timer, and a displaced leader is told their funds are unlocked again.
func (s *AuctionService) PlaceBid(auctionID int, user model.User, amount int) (model.Bid, error) {
	if user.UserID == "" {
		return model.Bid{}, fmt.Errorf("service: %w - missing user id", auctionerrors.ErrInvalidBid)
	}
	if amount <= 0 {
		return model.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}

	result, err := s.registry.PlaceBid(auctionID, user, amount, s.ledger.GetBalance)
	if err != nil {
		return model.Bid{}, err
	}

	if result.Extended {
		s.timers.Arm(auctionID, result.EndTime)
	}
	if result.OutbidUserID != "" {
		s.notifier.Outbid(result.OutbidUserID, auctionID, result.OutbidAmount)
	}
	return result.Bid, nil
}

// RemoveBid drops the target user's live bid from an auction. The target
// is the caller for self-service removal or another user for the
// administrative variant; authorization happens at the transport boundary.
func (s *AuctionService) RemoveBid(auctionID int, targetUserID string) error {
	if targetUserID == "" {
		return fmt.Errorf("service: %w - missing user id", auctionerrors.ErrInvalidBid)
	}
	_, err := s.registry.RemoveBid(auctionID, targetUserID)
	return err
}

// ForceClose settles an auction immediately. It is idempotent with a
// natural expiry race: whichever of the timer and this call reaches the
// registry first settles, the other observes AuctionNotFound.
func (s *AuctionService) ForceClose(auctionID int) (model.SettlementOutcome, error) {
	s.timers.Cancel(auctionID)
	return s.settle(auctionID)
}

// DeleteAuction removes an auction without settlement: no winner, no
// ledger mutation. A terminal administrative transition.
func (s *AuctionService) DeleteAuction(auctionID int) error {
	s.timers.Cancel(auctionID)
	_, err := s.registry.CloseAndEvict(auctionID)
	return err
}

// HandleExpiry is the scheduler callback: it settles the auction whose
// deadline elapsed. An auction already gone (force-closed or deleted) is
// a no-op. A timer made stale by an anti-snipe extension finds the
// deadline still in the future and re-arms against it instead of
// settling early.
func (s *AuctionService) HandleExpiry(auctionID int) {
	auction, remaining, err := s.registry.ExpireAndEvict(auctionID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrAuctionNotFound) {
			return
		}
		utils.Error("settlement failed on expiry", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}
	if remaining > 0 {
		s.timers.Arm(auctionID, s.nowFn().Add(remaining))
		return
	}
	if _, err := s.settleClosed(auction); err != nil {
		utils.Error("settlement failed on expiry", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
	}
}

// ListActiveAuctions returns a snapshot of all open auctions
func (s *AuctionService) ListActiveAuctions() []model.AuctionView {
	return s.registry.ListActive()
}

// AuctionBids returns the live bids of one open auction in insertion order
func (s *AuctionService) AuctionBids(auctionID int) ([]model.Bid, error) {
	return s.registry.Bids(auctionID)
}

// UserBids returns all of a user's live bids across open auctions
func (s *AuctionService) UserBids(userID string) []model.UserBid {
	return s.registry.UserBids(userID)
}
