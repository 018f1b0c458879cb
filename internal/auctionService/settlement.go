package auction

import (
	"fmt"
	"sort"

	model "dkp-auctioneer/internal/models"
	"dkp-auctioneer/utils"
)

// settle computes the outcome of an auction and applies it. The auction is
// closed and evicted from the registry in one atomic step before anything
// else happens, so no bid can race against a half-settled auction and a
// second settlement attempt observes AuctionNotFound. Used by the
// force-close path, which settles regardless of the deadline; natural
// expiry goes through ExpireAndEvict instead.
func (s *AuctionService) settle(auctionID int) (model.SettlementOutcome, error) {
	auction, err := s.registry.CloseAndEvict(auctionID)
	if err != nil {
		return model.SettlementOutcome{}, err
	}
	return s.settleClosed(auction)
}

// settleClosed applies the outcome of an already evicted auction
func (s *AuctionService) settleClosed(auction model.Auction) (model.SettlementOutcome, error) {
	closedAt := s.nowFn()
	top := topBids(auction.Bids, 3)
	outcome := model.SettlementOutcome{
		AuctionID: auction.ID,
		Item:      auction.Item,
		TopBids:   top,
	}

	if auction.HighestBidder == "" {
		// No bids: no ledger mutation, history gets an empty top-3.
		if err := s.audit.RecordResult(auction.ID, closedAt, nil); err != nil {
			utils.Warn("failed to record no-bid auction result", map[string]any{
				"auction_id": auction.ID,
				"error":      err.Error(),
			})
		}
		s.notifier.AuctionSettled(outcome)
		return outcome, nil
	}

	winnerName := displayNameOf(auction.Bids, auction.HighestBidder)
	if _, err := s.ledger.Debit(auction.HighestBidder, winnerName, auction.HighestBid); err != nil {
		return model.SettlementOutcome{}, fmt.Errorf("service: failed to debit winner of auction %d: %w", auction.ID, err)
	}
	reason := fmt.Sprintf("winner of auction ID %d (%s)", auction.ID, auction.Item)
	if err := s.audit.Append(auction.HighestBidder, winnerName, "debit", auction.HighestBid, reason); err != nil {
		utils.Warn("failed to append winner debit log", map[string]any{
			"auction_id": auction.ID,
			"user_id":    auction.HighestBidder,
			"error":      err.Error(),
		})
	}

	s.collectDeposits(auction)

	if err := s.audit.RecordResult(auction.ID, closedAt, top); err != nil {
		utils.Warn("failed to record auction result", map[string]any{
			"auction_id": auction.ID,
			"error":      err.Error(),
		})
	}

	winner := top[0]
	outcome.Winner = &winner
	s.notifier.AuctionSettled(outcome)
	return outcome, nil
}

// collectDeposits debits the configured non-refundable fraction from every
// losing live bid. Disabled by default; the hold model otherwise never
// touches a loser's balance.
func (s *AuctionService) collectDeposits(auction model.Auction) {
	if s.losingDeposit <= 0 {
		return
	}
	for _, bid := range auction.Bids {
		if bid.UserID == auction.HighestBidder {
			continue
		}
		deposit := int(float64(bid.Amount) * s.losingDeposit)
		if deposit <= 0 {
			continue
		}
		if _, err := s.ledger.Debit(bid.UserID, bid.DisplayName, deposit); err != nil {
			utils.Warn("failed to debit losing-bid deposit", map[string]any{
				"auction_id": auction.ID,
				"user_id":    bid.UserID,
				"error":      err.Error(),
			})
			continue
		}
		reason := fmt.Sprintf("bid deposit, auction ID %d (%s)", auction.ID, auction.Item)
		if err := s.audit.Append(bid.UserID, bid.DisplayName, "debit", deposit, reason); err != nil {
			utils.Warn("failed to append deposit log", map[string]any{
				"auction_id": auction.ID,
				"user_id":    bid.UserID,
				"error":      err.Error(),
			})
		}
	}
}

// topBids ranks bids by amount descending, ties broken by earliest
// placement, and keeps at most n. Only user id and amount survive into
// history.
func topBids(bids []model.Bid, n int) []model.TopBid {
	ranked := append([]model.Bid(nil), bids...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Amount != ranked[j].Amount {
			return ranked[i].Amount > ranked[j].Amount
		}
		return ranked[i].PlacedAt.Before(ranked[j].PlacedAt)
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	top := make([]model.TopBid, 0, len(ranked))
	for _, bid := range ranked {
		top = append(top, model.TopBid{UserID: bid.UserID, Amount: bid.Amount})
	}
	return top
}

func displayNameOf(bids []model.Bid, userID string) string {
	for _, bid := range bids {
		if bid.UserID == userID {
			return bid.DisplayName
		}
	}
	return ""
}
