package auction

import (
	model "dkp-auctioneer/internal/models"
	"dkp-auctioneer/utils"
)

// Notifier delivers user-facing events to the transport collaborator.
// Delivery is fire-and-forget: the engine never assumes a notification
// channel succeeds or is synchronous.
type Notifier interface {
	AuctionOpened(auction model.Auction)
	// Outbid tells a displaced leader their held funds are unlocked.
	// Purely observational: nothing was ever debited for the bid.
	Outbid(userID string, auctionID int, amount int)
	AuctionSettled(outcome model.SettlementOutcome)
}

// LogNotifier is the default Notifier: it writes structured log lines and
// delivers nothing anywhere else.
type LogNotifier struct{}

func (LogNotifier) AuctionOpened(auction model.Auction) {
	utils.Info("auction opened", map[string]any{
		"auction_id": auction.ID,
		"name":       auction.Name,
		"item":       auction.Item,
		"end_time":   auction.EndTime,
	})
}

func (LogNotifier) Outbid(userID string, auctionID int, amount int) {
	utils.Info("bidder outbid, funds unlocked", map[string]any{
		"auction_id": auctionID,
		"user_id":    userID,
		"amount":     amount,
	})
}

func (LogNotifier) AuctionSettled(outcome model.SettlementOutcome) {
	fields := map[string]any{
		"auction_id": outcome.AuctionID,
		"item":       outcome.Item,
	}
	if outcome.Winner != nil {
		fields["winner"] = outcome.Winner.UserID
		fields["winning_bid"] = outcome.Winner.Amount
	} else {
		fields["winner"] = "none"
	}
	utils.Info("auction settled", fields)
}
