package auction

import (
	"fmt"

	"dkp-auctioneer/internal/auctionerrors"
	model "dkp-auctioneer/internal/models"
)

// Balance returns the user's total ledger balance (zero for unknown users)
func (s *AuctionService) Balance(userID string) int {
	return s.ledger.GetBalance(userID)
}

// AvailableBalance returns balance minus the sum of the user's live bids
func (s *AuctionService) AvailableBalance(userID string) int {
	return s.ledger.GetBalance(userID) - s.registry.LockedAmount(userID)
}

// Credit grants points to a user and records the change in the audit log
func (s *AuctionService) Credit(user model.User, amount int, description string) (int, error) {
	if description == "" {
		return 0, fmt.Errorf("service: %w - a credit needs a description", auctionerrors.ErrInvalidAmount)
	}
	newBalance, err := s.ledger.Credit(user.UserID, user.DisplayName, amount)
	if err != nil {
		return 0, err
	}
	if err := s.audit.Append(user.UserID, user.DisplayName, "credit", amount, description); err != nil {
		return newBalance, fmt.Errorf("service: credited but failed to log: %w", err)
	}
	return newBalance, nil
}

// Debit removes points from a user, clamped at zero, and records the change
func (s *AuctionService) Debit(user model.User, amount int, description string) (int, error) {
	if description == "" {
		return 0, fmt.Errorf("service: %w - a debit needs a description", auctionerrors.ErrInvalidAmount)
	}
	newBalance, err := s.ledger.Debit(user.UserID, user.DisplayName, amount)
	if err != nil {
		return 0, err
	}
	if err := s.audit.Append(user.UserID, user.DisplayName, "debit", amount, description); err != nil {
		return newBalance, fmt.Errorf("service: debited but failed to log: %w", err)
	}
	return newBalance, nil
}

// RemoveUser deletes a user from the ledger. Their live bids, if any,
// stay in place and simply lose against a funded ledger at settlement.
func (s *AuctionService) RemoveUser(userID string) error {
	return s.ledger.Remove(userID)
}

// RegisterUsers adds missing users with zero balance and refreshes
// display names. Returns how many users were added.
func (s *AuctionService) RegisterUsers(users []model.User) (int, error) {
	if len(users) == 0 {
		return 0, nil
	}
	return s.ledger.Register(users)
}

// Standings returns every ledger entry sorted by balance descending
func (s *AuctionService) Standings() []model.Standing {
	return s.ledger.Standings()
}

// Top returns the n highest balances
func (s *AuctionService) Top(n int) []model.Standing {
	standings := s.ledger.Standings()
	if n > 0 && len(standings) > n {
		standings = standings[:n]
	}
	return standings
}

// UserLog returns the user's most recent audit entries, capped at limit
func (s *AuctionService) UserLog(userID string, limit int) ([]model.LogEntry, error) {
	return s.audit.UserLog(userID, limit)
}

// AuctionHistory returns the persisted record of a past or open auction
func (s *AuctionService) AuctionHistory(auctionID int) (model.AuctionRecord, error) {
	return s.audit.AuctionRecord(auctionID)
}
