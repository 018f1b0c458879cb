package auctionerrors

import (
	"errors"
	"fmt"
	"time"
)

// Validation errors, surfaced verbatim to the caller
var (
	ErrAuctionNotFound      = errors.New("auction not found")
	ErrDuplicateAuctionName = errors.New("auction name already in use")
	ErrAuctionExpired       = errors.New("auction has ended")
	ErrBidTooLow            = errors.New("bid amount too low")
	ErrBidNotFound          = errors.New("no live bid found")
	ErrCooldown             = errors.New("bidding too frequently")
	ErrNoBids               = errors.New("no bids found for auction")
)

// Resource and input errors
var (
	ErrInsufficientFunds = errors.New("insufficient points balance")
	ErrInvalidBid        = errors.New("invalid bid")
	ErrInvalidAuction    = errors.New("invalid auction parameters")
	ErrInvalidAmount     = errors.New("invalid amount")
)

// Ledger and history errors
var (
	ErrUserNotFound    = errors.New("user not found in ledger")
	ErrHistoryNotFound = errors.New("no auction history found")
)

// CooldownError carries how long the caller must wait before bidding again.
// It unwraps to ErrCooldown.
type CooldownError struct {
	RetryAfter time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("%v: retry after %.1fs", ErrCooldown, e.RetryAfter.Seconds())
}

func (e *CooldownError) Unwrap() error {
	return ErrCooldown
}

// InsufficientFundsError carries the computed available balance so the
// caller can render a helpful message. It unwraps to ErrInsufficientFunds.
type InsufficientFundsError struct {
	Available int
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("%v: available balance is %d", ErrInsufficientFunds, e.Available)
}

func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}
