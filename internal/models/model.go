package models

import "time"

// User identifies a participant in the points system
type User struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

// LedgerEntry is a user's durable points record
type LedgerEntry struct {
	DisplayName string `json:"display_name"`
	Balance     int    `json:"dkp"`
}

// AuctionStatus is the lifecycle state of an auction
type AuctionStatus string

const (
	AuctionOpen   AuctionStatus = "open"
	AuctionClosed AuctionStatus = "closed"
)

// Bid represents a user's single live pledge of points toward an auction.
// A later bid from the same user replaces it.
type Bid struct {
	BidID       string    `json:"bid_id"`
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Amount      int       `json:"amount"`
	PlacedAt    time.Time `json:"placed_at"`
}

// Auction is a time-boxed competition for an item
type Auction struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	Item          string        `json:"item"`
	Description   string        `json:"description"`
	EndTime       time.Time     `json:"end_time"`
	Status        AuctionStatus `json:"status"`
	Bids          []Bid         `json:"bids"`
	HighestBid    int           `json:"highest_bid"`
	HighestBidder string        `json:"highest_bidder,omitempty"`
}

// AuctionView is a read-only snapshot of an open auction for listings
type AuctionView struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	Item          string        `json:"item"`
	TimeRemaining time.Duration `json:"time_remaining"`
	HighestBid    int           `json:"highest_bid"`
	CurrentLeader string        `json:"current_leader,omitempty"`
}

// UserBid ties one of a user's live bids to the auction it sits in
type UserBid struct {
	AuctionID   int    `json:"auction_id"`
	AuctionName string `json:"auction_name"`
	Item        string `json:"item"`
	Amount      int    `json:"amount"`
}

// LogEntry is one append-only record of a ledger change
type LogEntry struct {
	Timestamp   string `json:"timestamp"`
	Action      string `json:"action"`
	Amount      int    `json:"amount"`
	Description string `json:"description"`
}

// TopBid is a settled bid kept in auction history (no transient data)
type TopBid struct {
	UserID string `json:"user_id"`
	Amount int    `json:"amount"`
}

// AuctionRecord is the persisted history entry for one auction
type AuctionRecord struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Item        string   `json:"item"`
	Description string   `json:"description"`
	CreatedAt   string   `json:"created_at"`
	DateOfEnd   string   `json:"date_of_end"`
	TopBids     []TopBid `json:"top_3_bids"`
}

// Standing pairs a user with their balance for leaderboards
type Standing struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Balance     int    `json:"balance"`
}

// SettlementOutcome is the terminal result of an auction
type SettlementOutcome struct {
	AuctionID int      `json:"auction_id"`
	Item      string   `json:"item"`
	Winner    *TopBid  `json:"winner,omitempty"`
	TopBids   []TopBid `json:"top_3_bids"`
}
