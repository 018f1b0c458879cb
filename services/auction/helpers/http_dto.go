package helpers

import model "dkp-auctioneer/internal/models"

// Request/Response DTOs
type StartAuctionRequest struct {
	Name            string `json:"name" binding:"required"`
	Item            string `json:"item" binding:"required"`
	Description     string `json:"description"`
	DurationSeconds int    `json:"duration_seconds" binding:"required,gt=0"`
}

// PlaceBidRequest carries no bidder id; the bidder is the authenticated
// actor from the request header.
type PlaceBidRequest struct {
	DisplayName string `json:"display_name"`
	Amount      int    `json:"amount" binding:"required,gt=0"`
}

type AmountRequest struct {
	DisplayName string `json:"display_name"`
	Amount      int    `json:"amount" binding:"required,gt=0"`
	Description string `json:"description" binding:"required"`
}

type RegisterUsersRequest struct {
	Users []model.User `json:"users" binding:"required,dive"`
}

type AuctionResponse struct {
	AuctionID   int    `json:"auction_id"`
	Name        string `json:"name"`
	Item        string `json:"item"`
	Description string `json:"description"`
	EndTime     string `json:"end_time"`
}

type BidResponse struct {
	BidID     string `json:"bid_id"`
	AuctionID int    `json:"auction_id"`
	UserID    string `json:"user_id"`
	Amount    int    `json:"amount"`
	PlacedAt  string `json:"placed_at"`
}

type BalanceResponse struct {
	UserID    string `json:"user_id"`
	Balance   int    `json:"balance"`
	Available int    `json:"available"`
}
