package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"dkp-auctioneer/internal/auctionerrors"
	model "dkp-auctioneer/internal/models"
	"dkp-auctioneer/services/auction/helpers"
	"dkp-auctioneer/utils"

	"github.com/gin-gonic/gin"
)

// ActorHeader carries the calling user's id; the surrounding platform is
// trusted to have authenticated it.
const ActorHeader = "X-Actor-ID"

// AuctionServiceInterface is the engine surface consumed by the HTTP layer
type AuctionServiceInterface interface {
	StartAuction(name, item, description string, duration time.Duration) (model.Auction, error)
	PlaceBid(auctionID int, user model.User, amount int) (model.Bid, error)
	RemoveBid(auctionID int, targetUserID string) error
	ForceClose(auctionID int) (model.SettlementOutcome, error)
	DeleteAuction(auctionID int) error
	ListActiveAuctions() []model.AuctionView
	AuctionBids(auctionID int) ([]model.Bid, error)
	UserBids(userID string) []model.UserBid
	Balance(userID string) int
	AvailableBalance(userID string) int
	Credit(user model.User, amount int, description string) (int, error)
	Debit(user model.User, amount int, description string) (int, error)
	RemoveUser(userID string) error
	RegisterUsers(users []model.User) (int, error)
	Standings() []model.Standing
	Top(n int) []model.Standing
	UserLog(userID string, limit int) ([]model.LogEntry, error)
	AuctionHistory(auctionID int) (model.AuctionRecord, error)
}

type AuctionHandler struct {
	service      AuctionServiceInterface
	logViewLimit int
}

func NewAuctionHandler(service AuctionServiceInterface, logViewLimit int) *AuctionHandler {
	return &AuctionHandler{service: service, logViewLimit: logViewLimit}
}

// StartAuctionHandler handles POST /auctions
func (h *AuctionHandler) StartAuctionHandler(c *gin.Context) {
	var req helpers.StartAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "StartAuctionHandler", err)
		return
	}

	auction, err := h.service.StartAuction(req.Name, req.Item, req.Description, time.Duration(req.DurationSeconds)*time.Second)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("StartAuctionHandler: failed to start auction", map[string]any{
			"name":  req.Name,
			"item":  req.Item,
			"error": err.Error(),
		})
		return
	}

	resp := helpers.AuctionResponse{
		AuctionID:   auction.ID,
		Name:        auction.Name,
		Item:        auction.Item,
		Description: auction.Description,
		EndTime:     auction.EndTime.UTC().Format(time.RFC3339),
	}
	utils.JSONResponse(c, http.StatusCreated, resp, "auction started successfully")
	helpers.LogSuccess("StartAuctionHandler", "auction started successfully", map[string]any{
		"auction_id": auction.ID,
		"name":       auction.Name,
		"item":       auction.Item,
	})
}

// ListAuctionsHandler handles GET /auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	auctions := h.service.ListActiveAuctions()
	if auctions == nil {
		auctions = []model.AuctionView{}
	}
	utils.JSONResponse(c, http.StatusOK, auctions, "active auctions retrieved successfully")
}

// PlaceBidHandler handles POST /auctions/:auction_id/bids. The bidder is
// always the authenticated actor: a caller cannot bid in someone else's
// name by putting a different id in the body.
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	auctionID, ok := auctionIDParam(c, "PlaceBidHandler")
	if !ok {
		return
	}

	actorID := c.GetHeader(ActorHeader)
	if actorID == "" {
		utils.JSONError(c, http.StatusForbidden, errors.New("missing actor identity"), "bidder identity required")
		utils.Warn("PlaceBidHandler: bid without actor identity", map[string]any{
			"auction_id": auctionID,
		})
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(auctionID, model.User{UserID: actorID, DisplayName: req.DisplayName}, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("PlaceBidHandler: failed to place bid", map[string]any{
			"auction_id": auctionID,
			"user_id":    actorID,
			"error":      err.Error(),
		})
		return
	}

	resp := helpers.BidResponse{
		BidID:     bid.BidID,
		AuctionID: auctionID,
		UserID:    bid.UserID,
		Amount:    bid.Amount,
		PlacedAt:  bid.PlacedAt.UTC().Format(time.RFC3339),
	}
	utils.JSONResponse(c, http.StatusCreated, resp, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": auctionID,
		"user_id":    bid.UserID,
		"amount":     bid.Amount,
	})
}

// RemoveBidHandler handles DELETE /auctions/:auction_id/bids/:user_id
func (h *AuctionHandler) RemoveBidHandler(c *gin.Context) {
	auctionID, ok := auctionIDParam(c, "RemoveBidHandler")
	if !ok {
		return
	}
	userID := c.Param("user_id")

	if err := h.service.RemoveBid(auctionID, userID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RemoveBidHandler: failed to remove bid", map[string]any{
			"auction_id": auctionID,
			"user_id":    userID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "bid removed successfully")
	helpers.LogSuccess("RemoveBidHandler", "bid removed successfully", map[string]any{
		"auction_id": auctionID,
		"user_id":    userID,
	})
}

// GetAuctionBidsHandler handles GET /auctions/:auction_id/bids
func (h *AuctionHandler) GetAuctionBidsHandler(c *gin.Context) {
	auctionID, ok := auctionIDParam(c, "GetAuctionBidsHandler")
	if !ok {
		return
	}

	bids, err := h.service.AuctionBids(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}
	if bids == nil {
		bids = []model.Bid{}
	}
	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
}

// ForceCloseHandler handles POST /auctions/:auction_id/close
func (h *AuctionHandler) ForceCloseHandler(c *gin.Context) {
	auctionID, ok := auctionIDParam(c, "ForceCloseHandler")
	if !ok {
		return
	}

	outcome, err := h.service.ForceClose(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ForceCloseHandler: failed to close auction", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, outcome, "auction settled successfully")
	helpers.LogSuccess("ForceCloseHandler", "auction settled successfully", map[string]any{
		"auction_id": auctionID,
	})
}

// DeleteAuctionHandler handles DELETE /auctions/:auction_id (no settlement)
func (h *AuctionHandler) DeleteAuctionHandler(c *gin.Context) {
	auctionID, ok := auctionIDParam(c, "DeleteAuctionHandler")
	if !ok {
		return
	}

	if err := h.service.DeleteAuction(auctionID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}
	utils.JSONResponse(c, http.StatusOK, nil, "auction deleted without settlement")
	helpers.LogSuccess("DeleteAuctionHandler", "auction deleted without settlement", map[string]any{
		"auction_id": auctionID,
	})
}

// GetAuctionHistoryHandler handles GET /auctions/:auction_id/history
func (h *AuctionHandler) GetAuctionHistoryHandler(c *gin.Context) {
	auctionID, ok := auctionIDParam(c, "GetAuctionHistoryHandler")
	if !ok {
		return
	}

	record, err := h.service.AuctionHistory(auctionID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrHistoryNotFound) {
			utils.JSONError(c, http.StatusNotFound, err, "no auction history found")
			return
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}
	utils.JSONResponse(c, http.StatusOK, record, "auction history retrieved successfully")
}

// auctionIDParam parses the :auction_id path parameter
func auctionIDParam(c *gin.Context, handlerName string) (int, bool) {
	raw := c.Param("auction_id")
	auctionID, err := strconv.Atoi(raw)
	if err != nil || auctionID <= 0 {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid auction id %q", raw), "invalid auction id")
		utils.Warn(handlerName+": invalid auction id", map[string]any{"auction_id": raw})
		return 0, false
	}
	return auctionID, true
}
