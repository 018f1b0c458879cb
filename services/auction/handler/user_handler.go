package handler

import (
	"fmt"
	"net/http"
	"strconv"

	model "dkp-auctioneer/internal/models"
	"dkp-auctioneer/services/auction/helpers"
	"dkp-auctioneer/utils"

	"github.com/gin-gonic/gin"
)

// GetBalanceHandler handles GET /users/:user_id/balance
func (h *AuctionHandler) GetBalanceHandler(c *gin.Context) {
	userID := c.Param("user_id")
	resp := helpers.BalanceResponse{
		UserID:    userID,
		Balance:   h.service.Balance(userID),
		Available: h.service.AvailableBalance(userID),
	}
	utils.JSONResponse(c, http.StatusOK, resp, "balance retrieved successfully")
}

// CreditHandler handles POST /users/:user_id/credit
func (h *AuctionHandler) CreditHandler(c *gin.Context) {
	h.applyLedgerChange(c, "CreditHandler", h.service.Credit)
}

// DebitHandler handles POST /users/:user_id/debit
func (h *AuctionHandler) DebitHandler(c *gin.Context) {
	h.applyLedgerChange(c, "DebitHandler", h.service.Debit)
}

func (h *AuctionHandler) applyLedgerChange(c *gin.Context, handlerName string, apply func(model.User, int, string) (int, error)) {
	userID := c.Param("user_id")

	var req helpers.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, handlerName, err)
		return
	}

	newBalance, err := apply(model.User{UserID: userID, DisplayName: req.DisplayName}, req.Amount, req.Description)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn(handlerName+": ledger change failed", map[string]any{
			"user_id": userID,
			"amount":  req.Amount,
			"error":   err.Error(),
		})
		return
	}

	resp := helpers.BalanceResponse{UserID: userID, Balance: newBalance, Available: h.service.AvailableBalance(userID)}
	utils.JSONResponse(c, http.StatusOK, resp, "balance updated successfully")
	helpers.LogSuccess(handlerName, "balance updated successfully", map[string]any{
		"user_id":     userID,
		"amount":      req.Amount,
		"new_balance": newBalance,
	})
}

// RemoveUserHandler handles DELETE /users/:user_id
func (h *AuctionHandler) RemoveUserHandler(c *gin.Context) {
	userID := c.Param("user_id")

	if err := h.service.RemoveUser(userID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}
	utils.JSONResponse(c, http.StatusOK, nil, "user removed successfully")
	helpers.LogSuccess("RemoveUserHandler", "user removed successfully", map[string]any{"user_id": userID})
}

// RegisterUsersHandler handles POST /users
func (h *AuctionHandler) RegisterUsersHandler(c *gin.Context) {
	var req helpers.RegisterUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterUsersHandler", err)
		return
	}

	added, err := h.service.RegisterUsers(req.Users)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"added": added}, "users registered successfully")
	helpers.LogSuccess("RegisterUsersHandler", "users registered successfully", map[string]any{"added": added})
}

// GetUserBidsHandler handles GET /users/:user_id/bids
func (h *AuctionHandler) GetUserBidsHandler(c *gin.Context) {
	userID := c.Param("user_id")
	bids := h.service.UserBids(userID)
	if bids == nil {
		bids = []model.UserBid{}
	}
	utils.JSONResponse(c, http.StatusOK, bids, "active bids retrieved successfully")
}

// GetUserLogHandler handles GET /users/:user_id/log
func (h *AuctionHandler) GetUserLogHandler(c *gin.Context) {
	userID := c.Param("user_id")

	logs, err := h.service.UserLog(userID, h.logViewLimit)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}
	utils.JSONResponse(c, http.StatusOK, logs, "audit log retrieved successfully")
}

// LeaderboardHandler handles GET /leaderboard
func (h *AuctionHandler) LeaderboardHandler(c *gin.Context) {
	standings := h.service.Standings()
	if rawLimit := c.Query("limit"); rawLimit != "" {
		limit, err := strconv.Atoi(rawLimit)
		if err != nil || limit <= 0 {
			utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid limit %q", rawLimit), "invalid limit")
			return
		}
		standings = h.service.Top(limit)
	}
	if standings == nil {
		standings = []model.Standing{}
	}
	utils.JSONResponse(c, http.StatusOK, standings, "leaderboard retrieved successfully")
}
