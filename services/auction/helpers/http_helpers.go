package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"dkp-auctioneer/internal/auctionerrors"
	"dkp-auctioneer/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrBidNotFound):
		return http.StatusNotFound, "no live bid found"
	case errors.Is(err, auctionerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, auctionerrors.ErrHistoryNotFound):
		return http.StatusNotFound, "no auction history found"
	case errors.Is(err, auctionerrors.ErrDuplicateAuctionName):
		return http.StatusConflict, "auction name already in use"
	case errors.Is(err, auctionerrors.ErrAuctionExpired):
		return http.StatusGone, "auction has ended"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrInsufficientFunds):
		return http.StatusPaymentRequired, "insufficient points balance"
	case errors.Is(err, auctionerrors.ErrCooldown):
		return http.StatusTooManyRequests, "bidding too frequently"
	case errors.Is(err, auctionerrors.ErrInvalidBid),
		errors.Is(err, auctionerrors.ErrInvalidAuction),
		errors.Is(err, auctionerrors.ErrInvalidAmount):
		return http.StatusBadRequest, "invalid request details"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
