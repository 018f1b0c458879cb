package server

import (
	"errors"

	"dkp-auctioneer/internal/auth"
	handler "dkp-auctioneer/services/auction/handler"

	"github.com/gin-gonic/gin"
)

var errForbidden = errors.New("forbidden")

// SetupRouter configures all Gin routes for the application
func SetupRouter(service handler.AuctionServiceInterface, authorizer auth.Authorizer, logViewLimit int) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(service, logViewLimit)
	admin := RequireAdmin(authorizer)

	auctions := router.Group("/auctions")
	{
		auctions.POST("", admin, auctionHandler.StartAuctionHandler)
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.POST("/:auction_id/close", admin, auctionHandler.ForceCloseHandler)
		auctions.DELETE("/:auction_id", admin, auctionHandler.DeleteAuctionHandler)
		auctions.GET("/:auction_id/bids", auctionHandler.GetAuctionBidsHandler)
		auctions.POST("/:auction_id/bids", auctionHandler.PlaceBidHandler)
		auctions.DELETE("/:auction_id/bids/:user_id", RequireSelfOrAdmin(authorizer, "user_id"), auctionHandler.RemoveBidHandler)
		auctions.GET("/:auction_id/history", auctionHandler.GetAuctionHistoryHandler)
	}

	users := router.Group("/users")
	{
		users.POST("", admin, auctionHandler.RegisterUsersHandler)
		users.GET("/:user_id/balance", auctionHandler.GetBalanceHandler)
		users.POST("/:user_id/credit", admin, auctionHandler.CreditHandler)
		users.POST("/:user_id/debit", admin, auctionHandler.DebitHandler)
		users.DELETE("/:user_id", admin, auctionHandler.RemoveUserHandler)
		users.GET("/:user_id/bids", auctionHandler.GetUserBidsHandler)
		users.GET("/:user_id/log", admin, auctionHandler.GetUserLogHandler)
	}

	router.GET("/leaderboard", auctionHandler.LeaderboardHandler)

	return router
}
