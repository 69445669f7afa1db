package server

import (
	"waste-auction/internal/broadcast"
	handler "waste-auction/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the auction engine
func SetupRouter(auctionHandler *handler.AuctionHandler, hub *broadcast.Hub) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctions := router.Group("/auctions")
	{
		auctions.POST("", auctionHandler.CreateAuctionHandler)
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.DELETE("/:auction_id", auctionHandler.DeleteAuctionHandler)
		auctions.POST("/:auction_id/approve", auctionHandler.ApproveAuctionHandler)
		auctions.POST("/:auction_id/cancel", auctionHandler.CancelAuctionHandler)
		auctions.POST("/:auction_id/bids", auctionHandler.PlaceBidHandler)
		auctions.GET("/:auction_id/history", auctionHandler.GetBiddingHistoryHandler)
		auctions.POST("/:auction_id/winner", auctionHandler.SelectWinnerHandler)
		auctions.PUT("/:auction_id/winner", auctionHandler.ChangeWinnerHandler)
		auctions.POST("/:auction_id/gate-pass", auctionHandler.UploadGatePassHandler)
		auctions.GET("/:auction_id/gate-pass", auctionHandler.GetGatePassHandler)
	}

	router.POST("/sweep", auctionHandler.SweepStatusesHandler)

	if hub != nil {
		router.GET("/ws", func(c *gin.Context) {
			hub.Subscribe(c.Writer, c.Request)
		})
	}

	return router
}
