package handler

import (
	"context"
	"fmt"
	"net/http"

	auction "waste-auction/internal/auctionService"
	model "waste-auction/internal/models"
	"waste-auction/services/auction/helpers"
	"waste-auction/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type LifecycleServiceInterface interface {
	Create(ctx context.Context, in auction.CreateAuctionInput) (model.Auction, error)
	Approve(ctx context.Context, auctionID string) (model.Auction, error)
	Cancel(ctx context.Context, auctionID string) (model.Auction, error)
	Get(ctx context.Context, auctionID string) (model.Auction, error)
	List(ctx context.Context) ([]model.Auction, error)
	Delete(ctx context.Context, auctionID string) error
}

type BidServiceInterface interface {
	PlaceBid(ctx context.Context, auctionID, userID string, amount decimal.Decimal) (auction.BidResult, error)
}

type WinnerServiceInterface interface {
	SelectWinner(ctx context.Context, auctionID, winnerID, selectedBy string) (model.Auction, error)
	ChangeWinner(ctx context.Context, auctionID, newWinnerID, changedBy, reason string) (auction.WinnerChange, error)
	GetBiddingHistory(ctx context.Context, auctionID string) (auction.BiddingHistory, error)
}

type GatePassServiceInterface interface {
	Upload(ctx context.Context, auctionID, uploaderID, newRef string, isAdmin bool) (auction.GatePass, error)
	Get(ctx context.Context, auctionID, callerID string) (string, error)
}

type SweeperInterface interface {
	SweepNow(ctx context.Context) (auction.SweepCounts, error)
}

// AuctionHandler exposes the auction engine over HTTP
type AuctionHandler struct {
	lifecycle LifecycleServiceInterface
	bids      BidServiceInterface
	winners   WinnerServiceInterface
	gatePass  GatePassServiceInterface
	sweeper   SweeperInterface
}

func NewAuctionHandler(
	lifecycle LifecycleServiceInterface,
	bids BidServiceInterface,
	winners WinnerServiceInterface,
	gatePass GatePassServiceInterface,
	sweeper SweeperInterface,
) *AuctionHandler {
	return &AuctionHandler{
		lifecycle: lifecycle,
		bids:      bids,
		winners:   winners,
		gatePass:  gatePass,
		sweeper:   sweeper,
	}
}

func (h *AuctionHandler) fail(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := helpers.MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	fields["error"] = err.Error()
	utils.Warn(handlerName+": request failed", fields)
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	created, err := h.lifecycle.Create(c.Request.Context(), auction.CreateAuctionInput{
		LotName:             req.LotName,
		BasePrice:           req.BasePrice,
		MinIncrementPercent: req.MinIncrementPercent,
		StartDate:           req.StartDate,
		EndDate:             req.EndDate,
		CreatorID:           req.CreatorID,
	})
	if err != nil {
		h.fail(c, "CreateAuctionHandler", err, map[string]any{"lot_name": req.LotName})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, created, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": created.AuctionID,
		"lot_name":   created.LotName,
	})
}

// ListAuctionsHandler handles GET /auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	auctions, err := h.lifecycle.List(c.Request.Context())
	if err != nil {
		h.fail(c, "ListAuctionsHandler", err, map[string]any{})
		return
	}
	if auctions == nil {
		auctions = []model.Auction{}
	}
	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	snapshot, err := h.lifecycle.Get(c.Request.Context(), auctionID)
	if err != nil {
		h.fail(c, "GetAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, snapshot, "auction retrieved successfully")
}

// DeleteAuctionHandler handles DELETE /auctions/:auction_id
func (h *AuctionHandler) DeleteAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	if err := h.lifecycle.Delete(c.Request.Context(), auctionID); err != nil {
		h.fail(c, "DeleteAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, nil, "auction deleted successfully")
	helpers.LogSuccess("DeleteAuctionHandler", "auction deleted successfully", map[string]any{
		"auction_id": auctionID,
	})
}

// ApproveAuctionHandler handles POST /auctions/:auction_id/approve
func (h *AuctionHandler) ApproveAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	snapshot, err := h.lifecycle.Approve(c.Request.Context(), auctionID)
	if err != nil {
		h.fail(c, "ApproveAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, snapshot, "auction approved successfully")
	helpers.LogSuccess("ApproveAuctionHandler", "auction approved successfully", map[string]any{
		"auction_id": auctionID,
	})
}

// CancelAuctionHandler handles POST /auctions/:auction_id/cancel
func (h *AuctionHandler) CancelAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	snapshot, err := h.lifecycle.Cancel(c.Request.Context(), auctionID)
	if err != nil {
		h.fail(c, "CancelAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, snapshot, "auction cancelled successfully")
	helpers.LogSuccess("CancelAuctionHandler", "auction cancelled successfully", map[string]any{
		"auction_id": auctionID,
	})
}

// PlaceBidHandler handles POST /auctions/:auction_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	result, err := h.bids.PlaceBid(c.Request.Context(), auctionID, req.UserID, req.Amount)
	if err != nil {
		h.fail(c, "PlaceBidHandler", err, map[string]any{
			"auction_id": auctionID,
			"user_id":    req.UserID,
			"amount":     req.Amount.String(),
		})
		return
	}

	resp := helpers.PlaceBidResponse{Accepted: result.Accepted, NewCurrentPrice: result.NewCurrentPrice}
	utils.JSONResponse(c, http.StatusCreated, resp, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"auction_id": auctionID,
		"user_id":    req.UserID,
		"amount":     req.Amount.String(),
	})
}

// SweepStatusesHandler handles POST /sweep
func (h *AuctionHandler) SweepStatusesHandler(c *gin.Context) {
	counts, err := h.sweeper.SweepNow(c.Request.Context())
	if err != nil {
		h.fail(c, "SweepStatusesHandler", err, map[string]any{})
		return
	}
	utils.JSONResponse(c, http.StatusOK, counts, "status sweep completed")
	helpers.LogSuccess("SweepStatusesHandler", "status sweep completed", map[string]any{
		"activated": counts.Activated,
		"closed":    counts.Closed,
	})
}

// SelectWinnerHandler handles POST /auctions/:auction_id/winner
func (h *AuctionHandler) SelectWinnerHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	var req helpers.SelectWinnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SelectWinnerHandler", err)
		return
	}

	snapshot, err := h.winners.SelectWinner(c.Request.Context(), auctionID, req.WinnerID, req.SelectedBy)
	if err != nil {
		h.fail(c, "SelectWinnerHandler", err, map[string]any{
			"auction_id": auctionID,
			"winner_id":  req.WinnerID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, snapshot, "winner selected successfully")
	helpers.LogSuccess("SelectWinnerHandler", "winner selected successfully", map[string]any{
		"auction_id": auctionID,
		"winner_id":  req.WinnerID,
	})
}

// ChangeWinnerHandler handles PUT /auctions/:auction_id/winner
func (h *AuctionHandler) ChangeWinnerHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	var req helpers.ChangeWinnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ChangeWinnerHandler", err)
		return
	}

	change, err := h.winners.ChangeWinner(c.Request.Context(), auctionID, req.NewWinnerID, req.ChangedBy, req.Reason)
	if err != nil {
		h.fail(c, "ChangeWinnerHandler", err, map[string]any{
			"auction_id":    auctionID,
			"new_winner_id": req.NewWinnerID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, change, "winner changed successfully")
	helpers.LogSuccess("ChangeWinnerHandler", "winner changed successfully", map[string]any{
		"auction_id":      auctionID,
		"previous_winner": change.PreviousWinner,
		"new_winner":      change.NewWinner,
	})
}

// GetBiddingHistoryHandler handles GET /auctions/:auction_id/history
func (h *AuctionHandler) GetBiddingHistoryHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	history, err := h.winners.GetBiddingHistory(c.Request.Context(), auctionID)
	if err != nil {
		h.fail(c, "GetBiddingHistoryHandler", err, map[string]any{"auction_id": auctionID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, history, "bidding history retrieved successfully")
}

// UploadGatePassHandler handles POST /auctions/:auction_id/gate-pass.
// The upstream gateway authenticates callers and forwards the role header.
func (h *AuctionHandler) UploadGatePassHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	var req helpers.UploadGatePassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UploadGatePassHandler", err)
		return
	}
	isAdmin := c.GetHeader("X-User-Role") == "admin"

	pass, err := h.gatePass.Upload(c.Request.Context(), auctionID, req.UploaderID, req.GatePassRef, isAdmin)
	if err != nil {
		h.fail(c, "UploadGatePassHandler", err, map[string]any{
			"auction_id":  auctionID,
			"uploader_id": req.UploaderID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, pass, "gate pass uploaded successfully")
	helpers.LogSuccess("UploadGatePassHandler", "gate pass uploaded successfully", map[string]any{
		"auction_id":  auctionID,
		"uploader_id": req.UploaderID,
	})
}

// GetGatePassHandler handles GET /auctions/:auction_id/gate-pass
func (h *AuctionHandler) GetGatePassHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	callerID := c.GetHeader("X-User-ID")

	ref, err := h.gatePass.Get(c.Request.Context(), auctionID, callerID)
	if err != nil {
		h.fail(c, "GetGatePassHandler", err, map[string]any{
			"auction_id": auctionID,
			"caller_id":  callerID,
		})
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.GatePassResponse{GatePassRef: ref}, "gate pass retrieved successfully")
}
