package auction

import (
	"context"
	"fmt"
	"time"

	"waste-auction/internal/auctionerrors"
	"waste-auction/internal/clock"
	model "waste-auction/internal/models"
	"waste-auction/internal/repository"
	"waste-auction/utils"

	"github.com/shopspring/decimal"
)

// LifecycleService owns auction creation, approval, cancellation and deletion
type LifecycleService struct {
	ledger repository.AuctionLedger
	sink   EventSink
	clock  clock.Clock
}

// NewLifecycleService creates a new LifecycleService instance
func NewLifecycleService(ledger repository.AuctionLedger, sink EventSink, clk clock.Clock) *LifecycleService {
	return &LifecycleService{
		ledger: ledger,
		sink:   sink,
		clock:  clk,
	}
}

// CreateAuctionInput carries the fields needed to list a new lot
type CreateAuctionInput struct {
	LotName             string
	BasePrice           decimal.Decimal
	MinIncrementPercent decimal.Decimal
	StartDate           time.Time
	EndDate             time.Time
	CreatorID           string
}

// Create lists a new auction lot in PENDING with currentPrice = basePrice
func (s *LifecycleService) Create(ctx context.Context, in CreateAuctionInput) (model.Auction, error) {
	if in.LotName == "" || in.CreatorID == "" {
		return model.Auction{}, fmt.Errorf("service: %w - missing lot name or creator", auctionerrors.ErrValidation)
	}
	if in.BasePrice.IsNegative() {
		return model.Auction{}, fmt.Errorf("service: %w - base price must be non-negative", auctionerrors.ErrValidation)
	}
	if in.MinIncrementPercent.IsNegative() {
		return model.Auction{}, fmt.Errorf("service: %w - minimum increment must be non-negative", auctionerrors.ErrValidation)
	}
	if !in.StartDate.Before(in.EndDate) {
		return model.Auction{}, fmt.Errorf("service: %w - start date must precede end date", auctionerrors.ErrValidation)
	}

	auction := model.Auction{
		AuctionID:           utils.GenerateID(),
		LotName:             in.LotName,
		Status:              model.StatusPending,
		BasePrice:           in.BasePrice,
		CurrentPrice:        in.BasePrice,
		MinIncrementPercent: in.MinIncrementPercent,
		StartDate:           in.StartDate.UTC(),
		EndDate:             in.EndDate.UTC(),
		CreatorID:           in.CreatorID,
		CreatedAt:           s.clock.Now(),
	}

	if err := s.ledger.CreateAuction(ctx, auction); err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to create auction: %w", err)
	}
	return auction, nil
}

// Approve moves a PENDING auction to APPROVED
func (s *LifecycleService) Approve(ctx context.Context, auctionID string) (model.Auction, error) {
	if auctionID == "" {
		return model.Auction{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrValidation)
	}
	auction, err := s.ledger.UpdateStatus(ctx, auctionID, model.StatusPending, model.StatusApproved)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to approve auction %s: %w", auctionID, err)
	}
	safePublish(s.sink, Event{
		Type:      EventTypeStatusChanged,
		Auction:   auction,
		OldStatus: model.StatusPending,
		NewStatus: model.StatusApproved,
	})
	return auction, nil
}

// Cancel moves a PENDING or APPROVED auction to CANCELLED. Once an auction
// has gone LIVE it can no longer be cancelled.
func (s *LifecycleService) Cancel(ctx context.Context, auctionID string) (model.Auction, error) {
	if auctionID == "" {
		return model.Auction{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrValidation)
	}

	auction, err := s.ledger.GetAuction(ctx, auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}
	if auction.Status != model.StatusPending && auction.Status != model.StatusApproved {
		return model.Auction{}, fmt.Errorf("service: auction %s is %s and cannot be cancelled: %w",
			auctionID, auction.Status, auctionerrors.ErrInvalidState)
	}

	// Conditional on the status just observed, so a concurrent transition
	// (e.g. the activation sweep) makes this fail instead of stomping it.
	updated, err := s.ledger.UpdateStatus(ctx, auctionID, auction.Status, model.StatusCancelled)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to cancel auction %s: %w", auctionID, err)
	}
	safePublish(s.sink, Event{
		Type:      EventTypeStatusChanged,
		Auction:   updated,
		OldStatus: auction.Status,
		NewStatus: model.StatusCancelled,
	})
	return updated, nil
}

// Get returns one auction snapshot
func (s *LifecycleService) Get(ctx context.Context, auctionID string) (model.Auction, error) {
	if auctionID == "" {
		return model.Auction{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrValidation)
	}
	auction, err := s.ledger.GetAuction(ctx, auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	return auction, nil
}

// List returns all auctions ordered by creation time
func (s *LifecycleService) List(ctx context.Context) ([]model.Auction, error) {
	auctions, err := s.ledger.ListAuctions(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}
	return auctions, nil
}

// Delete removes an auction and cascades its participants and events.
// Administrative only; the engine itself never destroys auctions.
func (s *LifecycleService) Delete(ctx context.Context, auctionID string) error {
	if auctionID == "" {
		return fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrValidation)
	}
	if err := s.ledger.DeleteAuction(ctx, auctionID); err != nil {
		return fmt.Errorf("service: failed to delete auction %s: %w", auctionID, err)
	}
	return nil
}
