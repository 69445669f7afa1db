package auction

import (
	"context"
	"errors"
	"fmt"

	"waste-auction/internal/auctionerrors"
	"waste-auction/internal/clock"
	model "waste-auction/internal/models"
	"waste-auction/internal/repository"

	"github.com/shopspring/decimal"
)

// maxBidAttempts bounds the compare-and-swap retry loop when concurrent
// bidders race on the same observed price.
const maxBidAttempts = 3

// BidService validates and applies bids against live auctions
type BidService struct {
	ledger repository.AuctionLedger
	sink   EventSink
	clock  clock.Clock
}

// NewBidService creates a new BidService instance
func NewBidService(ledger repository.AuctionLedger, sink EventSink, clk clock.Clock) *BidService {
	return &BidService{
		ledger: ledger,
		sink:   sink,
		clock:  clk,
	}
}

// BidResult reports the outcome of an accepted bid
type BidResult struct {
	Accepted        bool            `json:"accepted"`
	NewCurrentPrice decimal.Decimal `json:"new_current_price"`
}

// PlaceBid validates a user's bid and commits it with a conditional update
// keyed on the observed current price. A lost race re-validates against the
// fresh minimum and retries up to maxBidAttempts before giving up with a
// conflict error.
func (s *BidService) PlaceBid(ctx context.Context, auctionID, userID string, amount decimal.Decimal) (BidResult, error) {
	if auctionID == "" || userID == "" {
		return BidResult{}, fmt.Errorf("service: %w - missing auctionID or userID", auctionerrors.ErrValidation)
	}
	if !amount.IsPositive() {
		return BidResult{}, fmt.Errorf("service: %w - bid amount must be positive", auctionerrors.ErrValidation)
	}

	for attempt := 0; attempt < maxBidAttempts; attempt++ {
		auction, err := s.ledger.GetAuction(ctx, auctionID)
		if err != nil {
			return BidResult{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
		}
		if auction.Status != model.StatusLive {
			return BidResult{}, fmt.Errorf("service: auction %s is %s, bidding requires LIVE: %w",
				auctionID, auction.Status, auctionerrors.ErrInvalidState)
		}

		minimum := auction.MinAcceptableBid()
		if amount.LessThan(minimum) {
			return BidResult{}, fmt.Errorf("service: %w - minimum acceptable bid is %s",
				auctionerrors.ErrBidTooLow, minimum.String())
		}

		if err := s.checkOwnPreviousBid(ctx, auctionID, userID, amount); err != nil {
			return BidResult{}, err
		}

		applied, err := s.ledger.ApplyBid(ctx, auctionID, userID, amount, auction.CurrentPrice, s.clock.Now())
		if err != nil {
			return BidResult{}, fmt.Errorf("service: failed to apply bid for auction %s by user %s: %w",
				auctionID, userID, err)
		}
		if !applied {
			// Another bidder (or the close sweep) moved the auction under us.
			// The next iteration re-reads and re-validates.
			continue
		}

		auction.CurrentPrice = amount
		safePublish(s.sink, Event{Type: EventTypeBidPlaced, Auction: auction})
		return BidResult{Accepted: true, NewCurrentPrice: amount}, nil
	}

	return BidResult{}, fmt.Errorf("service: bid on auction %s lost %d concurrent update races: %w",
		auctionID, maxBidAttempts, auctionerrors.ErrConflict)
}

// checkOwnPreviousBid enforces that a user may only raise their own standing
// bid, never lower or tie it.
func (s *BidService) checkOwnPreviousBid(ctx context.Context, auctionID, userID string, amount decimal.Decimal) error {
	previous, err := s.ledger.GetParticipant(ctx, auctionID, userID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrParticipantNotFound) {
			return nil
		}
		return fmt.Errorf("service: failed to check previous bid: %w", err)
	}
	if !amount.GreaterThan(previous.Amount) {
		return fmt.Errorf("service: %w - new amount %s must exceed your previous bid %s",
			auctionerrors.ErrValidation, amount.String(), previous.Amount.String())
	}
	return nil
}

// GetAuctionSnapshot returns the current state of one auction
func (s *BidService) GetAuctionSnapshot(ctx context.Context, auctionID string) (model.Auction, error) {
	if auctionID == "" {
		return model.Auction{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrValidation)
	}
	auction, err := s.ledger.GetAuction(ctx, auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	return auction, nil
}
