package auction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"waste-auction/internal/auctionerrors"
	"waste-auction/internal/clock"
	model "waste-auction/internal/models"
	"waste-auction/internal/repository"

	"github.com/shopspring/decimal"
)

// defaultChangeReason is recorded when an override supplies no reason
const defaultChangeReason = "No reason provided"

// WinnerService selects and, with an audit trail, overrides the winner of a
// closed auction.
type WinnerService struct {
	ledger repository.AuctionLedger
	sink   EventSink
	clock  clock.Clock
}

// NewWinnerService creates a new WinnerService instance
func NewWinnerService(ledger repository.AuctionLedger, sink EventSink, clk clock.Clock) *WinnerService {
	return &WinnerService{
		ledger: ledger,
		sink:   sink,
		clock:  clk,
	}
}

// SelectWinner records the first winner of a closed auction. Fails if a
// winner is already recorded, whoever it is; overrides go through ChangeWinner.
func (s *WinnerService) SelectWinner(ctx context.Context, auctionID, winnerID, selectedBy string) (model.Auction, error) {
	if auctionID == "" || winnerID == "" || selectedBy == "" {
		return model.Auction{}, fmt.Errorf("service: %w - missing auctionID, winnerID or selectedBy", auctionerrors.ErrValidation)
	}

	auction, err := s.ledger.SetWinner(ctx, auctionID, winnerID, selectedBy, "", s.clock.Now(), true)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrParticipantNotFound) {
			return model.Auction{}, fmt.Errorf("service: user %s did not participate in auction %s: %w",
				winnerID, auctionID, auctionerrors.ErrValidation)
		}
		return model.Auction{}, fmt.Errorf("service: failed to select winner for auction %s: %w", auctionID, err)
	}

	safePublish(s.sink, Event{
		Type:       EventTypeWinnerSelected,
		Auction:    auction,
		Winner:     winnerID,
		SelectedBy: selectedBy,
	})
	return auction, nil
}

// WinnerChange reports an override outcome including both winners
type WinnerChange struct {
	Auction        model.Auction `json:"auction"`
	PreviousWinner string        `json:"previous_winner"`
	NewWinner      string        `json:"new_winner"`
	Reason         string        `json:"reason"`
}

// ChangeWinner overrides an already recorded winner. The prior
// WINNER_SELECTED event stays in the trail; the override appends a new one.
func (s *WinnerService) ChangeWinner(ctx context.Context, auctionID, newWinnerID, changedBy, reason string) (WinnerChange, error) {
	if auctionID == "" || newWinnerID == "" || changedBy == "" {
		return WinnerChange{}, fmt.Errorf("service: %w - missing auctionID, newWinnerID or changedBy", auctionerrors.ErrValidation)
	}
	if reason == "" {
		reason = defaultChangeReason
	}

	current, err := s.ledger.GetAuction(ctx, auctionID)
	if err != nil {
		return WinnerChange{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}
	if current.WinnerID == "" {
		return WinnerChange{}, fmt.Errorf("service: auction %s has no winner yet, use selectWinner first: %w",
			auctionID, auctionerrors.ErrInvalidState)
	}
	previousWinner := current.WinnerID

	auction, err := s.ledger.SetWinner(ctx, auctionID, newWinnerID, changedBy, reason, s.clock.Now(), false)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrParticipantNotFound) {
			return WinnerChange{}, fmt.Errorf("service: user %s did not participate in auction %s: %w",
				newWinnerID, auctionID, auctionerrors.ErrValidation)
		}
		return WinnerChange{}, fmt.Errorf("service: failed to change winner for auction %s: %w", auctionID, err)
	}

	change := WinnerChange{
		Auction:        auction,
		PreviousWinner: previousWinner,
		NewWinner:      newWinnerID,
		Reason:         reason,
	}
	safePublish(s.sink, Event{
		Type:           EventTypeWinnerChanged,
		Auction:        auction,
		Winner:         newWinnerID,
		PreviousWinner: previousWinner,
		SelectedBy:     changedBy,
		Reason:         reason,
	})
	return change, nil
}

// HistoryEntry is one price-affecting action in an auction's history
type HistoryEntry struct {
	Kind      model.BidEventKind `json:"kind"`
	UserID    string             `json:"user_id,omitempty"`
	Amount    decimal.Decimal    `json:"amount"`
	Timestamp time.Time          `json:"timestamp"`
}

// BiddingHistory is a read-only projection over the BidEvent trail
type BiddingHistory struct {
	AuctionID string         `json:"auction_id"`
	Entries   []HistoryEntry `json:"entries"`
	WinnerID  string         `json:"winner_id,omitempty"`
}

// GetBiddingHistory reconstructs the full bid history (base price plus every
// accepted bid, ascending by time) and the currently recorded winner, derived
// from the latest WINNER_SELECTED event.
func (s *WinnerService) GetBiddingHistory(ctx context.Context, auctionID string) (BiddingHistory, error) {
	if auctionID == "" {
		return BiddingHistory{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrValidation)
	}

	events, err := s.ledger.ListEvents(ctx, auctionID)
	if err != nil {
		return BiddingHistory{}, fmt.Errorf("service: failed to load events for auction %s: %w", auctionID, err)
	}

	history := BiddingHistory{AuctionID: auctionID, Entries: []HistoryEntry{}}
	for _, event := range events {
		switch event.Kind {
		case model.EventBasePrice, model.EventBidPlaced:
			history.Entries = append(history.Entries, HistoryEntry{
				Kind:      event.Kind,
				UserID:    event.UserID,
				Amount:    event.Amount,
				Timestamp: event.CreatedAt,
			})
		case model.EventWinnerSelected:
			history.WinnerID = event.UserID
		}
	}
	return history, nil
}
