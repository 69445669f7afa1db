package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type (
	// AuctionStatus is the lifecycle state of an auction lot
	AuctionStatus string
	// BidEventKind classifies entries in the append-only audit trail
	BidEventKind string
)

const (
	StatusPending   AuctionStatus = "PENDING"
	StatusApproved  AuctionStatus = "APPROVED"
	StatusLive      AuctionStatus = "LIVE"
	StatusClosed    AuctionStatus = "CLOSED"
	StatusCancelled AuctionStatus = "CANCELLED"

	EventBasePrice      BidEventKind = "BASE_PRICE"
	EventBidPlaced      BidEventKind = "BID_PLACED"
	EventWinnerSelected BidEventKind = "WINNER_SELECTED"
)

// Auction represents a waste lot offered for competitive bidding
type Auction struct {
	AuctionID           string          `json:"auction_id"`
	LotName             string          `json:"lot_name"`
	Status              AuctionStatus   `json:"status"`
	BasePrice           decimal.Decimal `json:"base_price"`
	CurrentPrice        decimal.Decimal `json:"current_price"`
	MinIncrementPercent decimal.Decimal `json:"min_increment_percent"`
	StartDate           time.Time       `json:"start_date"`
	EndDate             time.Time       `json:"end_date"`
	CreatorID           string          `json:"creator_id"`
	WinnerID            string          `json:"winner_id,omitempty"`
	GatePassRef         string          `json:"gate_pass_ref,omitempty"`
	GatePassUploadedBy  string          `json:"gate_pass_uploaded_by,omitempty"`
	GatePassUploadedAt  *time.Time      `json:"gate_pass_uploaded_at,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
}

// Participant is a user's current standing bid on an auction,
// one row per (auction, user) pair
type Participant struct {
	AuctionID string          `json:"auction_id"`
	UserID    string          `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// BidEvent is an immutable audit record of a price-affecting action
type BidEvent struct {
	EventID   string          `json:"event_id"`
	AuctionID string          `json:"auction_id"`
	Kind      BidEventKind    `json:"kind"`
	UserID    string          `json:"user_id,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Actor     string          `json:"actor,omitempty"`
	Reason    string          `json:"reason,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// MinAcceptableBid returns the smallest amount a new bid must reach:
// currentPrice * (1 + minIncrementPercent/100)
func (a Auction) MinAcceptableBid() decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	factor := hundred.Add(a.MinIncrementPercent).Div(hundred)
	return a.CurrentPrice.Mul(factor)
}

// IsTerminal reports whether the auction clock can no longer advance the status
func (s AuctionStatus) IsTerminal() bool {
	return s == StatusClosed || s == StatusCancelled
}
