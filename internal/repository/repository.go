package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"waste-auction/internal/auctionerrors"
	model "waste-auction/internal/models"
	"waste-auction/utils"

	"github.com/shopspring/decimal"
)

// AuctionLedger defines the durable store for auctions, participants and the
// append-only bid event trail. Every mutation is an atomic conditional update
// scoped by auction identity, so concurrent writers cannot interleave an
// inconsistent read-modify-write on the same auction.
type AuctionLedger interface {
	CreateAuction(ctx context.Context, auction model.Auction) error
	GetAuction(ctx context.Context, auctionID string) (model.Auction, error)
	ListAuctions(ctx context.Context) ([]model.Auction, error)
	DeleteAuction(ctx context.Context, auctionID string) error

	// UpdateStatus transitions the auction from one status to another only if
	// the current status matches. A mismatch fails with ErrInvalidState.
	UpdateStatus(ctx context.Context, auctionID string, from, to model.AuctionStatus) (model.Auction, error)

	// ActivateDue flips every APPROVED auction whose start date has passed to
	// LIVE and returns the refreshed snapshots. Idempotent.
	ActivateDue(ctx context.Context, now time.Time) ([]model.Auction, error)

	// CloseDue flips every LIVE auction whose end date has passed to CLOSED
	// and returns the refreshed snapshots. Idempotent.
	CloseDue(ctx context.Context, now time.Time) ([]model.Auction, error)

	// ApplyBid commits a bid in one atomic step: it sets currentPrice to
	// amount only if currentPrice still equals observedPrice and the status is
	// LIVE, upserts the caller's participant row and appends a BID_PLACED
	// event. It reports applied=false when the guard did not match, leaving
	// the caller to re-read and decide.
	ApplyBid(ctx context.Context, auctionID, userID string, amount, observedPrice decimal.Decimal, at time.Time) (bool, error)

	GetParticipant(ctx context.Context, auctionID, userID string) (model.Participant, error)
	ListParticipants(ctx context.Context, auctionID string) ([]model.Participant, error)

	// SetWinner records winnerID and appends a WINNER_SELECTED event
	// atomically. When expectUnset is true the update only applies while no
	// winner is recorded; otherwise only while one already is. The auction
	// must be CLOSED and the winner must be a participant.
	SetWinner(ctx context.Context, auctionID, winnerID, selectedBy, reason string, at time.Time, expectUnset bool) (model.Auction, error)

	// SetGatePass replaces the gate pass reference (last write wins) while the
	// auction is CLOSED and has a winner.
	SetGatePass(ctx context.Context, auctionID, ref, uploadedBy string, at time.Time) (model.Auction, error)

	// ListEvents returns the audit trail for an auction in commit order.
	ListEvents(ctx context.Context, auctionID string) ([]model.BidEvent, error)
}

// MemoryLedger is a concurrency-safe in-memory implementation of AuctionLedger
type MemoryLedger struct {
	mu           sync.RWMutex
	auctions     map[string]model.Auction            // key: auctionID
	participants map[string]map[string]model.Participant // key: auctionID -> userID
	events       map[string][]model.BidEvent         // key: auctionID, commit order
}

// NewMemoryLedger creates a new in-memory ledger instance
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		auctions:     make(map[string]model.Auction),
		participants: make(map[string]map[string]model.Participant),
		events:       make(map[string][]model.BidEvent),
	}
}

// CreateAuction stores a new auction and its BASE_PRICE event
func (l *MemoryLedger) CreateAuction(_ context.Context, auction model.Auction) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.auctions[auction.AuctionID]; ok {
		return fmt.Errorf("create auction %s: %w", auction.AuctionID, auctionerrors.ErrConflict)
	}

	l.auctions[auction.AuctionID] = auction
	l.events[auction.AuctionID] = append(l.events[auction.AuctionID], model.BidEvent{
		EventID:   utils.GenerateID(),
		AuctionID: auction.AuctionID,
		Kind:      model.EventBasePrice,
		Amount:    auction.BasePrice,
		CreatedAt: auction.CreatedAt,
	})
	return nil
}

// GetAuction returns a snapshot of a single auction
func (l *MemoryLedger) GetAuction(_ context.Context, auctionID string) (model.Auction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.getLocked(auctionID)
}

func (l *MemoryLedger) getLocked(auctionID string) (model.Auction, error) {
	auction, ok := l.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return auction, nil
}

// ListAuctions returns snapshots of all auctions ordered by creation time
func (l *MemoryLedger) ListAuctions(_ context.Context) ([]model.Auction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	auctions := make([]model.Auction, 0, len(l.auctions))
	for _, a := range l.auctions {
		auctions = append(auctions, a)
	}
	sort.Slice(auctions, func(i, j int) bool {
		if auctions[i].CreatedAt.Equal(auctions[j].CreatedAt) {
			return auctions[i].AuctionID < auctions[j].AuctionID
		}
		return auctions[i].CreatedAt.Before(auctions[j].CreatedAt)
	})
	return auctions, nil
}

// DeleteAuction removes an auction and cascades its participants and events
func (l *MemoryLedger) DeleteAuction(_ context.Context, auctionID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.auctions[auctionID]; !ok {
		return fmt.Errorf("delete auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	delete(l.auctions, auctionID)
	delete(l.participants, auctionID)
	delete(l.events, auctionID)
	return nil
}

// UpdateStatus applies a conditional single-row status transition
func (l *MemoryLedger) UpdateStatus(_ context.Context, auctionID string, from, to model.AuctionStatus) (model.Auction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	auction, err := l.getLocked(auctionID)
	if err != nil {
		return model.Auction{}, err
	}
	if auction.Status != from {
		return model.Auction{}, fmt.Errorf("update auction %s status %s->%s, currently %s: %w",
			auctionID, from, to, auction.Status, auctionerrors.ErrInvalidState)
	}

	auction.Status = to
	l.auctions[auctionID] = auction
	return auction, nil
}

// ActivateDue moves APPROVED auctions whose start date has passed to LIVE
func (l *MemoryLedger) ActivateDue(_ context.Context, now time.Time) ([]model.Auction, error) {
	return l.advanceDue(model.StatusApproved, model.StatusLive, func(a model.Auction) bool {
		return !a.StartDate.After(now)
	}), nil
}

// CloseDue moves LIVE auctions whose end date has passed to CLOSED
func (l *MemoryLedger) CloseDue(_ context.Context, now time.Time) ([]model.Auction, error) {
	return l.advanceDue(model.StatusLive, model.StatusClosed, func(a model.Auction) bool {
		return !a.EndDate.After(now)
	}), nil
}

func (l *MemoryLedger) advanceDue(from, to model.AuctionStatus, due func(model.Auction) bool) []model.Auction {
	l.mu.Lock()
	defer l.mu.Unlock()

	var advanced []model.Auction
	for id, auction := range l.auctions {
		if auction.Status != from || !due(auction) {
			continue
		}
		auction.Status = to
		l.auctions[id] = auction
		advanced = append(advanced, auction)
	}
	sort.Slice(advanced, func(i, j int) bool { return advanced[i].AuctionID < advanced[j].AuctionID })
	return advanced
}

// ApplyBid performs the compare-and-swap bid commit described on AuctionLedger
func (l *MemoryLedger) ApplyBid(_ context.Context, auctionID, userID string, amount, observedPrice decimal.Decimal, at time.Time) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	auction, err := l.getLocked(auctionID)
	if err != nil {
		return false, err
	}
	if auction.Status != model.StatusLive || !auction.CurrentPrice.Equal(observedPrice) {
		return false, nil
	}

	auction.CurrentPrice = amount
	l.auctions[auctionID] = auction

	if l.participants[auctionID] == nil {
		l.participants[auctionID] = make(map[string]model.Participant)
	}
	l.participants[auctionID][userID] = model.Participant{
		AuctionID: auctionID,
		UserID:    userID,
		Amount:    amount,
		UpdatedAt: at,
	}

	l.events[auctionID] = append(l.events[auctionID], model.BidEvent{
		EventID:   utils.GenerateID(),
		AuctionID: auctionID,
		Kind:      model.EventBidPlaced,
		UserID:    userID,
		Amount:    amount,
		CreatedAt: at,
	})
	return true, nil
}

// GetParticipant returns a user's current standing bid on an auction
func (l *MemoryLedger) GetParticipant(_ context.Context, auctionID, userID string) (model.Participant, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	p, ok := l.participants[auctionID][userID]
	if !ok {
		return model.Participant{}, fmt.Errorf("get participant %s for auction %s: %w",
			userID, auctionID, auctionerrors.ErrParticipantNotFound)
	}
	return p, nil
}

// ListParticipants returns all standing bids for an auction
func (l *MemoryLedger) ListParticipants(_ context.Context, auctionID string) ([]model.Participant, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	rows := make([]model.Participant, 0, len(l.participants[auctionID]))
	for _, p := range l.participants[auctionID] {
		rows = append(rows, p)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].UserID < rows[j].UserID })
	return rows, nil
}

// SetWinner records the winner and its audit event in one atomic step
func (l *MemoryLedger) SetWinner(_ context.Context, auctionID, winnerID, selectedBy, reason string, at time.Time, expectUnset bool) (model.Auction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	auction, err := l.getLocked(auctionID)
	if err != nil {
		return model.Auction{}, err
	}
	if auction.Status != model.StatusClosed {
		return model.Auction{}, fmt.Errorf("set winner for auction %s in status %s: %w",
			auctionID, auction.Status, auctionerrors.ErrInvalidState)
	}
	if expectUnset && auction.WinnerID != "" {
		return model.Auction{}, fmt.Errorf("auction %s already has winner %s: %w",
			auctionID, auction.WinnerID, auctionerrors.ErrInvalidState)
	}
	if !expectUnset && auction.WinnerID == "" {
		return model.Auction{}, fmt.Errorf("auction %s has no winner to change: %w",
			auctionID, auctionerrors.ErrInvalidState)
	}
	participant, ok := l.participants[auctionID][winnerID]
	if !ok {
		return model.Auction{}, fmt.Errorf("user %s did not participate in auction %s: %w",
			winnerID, auctionID, auctionerrors.ErrParticipantNotFound)
	}

	auction.WinnerID = winnerID
	l.auctions[auctionID] = auction

	l.events[auctionID] = append(l.events[auctionID], model.BidEvent{
		EventID:   utils.GenerateID(),
		AuctionID: auctionID,
		Kind:      model.EventWinnerSelected,
		UserID:    winnerID,
		Amount:    participant.Amount,
		Actor:     selectedBy,
		Reason:    reason,
		CreatedAt: at,
	})
	return auction, nil
}

// SetGatePass replaces the gate pass reference, last write wins
func (l *MemoryLedger) SetGatePass(_ context.Context, auctionID, ref, uploadedBy string, at time.Time) (model.Auction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	auction, err := l.getLocked(auctionID)
	if err != nil {
		return model.Auction{}, err
	}
	if auction.Status != model.StatusClosed || auction.WinnerID == "" {
		return model.Auction{}, fmt.Errorf("set gate pass for auction %s: %w",
			auctionID, auctionerrors.ErrInvalidState)
	}

	uploadedAt := at
	auction.GatePassRef = ref
	auction.GatePassUploadedBy = uploadedBy
	auction.GatePassUploadedAt = &uploadedAt
	l.auctions[auctionID] = auction
	return auction, nil
}

// ListEvents returns the audit trail for an auction in commit order
func (l *MemoryLedger) ListEvents(_ context.Context, auctionID string) ([]model.BidEvent, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if _, ok := l.auctions[auctionID]; !ok {
		return nil, fmt.Errorf("list events for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return append([]model.BidEvent(nil), l.events[auctionID]...), nil
}
