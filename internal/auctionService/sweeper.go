package auction

import (
	"context"
	"time"

	"waste-auction/internal/clock"
	model "waste-auction/internal/models"
	"waste-auction/internal/repository"
	"waste-auction/utils"
)

// SweepCounts reports how many auctions each sweep advanced
type SweepCounts struct {
	Activated int `json:"activated"`
	Closed    int `json:"closed"`
}

// Sweeper advances auctions through the time-driven transitions
// APPROVED->LIVE and LIVE->CLOSED. Both sweeps are set-based conditional
// updates, so overlapping runs (timer plus manual refresh) are harmless.
type Sweeper struct {
	ledger   repository.AuctionLedger
	sink     EventSink
	clock    clock.Clock
	interval time.Duration
}

// NewSweeper creates a new Sweeper instance
func NewSweeper(ledger repository.AuctionLedger, sink EventSink, clk clock.Clock, interval time.Duration) *Sweeper {
	return &Sweeper{
		ledger:   ledger,
		sink:     sink,
		clock:    clk,
		interval: interval,
	}
}

// Run executes a sweep on every tick until the context is cancelled.
// A failed sweep is logged and retried on the next tick.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.SweepNow(ctx); err != nil {
				utils.Error("status sweep failed", map[string]any{"error": err.Error()})
			}
		}
	}
}

// SweepNow runs both sweeps once, synchronously, and returns the transition
// counts. Safe to call concurrently with the timer-driven sweep.
func (s *Sweeper) SweepNow(ctx context.Context) (SweepCounts, error) {
	now := s.clock.Now()
	var counts SweepCounts

	activated, err := s.ledger.ActivateDue(ctx, now)
	if err != nil {
		return counts, err
	}
	counts.Activated = len(activated)
	s.publishTransitions(activated, model.StatusApproved, model.StatusLive)

	closed, err := s.ledger.CloseDue(ctx, now)
	if err != nil {
		return counts, err
	}
	counts.Closed = len(closed)
	s.publishTransitions(closed, model.StatusLive, model.StatusClosed)

	return counts, nil
}

func (s *Sweeper) publishTransitions(auctions []model.Auction, from, to model.AuctionStatus) {
	for _, auction := range auctions {
		safePublish(s.sink, Event{
			Type:      EventTypeStatusChanged,
			Auction:   auction,
			OldStatus: from,
			NewStatus: to,
		})
	}
}
