package auction

import (
	"context"
	"testing"
	"time"

	"waste-auction/internal/clock"
	model "waste-auction/internal/models"
	"waste-auction/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func seedForSweep(t *testing.T, ledger *repository.MemoryLedger, id string, status model.AuctionStatus, start, end time.Time) {
	t.Helper()
	price := decimal.NewFromInt(100)
	auction := model.Auction{
		AuctionID:           id,
		LotName:             id + " lot",
		Status:              model.StatusPending,
		BasePrice:           price,
		CurrentPrice:        price,
		MinIncrementPercent: decimal.NewFromInt(5),
		StartDate:           start,
		EndDate:             end,
		CreatorID:           "creator1",
		CreatedAt:           testNow.Add(-24 * time.Hour),
	}
	require.NoError(t, ledger.CreateAuction(context.Background(), auction))
	if status != model.StatusPending {
		steps := map[model.AuctionStatus][]model.AuctionStatus{
			model.StatusApproved: {model.StatusApproved},
			model.StatusLive:     {model.StatusApproved, model.StatusLive},
			model.StatusClosed:   {model.StatusApproved, model.StatusLive, model.StatusClosed},
		}
		prev := model.StatusPending
		for _, next := range steps[status] {
			_, err := ledger.UpdateStatus(context.Background(), id, prev, next)
			require.NoError(t, err)
			prev = next
		}
	}
}

func TestSweeper_SweepNow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ledger := repository.NewMemoryLedger()
	sink := &recordingSink{}
	sweeper := NewSweeper(ledger, sink, clock.NewFixed(testNow), time.Minute)

	// due for activation, due for close, and one of each not yet due
	seedForSweep(t, ledger, "activate-me", model.StatusApproved, testNow.Add(-time.Minute), testNow.Add(time.Hour))
	seedForSweep(t, ledger, "not-yet", model.StatusApproved, testNow.Add(time.Minute), testNow.Add(time.Hour))
	seedForSweep(t, ledger, "close-me", model.StatusLive, testNow.Add(-2*time.Hour), testNow.Add(-time.Minute))
	seedForSweep(t, ledger, "still-live", model.StatusLive, testNow.Add(-2*time.Hour), testNow.Add(time.Hour))
	seedForSweep(t, ledger, "ignored-pending", model.StatusPending, testNow.Add(-time.Hour), testNow.Add(time.Hour))

	counts, err := sweeper.SweepNow(ctx)
	require.NoError(t, err)
	require.Equal(t, SweepCounts{Activated: 1, Closed: 1}, counts)

	activated, err := ledger.GetAuction(ctx, "activate-me")
	require.NoError(t, err)
	require.Equal(t, model.StatusLive, activated.Status)

	closed, err := ledger.GetAuction(ctx, "close-me")
	require.NoError(t, err)
	require.Equal(t, model.StatusClosed, closed.Status)

	require.Len(t, sink.events, 2)
	for _, event := range sink.events {
		require.Equal(t, EventTypeStatusChanged, event.Type)
	}

	// a repeated sweep is a no-op (idempotence)
	counts, err = sweeper.SweepNow(ctx)
	require.NoError(t, err)
	require.Equal(t, SweepCounts{}, counts)
	require.Len(t, sink.events, 2)
}

// An auction activated in the same sweep also closes if its end date passed
func TestSweeper_ActivateThenCloseInOneSweep(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ledger := repository.NewMemoryLedger()
	sweeper := NewSweeper(ledger, noEvent, clock.NewFixed(testNow), time.Minute)

	seedForSweep(t, ledger, "expired", model.StatusApproved, testNow.Add(-2*time.Hour), testNow.Add(-time.Hour))

	counts, err := sweeper.SweepNow(ctx)
	require.NoError(t, err)
	require.Equal(t, SweepCounts{Activated: 1, Closed: 1}, counts)

	auction, err := ledger.GetAuction(ctx, "expired")
	require.NoError(t, err)
	require.Equal(t, model.StatusClosed, auction.Status)
}

func TestSweeper_RunStopsOnContextCancel(t *testing.T) {
	t.Parallel()
	ledger := repository.NewMemoryLedger()
	sweeper := NewSweeper(ledger, noEvent, clock.NewSystem(), 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after context cancellation")
	}
}
