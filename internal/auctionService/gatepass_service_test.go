package auction

import (
	"context"
	"errors"
	"testing"

	"waste-auction/internal/auctionerrors"
	"waste-auction/internal/clock"
	"waste-auction/internal/repository"

	"github.com/stretchr/testify/require"
)

// failingBlobStore always errors, to exercise the best-effort delete path
type failingBlobStore struct {
	calls []string
}

func (f *failingBlobStore) Delete(_ context.Context, ref string) error {
	f.calls = append(f.calls, ref)
	return errors.New("blob store unavailable")
}

// wonAuction returns a CLOSED auction with user2 selected as winner.
// The creator is "creator1" from validCreateInput.
func wonAuction(t *testing.T, ledger *repository.MemoryLedger) string {
	t.Helper()
	auctionID := closedAuctionWithBids(t, ledger)
	winners := NewWinnerService(ledger, noEvent, clock.NewFixed(testNow))
	_, err := winners.SelectWinner(context.Background(), auctionID, "user2", "admin1")
	require.NoError(t, err)
	return auctionID
}

func TestGatePassService_Upload(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ledger := repository.NewMemoryLedger()
	service := NewGatePassService(ledger, NoopBlobStore{}, clock.NewFixed(testNow))

	t.Run("closed_without_winner_rejected", func(t *testing.T) {
		auctionID := closedAuctionWithBids(t, ledger)
		_, err := service.Upload(ctx, auctionID, "creator1", "passes/a.pdf", false)
		require.ErrorIs(t, err, auctionerrors.ErrInvalidState)
	})

	auctionID := wonAuction(t, ledger)

	t.Run("non_creator_forbidden", func(t *testing.T) {
		_, err := service.Upload(ctx, auctionID, "user2", "passes/a.pdf", false)
		require.ErrorIs(t, err, auctionerrors.ErrForbidden)
	})

	t.Run("creator_uploads", func(t *testing.T) {
		pass, err := service.Upload(ctx, auctionID, "creator1", "passes/a.pdf", false)
		require.NoError(t, err)
		require.Equal(t, "passes/a.pdf", pass.GatePassRef)
		require.Equal(t, "creator1", pass.UploadedBy)
		require.Equal(t, testNow, pass.UploadedAt)
	})

	t.Run("admin_replaces_last_write_wins", func(t *testing.T) {
		pass, err := service.Upload(ctx, auctionID, "admin1", "passes/b.pdf", true)
		require.NoError(t, err)
		require.Equal(t, "passes/b.pdf", pass.GatePassRef)

		auction, err := ledger.GetAuction(ctx, auctionID)
		require.NoError(t, err)
		require.Equal(t, "passes/b.pdf", auction.GatePassRef)
		require.Equal(t, "admin1", auction.GatePassUploadedBy)
	})

	t.Run("missing_auction", func(t *testing.T) {
		_, err := service.Upload(ctx, "ghost", "creator1", "passes/a.pdf", false)
		require.ErrorIs(t, err, auctionerrors.ErrAuctionNotFound)
	})
}

func TestGatePassService_UploadSurvivesBlobDeleteFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ledger := repository.NewMemoryLedger()
	blobs := &failingBlobStore{}
	service := NewGatePassService(ledger, blobs, clock.NewFixed(testNow))
	auctionID := wonAuction(t, ledger)

	_, err := service.Upload(ctx, auctionID, "creator1", "passes/v1.pdf", false)
	require.NoError(t, err)
	require.Empty(t, blobs.calls) // nothing to supersede on the first upload

	pass, err := service.Upload(ctx, auctionID, "creator1", "passes/v2.pdf", false)
	require.NoError(t, err)
	require.Equal(t, "passes/v2.pdf", pass.GatePassRef)
	require.Equal(t, []string{"passes/v1.pdf"}, blobs.calls)
}

func TestGatePassService_Get(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ledger := repository.NewMemoryLedger()
	service := NewGatePassService(ledger, NoopBlobStore{}, clock.NewFixed(testNow))
	auctionID := wonAuction(t, ledger)

	_, err := service.Upload(ctx, auctionID, "creator1", "passes/final.pdf", false)
	require.NoError(t, err)

	t.Run("winner_reads", func(t *testing.T) {
		ref, err := service.Get(ctx, auctionID, "user2")
		require.NoError(t, err)
		require.Equal(t, "passes/final.pdf", ref)
	})

	t.Run("creator_reads", func(t *testing.T) {
		ref, err := service.Get(ctx, auctionID, "creator1")
		require.NoError(t, err)
		require.Equal(t, "passes/final.pdf", ref)
	})

	t.Run("losing_bidder_forbidden", func(t *testing.T) {
		_, err := service.Get(ctx, auctionID, "user1")
		require.ErrorIs(t, err, auctionerrors.ErrForbidden)
	})

	t.Run("empty_caller_rejected", func(t *testing.T) {
		_, err := service.Get(ctx, auctionID, "")
		require.ErrorIs(t, err, auctionerrors.ErrValidation)
	})
}
