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
)

// BlobStore is the external artifact storage collaborator. Only deletion of
// superseded gate pass files is needed here; uploads happen upstream.
type BlobStore interface {
	Delete(ctx context.Context, ref string) error
}

// NoopBlobStore discards deletions; used when no artifact store is wired
type NoopBlobStore struct{}

func (NoopBlobStore) Delete(context.Context, string) error { return nil }

// GatePass is the document reference authorizing physical pickup
type GatePass struct {
	GatePassRef string    `json:"gate_pass_ref"`
	UploadedBy  string    `json:"uploaded_by"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// GatePassService manages the pass document attached to a closed, won auction
type GatePassService struct {
	ledger repository.AuctionLedger
	blobs  BlobStore
	clock  clock.Clock
}

// NewGatePassService creates a new GatePassService instance
func NewGatePassService(ledger repository.AuctionLedger, blobs BlobStore, clk clock.Clock) *GatePassService {
	return &GatePassService{
		ledger: ledger,
		blobs:  blobs,
		clock:  clk,
	}
}

// Upload records a new gate pass reference. Only the auction's creator or an
// administrator may upload; a superseded artifact is deleted best-effort, and
// two concurrent uploads resolve to last write wins.
func (s *GatePassService) Upload(ctx context.Context, auctionID, uploaderID, newRef string, isAdmin bool) (GatePass, error) {
	if auctionID == "" || uploaderID == "" || newRef == "" {
		return GatePass{}, fmt.Errorf("service: %w - missing auctionID, uploaderID or reference", auctionerrors.ErrValidation)
	}

	auction, err := s.ledger.GetAuction(ctx, auctionID)
	if err != nil {
		return GatePass{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}
	if auction.Status != model.StatusClosed || auction.WinnerID == "" {
		return GatePass{}, fmt.Errorf("service: auction %s needs to be CLOSED with a winner before a gate pass: %w",
			auctionID, auctionerrors.ErrInvalidState)
	}
	if !isAdmin && uploaderID != auction.CreatorID {
		return GatePass{}, fmt.Errorf("service: user %s may not upload a gate pass for auction %s: %w",
			uploaderID, auctionID, auctionerrors.ErrForbidden)
	}

	if auction.GatePassRef != "" {
		if err := s.blobs.Delete(ctx, auction.GatePassRef); err != nil {
			utils.Warn("failed to delete superseded gate pass artifact", map[string]any{
				"auction_id": auctionID,
				"ref":        auction.GatePassRef,
				"error":      err.Error(),
			})
		}
	}

	updated, err := s.ledger.SetGatePass(ctx, auctionID, newRef, uploaderID, s.clock.Now())
	if err != nil {
		return GatePass{}, fmt.Errorf("service: failed to record gate pass for auction %s: %w", auctionID, err)
	}
	return GatePass{
		GatePassRef: updated.GatePassRef,
		UploadedBy:  updated.GatePassUploadedBy,
		UploadedAt:  *updated.GatePassUploadedAt,
	}, nil
}

// Get returns the gate pass reference. Only the creator or the winner may read it.
func (s *GatePassService) Get(ctx context.Context, auctionID, callerID string) (string, error) {
	if auctionID == "" || callerID == "" {
		return "", fmt.Errorf("service: %w - missing auctionID or callerID", auctionerrors.ErrValidation)
	}

	auction, err := s.ledger.GetAuction(ctx, auctionID)
	if err != nil {
		return "", fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}
	if callerID != auction.CreatorID && callerID != auction.WinnerID {
		return "", fmt.Errorf("service: user %s may not read the gate pass for auction %s: %w",
			callerID, auctionID, auctionerrors.ErrForbidden)
	}
	return auction.GatePassRef, nil
}
