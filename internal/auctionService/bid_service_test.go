package auction

import (
	"context"
	"testing"
	"time"

	"waste-auction/internal/auctionerrors"
	"waste-auction/internal/clock"
	model "waste-auction/internal/models"
	"waste-auction/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	noEvent = discardSink{}
)

type discardSink struct{}

func (discardSink) Publish(Event) {}

// recordingSink captures published events for assertions
type recordingSink struct {
	events []Event
}

func (r *recordingSink) Publish(event Event) {
	r.events = append(r.events, event)
}

func liveAuction(current string) model.Auction {
	price := decimal.RequireFromString(current)
	return model.Auction{
		AuctionID:           "a1",
		LotName:             "scrap metal lot",
		Status:              model.StatusLive,
		BasePrice:           decimal.RequireFromString("1000"),
		CurrentPrice:        price,
		MinIncrementPercent: decimal.NewFromInt(5),
		StartDate:           testNow.Add(-time.Hour),
		EndDate:             testNow.Add(time.Hour),
		CreatorID:           "creator1",
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Tests PlaceBid
func TestBidService_PlaceBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockLedger := repository.NewMockAuctionLedger(ctrl)
	service := NewBidService(mockLedger, noEvent, clock.NewFixed(testNow))

	noParticipant := func() {
		mockLedger.EXPECT().GetParticipant(ctx, "a1", gomock.Any()).
			Return(model.Participant{}, auctionerrors.ErrParticipantNotFound)
	}

	tests := []struct {
		name          string
		auctionID     string
		userID        string
		amount        decimal.Decimal
		mockSetup     func()
		expectedError error
	}{
		{
			name:      "valid_first_bid",
			auctionID: "a1",
			userID:    "user1",
			amount:    dec("1050"),
			mockSetup: func() {
				mockLedger.EXPECT().GetAuction(ctx, "a1").Return(liveAuction("1000"), nil)
				noParticipant()
				mockLedger.EXPECT().ApplyBid(ctx, "a1", "user1", dec("1050"), dec("1000"), testNow).Return(true, nil)
			},
		},
		{
			name:          "empty_auctionID",
			auctionID:     "",
			userID:        "user1",
			amount:        dec("1050"),
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrValidation,
		},
		{
			name:          "empty_userID",
			auctionID:     "a1",
			userID:        "",
			amount:        dec("1050"),
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrValidation,
		},
		{
			name:          "zero_amount",
			auctionID:     "a1",
			userID:        "user1",
			amount:        decimal.Zero,
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrValidation,
		},
		{
			name:          "negative_amount",
			auctionID:     "a1",
			userID:        "user1",
			amount:        dec("-50"),
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrValidation,
		},
		{
			name:      "auction_not_found",
			auctionID: "a1",
			userID:    "user1",
			amount:    dec("1050"),
			mockSetup: func() {
				mockLedger.EXPECT().GetAuction(ctx, "a1").
					Return(model.Auction{}, auctionerrors.ErrAuctionNotFound)
			},
			expectedError: auctionerrors.ErrAuctionNotFound,
		},
		{
			name:      "auction_not_live",
			auctionID: "a1",
			userID:    "user1",
			amount:    dec("1050"),
			mockSetup: func() {
				closed := liveAuction("1000")
				closed.Status = model.StatusClosed
				mockLedger.EXPECT().GetAuction(ctx, "a1").Return(closed, nil)
			},
			expectedError: auctionerrors.ErrInvalidState,
		},
		{
			name:      "bid_below_minimum_increment",
			auctionID: "a1",
			userID:    "user1",
			amount:    dec("1049.99"),
			mockSetup: func() {
				mockLedger.EXPECT().GetAuction(ctx, "a1").Return(liveAuction("1000"), nil)
			},
			expectedError: auctionerrors.ErrBidTooLow,
		},
		{
			name:      "bid_exactly_at_minimum",
			auctionID: "a1",
			userID:    "user1",
			amount:    dec("1050.00"),
			mockSetup: func() {
				mockLedger.EXPECT().GetAuction(ctx, "a1").Return(liveAuction("1000"), nil)
				noParticipant()
				mockLedger.EXPECT().ApplyBid(ctx, "a1", "user1", dec("1050.00"), dec("1000"), testNow).Return(true, nil)
			},
		},
		{
			name:      "cannot_lower_own_bid",
			auctionID: "a1",
			userID:    "user1",
			amount:    dec("1100"),
			mockSetup: func() {
				// user1's standing bid is already 1100; re-bidding the same amount is a tie
				mockLedger.EXPECT().GetAuction(ctx, "a1").Return(liveAuction("1000"), nil)
				mockLedger.EXPECT().GetParticipant(ctx, "a1", "user1").
					Return(model.Participant{AuctionID: "a1", UserID: "user1", Amount: dec("1100")}, nil)
			},
			expectedError: auctionerrors.ErrValidation,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()
			result, err := service.PlaceBid(ctx, tc.auctionID, tc.userID, tc.amount)
			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			require.True(t, result.Accepted)
			require.True(t, result.NewCurrentPrice.Equal(tc.amount))
		})
	}
}

// A lost race re-validates against the refreshed price and retries
func TestBidService_PlaceBid_RetriesOnLostRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockLedger := repository.NewMockAuctionLedger(ctrl)
	sink := &recordingSink{}
	service := NewBidService(mockLedger, sink, clock.NewFixed(testNow))

	// first attempt observes 1000 and loses; second observes 1050 and wins
	gomock.InOrder(
		mockLedger.EXPECT().GetAuction(ctx, "a1").Return(liveAuction("1000"), nil),
		mockLedger.EXPECT().GetParticipant(ctx, "a1", "user2").
			Return(model.Participant{}, auctionerrors.ErrParticipantNotFound),
		mockLedger.EXPECT().ApplyBid(ctx, "a1", "user2", dec("1200"), dec("1000"), testNow).Return(false, nil),
		mockLedger.EXPECT().GetAuction(ctx, "a1").Return(liveAuction("1050"), nil),
		mockLedger.EXPECT().GetParticipant(ctx, "a1", "user2").
			Return(model.Participant{}, auctionerrors.ErrParticipantNotFound),
		mockLedger.EXPECT().ApplyBid(ctx, "a1", "user2", dec("1200"), dec("1050"), testNow).Return(true, nil),
	)

	result, err := service.PlaceBid(ctx, "a1", "user2", dec("1200"))
	require.NoError(t, err)
	require.True(t, result.Accepted)
	require.Len(t, sink.events, 1)
	require.Equal(t, EventTypeBidPlaced, sink.events[0].Type)
	require.True(t, sink.events[0].Auction.CurrentPrice.Equal(dec("1200")))
}

// Exhausting every attempt surfaces a conflict
func TestBidService_PlaceBid_ConflictAfterRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockLedger := repository.NewMockAuctionLedger(ctrl)
	service := NewBidService(mockLedger, noEvent, clock.NewFixed(testNow))

	mockLedger.EXPECT().GetAuction(ctx, "a1").Return(liveAuction("1000"), nil).Times(maxBidAttempts)
	mockLedger.EXPECT().GetParticipant(ctx, "a1", "user1").
		Return(model.Participant{}, auctionerrors.ErrParticipantNotFound).Times(maxBidAttempts)
	mockLedger.EXPECT().ApplyBid(ctx, "a1", "user1", dec("9999"), dec("1000"), testNow).
		Return(false, nil).Times(maxBidAttempts)

	_, err := service.PlaceBid(ctx, "a1", "user1", dec("9999"))
	require.ErrorIs(t, err, auctionerrors.ErrConflict)
}

// A bid racing the close sweep observes the closed status on its re-read
func TestBidService_PlaceBid_ClosedDuringRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockLedger := repository.NewMockAuctionLedger(ctrl)
	service := NewBidService(mockLedger, noEvent, clock.NewFixed(testNow))

	closed := liveAuction("1000")
	closed.Status = model.StatusClosed
	gomock.InOrder(
		mockLedger.EXPECT().GetAuction(ctx, "a1").Return(liveAuction("1000"), nil),
		mockLedger.EXPECT().GetParticipant(ctx, "a1", "user1").
			Return(model.Participant{}, auctionerrors.ErrParticipantNotFound),
		mockLedger.EXPECT().ApplyBid(ctx, "a1", "user1", dec("1050"), dec("1000"), testNow).Return(false, nil),
		mockLedger.EXPECT().GetAuction(ctx, "a1").Return(closed, nil),
	)

	_, err := service.PlaceBid(ctx, "a1", "user1", dec("1050"))
	require.ErrorIs(t, err, auctionerrors.ErrInvalidState)
}
