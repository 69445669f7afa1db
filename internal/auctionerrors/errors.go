package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound     = errors.New("auction not found")
	ErrParticipantNotFound = errors.New("participant not found")
)

// business logic errors
var (
	ErrInvalidState = errors.New("operation not allowed in current auction status")
	ErrValidation   = errors.New("invalid request")
	ErrBidTooLow    = errors.New("bid amount below required minimum")
	ErrForbidden    = errors.New("caller is not allowed to perform this operation")
	ErrConflict     = errors.New("concurrent update conflict")
)
