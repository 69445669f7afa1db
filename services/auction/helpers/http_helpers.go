package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"waste-auction/internal/auctionerrors"
	"waste-auction/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusBadRequest, "bid amount below required minimum"
	case errors.Is(err, auctionerrors.ErrValidation):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, auctionerrors.ErrInvalidState):
		return http.StatusConflict, "operation not allowed in current auction state"
	case errors.Is(err, auctionerrors.ErrForbidden):
		return http.StatusForbidden, "caller is not allowed to perform this operation"
	case errors.Is(err, auctionerrors.ErrConflict):
		return http.StatusConflict, "concurrent update conflict, please retry"
	case errors.Is(err, auctionerrors.ErrParticipantNotFound):
		return http.StatusNotFound, "participant not found"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
