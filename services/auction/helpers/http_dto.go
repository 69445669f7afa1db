package helpers

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request/Response DTOs
type CreateAuctionRequest struct {
	LotName             string          `json:"lot_name" binding:"required"`
	BasePrice           decimal.Decimal `json:"base_price"`
	MinIncrementPercent decimal.Decimal `json:"min_increment_percent"`
	StartDate           time.Time       `json:"start_date" binding:"required"`
	EndDate             time.Time       `json:"end_date" binding:"required"`
	CreatorID           string          `json:"creator_id" binding:"required"`
}

type PlaceBidRequest struct {
	UserID string          `json:"user_id" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

type PlaceBidResponse struct {
	Accepted        bool            `json:"accepted"`
	NewCurrentPrice decimal.Decimal `json:"new_current_price"`
}

type SelectWinnerRequest struct {
	WinnerID   string `json:"winner_id" binding:"required"`
	SelectedBy string `json:"selected_by" binding:"required"`
}

type ChangeWinnerRequest struct {
	NewWinnerID string `json:"new_winner_id" binding:"required"`
	ChangedBy   string `json:"changed_by" binding:"required"`
	Reason      string `json:"reason"`
}

type UploadGatePassRequest struct {
	UploaderID  string `json:"uploader_id" binding:"required"`
	GatePassRef string `json:"gate_pass_ref" binding:"required"`
}

type GatePassResponse struct {
	GatePassRef string `json:"gate_pass_ref"`
}
