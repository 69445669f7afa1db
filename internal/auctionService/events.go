package auction

import (
	"fmt"

	model "waste-auction/internal/models"
	"waste-auction/utils"
)

// Event types pushed to subscribers after a mutation commits
const (
	EventTypeBidPlaced      = "bid_placed"
	EventTypeStatusChanged  = "status_changed"
	EventTypeWinnerSelected = "winner_selected"
	EventTypeWinnerChanged  = "winner_changed"
)

// Event is a committed state change broadcast to subscribers. Delivery is
// best-effort: the engine never depends on it succeeding.
type Event struct {
	Type           string              `json:"type"`
	Auction        model.Auction       `json:"auction"`
	OldStatus      model.AuctionStatus `json:"old_status,omitempty"`
	NewStatus      model.AuctionStatus `json:"new_status,omitempty"`
	Winner         string              `json:"winner,omitempty"`
	PreviousWinner string              `json:"previous_winner,omitempty"`
	SelectedBy     string              `json:"selected_by,omitempty"`
	Reason         string              `json:"reason,omitempty"`
}

// EventSink receives committed state changes. Implementations must not block
// the caller; a slow or failing sink is the sink's problem, not the engine's.
type EventSink interface {
	Publish(event Event)
}

// LogSink writes every event to the structured log
type LogSink struct{}

func (LogSink) Publish(event Event) {
	utils.Info("auction event", map[string]any{
		"type":       event.Type,
		"auction_id": event.Auction.AuctionID,
		"status":     event.Auction.Status,
		"winner":     event.Winner,
	})
}

// MultiSink fans an event out to several sinks in order
type MultiSink []EventSink

func (m MultiSink) Publish(event Event) {
	for _, sink := range m {
		sink.Publish(event)
	}
}

// safePublish delivers an event after a mutation has committed. A panicking
// sink is logged and swallowed; it must never undo the committed change.
func safePublish(sink EventSink, event Event) {
	defer func() {
		if r := recover(); r != nil {
			utils.Error("event publish failed", map[string]any{
				"type":       event.Type,
				"auction_id": event.Auction.AuctionID,
				"panic":      fmt.Sprint(r),
			})
		}
	}()
	sink.Publish(event)
}
