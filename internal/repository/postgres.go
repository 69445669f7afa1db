package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"waste-auction/internal/auctionerrors"
	model "waste-auction/internal/models"
	"waste-auction/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PostgresLedger is the durable AuctionLedger backed by PostgreSQL. Every
// conditional update is a single guarded SQL statement, so the discipline
// holds even with several server processes on the same database.
type PostgresLedger struct {
	db *pgxpool.Pool
}

// NewPostgresLedger creates a new PostgresLedger instance
func NewPostgresLedger(db *pgxpool.Pool) *PostgresLedger {
	return &PostgresLedger{db: db}
}

const auctionColumns = `id, lot_name, status, base_price, current_price, min_increment_percent,
	start_date, end_date, creator_id, winner_id, gate_pass_ref, gate_pass_uploaded_by,
	gate_pass_uploaded_at, created_at`

func scanAuction(row pgx.Row) (model.Auction, error) {
	var (
		a                                    model.Auction
		basePrice, currentPrice, increment   string
		winner, passRef, passBy              *string
		passAt                               *time.Time
	)
	err := row.Scan(&a.AuctionID, &a.LotName, &a.Status, &basePrice, &currentPrice, &increment,
		&a.StartDate, &a.EndDate, &a.CreatorID, &winner, &passRef, &passBy, &passAt, &a.CreatedAt)
	if err != nil {
		return model.Auction{}, err
	}

	if a.BasePrice, err = decimal.NewFromString(basePrice); err != nil {
		return model.Auction{}, fmt.Errorf("invalid base_price %q: %w", basePrice, err)
	}
	if a.CurrentPrice, err = decimal.NewFromString(currentPrice); err != nil {
		return model.Auction{}, fmt.Errorf("invalid current_price %q: %w", currentPrice, err)
	}
	if a.MinIncrementPercent, err = decimal.NewFromString(increment); err != nil {
		return model.Auction{}, fmt.Errorf("invalid min_increment_percent %q: %w", increment, err)
	}
	if winner != nil {
		a.WinnerID = *winner
	}
	if passRef != nil {
		a.GatePassRef = *passRef
	}
	if passBy != nil {
		a.GatePassUploadedBy = *passBy
	}
	a.GatePassUploadedAt = passAt
	return a, nil
}

// CreateAuction inserts the auction and its BASE_PRICE event in one transaction
func (l *PostgresLedger) CreateAuction(ctx context.Context, auction model.Auction) error {
	return l.withTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO auctions (id, lot_name, status, base_price, current_price,
				min_increment_percent, start_date, end_date, creator_id, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			auction.AuctionID, auction.LotName, auction.Status,
			auction.BasePrice.String(), auction.CurrentPrice.String(),
			auction.MinIncrementPercent.String(),
			auction.StartDate, auction.EndDate, auction.CreatorID, auction.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert auction %s: %w", auction.AuctionID, err)
		}
		return insertEvent(ctx, tx, model.BidEvent{
			EventID:   utils.GenerateID(),
			AuctionID: auction.AuctionID,
			Kind:      model.EventBasePrice,
			Amount:    auction.BasePrice,
			CreatedAt: auction.CreatedAt,
		})
	})
}

// GetAuction returns a snapshot of a single auction
func (l *PostgresLedger) GetAuction(ctx context.Context, auctionID string) (model.Auction, error) {
	row := l.db.QueryRow(ctx, `SELECT `+auctionColumns+` FROM auctions WHERE id = $1`, auctionID)
	auction, err := scanAuction(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if err != nil {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, err)
	}
	return auction, nil
}

// ListAuctions returns snapshots of all auctions ordered by creation time
func (l *PostgresLedger) ListAuctions(ctx context.Context) ([]model.Auction, error) {
	rows, err := l.db.Query(ctx, `SELECT `+auctionColumns+` FROM auctions ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list auctions: %w", err)
	}
	defer rows.Close()

	var auctions []model.Auction
	for rows.Next() {
		auction, err := scanAuction(rows)
		if err != nil {
			return nil, fmt.Errorf("list auctions: %w", err)
		}
		auctions = append(auctions, auction)
	}
	return auctions, rows.Err()
}

// DeleteAuction removes an auction; participants and events cascade via FK
func (l *PostgresLedger) DeleteAuction(ctx context.Context, auctionID string) error {
	tag, err := l.db.Exec(ctx, `DELETE FROM auctions WHERE id = $1`, auctionID)
	if err != nil {
		return fmt.Errorf("delete auction %s: %w", auctionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return nil
}

// UpdateStatus applies a conditional single-row status transition
func (l *PostgresLedger) UpdateStatus(ctx context.Context, auctionID string, from, to model.AuctionStatus) (model.Auction, error) {
	row := l.db.QueryRow(ctx, `
		UPDATE auctions SET status = $1
		WHERE id = $2 AND status = $3
		RETURNING `+auctionColumns, to, auctionID, from)
	auction, err := scanAuction(row)
	if errors.Is(err, pgx.ErrNoRows) {
		// Distinguish a missing auction from a status mismatch.
		if _, getErr := l.GetAuction(ctx, auctionID); getErr != nil {
			return model.Auction{}, getErr
		}
		return model.Auction{}, fmt.Errorf("update auction %s status %s->%s: %w",
			auctionID, from, to, auctionerrors.ErrInvalidState)
	}
	if err != nil {
		return model.Auction{}, fmt.Errorf("update auction %s status: %w", auctionID, err)
	}
	return auction, nil
}

// ActivateDue moves APPROVED auctions whose start date has passed to LIVE
func (l *PostgresLedger) ActivateDue(ctx context.Context, now time.Time) ([]model.Auction, error) {
	return l.advanceDue(ctx, `
		UPDATE auctions SET status = 'LIVE'
		WHERE status = 'APPROVED' AND start_date <= $1
		RETURNING `+auctionColumns, now)
}

// CloseDue moves LIVE auctions whose end date has passed to CLOSED
func (l *PostgresLedger) CloseDue(ctx context.Context, now time.Time) ([]model.Auction, error) {
	return l.advanceDue(ctx, `
		UPDATE auctions SET status = 'CLOSED'
		WHERE status = 'LIVE' AND end_date <= $1
		RETURNING `+auctionColumns, now)
}

func (l *PostgresLedger) advanceDue(ctx context.Context, query string, now time.Time) ([]model.Auction, error) {
	rows, err := l.db.Query(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("advance due auctions: %w", err)
	}
	defer rows.Close()

	var advanced []model.Auction
	for rows.Next() {
		auction, err := scanAuction(rows)
		if err != nil {
			return nil, fmt.Errorf("advance due auctions: %w", err)
		}
		advanced = append(advanced, auction)
	}
	return advanced, rows.Err()
}

// ApplyBid performs the compare-and-swap bid commit described on AuctionLedger
func (l *PostgresLedger) ApplyBid(ctx context.Context, auctionID, userID string, amount, observedPrice decimal.Decimal, at time.Time) (bool, error) {
	applied := false
	err := l.withTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE auctions SET current_price = $1
			WHERE id = $2 AND current_price = $3 AND status = 'LIVE'`,
			amount.String(), auctionID, observedPrice.String())
		if err != nil {
			return fmt.Errorf("apply bid price update: %w", err)
		}
		if tag.RowsAffected() == 0 {
			var exists bool
			if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM auctions WHERE id = $1)`, auctionID).Scan(&exists); err != nil {
				return fmt.Errorf("apply bid existence check: %w", err)
			}
			if !exists {
				return fmt.Errorf("apply bid for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
			}
			return nil // guard did not match, caller re-reads
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO participants (auction_id, user_id, amount, updated_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (auction_id, user_id)
			DO UPDATE SET amount = EXCLUDED.amount, updated_at = EXCLUDED.updated_at`,
			auctionID, userID, amount.String(), at)
		if err != nil {
			return fmt.Errorf("apply bid participant upsert: %w", err)
		}

		if err := insertEvent(ctx, tx, model.BidEvent{
			EventID:   utils.GenerateID(),
			AuctionID: auctionID,
			Kind:      model.EventBidPlaced,
			UserID:    userID,
			Amount:    amount,
			CreatedAt: at,
		}); err != nil {
			return err
		}
		applied = true
		return nil
	})
	return applied, err
}

// GetParticipant returns a user's current standing bid on an auction
func (l *PostgresLedger) GetParticipant(ctx context.Context, auctionID, userID string) (model.Participant, error) {
	var (
		p      model.Participant
		amount string
	)
	err := l.db.QueryRow(ctx, `
		SELECT auction_id, user_id, amount, updated_at
		FROM participants WHERE auction_id = $1 AND user_id = $2`,
		auctionID, userID).Scan(&p.AuctionID, &p.UserID, &amount, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Participant{}, fmt.Errorf("get participant %s for auction %s: %w",
			userID, auctionID, auctionerrors.ErrParticipantNotFound)
	}
	if err != nil {
		return model.Participant{}, fmt.Errorf("get participant: %w", err)
	}
	if p.Amount, err = decimal.NewFromString(amount); err != nil {
		return model.Participant{}, fmt.Errorf("invalid participant amount %q: %w", amount, err)
	}
	return p, nil
}

// ListParticipants returns all standing bids for an auction
func (l *PostgresLedger) ListParticipants(ctx context.Context, auctionID string) ([]model.Participant, error) {
	rows, err := l.db.Query(ctx, `
		SELECT auction_id, user_id, amount, updated_at
		FROM participants WHERE auction_id = $1 ORDER BY user_id`, auctionID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer rows.Close()

	var participants []model.Participant
	for rows.Next() {
		var (
			p      model.Participant
			amount string
		)
		if err := rows.Scan(&p.AuctionID, &p.UserID, &amount, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("list participants: %w", err)
		}
		if p.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("invalid participant amount %q: %w", amount, err)
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

// SetWinner records the winner and its audit event in one transaction
func (l *PostgresLedger) SetWinner(ctx context.Context, auctionID, winnerID, selectedBy, reason string, at time.Time, expectUnset bool) (model.Auction, error) {
	var updated model.Auction
	err := l.withTx(ctx, func(tx pgx.Tx) error {
		var amount string
		err := tx.QueryRow(ctx, `
			SELECT amount FROM participants WHERE auction_id = $1 AND user_id = $2`,
			auctionID, winnerID).Scan(&amount)
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("user %s did not participate in auction %s: %w",
				winnerID, auctionID, auctionerrors.ErrParticipantNotFound)
		}
		if err != nil {
			return fmt.Errorf("set winner participant check: %w", err)
		}
		winningAmount, err := decimal.NewFromString(amount)
		if err != nil {
			return fmt.Errorf("invalid participant amount %q: %w", amount, err)
		}

		guard := `winner_id IS NULL`
		if !expectUnset {
			guard = `winner_id IS NOT NULL`
		}
		row := tx.QueryRow(ctx, `
			UPDATE auctions SET winner_id = $1
			WHERE id = $2 AND status = 'CLOSED' AND `+guard+`
			RETURNING `+auctionColumns, winnerID, auctionID)
		updated, err = scanAuction(row)
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := l.GetAuction(ctx, auctionID); getErr != nil {
				return getErr
			}
			return fmt.Errorf("set winner for auction %s: %w", auctionID, auctionerrors.ErrInvalidState)
		}
		if err != nil {
			return fmt.Errorf("set winner for auction %s: %w", auctionID, err)
		}

		return insertEvent(ctx, tx, model.BidEvent{
			EventID:   utils.GenerateID(),
			AuctionID: auctionID,
			Kind:      model.EventWinnerSelected,
			UserID:    winnerID,
			Amount:    winningAmount,
			Actor:     selectedBy,
			Reason:    reason,
			CreatedAt: at,
		})
	})
	if err != nil {
		return model.Auction{}, err
	}
	return updated, nil
}

// SetGatePass replaces the gate pass reference, last write wins
func (l *PostgresLedger) SetGatePass(ctx context.Context, auctionID, ref, uploadedBy string, at time.Time) (model.Auction, error) {
	row := l.db.QueryRow(ctx, `
		UPDATE auctions
		SET gate_pass_ref = $1, gate_pass_uploaded_by = $2, gate_pass_uploaded_at = $3
		WHERE id = $4 AND status = 'CLOSED' AND winner_id IS NOT NULL
		RETURNING `+auctionColumns, ref, uploadedBy, at, auctionID)
	auction, err := scanAuction(row)
	if errors.Is(err, pgx.ErrNoRows) {
		if _, getErr := l.GetAuction(ctx, auctionID); getErr != nil {
			return model.Auction{}, getErr
		}
		return model.Auction{}, fmt.Errorf("set gate pass for auction %s: %w",
			auctionID, auctionerrors.ErrInvalidState)
	}
	if err != nil {
		return model.Auction{}, fmt.Errorf("set gate pass for auction %s: %w", auctionID, err)
	}
	return auction, nil
}

// ListEvents returns the audit trail for an auction in commit order
func (l *PostgresLedger) ListEvents(ctx context.Context, auctionID string) ([]model.BidEvent, error) {
	if _, err := l.GetAuction(ctx, auctionID); err != nil {
		return nil, err
	}

	rows, err := l.db.Query(ctx, `
		SELECT id, auction_id, kind, user_id, amount, actor, reason, created_at
		FROM bid_events WHERE auction_id = $1 ORDER BY seq`, auctionID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []model.BidEvent
	for rows.Next() {
		var (
			e                    model.BidEvent
			amount               string
			userID, actor, reason *string
		)
		if err := rows.Scan(&e.EventID, &e.AuctionID, &e.Kind, &userID, &amount, &actor, &reason, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("list events: %w", err)
		}
		if e.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("invalid event amount %q: %w", amount, err)
		}
		if userID != nil {
			e.UserID = *userID
		}
		if actor != nil {
			e.Actor = *actor
		}
		if reason != nil {
			e.Reason = *reason
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func insertEvent(ctx context.Context, tx pgx.Tx, event model.BidEvent) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO bid_events (id, auction_id, kind, user_id, amount, actor, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		event.EventID, event.AuctionID, event.Kind, nullable(event.UserID),
		event.Amount.String(), nullable(event.Actor), nullable(event.Reason), event.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert %s event for auction %s: %w", event.Kind, event.AuctionID, err)
	}
	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (l *PostgresLedger) withTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := l.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
