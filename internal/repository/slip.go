package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/ParkSpot/internal/domain"
	"github.com/wb-go/wbf/retry"
)

const slipColumns = `id, slip_number, qr_code, qr_payload, valid_until, car_number, booking_id,
	parking_spot_id, owner_id, status, capacity_held, revenue, completed_at, created_at, updated_at`

const (
	slipNumberConstraint  = "parking_slips_slip_number_key"
	slipBookingConstraint = "parking_slips_booking_id_key"
)

type SlipRepository struct {
	db       DB
	ledger   Ledger
	strategy retry.Strategy
}

func NewSlipRepo(db DB) *SlipRepository {
	return &SlipRepository{
		db:       db,
		strategy: readStrategy(),
	}
}

func scanSlip(row rowScanner, s *domain.ParkingSlip, extra ...any) error {
	dest := []any{
		&s.ID, &s.SlipNumber, &s.QRCode, &s.QRPayload, &s.ValidUntil, &s.CarNumber, &s.BookingID,
		&s.ParkingSpotID, &s.OwnerID, &s.Status, &s.CapacityHeld, &s.Revenue, &s.CompletedAt,
		&s.CreatedAt, &s.UpdatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}

// CreateManual reserves a unit on the slip's spot and inserts the slip.
func (r *SlipRepository) CreateManual(ctx context.Context, s *domain.ParkingSlip) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var ownerID string
	err = tx.QueryRowContext(ctx,
		`SELECT owner_id FROM parking_spots WHERE id = $1`, s.ParkingSpotID,
	).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrSpotNotFound
		}
		return fmt.Errorf("get spot owner: %w", err)
	}
	if ownerID != s.OwnerID {
		return domain.ErrSpotNotFound
	}

	if err = r.ledger.Reserve(ctx, tx, s.ParkingSpotID); err != nil {
		return err
	}

	if err = r.insert(ctx, tx, s); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	s.CapacityHeld = true

	return nil
}

// CreateFromBooking issues the slip for an active booking. The booking's
// unit moves to the slip; a booking that no longer holds one reserves anew.
func (r *SlipRepository) CreateFromBooking(ctx context.Context, s *domain.ParkingSlip) error {
	if !s.BookingID.Valid {
		return fmt.Errorf("%w: booking_id is required", domain.ErrValidation)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var (
		status domain.BookingStatus
		held   bool
		spotID string
	)
	err = tx.QueryRowContext(ctx,
		`SELECT status, capacity_held, parking_spot_id FROM bookings
		 WHERE id = $1 AND owner_id = $2 FOR UPDATE`, s.BookingID.String, s.OwnerID,
	).Scan(&status, &held, &spotID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("lock booking: %w", err)
	}

	var exists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM parking_slips WHERE booking_id = $1)`, s.BookingID.String,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check existing slip: %w", err)
	}
	if exists {
		return domain.ErrSlipAlreadyExists
	}

	if status != domain.BookingStatusActive {
		return domain.ErrBookingNotActive
	}

	if held {
		_, err = tx.ExecContext(ctx,
			`UPDATE bookings SET capacity_held = FALSE, updated_at = now() WHERE id = $1`, s.BookingID.String)
		if err != nil {
			return fmt.Errorf("transfer booking capacity: %w", err)
		}
	} else if err = r.ledger.Reserve(ctx, tx, spotID); err != nil {
		return err
	}

	s.ParkingSpotID = spotID
	if err = r.insert(ctx, tx, s); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	s.CapacityHeld = true

	return nil
}

func (r *SlipRepository) insert(ctx context.Context, tx *sql.Tx, s *domain.ParkingSlip) error {
	query := `INSERT INTO parking_slips (id, slip_number, qr_code, qr_payload, valid_until, car_number,
			  	booking_id, parking_spot_id, owner_id, status, capacity_held, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, TRUE, $11, $12)`
	_, err := tx.ExecContext(
		ctx, query, s.ID, s.SlipNumber, s.QRCode, s.QRPayload, s.ValidUntil, s.CarNumber,
		s.BookingID, s.ParkingSpotID, s.OwnerID, s.Status, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			switch constraint {
			case slipBookingConstraint:
				return domain.ErrSlipAlreadyExists
			case slipNumberConstraint:
				return domain.ErrSlipNumberTaken
			}
		}
		return fmt.Errorf("insert slip: %w", err)
	}
	return nil
}

func (r *SlipRepository) GetOwned(ctx context.Context, id, ownerID string) (*domain.ParkingSlip, error) {
	query := `SELECT ` + slipColumns + ` FROM parking_slips WHERE id = $1 AND owner_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get slip: %w", err)
	}

	var s domain.ParkingSlip
	if err = scanSlip(row, &s); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlipNotFound
		}
		return nil, fmt.Errorf("scan slip: %w", err)
	}

	return &s, nil
}

func (r *SlipRepository) ListByOwner(ctx context.Context, ownerID string, status domain.SlipStatus) ([]*domain.SlipView, error) {
	query := `SELECT ps.id, ps.slip_number, ps.qr_code, ps.qr_payload, ps.valid_until, ps.car_number,
				ps.booking_id, ps.parking_spot_id, ps.owner_id, ps.status, ps.capacity_held, ps.revenue,
				ps.completed_at, ps.created_at, ps.updated_at, s.title, s.address
			  FROM parking_slips ps
			  JOIN parking_spots s ON s.id = ps.parking_spot_id
			  WHERE ps.owner_id = $1 AND ($2 = '' OR ps.status = $2)
			  ORDER BY ps.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, ownerID, string(status))
	if err != nil {
		return nil, fmt.Errorf("list slips by owner: %w", err)
	}
	defer rows.Close()

	var res []*domain.SlipView
	for rows.Next() {
		var v domain.SlipView
		if err = scanSlip(rows, &v.Slip, &v.SpotTitle, &v.Address); err != nil {
			return nil, fmt.Errorf("scan slip: %w", err)
		}
		res = append(res, &v)
	}

	return res, rows.Err()
}

// Close moves an active slip to a terminal status and releases its unit.
// Completing a booking-linked slip also completes the booking.
func (r *SlipRepository) Close(ctx context.Context, id, ownerID string, c domain.SlipCompletion) (*domain.ParkingSlip, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var s domain.ParkingSlip
	row := tx.QueryRowContext(ctx,
		`SELECT `+slipColumns+` FROM parking_slips WHERE id = $1 AND owner_id = $2 FOR UPDATE`, id, ownerID)
	if err = scanSlip(row, &s); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlipNotFound
		}
		return nil, fmt.Errorf("lock slip: %w", err)
	}

	if s.Status != domain.SlipStatusActive {
		return nil, domain.ErrSlipNotActive
	}

	if s.CapacityHeld {
		if err = r.ledger.Release(ctx, tx, s.ParkingSpotID); err != nil {
			return nil, err
		}
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE parking_slips
		 SET status = $2, revenue = $3, completed_at = $4, capacity_held = FALSE, updated_at = $4
		 WHERE id = $1`,
		id, c.Status, c.Revenue, c.CompletedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("close slip: %w", err)
	}

	if s.BookingID.Valid && c.Status == domain.SlipStatusCompleted {
		_, err = tx.ExecContext(ctx,
			`UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1 AND status = $4`,
			s.BookingID.String, domain.BookingStatusCompleted, c.CompletedAt, domain.BookingStatusActive,
		)
		if err != nil {
			return nil, fmt.Errorf("complete linked booking: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	s.Status = c.Status
	s.Revenue = c.Revenue
	s.CompletedAt.SetValid(c.CompletedAt)
	s.CapacityHeld = false
	s.UpdatedAt = c.CompletedAt

	return &s, nil
}

// Delete removes a slip in any status. Only a slip that still holds its
// unit gives it back, so deleting a closed slip never releases twice.
func (r *SlipRepository) Delete(ctx context.Context, id, ownerID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var (
		spotID string
		held   bool
	)
	err = tx.QueryRowContext(ctx,
		`DELETE FROM parking_slips WHERE id = $1 AND owner_id = $2 RETURNING parking_spot_id, capacity_held`,
		id, ownerID,
	).Scan(&spotID, &held)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrSlipNotFound
		}
		return fmt.Errorf("delete slip: %w", err)
	}

	if held {
		if err = r.ledger.Release(ctx, tx, spotID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Clear wipes the owner's slips and bookings and zeroes occupancy.
func (r *SlipRepository) Clear(ctx context.Context, ownerID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM parking_slips WHERE owner_id = $1`, ownerID); err != nil {
		return fmt.Errorf("delete slips: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM bookings WHERE owner_id = $1`, ownerID); err != nil {
		return fmt.Errorf("delete bookings: %w", err)
	}
	if _, err = r.ledger.Reset(ctx, tx, ownerID); err != nil {
		return err
	}

	return tx.Commit()
}

// ExpireOverdue marks active slips past valid_until as expired.
func (r *SlipRepository) ExpireOverdue(ctx context.Context, now time.Time) ([]*domain.ParkingSlip, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `WITH due AS (
				SELECT id, capacity_held FROM parking_slips
				WHERE status = $1 AND valid_until < $2
				FOR UPDATE SKIP LOCKED
			  )
			  UPDATE parking_slips ps
			  SET status = $3, capacity_held = FALSE, updated_at = $2
			  FROM due
			  WHERE ps.id = due.id
			  RETURNING ps.id, ps.slip_number, ps.qr_code, ps.qr_payload, ps.valid_until, ps.car_number,
			  	ps.booking_id, ps.parking_spot_id, ps.owner_id, ps.status, ps.capacity_held, ps.revenue,
			  	ps.completed_at, ps.created_at, ps.updated_at, due.capacity_held`

	rows, err := tx.QueryContext(ctx, query, domain.SlipStatusActive, now, domain.SlipStatusExpired)
	if err != nil {
		return nil, fmt.Errorf("expire slips: %w", err)
	}

	var (
		res     []*domain.ParkingSlip
		release []string
	)
	for rows.Next() {
		var (
			s    domain.ParkingSlip
			held bool
		)
		if err = scanSlip(rows, &s, &held); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan expired slip: %w", err)
		}
		if held {
			release = append(release, s.ParkingSpotID)
		}
		res = append(res, &s)
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterate expired slips: %w", err)
	}
	rows.Close()

	for _, spotID := range release {
		if err = r.ledger.Release(ctx, tx, spotID); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return res, nil
}
