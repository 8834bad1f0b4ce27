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

const bookingColumns = `id, parking_spot_id, owner_id, start_time, end_time, total_price,
	customer_name, customer_email, customer_phone, car_number, status, capacity_held,
	created_at, updated_at`

type BookingRepository struct {
	db       DB
	ledger   Ledger
	strategy retry.Strategy
}

func NewBookingRepo(db DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: readStrategy(),
	}
}

func scanBooking(row rowScanner, b *domain.Booking, extra ...any) error {
	dest := []any{
		&b.ID, &b.ParkingSpotID, &b.OwnerID, &b.StartTime, &b.EndTime, &b.TotalPrice,
		&b.CustomerName, &b.CustomerEmail, &b.CustomerPhone, &b.CarNumber, &b.Status, &b.CapacityHeld,
		&b.CreatedAt, &b.UpdatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}

// Create reserves a unit on the spot and inserts the booking holding it.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = r.ledger.Reserve(ctx, tx, b.ParkingSpotID); err != nil {
		return err
	}

	query := `INSERT INTO bookings (id, parking_spot_id, owner_id, start_time, end_time, total_price,
			  	customer_name, customer_email, customer_phone, car_number, status, capacity_held,
			  	created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, TRUE, $12, $13)`
	_, err = tx.ExecContext(
		ctx, query, b.ID, b.ParkingSpotID, b.OwnerID, b.StartTime, b.EndTime, b.TotalPrice,
		b.CustomerName, b.CustomerEmail, b.CustomerPhone, b.CarNumber, b.Status,
		b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	b.CapacityHeld = true

	return nil
}

func (r *BookingRepository) GetOwned(ctx context.Context, id, ownerID string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 AND owner_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var b domain.Booking
	if err = scanBooking(row, &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return &b, nil
}

func (r *BookingRepository) ListByOwner(ctx context.Context, ownerID string, status domain.BookingStatus) ([]*domain.BookingView, error) {
	query := `SELECT b.id, b.parking_spot_id, b.owner_id, b.start_time, b.end_time, b.total_price,
				b.customer_name, b.customer_email, b.customer_phone, b.car_number, b.status, b.capacity_held,
				b.created_at, b.updated_at, s.title, s.address, ps.id
			  FROM bookings b
			  JOIN parking_spots s ON s.id = b.parking_spot_id
			  LEFT JOIN parking_slips ps ON ps.booking_id = b.id
			  WHERE b.owner_id = $1 AND ($2 = '' OR b.status = $2)
			  ORDER BY b.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, ownerID, string(status))
	if err != nil {
		return nil, fmt.Errorf("list bookings by owner: %w", err)
	}
	defer rows.Close()

	var res []*domain.BookingView
	for rows.Next() {
		var v domain.BookingView
		if err = scanBooking(rows, &v.Booking, &v.SpotTitle, &v.Address, &v.SlipID); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &v)
	}

	return res, rows.Err()
}

// Transition closes an active booking and releases its unit if it still
// holds one. A booking whose unit moved to a slip releases nothing.
func (r *BookingRepository) Transition(ctx context.Context, id, ownerID string, to domain.BookingStatus) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var b domain.Booking
	row := tx.QueryRowContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1 AND owner_id = $2 FOR UPDATE`, id, ownerID)
	if err = scanBooking(row, &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("lock booking: %w", err)
	}

	if b.Status != domain.BookingStatusActive {
		return nil, domain.ErrBookingNotActive
	}

	if b.CapacityHeld {
		if err = r.ledger.Release(ctx, tx, b.ParkingSpotID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	_, err = tx.ExecContext(ctx,
		`UPDATE bookings SET status = $2, capacity_held = FALSE, updated_at = $3 WHERE id = $1`,
		id, to, now,
	)
	if err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	b.Status = to
	b.CapacityHeld = false
	b.UpdatedAt = now

	return &b, nil
}

// ExpireOverdue completes active bookings whose window has ended and that
// still hold their unit. A booking whose unit moved to a slip is closed by it.
func (r *BookingRepository) ExpireOverdue(ctx context.Context, now time.Time) ([]*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `WITH due AS (
				SELECT id, capacity_held FROM bookings
				WHERE status = $1 AND end_time < $2 AND capacity_held
				FOR UPDATE SKIP LOCKED
			  )
			  UPDATE bookings b
			  SET status = $3, capacity_held = FALSE, updated_at = $2
			  FROM due
			  WHERE b.id = due.id
			  RETURNING b.id, b.parking_spot_id, b.owner_id, b.start_time, b.end_time, b.total_price,
			  	b.customer_name, b.customer_email, b.customer_phone, b.car_number, b.status, b.capacity_held,
			  	b.created_at, b.updated_at, due.capacity_held`

	rows, err := tx.QueryContext(ctx, query, domain.BookingStatusActive, now, domain.BookingStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("expire bookings: %w", err)
	}

	var (
		res     []*domain.Booking
		release []string
	)
	for rows.Next() {
		var (
			b    domain.Booking
			held bool
		)
		if err = scanBooking(rows, &b, &held); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan expired booking: %w", err)
		}
		if held {
			release = append(release, b.ParkingSpotID)
		}
		res = append(res, &b)
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterate expired bookings: %w", err)
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
