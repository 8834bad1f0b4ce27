package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stpnv0/ParkSpot/internal/domain"
)

// Ledger owns every write to parking_spots.occupied_spots and total_spots.
// All methods run on the caller's transaction so the counter moves together
// with the slip or booking row that justifies it.
type Ledger struct{}

// Reserve takes one unit of capacity. The conditional UPDATE row-locks the
// spot, so concurrent reservations on the same spot are serialized and the
// loser re-evaluates the predicate against the committed count.
func (Ledger) Reserve(ctx context.Context, q querier, spotID string) error {
	res, err := q.ExecContext(ctx, `UPDATE parking_spots
		SET occupied_spots = occupied_spots + 1, updated_at = now()
		WHERE id = $1 AND total_spots > 0 AND occupied_spots < total_spots`, spotID)
	if err != nil {
		return fmt.Errorf("reserve capacity: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reserve rows affected: %w", err)
	}
	if n == 1 {
		return nil
	}

	var total, occupied int
	err = q.QueryRowContext(ctx,
		`SELECT total_spots, occupied_spots FROM parking_spots WHERE id = $1`, spotID,
	).Scan(&total, &occupied)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrSpotNotFound
		}
		return fmt.Errorf("probe capacity: %w", err)
	}
	if total <= 0 {
		return domain.ErrCapacityNotConfigured
	}
	return domain.ErrCapacityExceeded
}

// Release gives one unit back, clamped at zero in the same statement.
func (Ledger) Release(ctx context.Context, q querier, spotID string) error {
	res, err := q.ExecContext(ctx, `UPDATE parking_spots
		SET occupied_spots = GREATEST(occupied_spots - 1, 0), updated_at = now()
		WHERE id = $1`, spotID)
	if err != nil {
		return fmt.Errorf("release capacity: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("release rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrSpotNotFound
	}
	return nil
}

// Resize changes total_spots unless that would drop it below occupancy.
func (Ledger) Resize(ctx context.Context, q querier, spotID, ownerID string, newTotal int) error {
	if newTotal < 0 {
		return fmt.Errorf("%w: total_spots must not be negative", domain.ErrValidation)
	}

	res, err := q.ExecContext(ctx, `UPDATE parking_spots
		SET total_spots = $3, updated_at = now()
		WHERE id = $1 AND owner_id = $2 AND occupied_spots <= $3`, spotID, ownerID, newTotal)
	if err != nil {
		return fmt.Errorf("resize capacity: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("resize rows affected: %w", err)
	}
	if n == 1 {
		return nil
	}

	var occupied int
	err = q.QueryRowContext(ctx,
		`SELECT occupied_spots FROM parking_spots WHERE id = $1 AND owner_id = $2`, spotID, ownerID,
	).Scan(&occupied)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrSpotNotFound
		}
		return fmt.Errorf("probe occupancy: %w", err)
	}
	return domain.ErrCapacityBelowOccupancy
}

// Reset zeroes occupancy on every spot of the owner.
func (Ledger) Reset(ctx context.Context, q querier, ownerID string) (int64, error) {
	res, err := q.ExecContext(ctx, `UPDATE parking_spots
		SET occupied_spots = 0, updated_at = now()
		WHERE owner_id = $1`, ownerID)
	if err != nil {
		return 0, fmt.Errorf("reset occupancy: %w", err)
	}
	return res.RowsAffected()
}
