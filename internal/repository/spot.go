package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/stpnv0/ParkSpot/internal/domain"
	"github.com/wb-go/wbf/retry"
)

const spotColumns = `id, owner_id, title, description, address, latitude, longitude,
	price_per_hour, total_spots, occupied_spots, is_available, created_at, updated_at`

type SpotRepository struct {
	db       DB
	ledger   Ledger
	strategy retry.Strategy
}

func NewSpotRepo(db DB) *SpotRepository {
	return &SpotRepository{
		db:       db,
		strategy: readStrategy(),
	}
}

func scanSpot(row rowScanner, s *domain.ParkingSpot, extra ...any) error {
	dest := []any{
		&s.ID, &s.OwnerID, &s.Title, &s.Description, &s.Address, &s.Latitude, &s.Longitude,
		&s.PricePerHour, &s.TotalSpots, &s.OccupiedSpots, &s.IsAvailable, &s.CreatedAt, &s.UpdatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}

func (r *SpotRepository) Create(ctx context.Context, s *domain.ParkingSpot) error {
	query := `INSERT INTO parking_spots (id, owner_id, title, description, address, latitude, longitude,
			  	price_per_hour, total_spots, occupied_spots, is_available, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 0, $10, $11, $12)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.OwnerID, s.Title, s.Description, s.Address, s.Latitude, s.Longitude,
		s.PricePerHour, s.TotalSpots, s.IsAvailable, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert spot: %w", err)
	}

	return nil
}

func (r *SpotRepository) GetByID(ctx context.Context, id string) (*domain.ParkingSpot, error) {
	query := `SELECT ` + spotColumns + ` FROM parking_spots WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get spot: %w", err)
	}

	var s domain.ParkingSpot
	if err = scanSpot(row, &s); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSpotNotFound
		}
		return nil, fmt.Errorf("scan spot: %w", err)
	}

	return &s, nil
}

const spotDetailsQuery = `SELECT ` + spotColumns + `,
		(SELECT COUNT(*) FROM bookings b WHERE b.parking_spot_id = parking_spots.id AND b.status = 'ACTIVE'),
		(SELECT COUNT(*) FROM parking_slips ps WHERE ps.parking_spot_id = parking_spots.id)
	FROM parking_spots`

func (r *SpotRepository) GetOwned(ctx context.Context, id, ownerID string) (*domain.SpotDetails, error) {
	query := spotDetailsQuery + ` WHERE id = $1 AND owner_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get owned spot: %w", err)
	}

	var d domain.SpotDetails
	if err = scanSpot(row, &d.Spot, &d.ActiveBookings, &d.Slips); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSpotNotFound
		}
		return nil, fmt.Errorf("scan owned spot: %w", err)
	}

	return &d, nil
}

func (r *SpotRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.SpotDetails, error) {
	query := spotDetailsQuery + ` WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list spots by owner: %w", err)
	}
	defer rows.Close()

	var res []*domain.SpotDetails
	for rows.Next() {
		var d domain.SpotDetails
		if err = scanSpot(rows, &d.Spot, &d.ActiveBookings, &d.Slips); err != nil {
			return nil, fmt.Errorf("scan spot: %w", err)
		}
		res = append(res, &d)
	}

	return res, rows.Err()
}

func (r *SpotRepository) ListAvailable(ctx context.Context) ([]*domain.ParkingSpot, error) {
	query := `SELECT ` + spotColumns + ` FROM parking_spots WHERE is_available ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list available spots: %w", err)
	}
	defer rows.Close()

	var res []*domain.ParkingSpot
	for rows.Next() {
		var s domain.ParkingSpot
		if err = scanSpot(rows, &s); err != nil {
			return nil, fmt.Errorf("scan spot: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

// Update applies availability and capacity changes in one transaction.
// Capacity goes through the ledger so a resize cannot undercut occupancy.
func (r *SpotRepository) Update(ctx context.Context, id, ownerID string, in domain.UpdateSpotInput) (*domain.ParkingSpot, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if in.TotalSpots != nil {
		if err = r.ledger.Resize(ctx, tx, id, ownerID, *in.TotalSpots); err != nil {
			return nil, err
		}
	}

	if in.IsAvailable != nil {
		res, err := tx.ExecContext(ctx,
			`UPDATE parking_spots SET is_available = $3, updated_at = now() WHERE id = $1 AND owner_id = $2`,
			id, ownerID, *in.IsAvailable,
		)
		if err != nil {
			return nil, fmt.Errorf("update availability: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("availability rows affected: %w", err)
		}
		if n == 0 {
			return nil, domain.ErrSpotNotFound
		}
	}

	var s domain.ParkingSpot
	row := tx.QueryRowContext(ctx,
		`SELECT `+spotColumns+` FROM parking_spots WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err = scanSpot(row, &s); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSpotNotFound
		}
		return nil, fmt.Errorf("reload spot: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return &s, nil
}

// Delete removes the spot together with its slips and bookings.
func (r *SpotRepository) Delete(ctx context.Context, id, ownerID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var locked string
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM parking_spots WHERE id = $1 AND owner_id = $2 FOR UPDATE`, id, ownerID,
	).Scan(&locked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrSpotNotFound
		}
		return fmt.Errorf("lock spot: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM parking_slips WHERE parking_spot_id = $1`, id); err != nil {
		return fmt.Errorf("delete spot slips: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM bookings WHERE parking_spot_id = $1`, id); err != nil {
		return fmt.Errorf("delete spot bookings: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM parking_spots WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete spot: %w", err)
	}

	return tx.Commit()
}

func (r *SpotRepository) Stats(ctx context.Context, ownerID string) (*domain.OwnerStats, error) {
	query := `SELECT
		(SELECT COUNT(*) FROM parking_spots WHERE owner_id = $1),
		(SELECT COALESCE(SUM(total_spots), 0) FROM parking_spots WHERE owner_id = $1),
		(SELECT COALESCE(SUM(occupied_spots), 0) FROM parking_spots WHERE owner_id = $1),
		(SELECT COUNT(*) FROM bookings WHERE owner_id = $1 AND status = 'ACTIVE'),
		(SELECT COUNT(*) FROM parking_slips WHERE owner_id = $1 AND status = 'ACTIVE'),
		(SELECT COALESCE(SUM(total_price), 0) FROM bookings
			WHERE owner_id = $1 AND status = ANY($2)),
		(SELECT COALESCE(SUM(revenue), 0) FROM parking_slips
			WHERE owner_id = $1 AND status = 'COMPLETED' AND booking_id IS NULL)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, ownerID, pq.Array(domain.RevenueStatuses))
	if err != nil {
		return nil, fmt.Errorf("owner stats: %w", err)
	}

	var s domain.OwnerStats
	if err = row.Scan(
		&s.TotalSpots, &s.TotalCapacity, &s.OccupiedSpots,
		&s.ActiveBookings, &s.ActiveSlips, &s.BookingRevenue, &s.SlipRevenue,
	); err != nil {
		return nil, fmt.Errorf("scan stats: %w", err)
	}
	s.Finalize()

	return &s, nil
}
