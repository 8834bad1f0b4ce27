//go:build integration

package repository

import (
	"context"
	"database/sql"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/stpnv0/ParkSpot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// PARKSPOT_TEST_DSN points at a disposable Postgres database.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("PARKSPOT_TEST_DSN")
	if dsn == "" {
		t.Skip("PARKSPOT_TEST_DSN is not set")
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(db, "../../migrations"))

	return db
}

func seedSpot(t *testing.T, db *sql.DB, total int) (ownerID, spotID string) {
	t.Helper()
	ctx := context.Background()
	ownerID = uuid.NewString()
	spotID = uuid.NewString()

	users := NewUserRepo(sqlDB{db})
	require.NoError(t, users.Create(ctx, &domain.User{
		ID:           ownerID,
		FullName:     "Owner",
		Email:        ownerID + "@example.com",
		PasswordHash: "x",
		Role:         domain.RoleOwner,
		CreatedAt:    time.Now().UTC(),
	}))

	spots := NewSpotRepo(sqlDB{db})
	now := time.Now().UTC()
	require.NoError(t, spots.Create(ctx, &domain.ParkingSpot{
		ID:           spotID,
		OwnerID:      ownerID,
		Title:        "Lot",
		Address:      "Main st",
		PricePerHour: 50,
		TotalSpots:   total,
		IsAvailable:  true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}))

	return ownerID, spotID
}

func occupancy(t *testing.T, db *sql.DB, spotID string) (total, occupied int) {
	t.Helper()
	err := db.QueryRow(`SELECT total_spots, occupied_spots FROM parking_spots WHERE id = $1`, spotID).
		Scan(&total, &occupied)
	require.NoError(t, err)
	return total, occupied
}

func manualSlip(ownerID, spotID string) *domain.ParkingSlip {
	now := time.Now().UTC()
	return &domain.ParkingSlip{
		ID:            uuid.NewString(),
		SlipNumber:    "PS-" + uuid.NewString(),
		QRCode:        "qr",
		QRPayload:     "{}",
		ValidUntil:    now.Add(12 * time.Hour),
		ParkingSpotID: spotID,
		OwnerID:       ownerID,
		Status:        domain.SlipStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestIntegration_ConcurrentReserveOnLastUnit(t *testing.T) {
	db := openTestDB(t)
	ownerID, spotID := seedSpot(t, db, 1)
	slips := NewSlipRepo(sqlDB{db})

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- slips.CreateManual(context.Background(), manualSlip(ownerID, spotID))
		}()
	}
	wg.Wait()
	close(errs)

	var ok, full int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case assert.ErrorIs(t, err, domain.ErrCapacityExceeded):
			full++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, full)

	total, occupied := occupancy(t, db, spotID)
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, occupied)
}

func TestIntegration_SlipLifecycleKeepsCounterExact(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	ownerID, spotID := seedSpot(t, db, 2)
	slips := NewSlipRepo(sqlDB{db})

	first := manualSlip(ownerID, spotID)
	require.NoError(t, slips.CreateManual(ctx, first))
	require.NoError(t, slips.CreateManual(ctx, manualSlip(ownerID, spotID)))

	err := slips.CreateManual(ctx, manualSlip(ownerID, spotID))
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
	_, occupied := occupancy(t, db, spotID)
	assert.Equal(t, 2, occupied)

	require.NoError(t, slips.Delete(ctx, first.ID, ownerID))
	_, occupied = occupancy(t, db, spotID)
	assert.Equal(t, 1, occupied)

	third := manualSlip(ownerID, spotID)
	require.NoError(t, slips.CreateManual(ctx, third))
	_, occupied = occupancy(t, db, spotID)
	assert.Equal(t, 2, occupied)

	_, err = slips.Close(ctx, third.ID, ownerID, domain.SlipCompletion{
		Status:      domain.SlipStatusUsed,
		CompletedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	require.NoError(t, slips.Delete(ctx, third.ID, ownerID))
	_, occupied = occupancy(t, db, spotID)
	assert.Equal(t, 1, occupied)
}

func TestIntegration_ResizeBelowOccupancy(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	ownerID, spotID := seedSpot(t, db, 3)
	slips := NewSlipRepo(sqlDB{db})
	spots := NewSpotRepo(sqlDB{db})

	for i := 0; i < 3; i++ {
		require.NoError(t, slips.CreateManual(ctx, manualSlip(ownerID, spotID)))
	}

	two, three := 2, 3
	_, err := spots.Update(ctx, spotID, ownerID, domain.UpdateSpotInput{TotalSpots: &two})
	assert.ErrorIs(t, err, domain.ErrCapacityBelowOccupancy)

	s, err := spots.Update(ctx, spotID, ownerID, domain.UpdateSpotInput{TotalSpots: &three})
	require.NoError(t, err)
	assert.Equal(t, 3, s.TotalSpots)
	assert.Equal(t, 3, s.OccupiedSpots)
}

func TestIntegration_ClearResetsOwnerSpots(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	ownerID, spotID := seedSpot(t, db, 5)
	slips := NewSlipRepo(sqlDB{db})
	bookings := NewBookingRepo(sqlDB{db})

	require.NoError(t, slips.CreateManual(ctx, manualSlip(ownerID, spotID)))
	now := time.Now().UTC()
	require.NoError(t, bookings.Create(ctx, &domain.Booking{
		ID:            uuid.NewString(),
		ParkingSpotID: spotID,
		OwnerID:       ownerID,
		StartTime:     now,
		EndTime:       now.Add(time.Hour),
		TotalPrice:    50,
		CustomerName:  "Asha",
		CustomerEmail: "asha@example.com",
		Status:        domain.BookingStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}))

	require.NoError(t, slips.Clear(ctx, ownerID))

	_, occupied := occupancy(t, db, spotID)
	assert.Equal(t, 0, occupied)

	var left int
	require.NoError(t, db.QueryRow(
		`SELECT (SELECT COUNT(*) FROM parking_slips WHERE owner_id = $1) + (SELECT COUNT(*) FROM bookings WHERE owner_id = $1)`,
		ownerID,
	).Scan(&left))
	assert.Zero(t, left)
}
