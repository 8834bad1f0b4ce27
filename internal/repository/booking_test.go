package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stpnv0/ParkSpot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookingRowColumns = []string{
	"id", "parking_spot_id", "owner_id", "start_time", "end_time", "total_price",
	"customer_name", "customer_email", "customer_phone", "car_number", "status", "capacity_held",
	"created_at", "updated_at",
}

func bookingRow(status string, held bool) *sqlmock.Rows {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(bookingRowColumns).AddRow(
		"booking-1", "spot-1", "owner-1", start, start.Add(2*time.Hour), 100.0,
		"Asha", "asha@example.com", nil, "DL01AB1234", status, held, start, start,
	)
}

func TestBookingRepository_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewBookingRepo(sqlDB{db})

	mock.ExpectBegin()
	mock.ExpectExec(reserveSQL).WithArgs("spot-1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	b := &domain.Booking{ID: "booking-1", ParkingSpotID: "spot-1", OwnerID: "owner-1", Status: domain.BookingStatusActive}
	require.NoError(t, repo.Create(context.Background(), b))
	assert.True(t, b.CapacityHeld)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Create_SpotFull(t *testing.T) {
	db, mock := newMock(t)
	repo := NewBookingRepo(sqlDB{db})

	mock.ExpectBegin()
	mock.ExpectExec(reserveSQL).WithArgs("spot-1").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(probeSQL).WithArgs("spot-1").
		WillReturnRows(sqlmock.NewRows([]string{"total_spots", "occupied_spots"}).AddRow(3, 3))
	mock.ExpectRollback()

	b := &domain.Booking{ID: "booking-1", ParkingSpotID: "spot-1", OwnerID: "owner-1"}
	err := repo.Create(context.Background(), b)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
	assert.False(t, b.CapacityHeld)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Transition(t *testing.T) {
	lockSQL := regexp.QuoteMeta("FROM bookings WHERE id = $1 AND owner_id = $2 FOR UPDATE")
	updateSQL := regexp.QuoteMeta("UPDATE bookings SET status = $2, capacity_held = FALSE")

	t.Run("cancel releases held unit", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewBookingRepo(sqlDB{db})

		mock.ExpectBegin()
		mock.ExpectQuery(lockSQL).WithArgs("booking-1", "owner-1").WillReturnRows(bookingRow("ACTIVE", true))
		mock.ExpectExec(releaseSQL).WithArgs("spot-1").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(updateSQL).WithArgs("booking-1", "CANCELLED", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		b, err := repo.Transition(context.Background(), "booking-1", "owner-1", domain.BookingStatusCancelled)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCancelled, b.Status)
		assert.False(t, b.CapacityHeld)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unit already moved to a slip", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewBookingRepo(sqlDB{db})

		mock.ExpectBegin()
		mock.ExpectQuery(lockSQL).WithArgs("booking-1", "owner-1").WillReturnRows(bookingRow("ACTIVE", false))
		mock.ExpectExec(updateSQL).WithArgs("booking-1", "COMPLETED", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		_, err := repo.Transition(context.Background(), "booking-1", "owner-1", domain.BookingStatusCompleted)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second cancel is rejected", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewBookingRepo(sqlDB{db})

		mock.ExpectBegin()
		mock.ExpectQuery(lockSQL).WithArgs("booking-1", "owner-1").WillReturnRows(bookingRow("CANCELLED", false))
		mock.ExpectRollback()

		_, err := repo.Transition(context.Background(), "booking-1", "owner-1", domain.BookingStatusCancelled)
		assert.ErrorIs(t, err, domain.ErrBookingNotActive)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewBookingRepo(sqlDB{db})

		mock.ExpectBegin()
		mock.ExpectQuery(lockSQL).WithArgs("booking-1", "owner-1").WillReturnRows(sqlmock.NewRows(bookingRowColumns))
		mock.ExpectRollback()

		_, err := repo.Transition(context.Background(), "booking-1", "owner-1", domain.BookingStatusCancelled)
		assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	})
}

func TestBookingRepository_ExpireOverdue(t *testing.T) {
	db, mock := newMock(t)
	repo := NewBookingRepo(sqlDB{db})
	now := time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC)
	start := now.Add(-3 * time.Hour)

	cols := append(append([]string{}, bookingRowColumns...), "held")
	rows := sqlmock.NewRows(cols).
		AddRow("b1", "spot-1", "owner-1", start, start.Add(time.Hour), 50.0,
			"A", "a@example.com", nil, nil, "COMPLETED", false, start, now, true).
		AddRow("b2", "spot-2", "owner-1", start, start.Add(time.Hour), 50.0,
			"B", "b@example.com", nil, nil, "COMPLETED", false, start, now, false)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("WITH due AS")).WithArgs("ACTIVE", now, "COMPLETED").WillReturnRows(rows)
	mock.ExpectExec(releaseSQL).WithArgs("spot-1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	res, err := repo.ExpireOverdue(context.Background(), now)
	require.NoError(t, err)
	assert.Len(t, res, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
