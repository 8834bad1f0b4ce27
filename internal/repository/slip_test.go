package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stpnv0/ParkSpot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v4"
)

var slipRowColumns = []string{
	"id", "slip_number", "qr_code", "qr_payload", "valid_until", "car_number", "booking_id",
	"parking_spot_id", "owner_id", "status", "capacity_held", "revenue", "completed_at",
	"created_at", "updated_at",
}

func newManualSlip() *domain.ParkingSlip {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return &domain.ParkingSlip{
		ID:            "slip-1",
		SlipNumber:    "PS-1772359200000-ABCDE",
		QRCode:        "data:image/png;base64,AAAA",
		QRPayload:     `{"slipNumber":"PS-1772359200000-ABCDE"}`,
		ValidUntil:    now.Add(12 * time.Hour),
		ParkingSpotID: "spot-1",
		OwnerID:       "owner-1",
		Status:        domain.SlipStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestSlipRepository_CreateManual(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSlipRepo(sqlDB{db})

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT owner_id FROM parking_spots")).WithArgs("spot-1").
		WillReturnRows(sqlmock.NewRows([]string{"owner_id"}).AddRow("owner-1"))
	mock.ExpectExec(reserveSQL).WithArgs("spot-1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO parking_slips")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	s := newManualSlip()
	require.NoError(t, repo.CreateManual(context.Background(), s))
	assert.True(t, s.CapacityHeld)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSlipRepository_CreateManual_FullSpotLeavesNoSlip(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSlipRepo(sqlDB{db})

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT owner_id FROM parking_spots")).WithArgs("spot-1").
		WillReturnRows(sqlmock.NewRows([]string{"owner_id"}).AddRow("owner-1"))
	mock.ExpectExec(reserveSQL).WithArgs("spot-1").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(probeSQL).WithArgs("spot-1").
		WillReturnRows(sqlmock.NewRows([]string{"total_spots", "occupied_spots"}).AddRow(1, 1))
	mock.ExpectRollback()

	s := newManualSlip()
	err := repo.CreateManual(context.Background(), s)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
	assert.False(t, s.CapacityHeld)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSlipRepository_CreateManual_ForeignSpot(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSlipRepo(sqlDB{db})

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT owner_id FROM parking_spots")).WithArgs("spot-1").
		WillReturnRows(sqlmock.NewRows([]string{"owner_id"}).AddRow("someone-else"))
	mock.ExpectRollback()

	err := repo.CreateManual(context.Background(), newManualSlip())
	assert.ErrorIs(t, err, domain.ErrSpotNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSlipRepository_CreateManual_SlipNumberTaken(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSlipRepo(sqlDB{db})

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT owner_id FROM parking_spots")).WithArgs("spot-1").
		WillReturnRows(sqlmock.NewRows([]string{"owner_id"}).AddRow("owner-1"))
	mock.ExpectExec(reserveSQL).WithArgs("spot-1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO parking_slips")).
		WillReturnError(&pq.Error{Code: pqUniqueViolation, Constraint: slipNumberConstraint})
	mock.ExpectRollback()

	err := repo.CreateManual(context.Background(), newManualSlip())
	assert.ErrorIs(t, err, domain.ErrSlipNumberTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSlipRepository_CreateFromBooking_TransfersUnit(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSlipRepo(sqlDB{db})

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status, capacity_held, parking_spot_id FROM bookings")).
		WithArgs("booking-1", "owner-1").
		WillReturnRows(sqlmock.NewRows([]string{"status", "capacity_held", "parking_spot_id"}).
			AddRow("ACTIVE", true, "spot-1"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).WithArgs("booking-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET capacity_held = FALSE")).WithArgs("booking-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO parking_slips")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	s := newManualSlip()
	s.ParkingSpotID = ""
	s.BookingID = null.StringFrom("booking-1")

	require.NoError(t, repo.CreateFromBooking(context.Background(), s))
	assert.Equal(t, "spot-1", s.ParkingSpotID)
	assert.True(t, s.CapacityHeld)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSlipRepository_CreateFromBooking_ReservesWhenBookingHoldsNothing(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSlipRepo(sqlDB{db})

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status, capacity_held, parking_spot_id FROM bookings")).
		WithArgs("booking-1", "owner-1").
		WillReturnRows(sqlmock.NewRows([]string{"status", "capacity_held", "parking_spot_id"}).
			AddRow("ACTIVE", false, "spot-1"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).WithArgs("booking-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(reserveSQL).WithArgs("spot-1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO parking_slips")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	s := newManualSlip()
	s.BookingID = null.StringFrom("booking-1")

	require.NoError(t, repo.CreateFromBooking(context.Background(), s))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSlipRepository_CreateFromBooking_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "booking not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM bookings")).WithArgs("booking-1", "owner-1").
					WillReturnRows(sqlmock.NewRows([]string{"status", "capacity_held", "parking_spot_id"}))
			},
			wantErr: domain.ErrBookingNotFound,
		},
		{
			name: "slip already issued",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM bookings")).WithArgs("booking-1", "owner-1").
					WillReturnRows(sqlmock.NewRows([]string{"status", "capacity_held", "parking_spot_id"}).
						AddRow("ACTIVE", false, "spot-1"))
				mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).WithArgs("booking-1").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
			},
			wantErr: domain.ErrSlipAlreadyExists,
		},
		{
			name: "booking cancelled",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM bookings")).WithArgs("booking-1", "owner-1").
					WillReturnRows(sqlmock.NewRows([]string{"status", "capacity_held", "parking_spot_id"}).
						AddRow("CANCELLED", false, "spot-1"))
				mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).WithArgs("booking-1").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
			},
			wantErr: domain.ErrBookingNotActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMock(t)
			repo := NewSlipRepo(sqlDB{db})

			mock.ExpectBegin()
			tt.setup(mock)
			mock.ExpectRollback()

			s := newManualSlip()
			s.BookingID = null.StringFrom("booking-1")

			err := repo.CreateFromBooking(context.Background(), s)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSlipRepository_Close_ReleasesAndCompletesBooking(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSlipRepo(sqlDB{db})
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	done := created.Add(2 * time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM parking_slips WHERE id = $1 AND owner_id = $2 FOR UPDATE")).
		WithArgs("slip-1", "owner-1").
		WillReturnRows(sqlmock.NewRows(slipRowColumns).AddRow(
			"slip-1", "PS-1-ABCDE", "qr", "{}", created.Add(12*time.Hour), nil, "booking-1",
			"spot-1", "owner-1", "ACTIVE", true, nil, nil, created, created,
		))
	mock.ExpectExec(releaseSQL).WithArgs("spot-1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE parking_slips")).
		WithArgs("slip-1", "COMPLETED", 150.0, done).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET status = $2")).
		WithArgs("booking-1", "COMPLETED", done, "ACTIVE").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	s, err := repo.Close(context.Background(), "slip-1", "owner-1", domain.SlipCompletion{
		Status:      domain.SlipStatusCompleted,
		Revenue:     null.FloatFrom(150),
		CompletedAt: done,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.SlipStatusCompleted, s.Status)
	assert.False(t, s.CapacityHeld)
	assert.Equal(t, 150.0, s.Revenue.Float64)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSlipRepository_Close_AlreadyClosed(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSlipRepo(sqlDB{db})
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs("slip-1", "owner-1").
		WillReturnRows(sqlmock.NewRows(slipRowColumns).AddRow(
			"slip-1", "PS-1-ABCDE", "qr", "{}", created, nil, nil,
			"spot-1", "owner-1", "EXPIRED", false, nil, nil, created, created,
		))
	mock.ExpectRollback()

	_, err := repo.Close(context.Background(), "slip-1", "owner-1", domain.SlipCompletion{
		Status:      domain.SlipStatusUsed,
		CompletedAt: created,
	})
	assert.ErrorIs(t, err, domain.ErrSlipNotActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSlipRepository_Delete(t *testing.T) {
	deleteSQL := regexp.QuoteMeta("DELETE FROM parking_slips WHERE id = $1 AND owner_id = $2")

	t.Run("active slip gives its unit back", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewSlipRepo(sqlDB{db})

		mock.ExpectBegin()
		mock.ExpectQuery(deleteSQL).WithArgs("slip-1", "owner-1").
			WillReturnRows(sqlmock.NewRows([]string{"parking_spot_id", "capacity_held"}).AddRow("spot-1", true))
		mock.ExpectExec(releaseSQL).WithArgs("spot-1").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Delete(context.Background(), "slip-1", "owner-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("closed slip does not release twice", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewSlipRepo(sqlDB{db})

		mock.ExpectBegin()
		mock.ExpectQuery(deleteSQL).WithArgs("slip-1", "owner-1").
			WillReturnRows(sqlmock.NewRows([]string{"parking_spot_id", "capacity_held"}).AddRow("spot-1", false))
		mock.ExpectCommit()

		require.NoError(t, repo.Delete(context.Background(), "slip-1", "owner-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing slip", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewSlipRepo(sqlDB{db})

		mock.ExpectBegin()
		mock.ExpectQuery(deleteSQL).WithArgs("slip-1", "owner-1").
			WillReturnRows(sqlmock.NewRows([]string{"parking_spot_id", "capacity_held"}))
		mock.ExpectRollback()

		err := repo.Delete(context.Background(), "slip-1", "owner-1")
		assert.ErrorIs(t, err, domain.ErrSlipNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSlipRepository_Clear(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSlipRepo(sqlDB{db})

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM parking_slips WHERE owner_id = $1")).WithArgs("owner-1").
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookings WHERE owner_id = $1")).WithArgs("owner-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("SET occupied_spots = 0")).WithArgs("owner-1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	require.NoError(t, repo.Clear(context.Background(), "owner-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSlipRepository_Clear_RollsBackOnFailure(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSlipRepo(sqlDB{db})

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM parking_slips")).WithArgs("owner-1").
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookings")).WithArgs("owner-1").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.Clear(context.Background(), "owner-1")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
