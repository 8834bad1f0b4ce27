package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stpnv0/ParkSpot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	reserveSQL = regexp.QuoteMeta("SET occupied_spots = occupied_spots + 1")
	releaseSQL = regexp.QuoteMeta("SET occupied_spots = GREATEST(occupied_spots - 1, 0)")
	resizeSQL  = regexp.QuoteMeta("SET total_spots = $3")
	probeSQL   = regexp.QuoteMeta("SELECT total_spots, occupied_spots FROM parking_spots")
)

func TestLedger_Reserve_Success(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec(reserveSQL).WithArgs("s1").WillReturnResult(sqlmock.NewResult(0, 1))

	tx, err := db.Begin()
	require.NoError(t, err)

	require.NoError(t, Ledger{}.Reserve(context.Background(), tx, "s1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedger_Reserve_Full(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec(reserveSQL).WithArgs("s1").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(probeSQL).WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{"total_spots", "occupied_spots"}).AddRow(2, 2))

	tx, err := db.Begin()
	require.NoError(t, err)

	err = Ledger{}.Reserve(context.Background(), tx, "s1")
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
	assert.NotErrorIs(t, err, domain.ErrCapacityNotConfigured)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedger_Reserve_NotConfigured(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec(reserveSQL).WithArgs("s1").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(probeSQL).WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{"total_spots", "occupied_spots"}).AddRow(0, 0))

	tx, err := db.Begin()
	require.NoError(t, err)

	err = Ledger{}.Reserve(context.Background(), tx, "s1")
	assert.ErrorIs(t, err, domain.ErrCapacityNotConfigured)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestLedger_Reserve_SpotNotFound(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec(reserveSQL).WithArgs("missing").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(probeSQL).WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"total_spots", "occupied_spots"}))

	tx, err := db.Begin()
	require.NoError(t, err)

	err = Ledger{}.Reserve(context.Background(), tx, "missing")
	assert.ErrorIs(t, err, domain.ErrSpotNotFound)
}

func TestLedger_Release(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec(releaseSQL).WithArgs("s1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(releaseSQL).WithArgs("gone").WillReturnResult(sqlmock.NewResult(0, 0))

	tx, err := db.Begin()
	require.NoError(t, err)

	assert.NoError(t, Ledger{}.Release(context.Background(), tx, "s1"))
	assert.ErrorIs(t, Ledger{}.Release(context.Background(), tx, "gone"), domain.ErrSpotNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedger_Resize_BelowOccupancy(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec(resizeSQL).WithArgs("s1", "o1", 2).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT occupied_spots FROM parking_spots")).WithArgs("s1", "o1").
		WillReturnRows(sqlmock.NewRows([]string{"occupied_spots"}).AddRow(3))
	mock.ExpectExec(resizeSQL).WithArgs("s1", "o1", 3).WillReturnResult(sqlmock.NewResult(0, 1))

	tx, err := db.Begin()
	require.NoError(t, err)

	err = Ledger{}.Resize(context.Background(), tx, "s1", "o1", 2)
	assert.ErrorIs(t, err, domain.ErrCapacityBelowOccupancy)

	assert.NoError(t, Ledger{}.Resize(context.Background(), tx, "s1", "o1", 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedger_Resize_NotOwned(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec(resizeSQL).WithArgs("s1", "intruder", 5).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT occupied_spots FROM parking_spots")).WithArgs("s1", "intruder").
		WillReturnRows(sqlmock.NewRows([]string{"occupied_spots"}))

	tx, err := db.Begin()
	require.NoError(t, err)

	err = Ledger{}.Resize(context.Background(), tx, "s1", "intruder", 5)
	assert.ErrorIs(t, err, domain.ErrSpotNotFound)
}

func TestLedger_Resize_Negative(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()

	tx, err := db.Begin()
	require.NoError(t, err)

	err = Ledger{}.Resize(context.Background(), tx, "s1", "o1", -1)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}
