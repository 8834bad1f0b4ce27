package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/ParkSpot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"gopkg.in/guregu/null.v4"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testBooking() (*domain.ParkingSpot, *domain.Booking) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	spot := &domain.ParkingSpot{Title: "Mall P2", TotalSpots: 5, OccupiedSpots: 2}
	booking := &domain.Booking{
		CustomerName: "Asha",
		StartTime:    start,
		EndTime:      start.Add(2 * time.Hour),
		TotalPrice:   100,
		CarNumber:    null.StringFrom("DL01AB1234"),
	}
	return spot, booking
}

func TestBookingCreatedText(t *testing.T) {
	spot, booking := testBooking()

	text := bookingCreatedText(spot, booking)

	assert.Contains(t, text, "Mall P2")
	assert.Contains(t, text, "01.03.2026 10:00 - 01.03.2026 12:00")
	assert.Contains(t, text, "100.00")
	assert.Contains(t, text, "DL01AB1234")
}

func TestBookingCancelledText(t *testing.T) {
	spot, booking := testBooking()

	assert.Contains(t, bookingCancelledText(spot, booking), "Свободных мест: 3")
}

func TestSlipsExpiredText(t *testing.T) {
	text := slipsExpiredText([]*domain.ParkingSlip{
		{SlipNumber: "PS-1-AAAAA", CarNumber: null.StringFrom("KA05")},
		{SlipNumber: "PS-2-BBBBB"},
	})

	assert.Contains(t, text, "талонов: 2")
	assert.Contains(t, text, "PS-1-AAAAA (KA05)")
	assert.Contains(t, text, "PS-2-BBBBB")
}

func TestNotifier_DisabledWithoutToken(t *testing.T) {
	n, err := NewTelegramNotifier("", newTestLogger(t))
	require.NoError(t, err)

	spot, booking := testBooking()
	owner := &domain.User{TelegramChatID: null.IntFrom(42)}

	assert.NotPanics(t, func() {
		n.NotifyBookingCreated(context.Background(), owner, spot, booking)
		n.NotifySlipsExpired(context.Background(), owner, nil)
	})
}
