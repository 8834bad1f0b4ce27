package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/ParkSpot/internal/domain"
	"github.com/stpnv0/ParkSpot/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_ExpiresOverdue(t *testing.T) {
	expirer := mocks.NewMockOverdueExpirer(t)
	log := newTestLogger(t)

	s := New(expirer, 50*time.Millisecond, log)

	report := &domain.ExpiryReport{
		Slips:    []*domain.ParkingSlip{{ID: "sl1", SlipNumber: "PS-1-ABCDE", ParkingSpotID: "s1"}},
		Bookings: []*domain.Booking{{ID: "b1", ParkingSpotID: "s1"}},
	}
	expirer.EXPECT().ExpireOverdue(mock.Anything).Return(report, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(expirer.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	expirer := mocks.NewMockOverdueExpirer(t)
	log := newTestLogger(t)

	s := New(expirer, 50*time.Millisecond, log)

	expirer.EXPECT().ExpireOverdue(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(expirer.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	expirer := mocks.NewMockOverdueExpirer(t)
	log := newTestLogger(t)

	s := New(expirer, time.Second, log)

	expirer.EXPECT().ExpireOverdue(mock.Anything).Return(&domain.ExpiryReport{}, nil).Maybe()

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_SweepsOnStart(t *testing.T) {
	expirer := mocks.NewMockOverdueExpirer(t)
	log := newTestLogger(t)

	s := New(expirer, time.Hour, log)

	expirer.EXPECT().ExpireOverdue(mock.Anything).Return(&domain.ExpiryReport{}, nil).Once()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	expirer.AssertNumberOfCalls(t, "ExpireOverdue", 1)
}

func TestScheduler_MultipleTicks(t *testing.T) {
	expirer := mocks.NewMockOverdueExpirer(t)
	log := newTestLogger(t)

	s := New(expirer, 20*time.Millisecond, log)

	expirer.EXPECT().ExpireOverdue(mock.Anything).Return(&domain.ExpiryReport{}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(expirer.Calls), 3)
}
