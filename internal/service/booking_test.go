package service

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/ParkSpot/internal/domain"
	"github.com/stpnv0/ParkSpot/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bookingDeps struct {
	bookings *mocks.MockBookingRepo
	spots    *mocks.MockSpotRepo
	users    *mocks.MockUserRepo
	cache    *mocks.MockSpotCache
	notifier *mocks.MockOwnerNotifier
}

func newBookingService(t *testing.T) (*BookingService, bookingDeps) {
	t.Helper()
	d := bookingDeps{
		bookings: mocks.NewMockBookingRepo(t),
		spots:    mocks.NewMockSpotRepo(t),
		users:    mocks.NewMockUserRepo(t),
		cache:    mocks.NewMockSpotCache(t),
		notifier: mocks.NewMockOwnerNotifier(t),
	}
	svc := NewBookingService(d.bookings, d.spots, d.users, d.cache, d.notifier, newTestLogger(t))
	return svc, d
}

func bookingInput() domain.CreateBookingInput {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return domain.CreateBookingInput{
		ParkingSpotID: "s1",
		StartTime:     start,
		EndTime:       start.Add(150 * time.Minute),
		CustomerName:  "Asha",
		CustomerEmail: "asha@example.com",
		CarNumber:     "DL01AB1234",
	}
}

func TestBookingService_Book_Success(t *testing.T) {
	svc, d := newBookingService(t)
	spot := &domain.ParkingSpot{ID: "s1", OwnerID: "o1", PricePerHour: 100, TotalSpots: 2, IsAvailable: true}
	owner := &domain.User{ID: "o1", Role: domain.RoleOwner}
	done := make(chan struct{})

	d.spots.EXPECT().GetByID(mock.Anything, "s1").Return(spot, nil)
	d.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	d.cache.EXPECT().Invalidate(mock.Anything).Return()
	d.users.EXPECT().GetByID(mock.Anything, "o1").Return(owner, nil)
	d.notifier.EXPECT().NotifyBookingCreated(mock.Anything, owner, spot, mock.Anything).
		Run(func(context.Context, *domain.User, *domain.ParkingSpot, *domain.Booking) { close(done) }).
		Return()

	b, err := svc.Book(context.Background(), bookingInput())

	require.NoError(t, err)
	assert.Equal(t, "o1", b.OwnerID)
	assert.Equal(t, domain.BookingStatusActive, b.Status)
	assert.InDelta(t, 250, b.TotalPrice, 1e-9)
	assert.Equal(t, "DL01AB1234", b.CarNumber.String)
	assert.False(t, b.CustomerPhone.Valid)

	waitFor(t, done)
}

func TestBookingService_Book_InvalidWindow(t *testing.T) {
	svc, _ := newBookingService(t)
	in := bookingInput()
	in.EndTime = in.StartTime

	_, err := svc.Book(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Book_SpotNotFound(t *testing.T) {
	svc, d := newBookingService(t)

	d.spots.EXPECT().GetByID(mock.Anything, "s1").Return(nil, domain.ErrSpotNotFound)

	_, err := svc.Book(context.Background(), bookingInput())
	assert.ErrorIs(t, err, domain.ErrSpotNotFound)
}

func TestBookingService_Book_SpotUnavailable(t *testing.T) {
	svc, d := newBookingService(t)

	d.spots.EXPECT().GetByID(mock.Anything, "s1").
		Return(&domain.ParkingSpot{ID: "s1", TotalSpots: 3, IsAvailable: false}, nil)

	_, err := svc.Book(context.Background(), bookingInput())
	assert.ErrorIs(t, err, domain.ErrSpotUnavailable)
}

func TestBookingService_Book_Full(t *testing.T) {
	svc, d := newBookingService(t)

	d.spots.EXPECT().GetByID(mock.Anything, "s1").
		Return(&domain.ParkingSpot{ID: "s1", OwnerID: "o1", TotalSpots: 1, OccupiedSpots: 1, IsAvailable: true}, nil)
	d.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrCapacityExceeded)

	_, err := svc.Book(context.Background(), bookingInput())
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestBookingService_Transition_CancelNotifiesOwner(t *testing.T) {
	svc, d := newBookingService(t)
	booking := &domain.Booking{ID: "b1", ParkingSpotID: "s1", OwnerID: "o1", Status: domain.BookingStatusCancelled}
	spot := &domain.ParkingSpot{ID: "s1", OwnerID: "o1"}
	owner := &domain.User{ID: "o1"}
	done := make(chan struct{})

	d.bookings.EXPECT().Transition(mock.Anything, "b1", "o1", domain.BookingStatusCancelled).Return(booking, nil)
	d.cache.EXPECT().Invalidate(mock.Anything).Return()
	d.spots.EXPECT().GetByID(mock.Anything, "s1").Return(spot, nil)
	d.users.EXPECT().GetByID(mock.Anything, "o1").Return(owner, nil)
	d.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, owner, spot, booking).
		Run(func(context.Context, *domain.User, *domain.ParkingSpot, *domain.Booking) { close(done) }).
		Return()

	b, err := svc.Transition(context.Background(), "b1", "o1", domain.BookingActionCancel)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, b.Status)
	waitFor(t, done)
}

func TestBookingService_Transition_Complete(t *testing.T) {
	svc, d := newBookingService(t)

	d.bookings.EXPECT().Transition(mock.Anything, "b1", "o1", domain.BookingStatusCompleted).
		Return(&domain.Booking{ID: "b1", Status: domain.BookingStatusCompleted}, nil)
	d.cache.EXPECT().Invalidate(mock.Anything).Return()

	_, err := svc.Transition(context.Background(), "b1", "o1", domain.BookingActionComplete)
	require.NoError(t, err)
}

func TestBookingService_Transition_Errors(t *testing.T) {
	svc, d := newBookingService(t)

	_, err := svc.Transition(context.Background(), "b1", "o1", domain.BookingAction("approve"))
	assert.ErrorIs(t, err, domain.ErrValidation)

	d.bookings.EXPECT().Transition(mock.Anything, "b1", "o1", domain.BookingStatusCancelled).
		Return(nil, domain.ErrBookingNotActive)

	_, err = svc.Transition(context.Background(), "b1", "o1", domain.BookingActionCancel)
	assert.ErrorIs(t, err, domain.ErrBookingNotActive)
}

func TestBookingService_ListByOwner(t *testing.T) {
	svc, d := newBookingService(t)

	_, err := svc.ListByOwner(context.Background(), "o1", domain.BookingStatus("PENDING"))
	assert.ErrorIs(t, err, domain.ErrValidation)

	d.bookings.EXPECT().ListByOwner(mock.Anything, "o1", domain.BookingStatusActive).
		Return([]*domain.BookingView{{SpotTitle: "Mall P2"}}, nil)

	res, err := svc.ListByOwner(context.Background(), "o1", domain.BookingStatusActive)
	require.NoError(t, err)
	assert.Len(t, res, 1)
}
