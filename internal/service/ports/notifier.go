package ports

import (
	"context"

	"github.com/stpnv0/ParkSpot/internal/domain"
)

type OwnerNotifier interface {
	NotifyBookingCreated(ctx context.Context, owner *domain.User, spot *domain.ParkingSpot, booking *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, owner *domain.User, spot *domain.ParkingSpot, booking *domain.Booking)
	NotifySlipsExpired(ctx context.Context, owner *domain.User, slips []*domain.ParkingSlip)
}
