package ports

import (
	"context"
	"time"

	"github.com/stpnv0/ParkSpot/internal/domain"
)

type SlipRepo interface {
	CreateManual(ctx context.Context, s *domain.ParkingSlip) error
	CreateFromBooking(ctx context.Context, s *domain.ParkingSlip) error
	GetOwned(ctx context.Context, id, ownerID string) (*domain.ParkingSlip, error)
	ListByOwner(ctx context.Context, ownerID string, status domain.SlipStatus) ([]*domain.SlipView, error)
	Close(ctx context.Context, id, ownerID string, c domain.SlipCompletion) (*domain.ParkingSlip, error)
	Delete(ctx context.Context, id, ownerID string) error
	Clear(ctx context.Context, ownerID string) error
	ExpireOverdue(ctx context.Context, now time.Time) ([]*domain.ParkingSlip, error)
}
