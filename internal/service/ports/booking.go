package ports

import (
	"context"
	"time"

	"github.com/stpnv0/ParkSpot/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetOwned(ctx context.Context, id, ownerID string) (*domain.Booking, error)
	ListByOwner(ctx context.Context, ownerID string, status domain.BookingStatus) ([]*domain.BookingView, error)
	Transition(ctx context.Context, id, ownerID string, to domain.BookingStatus) (*domain.Booking, error)
	ExpireOverdue(ctx context.Context, now time.Time) ([]*domain.Booking, error)
}
