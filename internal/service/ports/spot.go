package ports

import (
	"context"

	"github.com/stpnv0/ParkSpot/internal/domain"
)

type SpotRepo interface {
	Create(ctx context.Context, s *domain.ParkingSpot) error
	GetByID(ctx context.Context, id string) (*domain.ParkingSpot, error)
	GetOwned(ctx context.Context, id, ownerID string) (*domain.SpotDetails, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.SpotDetails, error)
	ListAvailable(ctx context.Context) ([]*domain.ParkingSpot, error)
	Update(ctx context.Context, id, ownerID string, in domain.UpdateSpotInput) (*domain.ParkingSpot, error)
	Delete(ctx context.Context, id, ownerID string) error
	Stats(ctx context.Context, ownerID string) (*domain.OwnerStats, error)
}

// SpotCache holds the public listing of available spots.
type SpotCache interface {
	GetAvailable(ctx context.Context) ([]*domain.ParkingSpot, bool)
	SetAvailable(ctx context.Context, spots []*domain.ParkingSpot)
	Invalidate(ctx context.Context)
}
