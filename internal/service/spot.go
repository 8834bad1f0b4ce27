package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/ParkSpot/internal/domain"
	"github.com/stpnv0/ParkSpot/internal/metrics"
	"github.com/stpnv0/ParkSpot/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type SpotService struct {
	repo   ports.SpotRepo
	cache  ports.SpotCache
	logger logger.Logger
}

func NewSpotService(repo ports.SpotRepo, cache ports.SpotCache, logger logger.Logger) *SpotService {
	return &SpotService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (s *SpotService) Create(ctx context.Context, input domain.CreateSpotInput) (*domain.ParkingSpot, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Address = strings.TrimSpace(input.Address)

	if input.Title == "" || input.Address == "" {
		return nil, fmt.Errorf("%w: title and address are required", domain.ErrValidation)
	}
	if input.PricePerHour < 0 {
		return nil, fmt.Errorf("%w: price_per_hour must not be negative", domain.ErrValidation)
	}
	if input.TotalSpots < 0 {
		return nil, fmt.Errorf("%w: total_spots must not be negative", domain.ErrValidation)
	}
	if input.Latitude < -90 || input.Latitude > 90 || input.Longitude < -180 || input.Longitude > 180 {
		return nil, fmt.Errorf("%w: coordinates are out of range", domain.ErrValidation)
	}

	now := time.Now().UTC()
	spot := &domain.ParkingSpot{
		ID:           uuid.New().String(),
		OwnerID:      input.OwnerID,
		Title:        input.Title,
		Description:  input.Description,
		Address:      input.Address,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		PricePerHour: input.PricePerHour,
		TotalSpots:   input.TotalSpots,
		IsAvailable:  true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, spot); err != nil {
		return nil, fmt.Errorf("create spot: %w", err)
	}
	s.cache.Invalidate(ctx)

	s.logger.Info("parking spot created",
		logger.String("spot_id", spot.ID),
		logger.String("owner_id", spot.OwnerID),
		logger.Int("total_spots", spot.TotalSpots),
	)

	return spot, nil
}

func (s *SpotService) Get(ctx context.Context, id string) (*domain.ParkingSpot, error) {
	return s.repo.GetByID(ctx, id)
}

// ListNearby returns bookable spots, nearest first when a position is given.
// A zero radius disables the distance filter.
func (s *SpotService) ListNearby(ctx context.Context, q domain.NearbyQuery) ([]*domain.SpotSummary, error) {
	if q.RadiusKM < 0 {
		return nil, fmt.Errorf("%w: radius_km must not be negative", domain.ErrValidation)
	}

	spots, ok := s.cache.GetAvailable(ctx)
	if !ok {
		var err error
		spots, err = s.repo.ListAvailable(ctx)
		if err != nil {
			return nil, fmt.Errorf("list available spots: %w", err)
		}
		s.cache.SetAvailable(ctx, spots)
	}

	located := q.Latitude != nil && q.Longitude != nil
	res := make([]*domain.SpotSummary, 0, len(spots))
	for _, sp := range spots {
		sum := &domain.SpotSummary{Spot: *sp}
		if located {
			sum.DistanceKM = domain.DistanceKM(*q.Latitude, *q.Longitude, sp.Latitude, sp.Longitude)
			if q.RadiusKM > 0 && sum.DistanceKM > q.RadiusKM {
				continue
			}
		}
		res = append(res, sum)
	}

	if located {
		sort.SliceStable(res, func(i, j int) bool {
			return res[i].DistanceKM < res[j].DistanceKM
		})
	}

	return res, nil
}

func (s *SpotService) GetOwned(ctx context.Context, id, ownerID string) (*domain.SpotDetails, error) {
	return s.repo.GetOwned(ctx, id, ownerID)
}

func (s *SpotService) ListOwned(ctx context.Context, ownerID string) ([]*domain.SpotDetails, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *SpotService) Update(ctx context.Context, id, ownerID string, input domain.UpdateSpotInput) (*domain.ParkingSpot, error) {
	if input.IsAvailable == nil && input.TotalSpots == nil {
		return nil, fmt.Errorf("%w: nothing to update", domain.ErrValidation)
	}

	spot, err := s.repo.Update(ctx, id, ownerID, input)
	if input.TotalSpots != nil {
		metrics.IncLedgerOp("resize", ledgerOutcome(err))
	}
	if err != nil {
		return nil, fmt.Errorf("update spot: %w", err)
	}
	s.cache.Invalidate(ctx)

	s.logger.Info("parking spot updated",
		logger.String("spot_id", id),
		logger.Int("total_spots", spot.TotalSpots),
		logger.Int("occupied_spots", spot.OccupiedSpots),
	)

	return spot, nil
}

func (s *SpotService) Delete(ctx context.Context, id, ownerID string) error {
	if err := s.repo.Delete(ctx, id, ownerID); err != nil {
		return fmt.Errorf("delete spot: %w", err)
	}
	s.cache.Invalidate(ctx)

	s.logger.Info("parking spot deleted", logger.String("spot_id", id))

	return nil
}

func (s *SpotService) Stats(ctx context.Context, ownerID string) (*domain.OwnerStats, error) {
	return s.repo.Stats(ctx, ownerID)
}
