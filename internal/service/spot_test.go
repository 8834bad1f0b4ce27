package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stpnv0/ParkSpot/internal/domain"
	"github.com/stpnv0/ParkSpot/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSpotService(t *testing.T) (*SpotService, *mocks.MockSpotRepo, *mocks.MockSpotCache) {
	t.Helper()
	repo := mocks.NewMockSpotRepo(t)
	cache := mocks.NewMockSpotCache(t)
	return NewSpotService(repo, cache, newTestLogger(t)), repo, cache
}

func TestSpotService_Create_Success(t *testing.T) {
	svc, repo, cache := newSpotService(t)

	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(s *domain.ParkingSpot) bool {
		return s.OwnerID == "o1" && s.TotalSpots == 10 && s.OccupiedSpots == 0 && s.IsAvailable
	})).Return(nil)
	cache.EXPECT().Invalidate(mock.Anything).Return()

	spot, err := svc.Create(context.Background(), domain.CreateSpotInput{
		OwnerID:      "o1",
		Title:        "  Mall P2 ",
		Address:      "Connaught Place",
		Latitude:     28.6315,
		Longitude:    77.2167,
		PricePerHour: 50,
		TotalSpots:   10,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, spot.ID)
	assert.Equal(t, "Mall P2", spot.Title)
	assert.Equal(t, 10, spot.AvailableSpots())
}

func TestSpotService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input domain.CreateSpotInput
	}{
		{"empty title", domain.CreateSpotInput{Address: "a"}},
		{"empty address", domain.CreateSpotInput{Title: "t"}},
		{"negative price", domain.CreateSpotInput{Title: "t", Address: "a", PricePerHour: -1}},
		{"negative capacity", domain.CreateSpotInput{Title: "t", Address: "a", TotalSpots: -1}},
		{"latitude out of range", domain.CreateSpotInput{Title: "t", Address: "a", Latitude: 91}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newSpotService(t)

			_, err := svc.Create(context.Background(), tt.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestSpotService_ListNearby_CacheHit(t *testing.T) {
	svc, _, cache := newSpotService(t)

	cache.EXPECT().GetAvailable(mock.Anything).Return([]*domain.ParkingSpot{
		{ID: "s1", TotalSpots: 5, OccupiedSpots: 2},
	}, true)

	res, err := svc.ListNearby(context.Background(), domain.NearbyQuery{})

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, 3, res[0].Spot.AvailableSpots())
	assert.Zero(t, res[0].DistanceKM)
}

func TestSpotService_ListNearby_CacheMiss(t *testing.T) {
	svc, repo, cache := newSpotService(t)
	spots := []*domain.ParkingSpot{{ID: "s1"}}

	cache.EXPECT().GetAvailable(mock.Anything).Return(nil, false)
	repo.EXPECT().ListAvailable(mock.Anything).Return(spots, nil)
	cache.EXPECT().SetAvailable(mock.Anything, spots).Return()

	res, err := svc.ListNearby(context.Background(), domain.NearbyQuery{})

	require.NoError(t, err)
	assert.Len(t, res, 1)
}

func TestSpotService_ListNearby_RadiusAndOrder(t *testing.T) {
	svc, _, cache := newSpotService(t)

	cache.EXPECT().GetAvailable(mock.Anything).Return([]*domain.ParkingSpot{
		{ID: "india-gate", Latitude: 28.6129, Longitude: 77.2295},
		{ID: "airport", Latitude: 28.5562, Longitude: 77.1000},
		{ID: "cp", Latitude: 28.6315, Longitude: 77.2167},
	}, true)

	lat, lng := 28.6315, 77.2167
	res, err := svc.ListNearby(context.Background(), domain.NearbyQuery{
		Latitude:  &lat,
		Longitude: &lng,
		RadiusKM:  5,
	})

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "cp", res[0].Spot.ID)
	assert.Equal(t, "india-gate", res[1].Spot.ID)
	assert.InDelta(t, 2.4, res[1].DistanceKM, 0.2)
}

func TestSpotService_ListNearby_NegativeRadius(t *testing.T) {
	svc, _, _ := newSpotService(t)

	_, err := svc.ListNearby(context.Background(), domain.NearbyQuery{RadiusKM: -1})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSpotService_Update_BelowOccupancy(t *testing.T) {
	svc, repo, _ := newSpotService(t)
	two := 2
	in := domain.UpdateSpotInput{TotalSpots: &two}

	repo.EXPECT().Update(mock.Anything, "s1", "o1", in).Return(nil, domain.ErrCapacityBelowOccupancy)

	_, err := svc.Update(context.Background(), "s1", "o1", in)
	assert.ErrorIs(t, err, domain.ErrCapacityBelowOccupancy)
}

func TestSpotService_Update_Success(t *testing.T) {
	svc, repo, cache := newSpotService(t)
	five := 5
	in := domain.UpdateSpotInput{TotalSpots: &five}

	repo.EXPECT().Update(mock.Anything, "s1", "o1", in).
		Return(&domain.ParkingSpot{ID: "s1", TotalSpots: 5, OccupiedSpots: 3}, nil)
	cache.EXPECT().Invalidate(mock.Anything).Return()

	spot, err := svc.Update(context.Background(), "s1", "o1", in)
	require.NoError(t, err)
	assert.Equal(t, 2, spot.AvailableSpots())
}

func TestSpotService_Update_Empty(t *testing.T) {
	svc, _, _ := newSpotService(t)

	_, err := svc.Update(context.Background(), "s1", "o1", domain.UpdateSpotInput{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSpotService_Delete(t *testing.T) {
	svc, repo, cache := newSpotService(t)

	repo.EXPECT().Delete(mock.Anything, "s1", "o1").Return(nil)
	cache.EXPECT().Invalidate(mock.Anything).Return()
	require.NoError(t, svc.Delete(context.Background(), "s1", "o1"))

	repo.EXPECT().Delete(mock.Anything, "s2", "o1").Return(errors.New("db down"))
	assert.Error(t, svc.Delete(context.Background(), "s2", "o1"))
}
