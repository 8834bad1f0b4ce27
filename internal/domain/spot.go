package domain

import (
	"math"
	"time"
)

type ParkingSpot struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"owner_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Address       string    `json:"address"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	PricePerHour  float64   `json:"price_per_hour"`
	TotalSpots    int       `json:"total_spots"`
	OccupiedSpots int       `json:"occupied_spots"`
	IsAvailable   bool      `json:"is_available"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AvailableSpots never goes below zero even if the counters drifted.
func (s *ParkingSpot) AvailableSpots() int {
	if free := s.TotalSpots - s.OccupiedSpots; free > 0 {
		return free
	}
	return 0
}

func (s *ParkingSpot) IsFull() bool {
	return s.TotalSpots <= 0 || s.OccupiedSpots >= s.TotalSpots
}

// SpotSummary is a spot as shown on the public map.
type SpotSummary struct {
	Spot       ParkingSpot `json:"spot"`
	DistanceKM float64     `json:"distance_km"`
}

// SpotDetails adds per-spot counters for the owner dashboard.
type SpotDetails struct {
	Spot           ParkingSpot `json:"spot"`
	ActiveBookings int         `json:"active_bookings"`
	Slips          int         `json:"slips"`
}

type CreateSpotInput struct {
	OwnerID      string
	Title        string
	Description  string
	Address      string
	Latitude     float64
	Longitude    float64
	PricePerHour float64
	TotalSpots   int
}

// UpdateSpotInput carries optional changes; nil fields are left untouched.
type UpdateSpotInput struct {
	IsAvailable *bool
	TotalSpots  *int
}

type NearbyQuery struct {
	Latitude  *float64
	Longitude *float64
	RadiusKM  float64
}

const earthRadiusKM = 6371.0

// DistanceKM is the haversine distance between two coordinates.
func DistanceKM(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKM * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
