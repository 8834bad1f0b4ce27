package dto

import (
	"time"

	"github.com/stpnv0/ParkSpot/internal/domain"
	"gopkg.in/guregu/null.v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type UserResponse struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type TokenResponse struct {
	Token     string       `json:"token"`
	ExpiresAt string       `json:"expires_at"`
	User      UserResponse `json:"user"`
}

type SpotResponse struct {
	ID             string  `json:"id"`
	OwnerID        string  `json:"owner_id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Address        string  `json:"address"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	PricePerHour   float64 `json:"price_per_hour"`
	TotalSpots     int     `json:"total_spots"`
	OccupiedSpots  int     `json:"occupied_spots"`
	AvailableSpots int     `json:"available_spots"`
	IsAvailable    bool    `json:"is_available"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

type NearbySpotResponse struct {
	SpotResponse
	DistanceKM *float64 `json:"distance_km,omitempty"`
}

type SpotDetailsResponse struct {
	SpotResponse
	ActiveBookings int `json:"active_bookings"`
	Slips          int `json:"slips"`
}

type BookingResponse struct {
	ID            string  `json:"id"`
	ParkingSpotID string  `json:"parking_spot_id"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	TotalPrice    float64 `json:"total_price"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	CustomerPhone *string `json:"customer_phone,omitempty"`
	CarNumber     *string `json:"car_number,omitempty"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
}

type BookingCreatedResponse struct {
	Success    bool            `json:"success"`
	Booking    BookingResponse `json:"booking"`
	TotalPrice float64         `json:"total_price"`
}

type BookingViewResponse struct {
	BookingResponse
	SpotTitle string  `json:"spot_title"`
	Address   string  `json:"address"`
	SlipID    *string `json:"slip_id,omitempty"`
}

type SlipResponse struct {
	ID            string   `json:"id"`
	SlipNumber    string   `json:"slip_number"`
	QRCode        string   `json:"qr_code"`
	ValidUntil    string   `json:"valid_until"`
	CarNumber     *string  `json:"car_number,omitempty"`
	BookingID     *string  `json:"booking_id,omitempty"`
	ParkingSpotID string   `json:"parking_spot_id"`
	Status        string   `json:"status"`
	Revenue       *float64 `json:"revenue,omitempty"`
	CompletedAt   *string  `json:"completed_at,omitempty"`
	CreatedAt     string   `json:"created_at"`
}

type SlipViewResponse struct {
	SlipResponse
	SpotTitle string `json:"spot_title"`
	Address   string `json:"address"`
}

type StatsResponse struct {
	TotalSpots     int     `json:"total_spots"`
	TotalCapacity  int     `json:"total_capacity"`
	OccupiedSpots  int     `json:"occupied_spots"`
	AvailableSpots int     `json:"available_spots"`
	ActiveBookings int     `json:"active_bookings"`
	ActiveSlips    int     `json:"active_slips"`
	Revenue        float64 `json:"revenue"`
	OccupancyRate  int     `json:"occupancy_rate"`
}

func formatTime(t null.Time) *string {
	if !t.Valid {
		return nil
	}
	s := t.Time.Format(time.RFC3339)
	return &s
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		FullName:       u.FullName,
		Email:          u.Email,
		Role:           string(u.Role),
		TelegramChatID: u.TelegramChatID.Ptr(),
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToTokenResponse(t *domain.AuthToken) TokenResponse {
	return TokenResponse{
		Token:     t.Token,
		ExpiresAt: t.ExpiresAt.Format(time.RFC3339),
		User:      ToUserResponse(t.User),
	}
}

func ToSpotResponse(s *domain.ParkingSpot) SpotResponse {
	return SpotResponse{
		ID:             s.ID,
		OwnerID:        s.OwnerID,
		Title:          s.Title,
		Description:    s.Description,
		Address:        s.Address,
		Latitude:       s.Latitude,
		Longitude:      s.Longitude,
		PricePerHour:   s.PricePerHour,
		TotalSpots:     s.TotalSpots,
		OccupiedSpots:  s.OccupiedSpots,
		AvailableSpots: s.AvailableSpots(),
		IsAvailable:    s.IsAvailable,
		CreatedAt:      s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      s.UpdatedAt.Format(time.RFC3339),
	}
}

// ToNearbySpotResponse omits the distance when no position was given.
func ToNearbySpotResponse(s *domain.SpotSummary, located bool) NearbySpotResponse {
	resp := NearbySpotResponse{SpotResponse: ToSpotResponse(&s.Spot)}
	if located {
		d := s.DistanceKM
		resp.DistanceKM = &d
	}
	return resp
}

func ToSpotDetailsResponse(d *domain.SpotDetails) SpotDetailsResponse {
	return SpotDetailsResponse{
		SpotResponse:   ToSpotResponse(&d.Spot),
		ActiveBookings: d.ActiveBookings,
		Slips:          d.Slips,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		ParkingSpotID: b.ParkingSpotID,
		StartTime:     b.StartTime.Format(time.RFC3339),
		EndTime:       b.EndTime.Format(time.RFC3339),
		TotalPrice:    b.TotalPrice,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone.Ptr(),
		CarNumber:     b.CarNumber.Ptr(),
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingCreatedResponse(b *domain.Booking) BookingCreatedResponse {
	return BookingCreatedResponse{
		Success:    true,
		Booking:    ToBookingResponse(b),
		TotalPrice: b.TotalPrice,
	}
}

func ToBookingViewResponse(v *domain.BookingView) BookingViewResponse {
	return BookingViewResponse{
		BookingResponse: ToBookingResponse(&v.Booking),
		SpotTitle:       v.SpotTitle,
		Address:         v.Address,
		SlipID:          v.SlipID.Ptr(),
	}
}

func ToSlipResponse(s *domain.ParkingSlip) SlipResponse {
	return SlipResponse{
		ID:            s.ID,
		SlipNumber:    s.SlipNumber,
		QRCode:        s.QRCode,
		ValidUntil:    s.ValidUntil.Format(time.RFC3339),
		CarNumber:     s.CarNumber.Ptr(),
		BookingID:     s.BookingID.Ptr(),
		ParkingSpotID: s.ParkingSpotID,
		Status:        string(s.Status),
		Revenue:       s.Revenue.Ptr(),
		CompletedAt:   formatTime(s.CompletedAt),
		CreatedAt:     s.CreatedAt.Format(time.RFC3339),
	}
}

func ToSlipViewResponse(v *domain.SlipView) SlipViewResponse {
	return SlipViewResponse{
		SlipResponse: ToSlipResponse(&v.Slip),
		SpotTitle:    v.SpotTitle,
		Address:      v.Address,
	}
}

func ToStatsResponse(s *domain.OwnerStats) StatsResponse {
	return StatsResponse{
		TotalSpots:     s.TotalSpots,
		TotalCapacity:  s.TotalCapacity,
		OccupiedSpots:  s.OccupiedSpots,
		AvailableSpots: s.TotalCapacity - s.OccupiedSpots,
		ActiveBookings: s.ActiveBookings,
		ActiveSlips:    s.ActiveSlips,
		Revenue:        s.Revenue,
		OccupancyRate:  s.OccupancyRate,
	}
}
