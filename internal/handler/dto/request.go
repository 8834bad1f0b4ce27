package dto

type SignUpRequest struct {
	FullName       string `json:"full_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=6"`
	Role           string `json:"role"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type NearbyQuery struct {
	Latitude  *float64 `form:"lat" binding:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `form:"lng" binding:"omitempty,gte=-180,lte=180"`
	RadiusKM  float64  `form:"radius_km" binding:"gte=0"`
}

type CreateSpotRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description"`
	Address      string  `json:"address" binding:"required"`
	Latitude     float64 `json:"latitude" binding:"gte=-90,lte=90"`
	Longitude    float64 `json:"longitude" binding:"gte=-180,lte=180"`
	PricePerHour float64 `json:"price_per_hour" binding:"gte=0"`
	TotalSpots   int     `json:"total_spots" binding:"gte=0"`
}

type UpdateSpotRequest struct {
	IsAvailable *bool `json:"is_available"`
	TotalSpots  *int  `json:"total_spots"`
}

type CreateBookingRequest struct {
	ParkingSpotID string `json:"parking_spot_id" binding:"required,uuid"`
	StartTime     string `json:"start_time" binding:"required"`
	EndTime       string `json:"end_time" binding:"required"`
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone"`
	CarNumber     string `json:"car_number"`
}

type BookingActionRequest struct {
	Action string `json:"action" binding:"required,oneof=complete cancel"`
}

type CreateSlipRequest struct {
	BookingID     string `json:"booking_id" binding:"omitempty,uuid"`
	ParkingSpotID string `json:"parking_spot_id" binding:"omitempty,uuid"`
	ValidHours    int    `json:"valid_hours"`
	CarNumber     string `json:"car_number"`
}

type SlipActionRequest struct {
	Action  string   `json:"action" binding:"required,oneof=complete use"`
	Revenue *float64 `json:"revenue"`
}
