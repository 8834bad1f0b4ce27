package domain

import (
	"fmt"
	"math"
	"time"

	"gopkg.in/guregu/null.v4"
)

type SlipStatus string

const (
	SlipStatusActive    SlipStatus = "ACTIVE"
	SlipStatusCompleted SlipStatus = "COMPLETED"
	SlipStatusExpired   SlipStatus = "EXPIRED"
	SlipStatusUsed      SlipStatus = "USED"
)

func (s SlipStatus) Valid() bool {
	switch s {
	case SlipStatusActive, SlipStatusCompleted, SlipStatusExpired, SlipStatusUsed:
		return true
	}
	return false
}

func (s SlipStatus) Terminal() bool {
	return s == SlipStatusCompleted || s == SlipStatusExpired || s == SlipStatusUsed
}

const (
	DefaultSlipValidHours = 12
	MaxSlipValidHours     = 24 * 30
)

type ParkingSlip struct {
	ID            string      `json:"id"`
	SlipNumber    string      `json:"slip_number"`
	QRCode        string      `json:"qr_code"`
	QRPayload     string      `json:"qr_payload"`
	ValidUntil    time.Time   `json:"valid_until"`
	CarNumber     null.String `json:"car_number"`
	BookingID     null.String `json:"booking_id"`
	ParkingSpotID string      `json:"parking_spot_id"`
	OwnerID       string      `json:"owner_id"`
	Status        SlipStatus  `json:"status"`
	CapacityHeld  bool        `json:"capacity_held"`
	Revenue       null.Float  `json:"revenue"`
	CompletedAt   null.Time   `json:"completed_at"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// SlipView is a slip joined with its spot for owner listings.
type SlipView struct {
	Slip      ParkingSlip `json:"slip"`
	SpotTitle string      `json:"spot_title"`
	Address   string      `json:"address"`
}

// CreateSlipInput selects the booking flow when BookingID is set and the
// manual flow otherwise.
type CreateSlipInput struct {
	OwnerID       string
	BookingID     string
	ParkingSpotID string
	ValidHours    int
	CarNumber     string
}

func (in *CreateSlipInput) Normalize() error {
	if in.BookingID != "" {
		return nil
	}
	if in.ParkingSpotID == "" {
		return fmt.Errorf("%w: booking_id or parking_spot_id is required", ErrValidation)
	}
	if in.ValidHours == 0 {
		in.ValidHours = DefaultSlipValidHours
	}
	if in.ValidHours < 0 || in.ValidHours > MaxSlipValidHours {
		return fmt.Errorf("%w: valid_hours must be between 1 and %d", ErrValidation, MaxSlipValidHours)
	}
	return nil
}

type SlipAction string

const (
	SlipActionComplete SlipAction = "complete"
	SlipActionUse      SlipAction = "use"
)

// SlipCompletion is what the store needs to close an active slip.
type SlipCompletion struct {
	Status      SlipStatus
	Revenue     null.Float
	CompletedAt time.Time
}

// SlipRevenue picks the revenue for a completed slip: a positive override,
// else the linked booking's price, else whole started hours since creation.
// An override of zero is treated as absent.
func SlipRevenue(override *float64, bookingPrice null.Float, createdAt, completedAt time.Time, pricePerHour float64) float64 {
	if override != nil && *override > 0 {
		return *override
	}
	if bookingPrice.Valid {
		return bookingPrice.Float64
	}
	hours := completedAt.Sub(createdAt).Hours()
	if hours < 0 {
		hours = 0
	}
	return math.Ceil(hours) * pricePerHour
}

// SlipPayload is the data encoded into the slip's QR code.
type SlipPayload struct {
	SlipNumber    string    `json:"slipNumber"`
	BookingID     string    `json:"bookingId,omitempty"`
	ParkingSpotID string    `json:"parkingSpotId"`
	SpotTitle     string    `json:"spotTitle"`
	ValidUntil    time.Time `json:"validUntil"`
	CarNumber     string    `json:"carNumber,omitempty"`
}

// ExpiryReport lists what a sweep closed.
type ExpiryReport struct {
	Slips    []*ParkingSlip
	Bookings []*Booking
}
