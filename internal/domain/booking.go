package domain

import (
	"fmt"
	"time"

	"gopkg.in/guregu/null.v4"
)

type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "ACTIVE"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// RevenueStatuses are the booking statuses counted as earned revenue.
var RevenueStatuses = []BookingStatus{BookingStatusActive, BookingStatusCompleted}

type Booking struct {
	ID            string        `json:"id"`
	ParkingSpotID string        `json:"parking_spot_id"`
	OwnerID       string        `json:"owner_id"`
	StartTime     time.Time     `json:"start_time"`
	EndTime       time.Time     `json:"end_time"`
	TotalPrice    float64       `json:"total_price"`
	CustomerName  string        `json:"customer_name"`
	CustomerEmail string        `json:"customer_email"`
	CustomerPhone null.String   `json:"customer_phone"`
	CarNumber     null.String   `json:"car_number"`
	Status        BookingStatus `json:"status"`
	CapacityHeld  bool          `json:"capacity_held"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type CreateBookingInput struct {
	ParkingSpotID string
	StartTime     time.Time
	EndTime       time.Time
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	CarNumber     string
}

func (in CreateBookingInput) Validate() error {
	if in.ParkingSpotID == "" {
		return fmt.Errorf("%w: parking_spot_id is required", ErrValidation)
	}
	if in.CustomerName == "" || in.CustomerEmail == "" {
		return fmt.Errorf("%w: customer_name and customer_email are required", ErrValidation)
	}
	if !in.EndTime.After(in.StartTime) {
		return fmt.Errorf("%w: end_time must be after start_time", ErrValidation)
	}
	return nil
}

// BookingPrice charges the exact fractional hours of the window.
func BookingPrice(start, end time.Time, pricePerHour float64) float64 {
	return end.Sub(start).Hours() * pricePerHour
}

type BookingAction string

const (
	BookingActionComplete BookingAction = "complete"
	BookingActionCancel   BookingAction = "cancel"
)

// Target returns the status an action moves an active booking to.
func (a BookingAction) Target() (BookingStatus, error) {
	switch a {
	case BookingActionComplete:
		return BookingStatusCompleted, nil
	case BookingActionCancel:
		return BookingStatusCancelled, nil
	default:
		return "", fmt.Errorf("%w: unknown booking action %q", ErrValidation, a)
	}
}

// BookingView is a booking joined with its spot and slip for owner listings.
type BookingView struct {
	Booking   Booking     `json:"booking"`
	SpotTitle string      `json:"spot_title"`
	Address   string      `json:"address"`
	SlipID    null.String `json:"slip_id"`
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusActive, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}
