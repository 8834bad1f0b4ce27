package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSpotNotFound    = errors.New("parking spot not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrSlipNotFound    = errors.New("slip not found")
	ErrUserNotFound    = errors.New("user not found")
)

var (
	ErrCapacityExceeded       = errors.New("parking spot is full")
	ErrCapacityNotConfigured  = fmt.Errorf("%w: capacity not configured", ErrCapacityExceeded)
	ErrCapacityBelowOccupancy = errors.New("total spots cannot be less than currently occupied spots")
	ErrSlipAlreadyExists      = errors.New("slip already exists for this booking")
	ErrSlipNumberTaken        = errors.New("slip number already issued")
	ErrSlipNotActive          = errors.New("slip is not active")
	ErrBookingNotActive       = errors.New("booking is not active")
	ErrSpotUnavailable        = errors.New("parking spot is not available for booking")
)

var (
	ErrEmailTaken         = errors.New("email is already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenInvalid       = errors.New("token is invalid or expired")
)

var (
	ErrValidation = errors.New("validation error")
)
