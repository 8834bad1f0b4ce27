package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/stpnv0/ParkSpot/internal/domain"
	"github.com/stpnv0/ParkSpot/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type AuthSvc interface {
	SignUp(ctx context.Context, input domain.SignUpInput) (*domain.User, error)
	Login(ctx context.Context, input domain.LoginInput) (*domain.AuthToken, error)
}

type SpotSvc interface {
	Create(ctx context.Context, input domain.CreateSpotInput) (*domain.ParkingSpot, error)
	Get(ctx context.Context, id string) (*domain.ParkingSpot, error)
	ListNearby(ctx context.Context, q domain.NearbyQuery) ([]*domain.SpotSummary, error)
	GetOwned(ctx context.Context, id, ownerID string) (*domain.SpotDetails, error)
	ListOwned(ctx context.Context, ownerID string) ([]*domain.SpotDetails, error)
	Update(ctx context.Context, id, ownerID string, input domain.UpdateSpotInput) (*domain.ParkingSpot, error)
	Delete(ctx context.Context, id, ownerID string) error
	Stats(ctx context.Context, ownerID string) (*domain.OwnerStats, error)
}

type BookingSvc interface {
	Book(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	ListByOwner(ctx context.Context, ownerID string, status domain.BookingStatus) ([]*domain.BookingView, error)
	Transition(ctx context.Context, id, ownerID string, action domain.BookingAction) (*domain.Booking, error)
}

type SlipSvc interface {
	Create(ctx context.Context, input domain.CreateSlipInput) (*domain.ParkingSlip, error)
	List(ctx context.Context, ownerID string, status domain.SlipStatus) ([]*domain.SlipView, error)
	Complete(ctx context.Context, id, ownerID string, revenue *float64) (*domain.ParkingSlip, error)
	MarkUsed(ctx context.Context, id, ownerID string) (*domain.ParkingSlip, error)
	Delete(ctx context.Context, id, ownerID string) error
	Clear(ctx context.Context, ownerID string) error
	QRCode(ctx context.Context, id, ownerID string) ([]byte, error)
}

type Handler struct {
	authService    AuthSvc
	spotService    SpotSvc
	bookingService BookingSvc
	slipService    SlipSvc
}

func NewHandler(authService AuthSvc, spotService SpotSvc, bookingService BookingSvc, slipService SlipSvc) *Handler {
	return &Handler{
		authService:    authService,
		spotService:    spotService,
		bookingService: bookingService,
		slipService:    slipService,
	}
}

// pathID reads a uuid path parameter and answers 400 when it is malformed.
func pathID(c *ginext.Context, what string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + what + " id"})
		return "", false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	// Проверяем раньше ErrCapacityExceeded, так как оборачивает его
	case errors.Is(err, domain.ErrCapacityNotConfigured):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSpotNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrSlipNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrCapacityBelowOccupancy),
		errors.Is(err, domain.ErrSlipAlreadyExists),
		errors.Is(err, domain.ErrSlipNumberTaken),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrSpotUnavailable):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrBookingNotActive),
		errors.Is(err, domain.ErrSlipNotActive):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
