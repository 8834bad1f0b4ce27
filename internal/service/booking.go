package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/ParkSpot/internal/domain"
	"github.com/stpnv0/ParkSpot/internal/metrics"
	"github.com/stpnv0/ParkSpot/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"gopkg.in/guregu/null.v4"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	spotRepo    ports.SpotRepo
	userRepo    ports.UserRepo
	cache       ports.SpotCache
	notifier    ports.OwnerNotifier
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	spotRepo ports.SpotRepo,
	userRepo ports.UserRepo,
	cache ports.SpotCache,
	notifier ports.OwnerNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		spotRepo:    spotRepo,
		userRepo:    userRepo,
		cache:       cache,
		notifier:    notifier,
		logger:      logger,
	}
}

func (s *BookingService) Book(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	input.CustomerName = strings.TrimSpace(input.CustomerName)
	input.CustomerEmail = strings.TrimSpace(input.CustomerEmail)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	spot, err := s.spotRepo.GetByID(ctx, input.ParkingSpotID)
	if err != nil {
		return nil, fmt.Errorf("check spot: %w", err)
	}
	if !spot.IsAvailable {
		return nil, domain.ErrSpotUnavailable
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:            uuid.New().String(),
		ParkingSpotID: spot.ID,
		OwnerID:       spot.OwnerID,
		StartTime:     input.StartTime.UTC(),
		EndTime:       input.EndTime.UTC(),
		TotalPrice:    domain.BookingPrice(input.StartTime, input.EndTime, spot.PricePerHour),
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: null.NewString(input.CustomerPhone, input.CustomerPhone != ""),
		CarNumber:     null.NewString(input.CarNumber, input.CarNumber != ""),
		Status:        domain.BookingStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = s.bookingRepo.Create(ctx, booking)
	metrics.IncLedgerOp("reserve", ledgerOutcome(err))
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	metrics.IncBookingCreated()
	s.cache.Invalidate(ctx)

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("spot_id", spot.ID),
		logger.String("owner_id", spot.OwnerID),
	)

	go s.notifyOwner(context.WithoutCancel(ctx), spot, booking, s.notifier.NotifyBookingCreated)

	return booking, nil
}

func (s *BookingService) ListByOwner(ctx context.Context, ownerID string, status domain.BookingStatus) ([]*domain.BookingView, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown booking status %q", domain.ErrValidation, status)
	}
	return s.bookingRepo.ListByOwner(ctx, ownerID, status)
}

// Transition completes or cancels an active booking.
func (s *BookingService) Transition(ctx context.Context, id, ownerID string, action domain.BookingAction) (*domain.Booking, error) {
	to, err := action.Target()
	if err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.Transition(ctx, id, ownerID, to)
	if err != nil {
		return nil, fmt.Errorf("transition booking: %w", err)
	}
	metrics.IncBookingClosed(string(to))
	s.cache.Invalidate(ctx)

	s.logger.Info("booking closed",
		logger.String("booking_id", id),
		logger.String("status", string(to)),
	)

	if to == domain.BookingStatusCancelled {
		go s.notifyCancelled(context.WithoutCancel(ctx), booking)
	}

	return booking, nil
}

func (s *BookingService) notifyCancelled(ctx context.Context, booking *domain.Booking) {
	spot, err := s.spotRepo.GetByID(ctx, booking.ParkingSpotID)
	if err != nil {
		s.logger.Error("failed to get spot for cancel notification",
			logger.String("spot_id", booking.ParkingSpotID),
			logger.String("error", err.Error()),
		)
		return
	}
	s.notifyOwner(ctx, spot, booking, s.notifier.NotifyBookingCancelled)
}

func (s *BookingService) notifyOwner(
	ctx context.Context,
	spot *domain.ParkingSpot,
	booking *domain.Booking,
	notify func(context.Context, *domain.User, *domain.ParkingSpot, *domain.Booking),
) {
	owner, err := s.userRepo.GetByID(ctx, spot.OwnerID)
	if err != nil {
		s.logger.Error("failed to get owner for notification",
			logger.String("owner_id", spot.OwnerID),
			logger.String("error", err.Error()),
		)
		return
	}
	notify(ctx, owner, spot, booking)
}
