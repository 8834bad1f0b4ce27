package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/ParkSpot/internal/domain"
	"github.com/stpnv0/ParkSpot/internal/metrics"
	"github.com/stpnv0/ParkSpot/internal/qr"
	"github.com/stpnv0/ParkSpot/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"gopkg.in/guregu/null.v4"
)

const slipIssueAttempts = 3

type SlipService struct {
	slipRepo    ports.SlipRepo
	bookingRepo ports.BookingRepo
	spotRepo    ports.SpotRepo
	userRepo    ports.UserRepo
	cache       ports.SpotCache
	notifier    ports.OwnerNotifier
	logger      logger.Logger
}

func NewSlipService(
	slipRepo ports.SlipRepo,
	bookingRepo ports.BookingRepo,
	spotRepo ports.SpotRepo,
	userRepo ports.UserRepo,
	cache ports.SpotCache,
	notifier ports.OwnerNotifier,
	logger logger.Logger,
) *SlipService {
	return &SlipService{
		slipRepo:    slipRepo,
		bookingRepo: bookingRepo,
		spotRepo:    spotRepo,
		userRepo:    userRepo,
		cache:       cache,
		notifier:    notifier,
		logger:      logger,
	}
}

// slipDraft is everything a new slip needs besides its number.
type slipDraft struct {
	spot       *domain.ParkingSpot
	bookingID  string
	validUntil time.Time
	carNumber  string
	source     string
	store      func(context.Context, *domain.ParkingSlip) error
}

// Create issues a slip for a booking when BookingID is set, otherwise a
// walk-in slip on ParkingSpotID.
func (s *SlipService) Create(ctx context.Context, input domain.CreateSlipInput) (*domain.ParkingSlip, error) {
	if err := input.Normalize(); err != nil {
		return nil, err
	}
	input.CarNumber = strings.TrimSpace(input.CarNumber)

	var (
		draft *slipDraft
		err   error
	)
	if input.BookingID != "" {
		draft, err = s.bookingDraft(ctx, input)
	} else {
		draft, err = s.manualDraft(ctx, input)
	}
	if err != nil {
		return nil, err
	}

	var slip *domain.ParkingSlip
	for attempt := 1; attempt <= slipIssueAttempts; attempt++ {
		slip, err = s.newSlip(input.OwnerID, draft)
		if err != nil {
			return nil, err
		}

		err = draft.store(ctx, slip)
		if !errors.Is(err, domain.ErrSlipNumberTaken) {
			break
		}
		s.logger.Warn("slip number collision, regenerating",
			logger.String("slip_number", slip.SlipNumber),
			logger.Int("attempt", attempt),
		)
	}
	metrics.IncLedgerOp(draft.source, ledgerOutcome(err))
	if err != nil {
		return nil, fmt.Errorf("create slip: %w", err)
	}
	metrics.IncSlipIssued(draft.source)
	s.cache.Invalidate(ctx)

	s.logger.Info("slip issued",
		logger.String("slip_id", slip.ID),
		logger.String("slip_number", slip.SlipNumber),
		logger.String("spot_id", slip.ParkingSpotID),
		logger.String("source", draft.source),
	)

	return slip, nil
}

func (s *SlipService) bookingDraft(ctx context.Context, input domain.CreateSlipInput) (*slipDraft, error) {
	booking, err := s.bookingRepo.GetOwned(ctx, input.BookingID, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	spot, err := s.spotRepo.GetByID(ctx, booking.ParkingSpotID)
	if err != nil {
		return nil, fmt.Errorf("get spot: %w", err)
	}

	car := input.CarNumber
	if car == "" {
		car = booking.CarNumber.String
	}

	return &slipDraft{
		spot:       spot,
		bookingID:  booking.ID,
		validUntil: booking.EndTime,
		carNumber:  car,
		source:     "booking",
		store:      s.slipRepo.CreateFromBooking,
	}, nil
}

func (s *SlipService) manualDraft(ctx context.Context, input domain.CreateSlipInput) (*slipDraft, error) {
	spot, err := s.spotRepo.GetByID(ctx, input.ParkingSpotID)
	if err != nil {
		return nil, fmt.Errorf("get spot: %w", err)
	}
	if spot.OwnerID != input.OwnerID {
		return nil, domain.ErrSpotNotFound
	}

	return &slipDraft{
		spot:       spot,
		validUntil: time.Now().UTC().Add(time.Duration(input.ValidHours) * time.Hour),
		carNumber:  input.CarNumber,
		source:     "manual",
		store:      s.slipRepo.CreateManual,
	}, nil
}

func (s *SlipService) newSlip(ownerID string, d *slipDraft) (*domain.ParkingSlip, error) {
	now := time.Now().UTC()
	number := newSlipNumber(now)

	payload, err := qr.Payload(domain.SlipPayload{
		SlipNumber:    number,
		BookingID:     d.bookingID,
		ParkingSpotID: d.spot.ID,
		SpotTitle:     d.spot.Title,
		ValidUntil:    d.validUntil.UTC(),
		CarNumber:     d.carNumber,
	})
	if err != nil {
		return nil, err
	}

	code, err := qr.DataURL(payload)
	if err != nil {
		return nil, err
	}

	return &domain.ParkingSlip{
		ID:            uuid.New().String(),
		SlipNumber:    number,
		QRCode:        code,
		QRPayload:     payload,
		ValidUntil:    d.validUntil.UTC(),
		CarNumber:     null.NewString(d.carNumber, d.carNumber != ""),
		BookingID:     null.NewString(d.bookingID, d.bookingID != ""),
		ParkingSpotID: d.spot.ID,
		OwnerID:       ownerID,
		Status:        domain.SlipStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// newSlipNumber formats PS-<unix ms>-<5 upper-case chars>.
func newSlipNumber(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:5]
	return fmt.Sprintf("PS-%d-%s", now.UnixMilli(), strings.ToUpper(suffix))
}

func (s *SlipService) List(ctx context.Context, ownerID string, status domain.SlipStatus) ([]*domain.SlipView, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown slip status %q", domain.ErrValidation, status)
	}
	return s.slipRepo.ListByOwner(ctx, ownerID, status)
}

// Complete closes an active slip and records its revenue.
func (s *SlipService) Complete(ctx context.Context, id, ownerID string, revenue *float64) (*domain.ParkingSlip, error) {
	if revenue != nil && *revenue < 0 {
		return nil, fmt.Errorf("%w: revenue must not be negative", domain.ErrValidation)
	}

	slip, err := s.slipRepo.GetOwned(ctx, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get slip: %w", err)
	}
	if slip.Status != domain.SlipStatusActive {
		return nil, domain.ErrSlipNotActive
	}

	var bookingPrice null.Float
	if slip.BookingID.Valid {
		booking, err := s.bookingRepo.GetOwned(ctx, slip.BookingID.String, ownerID)
		switch {
		case err == nil:
			bookingPrice = null.FloatFrom(booking.TotalPrice)
		case !errors.Is(err, domain.ErrBookingNotFound):
			return nil, fmt.Errorf("get linked booking: %w", err)
		}
	}

	spot, err := s.spotRepo.GetByID(ctx, slip.ParkingSpotID)
	if err != nil {
		return nil, fmt.Errorf("get spot: %w", err)
	}

	now := time.Now().UTC()
	amount := domain.SlipRevenue(revenue, bookingPrice, slip.CreatedAt, now, spot.PricePerHour)

	return s.close(ctx, id, ownerID, domain.SlipCompletion{
		Status:      domain.SlipStatusCompleted,
		Revenue:     null.FloatFrom(amount),
		CompletedAt: now,
	})
}

// MarkUsed closes an active slip without a revenue record.
func (s *SlipService) MarkUsed(ctx context.Context, id, ownerID string) (*domain.ParkingSlip, error) {
	return s.close(ctx, id, ownerID, domain.SlipCompletion{
		Status:      domain.SlipStatusUsed,
		CompletedAt: time.Now().UTC(),
	})
}

func (s *SlipService) close(ctx context.Context, id, ownerID string, c domain.SlipCompletion) (*domain.ParkingSlip, error) {
	slip, err := s.slipRepo.Close(ctx, id, ownerID, c)
	if err != nil {
		return nil, fmt.Errorf("close slip: %w", err)
	}
	metrics.IncSlipClosed(string(c.Status))
	metrics.AddSlipRevenue(c.Revenue.Float64)
	s.cache.Invalidate(ctx)

	s.logger.Info("slip closed",
		logger.String("slip_id", id),
		logger.String("status", string(c.Status)),
		logger.Any("revenue", c.Revenue.Float64),
	)

	return slip, nil
}

func (s *SlipService) Delete(ctx context.Context, id, ownerID string) error {
	if err := s.slipRepo.Delete(ctx, id, ownerID); err != nil {
		return fmt.Errorf("delete slip: %w", err)
	}
	s.cache.Invalidate(ctx)

	s.logger.Info("slip deleted", logger.String("slip_id", id))

	return nil
}

// Clear removes every slip and booking of the owner and frees all units.
func (s *SlipService) Clear(ctx context.Context, ownerID string) error {
	err := s.slipRepo.Clear(ctx, ownerID)
	metrics.IncLedgerOp("reset", ledgerOutcome(err))
	if err != nil {
		return fmt.Errorf("clear slips: %w", err)
	}
	s.cache.Invalidate(ctx)

	s.logger.Warn("owner slips and bookings cleared", logger.String("owner_id", ownerID))

	return nil
}

func (s *SlipService) QRCode(ctx context.Context, id, ownerID string) ([]byte, error) {
	slip, err := s.slipRepo.GetOwned(ctx, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get slip: %w", err)
	}
	return qr.PNG(slip.QRPayload)
}

// ExpireOverdue closes slips past valid_until and bookings past end_time.
func (s *SlipService) ExpireOverdue(ctx context.Context) (*domain.ExpiryReport, error) {
	now := time.Now().UTC()

	slips, err := s.slipRepo.ExpireOverdue(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("expire slips: %w", err)
	}

	bookings, err := s.bookingRepo.ExpireOverdue(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("expire bookings: %w", err)
	}

	for range slips {
		metrics.IncSlipClosed(string(domain.SlipStatusExpired))
	}
	for range bookings {
		metrics.IncBookingClosed(string(domain.BookingStatusCompleted))
	}

	if len(slips) > 0 || len(bookings) > 0 {
		s.cache.Invalidate(ctx)
		s.logger.Info("overdue slips and bookings expired",
			logger.Int("slips", len(slips)),
			logger.Int("bookings", len(bookings)),
		)
	}

	if len(slips) > 0 {
		go s.notifyExpired(context.WithoutCancel(ctx), slips)
	}

	return &domain.ExpiryReport{Slips: slips, Bookings: bookings}, nil
}

func (s *SlipService) notifyExpired(ctx context.Context, slips []*domain.ParkingSlip) {
	byOwner := make(map[string][]*domain.ParkingSlip)
	for _, sl := range slips {
		byOwner[sl.OwnerID] = append(byOwner[sl.OwnerID], sl)
	}

	for ownerID, owned := range byOwner {
		owner, err := s.userRepo.GetByID(ctx, ownerID)
		if err != nil {
			s.logger.Error("failed to get owner for expiry notification",
				logger.String("owner_id", ownerID),
				logger.String("error", err.Error()),
			)
			continue
		}
		s.notifier.NotifySlipsExpired(ctx, owner, owned)
	}
}
