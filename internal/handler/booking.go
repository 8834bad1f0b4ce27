package handler

import (
	"net/http"
	"time"

	"github.com/stpnv0/ParkSpot/internal/domain"
	"github.com/stpnv0/ParkSpot/internal/handler/dto"
	"github.com/stpnv0/ParkSpot/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_time format, expected RFC3339"})
		return
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_time format, expected RFC3339"})
		return
	}

	booking, err := h.bookingService.Book(c.Request.Context(), domain.CreateBookingInput{
		ParkingSpotID: req.ParkingSpotID,
		StartTime:     start,
		EndTime:       end,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		CarNumber:     req.CarNumber,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingCreatedResponse(booking))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	status := domain.BookingStatus(c.Query("status"))

	bookings, err := h.bookingService.ListByOwner(c.Request.Context(), middleware.UserID(c), status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingViewResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingViewResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateBooking(c *ginext.Context) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}

	var req dto.BookingActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Transition(c.Request.Context(), id, middleware.UserID(c), domain.BookingAction(req.Action))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}
