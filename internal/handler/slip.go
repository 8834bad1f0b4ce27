package handler

import (
	"net/http"

	"github.com/stpnv0/ParkSpot/internal/domain"
	"github.com/stpnv0/ParkSpot/internal/handler/dto"
	"github.com/stpnv0/ParkSpot/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateSlip(c *ginext.Context) {
	var req dto.CreateSlipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	slip, err := h.slipService.Create(c.Request.Context(), domain.CreateSlipInput{
		OwnerID:       middleware.UserID(c),
		BookingID:     req.BookingID,
		ParkingSpotID: req.ParkingSpotID,
		ValidHours:    req.ValidHours,
		CarNumber:     req.CarNumber,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSlipResponse(slip))
}

func (h *Handler) ListSlips(c *ginext.Context) {
	status := domain.SlipStatus(c.Query("status"))

	slips, err := h.slipService.List(c.Request.Context(), middleware.UserID(c), status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SlipViewResponse, 0, len(slips))
	for _, s := range slips {
		resp = append(resp, dto.ToSlipViewResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateSlip(c *ginext.Context) {
	id, ok := pathID(c, "slip")
	if !ok {
		return
	}

	var req dto.SlipActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	var (
		slip *domain.ParkingSlip
		err  error
	)
	ownerID := middleware.UserID(c)
	switch domain.SlipAction(req.Action) {
	case domain.SlipActionComplete:
		slip, err = h.slipService.Complete(c.Request.Context(), id, ownerID, req.Revenue)
	case domain.SlipActionUse:
		slip, err = h.slipService.MarkUsed(c.Request.Context(), id, ownerID)
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSlipResponse(slip))
}

func (h *Handler) DeleteSlip(c *ginext.Context) {
	id, ok := pathID(c, "slip")
	if !ok {
		return
	}

	if err := h.slipService.Delete(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) ClearSlips(c *ginext.Context) {
	if err := h.slipService.Clear(c.Request.Context(), middleware.UserID(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cleared"})
}

func (h *Handler) SlipQR(c *ginext.Context) {
	id, ok := pathID(c, "slip")
	if !ok {
		return
	}

	png, err := h.slipService.QRCode(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
