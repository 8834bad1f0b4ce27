package handler

import (
	"net/http"

	"github.com/stpnv0/ParkSpot/internal/domain"
	"github.com/stpnv0/ParkSpot/internal/handler/dto"
	"github.com/stpnv0/ParkSpot/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

// Public

func (h *Handler) ListSpots(c *ginext.Context) {
	var q dto.NearbyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	spots, err := h.spotService.ListNearby(c.Request.Context(), domain.NearbyQuery{
		Latitude:  q.Latitude,
		Longitude: q.Longitude,
		RadiusKM:  q.RadiusKM,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	located := q.Latitude != nil && q.Longitude != nil
	resp := make([]dto.NearbySpotResponse, 0, len(spots))
	for _, s := range spots {
		resp = append(resp, dto.ToNearbySpotResponse(s, located))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetSpot(c *ginext.Context) {
	id, ok := pathID(c, "parking spot")
	if !ok {
		return
	}

	spot, err := h.spotService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSpotResponse(spot))
}

// Admin

func (h *Handler) CreateSpot(c *ginext.Context) {
	var req dto.CreateSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	spot, err := h.spotService.Create(c.Request.Context(), domain.CreateSpotInput{
		OwnerID:      middleware.UserID(c),
		Title:        req.Title,
		Description:  req.Description,
		Address:      req.Address,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		PricePerHour: req.PricePerHour,
		TotalSpots:   req.TotalSpots,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSpotResponse(spot))
}

func (h *Handler) ListOwnedSpots(c *ginext.Context) {
	spots, err := h.spotService.ListOwned(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SpotDetailsResponse, 0, len(spots))
	for _, s := range spots {
		resp = append(resp, dto.ToSpotDetailsResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetOwnedSpot(c *ginext.Context) {
	id, ok := pathID(c, "parking spot")
	if !ok {
		return
	}

	details, err := h.spotService.GetOwned(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSpotDetailsResponse(details))
}

func (h *Handler) UpdateSpot(c *ginext.Context) {
	id, ok := pathID(c, "parking spot")
	if !ok {
		return
	}

	var req dto.UpdateSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	spot, err := h.spotService.Update(c.Request.Context(), id, middleware.UserID(c), domain.UpdateSpotInput{
		IsAvailable: req.IsAvailable,
		TotalSpots:  req.TotalSpots,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSpotResponse(spot))
}

func (h *Handler) DeleteSpot(c *ginext.Context) {
	id, ok := pathID(c, "parking spot")
	if !ok {
		return
	}

	if err := h.spotService.Delete(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) Stats(c *ginext.Context) {
	stats, err := h.spotService.Stats(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatsResponse(stats))
}
