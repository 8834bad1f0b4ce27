package handler

import (
	"net/http"

	"github.com/stpnv0/ParkSpot/internal/domain"
	"github.com/stpnv0/ParkSpot/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) SignUp(c *ginext.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.authService.SignUp(c.Request.Context(), domain.SignUpInput{
		FullName:       req.FullName,
		Email:          req.Email,
		Password:       req.Password,
		Role:           domain.Role(req.Role),
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, err := h.authService.Login(c.Request.Context(), domain.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTokenResponse(token))
}
