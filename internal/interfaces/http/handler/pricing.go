package handler

import (
	"github.com/cabinetry/backend/internal/application/configurator"
	"github.com/cabinetry/backend/internal/application/configurator/dto"
	"github.com/gin-gonic/gin"
)

// PricingHandler serves quotes, hardware pricing and global settings
type PricingHandler struct {
	BaseHandler
	service *configurator.Service
}

// NewPricingHandler creates a new PricingHandler
func NewPricingHandler(service *configurator.Service) *PricingHandler {
	return &PricingHandler{service: service}
}

// Quote godoc
// @ID           quotePricing
// @Summary      Price a cabinet
// @Description  Returns the GST-inclusive price with a full breakdown. Settings omitted from the body are read from the store.
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        request body dto.QuoteRequest true "Quote request"
// @Success      200 {object} APIResponse[dto.QuoteResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /pricing/quote [post]
func (h *PricingHandler) Quote(c *gin.Context) {
	var req dto.QuoteRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.service.Quote(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Hardware godoc
// @ID           hardwarePricing
// @Summary      Price hardware requirements
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        request body dto.HardwareRequest true "Hardware request"
// @Success      200 {object} APIResponse[dto.HardwareResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /pricing/hardware [post]
func (h *PricingHandler) Hardware(c *gin.Context) {
	var req dto.HardwareRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.service.PriceHardware(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Settings godoc
// @ID           listSettings
// @Summary      List global settings
// @Description  Returns the stored rows and the material and GST rates they resolve to
// @Tags         settings
// @Produce      json
// @Success      200 {object} APIResponse[dto.SettingsResponse]
// @Router       /settings [get]
func (h *PricingHandler) Settings(c *gin.Context) {
	resp, err := h.service.Settings(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
