package handler

import (
	"github.com/cabinetry/backend/internal/application/configurator"
	"github.com/cabinetry/backend/internal/application/configurator/dto"
	"github.com/cabinetry/backend/internal/domain/configuration"
	"github.com/gin-gonic/gin"
)

// ConfigurationHandler serves configuration building, validation and conversion.
// None of these endpoints touch storage.
type ConfigurationHandler struct {
	BaseHandler
	service *configurator.Service
}

// NewConfigurationHandler creates a new ConfigurationHandler
func NewConfigurationHandler(service *configurator.Service) *ConfigurationHandler {
	return &ConfigurationHandler{service: service}
}

// ExportHTTPRequest is the body of an export request
type ExportHTTPRequest struct {
	Configuration *configuration.CabinetConfiguration `json:"configuration" binding:"required"`
}

// Default godoc
// @ID           defaultConfiguration
// @Summary      Build the default configuration of a cabinet type
// @Tags         configurations
// @Accept       json
// @Produce      json
// @Param        request body dto.DefaultConfigurationRequest true "Cabinet type"
// @Success      200 {object} APIResponse[dto.ConfigurationResponse]
// @Router       /configurations/default [post]
func (h *ConfigurationHandler) Default(c *gin.Context) {
	var req dto.DefaultConfigurationRequest
	if !h.BindJSON(c, &req) {
		return
	}
	h.Success(c, h.service.DefaultConfiguration(req))
}

// Validate godoc
// @ID           validateConfiguration
// @Summary      Validate a configuration
// @Description  Validation problems are reported in the body with status 200; only malformed requests fail.
// @Tags         configurations
// @Accept       json
// @Produce      json
// @Param        request body dto.ValidateConfigurationRequest true "Configuration and cabinet type"
// @Success      200 {object} APIResponse[dto.ConfigurationResponse]
// @Router       /configurations/validate [post]
func (h *ConfigurationHandler) Validate(c *gin.Context) {
	var req dto.ValidateConfigurationRequest
	if !h.BindJSON(c, &req) {
		return
	}
	h.Success(c, h.service.ValidateConfiguration(req))
}

// ConvertLegacy godoc
// @ID           convertLegacyConfiguration
// @Summary      Convert a legacy configurator payload
// @Tags         configurations
// @Accept       json
// @Produce      json
// @Param        request body dto.ConvertLegacyRequest true "Legacy payload"
// @Success      200 {object} APIResponse[dto.ConfigurationResponse]
// @Router       /configurations/convert/legacy [post]
func (h *ConfigurationHandler) ConvertLegacy(c *gin.Context) {
	var req dto.ConvertLegacyRequest
	if !h.BindJSON(c, &req) {
		return
	}
	h.Success(c, h.service.ConvertLegacy(req))
}

// ConvertProduct godoc
// @ID           convertProductConfiguration
// @Summary      Convert a product catalog payload
// @Tags         configurations
// @Accept       json
// @Produce      json
// @Param        request body dto.ConvertProductRequest true "Product payload"
// @Success      200 {object} APIResponse[dto.ConfigurationResponse]
// @Router       /configurations/convert/product [post]
func (h *ConfigurationHandler) ConvertProduct(c *gin.Context) {
	var req dto.ConvertProductRequest
	if !h.BindJSON(c, &req) {
		return
	}
	h.Success(c, h.service.ConvertProduct(req))
}

// Export godoc
// @ID           exportConfiguration
// @Summary      Render a configuration as legacy and product payloads
// @Tags         configurations
// @Accept       json
// @Produce      json
// @Param        request body ExportHTTPRequest true "Configuration"
// @Success      200 {object} APIResponse[dto.ExportResponse]
// @Router       /configurations/export [post]
func (h *ConfigurationHandler) Export(c *gin.Context) {
	var req ExportHTTPRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.service.Export(req.Configuration)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Compare godoc
// @ID           compareConfigurations
// @Summary      List the differences between two configurations
// @Tags         configurations
// @Accept       json
// @Produce      json
// @Param        request body dto.CompareRequest true "Configurations a and b"
// @Success      200 {object} APIResponse[configuration.Comparison]
// @Router       /configurations/compare [post]
func (h *ConfigurationHandler) Compare(c *gin.Context) {
	var req dto.CompareRequest
	if !h.BindJSON(c, &req) {
		return
	}
	h.Success(c, h.service.Compare(req))
}

// Clone godoc
// @ID           cloneConfiguration
// @Summary      Copy a configuration with overrides applied
// @Tags         configurations
// @Accept       json
// @Produce      json
// @Param        request body dto.CloneRequest true "Base and overrides"
// @Success      200 {object} APIResponse[configuration.CabinetConfiguration]
// @Router       /configurations/clone [post]
func (h *ConfigurationHandler) Clone(c *gin.Context) {
	var req dto.CloneRequest
	if !h.BindJSON(c, &req) {
		return
	}
	h.Success(c, h.service.Clone(req))
}
