package handler

import (
	"github.com/cabinetry/backend/internal/application/configurator"
	"github.com/cabinetry/backend/internal/application/configurator/dto"
	"github.com/cabinetry/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	httpdto "github.com/cabinetry/backend/internal/interfaces/http/dto"
)

// TemplateHandler serves saved configuration templates.
// The caller is identified by the optional X-User-ID header; without it only global templates are visible.
type TemplateHandler struct {
	BaseHandler
	service *configurator.Service
}

// NewTemplateHandler creates a new TemplateHandler
func NewTemplateHandler(service *configurator.Service) *TemplateHandler {
	return &TemplateHandler{service: service}
}

// List godoc
// @ID           listTemplates
// @Summary      List templates for a cabinet type
// @Description  Default templates first, then by name
// @Tags         templates
// @Produce      json
// @Param        cabinet_type_id query string true "Cabinet type ID"
// @Param        X-User-ID header string false "Caller user ID"
// @Success      200 {object} APIResponse[[]dto.TemplateResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /templates [get]
func (h *TemplateHandler) List(c *gin.Context) {
	var query dto.ListTemplatesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	userID, err := optionalUserID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	templates, err := h.service.LoadTemplates(c.Request.Context(), uuid.MustParse(query.CabinetTypeID), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, templates)
}

// Save godoc
// @ID           saveTemplate
// @Summary      Save a configuration as a template
// @Description  Without X-User-ID the template is global
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        request body dto.SaveTemplateRequest true "Template"
// @Param        X-User-ID header string false "Owner user ID"
// @Success      201 {object} APIResponse[dto.TemplateResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /templates [post]
func (h *TemplateHandler) Save(c *gin.Context) {
	var req dto.SaveTemplateRequest
	if !h.BindJSON(c, &req) {
		return
	}
	userID, err := optionalUserID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	resp, err := h.service.SaveTemplate(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Delete godoc
// @ID           deleteTemplate
// @Summary      Delete a template
// @Description  Users may delete their own templates; global templates only without X-User-ID
// @Tags         templates
// @Param        id path string true "Template ID"
// @Param        X-User-ID header string false "Caller user ID"
// @Success      204
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /templates/{id} [delete]
func (h *TemplateHandler) Delete(c *gin.Context) {
	var uri httpdto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	userID, err := optionalUserID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if err := h.service.DeleteTemplate(c.Request.Context(), uuid.MustParse(uri.ID), userID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
