package router

import (
	"github.com/cabinetry/backend/internal/interfaces/http/handler"
	"github.com/gin-gonic/gin"
)

// Handlers are the HTTP handlers mounted by SetupRoutes
type Handlers struct {
	Pricing       *handler.PricingHandler
	Configuration *handler.ConfigurationHandler
	Template      *handler.TemplateHandler
	System        *handler.SystemHandler
}

// SetupRoutes registers the API on engine.
// Health is served at the root so probes do not depend on the API version.
func SetupRoutes(engine *gin.Engine, h Handlers, opts ...RouterOption) *Router {
	engine.GET("/health", h.System.Health)

	pricing := NewDomainGroup("/pricing").
		POST("/quote", h.Pricing.Quote).
		POST("/hardware", h.Pricing.Hardware)

	settings := NewDomainGroup("/settings").
		GET("", h.Pricing.Settings)

	configurations := NewDomainGroup("/configurations").
		POST("/default", h.Configuration.Default).
		POST("/validate", h.Configuration.Validate).
		POST("/convert/legacy", h.Configuration.ConvertLegacy).
		POST("/convert/product", h.Configuration.ConvertProduct).
		POST("/export", h.Configuration.Export).
		POST("/compare", h.Configuration.Compare).
		POST("/clone", h.Configuration.Clone)

	templates := NewDomainGroup("/templates").
		GET("", h.Template.List).
		POST("", h.Template.Save).
		DELETE("/:id", h.Template.Delete)

	system := NewDomainGroup("/system").
		GET("/info", h.System.GetSystemInfo)

	r := NewRouter(engine, opts...)
	r.Register(pricing, settings, configurations, templates, system)
	r.Setup()
	return r
}
