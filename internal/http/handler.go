package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nurzhas/procurement-api/internal/service"
)

type Handler struct {
	suppliers    *service.SupplierService
	orders       *service.OrderService
	negotiations *service.NegotiationService
	compliance   *service.ComplianceService
	log          zerolog.Logger
}

func NewHandler(
	suppliers *service.SupplierService,
	orders *service.OrderService,
	negotiations *service.NegotiationService,
	compliance *service.ComplianceService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		suppliers:    suppliers,
		orders:       orders,
		negotiations: negotiations,
		compliance:   compliance,
		log:          log,
	}
}

func (h *Handler) Register(router *gin.Engine) {
	router.GET("/", h.home)

	api := router.Group("/api")

	api.GET("/suppliers", h.listSuppliers)
	api.POST("/suppliers/search", h.searchSuppliers)
	api.GET("/suppliers/recommend", h.recommendSuppliers)
	api.GET("/suppliers/:id", h.getSupplier)
	api.POST("/suppliers/:id/analyze", h.analyzeSupplier)

	api.POST("/negotiations/generate-dossier", h.generateDossier)
	api.GET("/negotiations/strategies", h.strategies)
	api.POST("/negotiations/messages", h.draftMessage)

	api.POST("/compliance/analyze-document", h.analyzeDocument)
	api.GET("/compliance/requirements", h.requirements)
	api.POST("/compliance/requirements", h.requirements)
	api.POST("/compliance/verify", h.verifyCompliance)

	api.POST("/orders", h.createOrder)
	api.GET("/orders/export", h.exportOrders)
	api.GET("/orders/:id", h.getOrder)
	api.PUT("/orders/:id/status", h.updateOrderStatus)
	api.POST("/orders/:id/communications", h.draftOrderCommunication)
}

func (h *Handler) home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "Procurement API",
		"version": "1.0.0",
		"modules": []string{
			"Supplier Discovery",
			"Negotiation Companion",
			"Compliance Guardian",
			"Order Agent",
		},
	})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUpstream):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
