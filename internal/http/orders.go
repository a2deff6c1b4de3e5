package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nurzhas/procurement-api/internal/model"
	"github.com/nurzhas/procurement-api/internal/service"
)

type createOrderRequest struct {
	SupplierID string               `json:"supplier_id" binding:"required"`
	Products   []model.OrderProduct `json:"products"`
	Notes      string               `json:"notes"`
}

func (h *Handler) createOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), service.CreateOrderInput{
		SupplierID: strings.TrimSpace(req.SupplierID),
		Products:   req.Products,
		Notes:      req.Notes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *Handler) getOrder(c *gin.Context) {
	order, err := h.orders.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) updateOrderStatus(c *gin.Context) {
	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), strings.TrimSpace(c.Param("id")), strings.TrimSpace(req.Status))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

type orderCommunicationRequest struct {
	Type string `json:"type"`
}

func (h *Handler) draftOrderCommunication(c *gin.Context) {
	var req orderCommunicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.orders.DraftCommunication(c.Request.Context(), strings.TrimSpace(c.Param("id")), strings.TrimSpace(req.Type))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, message)
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *Handler) exportOrders(c *gin.Context) {
	result, err := h.orders.ExportOrders(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, xlsxContentType, result.Content)
}
