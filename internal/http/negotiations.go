package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nurzhas/procurement-api/internal/service"
)

type generateDossierRequest struct {
	SupplierID string `json:"supplier_id" binding:"required"`
}

func (h *Handler) generateDossier(c *gin.Context) {
	var req generateDossierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dossier, err := h.negotiations.BuildDossier(c.Request.Context(), strings.TrimSpace(req.SupplierID))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dossier)
}

func (h *Handler) strategies(c *gin.Context) {
	strategies, err := h.negotiations.Strategies(c.Request.Context(), service.StrategyInput{
		Supplier:    c.Query("supplier"),
		Category:    c.Query("category"),
		Description: c.Query("description"),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, strategies)
}

type draftMessageRequest struct {
	SupplierID string `json:"supplier_id" binding:"required"`
	Type       string `json:"type"`
}

func (h *Handler) draftMessage(c *gin.Context) {
	var req draftMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.negotiations.DraftMessage(c.Request.Context(), service.DraftMessageInput{
		SupplierID: strings.TrimSpace(req.SupplierID),
		Kind:       strings.TrimSpace(req.Type),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, message)
}
