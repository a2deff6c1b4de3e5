package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nurzhas/procurement-api/internal/service"
)

func (h *Handler) listSuppliers(c *gin.Context) {
	category := c.Query("category")

	var minRating *float64
	if raw := c.Query("min_rating"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_rating"})
			return
		}
		minRating = &parsed
	}

	suppliers, err := h.suppliers.List(c.Request.Context(), category, minRating)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

func (h *Handler) getSupplier(c *gin.Context) {
	supplier, err := h.suppliers.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, supplier)
}

type searchSuppliersRequest struct {
	Category          string   `json:"category"`
	MinRating         *float64 `json:"min_rating"`
	MaxPrice          *float64 `json:"max_price"`
	MinSustainability *int     `json:"min_sustainability"`
	Location          string   `json:"location"`
	Query             string   `json:"query"`
}

func (h *Handler) searchSuppliers(c *gin.Context) {
	var req searchSuppliersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.suppliers.Search(c.Request.Context(), service.SupplierFilter{
		Category:          req.Category,
		MinRating:         req.MinRating,
		MaxPrice:          req.MaxPrice,
		MinSustainability: req.MinSustainability,
		Location:          req.Location,
		Query:             req.Query,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) recommendSuppliers(c *gin.Context) {
	category := c.Query("category")

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	suppliers, err := h.suppliers.Recommend(c.Request.Context(), category, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

func (h *Handler) analyzeSupplier(c *gin.Context) {
	analysis, err := h.suppliers.Analyze(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}
