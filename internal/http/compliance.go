package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nurzhas/procurement-api/internal/service"
)

type analyzeDocumentRequest struct {
	DocumentType string `json:"document_type"`
	Industry     string `json:"industry"`
	Region       string `json:"region"`
	Text         string `json:"text" binding:"required"`
}

func (h *Handler) analyzeDocument(c *gin.Context) {
	var req analyzeDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	analysis, err := h.compliance.AnalyzeDocument(c.Request.Context(), service.AnalyzeDocumentInput{
		DocumentType: req.DocumentType,
		Industry:     req.Industry,
		Region:       req.Region,
		Text:         req.Text,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

type requirementsRequest struct {
	Industry string `json:"industry"`
	Region   string `json:"region"`
}

// requirements serves both GET (query params) and POST (JSON body); omitted
// values fall back to the match-everything wildcards.
func (h *Handler) requirements(c *gin.Context) {
	industry := c.Query("industry")
	region := c.Query("region")

	if c.Request.Method == http.MethodPost {
		var req requirementsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		industry = req.Industry
		region = req.Region
	}

	requirements, err := h.compliance.Requirements(c.Request.Context(), industry, region)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, requirements)
}

type verifyComplianceRequest struct {
	SupplierID string `json:"supplier_id"`
	DocumentID string `json:"document_id"`
}

func (h *Handler) verifyCompliance(c *gin.Context) {
	var req verifyComplianceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.compliance.Verify(c.Request.Context(), service.VerifyInput{
		SupplierID: req.SupplierID,
		DocumentID: req.DocumentID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
