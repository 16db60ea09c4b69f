package handlers

import (
	"fmt"
	"net/http"

	"legalease/models"
	"legalease/services/analysis"
	"legalease/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AnalyzeDocumentHandler serves POST /api/document-analysis. Oversized
// documents are rejected before any AI call is made.
func AnalyzeDocumentHandler(svc analysis.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.DocumentAnalysisRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "invalid request body", err.Error())
			return
		}

		if result := utils.ValidateDocumentAnalysisRequest(req); !result.IsValid {
			utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "Invalid document analysis request", result.Errors...)
			return
		}
		if len(req.DocumentText) > models.MaxDocumentLength {
			utils.JSONError(c, http.StatusBadRequest, utils.CodeDocumentTooLarge,
				fmt.Sprintf("Document exceeds maximum length of %d characters", models.MaxDocumentLength))
			return
		}

		resp, cost, err := svc.AnalyzeDocument(c.Request.Context(), req)
		if err != nil {
			utils.GetLogger().Error("document analysis failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, utils.CodeAnalysisError, "Failed to analyze document")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    resp,
			"cost":    cost,
			"message": "Document analyzed successfully",
		})
	}
}

// AnalysisTypesHandler serves GET /api/document-analysis: the supported
// analysis types and their base costs.
func AnalysisTypesHandler(svc analysis.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    svc.AnalysisTypes(),
			"message": "Analysis types retrieved successfully",
		})
	}
}
