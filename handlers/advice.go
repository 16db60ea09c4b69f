package handlers

import (
	"net/http"

	"legalease/models"
	"legalease/services/advisor"
	"legalease/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LegalAdviceHandler serves POST /api/legal-advice. Requests carrying a
// context block get the contextual prompt variant.
func LegalAdviceHandler(svc advisor.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var query models.LegalQuery
		if err := c.ShouldBindJSON(&query); err != nil {
			utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "invalid request body", err.Error())
			return
		}

		query.Query = utils.SanitizeInput(query.Query, utils.MaxQueryInputLength)
		if result := utils.ValidateLegalQuery(query); !result.IsValid {
			utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "Invalid legal advice request", result.Errors...)
			return
		}

		var (
			advice *models.LegalAdviceResponse
			err    error
		)
		if query.Context != nil {
			advice, err = svc.GetContextualAdvice(c.Request.Context(), query)
		} else {
			advice, err = svc.GetAdvice(c.Request.Context(), query)
		}
		if err != nil {
			utils.GetLogger().Error("legal advice generation failed", zap.Error(err))
			utils.JSONError(c, http.StatusServiceUnavailable, utils.CodeAIUnavailable, "Failed to generate legal advice")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    advice,
		})
	}
}
