package handlers

import (
	"net/http"
	"strconv"
	"time"

	"legalease/models"
	"legalease/services/template"
	"legalease/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GenerateTemplateHandler serves POST /api/templates.
func GenerateTemplateHandler(svc template.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.TemplateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "invalid request body", err.Error())
			return
		}

		req.Context = utils.SanitizeInput(req.Context, utils.MaxGenericInputLength)
		for k, v := range req.Customizations {
			req.Customizations[k] = utils.SanitizeInput(v, utils.MaxGenericInputLength)
		}
		if result := utils.ValidateTemplateRequest(req); !result.IsValid {
			utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "Invalid template request", result.Errors...)
			return
		}

		tpl, err := svc.Generate(c.Request.Context(), req)
		if err != nil {
			utils.GetLogger().Error("template generation failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, utils.CodeGenerationError, "Failed to generate template")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"template":     tpl,
				"instructions": tpl.UsageContext,
				"disclaimer":   utils.MsgDisclaimer,
				"generatedAt":  time.Now().UTC(),
			},
		})
	}
}

// TemplateCatalogHandler serves GET /api/templates: the static catalog with
// optional category filter and pagination.
func TemplateCatalogHandler(svc template.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		jurisdiction := c.DefaultQuery("jurisdiction", "GENERAL")
		category := c.Query("category")
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    svc.Catalog(jurisdiction, category, page, limit),
		})
	}
}
