package handlers

import (
	"net/http"

	"legalease/models"
	"legalease/services/frame"
	"legalease/utils"

	"github.com/gin-gonic/gin"
)

// FrameMetadataHandler serves GET /api/frame: the initial welcome frame.
func FrameMetadataHandler(svc frame.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.InitialFrame())
	}
}

// FrameWebhookHandler serves POST /api/frame. Frame clients render whatever
// body comes back, so even invalid payloads get the error visual instead of
// a raw JSON error; only the status code distinguishes them.
func FrameWebhookHandler(svc frame.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.FrameRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, svc.ErrorFrame("Invalid frame data"))
			return
		}
		if result := utils.ValidateFrameRequest(req); !result.IsValid {
			c.JSON(http.StatusBadRequest, svc.ErrorFrame("Invalid frame request"))
			return
		}

		c.JSON(http.StatusOK, svc.HandleInteraction(c.Request.Context(), req))
	}
}
