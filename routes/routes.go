package routes

import (
	"net/http"
	"time"

	"legalease/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAdviceRoutes registers the legal advice endpoint.
func RegisterAdviceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/legal-advice", hb.LegalAdviceHandler)
}

// RegisterAnalysisRoutes registers document analysis endpoints.
func RegisterAnalysisRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/document-analysis")
	{
		api.POST("", hb.AnalyzeDocumentHandler)
		api.GET("", hb.AnalysisTypesHandler)
	}
}

// RegisterTemplateRoutes registers template endpoints.
func RegisterTemplateRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/templates")
	{
		api.POST("", hb.GenerateTemplateHandler)
		api.GET("", hb.TemplateCatalogHandler)
	}
}

// RegisterSessionRoutes registers session CRUD endpoints.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/sessions")
	{
		api.POST("", hb.CreateSessionHandler)
		api.GET("", hb.GetSessionHandler)
		api.PUT("", hb.UpdateSessionHandler)
		api.DELETE("", hb.DeleteSessionHandler)
	}
}

// RegisterPaymentRoutes registers mock payment endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.POST("", hb.CreatePaymentHandler)
		api.GET("", hb.PaymentStatusHandler)
	}
}

// RegisterFrameRoutes registers the Farcaster Frame webhook and the frame
// image endpoints.
func RegisterFrameRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/frame")
	{
		api.GET("", hb.FrameMetadataHandler)
		api.POST("", hb.FrameWebhookHandler)
	}
	r.GET("/api/og/:state", hb.OGImageHandler)
}

// RegisterUserRoutes registers user profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/user")
	{
		api.POST("", hb.CreateUserProfileHandler)
		api.GET("", hb.GetUserProfileHandler)
		api.PUT("", hb.UpdateUserProfileHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm LegalEase"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAdviceRoutes(r, hb)
	RegisterAnalysisRoutes(r, hb)
	RegisterTemplateRoutes(r, hb)
	RegisterSessionRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterFrameRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterHealthRoute(r)
}
