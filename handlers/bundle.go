package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Advice endpoints
	LegalAdviceHandler gin.HandlerFunc

	// Document analysis endpoints
	AnalyzeDocumentHandler gin.HandlerFunc
	AnalysisTypesHandler   gin.HandlerFunc

	// Template endpoints
	GenerateTemplateHandler gin.HandlerFunc
	TemplateCatalogHandler  gin.HandlerFunc

	// Session endpoints
	CreateSessionHandler gin.HandlerFunc
	GetSessionHandler    gin.HandlerFunc
	UpdateSessionHandler gin.HandlerFunc
	DeleteSessionHandler gin.HandlerFunc

	// Payment endpoints
	CreatePaymentHandler gin.HandlerFunc
	PaymentStatusHandler gin.HandlerFunc

	// Frame endpoints
	FrameWebhookHandler  gin.HandlerFunc
	FrameMetadataHandler gin.HandlerFunc

	// OG image endpoint
	OGImageHandler gin.HandlerFunc

	// User profile endpoints
	CreateUserProfileHandler gin.HandlerFunc
	GetUserProfileHandler    gin.HandlerFunc
	UpdateUserProfileHandler gin.HandlerFunc
}
