package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"legalease/config"
	"legalease/handlers"
	"legalease/middleware"
	"legalease/routes"
	"legalease/services/advisor"
	"legalease/services/analysis"
	"legalease/services/frame"
	"legalease/services/payment"
	"legalease/services/session"
	"legalease/services/template"
	"legalease/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// AI provider.
	var provider advisor.CompletionProvider
	if config.AppConfig.AIProvider == "gemini" {
		geminiProvider, err := advisor.NewGeminiProvider(config.AppConfig.GeminiAPIKey, "")
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize Gemini provider: %v", err)
		}
		provider = geminiProvider
	} else {
		provider = advisor.NewOpenAIProvider(
			config.AppConfig.OpenAIAPIKey,
			config.AppConfig.OpenAIBaseURL,
			config.AppConfig.OpenAIModel,
		)
	}

	// Session store.
	sessionTTL := time.Duration(config.AppConfig.SessionTTLHours) * time.Hour
	var sessionStore session.Store
	if config.AppConfig.SessionStore == "redis" {
		sessionStore = session.NewRedisStore(utils.GetSessionCacheClient(), sessionTTL)
	} else {
		sessionStore = session.NewMemoryStore(sessionTTL)
	}

	// Services.
	advisorService := advisor.NewDefaultAdvisorService(provider)
	analysisService := analysis.NewDefaultAnalysisService(advisorService)
	templateService := template.NewDefaultTemplateService(advisorService)
	sessionService := session.NewDefaultSessionService(sessionStore)
	paymentService := payment.NewMockPaymentService()
	frameService := frame.NewDefaultFrameService(advisorService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		LegalAdviceHandler: handlers.LegalAdviceHandler(advisorService),

		AnalyzeDocumentHandler: handlers.AnalyzeDocumentHandler(analysisService),
		AnalysisTypesHandler:   handlers.AnalysisTypesHandler(analysisService),

		GenerateTemplateHandler: handlers.GenerateTemplateHandler(templateService),
		TemplateCatalogHandler:  handlers.TemplateCatalogHandler(templateService),

		CreateSessionHandler: handlers.CreateSessionHandler(sessionService),
		GetSessionHandler:    handlers.GetSessionHandler(sessionService),
		UpdateSessionHandler: handlers.UpdateSessionHandler(sessionService),
		DeleteSessionHandler: handlers.DeleteSessionHandler(sessionService),

		CreatePaymentHandler: handlers.CreatePaymentHandler(paymentService),
		PaymentStatusHandler: handlers.PaymentStatusHandler(paymentService),

		FrameWebhookHandler:  handlers.FrameWebhookHandler(frameService),
		FrameMetadataHandler: handlers.FrameMetadataHandler(frameService),

		OGImageHandler: handlers.OGImageHandler(),

		CreateUserProfileHandler: handlers.CreateUserProfileHandler(),
		GetUserProfileHandler:    handlers.GetUserProfileHandler(),
		UpdateUserProfileHandler: handlers.UpdateUserProfileHandler(),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
