package advisor

import (
	"context"

	"legalease/models"
)

// Service produces legal guidance from AI completions, degrading to
// heuristic fallbacks when the provider is unavailable.
type Service interface {
	GetAdvice(ctx context.Context, query models.LegalQuery) (*models.LegalAdviceResponse, error)
	GetContextualAdvice(ctx context.Context, query models.LegalQuery) (*models.LegalAdviceResponse, error)
	AnalyzeDocument(ctx context.Context, req models.DocumentAnalysisRequest) (*models.DocumentAnalysisResponse, error)
	GenerateTemplate(ctx context.Context, req models.TemplateRequest) (*models.Template, error)
}

// CompletionProvider abstracts a chat-completion backend. Implementations
// exist for OpenAI-compatible endpoints and Gemini.
type CompletionProvider interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	Name() string
}

// CompletionRequest carries a single system+user prompt pair with per-task
// sampling parameters.
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float64
	MaxTokens    int
}
