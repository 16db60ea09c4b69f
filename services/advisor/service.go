package advisor

import (
	"context"
	"fmt"

	"legalease/models"
	"legalease/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultAdvisorService implements Service on top of a CompletionProvider.
type DefaultAdvisorService struct {
	Provider CompletionProvider
}

func NewDefaultAdvisorService(provider CompletionProvider) *DefaultAdvisorService {
	return &DefaultAdvisorService{Provider: provider}
}

// aiAdvicePayload mirrors the JSON schema requested in the advice prompts.
type aiAdvicePayload struct {
	Summary      string   `json:"summary"`
	ActionSteps  []string `json:"actionSteps"`
	RelevantLaws []string `json:"relevantLaws"`
	Sources      []string `json:"sources"`
}

type aiAnalysisPayload struct {
	Summary         string   `json:"summary"`
	KeyPoints       []string `json:"keyPoints"`
	Risks           []string `json:"risks"`
	Recommendations []string `json:"recommendations"`
	Compliance      struct {
		Jurisdiction string   `json:"jurisdiction"`
		Requirements []string `json:"requirements"`
		Violations   []string `json:"violations"`
	} `json:"compliance"`
	Confidence float64 `json:"confidence"`
}

type aiTemplatePayload struct {
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	UsageContext string   `json:"usageContext"`
	Variables    []string `json:"variables"`
}

func (s *DefaultAdvisorService) GetAdvice(ctx context.Context, query models.LegalQuery) (*models.LegalAdviceResponse, error) {
	return s.advise(ctx, query, buildAdvicePrompt(query), adviceTemperature, adviceMaxTokens)
}

func (s *DefaultAdvisorService) GetContextualAdvice(ctx context.Context, query models.LegalQuery) (*models.LegalAdviceResponse, error) {
	return s.advise(ctx, query, buildContextualPrompt(query), contextualTemperature, contextualMaxTokens)
}

func (s *DefaultAdvisorService) advise(ctx context.Context, query models.LegalQuery, prompt string, temperature float64, maxTokens int) (*models.LegalAdviceResponse, error) {
	logger := utils.GetLogger()
	raw, err := s.Provider.Complete(ctx, CompletionRequest{
		SystemPrompt: adviceSystemPrompt,
		UserPrompt:   prompt,
		Temperature:  temperature,
		MaxTokens:    maxTokens,
	})
	if err != nil {
		logger.Error("advice completion failed", zap.String("provider", s.Provider.Name()), zap.Error(err))
		return nil, fmt.Errorf("advice completion failed: %w", err)
	}

	var payload aiAdvicePayload
	if err := unmarshalCompletionJSON(raw, &payload); err != nil || payload.Summary == "" {
		logger.Warn("advice completion was not valid JSON, using fallback",
			zap.String("provider", s.Provider.Name()))
		return fallbackAdvice(raw), nil
	}

	resp := &models.LegalAdviceResponse{
		Summary:      payload.Summary,
		ActionSteps:  payload.ActionSteps,
		RelevantLaws: payload.RelevantLaws,
		Sources:      payload.Sources,
		Disclaimer:   utils.MsgDisclaimer,
	}
	if len(resp.ActionSteps) == 0 {
		resp.ActionSteps = []string{"Consult with a qualified attorney for specific guidance on your situation."}
	}
	if len(resp.Sources) == 0 {
		resp.Sources = []string{utils.MsgGenericSource}
	}
	return resp, nil
}

func (s *DefaultAdvisorService) AnalyzeDocument(ctx context.Context, req models.DocumentAnalysisRequest) (*models.DocumentAnalysisResponse, error) {
	logger := utils.GetLogger()
	raw, err := s.Provider.Complete(ctx, CompletionRequest{
		SystemPrompt: adviceSystemPrompt,
		UserPrompt:   buildAnalysisPrompt(req),
		Temperature:  analysisTemperature,
		MaxTokens:    analysisMaxTokens,
	})
	if err != nil {
		logger.Error("document analysis completion failed", zap.String("provider", s.Provider.Name()), zap.Error(err))
		return nil, fmt.Errorf("document analysis failed: %w", err)
	}

	var payload aiAnalysisPayload
	if err := unmarshalCompletionJSON(raw, &payload); err != nil || payload.Summary == "" {
		logger.Warn("analysis completion was not valid JSON, using fallback",
			zap.String("provider", s.Provider.Name()))
		resp := fallbackAnalysis(raw, req.Jurisdiction)
		resp.ID = uuid.New().String()
		return resp, nil
	}

	resp := &models.DocumentAnalysisResponse{
		ID:              uuid.New().String(),
		Summary:         payload.Summary,
		KeyPoints:       payload.KeyPoints,
		Risks:           payload.Risks,
		Recommendations: payload.Recommendations,
		Compliance: models.Compliance{
			Jurisdiction: req.Jurisdiction,
			Requirements: payload.Compliance.Requirements,
			Violations:   payload.Compliance.Violations,
		},
		Confidence: payload.Confidence,
	}
	return resp, nil
}

func (s *DefaultAdvisorService) GenerateTemplate(ctx context.Context, req models.TemplateRequest) (*models.Template, error) {
	logger := utils.GetLogger()
	raw, err := s.Provider.Complete(ctx, CompletionRequest{
		SystemPrompt: adviceSystemPrompt,
		UserPrompt:   buildTemplatePrompt(req),
		Temperature:  templateTemperature,
		MaxTokens:    templateMaxTokens,
	})
	if err != nil {
		logger.Error("template completion failed", zap.String("provider", s.Provider.Name()), zap.Error(err))
		return nil, fmt.Errorf("template generation failed: %w", err)
	}

	var payload aiTemplatePayload
	if err := unmarshalCompletionJSON(raw, &payload); err != nil || payload.Content == "" {
		logger.Warn("template completion was not valid JSON, using fallback",
			zap.String("provider", s.Provider.Name()))
		tpl := fallbackTemplate(raw, req)
		tpl.ID = uuid.New().String()
		return tpl, nil
	}

	return &models.Template{
		ID:           uuid.New().String(),
		Title:        payload.Title,
		Content:      payload.Content,
		UsageContext: payload.UsageContext,
		Jurisdiction: req.Jurisdiction,
		Variables:    payload.Variables,
	}, nil
}
