package analysis

import (
	"context"
	"fmt"

	"legalease/models"
	"legalease/services/advisor"
	"legalease/utils"

	"go.uber.org/zap"
)

// Service analyzes legal documents, combining AI output with keyword
// heuristics over the document text.
type Service interface {
	AnalyzeDocument(ctx context.Context, req models.DocumentAnalysisRequest) (*models.DocumentAnalysisResponse, float64, error)
	AnalysisTypes() []models.AnalysisType
}

type DefaultAnalysisService struct {
	Advisor advisor.Service
}

func NewDefaultAnalysisService(adv advisor.Service) *DefaultAnalysisService {
	return &DefaultAnalysisService{Advisor: adv}
}

// AnalyzeDocument runs the AI analysis and backfills any empty sections
// from keyword heuristics. Confidence is always computed heuristically;
// model self-reported confidence is not trusted.
func (s *DefaultAnalysisService) AnalyzeDocument(ctx context.Context, req models.DocumentAnalysisRequest) (*models.DocumentAnalysisResponse, float64, error) {
	if len(req.DocumentText) > models.MaxDocumentLength {
		return nil, 0, fmt.Errorf("document exceeds maximum length of %d characters", models.MaxDocumentLength)
	}

	resp, err := s.Advisor.AnalyzeDocument(ctx, req)
	if err != nil {
		return nil, 0, err
	}

	if len(resp.Risks) == 0 {
		resp.Risks = ExtractRisks(req.DocumentText)
	}
	if len(resp.Compliance.Requirements) == 0 {
		resp.Compliance.Requirements = ExtractRequirements(req.DocumentText)
	}
	if len(resp.Compliance.Violations) == 0 {
		resp.Compliance.Violations = ExtractViolations(req.DocumentText)
	}
	resp.Risks = capFindings(resp.Risks, maxRiskFindings)
	resp.Compliance.Requirements = capFindings(resp.Compliance.Requirements, maxRequirementFindings)
	resp.Compliance.Violations = capFindings(resp.Compliance.Violations, maxViolationFindings)
	resp.Compliance.Jurisdiction = req.Jurisdiction
	resp.Confidence = CalculateConfidence(req.DocumentText + " " + resp.Summary)

	cost := AnalysisCost(req.AnalysisType, len(req.DocumentText))

	utils.GetLogger().Info("document analyzed",
		zap.String("analysisId", resp.ID),
		zap.String("analysisType", req.AnalysisType),
		zap.String("jurisdiction", req.Jurisdiction),
		zap.Int("documentLength", len(req.DocumentText)),
		zap.Float64("cost", cost),
		zap.Float64("confidence", resp.Confidence),
	)

	return resp, cost, nil
}

// AnalysisTypes lists the supported analysis types with pricing.
func (s *DefaultAnalysisService) AnalysisTypes() []models.AnalysisType {
	return []models.AnalysisType{
		{
			Type:          "summary",
			Name:          "Document Summary",
			Description:   "Get a plain-language summary of the document",
			BaseCost:      0.05,
			EstimatedTime: "1-2 minutes",
		},
		{
			Type:          "risks",
			Name:          "Risk Analysis",
			Description:   "Identify potential legal risks and liabilities",
			BaseCost:      0.08,
			EstimatedTime: "2-3 minutes",
		},
		{
			Type:          "compliance",
			Name:          "Compliance Check",
			Description:   "Check compliance with relevant laws and regulations",
			BaseCost:      0.12,
			EstimatedTime: "3-4 minutes",
		},
		{
			Type:          "full",
			Name:          "Full Analysis",
			Description:   "Comprehensive analysis including summary, risks, and compliance",
			BaseCost:      0.15,
			EstimatedTime: "4-5 minutes",
		},
	}
}
