package advisor

import (
	"fmt"
	"strings"

	"legalease/models"
)

// Sampling parameters per task. Advice and analysis favor low temperature;
// template generation is tighter still.
const (
	adviceTemperature     = 0.3
	adviceMaxTokens       = 1000
	contextualTemperature = 0.3
	contextualMaxTokens   = 1200
	analysisTemperature   = 0.3
	analysisMaxTokens     = 1500
	templateTemperature   = 0.2
	templateMaxTokens     = 1500
)

const adviceSystemPrompt = `You are a legal information assistant. You provide general legal information, not legal advice. Always respond with valid JSON only, no markdown, matching the requested schema exactly.`

func buildAdvicePrompt(query models.LegalQuery) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "A person asks the following legal question:\n\n%q\n\n", query.Query)
	fmt.Fprintf(&sb, "Jurisdiction: %s\n\n", models.JurisdictionName(query.Jurisdiction))
	sb.WriteString(`Respond with a JSON object with exactly these fields:
{
  "summary": "plain-language summary of the legal situation",
  "actionSteps": ["concrete step 1", "concrete step 2"],
  "relevantLaws": ["law or statute name"],
  "sources": ["source description"]
}
Keep the summary under 3 sentences. Provide 3-5 action steps. Return JSON only.`)
	return sb.String()
}

func buildContextualPrompt(query models.LegalQuery) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "A person asks the following legal question:\n\n%q\n\n", query.Query)
	fmt.Fprintf(&sb, "Jurisdiction: %s\n", models.JurisdictionName(query.Jurisdiction))
	if ctx := query.Context; ctx != nil {
		if ctx.UserType != "" {
			fmt.Fprintf(&sb, "The person is a: %s\n", ctx.UserType)
		}
		if ctx.Urgency != "" {
			fmt.Fprintf(&sb, "Urgency level: %s\n", ctx.Urgency)
		}
		if len(ctx.PreviousQueries) > 0 {
			sb.WriteString("Their previous questions in this session:\n")
			for _, q := range ctx.PreviousQueries {
				fmt.Fprintf(&sb, "- %s\n", q)
			}
		}
	}
	sb.WriteString(`
Respond with a JSON object with exactly these fields:
{
  "summary": "plain-language summary tailored to this person's situation",
  "actionSteps": ["concrete step 1", "concrete step 2"],
  "relevantLaws": ["law or statute name"],
  "sources": ["source description"]
}
Return JSON only.`)
	return sb.String()
}

func buildAnalysisPrompt(req models.DocumentAnalysisRequest) string {
	var sb strings.Builder
	docType := req.DocumentType
	if docType == "" {
		docType = "legal document"
	}
	analysisType := req.AnalysisType
	if analysisType == "" {
		analysisType = "full"
	}
	fmt.Fprintf(&sb, "Analyze the following %s (analysis type: %s) for the jurisdiction %s:\n\n%s\n\n",
		docType, analysisType, models.JurisdictionName(req.Jurisdiction), req.DocumentText)
	sb.WriteString(`Respond with a JSON object with exactly these fields:
{
  "summary": "what this document is and does",
  "keyPoints": ["key point"],
  "risks": ["risk or exposure for the signer"],
  "recommendations": ["suggested change or caution"],
  "compliance": {
    "jurisdiction": "the jurisdiction code",
    "requirements": ["legal requirement the document touches"],
    "violations": ["potential compliance problem"]
  },
  "confidence": 0.8
}
Return JSON only.`)
	return sb.String()
}

func buildTemplatePrompt(req models.TemplateRequest) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Generate a %s legal document template for the jurisdiction %s.\n",
		req.TemplateType, models.JurisdictionName(req.Jurisdiction))
	if req.Context != "" {
		fmt.Fprintf(&sb, "Context for this document: %s\n", req.Context)
	}
	if len(req.Customizations) > 0 {
		sb.WriteString("Apply these customizations:\n")
		for k, v := range req.Customizations {
			fmt.Fprintf(&sb, "- %s: %s\n", k, v)
		}
	}
	sb.WriteString(`
Use [PLACEHOLDER_NAME] markers for fields the user must fill in.
Respond with a JSON object with exactly these fields:
{
  "title": "document title",
  "content": "the full template text with [PLACEHOLDER] markers",
  "usageContext": "when and how to use this document",
  "variables": ["PLACEHOLDER_NAME"]
}
Return JSON only.`)
	return sb.String()
}
