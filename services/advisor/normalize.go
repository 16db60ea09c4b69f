package advisor

import (
	"encoding/json"
	"errors"
	"strings"

	"legalease/models"
	"legalease/utils"
)

var errNoJSON = errors.New("no JSON object found in completion")

// unmarshalCompletionJSON decodes a JSON object out of raw model output.
// Models frequently wrap JSON in markdown fences or surround it with prose,
// so the fences are stripped and the outermost brace window is extracted
// before decoding.
func unmarshalCompletionJSON(raw string, v interface{}) error {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	if err := json.Unmarshal([]byte(cleaned), v); err == nil {
		return nil
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end <= start {
		return errNoJSON
	}
	return json.Unmarshal([]byte(cleaned[start:end+1]), v)
}

// fallbackAdvice builds a degraded response from raw model text when the
// completion is not parseable JSON. The caller still gets something usable.
func fallbackAdvice(raw string) *models.LegalAdviceResponse {
	return &models.LegalAdviceResponse{
		Summary:     utils.TruncateText(strings.TrimSpace(raw), 300),
		ActionSteps: []string{"Consult with a qualified attorney for specific guidance on your situation."},
		Sources:     []string{utils.MsgGenericSource},
		Disclaimer:  utils.MsgDisclaimer,
	}
}

// fallbackAnalysis builds a degraded document analysis from raw model text.
func fallbackAnalysis(raw string, jurisdiction string) *models.DocumentAnalysisResponse {
	return &models.DocumentAnalysisResponse{
		Summary:         utils.TruncateText(strings.TrimSpace(raw), 400),
		KeyPoints:       []string{"Automated analysis could not be structured; review the document manually."},
		Recommendations: []string{"Consult with a qualified attorney for a full review."},
		Compliance: models.Compliance{
			Jurisdiction: jurisdiction,
		},
		Confidence: 0.5,
	}
}

// fallbackTemplate builds a degraded template from raw model text.
func fallbackTemplate(raw string, req models.TemplateRequest) *models.Template {
	return &models.Template{
		Title:        req.TemplateType,
		Content:      utils.TruncateText(strings.TrimSpace(raw), 350),
		UsageContext: "Review with a qualified attorney before use.",
		Jurisdiction: req.Jurisdiction,
	}
}
