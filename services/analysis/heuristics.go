package analysis

import (
	"math"
	"strings"
)

var riskKeywords = []string{"risk", "danger", "liability", "penalty", "violation", "breach", "consequence"}

var requirementKeywords = []string{"must", "required", "mandatory", "shall", "obligation", "duty"}

var violationKeywords = []string{"violate", "breach", "non-compliant", "illegal", "unlawful", "invalid"}

var legalTerms = []string{"contract", "agreement", "clause", "provision", "statute", "regulation"}

const (
	maxRiskFindings        = 5
	maxRequirementFindings = 5
	maxViolationFindings   = 3
	minSentenceLength      = 10
)

// splitSentences breaks text on sentence terminators, dropping fragments
// too short to carry meaning.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder
	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			s := strings.TrimSpace(current.String())
			if len(s) > minSentenceLength {
				sentences = append(sentences, s)
			}
			current.Reset()
			continue
		}
		current.WriteRune(r)
	}
	s := strings.TrimSpace(current.String())
	if len(s) > minSentenceLength {
		sentences = append(sentences, s)
	}
	return sentences
}

// capFindings enforces a per-section finding limit. Model output goes
// through this too, so the section bounds hold regardless of source.
func capFindings(items []string, limit int) []string {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}

func extractByKeywords(text string, keywords []string, limit int) []string {
	var found []string
	for _, sentence := range splitSentences(text) {
		lower := strings.ToLower(sentence)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				found = append(found, sentence)
				break
			}
		}
		if len(found) >= limit {
			break
		}
	}
	return found
}

// ExtractRisks returns up to 5 sentences that mention risk language.
func ExtractRisks(text string) []string {
	return extractByKeywords(text, riskKeywords, maxRiskFindings)
}

// ExtractRequirements returns up to 5 sentences that mention obligation language.
func ExtractRequirements(text string) []string {
	return extractByKeywords(text, requirementKeywords, maxRequirementFindings)
}

// ExtractViolations returns up to 3 sentences that mention compliance problems.
func ExtractViolations(text string) []string {
	return extractByKeywords(text, violationKeywords, maxViolationFindings)
}

// CalculateConfidence scores how reliable an automated analysis is likely to
// be, based on document length and the density of recognizable legal terms.
// The score is capped at 0.95; no heuristic output claims certainty.
func CalculateConfidence(text string) float64 {
	confidence := 0.7
	if len(text) > 1000 {
		confidence += 0.1
	}
	if len(text) > 3000 {
		confidence += 0.1
	}
	lower := strings.ToLower(text)
	termsFound := 0
	for _, term := range legalTerms {
		if strings.Contains(lower, term) {
			termsFound++
		}
	}
	confidence += (float64(termsFound) / float64(len(legalTerms))) * 0.1
	return math.Min(confidence, 0.95)
}

var analysisBaseCosts = map[string]float64{
	"summary":    0.05,
	"risks":      0.08,
	"compliance": 0.12,
	"full":       0.15,
}

// AnalysisCost prices an analysis by type and document length. Longer
// documents cost proportionally more, capped at double the base cost.
func AnalysisCost(analysisType string, docLength int) float64 {
	base, ok := analysisBaseCosts[analysisType]
	if !ok {
		base = 0.10
	}
	multiplier := math.Min(float64(docLength)/5000.0, 2.0)
	return math.Round(base*multiplier*100) / 100
}
