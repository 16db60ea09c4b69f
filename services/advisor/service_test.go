package advisor

import (
	"context"
	"errors"
	"testing"

	"legalease/models"
	"legalease/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider returns a canned completion and records the last request.
type fakeProvider struct {
	response string
	err      error
	lastReq  CompletionRequest
	calls    int
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	f.calls++
	f.lastReq = req
	return f.response, f.err
}

func TestGetAdviceParsesJSON(t *testing.T) {
	provider := &fakeProvider{response: `{
		"summary": "You may have a claim for unlawful lockout.",
		"actionSteps": ["Document everything", "Contact local housing authority"],
		"relevantLaws": ["Civil Code 789.3"],
		"sources": ["California tenant law"]
	}`}
	svc := NewDefaultAdvisorService(provider)

	advice, err := svc.GetAdvice(context.Background(), models.LegalQuery{
		Query:        "My landlord locked me out",
		Jurisdiction: "US-CA",
	})
	require.NoError(t, err)
	assert.Equal(t, "You may have a claim for unlawful lockout.", advice.Summary)
	assert.Len(t, advice.ActionSteps, 2)
	assert.Equal(t, utils.MsgDisclaimer, advice.Disclaimer)

	assert.InDelta(t, adviceTemperature, provider.lastReq.Temperature, 0.001)
	assert.Equal(t, adviceMaxTokens, provider.lastReq.MaxTokens)
	assert.Contains(t, provider.lastReq.UserPrompt, "California")
}

func TestGetAdviceFallsBackOnGarbage(t *testing.T) {
	provider := &fakeProvider{response: "I am not JSON at all, sorry."}
	svc := NewDefaultAdvisorService(provider)

	advice, err := svc.GetAdvice(context.Background(), models.LegalQuery{
		Query:        "My landlord locked me out",
		Jurisdiction: "GENERAL",
	})
	require.NoError(t, err)
	assert.Equal(t, "I am not JSON at all, sorry.", advice.Summary)
	assert.Equal(t, []string{utils.MsgGenericSource}, advice.Sources)
}

func TestGetAdvicePropagatesProviderError(t *testing.T) {
	provider := &fakeProvider{err: errors.New("upstream down")}
	svc := NewDefaultAdvisorService(provider)

	_, err := svc.GetAdvice(context.Background(), models.LegalQuery{Query: "q", Jurisdiction: "GENERAL"})
	assert.Error(t, err)
}

func TestGetContextualAdviceIncludesContext(t *testing.T) {
	provider := &fakeProvider{response: `{"summary":"ok"}`}
	svc := NewDefaultAdvisorService(provider)

	_, err := svc.GetContextualAdvice(context.Background(), models.LegalQuery{
		Query:        "What should I do next about my deposit",
		Jurisdiction: "UK",
		Context: &models.AdviceContext{
			PreviousQueries: []string{"My landlord kept my deposit"},
			UserType:        "individual",
			Urgency:         "high",
		},
	})
	require.NoError(t, err)
	assert.Contains(t, provider.lastReq.UserPrompt, "My landlord kept my deposit")
	assert.Contains(t, provider.lastReq.UserPrompt, "individual")
	assert.Equal(t, contextualMaxTokens, provider.lastReq.MaxTokens)
}

func TestGenerateTemplate(t *testing.T) {
	provider := &fakeProvider{response: `{
		"title": "Demand Letter",
		"content": "Dear [DEBTOR_NAME], you owe [AMOUNT_OWED].",
		"usageContext": "Send before filing suit",
		"variables": ["DEBTOR_NAME", "AMOUNT_OWED"]
	}`}
	svc := NewDefaultAdvisorService(provider)

	tpl, err := svc.GenerateTemplate(context.Background(), models.TemplateRequest{
		TemplateType: "demand-letter",
		Jurisdiction: "US-NY",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tpl.ID)
	assert.Equal(t, "US-NY", tpl.Jurisdiction)
	assert.Contains(t, tpl.Content, "[DEBTOR_NAME]")
	assert.Equal(t, []string{"DEBTOR_NAME", "AMOUNT_OWED"}, tpl.Variables)
	assert.InDelta(t, templateTemperature, provider.lastReq.Temperature, 0.001)
}

func TestAnalyzeDocumentParsesCompliance(t *testing.T) {
	provider := &fakeProvider{response: `{
		"summary": "A residential lease agreement.",
		"keyPoints": ["12 month term"],
		"risks": ["Automatic renewal clause"],
		"recommendations": ["Negotiate the renewal clause"],
		"compliance": {"jurisdiction": "US-TX", "requirements": ["Security deposit cap"], "violations": []},
		"confidence": 0.9
	}`}
	svc := NewDefaultAdvisorService(provider)

	resp, err := svc.AnalyzeDocument(context.Background(), models.DocumentAnalysisRequest{
		DocumentText: "This lease agreement...",
		Jurisdiction: "US-TX",
		AnalysisType: "full",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "US-TX", resp.Compliance.Jurisdiction)
	assert.Equal(t, []string{"Automatic renewal clause"}, resp.Risks)
}
