package frame

import (
	"context"
	"errors"
	"testing"

	"legalease/models"

	"github.com/stretchr/testify/assert"
)

// fakeAdvisor records advice calls and returns a canned response.
type fakeAdvisor struct {
	advice *models.LegalAdviceResponse
	err    error
	calls  int
}

func (f *fakeAdvisor) GetAdvice(ctx context.Context, q models.LegalQuery) (*models.LegalAdviceResponse, error) {
	f.calls++
	return f.advice, f.err
}

func (f *fakeAdvisor) GetContextualAdvice(ctx context.Context, q models.LegalQuery) (*models.LegalAdviceResponse, error) {
	return f.advice, f.err
}

func (f *fakeAdvisor) AnalyzeDocument(ctx context.Context, r models.DocumentAnalysisRequest) (*models.DocumentAnalysisResponse, error) {
	return nil, errors.New("not used")
}

func (f *fakeAdvisor) GenerateTemplate(ctx context.Context, r models.TemplateRequest) (*models.Template, error) {
	return nil, errors.New("not used")
}

func frameRequest(button int, input string) models.FrameRequest {
	return models.FrameRequest{
		UntrustedData: models.FrameUntrustedData{
			FID:         42,
			MessageHash: "0xabc",
			ButtonIndex: button,
			InputText:   input,
		},
	}
}

func TestInitialFrame(t *testing.T) {
	svc := NewDefaultFrameService(&fakeAdvisor{})

	resp := svc.InitialFrame()
	assert.Equal(t, "frame", resp.Type)
	assert.Contains(t, resp.Image, "/api/og/welcome")
	assert.Len(t, resp.Buttons, 4)
	assert.NotEmpty(t, resp.InputText)
	assert.Equal(t, models.FrameAspectRatio, resp.AspectRatio)
}

func TestButtonOneWithoutInputPromptsForQuery(t *testing.T) {
	adv := &fakeAdvisor{}
	svc := NewDefaultFrameService(adv)

	resp := svc.HandleInteraction(context.Background(), frameRequest(1, ""))
	assert.Contains(t, resp.Image, "/api/og/query")
	assert.Zero(t, adv.calls)
}

func TestButtonOneWithInputReturnsAdvice(t *testing.T) {
	adv := &fakeAdvisor{advice: &models.LegalAdviceResponse{Summary: "You have tenant rights."}}
	svc := NewDefaultFrameService(adv)

	resp := svc.HandleInteraction(context.Background(), frameRequest(1, "My landlord locked me out"))
	assert.Contains(t, resp.Image, "/api/og/advice")
	assert.Contains(t, resp.Image, "summary=")
	assert.Equal(t, 1, adv.calls)
	assert.Len(t, resp.Buttons, 4)
}

func TestButtonOneShortInputShowsError(t *testing.T) {
	adv := &fakeAdvisor{}
	svc := NewDefaultFrameService(adv)

	resp := svc.HandleInteraction(context.Background(), frameRequest(1, "help"))
	assert.Contains(t, resp.Image, "/api/og/error")
	assert.Zero(t, adv.calls)
}

func TestButtonOneAdviceFailureDegradesToErrorFrame(t *testing.T) {
	adv := &fakeAdvisor{err: errors.New("provider down")}
	svc := NewDefaultFrameService(adv)

	resp := svc.HandleInteraction(context.Background(), frameRequest(1, "My landlord locked me out"))
	assert.Contains(t, resp.Image, "/api/og/error")
	assert.Equal(t, []models.FrameButton{{Label: "Try Again"}}, resp.Buttons)
}

func TestOtherButtons(t *testing.T) {
	svc := NewDefaultFrameService(&fakeAdvisor{})
	ctx := context.Background()

	assert.Contains(t, svc.HandleInteraction(ctx, frameRequest(2, "")).Image, "/api/og/query")
	assert.Contains(t, svc.HandleInteraction(ctx, frameRequest(3, "")).Image, "/api/og/templates")
	assert.Contains(t, svc.HandleInteraction(ctx, frameRequest(4, "")).Image, "/api/og/payment")
	assert.Contains(t, svc.HandleInteraction(ctx, frameRequest(0, "")).Image, "/api/og/welcome")
}
