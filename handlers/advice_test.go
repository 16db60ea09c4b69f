package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"legalease/models"
	"legalease/services/advisor"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeAdvisorService struct {
	advice          *models.LegalAdviceResponse
	template        *models.Template
	err             error
	contextualCalls int
	plainCalls      int
}

func (f *fakeAdvisorService) GetAdvice(ctx context.Context, q models.LegalQuery) (*models.LegalAdviceResponse, error) {
	f.plainCalls++
	return f.advice, f.err
}

func (f *fakeAdvisorService) GetContextualAdvice(ctx context.Context, q models.LegalQuery) (*models.LegalAdviceResponse, error) {
	f.contextualCalls++
	return f.advice, f.err
}

func (f *fakeAdvisorService) AnalyzeDocument(ctx context.Context, r models.DocumentAnalysisRequest) (*models.DocumentAnalysisResponse, error) {
	return nil, errors.New("not used")
}

func (f *fakeAdvisorService) GenerateTemplate(ctx context.Context, r models.TemplateRequest) (*models.Template, error) {
	if f.template == nil {
		return nil, errors.New("not used")
	}
	return f.template, f.err
}

func adviceRouter(svc advisor.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/legal-advice", LegalAdviceHandler(svc))
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLegalAdviceSuccess(t *testing.T) {
	svc := &fakeAdvisorService{advice: &models.LegalAdviceResponse{Summary: "You have rights."}}
	r := adviceRouter(svc)

	w := postJSON(r, "/api/legal-advice", `{"query":"My landlord locked me out","jurisdiction":"US-CA"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "You have rights.")
	assert.Equal(t, 1, svc.plainCalls)
	assert.Zero(t, svc.contextualCalls)
}

func TestLegalAdviceUsesContextualVariant(t *testing.T) {
	svc := &fakeAdvisorService{advice: &models.LegalAdviceResponse{Summary: "ok"}}
	r := adviceRouter(svc)

	body := `{"query":"My landlord locked me out","jurisdiction":"US-CA","context":{"urgency":"high"}}`
	w := postJSON(r, "/api/legal-advice", body)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.contextualCalls)
	assert.Zero(t, svc.plainCalls)
}

func TestLegalAdviceRejectsShortQuery(t *testing.T) {
	svc := &fakeAdvisorService{}
	r := adviceRouter(svc)

	w := postJSON(r, "/api/legal-advice", `{"query":"help","jurisdiction":"US-CA"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	assert.Zero(t, svc.plainCalls)
}

func TestLegalAdviceRejectsUnknownJurisdiction(t *testing.T) {
	svc := &fakeAdvisorService{}
	r := adviceRouter(svc)

	w := postJSON(r, "/api/legal-advice", `{"query":"My landlord locked me out","jurisdiction":"MARS"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.plainCalls)
}

func TestLegalAdviceAIFailure(t *testing.T) {
	svc := &fakeAdvisorService{err: errors.New("provider down")}
	r := adviceRouter(svc)

	w := postJSON(r, "/api/legal-advice", `{"query":"My landlord locked me out","jurisdiction":"GENERAL"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "AI_UNAVAILABLE")
}

func TestLegalAdviceSanitizesQuery(t *testing.T) {
	svc := &fakeAdvisorService{}
	r := adviceRouter(svc)

	// After stripping tags the remaining text is too short, so the request
	// must be rejected rather than forwarded.
	w := postJSON(r, "/api/legal-advice", `{"query":"<b></b><i></i> hi","jurisdiction":"GENERAL"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.plainCalls)
}
