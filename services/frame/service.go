package frame

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"legalease/config"
	"legalease/models"
	"legalease/services/advisor"
	"legalease/utils"

	"go.uber.org/zap"
)

// Service drives the Farcaster Frame interaction state machine. Every
// interaction is stateless: the next frame is derived entirely from the
// button index and input text of the current request.
type Service interface {
	InitialFrame() *models.FrameResponse
	HandleInteraction(ctx context.Context, req models.FrameRequest) *models.FrameResponse
	ErrorFrame(message string) *models.FrameResponse
}

type DefaultFrameService struct {
	Advisor advisor.Service
}

func NewDefaultFrameService(adv advisor.Service) *DefaultFrameService {
	return &DefaultFrameService{Advisor: adv}
}

func appURL() string {
	return strings.TrimSuffix(config.AppConfig.AppURL, "/")
}

func ogImage(state string) string {
	return fmt.Sprintf("%s/api/og/%s", appURL(), state)
}

func framePostURL() string {
	return appURL() + "/api/frame"
}

func newFrameResponse(image string, buttons []models.FrameButton, inputText string) *models.FrameResponse {
	if len(buttons) > models.FrameMaxButtons {
		buttons = buttons[:models.FrameMaxButtons]
	}
	return &models.FrameResponse{
		Type:        "frame",
		FrameURL:    framePostURL(),
		Image:       image,
		AspectRatio: models.FrameAspectRatio,
		Buttons:     buttons,
		InputText:   inputText,
		PostURL:     framePostURL(),
	}
}

// InitialFrame is the home state served on GET.
func (s *DefaultFrameService) InitialFrame() *models.FrameResponse {
	return newFrameResponse(
		ogImage("welcome"),
		[]models.FrameButton{
			{Label: "Get Legal Advice"},
			{Label: "Browse Topics"},
			{Label: "Browse Templates"},
			{Label: "Get Premium"},
		},
		"Describe your legal situation...",
	)
}

// HandleInteraction maps a button press to the next frame. It never returns
// an error; failures degrade to the error visual with a retry button.
func (s *DefaultFrameService) HandleInteraction(ctx context.Context, req models.FrameRequest) *models.FrameResponse {
	switch req.UntrustedData.ButtonIndex {
	case 1:
		return s.handleAdvice(ctx, req)
	case 2:
		return s.topicsFrame()
	case 3:
		return s.templatesFrame()
	case 4:
		return s.paymentFrame()
	default:
		return s.InitialFrame()
	}
}

func (s *DefaultFrameService) handleAdvice(ctx context.Context, req models.FrameRequest) *models.FrameResponse {
	input := strings.TrimSpace(req.UntrustedData.InputText)
	if input == "" {
		return newFrameResponse(
			ogImage("query"),
			[]models.FrameButton{
				{Label: "Submit Question"},
				{Label: "Back"},
			},
			"Describe your legal situation...",
		)
	}
	if utf8.RuneCountInString(input) < utils.MinQueryLength {
		return s.ErrorFrame(utils.MsgInvalidInput)
	}

	sanitized := utils.SanitizeInput(input, utils.MaxQueryInputLength)
	advice, err := s.Advisor.GetAdvice(ctx, models.LegalQuery{
		Query:        sanitized,
		Jurisdiction: "GENERAL",
		UserID:       fmt.Sprintf("fid:%d", req.UntrustedData.FID),
	})
	if err != nil {
		utils.GetLogger().Error("frame advice generation failed",
			zap.Int64("fid", req.UntrustedData.FID), zap.Error(err))
		return s.ErrorFrame("Failed to generate legal advice. Please try again.")
	}

	params := url.Values{}
	params.Set("summary", utils.TruncateText(advice.Summary, 200))
	image := fmt.Sprintf("%s?%s", ogImage("advice"), params.Encode())
	return newFrameResponse(
		image,
		[]models.FrameButton{
			{Label: "New Question"},
			{Label: "Browse Topics"},
			{Label: "Get Template"},
			{Label: "Get Premium"},
		},
		"",
	)
}

func (s *DefaultFrameService) topicsFrame() *models.FrameResponse {
	return newFrameResponse(
		ogImage("query"),
		[]models.FrameButton{
			{Label: "Ask a Question"},
			{Label: "Back"},
		},
		"Ask about housing, employment, consumer rights...",
	)
}

func (s *DefaultFrameService) templatesFrame() *models.FrameResponse {
	return newFrameResponse(
		ogImage("templates"),
		[]models.FrameButton{
			{Label: "Get Legal Advice"},
			{Label: "Browse Topics"},
			{Label: "Get Premium"},
			{Label: "Back"},
		},
		"",
	)
}

func (s *DefaultFrameService) paymentFrame() *models.FrameResponse {
	return newFrameResponse(
		ogImage("payment"),
		[]models.FrameButton{
			{Label: "Get Legal Advice"},
			{Label: "Back"},
		},
		"",
	)
}

// ErrorFrame is the degraded error visual shown in place of raw JSON errors.
func (s *DefaultFrameService) ErrorFrame(message string) *models.FrameResponse {
	params := url.Values{}
	params.Set("message", utils.TruncateText(message, 200))
	image := fmt.Sprintf("%s?%s", ogImage("error"), params.Encode())
	return newFrameResponse(
		image,
		[]models.FrameButton{{Label: "Try Again"}},
		"Describe your legal situation...",
	)
}
