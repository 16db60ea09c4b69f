package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"legalease/models"
)

// Query text bounds (after trimming).
const (
	MinQueryLength = 10
	MaxQueryLength = 500
)

var (
	walletAddressRe = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	txHashRe        = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
)

// ValidationResult reports the outcome of validating a request payload.
// Validators never fail hard on malformed input; they collect errors.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors,omitempty"`
}

func resultFrom(errs []string) ValidationResult {
	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// ValidateQuery checks that a free-text query is within bounds. Bounds are
// counted in characters, not bytes, so multi-byte text is not penalized.
func ValidateQuery(query string) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(query))
	return n >= MinQueryLength && n <= MaxQueryLength
}

// IsValidWalletAddress checks the 0x + 40 hex digit wallet format.
func IsValidWalletAddress(address string) bool {
	return walletAddressRe.MatchString(address)
}

// IsValidTransactionHash checks the 0x + 64 hex digit transaction format.
func IsValidTransactionHash(hash string) bool {
	return txHashRe.MatchString(hash)
}

// ValidateLegalQuery validates an advice request payload.
func ValidateLegalQuery(q models.LegalQuery) ValidationResult {
	var errs []string
	if !ValidateQuery(q.Query) {
		errs = append(errs, "query must be between 10 and 500 characters")
	}
	if q.Jurisdiction == "" {
		errs = append(errs, "jurisdiction is required")
	} else if !models.IsValidJurisdiction(q.Jurisdiction) {
		errs = append(errs, "jurisdiction is not supported")
	}
	return resultFrom(errs)
}

// ValidateDocumentAnalysisRequest validates a document analysis payload.
// The 10k size ceiling is reported separately by the handler so it can be
// rejected before any AI call; here only emptiness and formats are checked.
func ValidateDocumentAnalysisRequest(req models.DocumentAnalysisRequest) ValidationResult {
	var errs []string
	if strings.TrimSpace(req.DocumentText) == "" {
		errs = append(errs, "documentText is required")
	}
	if req.Jurisdiction == "" {
		errs = append(errs, "jurisdiction is required")
	} else if !models.IsValidJurisdiction(req.Jurisdiction) {
		errs = append(errs, "jurisdiction is not supported")
	}
	if req.AnalysisType == "" {
		errs = append(errs, "analysisType is required")
	}
	return resultFrom(errs)
}

// ValidateTemplateRequest validates a template generation payload.
func ValidateTemplateRequest(req models.TemplateRequest) ValidationResult {
	var errs []string
	if strings.TrimSpace(req.TemplateType) == "" {
		errs = append(errs, "templateType is required")
	}
	if req.Jurisdiction == "" {
		errs = append(errs, "jurisdiction is required")
	} else if !models.IsValidJurisdiction(req.Jurisdiction) {
		errs = append(errs, "jurisdiction is not supported")
	}
	return resultFrom(errs)
}

// ValidatePaymentRequest validates a mock payment initiation payload.
func ValidatePaymentRequest(req models.PaymentRequest) ValidationResult {
	var errs []string
	if req.Amount <= 0 {
		errs = append(errs, "amount must be positive")
	}
	if strings.TrimSpace(req.Currency) == "" {
		errs = append(errs, "currency is required")
	}
	if strings.TrimSpace(req.UserID) == "" {
		errs = append(errs, "userId is required")
	}
	if strings.TrimSpace(req.ServiceType) == "" {
		errs = append(errs, "serviceType is required")
	}
	return resultFrom(errs)
}

// ValidateFrameRequest validates a frame webhook payload.
func ValidateFrameRequest(req models.FrameRequest) ValidationResult {
	var errs []string
	ud := req.UntrustedData
	if ud.FID <= 0 {
		errs = append(errs, "fid must be positive")
	}
	if ud.MessageHash == "" {
		errs = append(errs, "messageHash is required")
	}
	if ud.ButtonIndex < 1 || ud.ButtonIndex > models.FrameMaxButtons {
		errs = append(errs, "buttonIndex must be between 1 and 4")
	}
	if utf8.RuneCountInString(ud.InputText) > models.FrameMaxInputLength {
		errs = append(errs, "inputText too long")
	}
	return resultFrom(errs)
}
