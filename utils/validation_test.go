package utils

import (
	"strings"
	"testing"

	"legalease/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"typical question", "My landlord locked me out", true},
		{"too short", "help", false},
		{"exactly ten chars", "abcdefghij", true},
		{"nine chars", "abcdefghi", false},
		{"max length", strings.Repeat("a", 500), true},
		{"over max length", strings.Repeat("a", 501), false},
		{"whitespace only", "            ", false},
		{"padded short query", "   help   ", false},
		{"six cjk chars too short", "六個中文字符", false},
		{"ten cjk chars", strings.Repeat("法", 10), true},
		{"five hundred cjk chars", strings.Repeat("法", 500), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateQuery(tt.query))
		})
	}
}

func TestIsValidWalletAddress(t *testing.T) {
	assert.True(t, IsValidWalletAddress("0x"+strings.Repeat("aB3f", 10)))
	assert.False(t, IsValidWalletAddress("0x123"))
	assert.False(t, IsValidWalletAddress(strings.Repeat("a", 42)))
	assert.False(t, IsValidWalletAddress("0x"+strings.Repeat("g", 40)))
}

func TestIsValidTransactionHash(t *testing.T) {
	assert.True(t, IsValidTransactionHash("0x"+strings.Repeat("0", 64)))
	assert.True(t, IsValidTransactionHash("0x"+strings.Repeat("aF09", 16)))
	assert.False(t, IsValidTransactionHash("0x"+strings.Repeat("0", 63)))
	assert.False(t, IsValidTransactionHash(strings.Repeat("0", 66)))
}

func TestValidateLegalQuery(t *testing.T) {
	valid := models.LegalQuery{Query: "My landlord locked me out", Jurisdiction: "US-CA"}
	result := ValidateLegalQuery(valid)
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)

	result = ValidateLegalQuery(models.LegalQuery{Query: "help", Jurisdiction: "US-CA"})
	assert.False(t, result.IsValid)
	assert.Len(t, result.Errors, 1)

	result = ValidateLegalQuery(models.LegalQuery{Query: "My landlord locked me out", Jurisdiction: "US-WY"})
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Errors[0], "not supported")

	result = ValidateLegalQuery(models.LegalQuery{Query: "x", Jurisdiction: ""})
	assert.False(t, result.IsValid)
	assert.Len(t, result.Errors, 2)
}

func TestValidateDocumentAnalysisRequest(t *testing.T) {
	valid := models.DocumentAnalysisRequest{
		DocumentText: "This agreement binds both parties.",
		Jurisdiction: "GENERAL",
		AnalysisType: "full",
	}
	assert.True(t, ValidateDocumentAnalysisRequest(valid).IsValid)

	missing := ValidateDocumentAnalysisRequest(models.DocumentAnalysisRequest{})
	assert.False(t, missing.IsValid)
	assert.Len(t, missing.Errors, 3)
}

func TestValidateFrameRequest(t *testing.T) {
	base := models.FrameRequest{
		UntrustedData: models.FrameUntrustedData{
			FID:         42,
			MessageHash: "0xabc",
			ButtonIndex: 1,
		},
	}
	assert.True(t, ValidateFrameRequest(base).IsValid)

	noFid := base
	noFid.UntrustedData.FID = 0
	assert.False(t, ValidateFrameRequest(noFid).IsValid)

	badButton := base
	badButton.UntrustedData.ButtonIndex = 5
	assert.False(t, ValidateFrameRequest(badButton).IsValid)

	longInput := base
	longInput.UntrustedData.InputText = strings.Repeat("x", models.FrameMaxInputLength+1)
	assert.False(t, ValidateFrameRequest(longInput).IsValid)
}
