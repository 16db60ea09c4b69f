package advisor

import (
	"strings"
	"testing"

	"legalease/models"
	"legalease/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalCompletionJSON(t *testing.T) {
	var payload aiAdvicePayload

	err := unmarshalCompletionJSON(`{"summary":"plain JSON","actionSteps":["a"]}`, &payload)
	require.NoError(t, err)
	assert.Equal(t, "plain JSON", payload.Summary)

	payload = aiAdvicePayload{}
	fenced := "```json\n{\"summary\":\"fenced\",\"actionSteps\":[]}\n```"
	err = unmarshalCompletionJSON(fenced, &payload)
	require.NoError(t, err)
	assert.Equal(t, "fenced", payload.Summary)

	payload = aiAdvicePayload{}
	wrapped := "Here is your answer:\n{\"summary\":\"wrapped in prose\"}\nHope that helps!"
	err = unmarshalCompletionJSON(wrapped, &payload)
	require.NoError(t, err)
	assert.Equal(t, "wrapped in prose", payload.Summary)
}

func TestUnmarshalCompletionJSONNoObject(t *testing.T) {
	var payload aiAdvicePayload
	err := unmarshalCompletionJSON("sorry, I cannot answer that", &payload)
	assert.Error(t, err)
}

func TestFallbackAdvice(t *testing.T) {
	raw := strings.Repeat("x", 400)
	resp := fallbackAdvice(raw)
	assert.Len(t, resp.Summary, 303) // 300 runes + ellipsis
	assert.NotEmpty(t, resp.ActionSteps)
	assert.Equal(t, []string{utils.MsgGenericSource}, resp.Sources)
	assert.Equal(t, utils.MsgDisclaimer, resp.Disclaimer)
}

func TestFallbackAnalysis(t *testing.T) {
	resp := fallbackAnalysis("unstructured model output", "US-NY")
	assert.Equal(t, "unstructured model output", resp.Summary)
	assert.Equal(t, "US-NY", resp.Compliance.Jurisdiction)
	assert.NotEmpty(t, resp.Recommendations)
}

func TestFallbackTemplate(t *testing.T) {
	req := models.TemplateRequest{TemplateType: "demand-letter", Jurisdiction: "US-CA"}
	tpl := fallbackTemplate("some raw text", req)
	assert.Equal(t, "demand-letter", tpl.Title)
	assert.Equal(t, "US-CA", tpl.Jurisdiction)
	assert.Equal(t, "some raw text", tpl.Content)
}
