package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON_MarkdownCodeBlock(t *testing.T) {
	content := "Here is the result:\n```json\n{\"verdict\": \"strong\"}\n```\nDone."
	got := ExtractJSON(content)
	assert.JSONEq(t, `{"verdict": "strong"}`, got)
}

func TestExtractJSON_BareObject(t *testing.T) {
	content := `The page looks fine. {"hasChanges": false, "changes": []}`
	got := ExtractJSON(content)
	assert.JSONEq(t, `{"hasChanges": false, "changes": []}`, got)
}

func TestExtractJSON_TrailingCommas(t *testing.T) {
	content := `{"changes": [{"element": "hero",},],}`
	got := ExtractJSON(content)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(got), &parsed))
}

func TestExtractJSON_StripsCommentsOutsideStrings(t *testing.T) {
	content := `{
		"url": "https://example.com/pricing", // not a comment inside the string
		"count": 2 // two findings
	}`
	got := ExtractJSON(content)

	var parsed struct {
		URL   string `json:"url"`
		Count int    `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(got), &parsed))
	assert.Equal(t, "https://example.com/pricing", parsed.URL)
	assert.Equal(t, 2, parsed.Count)
}

func TestExtractJSON_NoJSON(t *testing.T) {
	assert.Empty(t, ExtractJSON("I could not produce a result."))
}

func TestStripLineComment_EscapedQuote(t *testing.T) {
	line := `"label": "say \"hi\"", // comment`
	got := stripLineComment(line)
	assert.Equal(t, `"label": "say \"hi\"",`, got)
}
