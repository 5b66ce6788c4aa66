package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_FencedBlock(t *testing.T) {
	content := "好的，以下是分析结果：\n```json\n{\"name\": \"番茄炒蛋\", \"calories\": 180}\n```\n希望对你有帮助！"

	raw, err := Extract(content)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "番茄炒蛋", "calories": 180}`, string(raw))
}

func TestExtract_FencedBlockIgnoresSurroundingBraces(t *testing.T) {
	// The fence wins even when prose around it contains stray braces.
	content := "some {preamble\n```json\n{\"ok\": true}\n```\ntrailing}"

	raw, err := Extract(content)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok": true}`, string(raw))
}

func TestExtract_BraceSpan(t *testing.T) {
	content := `The result is {"weight": 300, "healthLevel": "green"} as estimated.`

	raw, err := Extract(content)
	require.NoError(t, err)
	assert.JSONEq(t, `{"weight": 300, "healthLevel": "green"}`, string(raw))
}

func TestExtract_InvalidFenceFallsThroughToBraces(t *testing.T) {
	content := "```json\nnot json at all\n```\nbut later {\"recovered\": 1} appears"

	raw, err := Extract(content)
	require.NoError(t, err)
	assert.JSONEq(t, `{"recovered": 1}`, string(raw))
}

func TestExtract_Failures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"prose only", "抱歉，我无法识别这张图片。"},
		{"unbalanced braces", "oops } then {"},
		{"invalid span", "{not valid json}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.content)
			assert.ErrorIs(t, err, ErrNoJSON)
		})
	}
}

func TestExtractInto(t *testing.T) {
	var result struct {
		Name     string  `json:"name"`
		Calories float64 `json:"calories"`
	}
	content := "```json\n{\"name\": \"红烧肉\", \"calories\": 520, \"extra\": \"ignored\"}\n```"

	require.NoError(t, ExtractInto(content, &result))
	assert.Equal(t, "红烧肉", result.Name)
	assert.Equal(t, 520.0, result.Calories)
}

func TestExtractInto_MissingNumericFieldsDefaultToZero(t *testing.T) {
	var result struct {
		Protein  float64 `json:"protein"`
		Calories float64 `json:"calories"`
	}

	require.NoError(t, ExtractInto(`{"protein": 12}`, &result))
	assert.Equal(t, 12.0, result.Protein)
	assert.Zero(t, result.Calories)
}
