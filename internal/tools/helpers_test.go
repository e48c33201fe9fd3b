package tools

import (
	"testing"

	"github.com/savonarola/emqx-mcp-server/internal/emqx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryValue(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"string", "abc", "abc"},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
		{"whole float", float64(100), "100"},
		{"negative whole float", float64(-3), "-3"},
		{"fractional float", 1.5, "1.5"},
		{"nil", nil, "<nil>"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, queryValue(test.value))
		})
	}
}

func TestToolResult_Success(t *testing.T) {
	result, err := toolResult(emqx.Success(map[string]any{"id": "m1"}))
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.JSONEq(t, `{"result":{"id":"m1"}}`, resultText(t, result))
}

func TestToolResult_Failure(t *testing.T) {
	result, err := toolResult(emqx.Failure("bad topic"))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, "bad topic", resultText(t, result))
}
