package tools

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/savonarola/emqx-mcp-server/internal/config"
	"github.com/savonarola/emqx-mcp-server/internal/emqx"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"
)

// newToolRequest builds a CallToolRequest carrying the given arguments.
func newToolRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: struct {
			Name      string    `json:"name"`
			Arguments any       `json:"arguments,omitempty"`
			Meta      *mcp.Meta `json:"_meta,omitempty"`
		}{
			Arguments: args,
		},
	}
}

// mockBroker is an httptest-backed EMQX API stand-in that counts requests.
type mockBroker struct {
	server   *httptest.Server
	requests atomic.Int64

	lastMethod string
	lastPath   string
	lastQuery  map[string][]string
	lastBody   map[string]any
}

// newMockBroker starts a broker mock that always answers with the given
// status and JSON body.
func newMockBroker(t *testing.T, status int, body string) *mockBroker {
	t.Helper()
	b := &mockBroker{}
	b.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.requests.Add(1)
		b.lastMethod = r.Method
		b.lastPath = r.URL.Path
		b.lastQuery = r.URL.Query()
		b.lastBody = nil
		if r.Body != nil {
			var parsed map[string]any
			if err := json.NewDecoder(r.Body).Decode(&parsed); err == nil {
				b.lastBody = parsed
			}
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(b.server.Close)
	return b
}

func (b *mockBroker) client() *emqx.Client {
	return emqx.NewClient(config.APIConfig{URL: b.server.URL, Key: "k", Secret: "s"})
}

func (b *mockBroker) requestCount() int64 {
	return b.requests.Load()
}

// resultText extracts the text payload of a successful tool result.
func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	textContent, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok)
	return textContent.Text
}

// resultEnvelope unmarshals a successful tool result back into the
// {"result": ...} envelope.
func resultEnvelope(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()
	var envelope map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &envelope))
	return envelope
}
