package tools

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/savonarola/emqx-mcp-server/internal/emqx"

	"github.com/mark3labs/mcp-go/mcp"
)

// toolResult maps a normalized client result onto the MCP result types: a
// failure becomes a structured MCP error result, a success becomes the JSON
// rendering of the result envelope. Every handler funnels through here so all
// tools share one error shape.
func toolResult(result emqx.Result) (*mcp.CallToolResult, error) {
	if !result.OK() {
		return mcp.NewToolResultError(result.Err), nil
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// queryValue renders a request argument as a query-string value. JSON numbers
// arrive as float64; whole values are rendered without a fractional part so
// page=1 does not become page=1.000000.
func queryValue(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	case float64:
		if value == math.Trunc(value) {
			return strconv.FormatInt(int64(value), 10)
		}
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", value)
	}
}
