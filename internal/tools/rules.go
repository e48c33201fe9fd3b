package tools

import (
	"context"
	"strings"

	"github.com/savonarola/emqx-mcp-server/internal/emqx"
	"github.com/savonarola/emqx-mcp-server/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RuleTools exposes rule-engine helpers as MCP tools: SQL validation against
// the rule_test endpoint and schema-registry listing.
type RuleTools struct {
	client *emqx.Client
}

// NewRuleTools creates the rule-engine tool group backed by the given client.
func NewRuleTools(client *emqx.Client) *RuleTools {
	return &RuleTools{client: client}
}

// Register binds the rule-engine tools to the MCP server.
func (t *RuleTools) Register(s *server.MCPServer) {
	validateTool := mcp.NewTool("validate_sql",
		mcp.WithDescription("Validate an SQL statement for the EMQX Rule Engine against a sample event context"),
		mcp.WithString("sql",
			mcp.Required(),
			mcp.Description("SQL statement to validate"),
		),
		mcp.WithObject("context",
			mcp.Required(),
			mcp.Description("Sample event payload the rule SQL is tested against, tagged by its "+
				"event/event_type fields. Supported events: "+strings.Join(ruleEvents(), ", ")),
		),
	)
	s.AddTool(validateTool, t.handleValidateSQL)

	listSchemasTool := mcp.NewTool("list_available_schemas",
		mcp.WithDescription("List all available schemas in the EMQX schema registry"),
	)
	s.AddTool(listSchemasTool, t.handleListSchemas)
}

// handleValidateSQL handles the validate_sql tool. Both sql and context are
// required; the context is forwarded verbatim, the broker performs the
// event-shape validation and its verdict is returned unchanged.
func (t *RuleTools) handleValidateSQL(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	sql, ok := args["sql"]
	if !ok {
		logging.Error("RuleTools", nil, "Missing required parameter: sql")
		return mcp.NewToolResultError("Missing required parameter: sql"), nil
	}
	eventContext, ok := args["context"]
	if !ok {
		logging.Error("RuleTools", nil, "Missing required parameter: context")
		return mcp.NewToolResultError("Missing required parameter: context"), nil
	}

	logging.Info("RuleTools", "Validating SQL: %v", sql)

	result := t.client.Post(ctx, "rule_test", map[string]any{
		"sql":     sql,
		"context": eventContext,
	})
	logging.Debug("RuleTools", "Validation result: %+v", result)
	return toolResult(result)
}

// handleListSchemas handles the list_available_schemas tool. It takes no
// input and returns the registry's {name, description} entries.
func (t *RuleTools) handleListSchemas(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logging.Info("RuleTools", "Handling list schemas request")

	result := t.client.Get(ctx, "schema_registry", nil)
	if result.OK() {
		logging.Info("RuleTools", "Schema registry entries retrieved successfully")
	}
	return toolResult(result)
}
