package tools

import (
	"context"
	"net/url"

	"github.com/savonarola/emqx-mcp-server/internal/emqx"
	"github.com/savonarola/emqx-mcp-server/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// optionalClientFilters is the allow-list of filter keys copied verbatim from
// the request into the clients listing query. Unknown keys are never
// forwarded to the broker.
var optionalClientFilters = []string{
	"node", "clientid", "username", "ip_address", "conn_state",
	"clean_start", "proto_ver", "like_clientid", "like_username",
	"like_ip_address",
}

// ClientTools exposes MQTT client management as MCP tools.
type ClientTools struct {
	client *emqx.Client
}

// NewClientTools creates the client-management tool group backed by the given client.
func NewClientTools(client *emqx.Client) *ClientTools {
	return &ClientTools{client: client}
}

// Register binds the client-management tools to the MCP server.
func (t *ClientTools) Register(s *server.MCPServer) {
	listTool := mcp.NewTool("list_mqtt_clients",
		mcp.WithDescription("List MQTT clients connected to the EMQX cluster"),
		mcp.WithNumber("page",
			mcp.Description("Page number (default: 1)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Results per page, max 10000 (default: 100)"),
		),
		mcp.WithString("node",
			mcp.Description("Node name"),
		),
		mcp.WithString("clientid",
			mcp.Description("Client ID"),
		),
		mcp.WithString("username",
			mcp.Description("Username"),
		),
		mcp.WithString("ip_address",
			mcp.Description("Client IP address"),
		),
		mcp.WithString("conn_state",
			mcp.Description("Connection state"),
		),
		mcp.WithBoolean("clean_start",
			mcp.Description("Clean start flag"),
		),
		mcp.WithNumber("proto_ver",
			mcp.Description("MQTT protocol version"),
		),
		mcp.WithString("like_clientid",
			mcp.Description("Fuzzy search by client ID pattern"),
		),
		mcp.WithString("like_username",
			mcp.Description("Fuzzy search by username pattern"),
		),
		mcp.WithString("like_ip_address",
			mcp.Description("Fuzzy search by IP address pattern"),
		),
	)
	s.AddTool(listTool, t.handleListClients)

	getTool := mcp.NewTool("get_mqtt_client",
		mcp.WithDescription("Get detailed information about a specific MQTT client by client ID"),
		mcp.WithString("clientid",
			mcp.Required(),
			mcp.Description("The unique identifier of the client to retrieve"),
		),
	)
	s.AddTool(getTool, t.handleGetClientInfo)

	kickTool := mcp.NewTool("kick_mqtt_client",
		mcp.WithDescription("Disconnect a client from the MQTT broker by client ID"),
		mcp.WithString("clientid",
			mcp.Required(),
			mcp.Description("The unique identifier of the client to disconnect"),
		),
	)
	s.AddTool(kickTool, t.handleKickClient)
}

// handleListClients handles the list_mqtt_clients tool. Pagination defaults
// to page=1, limit=100; allow-listed filters are forwarded only when present.
func (t *ClientTools) handleListClients(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	logging.Info("ClientTools", "Handling list clients request")

	params := url.Values{}
	params.Set("page", "1")
	params.Set("limit", "100")
	if v, ok := args["page"]; ok {
		params.Set("page", queryValue(v))
	}
	if v, ok := args["limit"]; ok {
		params.Set("limit", queryValue(v))
	}
	for _, filter := range optionalClientFilters {
		if v, ok := args[filter]; ok {
			params.Set(filter, queryValue(v))
		}
	}

	result := t.client.Get(ctx, "clients", params)
	if result.OK() {
		logging.Info("ClientTools", "Client list retrieved successfully")
	}
	return toolResult(result)
}

// handleGetClientInfo handles the get_mqtt_client tool.
func (t *ClientTools) handleGetClientInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	logging.Info("ClientTools", "Handling get client info request")

	clientID, _ := args["clientid"].(string)
	if clientID == "" {
		logging.Error("ClientTools", nil, "Client ID is required but was not provided")
		return mcp.NewToolResultError("Client ID is required"), nil
	}

	result := t.client.Get(ctx, "clients/"+url.PathEscape(clientID), nil)
	if result.OK() {
		logging.Info("ClientTools", "Client info for '%s' retrieved successfully", clientID)
	}
	return toolResult(result)
}

// handleKickClient handles the kick_mqtt_client tool.
func (t *ClientTools) handleKickClient(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	logging.Info("ClientTools", "Handling kick client request")

	clientID, _ := args["clientid"].(string)
	if clientID == "" {
		logging.Error("ClientTools", nil, "Client ID is required but was not provided")
		return mcp.NewToolResultError("Client ID is required"), nil
	}

	result := t.client.Delete(ctx, "clients/"+url.PathEscape(clientID))
	if result.OK() {
		logging.Info("ClientTools", "Client '%s' disconnect request processed", clientID)
	}
	return toolResult(result)
}
