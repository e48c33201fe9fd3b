package tools

import (
	"context"

	"github.com/savonarola/emqx-mcp-server/internal/emqx"
	"github.com/savonarola/emqx-mcp-server/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// MessageTools exposes MQTT message publishing as MCP tools.
type MessageTools struct {
	client *emqx.Client
}

// NewMessageTools creates the message tool group backed by the given client.
func NewMessageTools(client *emqx.Client) *MessageTools {
	return &MessageTools{client: client}
}

// Register binds the message tools to the MCP server.
func (t *MessageTools) Register(s *server.MCPServer) {
	publishTool := mcp.NewTool("publish_mqtt_message",
		mcp.WithDescription("Publish an MQTT message to the EMQX cluster"),
		mcp.WithString("topic",
			mcp.Required(),
			mcp.Description("MQTT topic to publish to"),
		),
		mcp.WithString("payload",
			mcp.Required(),
			mcp.Description("Message content (an empty string is a valid payload)"),
		),
		mcp.WithNumber("qos",
			mcp.Description("Quality of Service level: 0, 1 or 2 (default: 0)"),
		),
		mcp.WithBoolean("retain",
			mcp.Description("Whether the broker retains the message (default: false)"),
		),
	)
	s.AddTool(publishTool, t.handlePublish)
}

// handlePublish handles the publish_mqtt_message tool. The topic must be a
// non-empty string and the payload key must be present; an empty payload
// string is valid, a missing key is not. The qos value is forwarded as given,
// range validation is the broker's job and its error surfaces through the
// normal failure path.
func (t *MessageTools) handlePublish(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	logging.Info("MessageTools", "Handling publish request")

	topic, _ := args["topic"].(string)
	if topic == "" {
		logging.Error("MessageTools", nil, "Missing required parameter: topic")
		return mcp.NewToolResultError("Missing required parameter: topic"), nil
	}

	payload := args["payload"]
	if payload == nil {
		logging.Error("MessageTools", nil, "Missing required parameter: payload")
		return mcp.NewToolResultError("Missing required parameter: payload"), nil
	}

	qos := 0
	if v, ok := args["qos"].(float64); ok {
		qos = int(v)
	}
	retain := false
	if v, ok := args["retain"].(bool); ok {
		retain = v
	}

	result := t.client.Post(ctx, "publish", map[string]any{
		"topic":   topic,
		"payload": payload,
		"qos":     qos,
		"retain":  retain,
	})
	if result.OK() {
		logging.Info("MessageTools", "Message published successfully to topic: %s", topic)
	}
	return toolResult(result)
}
