// Package tools implements the MCP tool handlers for the EMQX MCP server.
//
// Handlers are grouped by capability area: message publishing (MessageTools),
// connected-client management (ClientTools) and rule-engine helpers
// (RuleTools). Every handler follows the same pattern: validate the request
// arguments, forward to the EMQX API client, and shape the normalized result
// for the MCP caller. Validation failures return an error result before any
// network call is made. Handlers hold no mutable state, so concurrent tool
// invocations are independent.
package tools
