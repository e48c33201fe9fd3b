// Package server assembles the EMQX MCP server: it binds the tool handler
// groups to an MCP server instance and runs the configured transport.
//
// Supported transports are stdio (the default, one MCP client over
// stdin/stdout), SSE and streamable HTTP. The registration layer contains no
// business logic; validation lives in the tool handlers and HTTP access in
// the emqx client.
package server
