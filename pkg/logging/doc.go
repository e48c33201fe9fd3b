// Package logging provides structured logging for the EMQX MCP server.
//
// The package is built on Go's standard slog package. Every log entry carries
// a subsystem identifier so that client, tool and server logs can be filtered
// independently:
//
//	logging.Init(logging.LevelInfo, os.Stderr)
//	logging.Info("EMQXClient", "Sending %s request to %s", method, url)
//	logging.Error("MessageTools", err, "Publish failed")
//
// Log output always goes to a caller-supplied writer, stderr by default. The
// stdio MCP transport owns stdout for the protocol stream, so nothing in this
// package ever writes there.
package logging
