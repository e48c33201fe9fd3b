package config

// Config is the top-level configuration structure for the EMQX MCP server.
type Config struct {
	API    APIConfig    `yaml:"api"`
	Server ServerConfig `yaml:"server"`
}

// APIConfig holds the credentials for the EMQX management HTTP API.
// Values are immutable for the process lifetime once loaded.
type APIConfig struct {
	URL    string `yaml:"url,omitempty"`    // Base URL of the EMQX HTTP API, e.g. https://cluster.emqx.cloud:8443/api/v5
	Key    string `yaml:"key,omitempty"`    // API key
	Secret string `yaml:"secret,omitempty"` // API secret
}

const (
	// MCPTransportStreamableHTTP is the streamable HTTP transport.
	MCPTransportStreamableHTTP = "streamable-http"
	// MCPTransportSSE is the Server-Sent Events transport.
	MCPTransportSSE = "sse"
	// MCPTransportStdio is the standard I/O transport.
	MCPTransportStdio = "stdio"
)

// ServerConfig defines how the MCP server is exposed to clients.
type ServerConfig struct {
	Transport string `yaml:"transport,omitempty"` // Transport to use (default: stdio)
	Host      string `yaml:"host,omitempty"`      // Host to bind to for HTTP transports (default: localhost)
	Port      int    `yaml:"port,omitempty"`      // Port for HTTP transports (default: 8090)
}

// GetDefaultConfig returns the default configuration.
// API credentials intentionally default to empty strings: a missing
// configuration surfaces on the first broker call, not at startup.
func GetDefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Transport: MCPTransportStdio,
			Host:      "localhost",
			Port:      8090,
		},
	}
}
