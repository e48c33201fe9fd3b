package emqx

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/savonarola/emqx-mcp-server/internal/config"
	"github.com/savonarola/emqx-mcp-server/pkg/logging"
)

const (
	// requestTimeout bounds every broker round trip. It is the only
	// cancellation mechanism besides the caller's context.
	requestTimeout = 30 * time.Second

	defaultErrorMessage = "Unknown error"
)

// Client is the single point of authenticated HTTP access to the EMQX
// management API. It holds only immutable credentials, so a single instance
// is safe for concurrent use by any number of tool handlers.
type Client struct {
	apiURL    string
	apiKey    string
	apiSecret string
}

// NewClient creates a client for the EMQX HTTP API from the given credentials.
func NewClient(cfg config.APIConfig) *Client {
	return &Client{
		apiURL:    cfg.URL,
		apiKey:    cfg.Key,
		apiSecret: cfg.Secret,
	}
}

// Get issues a GET request to path with optional query parameters.
func (c *Client) Get(ctx context.Context, path string, query url.Values) Result {
	return c.request(ctx, http.MethodGet, path, query, nil)
}

// Post issues a POST request to path with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) Result {
	return c.request(ctx, http.MethodPost, path, nil, body)
}

// Put issues a PUT request to path with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) Result {
	return c.request(ctx, http.MethodPut, path, nil, body)
}

// Delete issues a DELETE request to path.
func (c *Client) Delete(ctx context.Context, path string) Result {
	return c.request(ctx, http.MethodDelete, path, nil, nil)
}

// authHeader computes the Basic authorization header value for the EMQX API.
func (c *Client) authHeader() string {
	credentials := base64.StdEncoding.EncodeToString([]byte(c.apiKey + ":" + c.apiSecret))
	return "Basic " + credentials
}

// request sends one HTTP request to the EMQX API and normalizes the outcome.
// A fresh http.Client is acquired per call and released when the call ends,
// so each call's transport lifetime is fully scoped to the call.
func (c *Client) request(ctx context.Context, method, path string, query url.Values, body any) Result {
	requestURL := c.apiURL + "/" + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			logging.Error("EMQXClient", err, "Error encoding request body")
			return Failure(err.Error())
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reqBody)
	if err != nil {
		logging.Error("EMQXClient", err, "Error building %s request to %s", method, path)
		return Failure(err.Error())
	}
	req.Header.Set("Authorization", c.authHeader())
	req.Header.Set("Content-Type", "application/json")

	logging.Debug("EMQXClient", "Sending %s request to %s", method, requestURL)

	httpClient := &http.Client{Timeout: requestTimeout}
	resp, err := httpClient.Do(req)
	if err != nil {
		logging.Error("EMQXClient", err, "Error sending request")
		return Failure(err.Error())
	}
	defer resp.Body.Close()
	defer httpClient.CloseIdleConnections()

	return c.handleResponse(resp)
}

// handleResponse parses the API response body and maps it onto the Result
// envelope: 2xx with a JSON body passes the body through unchanged, non-2xx
// with a JSON body surfaces the body's message field, anything unparseable
// surfaces the HTTP status.
func (c *Client) handleResponse(resp *http.Response) Result {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		logging.Error("EMQXClient", err, "Error reading response body")
		return Failure(err.Error())
	}

	succeeded := resp.StatusCode >= 200 && resp.StatusCode < 300

	// EMQX replies with an empty body on some successful calls (e.g. 204 on
	// a client kick); treat that as a success with no payload.
	if len(bytes.TrimSpace(data)) == 0 && succeeded {
		return Success(nil)
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return Failure(fmt.Sprintf("EMQX API request failed: %s", resp.Status))
	}

	if succeeded {
		return Success(parsed)
	}

	errorMsg := defaultErrorMessage
	if obj, ok := parsed.(map[string]any); ok {
		if msg, ok := obj["message"].(string); ok && msg != "" {
			errorMsg = msg
		}
	}
	logging.Info("EMQXClient", "EMQX API Error: %d - %s", resp.StatusCode, errorMsg)
	return Failure(errorMsg)
}
