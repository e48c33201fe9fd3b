// Package emqx implements the HTTP client for the EMQX management API.
//
// The client is a stateless pass-through adapter: it authenticates every
// request with the configured API key and secret, issues a single round trip
// per call, and normalizes every outcome into the two-variant Result
// envelope. Broker-side errors, transport errors and malformed responses all
// terminate as a failure Result; no error ever escapes the client boundary.
package emqx
