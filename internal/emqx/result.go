package emqx

import "encoding/json"

// Result is the normalized outcome of a single EMQX API call. Exactly one of
// the two variants holds: a successful call carries the parsed response body
// in Data, a failed call carries a non-empty message in Err. The client never
// returns a Go error past its boundary; every failure path ends in a Result.
type Result struct {
	Data any
	Err  string
}

// Success wraps a parsed response body.
func Success(data any) Result {
	return Result{Data: data}
}

// Failure wraps an error message. The message is never empty; callers that
// have nothing better report defaultErrorMessage.
func Failure(message string) Result {
	if message == "" {
		message = defaultErrorMessage
	}
	return Result{Err: message}
}

// OK reports whether the result is the success variant.
func (r Result) OK() bool {
	return r.Err == ""
}

// MarshalJSON renders the envelope in its wire shape:
// {"result": ...} on success, {"error": "..."} on failure.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.OK() {
		return json.Marshal(map[string]any{"result": r.Data})
	}
	return json.Marshal(map[string]any{"error": r.Err})
}
