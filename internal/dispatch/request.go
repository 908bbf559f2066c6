package dispatch

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// Request is the transient per-request value handed to handlers: normalized
// path, lowercased method, query params, headers, and the parsed body.
type Request struct {
	Path    string
	Method  string
	Query   map[string]string
	Headers map[string]string
	Payload map[string]any
}

// Header returns a header value, matching case-insensitively.
func (r *Request) Header(name string) string {
	if v, ok := r.Headers[name]; ok {
		return v
	}
	for k, v := range r.Headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// Response is a handler's result. A zero Status means 200; a nil Payload is
// serialized as an empty object.
type Response struct {
	Status  int
	Payload any
}

// Handler resolves a request to a response. Returning an error delegates
// status and payload to the domain error mapping.
type Handler func(ctx context.Context, req *Request) (*Response, error)

// OK wraps a payload in a 200 response.
func OK(payload any) *Response {
	return &Response{Status: http.StatusOK, Payload: payload}
}

// WithStatus wraps a payload in a response with an explicit status.
func WithStatus(status int, payload any) *Response {
	return &Response{Status: status, Payload: payload}
}

// NormalizePath strips leading and trailing slashes so "/users/", "/users"
// and "users" all resolve to the same route key.
func NormalizePath(path string) string {
	return strings.Trim(path, "/")
}

// ParsePayload decodes a request body as a JSON object. Malformed or
// non-object bodies never fail the request; they appear to the handler as
// an empty map.
func ParsePayload(raw []byte) map[string]any {
	payload := map[string]any{}
	if len(raw) == 0 {
		return payload
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return map[string]any{}
	}
	return payload
}
