// Package provider holds the thin HTTP clients for the external payment
// and email collaborators. No retries, no queues; provider status and body
// are passed through to the caller.
package provider

import "encoding/json"

// Result carries a provider's HTTP status and decoded response body.
type Result struct {
	Status int
	Body   map[string]any
}

// OK reports whether the provider answered with a 2xx status.
func (r *Result) OK() bool {
	return r != nil && r.Status >= 200 && r.Status < 300
}

// decodeBody tolerates non-JSON provider responses; the raw text is kept
// under a single key so it still reaches the caller.
func decodeBody(raw []byte) map[string]any {
	body := map[string]any{}
	if len(raw) == 0 {
		return body
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return map[string]any{"raw": string(raw)}
	}
	return body
}
