package model

import "encoding/json"

// Response is the envelope every HTTP endpoint writes.
type Response struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// RawResponse is Response with the payload left undecoded, for service-to-service clients.
type RawResponse struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}
