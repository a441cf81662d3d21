package httpx

import (
	"context"
	"encoding/json"
)

// Envelope is the JSON response wrapper every backend endpoint uses.
// Code 200 or 0 means success; Data then carries the payload.
type Envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// SessionControl is the slice of the session the client needs: the bearer
// token for outgoing requests, and forced logout on an unauthorized
// response.
type SessionControl interface {
	Token() string
	Logout(ctx context.Context)
}

// ErrorDialog shows a user-visible error message.
type ErrorDialog interface {
	Error(ctx context.Context, content string) error
}
