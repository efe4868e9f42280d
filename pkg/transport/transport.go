// Package transport carries SDK requests to the booking platform. Services
// depend only on the Transport interface; HTTPTransport is the production
// implementation.
package transport

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"
)

type Transport interface {
	Get(ctx context.Context, path string, query url.Values) (*Response, error)
	Post(ctx context.Context, path string, body any) (*Response, error)
	Put(ctx context.Context, path string, body any) (*Response, error)
	Patch(ctx context.Context, path string, body any) (*Response, error)
	Delete(ctx context.Context, path string, query url.Values, body any) (*Response, error)
}

type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the JSON body into v. An empty body leaves v untouched.
func (r *Response) Decode(v any) error {
	if r == nil || len(r.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Map decodes the body as a JSON object.
func (r *Response) Map() (map[string]any, error) {
	out := map[string]any{}
	if err := r.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// StatusError is returned for any non-2xx platform response.
type StatusError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("platform returned %d: %s", e.StatusCode, e.Message)
}

func (e *StatusError) HTTPStatus() int {
	return e.StatusCode
}

// Retryable reports whether the platform may succeed on a later attempt.
func (e *StatusError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

type moduleKey struct{}

// WithModule tags ctx with the SDK module issuing the request. The HTTP
// transport uses it for rate limiting and metrics.
func WithModule(ctx context.Context, module string) context.Context {
	return context.WithValue(ctx, moduleKey{}, module)
}

func ModuleFrom(ctx context.Context) string {
	if m, ok := ctx.Value(moduleKey{}).(string); ok && m != "" {
		return m
	}
	return "unknown"
}

// platformError is the error envelope the platform returns.
type platformError struct {
	Message string `json:"message"`
	Errors  []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

func newStatusError(status int, body []byte) *StatusError {
	msg := http.StatusText(status)
	var pe platformError
	if err := json.Unmarshal(body, &pe); err == nil {
		switch {
		case len(pe.Errors) > 0 && pe.Errors[0].Message != "":
			msg = pe.Errors[0].Message
		case pe.Message != "":
			msg = pe.Message
		}
	}
	return &StatusError{StatusCode: status, Message: msg, Body: body}
}
