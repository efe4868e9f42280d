package services

import (
	"context"
	"net/http"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharmasatrya/bookingsdk/pkg/models"
	"github.com/dharmasatrya/bookingsdk/pkg/transport"
)

type recordedCall struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	Module string
}

// spyTransport records every call and answers with a canned response.
type spyTransport struct {
	mu    sync.Mutex
	calls []recordedCall
	resp  *transport.Response
	err   error
}

func newSpy() *spyTransport {
	return &spyTransport{resp: &transport.Response{StatusCode: http.StatusOK, Body: []byte(`{"data":{}}`)}}
}

func (s *spyTransport) record(ctx context.Context, method, path string, query url.Values, body any) (*transport.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, recordedCall{
		Method: method,
		Path:   path,
		Query:  query,
		Body:   body,
		Module: transport.ModuleFrom(ctx),
	})
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func (s *spyTransport) Get(ctx context.Context, path string, query url.Values) (*transport.Response, error) {
	return s.record(ctx, http.MethodGet, path, query, nil)
}

func (s *spyTransport) Post(ctx context.Context, path string, body any) (*transport.Response, error) {
	return s.record(ctx, http.MethodPost, path, nil, body)
}

func (s *spyTransport) Put(ctx context.Context, path string, body any) (*transport.Response, error) {
	return s.record(ctx, http.MethodPut, path, nil, body)
}

func (s *spyTransport) Patch(ctx context.Context, path string, body any) (*transport.Response, error) {
	return s.record(ctx, http.MethodPatch, path, nil, body)
}

func (s *spyTransport) Delete(ctx context.Context, path string, query url.Values, body any) (*transport.Response, error) {
	return s.record(ctx, http.MethodDelete, path, query, body)
}

func (s *spyTransport) Calls() []recordedCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]recordedCall(nil), s.calls...)
}

func (s *spyTransport) only(t *testing.T) recordedCall {
	t.Helper()
	calls := s.Calls()
	require.Len(t, calls, 1)
	return calls[0]
}

func requireRejected(t *testing.T, spy *spyTransport, err error, contains string) {
	t.Helper()
	require.Error(t, err)
	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	if contains != "" {
		assert.Contains(t, vErr.Message, contains)
	}
	assert.Empty(t, spy.Calls(), "validation failure must not reach the transport")
}

// futureDate returns a date the given number of days from today.
func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func adults(n int) models.Passengers {
	return models.Passengers{Types: []models.PassengerTypeCount{{Type: "ADT", Count: n}}}
}

const (
	journeyKey   = "journey-key-0001"
	segmentKey   = "segment-key-0001"
	passengerKey = "pax-0001"
)
