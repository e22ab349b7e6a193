package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	livechatsvc "github.com/yuge42/yt-api-mock/internal/services/livechat"
)

// sseSink delivers stream response frames as Server-Sent Events. The SSE
// headers go out with the first frame, so a validation failure before any
// emission can still answer with a plain JSON error.
type sseSink struct {
	w http.ResponseWriter
	r *http.Request

	started bool
}

// Send writes one response frame as an SSE data event: JSON payload with
// the "data: " prefix and a blank line terminator.
func (s *sseSink) Send(resp *livechatsvc.MessageListResponse) error {
	b, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	if !s.started {
		s.w.Header().Set("Content-Type", "text/event-stream")
		s.w.Header().Set("Cache-Control", "no-cache")
		s.w.Header().Set("Connection", "keep-alive")
		s.started = true
	}
	if _, err := s.w.Write([]byte("data: ")); err != nil {
		return err
	}
	if _, err := s.w.Write(b); err != nil {
		return err
	}
	if _, err := s.w.Write([]byte("\n\n")); err != nil {
		return err
	}
	return nil
}

// Context returns the request context for cancellation.
func (s *sseSink) Context() context.Context {
	return s.r.Context()
}

// Flush pushes buffered events to the client immediately.
func (s *sseSink) Flush() error {
	if f, ok := s.w.(http.Flusher); ok {
		f.Flush()
	}
	return nil
}
