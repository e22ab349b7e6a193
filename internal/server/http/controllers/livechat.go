package controllers

import (
	"errors"
	"net/http"

	"github.com/yuge42/yt-api-mock/internal/chatlog"
	"github.com/yuge42/yt-api-mock/internal/runtime"
	livechatsvc "github.com/yuge42/yt-api-mock/internal/services/livechat"
)

// LiveChatController handles the liveChat/messages endpoints.
//
// The stream variant keeps the connection open and delivers one message
// per response frame over SSE; the list variant answers a single batched
// response for polling clients. Both share the page-token cursor format,
// so a client can switch between them mid-session.
type LiveChatController struct {
	rt *runtime.Runtime
	ch *livechatsvc.Service
}

// NewLiveChatController creates a new live chat controller.
func NewLiveChatController(rt *runtime.Runtime, svc *livechatsvc.Service) *LiveChatController {
	return &LiveChatController{rt: rt, ch: svc}
}

// RegisterRoutes registers live chat routes with the given mux.
func (c *LiveChatController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/youtube/v3/liveChat/messages", c.handleList)
	mux.HandleFunc("/youtube/v3/liveChat/messages/stream", c.handleStream)
}

// handleStream serves the streaming call over SSE.
//
// Validation errors surface as a plain 400 before any event is written;
// once streaming starts the only way out is a clean close.
func (c *LiveChatController) handleStream(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "Method not allowed", "METHOD_NOT_ALLOWED")
		return
	}
	q := r.URL.Query()
	p := livechatsvc.StreamParams{
		LiveChatID: q.Get("liveChatId"),
		PageToken:  q.Get("pageToken"),
		Parts:      splitParts(q.Get("part")),
	}
	if err := c.ch.StreamList(r.Context(), p, &sseSink{w: w, r: r}); err != nil {
		writeStreamError(w, err)
		return
	}
}

// handleList serves the polling call.
func (c *LiveChatController) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "Method not allowed", "METHOD_NOT_ALLOWED")
		return
	}
	q := r.URL.Query()
	p := livechatsvc.ListParams{
		LiveChatID: q.Get("liveChatId"),
		PageToken:  q.Get("pageToken"),
		Parts:      splitParts(q.Get("part")),
	}
	resp, err := c.ch.List(r.Context(), p)
	if err != nil {
		writeStreamError(w, err)
		return
	}
	writeJSON(w, resp)
}

// writeStreamError maps service errors onto the API error envelope. Both
// failure modes are client mistakes, so anything else is a 500.
func writeStreamError(w http.ResponseWriter, err error) {
	var tokenErr *chatlog.InvalidPageTokenError
	switch {
	case errors.Is(err, livechatsvc.ErrMissingLiveChatID):
		writeAPIError(w, http.StatusBadRequest, "live_chat_id is required", "INVALID_ARGUMENT")
	case errors.As(err, &tokenErr):
		writeAPIError(w, http.StatusBadRequest, "Invalid page_token: "+tokenErr.Reason, "INVALID_ARGUMENT")
	default:
		writeAPIError(w, http.StatusInternalServerError, "Internal error", "INTERNAL")
	}
}
