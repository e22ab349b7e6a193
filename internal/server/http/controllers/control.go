package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	livechatsvc "github.com/yuge42/yt-api-mock/internal/services/livechat"
	videosvc "github.com/yuge42/yt-api-mock/internal/services/videos"
)

// ControlController handles the control endpoints used by test suites to
// seed fixtures at runtime: creating videos, appending fully-specified
// chat messages, and generating messages with fake data.
type ControlController struct {
	ch *livechatsvc.Service
	vs *videosvc.Service
}

// NewControlController creates a new control controller.
func NewControlController(chatSvc *livechatsvc.Service, videoSvc *videosvc.Service) *ControlController {
	return &ControlController{ch: chatSvc, vs: videoSvc}
}

// RegisterRoutes registers control routes with the given mux.
func (c *ControlController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/control/videos", c.handleCreateVideo)
	mux.HandleFunc("/control/chat_messages", c.handleCreateChatMessage)
	mux.HandleFunc("/control/chat_messages/generate", c.handleGenerateChatMessage)
}

func (c *ControlController) handleCreateVideo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeControlError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	var req videosvc.CreateParams
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeControlError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	v, err := c.vs.Create(r.Context(), req)
	if err != nil {
		writeControlError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeCreated(w, fmt.Sprintf("Video '%s' created successfully", v.ID))
}

type createChatMessageReq struct {
	ID                string     `json:"id"`
	LiveChatID        string     `json:"liveChatId"`
	AuthorChannelID   string     `json:"authorChannelId"`
	AuthorDisplayName string     `json:"authorDisplayName"`
	MessageText       string     `json:"messageText"`
	PublishedAt       *time.Time `json:"publishedAt"`
	IsVerified        bool       `json:"isVerified"`
}

func (c *ControlController) handleCreateChatMessage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeControlError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	var req createChatMessageReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeControlError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	p := livechatsvc.AppendParams{
		ID:              req.ID,
		LiveChatID:      req.LiveChatID,
		AuthorChannelID: req.AuthorChannelID,
		AuthorName:      req.AuthorDisplayName,
		Text:            req.MessageText,
		IsVerified:      req.IsVerified,
	}
	if req.PublishedAt != nil {
		p.PublishedAt = *req.PublishedAt
	}
	msg, err := c.ch.AppendMessage(r.Context(), p)
	if err != nil {
		writeControlError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeCreated(w, fmt.Sprintf("Chat message '%s' created successfully", msg.ID))
}

type generateChatMessageReq struct {
	LiveChatID        string `json:"liveChatId"`
	MessageText       string `json:"messageText"`
	AuthorDisplayName string `json:"authorDisplayName"`
}

func (c *ControlController) handleGenerateChatMessage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeControlError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	var req generateChatMessageReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeControlError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	msg, err := c.ch.GenerateMessage(r.Context(), livechatsvc.GenerateParams{
		LiveChatID: req.LiveChatID,
		Text:       req.MessageText,
		AuthorName: req.AuthorDisplayName,
	})
	if err != nil {
		writeControlError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeCreated(w, fmt.Sprintf("Chat message '%s' created successfully", msg.ID))
}
