package livechatsvc

import (
	"context"
	"errors"
	"time"
)

// Resource kinds used in API responses.
const (
	KindMessageList = "youtube#liveChatMessageListResponse"
	KindMessage     = "youtube#liveChatMessage"

	snippetTypeText = "textMessageEvent"
)

// ErrMissingLiveChatID is returned when a request omits the chat id.
var ErrMissingLiveChatID = errors.New("live_chat_id is required")

// MessageListResponse is a single list/stream response frame.
type MessageListResponse struct {
	Kind                  string        `json:"kind"`
	Etag                  string        `json:"etag"`
	NextPageToken         string        `json:"nextPageToken"`
	PollingIntervalMillis int64         `json:"pollingIntervalMillis,omitempty"`
	PageInfo              *PageInfo     `json:"pageInfo,omitempty"`
	Items                 []MessageView `json:"items"`
}

// PageInfo mirrors the pageInfo block of list responses.
type PageInfo struct {
	TotalResults   int `json:"totalResults"`
	ResultsPerPage int `json:"resultsPerPage"`
}

// MessageView is a single rendered message resource. Snippet and
// AuthorDetails are populated according to the requested parts.
type MessageView struct {
	Kind          string          `json:"kind"`
	Etag          string          `json:"etag"`
	ID            string          `json:"id"`
	Snippet       *MessageSnippet `json:"snippet,omitempty"`
	AuthorDetails *AuthorDetails  `json:"authorDetails,omitempty"`
}

// MessageSnippet is the snippet part of a message resource.
type MessageSnippet struct {
	Type               string              `json:"type"`
	LiveChatID         string              `json:"liveChatId"`
	AuthorChannelID    string              `json:"authorChannelId"`
	PublishedAt        string              `json:"publishedAt"`
	DisplayMessage     string              `json:"displayMessage"`
	TextMessageDetails *TextMessageDetails `json:"textMessageDetails,omitempty"`
}

// TextMessageDetails carries the raw message text.
type TextMessageDetails struct {
	MessageText string `json:"messageText"`
}

// AuthorDetails is the authorDetails part of a message resource.
type AuthorDetails struct {
	ChannelID       string `json:"channelId"`
	DisplayName     string `json:"displayName"`
	IsVerified      bool   `json:"isVerified"`
	IsChatOwner     bool   `json:"isChatOwner"`
	IsChatSponsor   bool   `json:"isChatSponsor"`
	IsChatModerator bool   `json:"isChatModerator"`
}

// StreamParams identifies the chat, resume position, and requested parts for
// a streaming session.
type StreamParams struct {
	LiveChatID string
	PageToken  string
	Parts      []string
}

// ListParams identifies the chat, cursor, and parts for a polling request.
type ListParams struct {
	LiveChatID string
	PageToken  string
	Parts      []string
}

// AppendParams carries a fully-specified message for the control API.
type AppendParams struct {
	ID              string
	LiveChatID      string
	AuthorChannelID string
	AuthorName      string
	Text            string
	PublishedAt     time.Time
	IsVerified      bool
}

// GenerateParams carries the optional overrides for a generated message.
type GenerateParams struct {
	LiveChatID string
	Text       string
	AuthorName string
}

// Sink is implemented by transports to receive stream response frames.
type Sink interface {
	Send(*MessageListResponse) error
	Context() context.Context
	Flush() error
}

// partSelection controls which resource parts views carry.
type partSelection struct {
	snippet       bool
	authorDetails bool
}

// parseParts maps the comma-split part names onto a selection. An empty list
// selects snippet and authorDetails, matching what API consumers expect when
// part is omitted. Unknown names are ignored; "id" alone yields bare views.
func parseParts(parts []string) partSelection {
	if len(parts) == 0 {
		return partSelection{snippet: true, authorDetails: true}
	}
	var sel partSelection
	for _, p := range parts {
		switch p {
		case "snippet":
			sel.snippet = true
		case "authorDetails":
			sel.authorDetails = true
		}
	}
	return sel
}
