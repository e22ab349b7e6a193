package videosvc

import (
	"time"
)

// Resource kinds used in API responses.
const (
	KindVideoList = "youtube#videoListResponse"
	KindVideo     = "youtube#video"
)

// VideoListResponse is the videos.list response envelope.
type VideoListResponse struct {
	Kind          string      `json:"kind"`
	Etag          string      `json:"etag"`
	NextPageToken string      `json:"nextPageToken,omitempty"`
	PageInfo      *PageInfo   `json:"pageInfo,omitempty"`
	Items         []VideoView `json:"items"`
}

// PageInfo mirrors the pageInfo block of list responses.
type PageInfo struct {
	TotalResults   int `json:"totalResults"`
	ResultsPerPage int `json:"resultsPerPage"`
}

// VideoView is a single rendered video resource.
type VideoView struct {
	Kind                 string                `json:"kind"`
	Etag                 string                `json:"etag"`
	ID                   string                `json:"id"`
	Snippet              *VideoSnippet         `json:"snippet,omitempty"`
	LiveStreamingDetails *LiveStreamingDetails `json:"liveStreamingDetails,omitempty"`
}

// VideoSnippet is the snippet part of a video resource.
type VideoSnippet struct {
	PublishedAt  string `json:"publishedAt"`
	ChannelID    string `json:"channelId"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ChannelTitle string `json:"channelTitle"`
}

// LiveStreamingDetails is the liveStreamingDetails part of a video resource.
type LiveStreamingDetails struct {
	ActualStartTime    string  `json:"actualStartTime,omitempty"`
	ActualEndTime      string  `json:"actualEndTime,omitempty"`
	ScheduledStartTime string  `json:"scheduledStartTime,omitempty"`
	ScheduledEndTime   string  `json:"scheduledEndTime,omitempty"`
	ActiveLiveChatID   string  `json:"activeLiveChatId,omitempty"`
	ConcurrentViewers  *uint64 `json:"concurrentViewers,omitempty"`
}

// ListParams selects which videos and parts to return.
type ListParams struct {
	IDs   []string
	Parts []string
}

// CreateParams carries a video definition for the control API. Optional
// timestamps stay nil when absent.
type CreateParams struct {
	ID                 string     `json:"id"`
	ChannelID          string     `json:"channelId"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	ChannelTitle       string     `json:"channelTitle"`
	PublishedAt        *time.Time `json:"publishedAt"`
	LiveChatID         string     `json:"liveChatId"`
	ActualStartTime    *time.Time `json:"actualStartTime"`
	ActualEndTime      *time.Time `json:"actualEndTime"`
	ScheduledStartTime *time.Time `json:"scheduledStartTime"`
	ScheduledEndTime   *time.Time `json:"scheduledEndTime"`
	ConcurrentViewers  *uint64    `json:"concurrentViewers"`
}

// videoPartSelection controls which resource parts views carry.
type videoPartSelection struct {
	snippet              bool
	liveStreamingDetails bool
}

func parseVideoParts(parts []string) videoPartSelection {
	if len(parts) == 0 {
		return videoPartSelection{snippet: true, liveStreamingDetails: true}
	}
	var sel videoPartSelection
	for _, p := range parts {
		switch p {
		case "snippet":
			sel.snippet = true
		case "liveStreamingDetails":
			sel.liveStreamingDetails = true
		}
	}
	return sel
}
