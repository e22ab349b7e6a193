package chatlog

import (
	"time"
)

// Message is a single chat message as stored in the log. The log assigns the
// index; everything else is provided by the writer.
type Message struct {
	ID              string    `json:"id"`
	AuthorChannelID string    `json:"authorChannelId"`
	AuthorName      string    `json:"authorName"`
	Text            string    `json:"text"`
	PublishedAt     time.Time `json:"publishedAt"`
	IsVerified      bool      `json:"isVerified"`
}
