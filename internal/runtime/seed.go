package runtime

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/yuge42/yt-api-mock/internal/chatlog"
	"github.com/yuge42/yt-api-mock/internal/videostore"
)

// Baseline fixture ids expected by API consumers.
const (
	SeedVideoID      = "test-video-1"
	SeedLiveChatID   = "live-chat-id-1"
	SeedTestChatID   = "test-chat-id"
	seedChatMessages = 5
)

// seedTime is the fixed instant used for deterministic fixture timestamps.
var seedTime = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

// Seed populates the baseline video and chat fixtures. Chats that already
// contain messages are left alone, so reseeding a durable data dir is safe.
func (r *Runtime) Seed(ctx context.Context) error {
	viewers := uint64(42)
	start := seedTime
	if err := r.videos.Put(videostore.Video{
		ID:                 SeedVideoID,
		ChannelID:          "channel-1",
		Title:              "Mock Live Stream Video",
		Description:        "This is a mock video for testing the YouTube Data API",
		ChannelTitle:       "Mock Channel",
		PublishedAt:        seedTime,
		LiveChatID:         SeedLiveChatID,
		ActualStartTime:    &start,
		ScheduledStartTime: &start,
		ConcurrentViewers:  &viewers,
	}); err != nil {
		return err
	}

	live, err := r.OpenChatLog(SeedLiveChatID)
	if err != nil {
		return err
	}
	if live.Length() == 0 {
		for i := 0; i < seedChatMessages; i++ {
			msg := chatlog.Message{
				ID:              fmt.Sprintf("msg-id-%d", i),
				AuthorChannelID: fmt.Sprintf("channel-id-%d", i),
				AuthorName:      gofakeit.Username(),
				Text:            gofakeit.Sentence(5),
				PublishedAt:     seedTime,
				IsVerified:      true,
			}
			if _, err := live.Append(ctx, msg); err != nil {
				return err
			}
		}
	}

	test, err := r.OpenChatLog(SeedTestChatID)
	if err != nil {
		return err
	}
	if test.Length() == 0 {
		for i := 0; i < seedChatMessages; i++ {
			msg := chatlog.Message{
				ID:              fmt.Sprintf("test-msg-id-%d", i),
				AuthorChannelID: fmt.Sprintf("test-channel-id-%d", i),
				AuthorName:      fmt.Sprintf("Test User %d", i),
				Text:            fmt.Sprintf("Test message %d", i),
				PublishedAt:     seedTime,
				IsVerified:      true,
			}
			if _, err := test.Append(ctx, msg); err != nil {
				return err
			}
		}
	}
	return nil
}
