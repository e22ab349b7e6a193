package videosvc

import (
	"context"
	"errors"
	"time"

	"github.com/yuge42/yt-api-mock/internal/runtime"
	"github.com/yuge42/yt-api-mock/internal/videostore"
	logpkg "github.com/yuge42/yt-api-mock/pkg/log"
)

// ErrMissingVideoID is returned when a create request omits the id.
var ErrMissingVideoID = errors.New("video id is required")

// Service serves video resources from the runtime's video store.
type Service struct {
	rt     *runtime.Runtime
	logger logpkg.Logger
}

// New returns a Service using a default logger.
func New(rt *runtime.Runtime) *Service {
	return NewWithLogger(rt, logpkg.NewLogger().With(logpkg.Component("videos")))
}

// NewWithLogger returns a Service with the provided logger.
func NewWithLogger(rt *runtime.Runtime, logger logpkg.Logger) *Service {
	return &Service{rt: rt, logger: logger}
}

// List returns the requested videos. Unknown ids are omitted rather than
// failing the call, matching upstream list semantics. An empty id list
// returns every stored video.
func (s *Service) List(ctx context.Context, p ListParams) (*VideoListResponse, error) {
	sel := parseVideoParts(p.Parts)

	var vids []videostore.Video
	if len(p.IDs) == 0 {
		all, err := s.rt.Videos().List()
		if err != nil {
			return nil, err
		}
		vids = all
	} else {
		for _, id := range p.IDs {
			v, err := s.rt.Videos().Get(id)
			if errors.Is(err, videostore.ErrNotFound) {
				continue
			}
			if err != nil {
				return nil, err
			}
			vids = append(vids, v)
		}
	}

	items := make([]VideoView, 0, len(vids))
	for _, v := range vids {
		items = append(items, buildVideoView(v, sel))
	}
	return &VideoListResponse{
		Kind:     KindVideoList,
		Etag:     "etag-list-1",
		PageInfo: &PageInfo{TotalResults: len(items), ResultsPerPage: len(items)},
		Items:    items,
	}, nil
}

// Create stores a video from the control API.
func (s *Service) Create(ctx context.Context, p CreateParams) (videostore.Video, error) {
	if p.ID == "" {
		return videostore.Video{}, ErrMissingVideoID
	}
	published := time.Now().UTC()
	if p.PublishedAt != nil {
		published = *p.PublishedAt
	}
	v := videostore.Video{
		ID:                 p.ID,
		ChannelID:          p.ChannelID,
		Title:              p.Title,
		Description:        p.Description,
		ChannelTitle:       p.ChannelTitle,
		PublishedAt:        published,
		LiveChatID:         p.LiveChatID,
		ActualStartTime:    p.ActualStartTime,
		ActualEndTime:      p.ActualEndTime,
		ScheduledStartTime: p.ScheduledStartTime,
		ScheduledEndTime:   p.ScheduledEndTime,
		ConcurrentViewers:  p.ConcurrentViewers,
	}
	if err := s.rt.Videos().Put(v); err != nil {
		return videostore.Video{}, err
	}
	s.logger.Debug("video created", logpkg.Str("video_id", v.ID))
	return v, nil
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func buildVideoView(v videostore.Video, sel videoPartSelection) VideoView {
	out := VideoView{
		Kind: KindVideo,
		Etag: "etag-video-" + v.ID,
		ID:   v.ID,
	}
	if sel.snippet {
		out.Snippet = &VideoSnippet{
			PublishedAt:  v.PublishedAt.UTC().Format(time.RFC3339),
			ChannelID:    v.ChannelID,
			Title:        v.Title,
			Description:  v.Description,
			ChannelTitle: v.ChannelTitle,
		}
	}
	if sel.liveStreamingDetails {
		details := &LiveStreamingDetails{
			ActualStartTime:    formatTime(v.ActualStartTime),
			ActualEndTime:      formatTime(v.ActualEndTime),
			ScheduledStartTime: formatTime(v.ScheduledStartTime),
			ScheduledEndTime:   formatTime(v.ScheduledEndTime),
			ActiveLiveChatID:   v.LiveChatID,
			ConcurrentViewers:  v.ConcurrentViewers,
		}
		// Omit the whole block for plain uploads with no live data.
		if v.LiveChatID != "" || v.ActualStartTime != nil || v.ScheduledStartTime != nil {
			out.LiveStreamingDetails = details
		}
	}
	return out
}
