package livechatsvc

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/yuge42/yt-api-mock/internal/chatlog"
	"github.com/yuge42/yt-api-mock/internal/runtime"
	"github.com/yuge42/yt-api-mock/internal/telemetry"
	logpkg "github.com/yuge42/yt-api-mock/pkg/log"
)

// Service provides chat streaming, polling, and the write operations used by
// the control API. Streams never re-read history they already delivered: the
// cursor only moves forward, and blocked streams are woken by the shared
// per-chat append notification.
type Service struct {
	rt     *runtime.Runtime
	logger logpkg.Logger

	// streamTimeout closes a stream after this much time with no emission.
	// Zero keeps the stream open until the client disconnects.
	streamTimeout time.Duration
	// pollInterval bounds how long a stream waits between log checks.
	pollInterval time.Duration
}

// New returns a Service using a default logger and the runtime's configured
// timeouts.
func New(rt *runtime.Runtime) *Service {
	l := logpkg.NewLogger().With(logpkg.Component("livechat"))
	return NewWithLogger(rt, l)
}

// NewWithLogger returns a Service with the provided logger.
func NewWithLogger(rt *runtime.Runtime, logger logpkg.Logger) *Service {
	cfg := rt.Config()
	poll := cfg.PollInterval
	if poll <= 0 {
		poll = time.Second
	}
	return &Service{
		rt:            rt,
		logger:        logger,
		streamTimeout: cfg.StreamTimeout,
		pollInterval:  poll,
	}
}

// StreamList tails the chat named by p, sending one message per response
// frame through sink, oldest first, starting at the page token cursor.
//
// If the cursor is already at the end of the log, a single frame with empty
// items is sent so the client learns the stream is live before the first
// message arrives. After catch-up the stream stays open, emitting each new
// append, until the client disconnects or the idle timeout elapses; both are
// clean closes and return nil.
//
// The only error returned before any frame is sent is an invalid argument:
// a missing chat id or an undecodable page token.
func (s *Service) StreamList(ctx context.Context, p StreamParams, sink Sink) error {
	if p.LiveChatID == "" {
		return ErrMissingLiveChatID
	}
	cursor, err := chatlog.DecodePageToken(p.PageToken)
	if err != nil {
		return err
	}
	l, err := s.rt.OpenChatLog(p.LiveChatID)
	if err != nil {
		return err
	}
	sel := parseParts(p.Parts)

	telemetry.StreamOpened()
	started := time.Now()
	defer func() { telemetry.StreamClosed(time.Since(started).Seconds()) }()
	s.logger.Debug("stream opened",
		logpkg.Str("live_chat_id", p.LiveChatID),
		logpkg.Uint64("cursor", cursor))

	emit := func(resp *MessageListResponse) error {
		if err := sink.Send(resp); err != nil {
			return err
		}
		if telemetry.StreamResponses != nil {
			telemetry.StreamResponses.Inc()
		}
		return sink.Flush()
	}

	lastEmit := time.Now()

	// Catch-up: deliver the backlog one frame at a time, or a single empty
	// frame when there is none.
	backlog, err := l.Slice(cursor)
	if err != nil {
		return err
	}
	if len(backlog) == 0 {
		if sink.Context().Err() != nil {
			return nil
		}
		if err := emit(s.emptyFrame(cursor)); err != nil {
			return nil
		}
		lastEmit = time.Now()
	} else {
		for _, m := range backlog {
			if sink.Context().Err() != nil {
				return nil
			}
			if err := emit(s.messageFrame(p.LiveChatID, m, cursor, sel)); err != nil {
				return nil
			}
			cursor++
			lastEmit = time.Now()
		}
	}

	// Live tail.
	for {
		if sink.Context().Err() != nil {
			s.logger.Debug("stream closed by client", logpkg.Str("live_chat_id", p.LiveChatID))
			return nil
		}
		if l.Length() > cursor {
			batch, err := l.Slice(cursor)
			if err != nil {
				return err
			}
			for _, m := range batch {
				if sink.Context().Err() != nil {
					return nil
				}
				if err := emit(s.messageFrame(p.LiveChatID, m, cursor, sel)); err != nil {
					return nil
				}
				cursor++
				lastEmit = time.Now()
			}
			continue
		}
		if s.streamTimeout > 0 {
			idle := time.Since(lastEmit)
			if idle >= s.streamTimeout {
				s.logger.Debug("stream idle timeout", logpkg.Str("live_chat_id", p.LiveChatID))
				return nil
			}
			wait := s.streamTimeout - idle
			if wait > s.pollInterval {
				wait = s.pollInterval
			}
			l.WaitForAppend(sink.Context(), wait)
			continue
		}
		l.WaitForAppend(sink.Context(), s.pollInterval)
	}
}

// List returns all messages at or after the page token cursor in one batched
// response, with the token to resume from. An exhausted cursor yields empty
// items and an unchanged token.
func (s *Service) List(ctx context.Context, p ListParams) (*MessageListResponse, error) {
	if p.LiveChatID == "" {
		return nil, ErrMissingLiveChatID
	}
	cursor, err := chatlog.DecodePageToken(p.PageToken)
	if err != nil {
		return nil, err
	}
	l, err := s.rt.OpenChatLog(p.LiveChatID)
	if err != nil {
		return nil, err
	}
	sel := parseParts(p.Parts)

	msgs, err := l.Slice(cursor)
	if err != nil {
		return nil, err
	}
	items := make([]MessageView, 0, len(msgs))
	for i, m := range msgs {
		items = append(items, buildView(p.LiveChatID, m, cursor+uint64(i), sel))
	}
	next := cursor + uint64(len(msgs))
	return &MessageListResponse{
		Kind:                  KindMessageList,
		Etag:                  etag(next),
		NextPageToken:         chatlog.EncodePageToken(next),
		PollingIntervalMillis: s.pollInterval.Milliseconds(),
		PageInfo:              &PageInfo{TotalResults: len(items), ResultsPerPage: len(items)},
		Items:                 items,
	}, nil
}

// AppendMessage validates and appends a fully-specified message.
func (s *Service) AppendMessage(ctx context.Context, p AppendParams) (chatlog.Message, error) {
	if p.LiveChatID == "" {
		return chatlog.Message{}, ErrMissingLiveChatID
	}
	if p.ID == "" {
		return chatlog.Message{}, fmt.Errorf("message id is required")
	}
	if p.PublishedAt.IsZero() {
		p.PublishedAt = time.Now().UTC()
	}
	msg := chatlog.Message{
		ID:              p.ID,
		AuthorChannelID: p.AuthorChannelID,
		AuthorName:      p.AuthorName,
		Text:            p.Text,
		PublishedAt:     p.PublishedAt,
		IsVerified:      p.IsVerified,
	}
	return s.append(ctx, p.LiveChatID, msg)
}

// GenerateMessage appends a message with fabricated fields, honoring the
// optional text and author overrides.
func (s *Service) GenerateMessage(ctx context.Context, p GenerateParams) (chatlog.Message, error) {
	if p.LiveChatID == "" {
		return chatlog.Message{}, ErrMissingLiveChatID
	}
	text := p.Text
	if text == "" {
		text = gofakeit.Sentence(6)
	}
	author := p.AuthorName
	if author == "" {
		author = gofakeit.Username()
	}
	msg := chatlog.Message{
		ID:              "msg-" + uuid.NewString(),
		AuthorChannelID: "channel-" + uuid.NewString(),
		AuthorName:      author,
		Text:            text,
		PublishedAt:     time.Now().UTC(),
	}
	return s.append(ctx, p.LiveChatID, msg)
}

func (s *Service) append(ctx context.Context, liveChatID string, msg chatlog.Message) (chatlog.Message, error) {
	l, err := s.rt.OpenChatLog(liveChatID)
	if err != nil {
		return chatlog.Message{}, err
	}
	idx, err := l.Append(ctx, msg)
	if err != nil {
		return chatlog.Message{}, err
	}
	if telemetry.ChatMessagesAppended != nil {
		telemetry.ChatMessagesAppended.Inc()
	}
	s.logger.Debug("message appended",
		logpkg.Str("live_chat_id", liveChatID),
		logpkg.Str("message_id", msg.ID),
		logpkg.Uint64("index", idx))
	return msg, nil
}

func etag(i uint64) string { return fmt.Sprintf("etag-%d", i) }

// emptyFrame is the sync marker sent when catch-up finds nothing: empty
// items with the token for the position the stream will resume from.
func (s *Service) emptyFrame(cursor uint64) *MessageListResponse {
	return &MessageListResponse{
		Kind:                  KindMessageList,
		Etag:                  etag(cursor),
		NextPageToken:         chatlog.EncodePageToken(cursor),
		PollingIntervalMillis: s.pollInterval.Milliseconds(),
		Items:                 []MessageView{},
	}
}

// messageFrame wraps the message at idx as a single-item response whose
// nextPageToken points past it.
func (s *Service) messageFrame(liveChatID string, m chatlog.Message, idx uint64, sel partSelection) *MessageListResponse {
	return &MessageListResponse{
		Kind:                  KindMessageList,
		Etag:                  etag(idx),
		NextPageToken:         chatlog.EncodePageToken(idx + 1),
		PollingIntervalMillis: s.pollInterval.Milliseconds(),
		Items:                 []MessageView{buildView(liveChatID, m, idx, sel)},
	}
}

func buildView(liveChatID string, m chatlog.Message, idx uint64, sel partSelection) MessageView {
	v := MessageView{
		Kind: KindMessage,
		Etag: etag(idx),
		ID:   m.ID,
	}
	if sel.snippet {
		v.Snippet = &MessageSnippet{
			Type:               snippetTypeText,
			LiveChatID:         liveChatID,
			AuthorChannelID:    m.AuthorChannelID,
			PublishedAt:        m.PublishedAt.UTC().Format(time.RFC3339),
			DisplayMessage:     m.Text,
			TextMessageDetails: &TextMessageDetails{MessageText: m.Text},
		}
	}
	if sel.authorDetails {
		v.AuthorDetails = &AuthorDetails{
			ChannelID:   m.AuthorChannelID,
			DisplayName: m.AuthorName,
			IsVerified:  m.IsVerified,
		}
	}
	return v
}
