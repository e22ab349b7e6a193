package chatlog

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"sync"

	"github.com/cockroachdb/pebble"

	pebblestore "github.com/yuge42/yt-api-mock/internal/storage/pebble"
)

// Log provides append-only operations for a single live chat.
//
// A Log caches the message count and owns the append notification channel, so
// all writers and tailers of a chat must share the same instance. The runtime
// keeps one Log per chat id.
type Log struct {
	db     *pebblestore.DB
	chatID string

	mu       sync.Mutex
	count    uint64
	notifyCh chan struct{}
}

// Open initializes a Log and loads the message count from metadata (if any).
func Open(db *pebblestore.DB, chatID string) (*Log, error) {
	l := &Log{db: db, chatID: chatID, notifyCh: make(chan struct{})}
	meta, err := db.Get(KeyChatMeta(chatID))
	if err == nil && len(meta) >= 8 {
		l.count = binary.BigEndian.Uint64(meta[:8])
	}
	return l, nil
}

// ChatID returns the chat this log belongs to.
func (l *Log) ChatID() string { return l.chatID }

// Append persists msg at the next index as a single atomic batch and wakes
// blocked tailers. Returns the assigned 0-based index.
func (l *Log) Append(ctx context.Context, msg Message) (uint64, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return 0, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.count
	var hdr [8]byte
	binary.BigEndian.PutUint64(hdr[:], uint64(msg.PublishedAt.UnixMilli()))
	val := EncodeRecord(hdr[:], payload)

	b := l.db.NewBatch()
	defer b.Close()
	if err := b.Set(KeyChatEntry(l.chatID, idx), val, nil); err != nil {
		return 0, err
	}
	var meta [8]byte
	binary.BigEndian.PutUint64(meta[:], idx+1)
	if err := b.Set(KeyChatMeta(l.chatID), meta[:], nil); err != nil {
		return 0, err
	}
	if err := l.db.CommitBatch(ctx, b); err != nil {
		return 0, err
	}
	l.count = idx + 1

	// notify waiters
	close(l.notifyCh)
	l.notifyCh = make(chan struct{})
	return idx, nil
}

// Length returns the number of messages appended so far. Indexes run from 0
// to Length()-1.
func (l *Log) Length() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}

// Slice returns a snapshot of messages from index from (inclusive) to the
// current end of the log. Messages appended after the call are not included.
func (l *Log) Slice(from uint64) ([]Message, error) {
	low := KeyChatEntry(l.chatID, from)
	hi := KeyChatEntry(l.chatID, ^uint64(0))
	iter, err := l.db.NewIter(&pebble.IterOptions{LowerBound: low, UpperBound: append(hi, 0x00)})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var out []Message
	for ok := iter.First(); ok; ok = iter.Next() {
		dec, valid := DecodeRecord(iter.Value())
		if !valid {
			continue
		}
		var m Message
		if err := json.Unmarshal(dec.Payload, &m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
