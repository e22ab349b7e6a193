// Package chatlog implements the append-only per-chat message log.
//
// # Overview
//
// Each live chat is an independent log persisted in Pebble. Keys are
// lexicographically ordered for efficient range scans:
//   - chat/{chatId}/m           (chat metadata: message count)
//   - chat/{chatId}/e/{idx_be8} (messages, 0-based index)
//
// Records are stored as: varint headerLen | header | payload | crc32c,
// where the header carries the publish timestamp (ms) and the payload is
// the JSON-encoded message.
//
// API surface (internal)
//
//	l, _ := Open(db, chatID)
//	idx, _ := l.Append(ctx, msg)        // returns the assigned 0-based index
//	n := l.Length()                     // messages appended so far
//	msgs, _ := l.Slice(from)            // snapshot of [from, Length())
//	woke := l.WaitForAppend(ctx, 50*time.Millisecond)
//
// Page tokens encode a cursor (the index of the next message to deliver) as
// base64 of its decimal form; see EncodePageToken/DecodePageToken.
package chatlog
