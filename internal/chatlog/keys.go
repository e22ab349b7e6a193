package chatlog

import (
	"encoding/binary"
	"strings"
)

// Keyspace helpers for Pebble keys.
//
// Layout (byte-wise, lexicographically sortable):
// - chat/{chatId}/m
// - chat/{chatId}/e/{idx_be8}
//
// The chat id is percent-escaped so it never contains a raw '/'. Without
// that, chat "c1/e" would place its entries inside chat "c1"'s scan bounds.

var (
	chatPrefix = []byte("chat/")
	metaSuffix = []byte("/m")
	entrySeg   = []byte("/e/")
)

func escapeChatID(chatID string) string {
	if !strings.ContainsAny(chatID, "/%") {
		return chatID
	}
	var b strings.Builder
	b.Grow(len(chatID) + 4)
	for i := 0; i < len(chatID); i++ {
		switch c := chatID[i]; c {
		case '/':
			b.WriteString("%2F")
		case '%':
			b.WriteString("%25")
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func appendBE8(dst []byte, v uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return append(dst, b[:]...)
}

// KeyChatMeta builds the chat metadata key.
func KeyChatMeta(chatID string) []byte {
	id := escapeChatID(chatID)
	k := make([]byte, 0, len(chatPrefix)+len(id)+len(metaSuffix))
	k = append(k, chatPrefix...)
	k = append(k, id...)
	k = append(k, metaSuffix...)
	return k
}

// KeyChatEntry builds the message key with a big-endian index for proper ordering.
func KeyChatEntry(chatID string, idx uint64) []byte {
	id := escapeChatID(chatID)
	k := make([]byte, 0, len(chatPrefix)+len(id)+len(entrySeg)+8)
	k = append(k, chatPrefix...)
	k = append(k, id...)
	k = append(k, entrySeg...)
	k = appendBE8(k, idx)
	return k
}
