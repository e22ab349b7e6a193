// Package livechatsvc provides streaming and polling access to live chat
// messages built on the internal chat log.
//
// StreamList is the primary operation: it tails a chat one message per
// response, resuming from an opaque page token, and keeps the stream open
// waiting for new appends until the client disconnects or the configured
// idle timeout elapses. List is the non-streaming twin returning all unread
// messages in a single batched response.
//
// Transports plug in through the Sink interface; the service never touches
// the wire format beyond the response structs in types.go.
package livechatsvc
