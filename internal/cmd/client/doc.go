// Package client provides the `ytmock` command-line client.
//
// The CLI talks to the mock server's HTTP endpoints to seed fixtures and
// inspect chat state from a terminal. It is primarily intended for
// developers wiring the mock into integration test setups.
//
// # Address configuration
//
// The HTTP base URL is discovered by the application that embeds the
// commands via a BaseURLFunc. When using the standalone binary, it reads
// YTMOCK_HTTP and defaults to http://[::1]:8080.
//
// Usage
//
//	ytmock chat post --chat-id my-chat --id msg-1 --text "hello" --author Alice
//	ytmock chat generate --chat-id my-chat
//	ytmock chat list --chat-id my-chat
//	ytmock chat tail --chat-id my-chat --limit 5
//
//	ytmock video create --id vid-1 --channel-id chan-1 --title "Stream" --live-chat-id my-chat
//	ytmock video list --id vid-1
//
//	ytmock token --grant-type authorization_code --code any
//
// Notes
//
//   - tail connects to the SSE streaming endpoint and prints one JSON
//     response frame per line until the limit is reached or the server
//     closes the stream.
//   - list and create use the same HTTP API the server exposes to test
//     suites, so CLI output matches what a client under test sees.
package client
