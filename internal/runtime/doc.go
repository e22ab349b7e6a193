// Package runtime wires storage, config, and stores into a single-node
// mock instance. It exposes Open/Close, basic health checks, the video
// store, and per-chat log handles.
//
// Chat logs are cached: OpenChatLog returns the same *chatlog.Log for a
// given chat id for the lifetime of the runtime, so writers and streaming
// readers share the append notification channel.
//
// Example:
//
//	cfg := config.Default()
//	rt, _ := runtime.Open(runtime.Options{Config: cfg})
//	defer rt.Close()
//	_ = rt.CheckHealth(context.Background())
//	l, _ := rt.OpenChatLog("live-chat-id-1")
//	_, _ = l.Append(context.Background(), chatlog.Message{ID: "m1", Text: "hello"})
package runtime
