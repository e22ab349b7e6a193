// Package httpserver provides the REST gateway for the YouTube API mock:
// the youtube/v3 surface (liveChat messages with SSE streaming, videos),
// the control endpoints for seeding fixtures, and the OAuth token mock.
//
// Example:
//
//	rt, _ := runtime.Open(runtime.Options{Config: config.Default()})
//	s := httpserver.New(rt)
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//	_ = s.ListenAndServe(ctx, ":8080")
package httpserver
