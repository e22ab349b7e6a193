package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// stubServer records control requests and serves canned API responses.
func stubServer(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()
	var paths []string
	mux := http.NewServeMux()
	mux.HandleFunc("/control/chat_messages", func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "created"})
	})
	mux.HandleFunc("/control/chat_messages/generate", func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "created"})
	})
	mux.HandleFunc("/youtube/v3/liveChat/messages", func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"kind": "youtube#liveChatMessageListResponse", "items": []any{},
		})
	})
	mux.HandleFunc("/youtube/v3/liveChat/messages/stream", func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Header().Set("Content-Type", "text/event-stream")
		for i := 0; i < 3; i++ {
			fmt.Fprintf(w, "data: {\"etag\":\"etag-%d\"}\n\n", i)
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &paths
}

func TestChatPostPrintsResult(t *testing.T) {
	srv, paths := stubServer(t)
	cmd := newChatPostCommand(func() string { return srv.URL })
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--chat-id", "chat-1", "--id", "msg-1", "--text", "hi"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(*paths) != 1 || (*paths)[0] != "/control/chat_messages" {
		t.Fatalf("paths = %v", *paths)
	}
	if !strings.Contains(buf.String(), "success") {
		t.Fatalf("output = %s", buf.String())
	}
}

func TestChatPostRequiresFlags(t *testing.T) {
	cmd := newChatPostCommand(func() string { return "http://unused" })
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--chat-id", "chat-1"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for missing --id")
	}
}

func TestChatGenerateCount(t *testing.T) {
	srv, paths := stubServer(t)
	cmd := newChatGenerateCommand(func() string { return srv.URL })
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--chat-id", "chat-1", "--count", "3"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(*paths) != 3 {
		t.Fatalf("expected 3 generate calls, got %v", *paths)
	}
}

func TestChatListPrintsResponse(t *testing.T) {
	srv, _ := stubServer(t)
	cmd := newChatListCommand(func() string { return srv.URL })
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--chat-id", "chat-1"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(buf.String(), "liveChatMessageListResponse") {
		t.Fatalf("output = %s", buf.String())
	}
}

func TestChatTailLimit(t *testing.T) {
	srv, _ := stubServer(t)
	cmd := newChatTailCommand(func() string { return srv.URL })
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--chat-id", "chat-1", "--limit", "2"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 frames, got %d: %s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "etag-0") {
		t.Fatalf("first frame = %s", lines[0])
	}
}

func TestChatPostServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "bad"})
	}))
	t.Cleanup(srv.Close)

	cmd := newChatPostCommand(func() string { return srv.URL })
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--chat-id", "chat-1", "--id", "msg-1"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error from 400 response")
	}
}
