package videostore

import (
	"errors"
	"testing"
	"time"

	pebblestore "github.com/yuge42/yt-api-mock/internal/storage/pebble"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := pebblestore.Open(pebblestore.Options{InMemory: true})
	if err != nil {
		t.Fatalf("open pebble: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return New(db)
}

func testVideo(id string) Video {
	viewers := uint64(42)
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	return Video{
		ID:                 id,
		ChannelID:          "channel-1",
		Title:              "Mock Live Stream Video",
		Description:        "A test video",
		ChannelTitle:       "Mock Channel",
		PublishedAt:        start,
		LiveChatID:         "live-chat-id-1",
		ActualStartTime:    &start,
		ScheduledStartTime: &start,
		ConcurrentViewers:  &viewers,
	}
}

func TestPutGet(t *testing.T) {
	s := newTestStore(t)
	want := testVideo("test-video-1")
	if err := s.Put(want); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := s.Get("test-video-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != want.ID || got.LiveChatID != want.LiveChatID || got.Title != want.Title {
		t.Fatalf("got %+v want %+v", got, want)
	}
	if got.ConcurrentViewers == nil || *got.ConcurrentViewers != 42 {
		t.Fatalf("concurrent viewers not preserved: %+v", got.ConcurrentViewers)
	}
	if got.ActualEndTime != nil {
		t.Fatalf("absent optional field should stay nil")
	}
}

func TestGetUnknown(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestPutOverwrites(t *testing.T) {
	s := newTestStore(t)
	v := testVideo("v1")
	if err := s.Put(v); err != nil {
		t.Fatalf("put: %v", err)
	}
	v.Title = "Updated Title"
	if err := s.Put(v); err != nil {
		t.Fatalf("put 2: %v", err)
	}
	got, err := s.Get("v1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Updated Title" {
		t.Fatalf("overwrite lost: %q", got.Title)
	}
}

func TestPutEmptyID(t *testing.T) {
	s := newTestStore(t)
	if err := s.Put(Video{}); err == nil {
		t.Fatalf("expected error for empty id")
	}
}

func TestListOrdered(t *testing.T) {
	s := newTestStore(t)
	for _, id := range []string{"b", "a", "c"} {
		if err := s.Put(testVideo(id)); err != nil {
			t.Fatalf("put %s: %v", id, err)
		}
	}
	vids, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(vids) != 3 {
		t.Fatalf("want 3 videos, got %d", len(vids))
	}
	if vids[0].ID != "a" || vids[1].ID != "b" || vids[2].ID != "c" {
		t.Fatalf("unexpected order: %v", []string{vids[0].ID, vids[1].ID, vids[2].ID})
	}
}
