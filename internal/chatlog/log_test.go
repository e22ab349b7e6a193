package chatlog

import (
	"context"
	"sync"
	"testing"
	"time"

	pebblestore "github.com/yuge42/yt-api-mock/internal/storage/pebble"
)

func newTestLog(t *testing.T) *Log {
	t.Helper()
	db, err := pebblestore.Open(pebblestore.Options{InMemory: true})
	if err != nil {
		t.Fatalf("open pebble: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	l, err := Open(db, "chat-1")
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	return l
}

func testMessage(i int) Message {
	return Message{
		ID:              "m" + string(rune('0'+i)),
		AuthorChannelID: "UC1",
		AuthorName:      "Author",
		Text:            "hello",
		PublishedAt:     time.Unix(1672531200+int64(i), 0).UTC(),
	}
}

func TestAppendAssignsDenseIndexes(t *testing.T) {
	l := newTestLog(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		idx, err := l.Append(ctx, testMessage(i))
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
		if idx != uint64(i) {
			t.Fatalf("want index %d, got %d", i, idx)
		}
		if l.Length() != uint64(i+1) {
			t.Fatalf("want length %d, got %d", i+1, l.Length())
		}
	}
}

func TestSliceReturnsOrderedSnapshot(t *testing.T) {
	l := newTestLog(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := l.Append(ctx, testMessage(i)); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	msgs, err := l.Slice(2)
	if err != nil {
		t.Fatalf("slice: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("want 3 messages, got %d", len(msgs))
	}
	if msgs[0].ID != "m2" || msgs[2].ID != "m4" {
		t.Fatalf("unexpected order: %v", msgs)
	}
}

func TestSliceIgnoresOtherChats(t *testing.T) {
	db, err := pebblestore.Open(pebblestore.Options{InMemory: true})
	if err != nil {
		t.Fatalf("open pebble: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	// "c1/e" nests lexically under "c1"; its messages must stay invisible.
	own, err := Open(db, "c1")
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	other, err := Open(db, "c1/e")
	if err != nil {
		t.Fatalf("open log: %v", err)
	}

	ctx := context.Background()
	ownMsg := testMessage(0)
	ownMsg.ID = "own"
	if _, err := own.Append(ctx, ownMsg); err != nil {
		t.Fatalf("append: %v", err)
	}
	otherMsg := testMessage(1)
	otherMsg.ID = "foreign"
	if _, err := other.Append(ctx, otherMsg); err != nil {
		t.Fatalf("append: %v", err)
	}

	msgs, err := own.Slice(0)
	if err != nil {
		t.Fatalf("slice: %v", err)
	}
	if len(msgs) != 1 || msgs[0].ID != "own" {
		t.Fatalf("want only own message, got %v", msgs)
	}
	if own.Length() != 1 || other.Length() != 1 {
		t.Fatalf("counts crossed chats: %d / %d", own.Length(), other.Length())
	}
}

func TestSlicePastEndIsEmpty(t *testing.T) {
	l := newTestLog(t)
	if _, err := l.Append(context.Background(), testMessage(0)); err != nil {
		t.Fatalf("append: %v", err)
	}
	msgs, err := l.Slice(10)
	if err != nil {
		t.Fatalf("slice: %v", err)
	}
	if len(msgs) != 0 {
		t.Fatalf("want empty slice, got %d", len(msgs))
	}
}

func TestLengthDurableAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	db, err := pebblestore.Open(pebblestore.Options{DataDir: dir, Fsync: pebblestore.FsyncModeAlways})
	if err != nil {
		t.Fatalf("open pebble: %v", err)
	}
	l, err := Open(db, "chat-1")
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	ctx := context.Background()
	if _, err := l.Append(ctx, testMessage(0)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	db2, err := pebblestore.Open(pebblestore.Options{DataDir: dir, Fsync: pebblestore.FsyncModeAlways})
	if err != nil {
		t.Fatalf("reopen pebble: %v", err)
	}
	t.Cleanup(func() { _ = db2.Close() })
	l2, err := Open(db2, "chat-1")
	if err != nil {
		t.Fatalf("open log2: %v", err)
	}
	if l2.Length() != 1 {
		t.Fatalf("want length 1 after reopen, got %d", l2.Length())
	}
	idx, err := l2.Append(ctx, testMessage(1))
	if err != nil {
		t.Fatalf("append2: %v", err)
	}
	if idx != 1 {
		t.Fatalf("want index 1 after reopen, got %d", idx)
	}
}

func TestConcurrentAppendersKeepUniqueIndexes(t *testing.T) {
	l := newTestLog(t)
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	indexes := make(chan uint64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			idx, err := l.Append(ctx, testMessage(i%10))
			if err != nil {
				t.Errorf("append: %v", err)
				return
			}
			indexes <- idx
		}(i)
	}
	wg.Wait()
	close(indexes)

	seen := make(map[uint64]bool)
	for idx := range indexes {
		if seen[idx] {
			t.Fatalf("duplicate index %d", idx)
		}
		seen[idx] = true
	}
	if len(seen) != n || l.Length() != n {
		t.Fatalf("want %d unique indexes and length, got %d / %d", n, len(seen), l.Length())
	}
}

func TestWaitForAppendWake(t *testing.T) {
	l := newTestLog(t)

	done := make(chan struct{})
	go func() {
		ok := l.WaitForAppend(context.Background(), 500*time.Millisecond)
		if !ok {
			t.Errorf("expected wake by append")
		}
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	if _, err := l.Append(context.Background(), testMessage(0)); err != nil {
		t.Fatalf("append: %v", err)
	}

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatalf("timeout waiting for waiter to wake")
	}
}

func TestWaitForAppendTimeout(t *testing.T) {
	l := newTestLog(t)
	if l.WaitForAppend(context.Background(), 50*time.Millisecond) {
		t.Fatalf("expected timeout")
	}
}

func TestWaitForAppendCanceled(t *testing.T) {
	l := newTestLog(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if l.WaitForAppend(ctx, time.Second) {
		t.Fatalf("expected cancellation, not wake")
	}
}
