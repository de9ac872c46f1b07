package sse

import (
	"strings"
	"testing"
	"time"
)

func TestSubscribeUnsubscribe(t *testing.T) {
	b := NewBroker()
	defer b.Close()
	if b.ClientCount() != 0 {
		t.Fatalf("expected 0 clients")
	}
	ch := b.Subscribe()
	if b.ClientCount() != 1 {
		t.Fatalf("expected 1 client")
	}
	b.Unsubscribe(ch)
	if b.ClientCount() != 0 {
		t.Fatalf("expected 0 clients after unsub")
	}
}

func TestPublishEntityEvent(t *testing.T) {
	b := NewBroker()
	defer b.Close()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	b.PublishEntityEvent("favorite.added", map[string]string{"note_id": "1", "user_id": "u1"})

	select {
	case msg := <-ch:
		s := string(msg)
		if !strings.Contains(s, "event: favorite.added") {
			t.Errorf("missing event type in %q", s)
		}
		if !strings.Contains(s, `"note_id":"1"`) {
			t.Errorf("missing data in %q", s)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for message")
	}
}

func TestPublishAfterClose(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe()
	b.Close()

	// Publishing after close must not panic or block.
	b.PublishEntityEvent("note.created", map[string]string{"id": "1"})

	if _, ok := <-ch; ok {
		t.Error("client channel should be closed")
	}
	if b.ClientCount() != 0 {
		t.Error("client count after close should be 0")
	}
}

func TestSlowClientDoesNotBlockBroker(t *testing.T) {
	b := NewBroker()
	defer b.Close()

	// Never read from this subscriber; its buffer will fill.
	slow := b.Subscribe()
	defer b.Unsubscribe(slow)

	fast := b.Subscribe()
	defer b.Unsubscribe(fast)

	for i := 0; i < 200; i++ {
		b.PublishEntityEvent("comment.created", map[string]string{"id": "x"})
	}

	// The fast client still receives events.
	select {
	case <-fast:
	case <-time.After(time.Second):
		t.Fatal("fast client starved by slow client")
	}
}
