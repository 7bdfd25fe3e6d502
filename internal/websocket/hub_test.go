package websocket

import (
	"encoding/json"
	"log/slog"
	"testing"
	"time"
)

// mockClient creates a Client with a send channel but no real connection.
func mockClient(hub *Hub, groupID string) *Client {
	return &Client{
		hub:     hub,
		conn:    nil,
		groupID: groupID,
		send:    make(chan []byte, sendBufferSize),
	}
}

func TestRegisterUnregister(t *testing.T) {
	hub := NewHub(slog.Default())

	c1 := mockClient(hub, "g1")
	c2 := mockClient(hub, "g2")

	hub.Register(c1)
	hub.Register(c2)
	if got := hub.ClientCount(); got != 2 {
		t.Fatalf("expected 2 clients, got %d", got)
	}

	hub.Unregister(c1)
	if got := hub.ClientCount(); got != 1 {
		t.Fatalf("expected 1 client after unregister, got %d", got)
	}

	hub.Unregister(c2)
	if got := hub.ClientCount(); got != 0 {
		t.Fatalf("expected 0 clients, got %d", got)
	}
}

func TestDoubleUnregister(t *testing.T) {
	hub := NewHub(slog.Default())
	c := mockClient(hub, "g1")
	hub.Register(c)
	hub.Unregister(c)
	// Should not panic
	hub.Unregister(c)

	if got := hub.ClientCount(); got != 0 {
		t.Fatalf("expected 0 clients, got %d", got)
	}
}

func TestBroadcastGroupScoped(t *testing.T) {
	hub := NewHub(slog.Default())

	same := mockClient(hub, "g1")
	other := mockClient(hub, "g2")
	hub.Register(same)
	hub.Register(other)

	hub.Broadcast(NewMessage("g1", "item", "created", "id-001"))

	select {
	case data := <-same.send:
		var got Message
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if got.Type != "item_created" {
			t.Errorf("type = %q, want item_created", got.Type)
		}
		if got.ID != "id-001" || got.GroupID != "g1" {
			t.Errorf("message = %+v", got)
		}
	case <-time.After(time.Second):
		t.Fatal("same-group client did not receive broadcast")
	}

	select {
	case data := <-other.send:
		t.Fatalf("other group received %s", data)
	default:
	}
}

func TestBroadcastFullBufferDoesNotBlock(t *testing.T) {
	hub := NewHub(slog.Default())

	c := mockClient(hub, "g1")
	hub.Register(c)

	// Fill the buffer, then broadcast once more; the extra message is
	// dropped instead of blocking the hub.
	done := make(chan struct{})
	go func() {
		for i := 0; i < sendBufferSize+5; i++ {
			hub.Broadcast(NewMessage("g1", "item", "created", "x"))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on a full client buffer")
	}
}
