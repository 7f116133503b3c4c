package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/chanwatch/core/internal/signal"
)

func TestBroadcastSignalsEncodesEnvelope(t *testing.T) {
	h := NewHub()
	go h.Run()

	// Close() dereferences Client.Conn, which a fake client in this test
	// leaves nil, so clients are unregistered directly instead of via Close.
	client := &Client{ID: "test", Send: make(chan []byte, 1)}
	defer func() { h.unregister <- client }()
	h.register <- client
	time.Sleep(10 * time.Millisecond) // let Run's select process the registration

	h.BroadcastSignals([]signal.Signal{{ID: "s1", Kind: signal.KindMACDGoldenCross}})

	select {
	case data := <-client.Send:
		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if msg.Type != messageTypeSnapshot || len(msg.Signals) != 1 || msg.Signals[0].ID != "s1" {
			t.Errorf("unexpected message: %+v", msg)
		}
	case <-time.After(time.Second):
		t.Fatal("expected a message to be queued for the client")
	}
}

func TestClientCount(t *testing.T) {
	h := NewHub()
	go h.Run()

	// Close() dereferences Client.Conn, which a fake client in this test
	// leaves nil, so clients are unregistered directly instead of via Close.
	client := &Client{ID: "test", Send: make(chan []byte, 1)}
	defer func() { h.unregister <- client }()
	h.register <- client
	time.Sleep(10 * time.Millisecond) // let Run's select process the registration

	if h.ClientCount() != 1 {
		t.Fatalf("ClientCount() = %d, want 1", h.ClientCount())
	}
}
