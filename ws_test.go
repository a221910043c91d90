package board_sdk

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/cydxin/board-sdk/event"
)

func recvEnvelope(t *testing.T, ch chan []byte) event.Envelope {
	t.Helper()
	select {
	case raw, ok := <-ch:
		if !ok {
			t.Fatal("send channel closed unexpectedly")
		}
		var env event.Envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			t.Fatalf("unmarshal envelope: %v", err)
		}
		return env
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a broadcast")
	}
	return event.Envelope{}
}

// 注册/注销触发 user-count，广播事件扇出给全部连接
func TestWsServer_BroadcastAndUserCount(t *testing.T) {
	h := NewWsServer()
	go h.Run()

	c1 := &Client{hub: h, send: make(chan []byte, 8)}
	h.register <- c1

	env := recvEnvelope(t, c1.send)
	if env.Event != event.UserCount {
		t.Fatalf("event = %s, want user-count", env.Event)
	}
	var uc event.UserCountData
	if err := json.Unmarshal(env.Data, &uc); err != nil {
		t.Fatalf("unmarshal user-count: %v", err)
	}
	if uc.Count != 1 {
		t.Errorf("count = %d, want 1", uc.Count)
	}
	if h.ConnCount() != 1 {
		t.Errorf("ConnCount = %d, want 1", h.ConnCount())
	}

	c2 := &Client{hub: h, send: make(chan []byte, 8)}
	h.register <- c2
	recvEnvelope(t, c1.send) // c1 也收到第二次 user-count
	recvEnvelope(t, c2.send)

	h.BroadcastEvent(event.DeleteItem, event.DeleteItemData{ID: 42})
	for _, c := range []*Client{c1, c2} {
		env := recvEnvelope(t, c.send)
		if env.Event != event.DeleteItem {
			t.Fatalf("event = %s, want delete-item", env.Event)
		}
		var d event.DeleteItemData
		if err := json.Unmarshal(env.Data, &d); err != nil {
			t.Fatalf("unmarshal delete-item: %v", err)
		}
		if d.ID != 42 {
			t.Errorf("id = %d, want 42", d.ID)
		}
	}

	h.unregister <- c2
	env = recvEnvelope(t, c1.send)
	if env.Event != event.UserCount {
		t.Fatalf("event = %s, want user-count after unregister", env.Event)
	}
	if h.ConnCount() != 1 {
		t.Errorf("ConnCount = %d, want 1 after unregister", h.ConnCount())
	}
}

// 发不进去的慢客户端被踢掉，不拖住其他连接的广播
func TestWsServer_SlowClientEvicted(t *testing.T) {
	h := NewWsServer()
	go h.Run()

	fast := &Client{hub: h, send: make(chan []byte, 16)}
	slow := &Client{hub: h, send: make(chan []byte, 1)}
	h.register <- fast
	recvEnvelope(t, fast.send)
	h.register <- slow
	recvEnvelope(t, fast.send)
	// slow 的缓冲里留着 user-count 不取，下一条广播塞不进去

	h.BroadcastEvent(event.PinUpdate, nil)
	env := recvEnvelope(t, fast.send)
	if env.Event != event.PinUpdate {
		t.Fatalf("event = %s, want pin-update", env.Event)
	}

	deadline := time.Now().Add(2 * time.Second)
	for h.ConnCount() != 1 {
		if time.Now().After(deadline) {
			t.Fatalf("slow client should be evicted, ConnCount = %d", h.ConnCount())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// seen 计数只活在进程内：同一实例累加，新实例清零
func TestWsServer_SeenCounts(t *testing.T) {
	h := NewWsServer()

	if got := h.SeenCount(7); got != 0 {
		t.Errorf("initial SeenCount = %d, want 0", got)
	}
	if got := h.MarkSeen(7); got != 1 {
		t.Errorf("MarkSeen = %d, want 1", got)
	}
	if got := h.MarkSeen(7); got != 2 {
		t.Errorf("MarkSeen = %d, want 2", got)
	}
	if got := h.SeenCount(7); got != 2 {
		t.Errorf("SeenCount = %d, want 2", got)
	}

	fresh := NewWsServer()
	if got := fresh.SeenCount(7); got != 0 {
		t.Errorf("seen counts must reset with the process, got %d", got)
	}
}

func TestMarshalEvent(t *testing.T) {
	raw, err := marshalEvent(event.ItemMoved, event.ItemMovedData{ID: 3, Channel: "dev"})
	if err != nil {
		t.Fatalf("marshalEvent: %v", err)
	}
	var env event.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.Event != event.ItemMoved {
		t.Errorf("event = %s, want item-moved", env.Event)
	}

	// payload 为 nil 时 data 字段整个省略
	raw, err = marshalEvent(event.PinUpdate, nil)
	if err != nil {
		t.Fatalf("marshalEvent: %v", err)
	}
	var asMap map[string]json.RawMessage
	if err := json.Unmarshal(raw, &asMap); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := asMap["data"]; ok {
		t.Error("nil payload should omit the data field")
	}
}
