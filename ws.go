package board_sdk

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/cydxin/board-sdk/event"
	"github.com/gorilla/websocket"
)

const (
	// Time 写入超时时间
	writeWait = 10 * time.Second

	// Time pong超时时间
	pongWait = 60 * time.Second

	// Send 对应的ping 必须小于pong
	pingPeriod = (pongWait * 9) / 10

	// Maximum 对等端允许消息大小（上行只有 join/seen 小帧）
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // 局域网看板，放开同源限制
	},
}

// Client ws和hub的连接
type Client struct {
	hub *WsServer

	// 🔗链接
	conn *websocket.Conn

	// 消息缓冲区
	send chan []byte

	// Name 客户端通过 join 帧上报的展示名
	Name string
}

// readPump 将消息从client (websocket 连接) 到hub管理。
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		_ = c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error { _ = c.conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })
	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("readPump error: %v", err)
			}
			break
		}
		c.hub.handleMessage(c, message)
	}
}

// writePump 将消息从hub管理写到具体的client (websocket 连接)。
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			_, _ = w.Write(message)

			// 一次性发送管道剩余全部的消息，不重新走message, ok := <-c.send，提升性能
			n := len(c.send)
			for i := 0; i < n; i++ {
				_, _ = w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Printf("writePump 写入ping失败")
				return
			}
		}
	}
}

// WsServer 广播中心：每个完成的写操作产生一条事件，扇出给全部在线连接，
// 不做服务端按频道过滤——客户端自己按当前频道过滤。
// 另外持有两个进程生命周期的临时状态（重启即清零，从不落库）：
// - 在线连接数（user-count）
// - 条目“已看”计数（seen-update，只用于已读回执展示）
type WsServer struct {
	clients map[*Client]bool

	// seenCounts 条目ID -> 已看次数
	seenCounts map[uint64]int
	seenMu     sync.Mutex

	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
	// 回调处理上行消息
	onMessage func(client *Client, msg []byte)
}

func NewWsServer() *WsServer {
	return &WsServer{
		broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		seenCounts: make(map[uint64]int),
	}
}

func (h *WsServer) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			count := len(h.clients)
			h.mu.Unlock()
			h.fanOutEvent(event.UserCount, event.UserCountData{Count: count})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			count := len(h.clients)
			h.mu.Unlock()
			h.fanOutEvent(event.UserCount, event.UserCountData{Count: count})

		case message := <-h.broadcast:
			h.fanOut(message)
		}
	}
}

// fanOut 扇出一条封包。
// 注意：不能在 RLock 下修改 map / close channel，否则会引发竞态/崩溃。
func (h *WsServer) fanOut(message []byte) {
	var toRemove []*Client
	h.mu.RLock()
	for client := range h.clients {
		select {
		case client.send <- message:
		default:
			// 发不进去的慢客户端直接踢掉，避免拖住广播
			toRemove = append(toRemove, client)
		}
	}
	h.mu.RUnlock()

	if len(toRemove) > 0 {
		h.mu.Lock()
		for _, client := range toRemove {
			if _, ok := h.clients[client]; !ok {
				continue
			}
			delete(h.clients, client)
			// close 之前再确认一次，避免 panic（多处 close 的竞态）
			func() {
				defer func() { _ = recover() }()
				close(client.send)
			}()
		}
		h.mu.Unlock()
	}
}

// fanOutEvent 在 Run 循环内直接扇出（不能写 h.broadcast，自己就是消费者）
func (h *WsServer) fanOutEvent(name string, payload interface{}) {
	data, err := marshalEvent(name, payload)
	if err != nil {
		log.Printf("marshal %s event: %v", name, err)
		return
	}
	h.fanOut(data)
}

func marshalEvent(name string, payload interface{}) ([]byte, error) {
	env := event.Envelope{Event: name}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		env.Data = raw
	}
	return json.Marshal(env)
}

// BroadcastEvent 向全部在线客户端广播一条事件。
// 由 service 层通过注入的回调调用（任意 goroutine 安全）。
func (h *WsServer) BroadcastEvent(name string, payload interface{}) {
	data, err := marshalEvent(name, payload)
	if err != nil {
		log.Printf("marshal %s event: %v", name, err)
		return
	}
	h.broadcast <- data
}

// ConnCount 当前在线连接数
func (h *WsServer) ConnCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// MarkSeen 递增条目的已看计数并返回新值。计数只活在进程内。
func (h *WsServer) MarkSeen(itemID uint64) int {
	h.seenMu.Lock()
	h.seenCounts[itemID]++
	count := h.seenCounts[itemID]
	h.seenMu.Unlock()
	return count
}

// SeenCount 查询条目的已看计数
func (h *WsServer) SeenCount(itemID uint64) int {
	h.seenMu.Lock()
	defer h.seenMu.Unlock()
	return h.seenCounts[itemID]
}

func (h *WsServer) handleMessage(client *Client, msg []byte) {
	if h.onMessage != nil {
		h.onMessage(client, msg)
	}
}

func (h *WsServer) SetOnMessage(fn func(client *Client, msg []byte)) {
	h.onMessage = fn
}

// ServeWS 处理ws的请求
func (h *WsServer) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}

	client := &Client{
		hub:  h,
		conn: conn,
		send: make(chan []byte, 256),
		Name: r.URL.Query().Get("name"),
	}
	client.hub.register <- client

	go client.writePump()
	go client.readPump()

	// 不要 select{} 永久阻塞 handler；连接生命周期由 readPump/writePump 控制。
}
