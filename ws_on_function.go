package board_sdk

import (
	"encoding/json"
	"log"

	"github.com/cydxin/board-sdk/event"
)

// bindWsHandlersOnMessage 绑定上行消息处理。
// 上行只有两种小帧：join（上报展示名）和 seen（已看计数）。
// 放在包根目录（同 WsServer/engine.go 同级），直接访问 Instance 与 Client 类型。
func (c *BoardEngine) bindWsHandlersOnMessage() {
	c.WsServer.onMessage = func(client *Client, msg []byte) {
		var req event.Req
		if err := json.Unmarshal(msg, &req); err != nil {
			log.Printf("invalid ws message: %v", err)
			return
		}

		switch req.Type {
		case event.WsTypeJoin:
			if client != nil && req.Name != "" {
				client.Name = req.Name
			}

		case event.WsTypeSeen:
			if req.ItemID == 0 {
				return
			}
			count := c.WsServer.MarkSeen(req.ItemID)
			c.WsServer.BroadcastEvent(event.SeenUpdate, event.SeenUpdateData{ItemID: req.ItemID, Count: count})
		}
	}
}
