package event

import "encoding/json"

// 下行（server -> client）事件名。每完成一次写操作广播一条，
// 客户端按自身所在频道自行过滤。
const (
	NewItem        = "new-item"
	DeleteItem     = "delete-item"
	PinUpdate      = "pin-update"
	ItemMoved      = "item-moved"
	ItemUpdated    = "item-updated"
	ChannelAdded   = "channel-added"
	ChannelDeleted = "channel-deleted"
	ChannelRenamed = "channel-renamed"
	ChannelPin     = "channel-pin-update"
	UserCount      = "user-count"
	SeenUpdate     = "seen-update"
)

// 上行（client -> server）消息类型
const (
	WsTypeJoin = "join" // 上报展示名
	WsTypeSeen = "seen" // 已看计数（进程生命周期内，不落库）
)

// Envelope 统一下行封包
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Req 上行封包
type Req struct {
	Type   string `json:"type"`
	Name   string `json:"name,omitempty"`    // join
	ItemID uint64 `json:"item_id,omitempty"` // seen
}

// ItemMovedData item-moved 负载。客户端据此判断条目是否离开了当前视图。
type ItemMovedData struct {
	ID      uint64 `json:"id"`
	Channel string `json:"channel"`
}

// DeleteItemData delete-item 负载
type DeleteItemData struct {
	ID uint64 `json:"id"`
}

// ChannelRenamedData channel-renamed 负载
type ChannelRenamedData struct {
	OldName string `json:"oldName"`
	NewName string `json:"newName"`
}

// ChannelDeletedData channel-deleted 负载
type ChannelDeletedData struct {
	Name string `json:"name"`
}

// ChannelPinData channel-pin-update 负载
type ChannelPinData struct {
	Name   string `json:"name"`
	Pinned bool   `json:"pinned"`
}

// UserCountData user-count 负载
type UserCountData struct {
	Count int `json:"count"`
}

// SeenUpdateData seen-update 负载
type SeenUpdateData struct {
	ItemID uint64 `json:"item_id"`
	Count  int    `json:"count"`
}
