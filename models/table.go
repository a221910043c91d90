package models

import (
	"gorm.io/datatypes"
)

const (
	prefix = "bb_"
)

// Item 类型
const (
	ItemTypeText = "text" // 文本/链接
	ItemTypeFile = "file" // 文件
)

// Item 共享条目表（文本、链接或文件）
// 约束：file 条目必有 Filename+Size；text 条目必有 Content。两种负载形状互斥。
type Item struct {
	ID       uint64 `gorm:"primarykey" json:"id"`
	Type     string `gorm:"size:10;not null;index" json:"type"` // 类型: text / file
	Content  string `gorm:"type:text" json:"content,omitempty"` // 文本/链接内容（file 条目为空）
	Filename string `gorm:"size:255" json:"filename,omitempty"` // 存储文件名（带时间戳前缀，file 条目专用）
	Size     int64  `gorm:"default:0" json:"size,omitempty"`    // 文件字节数
	Title    string `gorm:"size:255" json:"title,omitempty"`    // 可选标签
	Channel  string `gorm:"size:32;not null;index" json:"channel"`
	Uploader string `gorm:"size:100" json:"uploader"` // 展示名，自由文本
	Pinned   bool   `gorm:"default:false" json:"pinned"`

	// CreatedAt / EditedAt 均为 epoch 毫秒。EditedAt 仅文本编辑时写入。
	CreatedAt int64  `gorm:"autoCreateTime:milli;index" json:"created_at"`
	EditedAt  *int64 `json:"edited_at,omitempty"`

	// Extra 附加元数据（file 条目记录 original_name / mime 等）
	Extra datatypes.JSON `gorm:"type:json" json:"extra,omitempty"`
}

func (Item) TableName() string {
	return prefix + "item"
}

// Channel 频道表（命名空间/看板）
// 约束：任何时刻至少存在一个频道；最多 10 个；Pinned 的频道禁止删除。
type Channel struct {
	ID     uint64 `gorm:"primarykey" json:"id"`
	Name   string `gorm:"size:32;uniqueIndex;not null" json:"name"` // 1-32 字符，[A-Za-z0-9 _-]
	Pinned bool   `gorm:"default:false" json:"pinned"`
}

func (Channel) TableName() string {
	return prefix + "channel"
}

// MaxChannels 频道数量上限
const MaxChannels = 10

// DefaultPageSize 条目分页固定页大小
const DefaultPageSize = 10
